package store

import (
	"errors"
	"testing"

	"github.com/GregMSThompson/travel-admin/internal/errs"
	"github.com/GregMSThompson/travel-admin/internal/models"
	"github.com/GregMSThompson/travel-admin/pkg/helpers"
)

func TestTestimonialLifecycle(t *testing.T) {
	docs := NewMemoryDocuments()
	s := NewTestimonialStore(docs)
	ctx := helpers.TestCtx()

	id, err := s.Create(ctx, models.Testimonial{Name: "Aisha", Rating: 5, Message: "Wonderful trip"})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if id == "" {
		t.Fatal("expected generated id")
	}

	got, err := s.Get(ctx, id)
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	if got.ID != id || got.Name != "Aisha" || got.Rating != 5 {
		t.Fatalf("unexpected testimonial: %+v", got)
	}

	if err := s.Update(ctx, id, models.Testimonial{Name: "Aisha K.", Rating: 4, Message: "Great"}); err != nil {
		t.Fatalf("update error: %v", err)
	}
	list, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Aisha K." || list[0].Rating != 4 {
		t.Fatalf("unexpected list: %+v", list)
	}

	if err := s.Delete(ctx, id); err != nil {
		t.Fatalf("delete error: %v", err)
	}
	if n, _ := s.Count(ctx); n != 0 {
		t.Fatalf("count = %d", n)
	}
}

func TestEntityUpdateMissingIsNotFound(t *testing.T) {
	docs := NewMemoryDocuments()
	s := NewTestimonialStore(docs)

	err := s.Update(helpers.TestCtx(), "missing", models.Testimonial{Name: "x", Message: "y"})
	var nf *errs.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if _, found, _ := docs.Get(helpers.TestCtx(), TestimonialsCollection, "missing"); found {
		t.Fatal("update must not create the document")
	}
}

func TestEntityGetMissingIsNotFound(t *testing.T) {
	s := NewHighlightStore(NewMemoryDocuments())

	_, err := s.Get(helpers.TestCtx(), "nope")
	var nf *errs.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestEntityDeleteMissingSucceeds(t *testing.T) {
	s := NewHighlightStore(NewMemoryDocuments())

	if err := s.Delete(helpers.TestCtx(), "nope"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHighlightReplaceDropsOtherVariant(t *testing.T) {
	docs := NewMemoryDocuments()
	s := NewHighlightStore(docs)
	ctx := helpers.TestCtx()

	id, err := s.Create(ctx, models.DestinationHighlight{
		Type:      models.HighlightVideo,
		VideoURL:  "https://video.example.com/a.mp4",
		Thumbnail: "https://img.example.com/a.jpg",
	})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}

	err = s.Update(ctx, id, models.DestinationHighlight{
		Type:        models.HighlightDescription,
		Title:       "Makkah",
		Description: "Holy city",
		Background:  "https://img.example.com/bg.jpg",
	})
	if err != nil {
		t.Fatalf("update error: %v", err)
	}

	got, _ := s.Get(ctx, id)
	if got.VideoURL != "" || got.Thumbnail != "" {
		t.Fatalf("video fields should be gone: %+v", got)
	}
	if got.Title != "Makkah" || got.Type != models.HighlightDescription {
		t.Fatalf("unexpected highlight: %+v", got)
	}
}

func TestEntityListError(t *testing.T) {
	docs := NewMemoryDocuments()
	docs.ListErr = errors.New("boom")
	s := NewTestimonialStore(docs)

	_, err := s.List(helpers.TestCtx())
	var dbErr *errs.DatabaseError
	if !errors.As(err, &dbErr) {
		t.Fatalf("expected DatabaseError, got %v", err)
	}
}

func TestEntityCreateWriteFailed(t *testing.T) {
	docs := NewMemoryDocuments()
	docs.SetErr = errors.New("document too large")
	s := NewTestimonialStore(docs)

	_, err := s.Create(helpers.TestCtx(), models.Testimonial{Name: "x", Message: "y"})
	var writeErr *errs.WriteFailedError
	if !errors.As(err, &writeErr) {
		t.Fatalf("expected WriteFailedError, got %v", err)
	}
	if writeErr.Error() != "document too large" {
		t.Fatalf("message = %q", writeErr.Error())
	}
}
