package store

import (
	"context"

	"github.com/GregMSThompson/travel-admin/internal/errs"
	"github.com/GregMSThompson/travel-admin/internal/models"
	"github.com/GregMSThompson/travel-admin/pkg/logger"
)

type codec[T any] struct {
	toFields   func(T) Fields
	fromFields func(key string, f Fields) T
}

// entityStore is a collection of independently keyed documents with
// store-assigned keys.
type entityStore[T any] struct {
	collection string
	label      string
	docs       Documents
	guard      *guard
	codec      codec[T]
}

func NewTestimonialStore(docs Documents) *entityStore[models.Testimonial] {
	return &entityStore[models.Testimonial]{
		collection: TestimonialsCollection,
		label:      "testimonial",
		docs:       docs,
		guard:      newGuard(docs),
		codec:      codec[models.Testimonial]{toFields: testimonialToFields, fromFields: testimonialFromFields},
	}
}

func NewHighlightStore(docs Documents) *entityStore[models.DestinationHighlight] {
	return &entityStore[models.DestinationHighlight]{
		collection: HighlightsCollection,
		label:      "destination highlight",
		docs:       docs,
		guard:      newGuard(docs),
		codec:      codec[models.DestinationHighlight]{toFields: highlightToFields, fromFields: highlightFromFields},
	}
}

// Create stores v under a new key and returns the key.
func (s *entityStore[T]) Create(ctx context.Context, v T) (string, error) {
	s.guard.Ensure(ctx)
	id, err := s.docs.Add(ctx, s.collection, s.codec.toFields(v))
	if err != nil {
		return "", ClassifyWriteError("create "+s.label, err)
	}
	logger.FromContext(ctx).Info(s.label+" created", "id", id)
	return id, nil
}

func (s *entityStore[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	fields, found, err := s.docs.Get(ctx, s.collection, id)
	if err != nil {
		return zero, s.readError(err)
	}
	if !found {
		return zero, errs.NewNotFoundError(s.label + " not found")
	}
	return s.codec.fromFields(id, fields), nil
}

// Update replaces the document. The key must already exist.
func (s *entityStore[T]) Update(ctx context.Context, id string, v T) error {
	s.guard.Ensure(ctx)
	err := s.docs.Set(ctx, s.collection, id, s.codec.toFields(v), SetOptions{MustExist: true})
	if IsNotExist(err) {
		return errs.NewNotFoundError(s.label + " not found")
	}
	if err != nil {
		return ClassifyWriteError("update "+s.label, err)
	}
	logger.FromContext(ctx).Info(s.label+" updated", "id", id)
	return nil
}

// Delete succeeds for unknown keys.
func (s *entityStore[T]) Delete(ctx context.Context, id string) error {
	s.guard.Ensure(ctx)
	if err := s.docs.Delete(ctx, s.collection, id); err != nil {
		return ClassifyWriteError("delete "+s.label, err)
	}
	logger.FromContext(ctx).Info(s.label+" deleted", "id", id)
	return nil
}

func (s *entityStore[T]) List(ctx context.Context) ([]T, error) {
	docs, err := s.docs.List(ctx, s.collection)
	if err != nil {
		return nil, s.readError(err)
	}
	out := make([]T, 0, len(docs))
	for _, d := range docs {
		out = append(out, s.codec.fromFields(d.Key, d.Fields))
	}
	return out, nil
}

func (s *entityStore[T]) Count(ctx context.Context) (int, error) {
	docs, err := s.docs.List(ctx, s.collection)
	if err != nil {
		return 0, s.readError(err)
	}
	return len(docs), nil
}

func (s *entityStore[T]) readError(err error) error {
	if isOffline(err) {
		return errs.NewNetworkUnavailableError("read "+s.label, err)
	}
	return errs.NewDatabaseError("read", "failed to read "+s.label+"s", err)
}
