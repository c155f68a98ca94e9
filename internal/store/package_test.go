package store

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/GregMSThompson/travel-admin/internal/dto"
	"github.com/GregMSThompson/travel-admin/internal/errs"
	"github.com/GregMSThompson/travel-admin/internal/models"
	"github.com/GregMSThompson/travel-admin/pkg/helpers"
)

func record(title string) models.PackageRecord {
	return models.PackageRecord{Title: title, Name: title, ImageURL: "https://img.example.com/" + title + ".jpg", Price: "999"}
}

func seedPackages(t *testing.T, docs *MemoryDocuments, category models.Category, titles ...string) {
	t.Helper()
	items := make([]any, 0, len(titles))
	for _, title := range titles {
		items = append(items, packageToFields(record(title)))
	}
	seedRaw(t, docs, category, items...)
}

// seedRaw stores items exactly as given, bypassing the record codec.
func seedRaw(t *testing.T, docs *MemoryDocuments, category models.Category, items ...any) {
	t.Helper()
	if err := docs.Set(context.Background(), PackagesCollection, string(category), Fields{"items": items}, SetOptions{}); err != nil {
		t.Fatalf("seed error: %v", err)
	}
}

func titles(items []models.PackageRecord) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Title
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestPackageItemsMissingCategoryIsEmpty(t *testing.T) {
	s := NewPackageStore(NewMemoryDocuments())

	items, err := s.Items(helpers.TestCtx(), models.CategoryCurated)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty list, got %v", items)
	}
}

func TestPackageListAllIncludesEveryCategory(t *testing.T) {
	docs := NewMemoryDocuments()
	seedPackages(t, docs, models.CategoryBestDeals, "Dubai")
	s := NewPackageStore(docs)

	all, err := s.ListAll(helpers.TestCtx())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, c := range models.Categories {
		if _, ok := all[c]; !ok {
			t.Fatalf("missing category %s", c)
		}
	}
	if got := titles(all[models.CategoryBestDeals]); !equalStrings(got, []string{"Dubai"}) {
		t.Fatalf("best-deals = %v", got)
	}
}

func TestPackageAddAppends(t *testing.T) {
	docs := NewMemoryDocuments()
	seedPackages(t, docs, models.CategoryTopDestinations, "Paris", "Rome")
	s := NewPackageStore(docs)
	ctx := helpers.TestCtx()

	if err := s.Add(ctx, models.CategoryTopDestinations, record("Tokyo")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items, _ := s.Items(ctx, models.CategoryTopDestinations)
	if got := titles(items); !equalStrings(got, []string{"Paris", "Rome", "Tokyo"}) {
		t.Fatalf("items = %v", got)
	}
	if docs.Enables == 0 {
		t.Fatal("expected network to be enabled before the write")
	}
}

func TestPackageAddWritesWhenReadFails(t *testing.T) {
	docs := NewMemoryDocuments()
	seedPackages(t, docs, models.CategoryUmrah, "Economy")
	docs.GetErr = errors.New("read boom")
	s := NewPackageStore(docs)

	if err := s.Add(helpers.TestCtx(), models.CategoryUmrah, record("Premium")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	docs.GetErr = nil
	items, _ := s.Items(helpers.TestCtx(), models.CategoryUmrah)
	if got := titles(items); !equalStrings(got, []string{"Premium"}) {
		t.Fatalf("items = %v", got)
	}
}

func TestPackageEdit(t *testing.T) {
	docs := NewMemoryDocuments()
	seedPackages(t, docs, models.CategoryMostSearched, "Bali", "Cairo")
	s := NewPackageStore(docs)
	ctx := helpers.TestCtx()

	etag := RecordETag(record("Cairo"))
	if err := s.Edit(ctx, models.CategoryMostSearched, 1, etag, record("Giza")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items, _ := s.Items(ctx, models.CategoryMostSearched)
	if got := titles(items); !equalStrings(got, []string{"Bali", "Giza"}) {
		t.Fatalf("items = %v", got)
	}
}

func TestPackageEditOutOfRange(t *testing.T) {
	docs := NewMemoryDocuments()
	seedPackages(t, docs, models.CategoryCurated, "Alps")
	s := NewPackageStore(docs)

	for _, index := range []int{-1, 1, 5} {
		err := s.Edit(helpers.TestCtx(), models.CategoryCurated, index, RecordETag(record("Alps")), record("x"))
		var rangeErr *errs.IndexOutOfRangeError
		if !errors.As(err, &rangeErr) {
			t.Fatalf("index %d: expected IndexOutOfRangeError, got %v", index, err)
		}
		if rangeErr.Length != 1 {
			t.Fatalf("length = %d", rangeErr.Length)
		}
	}
	if docs.Sets != 1 {
		t.Fatalf("expected no writes beyond the seed, got %d", docs.Sets)
	}
}

func TestPackageEditStaleETag(t *testing.T) {
	docs := NewMemoryDocuments()
	seedPackages(t, docs, models.CategoryCurated, "Alps", "Andes")
	s := NewPackageStore(docs)

	err := s.Edit(helpers.TestCtx(), models.CategoryCurated, 0, RecordETag(record("Andes")), record("x"))
	var rangeErr *errs.IndexOutOfRangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("expected IndexOutOfRangeError, got %v", err)
	}
}

func TestPackageDeleteKeepsOrder(t *testing.T) {
	docs := NewMemoryDocuments()
	seedPackages(t, docs, models.CategoryBestDeals, "A", "B", "C")
	s := NewPackageStore(docs)
	ctx := helpers.TestCtx()

	if err := s.Delete(ctx, models.CategoryBestDeals, 1, RecordETag(record("B"))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items, _ := s.Items(ctx, models.CategoryBestDeals)
	if got := titles(items); !equalStrings(got, []string{"A", "C"}) {
		t.Fatalf("items = %v", got)
	}
}

func TestPackageDeleteOutOfRange(t *testing.T) {
	docs := NewMemoryDocuments()
	seedPackages(t, docs, models.CategoryBestDeals, "A", "B")
	s := NewPackageStore(docs)

	for _, index := range []int{-1, 2, 5} {
		err := s.Delete(helpers.TestCtx(), models.CategoryBestDeals, index, RecordETag(record("A")))
		var rangeErr *errs.IndexOutOfRangeError
		if !errors.As(err, &rangeErr) {
			t.Fatalf("index %d: expected IndexOutOfRangeError, got %v", index, err)
		}
		if rangeErr.Index != index || rangeErr.Length != 2 {
			t.Fatalf("index %d: got index=%d length=%d", index, rangeErr.Index, rangeErr.Length)
		}
	}
	if docs.Sets != 1 {
		t.Fatalf("expected no writes beyond the seed, got %d", docs.Sets)
	}
	items, _ := s.Items(helpers.TestCtx(), models.CategoryBestDeals)
	if got := titles(items); !equalStrings(got, []string{"A", "B"}) {
		t.Fatalf("items = %v", got)
	}
}

func TestPackageWritesRequireETag(t *testing.T) {
	docs := NewMemoryDocuments()
	seedPackages(t, docs, models.CategoryBestDeals, "A", "B", "C")
	s := NewPackageStore(docs)
	ctx := helpers.TestCtx()

	for i := 0; i < 2; i++ {
		err := s.Delete(ctx, models.CategoryBestDeals, 1, "")
		var preErr *errs.PreconditionRequiredError
		if !errors.As(err, &preErr) {
			t.Fatalf("delete %d: expected PreconditionRequiredError, got %v", i, err)
		}
	}
	err := s.Edit(ctx, models.CategoryBestDeals, 1, "", record("x"))
	var preErr *errs.PreconditionRequiredError
	if !errors.As(err, &preErr) {
		t.Fatalf("edit: expected PreconditionRequiredError, got %v", err)
	}
	err = s.Move(ctx, models.CategoryBestDeals, 1, "", models.CategoryCurated, record("B"))
	if !errors.As(err, &preErr) {
		t.Fatalf("move: expected PreconditionRequiredError, got %v", err)
	}

	items, _ := s.Items(ctx, models.CategoryBestDeals)
	if got := titles(items); !equalStrings(got, []string{"A", "B", "C"}) {
		t.Fatalf("items = %v", got)
	}
	if docs.Sets != 1 || docs.Batches != 0 {
		t.Fatalf("unexpected writes: sets=%d batches=%d", docs.Sets, docs.Batches)
	}
}

func TestPackageEditLeavesOtherElementsAsStored(t *testing.T) {
	docs := NewMemoryDocuments()
	sibling := map[string]any{
		"title":    "A",
		"imageUrl": "https://img.example.com/a.jpg",
		"slug":     "a-1",
		"rating":   4.8,
		"features": []any{"Visa", "Hotel"},
	}
	seedRaw(t, docs, models.CategoryUmrah, sibling, packageToFields(record("B")))
	s := NewPackageStore(docs)
	ctx := helpers.TestCtx()

	if err := s.Edit(ctx, models.CategoryUmrah, 1, RecordETag(record("B")), record("B2")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fields, _, _ := docs.Get(ctx, PackagesCollection, string(models.CategoryUmrah))
	stored := itemsOf(fields)
	if len(stored) != 2 {
		t.Fatalf("stored %d items", len(stored))
	}
	if !reflect.DeepEqual(stored[0], sibling) {
		t.Fatalf("sibling rewritten: %#v", stored[0])
	}
	if got := decodeItem(stored[1]).Title; got != "B2" {
		t.Fatalf("edited title = %q", got)
	}
}

func TestPackageNonMapEntriesKeepPositions(t *testing.T) {
	docs := NewMemoryDocuments()
	seedRaw(t, docs, models.CategoryCurated,
		packageToFields(record("A")), "legacy entry", packageToFields(record("C")))
	s := NewPackageStore(docs)
	ctx := helpers.TestCtx()

	items, err := s.Items(ctx, models.CategoryCurated)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := titles(items); !equalStrings(got, []string{"A", "", "C"}) {
		t.Fatalf("items = %v", got)
	}

	if err := s.Delete(ctx, models.CategoryCurated, 2, RecordETag(items[2])); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fields, _, _ := docs.Get(ctx, PackagesCollection, string(models.CategoryCurated))
	stored := itemsOf(fields)
	if len(stored) != 2 || stored[1] != "legacy entry" {
		t.Fatalf("stored = %#v", stored)
	}
}

func TestPackageDeleteTwiceWithETagRemovesOnce(t *testing.T) {
	docs := NewMemoryDocuments()
	seedPackages(t, docs, models.CategoryBestDeals, "A", "B", "C")
	s := NewPackageStore(docs)
	ctx := helpers.TestCtx()
	etag := RecordETag(record("B"))

	if err := s.Delete(ctx, models.CategoryBestDeals, 1, etag); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := s.Delete(ctx, models.CategoryBestDeals, 1, etag)
	var rangeErr *errs.IndexOutOfRangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("expected IndexOutOfRangeError on repeat, got %v", err)
	}
	items, _ := s.Items(ctx, models.CategoryBestDeals)
	if got := titles(items); !equalStrings(got, []string{"A", "C"}) {
		t.Fatalf("items = %v", got)
	}
}

func TestPackageDeleteLastLeavesEmptyList(t *testing.T) {
	docs := NewMemoryDocuments()
	seedPackages(t, docs, models.CategoryUmrah, "Only")
	s := NewPackageStore(docs)
	ctx := helpers.TestCtx()

	if err := s.Delete(ctx, models.CategoryUmrah, 0, RecordETag(record("Only"))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fields, found, _ := docs.Get(ctx, PackagesCollection, string(models.CategoryUmrah))
	if !found {
		t.Fatal("category document should remain")
	}
	if items, ok := fields["items"].([]any); !ok || len(items) != 0 {
		t.Fatalf("items field = %#v", fields["items"])
	}
}

func TestPackageWriteRecoversOfflineClient(t *testing.T) {
	docs := NewMemoryDocuments()
	docs.SetOffline(true)
	s := NewPackageStore(docs)

	if err := s.Add(helpers.TestCtx(), models.CategoryCurated, record("Fjords")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPackageWriteErrors(t *testing.T) {
	cases := []struct {
		name    string
		setup   func(*MemoryDocuments)
		check   func(error) bool
		message string
	}{
		{
			name: "offline",
			setup: func(d *MemoryDocuments) {
				d.SetOffline(true)
				d.EnableErr = errors.New("enable boom")
			},
			check: func(err error) bool {
				var e *errs.NetworkUnavailableError
				return errors.As(err, &e)
			},
			message: "network error: please check your internet connection and try again",
		},
		{
			name: "unavailable",
			setup: func(d *MemoryDocuments) {
				d.SetErr = status.Error(codes.Unavailable, "backend unreachable")
			},
			check: func(err error) bool {
				var e *errs.NetworkUnavailableError
				return errors.As(err, &e)
			},
			message: "network error: please check your internet connection and try again",
		},
		{
			name: "rejected",
			setup: func(d *MemoryDocuments) {
				d.SetErr = errors.New("quota exceeded")
			},
			check: func(err error) bool {
				var e *errs.WriteFailedError
				return errors.As(err, &e)
			},
			message: "quota exceeded",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			docs := NewMemoryDocuments()
			seedPackages(t, docs, models.CategoryCurated, "Alps")
			tc.setup(docs)
			s := NewPackageStore(docs)

			err := s.Add(helpers.TestCtx(), models.CategoryCurated, record("x"))
			if !tc.check(err) {
				t.Fatalf("unexpected error type: %T %v", err, err)
			}
			if err.Error() != tc.message {
				t.Fatalf("message = %q", err.Error())
			}
		})
	}
}

func TestPackageMove(t *testing.T) {
	docs := NewMemoryDocuments()
	seedPackages(t, docs, models.CategoryBestDeals, "A", "B")
	seedPackages(t, docs, models.CategoryCurated, "C")
	s := NewPackageStore(docs)
	ctx := helpers.TestCtx()

	if err := s.Move(ctx, models.CategoryBestDeals, 0, RecordETag(record("A")), models.CategoryCurated, record("A2")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	from, _ := s.Items(ctx, models.CategoryBestDeals)
	to, _ := s.Items(ctx, models.CategoryCurated)
	if got := titles(from); !equalStrings(got, []string{"B"}) {
		t.Fatalf("from = %v", got)
	}
	if got := titles(to); !equalStrings(got, []string{"C", "A2"}) {
		t.Fatalf("to = %v", got)
	}
	if docs.Batches != 1 {
		t.Fatalf("expected one batch, got %d", docs.Batches)
	}
}

func TestPackageMoveBatchFailureLeavesBothLists(t *testing.T) {
	docs := NewMemoryDocuments()
	seedPackages(t, docs, models.CategoryBestDeals, "A")
	docs.BatchErr = errors.New("aborted")
	s := NewPackageStore(docs)
	ctx := helpers.TestCtx()

	err := s.Move(ctx, models.CategoryBestDeals, 0, RecordETag(record("A")), models.CategoryCurated, record("A"))
	var writeErr *errs.WriteFailedError
	if !errors.As(err, &writeErr) {
		t.Fatalf("expected WriteFailedError, got %v", err)
	}
	from, _ := s.Items(ctx, models.CategoryBestDeals)
	if len(from) != 1 {
		t.Fatalf("source changed: %v", titles(from))
	}
}

var testTimeouts = dto.InitTimeouts{Batch: time.Second, Write: time.Second}

func TestInitializeCategoriesCreatesMissing(t *testing.T) {
	docs := NewMemoryDocuments()
	seedPackages(t, docs, models.CategoryUmrah, "Keep")
	s := NewPackageStore(docs)
	ctx := helpers.TestCtx()

	res, err := s.InitializeCategories(ctx, testTimeouts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Created) != 4 || !equalStrings(res.Existing, []string{"umrah"}) {
		t.Fatalf("result = %+v", res)
	}
	if res.Fallback {
		t.Fatal("batch should not fall back")
	}

	umrah, _ := s.Items(ctx, models.CategoryUmrah)
	if got := titles(umrah); !equalStrings(got, []string{"Keep"}) {
		t.Fatalf("existing category overwritten: %v", got)
	}
	for _, c := range models.Categories {
		if _, found, _ := docs.Get(ctx, PackagesCollection, string(c)); !found {
			t.Fatalf("category %s not created", c)
		}
	}
}

func TestInitializeCategoriesIdempotent(t *testing.T) {
	docs := NewMemoryDocuments()
	s := NewPackageStore(docs)
	ctx := helpers.TestCtx()

	if _, err := s.InitializeCategories(ctx, testTimeouts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res, err := s.InitializeCategories(ctx, testTimeouts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Created) != 0 || len(res.Existing) != len(models.Categories) {
		t.Fatalf("result = %+v", res)
	}
	if docs.Batches != 1 {
		t.Fatalf("expected one batch across both runs, got %d", docs.Batches)
	}
}

func TestInitializeCategoriesFallsBackOnBatchTimeout(t *testing.T) {
	docs := NewMemoryDocuments()
	docs.batchHook = func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}
	s := NewPackageStore(docs)

	res, err := s.InitializeCategories(helpers.TestCtx(), dto.InitTimeouts{Batch: 10 * time.Millisecond, Write: time.Second})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Fallback || len(res.Created) != len(models.Categories) {
		t.Fatalf("result = %+v", res)
	}
	if docs.Sets != len(models.Categories) {
		t.Fatalf("expected %d individual writes, got %d", len(models.Categories), docs.Sets)
	}
}

func TestInitializeCategoriesIndividualTimeouts(t *testing.T) {
	docs := NewMemoryDocuments()
	docs.BatchErr = errors.New("batch rejected")
	docs.setHook = func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}
	s := NewPackageStore(docs)

	_, err := s.InitializeCategories(helpers.TestCtx(), dto.InitTimeouts{Batch: time.Second, Write: 5 * time.Millisecond})
	var timeoutErr *errs.TimeoutError
	if !errors.As(err, &timeoutErr) {
		t.Fatalf("expected TimeoutError, got %v", err)
	}
}

func TestInitializeCategoriesPermissionDenied(t *testing.T) {
	docs := NewMemoryDocuments()
	docs.BatchErr = status.Error(codes.PermissionDenied, "Missing or insufficient permissions.")
	s := NewPackageStore(docs)

	_, err := s.InitializeCategories(helpers.TestCtx(), testTimeouts)
	var writeErr *errs.WriteFailedError
	if !errors.As(err, &writeErr) {
		t.Fatalf("expected WriteFailedError, got %v", err)
	}
	if docs.Sets != 0 {
		t.Fatalf("permission failure must not fall back, got %d writes", docs.Sets)
	}
}

func TestInitializeCategoriesReadFailureWritesNothing(t *testing.T) {
	docs := NewMemoryDocuments()
	docs.ListErr = errors.New("list boom")
	s := NewPackageStore(docs)

	_, err := s.InitializeCategories(helpers.TestCtx(), testTimeouts)
	var dbErr *errs.DatabaseError
	if !errors.As(err, &dbErr) {
		t.Fatalf("expected DatabaseError, got %v", err)
	}
	if docs.Sets != 0 || docs.Batches != 0 {
		t.Fatal("no writes expected after a failed read")
	}
}
