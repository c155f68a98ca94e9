package store

import (
	"context"
	"errors"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/GregMSThompson/travel-admin/internal/dto"
	"github.com/GregMSThompson/travel-admin/internal/errs"
	"github.com/GregMSThompson/travel-admin/internal/models"
	"github.com/GregMSThompson/travel-admin/pkg/logger"
)

// packageStore keeps one document per category whose items field is the
// ordered package list. Every mutation reads the whole list, changes it in
// memory and writes the whole list back; concurrent editors of the same
// category get last-write-wins.
type packageStore struct {
	docs  Documents
	guard *guard
}

func NewPackageStore(docs Documents) *packageStore {
	return &packageStore{docs: docs, guard: newGuard(docs)}
}

// Items returns the category's list. A missing document is an empty list.
func (s *packageStore) Items(ctx context.Context, category models.Category) ([]models.PackageRecord, error) {
	raw, err := s.rawItems(ctx, category)
	if err != nil {
		return nil, err
	}
	return decodeItems(raw), nil
}

// rawItems returns a copy of the stored items array. Mutations replace or
// remove single elements of it and write every other element back as read.
func (s *packageStore) rawItems(ctx context.Context, category models.Category) ([]any, error) {
	fields, found, err := s.docs.Get(ctx, PackagesCollection, string(category))
	if err != nil {
		if isOffline(err) {
			return nil, errs.NewNetworkUnavailableError("read packages", err)
		}
		return nil, errs.NewDatabaseError("read", "failed to read packages for "+string(category), err)
	}
	if !found {
		return []any{}, nil
	}
	return append([]any{}, itemsOf(fields)...), nil
}

// ListAll maps every category to its list. Known categories without a
// document map to an empty list.
func (s *packageStore) ListAll(ctx context.Context) (map[models.Category][]models.PackageRecord, error) {
	docs, err := s.docs.List(ctx, PackagesCollection)
	if err != nil {
		if isOffline(err) {
			return nil, errs.NewNetworkUnavailableError("list packages", err)
		}
		return nil, errs.NewDatabaseError("read", "failed to list packages", err)
	}

	out := make(map[models.Category][]models.PackageRecord, len(models.Categories))
	for _, c := range models.Categories {
		out[c] = []models.PackageRecord{}
	}
	for _, d := range docs {
		out[models.Category(d.Key)] = decodeItems(itemsOf(d.Fields))
	}
	return out, nil
}

// Add appends record to the category. When the current list cannot be read
// the write still goes ahead on an empty list, which can overwrite records
// the read would have returned.
func (s *packageStore) Add(ctx context.Context, category models.Category, record models.PackageRecord) error {
	log := logger.FromContext(ctx)

	raw, err := s.rawItems(ctx, category)
	if err != nil {
		log.Warn("could not read category before add, writing with an empty list",
			"category", category, "error", err)
		raw = nil
	}

	raw = append(raw, packageToFields(record))
	if err := s.write(ctx, category, raw); err != nil {
		return err
	}
	log.Info("package added", "category", category, "index", len(raw)-1)
	return nil
}

// Edit replaces the record at index. etag must match the record currently
// at index.
func (s *packageStore) Edit(ctx context.Context, category models.Category, index int, etag string, record models.PackageRecord) error {
	raw, err := s.rawItems(ctx, category)
	if err != nil {
		return err
	}
	if err := checkIndex(category, raw, index, etag); err != nil {
		return err
	}

	raw[index] = packageToFields(record)
	if err := s.write(ctx, category, raw); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("package updated", "category", category, "index", index)
	return nil
}

// Delete removes the record at index, keeping the order of the rest. etag
// must match the record currently at index, so a repeated delete fails
// instead of removing the element that shifted into its place.
func (s *packageStore) Delete(ctx context.Context, category models.Category, index int, etag string) error {
	raw, err := s.rawItems(ctx, category)
	if err != nil {
		return err
	}
	if err := checkIndex(category, raw, index, etag); err != nil {
		return err
	}

	if err := s.write(ctx, category, removeAt(raw, index)); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("package deleted", "category", category, "index", index)
	return nil
}

// Move deletes the record at (from, index) and appends record to to. Both
// lists are written in one batch.
func (s *packageStore) Move(ctx context.Context, from models.Category, index int, etag string, to models.Category, record models.PackageRecord) error {
	source, err := s.rawItems(ctx, from)
	if err != nil {
		return err
	}
	if err := checkIndex(from, source, index, etag); err != nil {
		return err
	}
	target, err := s.rawItems(ctx, to)
	if err != nil {
		return err
	}

	s.guard.Ensure(ctx)
	err = s.docs.CommitBatch(ctx, []BatchWrite{
		{Collection: PackagesCollection, Key: string(from), Fields: Fields{"items": removeAt(source, index)}},
		{Collection: PackagesCollection, Key: string(to), Fields: Fields{"items": append(target, packageToFields(record))}},
	})
	if err != nil {
		return ClassifyWriteError("move package", err)
	}
	logger.FromContext(ctx).Info("package moved", "from", from, "to", to, "index", index)
	return nil
}

func (s *packageStore) write(ctx context.Context, category models.Category, raw []any) error {
	s.guard.Ensure(ctx)
	err := s.docs.Set(ctx, PackagesCollection, string(category), Fields{"items": raw}, SetOptions{})
	return ClassifyWriteError("save packages", err)
}

// InitializeCategories creates an empty document for every category that has
// none. The writes go in one batch bounded by timeouts.Batch; if the batch
// fails for any reason other than permissions, each write is retried alone
// bounded by timeouts.Write.
func (s *packageStore) InitializeCategories(ctx context.Context, timeouts dto.InitTimeouts) (dto.InitResult, error) {
	log := logger.FromContext(ctx)
	result := dto.InitResult{Created: []string{}, Existing: []string{}}

	s.guard.Ensure(ctx)
	docs, err := s.docs.List(ctx, PackagesCollection)
	if err != nil {
		if isOffline(err) {
			return result, errs.NewNetworkUnavailableError("list packages", err)
		}
		return result, errs.NewDatabaseError("read", "failed to list packages", err)
	}
	existing := make(map[string]bool, len(docs))
	for _, d := range docs {
		existing[d.Key] = true
	}

	var writes []BatchWrite
	for _, c := range models.Categories {
		if existing[string(c)] {
			result.Existing = append(result.Existing, string(c))
			continue
		}
		writes = append(writes, BatchWrite{
			Collection: PackagesCollection,
			Key:        string(c),
			Fields:     Fields{"items": []any{}},
			Options:    SetOptions{Merge: true},
		})
	}
	if len(writes) == 0 {
		log.Info("package categories already initialized")
		return result, nil
	}

	err = withTimeout(ctx, timeouts.Batch, "commit category batch", func(ctx context.Context) error {
		return s.docs.CommitBatch(ctx, writes)
	})
	if err == nil {
		for _, w := range writes {
			result.Created = append(result.Created, w.Key)
		}
		log.Info("package categories initialized", "created", result.Created)
		return result, nil
	}
	if isPermissionDenied(err) {
		return result, errs.NewWriteFailedError("initialize categories",
			errors.New("security rules are blocking writes to the packages collection: "+err.Error()))
	}

	log.Warn("category batch failed, falling back to individual writes", "error", err)
	result.Fallback = true

	var lastErr error
	for _, w := range writes {
		err := withTimeout(ctx, timeouts.Write, "create packages/"+w.Key, func(ctx context.Context) error {
			return s.docs.Set(ctx, w.Collection, w.Key, w.Fields, w.Options)
		})
		if err != nil {
			if isPermissionDenied(err) {
				return result, errs.NewWriteFailedError("initialize categories",
					errors.New("security rules are blocking writes to the packages collection: "+err.Error()))
			}
			log.Error("failed to create category document", "category", w.Key, "error", err)
			lastErr = err
			continue
		}
		result.Created = append(result.Created, w.Key)
	}

	if len(result.Created) == 0 {
		return result, ClassifyWriteError("initialize categories", lastErr)
	}
	log.Info("package categories initialized with individual writes", "created", result.Created)
	return result, nil
}

// withTimeout bounds fn by d, reporting an expired deadline as a
// TimeoutError rather than a store error.
func withTimeout(ctx context.Context, d time.Duration, operation string, fn func(ctx context.Context) error) error {
	if d <= 0 {
		return fn(ctx)
	}
	tctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()

	err := fn(tctx)
	if err == nil {
		return nil
	}
	if errors.Is(tctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) ||
		status.Code(err) == codes.DeadlineExceeded {
		return errs.NewTimeoutError(operation, d)
	}
	return err
}

func checkIndex(category models.Category, raw []any, index int, etag string) error {
	if index < 0 || index >= len(raw) {
		return errs.NewIndexOutOfRangeError(string(category), index, len(raw))
	}
	if etag == "" {
		return errs.NewPreconditionRequiredError(string(category), index)
	}
	if RecordETag(decodeItem(raw[index])) != etag {
		return errs.NewStaleIndexError(string(category), index, len(raw))
	}
	return nil
}

func removeAt(raw []any, index int) []any {
	out := make([]any, 0, len(raw)-1)
	out = append(out, raw[:index]...)
	return append(out, raw[index+1:]...)
}
