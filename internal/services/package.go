package services

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/GregMSThompson/travel-admin/internal/dto"
	"github.com/GregMSThompson/travel-admin/internal/errs"
	"github.com/GregMSThompson/travel-admin/internal/models"
	"github.com/GregMSThompson/travel-admin/internal/store"
	"github.com/GregMSThompson/travel-admin/pkg/helpers"
	"github.com/GregMSThompson/travel-admin/pkg/logger"
)

type packageStore interface {
	ListAll(ctx context.Context) (map[models.Category][]models.PackageRecord, error)
	Items(ctx context.Context, category models.Category) ([]models.PackageRecord, error)
	Add(ctx context.Context, category models.Category, record models.PackageRecord) error
	Edit(ctx context.Context, category models.Category, index int, etag string, record models.PackageRecord) error
	Delete(ctx context.Context, category models.Category, index int, etag string) error
	Move(ctx context.Context, from models.Category, index int, etag string, to models.Category, record models.PackageRecord) error
	InitializeCategories(ctx context.Context, timeouts dto.InitTimeouts) (dto.InitResult, error)
}

type packageService struct {
	store    packageStore
	validate *validator.Validate
	timeouts dto.InitTimeouts
}

func NewPackageService(store packageStore, validate *validator.Validate, timeouts dto.InitTimeouts) *packageService {
	return &packageService{store: store, validate: validate, timeouts: timeouts}
}

// List returns the packages grouped by category plus a flat, filtered list in
// category display order.
func (s *packageService) List(ctx context.Context, q dto.PackageQuery) (dto.PackageListResponse, error) {
	if q.Category != "" && !q.Category.Valid() {
		return dto.PackageListResponse{}, errs.NewValidationError("unknown category: " + string(q.Category))
	}

	all, err := s.store.ListAll(ctx)
	if err != nil {
		return dto.PackageListResponse{}, err
	}

	search := strings.ToLower(strings.TrimSpace(q.Search))
	resp := dto.PackageListResponse{
		Categories: make(map[models.Category][]dto.PackageItem, len(all)),
		Items:      []dto.PackageItem{},
	}
	for _, c := range models.Categories {
		records := all[c]
		items := make([]dto.PackageItem, len(records))
		for i, r := range records {
			items[i] = dto.PackageItem{PackageRecord: r, Category: c, Index: i, ETag: store.RecordETag(r)}
		}
		resp.Categories[c] = items

		if q.Category != "" && q.Category != c {
			continue
		}
		for _, item := range items {
			if search == "" || matchesSearch(item.PackageRecord, search) {
				resp.Items = append(resp.Items, item)
			}
		}
	}
	return resp, nil
}

// Get returns one category's items.
func (s *packageService) Get(ctx context.Context, category models.Category) ([]dto.PackageItem, error) {
	if !category.Valid() {
		return nil, errs.NewValidationError("unknown category: " + string(category))
	}
	records, err := s.store.Items(ctx, category)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PackageItem, len(records))
	for i, r := range records {
		items[i] = dto.PackageItem{PackageRecord: r, Category: category, Index: i, ETag: store.RecordETag(r)}
	}
	return items, nil
}

func (s *packageService) Create(ctx context.Context, req dto.PackageRequest) (models.PackageRecord, error) {
	details, err := s.build(req)
	if err != nil {
		return models.PackageRecord{}, err
	}
	record := details.Record()
	if err := s.store.Add(ctx, details.Category(), record); err != nil {
		return models.PackageRecord{}, err
	}
	return record, nil
}

// Update replaces the record at (category, index). A different req.Category
// moves the record: it is removed from category and appended to the new one.
func (s *packageService) Update(ctx context.Context, category models.Category, index int, req dto.PackageEditRequest) (models.PackageRecord, error) {
	if !category.Valid() {
		return models.PackageRecord{}, errs.NewValidationError("unknown category: " + string(category))
	}
	if req.Category == "" {
		req.Category = category
	}
	details, err := s.build(req.PackageRequest)
	if err != nil {
		return models.PackageRecord{}, err
	}
	record := details.Record()

	if details.Category() != category {
		logger.FromContext(ctx).Info("moving package to another category", "from", category, "to", details.Category())
		err = s.store.Move(ctx, category, index, req.ETag, details.Category(), record)
	} else {
		err = s.store.Edit(ctx, category, index, req.ETag, record)
	}
	if err != nil {
		return models.PackageRecord{}, err
	}
	return record, nil
}

func (s *packageService) Delete(ctx context.Context, category models.Category, index int, etag string) error {
	if !category.Valid() {
		return errs.NewValidationError("unknown category: " + string(category))
	}
	return s.store.Delete(ctx, category, index, etag)
}

// Initialize creates missing category documents. Existing lists are untouched.
func (s *packageService) Initialize(ctx context.Context) (dto.InitResult, error) {
	return s.store.InitializeCategories(ctx, s.timeouts)
}

// build turns the flat form into the category's variant and validates it.
// Fields the category does not carry are dropped.
func (s *packageService) build(req dto.PackageRequest) (models.PackageDetails, error) {
	title := strings.TrimSpace(helpers.FirstNonEmpty(req.Title, req.Name))
	days := strings.TrimSpace(helpers.FirstNonEmpty(req.Days, req.Duration))

	var details models.PackageDetails
	switch req.Category {
	case models.CategoryTopDestinations:
		details = models.TopDestinationPackage{
			Title: title, ImageURL: req.ImageURL, Days: days,
			Price: req.Price, Location: req.Location, Description: req.Description,
		}
	case models.CategoryBestDeals:
		details = models.BestDealPackage{
			Title: title, ImageURL: req.ImageURL, Price: req.Price,
			Discount: req.Discount, Days: days, Description: req.Description,
		}
	case models.CategoryMostSearched:
		details = models.MostSearchedPackage{
			Title: title, ImageURL: req.ImageURL, Days: days,
			Price: req.Price, Location: req.Location, Description: req.Description,
		}
	case models.CategoryCurated:
		details = models.CuratedPackage{
			Title: title, ImageURL: req.ImageURL, Description: req.Description,
		}
	case models.CategoryUmrah:
		details = models.UmrahPackage{
			Title: title, ImageURL: req.ImageURL, Price: req.Price, Duration: days,
			Location: req.Location, Rating: strings.TrimSpace(req.Rating),
			Features: helpers.SplitCSV(req.Features), Description: req.Description,
		}
	case "":
		return nil, errs.NewValidationError("category is required")
	default:
		return nil, errs.NewValidationError("unknown category: " + string(req.Category))
	}

	if err := validateStruct(s.validate, details); err != nil {
		return nil, err
	}
	return details, nil
}

func matchesSearch(r models.PackageRecord, search string) bool {
	return strings.Contains(strings.ToLower(r.Title), search) ||
		strings.Contains(strings.ToLower(r.Name), search)
}
