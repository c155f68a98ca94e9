package services

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/GregMSThompson/travel-admin/internal/dto"
	"github.com/GregMSThompson/travel-admin/internal/errs"
	"github.com/GregMSThompson/travel-admin/internal/models"
	"github.com/GregMSThompson/travel-admin/pkg/helpers"
)

const defaultTestimonialRating = 5

// entityStore is the keyed-collection accessor shared by testimonials and
// highlights.
type entityStore[T any] interface {
	Create(ctx context.Context, v T) (string, error)
	Get(ctx context.Context, id string) (T, error)
	Update(ctx context.Context, id string, v T) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]T, error)
}

type testimonialService struct {
	store    entityStore[models.Testimonial]
	validate *validator.Validate
}

func NewTestimonialService(store entityStore[models.Testimonial], validate *validator.Validate) *testimonialService {
	return &testimonialService{store: store, validate: validate}
}

func (s *testimonialService) List(ctx context.Context) ([]models.Testimonial, error) {
	return s.store.List(ctx)
}

func (s *testimonialService) Get(ctx context.Context, id string) (models.Testimonial, error) {
	return s.store.Get(ctx, id)
}

func (s *testimonialService) Create(ctx context.Context, req dto.TestimonialRequest) (models.Testimonial, error) {
	t, err := s.build(req)
	if err != nil {
		return models.Testimonial{}, err
	}
	id, err := s.store.Create(ctx, t)
	if err != nil {
		return models.Testimonial{}, err
	}
	t.ID = id
	return t, nil
}

func (s *testimonialService) Update(ctx context.Context, id string, req dto.TestimonialRequest) (models.Testimonial, error) {
	t, err := s.build(req)
	if err != nil {
		return models.Testimonial{}, err
	}
	if err := s.store.Update(ctx, id, t); err != nil {
		return models.Testimonial{}, err
	}
	t.ID = id
	return t, nil
}

func (s *testimonialService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

func (s *testimonialService) build(req dto.TestimonialRequest) (models.Testimonial, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Message = strings.TrimSpace(req.Message)
	if err := validateStruct(s.validate, req); err != nil {
		return models.Testimonial{}, err
	}

	rating := helpers.ValueOr(req.Rating, defaultTestimonialRating)
	if rating < 1 || rating > 5 {
		return models.Testimonial{}, errs.NewValidationError("rating must be between 1 and 5")
	}

	return models.Testimonial{
		Name:     req.Name,
		Role:     strings.TrimSpace(req.Role),
		ImageURL: req.ImageURL,
		Rating:   rating,
		Message:  req.Message,
	}, nil
}

type highlightService struct {
	store    entityStore[models.DestinationHighlight]
	validate *validator.Validate
}

func NewHighlightService(store entityStore[models.DestinationHighlight], validate *validator.Validate) *highlightService {
	return &highlightService{store: store, validate: validate}
}

func (s *highlightService) List(ctx context.Context) ([]models.DestinationHighlight, error) {
	return s.store.List(ctx)
}

func (s *highlightService) Get(ctx context.Context, id string) (models.DestinationHighlight, error) {
	return s.store.Get(ctx, id)
}

func (s *highlightService) Create(ctx context.Context, req dto.HighlightRequest) (models.DestinationHighlight, error) {
	h, err := s.build(req)
	if err != nil {
		return models.DestinationHighlight{}, err
	}
	id, err := s.store.Create(ctx, h)
	if err != nil {
		return models.DestinationHighlight{}, err
	}
	h.ID = id
	return h, nil
}

func (s *highlightService) Update(ctx context.Context, id string, req dto.HighlightRequest) (models.DestinationHighlight, error) {
	h, err := s.build(req)
	if err != nil {
		return models.DestinationHighlight{}, err
	}
	if err := s.store.Update(ctx, id, h); err != nil {
		return models.DestinationHighlight{}, err
	}
	h.ID = id
	return h, nil
}

func (s *highlightService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// build keeps only the fields of the selected variant.
func (s *highlightService) build(req dto.HighlightRequest) (models.DestinationHighlight, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	if err := validateStruct(s.validate, req); err != nil {
		return models.DestinationHighlight{}, err
	}

	h := models.DestinationHighlight{Type: req.Type}
	switch req.Type {
	case models.HighlightVideo:
		h.VideoURL = req.VideoURL
		h.Thumbnail = req.Thumbnail
	case models.HighlightDescription:
		h.Title = req.Title
		h.Description = req.Description
		h.Background = req.Background
	}
	return h, nil
}

type settingsStore interface {
	Get(ctx context.Context) (models.SiteSettings, error)
	Update(ctx context.Context, in models.SiteSettings) (models.SiteSettings, error)
}

type settingsService struct {
	store    settingsStore
	validate *validator.Validate
}

func NewSettingsService(store settingsStore, validate *validator.Validate) *settingsService {
	return &settingsService{store: store, validate: validate}
}

func (s *settingsService) Get(ctx context.Context) (models.SiteSettings, error) {
	return s.store.Get(ctx)
}

// Update saves the fields present in req; absent fields keep their value.
func (s *settingsService) Update(ctx context.Context, req dto.SettingsRequest) (models.SiteSettings, error) {
	if err := validateStruct(s.validate, req); err != nil {
		return models.SiteSettings{}, err
	}
	in := models.SiteSettings{
		SiteName:  helpers.TrimmedValue(req.SiteName),
		SiteEmail: helpers.TrimmedValue(req.SiteEmail),
		SitePhone: helpers.TrimmedValue(req.SitePhone),
	}
	return s.store.Update(ctx, in)
}
