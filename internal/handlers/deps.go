package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/GregMSThompson/travel-admin/internal/dto"
	"github.com/GregMSThompson/travel-admin/internal/errs"
	"github.com/GregMSThompson/travel-admin/internal/models"
	"github.com/GregMSThompson/travel-admin/internal/response"
)

type PackageService interface {
	List(ctx context.Context, q dto.PackageQuery) (dto.PackageListResponse, error)
	Get(ctx context.Context, category models.Category) ([]dto.PackageItem, error)
	Create(ctx context.Context, req dto.PackageRequest) (models.PackageRecord, error)
	Update(ctx context.Context, category models.Category, index int, req dto.PackageEditRequest) (models.PackageRecord, error)
	Delete(ctx context.Context, category models.Category, index int, etag string) error
	Initialize(ctx context.Context) (dto.InitResult, error)
}

type TestimonialService interface {
	List(ctx context.Context) ([]models.Testimonial, error)
	Get(ctx context.Context, id string) (models.Testimonial, error)
	Create(ctx context.Context, req dto.TestimonialRequest) (models.Testimonial, error)
	Update(ctx context.Context, id string, req dto.TestimonialRequest) (models.Testimonial, error)
	Delete(ctx context.Context, id string) error
}

type HighlightService interface {
	List(ctx context.Context) ([]models.DestinationHighlight, error)
	Get(ctx context.Context, id string) (models.DestinationHighlight, error)
	Create(ctx context.Context, req dto.HighlightRequest) (models.DestinationHighlight, error)
	Update(ctx context.Context, id string, req dto.HighlightRequest) (models.DestinationHighlight, error)
	Delete(ctx context.Context, id string) error
}

type SettingsService interface {
	Get(ctx context.Context) (models.SiteSettings, error)
	Update(ctx context.Context, req dto.SettingsRequest) (models.SiteSettings, error)
}

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (models.Session, error)
	Logout(ctx context.Context, uid string) error
	ChangePassword(ctx context.Context, uid, email string, req dto.ChangePasswordRequest) error
}

type DashboardService interface {
	Stats(ctx context.Context) (dto.DashboardStats, error)
}

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	PackageSvc      PackageService
	TestimonialSvc  TestimonialService
	HighlightSvc    HighlightService
	SettingsSvc     SettingsService
	AuthSvc         AuthService
	DashboardSvc    DashboardService
}

// decodeJSON reads the body into v. Any decoding failure is the caller's
// fault and is reported as invalid input.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errs.NewValidationError("request body is required")
		}
		return errs.NewValidationError("malformed request body")
	}
	return nil
}
