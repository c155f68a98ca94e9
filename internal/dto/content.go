package dto

import "github.com/GregMSThompson/travel-admin/internal/models"

type TestimonialRequest struct {
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role"`
	ImageURL string `json:"imageUrl" validate:"omitempty,url"`
	Rating   *int   `json:"rating"` // defaults to 5
	Message  string `json:"message" validate:"required"`
}

type HighlightRequest struct {
	Type        models.HighlightType `json:"type" validate:"required,oneof=video description"`
	VideoURL    string               `json:"videoUrl" validate:"required_if=Type video,omitempty,url"`
	Thumbnail   string               `json:"thumbnail" validate:"required_if=Type video,omitempty,url"`
	Title       string               `json:"title" validate:"required_if=Type description"`
	Description string               `json:"description" validate:"required_if=Type description"`
	Background  string               `json:"background" validate:"required_if=Type description,omitempty,url"`
}

type SettingsRequest struct {
	SiteName  *string `json:"siteName" validate:"omitempty,min=1"`
	SiteEmail *string `json:"siteEmail" validate:"omitempty,email"`
	SitePhone *string `json:"sitePhone"`
}

type DashboardStats struct {
	TotalPackages     int                     `json:"totalPackages"`
	PackagesBy        map[models.Category]int `json:"packagesByCategory"`
	TotalTestimonials int                     `json:"totalTestimonials"`
	TotalHighlights   int                     `json:"totalDestinations"`
}
