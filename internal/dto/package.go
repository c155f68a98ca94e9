package dto

import "github.com/GregMSThompson/travel-admin/internal/models"

// PackageRequest is the flat package form. Only the fields valid for the
// chosen category are kept.
type PackageRequest struct {
	Category    models.Category `json:"category"`
	Title       string          `json:"title"`
	Name        string          `json:"name"`
	ImageURL    string          `json:"imageUrl"`
	Days        string          `json:"days"`
	Duration    string          `json:"duration"`
	Price       string          `json:"price"`
	Discount    string          `json:"discount"`
	Location    string          `json:"location"`
	Rating      string          `json:"rating"`
	Description string          `json:"description"`
	Features    string          `json:"features"` // comma-separated
}

// PackageEditRequest addresses an existing record by position. ETag is the
// value returned by the listing; when set, the edit is refused if the record
// at Index has changed.
type PackageEditRequest struct {
	PackageRequest
	ETag string `json:"-"`
}

// PackageItem is a record as listed, with its address.
type PackageItem struct {
	models.PackageRecord
	Category models.Category `json:"category"`
	Index    int             `json:"index"`
	ETag     string          `json:"etag"`
}

type PackageQuery struct {
	Category models.Category // empty means all
	Search   string          // case-insensitive title/name substring
}

type PackageListResponse struct {
	Categories map[models.Category][]PackageItem `json:"categories"`
	Items      []PackageItem                     `json:"items"`
}
