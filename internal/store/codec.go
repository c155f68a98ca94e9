package store

import (
	"strconv"
	"time"

	"github.com/GregMSThompson/travel-admin/internal/models"
	"github.com/GregMSThompson/travel-admin/pkg/helpers"
)

// Documents carry plain maps so every backend stores the same shape. Empty
// optional fields are left out rather than written as empty strings.

func packageToFields(r models.PackageRecord) Fields {
	f := Fields{
		"title":    r.Title,
		"name":     r.Name,
		"imageUrl": r.ImageURL,
	}
	putString(f, "days", r.Days)
	putString(f, "duration", r.Duration)
	putString(f, "price", r.Price)
	putString(f, "location", r.Location)
	putString(f, "rating", r.Rating)
	putString(f, "discount", r.Discount)
	putString(f, "description", r.Description)
	if len(r.Features) > 0 {
		features := make([]any, len(r.Features))
		for i, feat := range r.Features {
			features[i] = feat
		}
		f["features"] = features
	}
	return f
}

func packageFromFields(f Fields) models.PackageRecord {
	r := models.PackageRecord{
		Title:       stringField(f, "title"),
		Name:        stringField(f, "name"),
		ImageURL:    stringField(f, "imageUrl"),
		Days:        stringField(f, "days"),
		Duration:    stringField(f, "duration"),
		Price:       stringField(f, "price"),
		Location:    stringField(f, "location"),
		Rating:      stringField(f, "rating"),
		Discount:    stringField(f, "discount"),
		Description: stringField(f, "description"),
		Features:    stringsField(f, "features"),
	}
	// older records carry only one of the pair
	if r.Title == "" {
		r.Title = r.Name
	}
	if r.Name == "" {
		r.Name = r.Title
	}
	return r
}

func itemsOf(f Fields) []any {
	raw, _ := f["items"].([]any)
	return raw
}

// decodeItems yields one record per stored element so listed indices match
// positions in the stored array.
func decodeItems(raw []any) []models.PackageRecord {
	items := make([]models.PackageRecord, len(raw))
	for i, entry := range raw {
		items[i] = decodeItem(entry)
	}
	return items
}

// decodeItem reads an entry that is not a map as an empty record. The entry
// itself stays in the stored array untouched.
func decodeItem(entry any) models.PackageRecord {
	m, ok := entry.(map[string]any)
	if !ok {
		return models.PackageRecord{}
	}
	return packageFromFields(m)
}

func testimonialToFields(t models.Testimonial) Fields {
	f := Fields{
		"name":    t.Name,
		"rating":  t.Rating,
		"message": t.Message,
	}
	putString(f, "role", t.Role)
	putString(f, "imageUrl", t.ImageURL)
	return f
}

func testimonialFromFields(key string, f Fields) models.Testimonial {
	return models.Testimonial{
		ID:       key,
		Name:     stringField(f, "name"),
		Role:     stringField(f, "role"),
		ImageURL: stringField(f, "imageUrl"),
		Rating:   intField(f, "rating"),
		Message:  stringField(f, "message"),
	}
}

// highlightToFields writes only the variant selected by Type, so a replace
// drops the other variant's fields.
func highlightToFields(h models.DestinationHighlight) Fields {
	f := Fields{"type": string(h.Type)}
	switch h.Type {
	case models.HighlightVideo:
		putString(f, "videoUrl", h.VideoURL)
		putString(f, "thumbnail", h.Thumbnail)
	case models.HighlightDescription:
		putString(f, "title", h.Title)
		putString(f, "description", h.Description)
		putString(f, "background", h.Background)
	}
	return f
}

func highlightFromFields(key string, f Fields) models.DestinationHighlight {
	return models.DestinationHighlight{
		ID:          key,
		Type:        models.HighlightType(stringField(f, "type")),
		VideoURL:    stringField(f, "videoUrl"),
		Thumbnail:   stringField(f, "thumbnail"),
		Title:       stringField(f, "title"),
		Description: stringField(f, "description"),
		Background:  stringField(f, "background"),
	}
}

func settingsFromFields(f Fields, defaults models.SiteSettings) models.SiteSettings {
	s := defaults
	if v := stringField(f, "siteName"); v != "" {
		s.SiteName = v
	}
	if v := stringField(f, "siteEmail"); v != "" {
		s.SiteEmail = v
	}
	if v := stringField(f, "sitePhone"); v != "" {
		s.SitePhone = v
	}
	if t, ok := f["updatedAt"].(time.Time); ok {
		s.UpdatedAt = t
	}
	return s
}

func putString(f Fields, key, val string) {
	if val != "" {
		f[key] = val
	}
}

func stringField(f Fields, key string) string {
	switch v := f[key].(type) {
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

func intField(f Fields, key string) int {
	switch v := f[key].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		n, _ := strconv.Atoi(v)
		return n
	default:
		return 0
	}
}

// stringsField also accepts a comma-separated string, the shape some early
// records were saved with.
func stringsField(f Fields, key string) []string {
	switch v := f[key].(type) {
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	case []string:
		if len(v) == 0 {
			return nil
		}
		return append([]string(nil), v...)
	case string:
		return helpers.SplitCSV(v)
	default:
		return nil
	}
}
