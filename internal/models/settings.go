package models

import "time"

// SiteSettings is the single settings/site document.
type SiteSettings struct {
	SiteName  string    `firestore:"siteName" json:"siteName"`
	SiteEmail string    `firestore:"siteEmail" json:"siteEmail"`
	SitePhone string    `firestore:"sitePhone" json:"sitePhone"`
	UpdatedAt time.Time `firestore:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// DefaultSiteSettings is served until an admin saves the settings page.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		SiteName:  "Safar Air International",
		SiteEmail: "info@safarair.com",
		SitePhone: "+1 (555) 123-4567",
	}
}
