package store

import (
	"context"
	"time"

	"github.com/GregMSThompson/travel-admin/internal/errs"
	"github.com/GregMSThompson/travel-admin/internal/models"
	"github.com/GregMSThompson/travel-admin/pkg/logger"
)

const siteSettingsKey = "site"

type settingsStore struct {
	docs  Documents
	guard *guard
	now   func() time.Time
}

func NewSettingsStore(docs Documents) *settingsStore {
	return &settingsStore{docs: docs, guard: newGuard(docs), now: time.Now}
}

// Get returns the saved settings, filling unset fields from the defaults.
func (s *settingsStore) Get(ctx context.Context) (models.SiteSettings, error) {
	fields, found, err := s.docs.Get(ctx, SettingsCollection, siteSettingsKey)
	if err != nil {
		if isOffline(err) {
			return models.SiteSettings{}, errs.NewNetworkUnavailableError("read settings", err)
		}
		return models.SiteSettings{}, errs.NewDatabaseError("read", "failed to read settings", err)
	}
	if !found {
		return models.DefaultSiteSettings(), nil
	}
	return settingsFromFields(fields, models.DefaultSiteSettings()), nil
}

// Update merges the non-empty fields of in and returns the stored result.
func (s *settingsStore) Update(ctx context.Context, in models.SiteSettings) (models.SiteSettings, error) {
	fields := Fields{"updatedAt": s.now().UTC()}
	putString(fields, "siteName", in.SiteName)
	putString(fields, "siteEmail", in.SiteEmail)
	putString(fields, "sitePhone", in.SitePhone)

	s.guard.Ensure(ctx)
	if err := s.docs.Set(ctx, SettingsCollection, siteSettingsKey, fields, SetOptions{Merge: true}); err != nil {
		return models.SiteSettings{}, ClassifyWriteError("save settings", err)
	}
	logger.FromContext(ctx).Info("site settings updated")
	return s.Get(ctx)
}
