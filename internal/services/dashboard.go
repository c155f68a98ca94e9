package services

import (
	"context"

	"github.com/GregMSThompson/travel-admin/internal/dto"
	"github.com/GregMSThompson/travel-admin/internal/models"
)

type packageLister interface {
	ListAll(ctx context.Context) (map[models.Category][]models.PackageRecord, error)
}

type counter interface {
	Count(ctx context.Context) (int, error)
}

type dashboardService struct {
	packages     packageLister
	testimonials counter
	highlights   counter
}

func NewDashboardService(packages packageLister, testimonials, highlights counter) *dashboardService {
	return &dashboardService{packages: packages, testimonials: testimonials, highlights: highlights}
}

func (s *dashboardService) Stats(ctx context.Context) (dto.DashboardStats, error) {
	all, err := s.packages.ListAll(ctx)
	if err != nil {
		return dto.DashboardStats{}, err
	}
	stats := dto.DashboardStats{PackagesBy: make(map[models.Category]int, len(models.Categories))}
	for _, c := range models.Categories {
		stats.PackagesBy[c] = len(all[c])
		stats.TotalPackages += len(all[c])
	}

	if stats.TotalTestimonials, err = s.testimonials.Count(ctx); err != nil {
		return dto.DashboardStats{}, err
	}
	if stats.TotalHighlights, err = s.highlights.Count(ctx); err != nil {
		return dto.DashboardStats{}, err
	}
	return stats, nil
}
