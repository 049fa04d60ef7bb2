// Package services - CatalogService
//
// This file implements read access to the seeded service catalog: the full
// listing shown on the dashboard and the fixed-title lookup used by the
// hosting page.
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-hosting-portal/internal/domain"
)

// ServiceRepo defines the repository contract required by CatalogService.
type ServiceRepo interface {
	// ListServices returns all catalog entries in seed order.
	ListServices(ctx context.Context, db *gorm.DB) ([]domain.Service, error)
	// GetServiceByTitle fetches a service by exact title, (nil, nil) when absent.
	GetServiceByTitle(ctx context.Context, db *gorm.DB, title string) (*domain.Service, error)
}

// CatalogService exposes the read-only service catalog.
type CatalogService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the service repository used by this service.
	Repo ServiceRepo
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(db *gorm.DB, r ServiceRepo) *CatalogService {
	return &CatalogService{DB: db, Repo: r}
}

// List returns every catalog entry for the dashboard.
func (s *CatalogService) List(ctx context.Context) ([]domain.Service, error) {
	return s.Repo.ListServices(ctx, s.DB)
}

// HostingPlan returns the service titled domain.HostingPlanTitle, or nil
// when the catalog has no such row. Absence is not an error: the hosting
// page renders either way.
func (s *CatalogService) HostingPlan(ctx context.Context) (*domain.Service, error) {
	return s.Repo.GetServiceByTitle(ctx, s.DB, domain.HostingPlanTitle)
}
