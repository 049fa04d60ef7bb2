// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Service
// model. Services are seeded once and read-only afterwards, so only lookups
// live here.
package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tbourn/go-hosting-portal/internal/domain"
)

// ListServices returns all catalog entries ordered by id, i.e. seed order.
// It returns an empty slice when the catalog is empty.
func ListServices(ctx context.Context, db *gorm.DB) ([]domain.Service, error) {
	var out []domain.Service
	err := db.WithContext(ctx).
		Order("id asc").
		Find(&out).Error
	return out, err
}

// GetServiceByTitle fetches the single service whose title exactly matches
// title. Absence is a normal state (the catalog may never have been seeded),
// so it is reported as (nil, nil) rather than an error.
func GetServiceByTitle(ctx context.Context, db *gorm.DB, title string) (*domain.Service, error) {
	var s domain.Service
	err := db.WithContext(ctx).
		Where("title = ?", title).
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
