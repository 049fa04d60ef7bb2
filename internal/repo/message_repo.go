// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Message
// model. Messages are insert-only; there is no update or delete path.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-hosting-portal/internal/domain"
)

// CreateMessage inserts one contact submission. Topics arrives already
// flattened to its stored form (see services.ContactService). CreatedAt is
// set to UTC insertion time, which keeps it monotonic with insert order.
func CreateMessage(ctx context.Context, db *gorm.DB, name, email, body, topics string) (*domain.Message, error) {
	m := &domain.Message{
		Name:      name,
		Email:     email,
		Body:      body,
		Topics:    topics,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

// CountMessages returns the total number of stored submissions.
func CountMessages(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&domain.Message{}).Count(&total).Error
	return total, err
}
