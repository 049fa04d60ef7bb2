// Package services - ContactService
//
// This file implements contact-form submissions. The only business rule is
// topic normalization: zero or more selected topics are flattened into a
// single text column before the insert.
package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/tbourn/go-hosting-portal/internal/domain"
)

// TopicSeparator joins selected topics into the stored text form. A topic
// that itself contains the separator makes the original boundaries
// unrecoverable; accepted, since nothing reads the list back.
const TopicSeparator = ", "

// MessageRepo defines the repository contract required by ContactService.
type MessageRepo interface {
	// CreateMessage inserts one submission with topics already flattened.
	CreateMessage(ctx context.Context, db *gorm.DB, name, email, body, topics string) (*domain.Message, error)
}

// ContactService persists contact-form submissions.
type ContactService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the message repository used by this service.
	Repo MessageRepo
}

// NewContactService constructs a ContactService.
func NewContactService(db *gorm.DB, r MessageRepo) *ContactService {
	return &ContactService{DB: db, Repo: r}
}

// Submit stores one submission. Topics are joined with TopicSeparator; an
// empty selection stores the empty string. Fields are passed through without
// server-side validation beyond what the schema enforces.
func (s *ContactService) Submit(ctx context.Context, name, email, body string, topics []string) (*domain.Message, error) {
	return s.Repo.CreateMessage(ctx, s.DB, name, email, body, JoinTopics(topics))
}

// JoinTopics flattens a topic selection into its stored form.
func JoinTopics(topics []string) string {
	return strings.Join(topics, TopicSeparator)
}
