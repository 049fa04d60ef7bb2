// Package services - AuthService
//
// This file implements the login state machine: anonymous → authenticated on
// a successful credential check, authenticated → anonymous on logout. The
// service verifies credentials against the users table and owns the session
// lifecycle through the injected session.Store.
//
// Both failure paths (unknown username, wrong password) collapse into the
// single ErrInvalidCredentials sentinel so handlers cannot leak account
// existence, and the unknown-user path still burns a bcrypt comparison so
// the two failures cost the same.
package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/tbourn/go-hosting-portal/internal/domain"
	"github.com/tbourn/go-hosting-portal/internal/session"
)

// UserRepo defines the repository contract required by AuthService.
type UserRepo interface {
	// GetUserByUsername fetches a user by exact, case-sensitive username.
	GetUserByUsername(ctx context.Context, db *gorm.DB, username string) (*domain.User, error)
}

// AuthService authenticates users and manages their sessions.
type AuthService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the user repository used by this service.
	Repo UserRepo
	// Sessions owns the token ↔ identity mapping.
	Sessions session.Store
}

// NewAuthService constructs an AuthService bound to the given store.
func NewAuthService(db *gorm.DB, r UserRepo, sessions session.Store) *AuthService {
	return &AuthService{DB: db, Repo: r, Sessions: sessions}
}

// dummyHash is a valid bcrypt hash of an arbitrary string. Compared against
// when the username does not exist, so lookup misses and password mismatches
// take comparable time.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// Login verifies (username, password) and, on success, creates a session.
// It returns the identity snapshot and the session token. Every credential
// failure is ErrInvalidCredentials; any other error is a storage failure.
func (s *AuthService) Login(ctx context.Context, username, password string) (domain.Identity, string, error) {
	u, err := s.Repo.GetUserByUsername(ctx, s.DB, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return domain.Identity{}, "", ErrInvalidCredentials
		}
		return domain.Identity{}, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return domain.Identity{}, "", ErrInvalidCredentials
	}

	id := domain.Identity{
		UserID:      u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
	}
	return id, s.Sessions.Create(id), nil
}

// Logout destroys the session token. Unknown tokens are a no-op, which makes
// logout idempotent.
func (s *AuthService) Logout(token string) {
	s.Sessions.Destroy(token)
}
