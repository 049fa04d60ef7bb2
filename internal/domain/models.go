// Package domain defines the persistence models for users, services, and
// contact messages. These types are mapped with GORM and form the core data
// layer of the hosting portal.
package domain

import (
	"time"
)

// HostingPlanTitle is the catalog title the /hosting page looks up. The row
// is seeded with exactly this title; the page must render even when no such
// row exists.
const HostingPlanTitle = "Hosting Web Compartido"

// User is a portal account that can sign in. Accounts are created by the
// first-run seed and are immutable afterwards; this system never updates or
// deletes them.
//
// Fields:
//   - ID: auto-assigned primary key.
//   - Username: unique login name, matched case-sensitively.
//   - PasswordHash: bcrypt hash; the plaintext password is never stored.
//   - DisplayName: name shown in the page header once signed in.
type User struct {
	ID           uint      `json:"id"            gorm:"primaryKey"`
	Username     string    `json:"username"      gorm:"type:varchar(64);not null;uniqueIndex:ux_users_username"`
	PasswordHash string    `json:"-"             gorm:"type:varchar(255);not null"`
	DisplayName  string    `json:"display_name"  gorm:"type:varchar(128);not null"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// Service is a catalog entry shown on the dashboard. Rows are created at
// seed time and are read-only through the exposed routes.
//
// Price is a free-text label (e.g. "desde $4.99/mes"), not a numeric amount.
type Service struct {
	ID        uint      `json:"id"         gorm:"primaryKey"`
	Title     string    `json:"title"      gorm:"type:varchar(128);not null"`
	Price     string    `json:"price"      gorm:"type:varchar(64)"`
	Summary   string    `json:"summary"    gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name for Service.
func (Service) TableName() string { return "services" }

// Message is one contact-form submission. Rows are insert-only: never
// updated, never deleted.
//
// Topics holds the selected categories joined with ", " into a single text
// column. The original list boundaries are unrecoverable if a topic itself
// contains the separator.
type Message struct {
	ID        uint      `json:"id"         gorm:"primaryKey"`
	Name      string    `json:"name"       gorm:"type:varchar(128)"`
	Email     string    `json:"email"      gorm:"type:varchar(254)"`
	Body      string    `json:"body"       gorm:"type:text"`
	Topics    string    `json:"topics"     gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name for Message.
func (Message) TableName() string { return "messages" }

// Identity is the snapshot of an authenticated user carried by a session
// token. It is copied out of the User row at login time so request handling
// never has to re-read the users table.
type Identity struct {
	UserID      uint   `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}
