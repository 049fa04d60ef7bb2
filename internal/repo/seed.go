// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file inserts the default data a fresh installation
// starts with.
package repo

import (
	"context"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/tbourn/go-hosting-portal/internal/domain"
)

// Default administrative account created on first run. The credentials are
// deliberately fixed; rotating them is an operator task, not a code change.
const (
	SeedAdminUsername = "admin"
	SeedAdminPassword = "Admin*1234"
	SeedAdminName     = "Administrador"
)

// seedServices is the initial catalog. The first title must stay in sync
// with domain.HostingPlanTitle, which the /hosting page looks up.
func seedServices() []domain.Service {
	return []domain.Service{
		{
			Title:   domain.HostingPlanTitle,
			Price:   "desde $4.99/mes",
			Summary: "Alojamiento compartido con SSD, panel de control y certificado SSL incluido.",
		},
		{
			Title:   "Servidores VPS",
			Price:   "desde $12.99/mes",
			Summary: "Servidores virtuales con recursos garantizados y acceso root completo.",
		},
		{
			Title:   "Registro de Dominios",
			Price:   "desde $9.99/año",
			Summary: "Registro y renovación de dominios con DNS administrado y privacidad WHOIS.",
		},
	}
}

// SeedIfEmpty inserts the default admin user and catalog, but only when the
// users table is empty. Any existing user, even with an empty catalog,
// suppresses the whole seed, so the check-then-insert never duplicates data
// across restarts.
//
// The inserts run in one transaction: a partial seed would leave a user row
// that suppresses every later attempt while the catalog stays empty, so
// either everything lands or nothing does and the next start retries.
//
// A failure here is not fatal: the caller logs it and the portal runs with
// whatever data exists.
func SeedIfEmpty(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.User{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(SeedAdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := domain.User{
			Username:     SeedAdminUsername,
			PasswordHash: string(hash),
			DisplayName:  SeedAdminName,
		}
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}

		services := seedServices()
		return tx.Create(&services).Error
	})
}
