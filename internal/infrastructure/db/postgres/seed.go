package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/clientdesk/crm-api/internal/core/domain"
)

// Default bootstrap credentials. The password is a convenience for fresh
// databases only; operators are expected to rotate it after first login.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "Admin@123"
)

// SeedDefaultAdmin guarantees at least one admin account exists. The
// database row is the source of truth, so the function is safe to call on
// every boot: if any admin-role user is present it does nothing.
func SeedDefaultAdmin(ctx context.Context, db *sqlx.DB, logger zerolog.Logger) error {
	return WithinTx(ctx, db, func(tx *sqlx.Tx) error {
		var exists bool
		query := "SELECT EXISTS(SELECT 1 FROM users WHERE role = $1)"
		if err := tx.GetContext(ctx, &exists, query, domain.RoleAdmin); err != nil {
			return fmt.Errorf("check admin exists: %w", err)
		}
		if exists {
			logger.Debug().Msg("admin account present, seeding skipped")
			return nil
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(DefaultAdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash default admin password: %w", err)
		}

		insert := "INSERT INTO users (username, password_hash, role) VALUES ($1, $2, $3)"
		if _, err := tx.ExecContext(ctx, insert, DefaultAdminUsername, string(hash), domain.RoleAdmin); err != nil {
			return fmt.Errorf("insert default admin: %w", err)
		}

		logger.Info().Str("username", DefaultAdminUsername).Msg("default admin account created")
		return nil
	})
}
