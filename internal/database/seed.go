package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// DefaultAdminEmail identifies the seeded administrator account.
const DefaultAdminEmail = "admin@example.com"

// defaultAdminPassword is the bootstrap password for the seeded admin.
// Operators are expected to change it after first login.
const defaultAdminPassword = "admin123"

// Seed creates the default administrator account if it does not exist yet.
// Seeding is keyed on the well-known admin email: when a row with that
// email is present the call is a no-op, so running Seed repeatedly against
// the same database is safe.
func Seed(db *sql.DB) error {
	var exists bool
	err := db.QueryRow("SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)", DefaultAdminEmail).Scan(&exists)
	if err != nil {
		return fmt.Errorf("seed check admin: %w", err)
	}

	if exists {
		slog.Info("default admin already present, skipping seed")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO users (name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
	`, "Admin", DefaultAdminEmail, string(hash), "admin")
	if err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	slog.Info("database seeded with default admin user",
		"email", DefaultAdminEmail,
	)

	return nil
}
