package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/zeshan/pressbook/internal/db"
	"github.com/zeshan/pressbook/internal/domain"
)

// SettingsRepo is a SQLite implementation of SettingsRepository.
// The press identity lives in a single-row table with a fixed id.
type SettingsRepo struct {
	db *db.DB
}

// NewSettingsRepo creates a new SettingsRepo
func NewSettingsRepo(database *db.DB) *SettingsRepo {
	return &SettingsRepo{db: database}
}

// Get returns the stored settings, falling back to the shipped defaults
// when no record exists or the row cannot be read.
func (r *SettingsRepo) Get(ctx context.Context) (domain.PressSettings, error) {
	var settings domain.PressSettings
	var tagline, address, contact sql.NullString

	err := r.db.QueryRowContext(ctx, `
		SELECT name, tagline, address, contact
		FROM press_settings
		WHERE id = 1
	`).Scan(&settings.Name, &tagline, &address, &contact)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.DefaultPressSettings(), nil
		}
		// Unreadable settings degrade to defaults rather than failing
		return domain.DefaultPressSettings(), nil
	}

	settings.Tagline = tagline.String
	settings.Address = address.String
	settings.Contact = contact.String
	return settings, nil
}

// Save upserts the singleton settings record
func (r *SettingsRepo) Save(ctx context.Context, settings domain.PressSettings) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO press_settings (id, name, tagline, address, contact, updated_at)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			tagline = excluded.tagline,
			address = excluded.address,
			contact = excluded.contact,
			updated_at = excluded.updated_at
	`,
		settings.Name,
		settings.Tagline,
		settings.Address,
		settings.Contact,
		time.Now().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
