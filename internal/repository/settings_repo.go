package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"seasonal_calc/internal/models"
)

// SettingsKey is the fixed name of the single persisted settings slot.
const SettingsKey = "xmas-light-cost-settings"

const (
	upsertSettingsSQL = `
		INSERT INTO settings (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value=excluded.value,
			updated_at=excluded.updated_at
	`

	selectSettingsSQL = `SELECT value, updated_at FROM settings WHERE key=?`
)

type SettingsSQLite struct {
	db *sql.DB
}

func NewSettingsSQLite(db *sql.DB) *SettingsSQLite {
	return &SettingsSQLite{db: db}
}

var _ SettingsRepo = (*SettingsSQLite)(nil)

// Save overwrites the slot with s. UpdatedAt is stored in UTC and set to now if zero.
func (r *SettingsSQLite) Save(ctx context.Context, s models.Settings) error {
	ts := s.UpdatedAt
	if ts.IsZero() {
		ts = time.Now().UTC()
	} else {
		ts = ts.UTC()
	}
	s.UpdatedAt = ts

	blob, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, upsertSettingsSQL, SettingsKey, string(blob), ts); err != nil {
		return fmt.Errorf("upsert settings %q: %w", SettingsKey, err)
	}
	return nil
}

// Load returns the saved settings, or (nil, nil) when nothing was saved yet.
func (r *SettingsSQLite) Load(ctx context.Context) (*models.Settings, error) {
	var (
		blob      string
		updatedAt time.Time
	)
	err := r.db.QueryRowContext(ctx, selectSettingsSQL, SettingsKey).Scan(&blob, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select settings %q: %w", SettingsKey, err)
	}

	var s models.Settings
	if err := json.Unmarshal([]byte(blob), &s); err != nil {
		return nil, fmt.Errorf("decode settings %q: %w", SettingsKey, err)
	}
	s.UpdatedAt = updatedAt.UTC()
	return &s, nil
}
