package repository

import (
	"context"
	"database/sql"

	"seasonal_calc/internal/models"
)

// SettingsRepo is the read/write accessor for the single settings slot.
type SettingsRepo interface {
	Save(ctx context.Context, s models.Settings) error
	Load(ctx context.Context) (*models.Settings, error)
}

type Repository struct {
	Settings SettingsRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Settings: NewSettingsSQLite(db),
	}
}
