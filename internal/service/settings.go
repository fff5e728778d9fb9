package service

import (
	"context"
	"fmt"
	"math"

	"seasonal_calc/internal/logger"
	"seasonal_calc/internal/metrics"
	"seasonal_calc/internal/models"
	"seasonal_calc/internal/repository"
)

type SettingsService struct {
	repo repository.SettingsRepo
	log  *logger.Logger
}

func NewSettingsService(repo repository.SettingsRepo, log *logger.Logger) *SettingsService {
	if log == nil {
		log = logger.Nop()
	}
	return &SettingsService{repo: repo, log: log}
}

// Load returns the saved settings or nil when the slot is empty.
func (s *SettingsService) Load(ctx context.Context) (*models.Settings, error) {
	st, err := s.repo.Load(ctx)
	if err != nil {
		metrics.IncreaseSettingsFailuresMetric("load")
		return nil, fmt.Errorf("%w: %w", ErrPersistenceUnavailable, err)
	}
	return st, nil
}

// Save overwrites the slot after validating st. An unknown region is stored as "other".
func (s *SettingsService) Save(ctx context.Context, st models.Settings) error {
	if err := ValidateSettings(st); err != nil {
		return err
	}
	if st.Region != "" {
		st.Region = ResolveRegion(string(st.Region)).Code
	}
	if err := s.repo.Save(ctx, st); err != nil {
		metrics.IncreaseSettingsFailuresMetric("save")
		return fmt.Errorf("%w: %w", ErrPersistenceUnavailable, err)
	}
	return nil
}

// Defaults is what the calculator starts from with nothing saved: the region
// detected from the Accept-Language header and that region's rate.
func (s *SettingsService) Defaults(acceptLanguage string) models.Settings {
	code := regionFromAcceptLanguage(acceptLanguage)
	return models.Settings{
		Region: code,
		Rate:   ResolveRegion(string(code)).RatePerKWh,
	}
}

// ValidateSettings allows zero values (not yet filled in) but nothing negative or non-finite.
func ValidateSettings(st models.Settings) error {
	if st.LightType != "" && !st.LightType.Valid() {
		return fmt.Errorf("%w: lightType must be %q or %q", ErrInvalidInput, models.LightIncandescent, models.LightLED)
	}
	for name, v := range map[string]float64{
		"powerWatt":   st.PowerWatt,
		"hoursPerDay": st.HoursPerDay,
		"rate":        st.Rate,
	} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s must be a non-negative number", ErrInvalidInput, name)
		}
	}
	if st.HoursPerDay > MaxHoursPerDay {
		return fmt.Errorf("%w: hoursPerDay must not exceed 24", ErrInvalidInput)
	}
	if st.Days < 0 {
		return fmt.Errorf("%w: days must not be negative", ErrInvalidInput)
	}
	return nil
}
