package service

import (
	"context"
	"errors"
	"fmt"

	"seasonal_calc/internal/logger"
	"seasonal_calc/internal/metrics"
	"seasonal_calc/internal/models"
)

// RemoteEstimator is an optional external estimate source.
type RemoteEstimator interface {
	FetchEstimate(ctx context.Context, p models.LightParams) (models.LightCostResult, error)
}

var (
	errRemoteDisabled  = errors.New("remote estimate source not configured")
	errRemoteLightType = errors.New("remote estimate does not match light type")
)

// defaultCurrencySymbol is used when the caller names no region.
const defaultCurrencySymbol = "$"

type LightCostService struct {
	remote   RemoteEstimator
	settings Settings
	log      *logger.Logger
}

// NewLightCostService builds the estimator. remote and settings may be nil.
func NewLightCostService(remote RemoteEstimator, settings Settings, log *logger.Logger) *LightCostService {
	if log == nil {
		log = logger.Nop()
	}
	return &LightCostService{remote: remote, settings: settings, log: log}
}

// Estimate validates p, asks the remote source once, and falls back to the local
// formula on any remote failure. The inputs are then written to the settings slot;
// a storage failure is logged and does not fail the estimate.
func (s *LightCostService) Estimate(ctx context.Context, p models.LightParams, region string) (models.LightEstimate, error) {
	if err := ValidateLightParams(p); err != nil {
		return models.LightEstimate{}, err
	}

	fetched := s.fetch(ctx, p)
	result := fetched.OrElse(func() models.LightCostResult {
		return EstimateLightCost(p)
	})

	source := models.SourceRemote
	if err := fetched.Err(); err != nil {
		source = models.SourceLocal
		if !errors.Is(err, errRemoteDisabled) {
			metrics.IncreaseRemoteFallbacksMetric()
			s.log.Warnw("light_estimate_remote_failed", "err", err)
		}
	}
	metrics.IncreaseLightEstimatesMetric(source)

	symbol := defaultCurrencySymbol
	var preset *models.RegionPreset
	if region != "" {
		rp := ResolveRegion(region)
		preset = &rp
		symbol = rp.CurrencySymbol
	}

	out := models.LightEstimate{
		Params:      p,
		Result:      result,
		PerDayCost:  PerDayCost(result, p.Days),
		Source:      source,
		Region:      preset,
		SavingsText: SavingsText(p.LightType, result, symbol),
		Summary:     LightSummary(p, result, symbol),
	}

	s.remember(ctx, p, preset)
	return out, nil
}

// EstimateLocal validates p and computes it without the remote source or the settings slot.
func (s *LightCostService) EstimateLocal(p models.LightParams) (models.LightCostResult, error) {
	if err := ValidateLightParams(p); err != nil {
		return models.LightCostResult{}, err
	}
	metrics.IncreaseLightEstimatesMetric(models.SourceLocal)
	return EstimateLightCost(p), nil
}

func (s *LightCostService) fetch(ctx context.Context, p models.LightParams) Result[models.LightCostResult] {
	if s.remote == nil {
		return Err[models.LightCostResult](errRemoteDisabled)
	}
	res, err := s.remote.FetchEstimate(ctx, p)
	if err != nil {
		return Err[models.LightCostResult](err)
	}
	if !MatchesLightType(p.LightType, res) {
		return Err[models.LightCostResult](fmt.Errorf("%w: %s", errRemoteLightType, p.LightType))
	}
	return Ok(res)
}

func (s *LightCostService) remember(ctx context.Context, p models.LightParams, preset *models.RegionPreset) {
	if s.settings == nil {
		return
	}
	st := models.Settings{
		LightType:   p.LightType,
		PowerWatt:   p.PowerWatt,
		HoursPerDay: p.HoursPerDay,
		Days:        p.Days,
		Rate:        p.RatePerKWh,
	}
	if preset != nil {
		st.Region = preset.Code
	}
	if err := s.settings.Save(ctx, st); err != nil {
		s.log.Warnw("settings_save_failed", "err", err)
	}
}
