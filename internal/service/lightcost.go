package service

import (
	"fmt"
	"math"

	"seasonal_calc/internal/models"
)

// LEDCostFraction is what an LED string costs relative to incandescent (80% saving).
const LEDCostFraction = 0.2

// MaxHoursPerDay bounds hoursPerDay from above.
const MaxHoursPerDay = 24.0

// EstimateLightCost computes the seasonal cost of p. Callers validate p first.
func EstimateLightCost(p models.LightParams) models.LightCostResult {
	total := (p.PowerWatt / 1000) * p.HoursPerDay * float64(p.Days) * p.RatePerKWh

	res := models.LightCostResult{TotalCost: total}
	if p.LightType == models.LightIncandescent {
		led := total * LEDCostFraction
		savings := total - led
		res.LEDCostEstimate = &led
		res.Savings = &savings
	}
	return res
}

// MatchesLightType reports whether r carries the LED fields exactly when lt
// is incandescent.
func MatchesLightType(lt models.LightType, r models.LightCostResult) bool {
	hasLED := r.LEDCostEstimate != nil && r.Savings != nil
	hasNone := r.LEDCostEstimate == nil && r.Savings == nil
	if lt == models.LightIncandescent {
		return hasLED
	}
	return hasNone
}

// PerDayCost spreads the total over the season. Zero days yields zero.
func PerDayCost(r models.LightCostResult, days int) float64 {
	if days <= 0 {
		return 0
	}
	return r.TotalCost / float64(days)
}

// ValidateLightParams rejects anything EstimateLightCost must not see.
func ValidateLightParams(p models.LightParams) error {
	if !p.LightType.Valid() {
		return fmt.Errorf("%w: lightType must be %q or %q", ErrInvalidInput, models.LightIncandescent, models.LightLED)
	}
	if !isPositiveFinite(p.PowerWatt) {
		return fmt.Errorf("%w: powerWatt must be a positive number", ErrInvalidInput)
	}
	if !isPositiveFinite(p.HoursPerDay) || p.HoursPerDay > MaxHoursPerDay {
		return fmt.Errorf("%w: hoursPerDay must be in (0, 24]", ErrInvalidInput)
	}
	if p.Days <= 0 {
		return fmt.Errorf("%w: days must be a positive integer", ErrInvalidInput)
	}
	if !isPositiveFinite(p.RatePerKWh) {
		return fmt.Errorf("%w: ratePerKWh must be a positive number", ErrInvalidInput)
	}
	return nil
}

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
