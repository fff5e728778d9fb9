package service

import (
	"fmt"
	"math"
	"strings"
	"time"

	"seasonal_calc/internal/models"
)

// ----------- Thaw policy constants -----------
const (
	KgToLb = 2.20462
	// ColdWaterHoursPerLb is about 30 min per lb.
	ColdWaterHoursPerLb = 0.5
	// FridgeLbPerDay is 24 h per 4 lb, rounded up to whole days.
	FridgeLbPerDay = 4.0
	// BufferHours is prep + cook time between thaw end and serving.
	BufferHours = 4.0
	// BehindScheduleEpsilonHours keeps the warning from flapping at the boundary.
	BehindScheduleEpsilonHours = 0.01
	// MaxThawHours caps a plan at one year so the schedule stays within time.Duration.
	MaxThawHours = 24 * 365.0
)

// targetTimeLayouts are tried in order. Layouts without a zone are read in the
// scheduler's location.
var targetTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ThawHours returns the total thawing time for the given weight and method.
func ThawHours(weight float64, unit models.WeightUnit, method models.ThawMethod) float64 {
	weightLb := weight
	if unit == models.UnitKg {
		weightLb = weight * KgToLb
	}
	if method == models.MethodColdWater {
		return weightLb * ColdWaterHoursPerLb
	}
	return math.Ceil(weightLb/FridgeLbPerDay) * 24
}

// ParseTargetTime reads a serving time entered as RFC3339 or as a datetime-local value.
func ParseTargetTime(raw string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	raw = strings.TrimSpace(raw)
	for _, layout := range targetTimeLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTargetTime, raw)
}

// ComputeThaw computes the thaw duration and, when p has a target time, the
// schedule that ends BufferHours before serving.
func ComputeThaw(p models.ThawParams, now time.Time, loc *time.Location) (models.ThawResult, error) {
	total := ThawHours(p.Weight, p.Unit, p.Method)
	res := models.ThawResult{TotalHours: total}

	if strings.TrimSpace(p.TargetTime) == "" {
		return res, nil
	}

	target, err := ParseTargetTime(p.TargetTime, loc)
	if err != nil {
		return models.ThawResult{}, err
	}

	end := target.Add(-hoursToDuration(BufferHours))
	start := end.Add(-hoursToDuration(total))
	res.ThawStart = &start
	res.ThawEnd = &end
	res.IsBehindSchedule = isBehindSchedule(target.Sub(now).Hours(), total)
	return res, nil
}

func isBehindSchedule(hoursUntilTarget, totalHours float64) bool {
	return hoursUntilTarget > 0 && hoursUntilTarget+BehindScheduleEpsilonHours < totalHours+BufferHours
}

// ValidateThawParams rejects input ComputeThaw must not see.
func ValidateThawParams(p models.ThawParams) error {
	if !isPositiveFinite(p.Weight) {
		return fmt.Errorf("%w: weight must be a positive number", ErrInvalidInput)
	}
	switch p.Unit {
	case models.UnitLb, models.UnitKg:
	default:
		return fmt.Errorf("%w: unit must be %q or %q", ErrInvalidInput, models.UnitLb, models.UnitKg)
	}
	switch p.Method {
	case models.MethodColdWater, models.MethodFridge:
	default:
		return fmt.Errorf("%w: method must be %q or %q", ErrInvalidInput, models.MethodColdWater, models.MethodFridge)
	}
	if h := ThawHours(p.Weight, p.Unit, p.Method); h > MaxThawHours {
		return fmt.Errorf("%w: weight needs %.0f hours to thaw, more than %.0f", ErrInvalidInput, h, MaxThawHours)
	}
	return nil
}

func hoursToDuration(h float64) time.Duration {
	return time.Duration(h * float64(time.Hour))
}
