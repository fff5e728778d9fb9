package service

import (
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"seasonal_calc/internal/models"
)

func TestComputeThaw_TotalHours(t *testing.T) {
	now := time.Date(2025, 11, 20, 9, 0, 0, 0, time.UTC)
	cases := []struct {
		name string
		p    models.ThawParams
		want float64
	}{
		{"cold water 12 lb", models.ThawParams{Weight: 12, Unit: models.UnitLb, Method: models.MethodColdWater}, 6},
		{"fridge 12 lb", models.ThawParams{Weight: 12, Unit: models.UnitLb, Method: models.MethodFridge}, 72},
		{"fridge 13 lb rounds up", models.ThawParams{Weight: 13, Unit: models.UnitLb, Method: models.MethodFridge}, 96},
		{"cold water 1 kg", models.ThawParams{Weight: 1, Unit: models.UnitKg, Method: models.MethodColdWater}, 1.10231},
		{"fridge 5 kg", models.ThawParams{Weight: 5, Unit: models.UnitKg, Method: models.MethodFridge}, 72},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := ComputeThaw(tc.p, now, time.UTC)
			if err != nil {
				t.Fatalf("ComputeThaw: %v", err)
			}
			if math.Abs(res.TotalHours-tc.want) > 1e-6 {
				t.Fatalf("totalHours = %v; want %v", res.TotalHours, tc.want)
			}
			if res.ThawStart != nil || res.ThawEnd != nil || res.IsBehindSchedule {
				t.Fatalf("no target time: schedule fields must be absent, got %+v", res)
			}
		})
	}
}

func TestComputeThaw_ScheduleFromTarget(t *testing.T) {
	now := time.Date(2025, 11, 20, 9, 0, 0, 0, time.UTC)
	p := models.ThawParams{Weight: 12, Unit: models.UnitLb, Method: models.MethodColdWater, TargetTime: "2025-11-27T16:00"}

	res, err := ComputeThaw(p, now, time.UTC)
	if err != nil {
		t.Fatalf("ComputeThaw: %v", err)
	}
	wantEnd := time.Date(2025, 11, 27, 12, 0, 0, 0, time.UTC)
	wantStart := time.Date(2025, 11, 27, 6, 0, 0, 0, time.UTC)
	if res.ThawEnd == nil || !res.ThawEnd.Equal(wantEnd) {
		t.Fatalf("thawEnd = %v; want %v", res.ThawEnd, wantEnd)
	}
	if res.ThawStart == nil || !res.ThawStart.Equal(wantStart) {
		t.Fatalf("thawStart = %v; want %v", res.ThawStart, wantStart)
	}
	if res.IsBehindSchedule {
		t.Fatalf("a week of slack must not be behind schedule")
	}
}

func TestComputeThaw_BehindSchedule(t *testing.T) {
	now := time.Date(2025, 11, 27, 0, 0, 0, 0, time.UTC)
	p := models.ThawParams{Weight: 12, Unit: models.UnitLb, Method: models.MethodColdWater}
	needed := time.Duration((6 + BufferHours) * float64(time.Hour))

	cases := []struct {
		name   string
		target time.Time
		want   bool
	}{
		{"one hour short", now.Add(needed - time.Hour), true},
		{"one hour slack", now.Add(needed + time.Hour), false},
		{"exactly enough", now.Add(needed), false},
		{"within epsilon", now.Add(needed - 30*time.Second), false},
		{"target already passed", now.Add(-time.Hour), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p.TargetTime = tc.target.Format(time.RFC3339)
			res, err := ComputeThaw(p, now, time.UTC)
			if err != nil {
				t.Fatalf("ComputeThaw: %v", err)
			}
			if res.IsBehindSchedule != tc.want {
				t.Fatalf("isBehindSchedule = %v; want %v", res.IsBehindSchedule, tc.want)
			}
		})
	}
}

func TestComputeThaw_InvalidTargetTime(t *testing.T) {
	p := models.ThawParams{Weight: 12, Unit: models.UnitLb, Method: models.MethodFridge, TargetTime: "next thursday"}
	_, err := ComputeThaw(p, time.Now(), time.UTC)
	if !errors.Is(err, ErrInvalidTargetTime) {
		t.Fatalf("err = %v; want ErrInvalidTargetTime", err)
	}
}

func TestParseTargetTime_Layouts(t *testing.T) {
	loc := time.FixedZone("EST", -5*3600)
	want := time.Date(2025, 11, 27, 16, 0, 0, 0, loc)

	for _, raw := range []string{
		"2025-11-27T16:00",
		"2025-11-27T16:00:00",
		"2025-11-27 16:00",
		"2025-11-27 16:00:00",
		"2025-11-27T21:00:00Z",
		"2025-11-27T16:00:00-05:00",
	} {
		got, err := ParseTargetTime(raw, loc)
		if err != nil {
			t.Fatalf("ParseTargetTime(%q): %v", raw, err)
		}
		if !got.Equal(want) {
			t.Fatalf("ParseTargetTime(%q) = %v; want %v", raw, got, want)
		}
	}
}

func TestComputeThaw_Idempotent(t *testing.T) {
	now := time.Date(2025, 11, 20, 9, 0, 0, 0, time.UTC)
	p := models.ThawParams{Weight: 7, Unit: models.UnitKg, Method: models.MethodFridge, TargetTime: "2025-11-27T16:00"}
	a, errA := ComputeThaw(p, now, time.UTC)
	b, errB := ComputeThaw(p, now, time.UTC)
	if errA != nil || errB != nil {
		t.Fatalf("unexpected errors: %v / %v", errA, errB)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("two calls differ: %+v vs %+v", a, b)
	}
}

func TestValidateThawParams(t *testing.T) {
	valid := models.ThawParams{Weight: 10, Unit: models.UnitLb, Method: models.MethodFridge}
	if err := ValidateThawParams(valid); err != nil {
		t.Fatalf("valid params rejected: %v", err)
	}
	bad := []models.ThawParams{
		{Weight: 0, Unit: models.UnitLb, Method: models.MethodFridge},
		{Weight: -3, Unit: models.UnitLb, Method: models.MethodFridge},
		{Weight: math.NaN(), Unit: models.UnitLb, Method: models.MethodFridge},
		{Weight: 10, Unit: "stone", Method: models.MethodFridge},
		{Weight: 10, Unit: models.UnitLb, Method: "microwave"},
		{Weight: 1e7, Unit: models.UnitLb, Method: models.MethodColdWater},
		{Weight: 1e300, Unit: models.UnitKg, Method: models.MethodFridge},
		{Weight: math.MaxFloat64, Unit: models.UnitKg, Method: models.MethodFridge},
	}
	for _, p := range bad {
		if err := ValidateThawParams(p); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("ValidateThawParams(%+v) = %v; want ErrInvalidInput", p, err)
		}
	}

	largest := models.ThawParams{Weight: MaxThawHours / ColdWaterHoursPerLb, Unit: models.UnitLb, Method: models.MethodColdWater}
	if err := ValidateThawParams(largest); err != nil {
		t.Fatalf("weight at the cap rejected: %v", err)
	}
}
