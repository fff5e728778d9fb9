package models

import "time"

// WeightUnit is the unit the turkey weight was entered in.
type WeightUnit string

const (
	UnitLb WeightUnit = "lb"
	UnitKg WeightUnit = "kg"
)

// ThawMethod is how the turkey is thawed.
type ThawMethod string

const (
	MethodColdWater ThawMethod = "coldWater"
	MethodFridge    ThawMethod = "fridge"
)

// ThawParams is the input to the thaw scheduler.
// TargetTime is the raw serving time from the form; empty means no target.
type ThawParams struct {
	Weight     float64    `json:"weight"`
	Unit       WeightUnit `json:"unit"`
	Method     ThawMethod `json:"method"`
	TargetTime string     `json:"targetTime,omitempty"`
}

// ThawResult is the computed thaw duration and, with a target, the schedule.
type ThawResult struct {
	TotalHours       float64    `json:"totalHours"`
	ThawStart        *time.Time `json:"thawStart,omitempty"`
	ThawEnd          *time.Time `json:"thawEnd,omitempty"`
	IsBehindSchedule bool       `json:"isBehindSchedule"`
}

// Window returns the thaw window when the result carries a schedule.
func (r ThawResult) Window() (ThawWindow, bool) {
	if r.ThawStart == nil || r.ThawEnd == nil {
		return ThawWindow{}, false
	}
	return ThawWindow{Start: *r.ThawStart, End: *r.ThawEnd}, true
}

// ThawWindow is the [Start, End) interval a countdown runs over.
type ThawWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ThawPlan is the thaw result plus the texts the page shows next to it.
type ThawPlan struct {
	Result       ThawResult      `json:"result"`
	TotalText    string          `json:"totalText"`
	StartText    string          `json:"startText"`
	BufferHours  float64         `json:"bufferHours"`
	MethodHint   string          `json:"methodHint"`
	SafetyNote   string          `json:"safetyNote"`
	ScheduleNote string          `json:"scheduleNote"`
	LateWarning  string          `json:"lateWarning,omitempty"`
	Countdown    *CountdownState `json:"countdown,omitempty"`
}
