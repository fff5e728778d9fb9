package models

import "time"

// Settings is the last-used calculator input kept in the single settings slot.
type Settings struct {
	LightType   LightType  `json:"lightType,omitempty"`
	PowerWatt   float64    `json:"powerWatt,omitempty"`
	HoursPerDay float64    `json:"hoursPerDay,omitempty"`
	Days        int        `json:"days,omitempty"`
	Rate        float64    `json:"rate,omitempty"`
	Region      RegionCode `json:"region,omitempty"`
	UpdatedAt   time.Time  `json:"updatedAt,omitzero"`
}
