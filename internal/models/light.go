package models

// LightType is the kind of holiday light string being estimated.
type LightType string

const (
	LightIncandescent LightType = "incandescent"
	LightLED          LightType = "led"
)

// Valid reports whether t is a known light type.
func (t LightType) Valid() bool {
	return t == LightIncandescent || t == LightLED
}

// LightParams is the input to the light cost estimator.
type LightParams struct {
	LightType   LightType `json:"lightType"`
	PowerWatt   float64   `json:"powerWatt"`   // W
	HoursPerDay float64   `json:"hoursPerDay"` // (0, 24]
	Days        int       `json:"days"`
	RatePerKWh  float64   `json:"ratePerKWh"`
}

// LightCostResult is the seasonal cost estimate.
// LEDCostEstimate and Savings are nil unless the lights are incandescent.
type LightCostResult struct {
	TotalCost       float64  `json:"totalCost"`
	LEDCostEstimate *float64 `json:"ledCostEstimate,omitempty"`
	Savings         *float64 `json:"savings,omitempty"`
}

// LightEstimate is what the service hands back to the HTTP layer.
type LightEstimate struct {
	Params     LightParams     `json:"params"`
	Result     LightCostResult `json:"result"`
	PerDayCost float64         `json:"perDayCost"`
	Source     string          `json:"source"` // remote | local
	Region     *RegionPreset   `json:"region,omitempty"`

	SavingsText string `json:"savingsText,omitempty"`
	Summary     string `json:"summary"`
}

// Estimate sources.
const (
	SourceRemote = "remote"
	SourceLocal  = "local"
)
