package seasonal_calc

// EstimateRequest is the body sent to a remote estimate endpoint.
type EstimateRequest struct {
	LightType   string  `json:"lightType"`   // incandescent | led
	PowerWatt   float64 `json:"powerWatt"`   // W
	HoursPerDay float64 `json:"hoursPerDay"` // h
	Days        int     `json:"days"`
	PricePerKWh float64 `json:"pricePerKWh"`
}

// EstimateResponse is the body a remote estimate endpoint answers with.
// A nil TotalCost marks the payload as malformed.
type EstimateResponse struct {
	TotalCost       *float64 `json:"totalCost"`
	LEDCostEstimate *float64 `json:"ledCostEstimate,omitempty"`
	Savings         *float64 `json:"savings,omitempty"`
}
