package models

// RegionCode identifies a utility-rate preset.
type RegionCode string

const (
	RegionUS    RegionCode = "us"
	RegionUK    RegionCode = "uk"
	RegionAU    RegionCode = "au"
	RegionCA    RegionCode = "ca"
	RegionOther RegionCode = "other"
)

// RegionPreset is a default rate and currency for a region.
type RegionPreset struct {
	Code           RegionCode `json:"code"`
	Label          string     `json:"label"`
	RatePerKWh     float64    `json:"ratePerKWh"`
	CurrencySymbol string     `json:"currencySymbol"`
	CurrencyCode   string     `json:"currencyCode"` // ISO 4217
}
