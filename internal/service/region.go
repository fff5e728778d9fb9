package service

import (
	"sort"
	"strings"

	"seasonal_calc/internal/models"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// regionPresets is never mutated after init; accessors hand out copies.
var regionPresets = map[models.RegionCode]models.RegionPreset{
	models.RegionUS:    preset(models.RegionUS, "United States", 0.16, "$", "USD"),
	models.RegionUK:    preset(models.RegionUK, "United Kingdom", 0.28, "£", "GBP"),
	models.RegionAU:    preset(models.RegionAU, "Australia", 0.30, "A$", "AUD"),
	models.RegionCA:    preset(models.RegionCA, "Canada", 0.13, "C$", "CAD"),
	models.RegionOther: preset(models.RegionOther, "Other", 0.16, "$", "USD"),
}

// localeRegions maps language-REGION pairs to a preset. Everything else is us.
var localeRegions = map[string]models.RegionCode{
	"en-GB": models.RegionUK,
	"en-IE": models.RegionUK,
	"en-AU": models.RegionAU,
	"en-CA": models.RegionCA,
	"fr-CA": models.RegionCA,
}

func preset(code models.RegionCode, label string, rate float64, symbol, iso string) models.RegionPreset {
	return models.RegionPreset{
		Code:           code,
		Label:          label,
		RatePerKWh:     rate,
		CurrencySymbol: symbol,
		CurrencyCode:   currency.MustParseISO(iso).String(),
	}
}

// ResolveRegion returns the preset for code, or the "other" preset when unknown.
func ResolveRegion(code string) models.RegionPreset {
	c := models.RegionCode(strings.ToLower(strings.TrimSpace(code)))
	if p, ok := regionPresets[c]; ok {
		return p
	}
	return regionPresets[models.RegionOther]
}

// DetectDefaultRegion classifies a locale tag such as "en-GB". Never fails; defaults to us.
func DetectDefaultRegion(localeTag string) models.RegionCode {
	raw := strings.ReplaceAll(strings.TrimSpace(localeTag), "_", "-")
	if raw == "" {
		return models.RegionUS
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return models.RegionUS
	}
	base, _ := tag.Base()
	region, conf := tag.Region()
	if conf != language.Exact {
		return models.RegionUS
	}
	if code, ok := localeRegions[base.String()+"-"+region.String()]; ok {
		return code
	}
	return models.RegionUS
}

type RegionService struct{}

func NewRegionService() *RegionService {
	return &RegionService{}
}

// List returns every preset ordered by code.
func (s *RegionService) List() []models.RegionPreset {
	out := make([]models.RegionPreset, 0, len(regionPresets))
	for _, p := range regionPresets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

func (s *RegionService) Resolve(code string) models.RegionPreset {
	return ResolveRegion(code)
}

func (s *RegionService) Detect(localeTag string) models.RegionCode {
	return DetectDefaultRegion(localeTag)
}

// FromAcceptLanguage detects the region from the highest-weighted tag of an
// Accept-Language header.
func (s *RegionService) FromAcceptLanguage(header string) models.RegionCode {
	return regionFromAcceptLanguage(header)
}

func regionFromAcceptLanguage(header string) models.RegionCode {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return models.RegionUS
	}
	return DetectDefaultRegion(tags[0].String())
}
