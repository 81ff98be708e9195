package domain

import "strings"

// CoverageTier is a named coverage level with an associated pricing multiplier.
type CoverageTier string

// Coverage tiers, from cheapest to most comprehensive.
const (
	TierLiability CoverageTier = "liability"
	TierStandard  CoverageTier = "standard"
	TierPremium   CoverageTier = "premium"
)

// TierInfo describes a coverage tier. The multiplier scales the adjusted
// premium and MinimumAnnual floors it before the insurer multiplier applies.
type TierInfo struct {
	Tier          CoverageTier
	Name          string
	Multiplier    float64
	MinimumAnnual float64
	Includes      []string
}

// tierOrder is the canonical quoting order.
var tierOrder = []CoverageTier{TierLiability, TierStandard, TierPremium}

var tiers = map[CoverageTier]TierInfo{
	TierLiability: {
		Tier:          TierLiability,
		Name:          "Liability Only",
		Multiplier:    0.30,
		MinimumAnnual: 700,
		Includes: []string{
			"Bodily Injury Liability",
			"Property Damage Liability",
		},
	},
	TierStandard: {
		Tier:          TierStandard,
		Name:          "Standard Coverage",
		Multiplier:    1.0,
		MinimumAnnual: 2000,
		Includes: []string{
			"Bodily Injury Liability",
			"Property Damage Liability",
			"Collision Coverage",
			"Comprehensive Coverage",
			"Uninsured Motorist",
		},
	},
	TierPremium: {
		Tier:          TierPremium,
		Name:          "Premium Coverage",
		Multiplier:    1.0,
		MinimumAnnual: 2500,
		Includes: []string{
			"Everything in Standard",
			"Plus all add-ons available from the insurer",
		},
	},
}

// Tiers returns the coverage tiers in quoting order.
func Tiers() []TierInfo {
	out := make([]TierInfo, 0, len(tierOrder))
	for _, t := range tierOrder {
		out = append(out, tiers[t])
	}

	return out
}

// TierByName resolves a tier by its lowercase name.
// Returns ErrUnknownTier for anything outside the fixed set.
func TierByName(name string) (TierInfo, error) {
	info, ok := tiers[CoverageTier(strings.ToLower(strings.TrimSpace(name)))]
	if !ok {
		return TierInfo{}, NewUnknownTierError(name)
	}

	return info, nil
}

// Insurer is one of the fixed carrier panel. Multiplier is the fixed
// per-carrier scalar applied to the adjusted premium.
type Insurer struct {
	Name       string
	Code       string
	Reputation string
	Multiplier float64

	// addOnIDs lists the add-ons this insurer offers, in display order.
	addOnIDs []string

	// conciergeClaims marks carriers that bundle a free concierge
	// claims service with the premium tier.
	conciergeClaims bool
}

// insurerOrder is the canonical carrier panel order.
var insurerOrder = []string{"GEICO", "Progressive", "StateFarm", "Allstate", "Travelers"}

var insurers = map[string]Insurer{
	"GEICO": {
		Name:       "GEICO",
		Code:       "GEI",
		Reputation: "Budget-friendly, fast quotes",
		Multiplier: 0.95,
		addOnIDs:   []string{"roadside_assistance", "rental_car"},
	},
	"Progressive": {
		Name:       "Progressive",
		Code:       "PRO",
		Reputation: "Innovative, name-your-price",
		Multiplier: 0.98,
		addOnIDs:   []string{"roadside_assistance", "rental_car", "accident_forgiveness"},
	},
	"StateFarm": {
		Name:       "StateFarm",
		Code:       "STA",
		Reputation: "Like a good neighbor, reliable",
		Multiplier: 1.0,
		addOnIDs:   []string{"roadside_assistance", "rental_car", "gap_insurance", "accident_forgiveness"},
	},
	"Allstate": {
		Name:       "Allstate",
		Code:       "ALL",
		Reputation: "You're in good hands",
		Multiplier: 1.05,
		addOnIDs:   []string{"roadside_assistance", "gap_insurance", "accident_forgiveness"},
	},
	"Travelers": {
		Name:       "Travelers",
		Code:       "TRA",
		Reputation: "Premium service, established since 1853",
		Multiplier: 1.08,
		addOnIDs: []string{
			"roadside_assistance", "rental_car", "gap_insurance",
			"accident_forgiveness", "oem_parts_guarantee",
		},
		conciergeClaims: true,
	},
}

// Insurers returns the carrier panel in canonical order.
func Insurers() []Insurer {
	out := make([]Insurer, 0, len(insurerOrder))
	for _, name := range insurerOrder {
		out = append(out, insurers[name])
	}

	return out
}

// InsurerByName resolves an insurer by its exact name.
// Returns ErrUnknownInsurer for anything outside the fixed panel.
func InsurerByName(name string) (Insurer, error) {
	ins, ok := insurers[strings.TrimSpace(name)]
	if !ok {
		return Insurer{}, NewUnknownInsurerError(name)
	}

	return ins, nil
}

// AddOn is a static catalog entry for optional coverage.
type AddOn struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	AnnualCost float64 `json:"cost"`

	// Note carries display hints such as "FREE with Premium".
	Note string `json:"note,omitempty"`
}

var addOns = map[string]AddOn{
	"roadside_assistance":  {ID: "roadside_assistance", Name: "Roadside Assistance", AnnualCost: 50},
	"rental_car":           {ID: "rental_car", Name: "Rental Car Coverage", AnnualCost: 75},
	"gap_insurance":        {ID: "gap_insurance", Name: "Gap Insurance", AnnualCost: 100},
	"accident_forgiveness": {ID: "accident_forgiveness", Name: "Accident Forgiveness", AnnualCost: 150},
	"oem_parts_guarantee":  {ID: "oem_parts_guarantee", Name: "OEM Parts Guarantee", AnnualCost: 75},
	"concierge_claims":     {ID: "concierge_claims", Name: "Concierge Claims Service", AnnualCost: 0},
}

// AddOnsFor returns the add-on catalog entries available from an insurer,
// including the free concierge claims service where the carrier offers it.
func (i Insurer) AddOnsFor() []AddOn {
	out := make([]AddOn, 0, len(i.addOnIDs)+1)
	for _, id := range i.addOnIDs {
		if a, ok := addOns[id]; ok {
			out = append(out, a)
		}
	}

	if i.conciergeClaims {
		concierge := addOns["concierge_claims"]
		concierge.Note = "FREE with Premium"
		out = append(out, concierge)
	}

	return out
}

// addOnBundleCost is the total annual cost of every add-on the insurer
// offers. The premium tier bundles the full set into the quoted price.
func (i Insurer) addOnBundleCost() float64 {
	var total float64
	for _, id := range i.addOnIDs {
		total += addOns[id].AnnualCost
	}

	return total
}
