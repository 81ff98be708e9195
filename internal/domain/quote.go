package domain

import "math"

// Quote is the immutable result of pricing one (vehicle, driver, tier,
// insurer) tuple. Quotes are recomputed per request and never persisted;
// repeated calls with identical input always return identical output.
type Quote struct {
	// Insurer is the quoting carrier.
	Insurer string

	// InsurerCode is the carrier's short code, used in policy numbers.
	InsurerCode string

	// Reputation is the carrier's one-line reputation summary.
	Reputation string

	// Tier is the quoted coverage tier.
	Tier CoverageTier

	// TierName is the display name for the tier.
	TierName string

	// BrandCategory is the pricing bucket the vehicle fell into.
	BrandCategory BrandCategory

	// AnnualPremium is the annual price in dollars, rounded to cents.
	AnnualPremium float64

	// MonthlyPremium is AnnualPremium/12, rounded to cents.
	MonthlyPremium float64

	// AddOns lists the bundled add-ons. Only the premium tier bundles
	// add-ons into the quoted price; other tiers leave this empty.
	AddOns []AddOn

	// Includes lists the coverages the tier provides.
	Includes []string
}

// ComputeQuote prices a single (vehicle, driver, tier, insurer) tuple.
//
// The premium composes, in order: the brand-category base rate over the
// vehicle value, the age and experience risk adjustments, the tier
// multiplier, the tier's minimum annual floor, the insurer multiplier, and
// for the premium tier the insurer's add-on bundle. The result is rounded
// to cents. The computation is deterministic; nothing here is random.
func ComputeQuote(vehicle Vehicle, driver Driver, tier CoverageTier, insurerName string) (*Quote, error) {
	if err := vehicle.Validate(); err != nil {
		return nil, err
	}

	if err := driver.Validate(); err != nil {
		return nil, err
	}

	insurer, err := InsurerByName(insurerName)
	if err != nil {
		return nil, err
	}

	tierInfo, err := TierByName(string(tier))
	if err != nil {
		return nil, err
	}

	base := vehicle.Value * vehicle.BaseRate()
	adjusted := base * ageMultiplier(driver.Age) * experienceMultiplier(driver.LicenseYears) * tierInfo.Multiplier

	// Tier minimums floor the premium before carrier pricing applies.
	adjusted = math.Max(adjusted, tierInfo.MinimumAnnual)

	annual := adjusted * insurer.Multiplier

	var bundled []AddOn
	if tierInfo.Tier == TierPremium {
		annual += insurer.addOnBundleCost()
		bundled = insurer.AddOnsFor()
	}

	annual = roundCents(annual)

	return &Quote{
		Insurer:        insurer.Name,
		InsurerCode:    insurer.Code,
		Reputation:     insurer.Reputation,
		Tier:           tierInfo.Tier,
		TierName:       tierInfo.Name,
		BrandCategory:  vehicle.Category(),
		AnnualPremium:  annual,
		MonthlyPremium: roundCents(annual / 12),
		AddOns:         bundled,
		Includes:       tierInfo.Includes,
	}, nil
}

// roundCents rounds a dollar amount to the currency's minor unit.
func roundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
