package domain

// Driver age bounds. Drivers younger than the policy minimum are rejected,
// never silently clamped into an adjustment band.
const (
	// MinDriverAge is the youngest age the carrier panel will quote.
	MinDriverAge = 18

	// MaxDriverAge is the oldest age the carrier panel will quote.
	MaxDriverAge = 100

	// MaxLicenseYears is the longest license history accepted.
	MaxLicenseYears = 80

	// minLicensingAge is the earliest age a license can be held, used to
	// cross-check the claimed license history against the driver's age.
	minLicensingAge = 16
)

// Driver represents the primary driver on the policy.
type Driver struct {
	// Age in whole years.
	Age int

	// LicenseYears is the number of years the driver has held a license.
	LicenseYears int
}

// Validate checks the driver attributes against business rules.
func (d Driver) Validate() error {
	if d.Age < MinDriverAge {
		return NewValidationErrorWithValue("age", "driver must be at least 18 years old", d.Age)
	}

	if d.Age > MaxDriverAge {
		return NewValidationErrorWithValue("age", "driver age is out of range", d.Age)
	}

	if d.LicenseYears < 0 {
		return NewValidationErrorWithValue("license_years", "must not be negative", d.LicenseYears)
	}

	if d.LicenseYears > MaxLicenseYears {
		return NewValidationErrorWithValue("license_years", "license history is out of range", d.LicenseYears)
	}

	if d.LicenseYears > d.Age-minLicensingAge {
		return NewValidationErrorWithValue("license_years",
			"license history exceeds what is possible for the driver's age", d.LicenseYears)
	}

	return nil
}

// ageMultiplier returns the risk adjustment for the driver's age band.
// Bands are mutually exclusive: 18-25 pays a surcharge, 60 and over
// receives the senior discount, everyone in between is neutral.
func ageMultiplier(age int) float64 {
	switch {
	case age <= 25:
		return 1.15
	case age >= 60:
		return 0.90
	default:
		return 1.0
	}
}

// experienceMultiplier returns the risk adjustment for license history.
func experienceMultiplier(years int) float64 {
	switch {
	case years <= 2:
		return 1.20
	case years <= 5:
		return 1.10
	default:
		return 1.0
	}
}
