package domain

import "strings"

// BrandCategory classifies a vehicle manufacturer into a base-rate bucket.
type BrandCategory string

// Brand categories. Each maps to a base rate expressed as a
// percentage of the vehicle's declared value.
const (
	BrandAmerican BrandCategory = "american"
	BrandJapanese BrandCategory = "japanese"
	BrandGerman   BrandCategory = "german"
	BrandOther    BrandCategory = "other"
)

// brandRates holds the annual base rate per brand category.
var brandRates = map[BrandCategory]float64{
	BrandAmerican: 0.050,
	BrandJapanese: 0.055,
	BrandGerman:   0.060,
	BrandOther:    0.065,
}

// brandCategories maps lowercased brand names to their category.
// Brands not listed here fall back to BrandOther.
var brandCategories = map[string]BrandCategory{
	"ford":          BrandAmerican,
	"chevrolet":     BrandAmerican,
	"chevy":         BrandAmerican,
	"dodge":         BrandAmerican,
	"gmc":           BrandAmerican,
	"jeep":          BrandAmerican,
	"cadillac":      BrandAmerican,
	"lincoln":       BrandAmerican,
	"buick":         BrandAmerican,
	"chrysler":      BrandAmerican,
	"ram":           BrandAmerican,
	"toyota":        BrandJapanese,
	"honda":         BrandJapanese,
	"nissan":        BrandJapanese,
	"mazda":         BrandJapanese,
	"subaru":        BrandJapanese,
	"lexus":         BrandJapanese,
	"acura":         BrandJapanese,
	"infiniti":      BrandJapanese,
	"mitsubishi":    BrandJapanese,
	"bmw":           BrandGerman,
	"mercedes":      BrandGerman,
	"mercedes-benz": BrandGerman,
	"audi":          BrandGerman,
	"volkswagen":    BrandGerman,
	"vw":            BrandGerman,
	"porsche":       BrandGerman,
	"mini":          BrandGerman,
}

// Vehicle represents the insured vehicle.
type Vehicle struct {
	// Brand is the manufacturer name as supplied by the customer,
	// e.g. "Ford" or "BMW". Matching is case-insensitive.
	Brand string

	// Value is the declared value of the vehicle in dollars.
	Value float64
}

// Category returns the brand category used for pricing.
// Unrecognized brands fall back to BrandOther; a brand is never rejected.
func (v Vehicle) Category() BrandCategory {
	if cat, ok := brandCategories[strings.ToLower(strings.TrimSpace(v.Brand))]; ok {
		return cat
	}

	return BrandOther
}

// BaseRate returns the annual base rate for the vehicle's brand category.
func (v Vehicle) BaseRate() float64 {
	return brandRates[v.Category()]
}

// Validate checks the vehicle attributes against business rules.
func (v Vehicle) Validate() error {
	if strings.TrimSpace(v.Brand) == "" {
		return NewValidationError("brand", "must not be empty")
	}

	if v.Value <= 0 {
		return NewValidationErrorWithValue("value", "must be positive", v.Value)
	}

	return nil
}
