package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTiers_Order(t *testing.T) {
	all := Tiers()
	require.Len(t, all, 3)

	assert.Equal(t, TierLiability, all[0].Tier)
	assert.Equal(t, TierStandard, all[1].Tier)
	assert.Equal(t, TierPremium, all[2].Tier)

	// Tier multipliers and minimums must be strictly ordered.
	assert.Less(t, all[0].Multiplier, all[1].Multiplier)
	assert.Less(t, all[0].MinimumAnnual, all[1].MinimumAnnual)
	assert.Less(t, all[1].MinimumAnnual, all[2].MinimumAnnual)
}

func TestTierByName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected CoverageTier
		wantErr  bool
	}{
		{name: "lowercase", input: "liability", expected: TierLiability},
		{name: "mixed case", input: "Standard", expected: TierStandard},
		{name: "padded", input: " premium ", expected: TierPremium},
		{name: "unknown", input: "platinum", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := TierByName(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsUnknownTier(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, info.Tier)
		})
	}
}

func TestInsurers_Panel(t *testing.T) {
	panel := Insurers()
	require.Len(t, panel, 5)

	expected := []string{"GEICO", "Progressive", "StateFarm", "Allstate", "Travelers"}
	for i, ins := range panel {
		assert.Equal(t, expected[i], ins.Name)
		assert.Len(t, ins.Code, 3)
		assert.Positive(t, ins.Multiplier)
	}
}

func TestInsurerByName(t *testing.T) {
	ins, err := InsurerByName("Travelers")
	require.NoError(t, err)
	assert.Equal(t, "TRA", ins.Code)
	assert.InDelta(t, 1.08, ins.Multiplier, 0.001)

	_, err = InsurerByName("Lemonade")
	require.Error(t, err)
	assert.True(t, IsUnknownInsurer(err))
}

func TestAddOnsFor(t *testing.T) {
	tests := []struct {
		insurer       string
		expectedCount int
		hasConcierge  bool
	}{
		{insurer: "GEICO", expectedCount: 2},
		{insurer: "Progressive", expectedCount: 3},
		{insurer: "StateFarm", expectedCount: 4},
		{insurer: "Allstate", expectedCount: 3},
		{insurer: "Travelers", expectedCount: 6, hasConcierge: true},
	}

	for _, tt := range tests {
		t.Run(tt.insurer, func(t *testing.T) {
			ins, err := InsurerByName(tt.insurer)
			require.NoError(t, err)

			addOns := ins.AddOnsFor()
			assert.Len(t, addOns, tt.expectedCount)

			var foundConcierge bool
			for _, a := range addOns {
				if a.ID == "concierge_claims" {
					foundConcierge = true
					assert.Zero(t, a.AnnualCost)
					assert.Equal(t, "FREE with Premium", a.Note)
				}
			}
			assert.Equal(t, tt.hasConcierge, foundConcierge)
		})
	}
}

func TestVehicle_Category(t *testing.T) {
	tests := []struct {
		brand    string
		expected BrandCategory
	}{
		{brand: "Ford", expected: BrandAmerican},
		{brand: "chevy", expected: BrandAmerican},
		{brand: "TOYOTA", expected: BrandJapanese},
		{brand: " Mercedes-Benz ", expected: BrandGerman},
		{brand: "vw", expected: BrandGerman},
		{brand: "Tesla", expected: BrandOther},
		{brand: "Ferrari", expected: BrandOther},
	}

	for _, tt := range tests {
		t.Run(tt.brand, func(t *testing.T) {
			assert.Equal(t, tt.expected, Vehicle{Brand: tt.brand}.Category())
		})
	}
}
