package domain

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// policyNumberDigits is the number of random digits in a policy number.
const policyNumberDigits = 8

// PolicyConfirmation is the ephemeral record produced by a simulated
// purchase. It lives only in the response; nothing is persisted.
type PolicyConfirmation struct {
	// PolicyNumber is a synthetic identifier, e.g. "GEI-48210657".
	PolicyNumber string

	// Insurer is the carrier the policy was purchased from.
	Insurer string

	// Tier is the purchased coverage tier.
	Tier CoverageTier

	// TierName is the display name for the tier.
	TierName string

	// AnnualPremium is the re-derived annual price in dollars.
	AnnualPremium float64

	// MonthlyPremium is AnnualPremium/12, rounded to cents.
	MonthlyPremium float64
}

// NewPolicyNumber generates a synthetic policy number prefixed with the
// insurer's code. This is the only randomness in the whole pricing path.
func NewPolicyNumber(insurerCode string) string {
	var sb strings.Builder
	for i := 0; i < policyNumberDigits; i++ {
		fmt.Fprintf(&sb, "%d", rand.IntN(10)) //nolint:gosec // Synthetic identifier, not a secret
	}

	return insurerCode + "-" + sb.String()
}
