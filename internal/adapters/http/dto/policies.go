package dto

import (
	"strings"

	"github.com/hazememba-creator/Insurtech-Guy/internal/domain"
)

// CustomerRequest identifies the purchaser in a policy purchase.
type CustomerRequest struct {
	FullName      string `json:"full_name"      validate:"required,notempty"`
	Email         string `json:"email"          validate:"required,email"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=credit_card debit_card bank_transfer"`
	StartDate     string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// PurchaseRequest asks to buy a specific quote. The server re-derives the
// premium from the inputs; no client-supplied price is trusted.
type PurchaseRequest struct {
	Vehicle  VehicleRequest  `json:"vehicle"  validate:"required"`
	Driver   DriverRequest   `json:"driver"   validate:"required"`
	Insurer  string          `json:"insurer"  validate:"required,notempty"`
	Tier     string          `json:"tier"     validate:"required,oneof=liability standard premium"`
	Customer CustomerRequest `json:"customer" validate:"required"`
}

// Normalize canonicalizes the selector fields before validation.
func (r *PurchaseRequest) Normalize() {
	r.Tier = strings.ToLower(strings.TrimSpace(r.Tier))
	r.Insurer = strings.TrimSpace(r.Insurer)
	r.Vehicle.Brand = strings.TrimSpace(r.Vehicle.Brand)
}

// PolicyResponse confirms a simulated policy purchase.
type PolicyResponse struct {
	PolicyNumber   string  `json:"policy_number"`
	Insurer        string  `json:"insurer"`
	Tier           string  `json:"tier"`
	TierName       string  `json:"tier_name"`
	AnnualPremium  float64 `json:"annual_premium"`
	MonthlyPremium float64 `json:"monthly_premium"`
	CustomerName   string  `json:"customer_name"`
	StartDate      string  `json:"start_date,omitempty"`
}

// NewPolicyResponse translates a policy confirmation to its wire form.
func NewPolicyResponse(p *domain.PolicyConfirmation, customerName, startDate string) PolicyResponse {
	return PolicyResponse{
		PolicyNumber:   p.PolicyNumber,
		Insurer:        p.Insurer,
		Tier:           string(p.Tier),
		TierName:       p.TierName,
		AnnualPremium:  p.AnnualPremium,
		MonthlyPremium: p.MonthlyPremium,
		CustomerName:   customerName,
		StartDate:      startDate,
	}
}
