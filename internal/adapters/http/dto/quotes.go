package dto

import (
	"strings"

	"github.com/hazememba-creator/Insurtech-Guy/internal/domain"
)

// Structural validation only lives in the tags here. Business ranges
// (driver age bands, license plausibility, the carrier panel) are owned
// by the domain so the rules exist in exactly one place.

// VehicleRequest describes the vehicle being insured.
type VehicleRequest struct {
	Brand string  `json:"brand" validate:"required,notempty"`
	Value float64 `json:"value" validate:"required"`
}

// DriverRequest describes the driver being insured.
type DriverRequest struct {
	Age          int `json:"age" validate:"required"`
	LicenseYears int `json:"license_years"`
}

// QuoteRequest asks for premium quotes. Tier and insurer are optional
// filters; omitting them quotes every tier across the whole panel.
type QuoteRequest struct {
	Vehicle VehicleRequest `json:"vehicle" validate:"required"`
	Driver  DriverRequest  `json:"driver"  validate:"required"`
	Tier    string         `json:"tier,omitempty"    validate:"omitempty,oneof=liability standard premium all"`
	Insurer string         `json:"insurer,omitempty"`
}

// Normalize canonicalizes the filter fields before validation.
func (r *QuoteRequest) Normalize() {
	r.Tier = strings.ToLower(strings.TrimSpace(r.Tier))
	r.Insurer = strings.TrimSpace(r.Insurer)
	r.Vehicle.Brand = strings.TrimSpace(r.Vehicle.Brand)
}

// AddOnResponse is one optional coverage in an insurer's catalog.
type AddOnResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	AnnualCost float64 `json:"cost"`
	Note       string  `json:"note,omitempty"`
}

// QuoteResponse is a single priced quote.
type QuoteResponse struct {
	Insurer        string          `json:"insurer"`
	InsurerCode    string          `json:"insurer_code"`
	Reputation     string          `json:"reputation"`
	Tier           string          `json:"tier"`
	TierName       string          `json:"tier_name"`
	BrandCategory  string          `json:"brand_category"`
	AnnualPremium  float64         `json:"annual_premium"`
	MonthlyPremium float64         `json:"monthly_premium"`
	Includes       []string        `json:"includes,omitempty"`
	AddOns         []AddOnResponse `json:"add_ons,omitempty"`
}

// QuotesResponse wraps a sorted list of quotes.
type QuotesResponse struct {
	Quotes []QuoteResponse `json:"quotes"`
	Count  int             `json:"count"`
}

// NewQuoteResponse translates a domain quote to its wire form.
func NewQuoteResponse(q domain.Quote) QuoteResponse {
	return QuoteResponse{
		Insurer:        q.Insurer,
		InsurerCode:    q.InsurerCode,
		Reputation:     q.Reputation,
		Tier:           string(q.Tier),
		TierName:       q.TierName,
		BrandCategory:  string(q.BrandCategory),
		AnnualPremium:  q.AnnualPremium,
		MonthlyPremium: q.MonthlyPremium,
		Includes:       q.Includes,
		AddOns:         NewAddOnResponses(q.AddOns),
	}
}

// NewQuotesResponse translates a list of domain quotes.
func NewQuotesResponse(quotes []domain.Quote) QuotesResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, NewQuoteResponse(q))
	}

	return QuotesResponse{Quotes: out, Count: len(out)}
}

// NewAddOnResponses translates domain add-ons to their wire form.
func NewAddOnResponses(addOns []domain.AddOn) []AddOnResponse {
	if len(addOns) == 0 {
		return nil
	}

	out := make([]AddOnResponse, 0, len(addOns))
	for _, a := range addOns {
		out = append(out, AddOnResponse{
			ID:         a.ID,
			Name:       a.Name,
			AnnualCost: a.AnnualCost,
			Note:       a.Note,
		})
	}

	return out
}

// InsurerResponse is one carrier on the panel.
type InsurerResponse struct {
	Name       string  `json:"name"`
	Code       string  `json:"code"`
	Reputation string  `json:"reputation"`
	Multiplier float64 `json:"multiplier"`
}

// InsurersResponse wraps the carrier panel.
type InsurersResponse struct {
	Insurers []InsurerResponse `json:"insurers"`
	Count    int               `json:"count"`
}

// NewInsurersResponse translates the carrier panel to its wire form.
func NewInsurersResponse(insurers []domain.Insurer) InsurersResponse {
	out := make([]InsurerResponse, 0, len(insurers))
	for _, i := range insurers {
		out = append(out, InsurerResponse{
			Name:       i.Name,
			Code:       i.Code,
			Reputation: i.Reputation,
			Multiplier: i.Multiplier,
		})
	}

	return InsurersResponse{Insurers: out, Count: len(out)}
}

// AddOnsResponse wraps an insurer's add-on catalog.
type AddOnsResponse struct {
	Insurer string          `json:"insurer"`
	AddOns  []AddOnResponse `json:"add_ons"`
}

// ReviewResponse is one customer review snippet.
type ReviewResponse struct {
	Insurer string  `json:"insurer"`
	Source  string  `json:"source"`
	Title   string  `json:"title"`
	Snippet string  `json:"snippet"`
	Rating  float64 `json:"rating,omitempty"`
	URL     string  `json:"url,omitempty"`
}

// ReviewsResponse wraps a list of reviews for one insurer.
type ReviewsResponse struct {
	Insurer string           `json:"insurer"`
	Reviews []ReviewResponse `json:"reviews"`
	Count   int              `json:"count"`
}

// NewReviewsResponse translates domain reviews to their wire form.
func NewReviewsResponse(insurer string, reviews []domain.InsurerReview) ReviewsResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, ReviewResponse{
			Insurer: r.Insurer,
			Source:  r.Source,
			Title:   r.Title,
			Snippet: r.Snippet,
			Rating:  r.Rating,
			URL:     r.URL,
		})
	}

	return ReviewsResponse{Insurer: insurer, Reviews: out, Count: len(out)}
}
