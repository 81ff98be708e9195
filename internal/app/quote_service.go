// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/hazememba-creator/Insurtech-Guy/internal/domain"
)

// tierAll is the request token that asks for every coverage tier.
const tierAll = "all"

// QuoteRequest captures one quoting question: a vehicle, a driver, and an
// optional narrowing to a single tier or insurer.
type QuoteRequest struct {
	Vehicle domain.Vehicle
	Driver  domain.Driver

	// Tier narrows the quotes to one coverage tier. Empty or "all"
	// quotes every tier.
	Tier string

	// Insurer narrows the quotes to one carrier. Empty quotes the
	// whole panel.
	Insurer string
}

// Customer identifies the purchaser in a simulated policy purchase.
type Customer struct {
	FullName      string
	Email         string
	PaymentMethod string
	StartDate     time.Time
}

// PurchaseRequest asks to buy one specific quote. The price is re-derived
// from the inputs rather than trusted from the client.
type PurchaseRequest struct {
	Vehicle  domain.Vehicle
	Driver   domain.Driver
	Insurer  string
	Tier     string
	Customer Customer
}

// QuoteService orchestrates quote-related use cases.
// It depends on port interfaces, not concrete implementations,
// following the Dependency Inversion Principle.
type QuoteService struct {
	metrics *Metrics
	logger  *slog.Logger
}

// QuoteServiceConfig contains configuration for the quote service.
type QuoteServiceConfig struct {
	Metrics *Metrics
	Logger  *slog.Logger
}

// NewQuoteService creates a new quote service with the provided dependencies.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	return &QuoteService{
		metrics: cfg.Metrics,
		logger:  cfg.Logger,
	}
}

// GetQuotes prices the requested (tier, insurer) combinations and returns
// them sorted by annual premium, cheapest first. Ties keep the canonical
// carrier panel order.
func (s *QuoteService) GetQuotes(ctx context.Context, req QuoteRequest) ([]domain.Quote, error) {
	tierInfos, err := resolveTiers(req.Tier)
	if err != nil {
		return nil, err
	}

	insurers, err := resolveInsurers(req.Insurer)
	if err != nil {
		return nil, err
	}

	quotes := make([]domain.Quote, 0, len(tierInfos)*len(insurers))
	for _, tier := range tierInfos {
		for _, insurer := range insurers {
			quote, err := domain.ComputeQuote(req.Vehicle, req.Driver, tier.Tier, insurer.Name)
			if err != nil {
				s.logger.ErrorContext(ctx, "failed to compute quote",
					slog.String("insurer", insurer.Name),
					slog.String("tier", string(tier.Tier)),
					slog.Any("error", err),
				)
				return nil, err
			}

			quotes = append(quotes, *quote)
			s.metrics.quotesCalculated.WithLabelValues(string(tier.Tier)).Inc()
		}
	}

	slices.SortStableFunc(quotes, func(a, b domain.Quote) int {
		switch {
		case a.AnnualPremium < b.AnnualPremium:
			return -1
		case a.AnnualPremium > b.AnnualPremium:
			return 1
		default:
			return 0
		}
	})

	s.logger.InfoContext(ctx, "computed quotes",
		slog.Int("count", len(quotes)),
		slog.String("brand", req.Vehicle.Brand),
		slog.String("brand_category", string(req.Vehicle.Category())),
	)

	return quotes, nil
}

// GetAddOns returns the add-on catalog for one insurer.
func (s *QuoteService) GetAddOns(ctx context.Context, insurerName string) ([]domain.AddOn, error) {
	insurer, err := domain.InsurerByName(insurerName)
	if err != nil {
		s.logger.WarnContext(ctx, "add-on lookup for unknown insurer",
			slog.String("insurer", insurerName),
		)
		return nil, err
	}

	return insurer.AddOnsFor(), nil
}

// PurchasePolicy simulates buying a policy. The premium is re-derived with
// the same pricing rules that produced the quote, so the confirmation always
// matches the quoted price for identical inputs. Nothing is persisted.
func (s *QuoteService) PurchasePolicy(ctx context.Context, req PurchaseRequest) (*domain.PolicyConfirmation, error) {
	quote, err := domain.ComputeQuote(req.Vehicle, req.Driver, domain.CoverageTier(strings.ToLower(req.Tier)), req.Insurer)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to price policy purchase",
			slog.String("insurer", req.Insurer),
			slog.String("tier", req.Tier),
			slog.Any("error", err),
		)
		return nil, err
	}

	confirmation := &domain.PolicyConfirmation{
		PolicyNumber:   domain.NewPolicyNumber(quote.InsurerCode),
		Insurer:        quote.Insurer,
		Tier:           quote.Tier,
		TierName:       quote.TierName,
		AnnualPremium:  quote.AnnualPremium,
		MonthlyPremium: quote.MonthlyPremium,
	}

	s.metrics.policiesIssued.WithLabelValues(quote.Insurer).Inc()
	s.logger.InfoContext(ctx, "issued policy",
		slog.String("policy_number", confirmation.PolicyNumber),
		slog.String("insurer", confirmation.Insurer),
		slog.String("tier", string(confirmation.Tier)),
		slog.String("email", req.Customer.Email),
	)

	return confirmation, nil
}

// resolveTiers expands the request tier token into concrete tiers.
func resolveTiers(name string) ([]domain.TierInfo, error) {
	token := strings.ToLower(strings.TrimSpace(name))
	if token == "" || token == tierAll {
		return domain.Tiers(), nil
	}

	info, err := domain.TierByName(token)
	if err != nil {
		return nil, err
	}

	return []domain.TierInfo{info}, nil
}

// resolveInsurers expands the request insurer token into concrete carriers.
func resolveInsurers(name string) ([]domain.Insurer, error) {
	if strings.TrimSpace(name) == "" {
		return domain.Insurers(), nil
	}

	insurer, err := domain.InsurerByName(name)
	if err != nil {
		return nil, err
	}

	return []domain.Insurer{insurer}, nil
}
