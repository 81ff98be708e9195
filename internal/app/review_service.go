package app

import (
	"context"
	"log/slog"

	"github.com/hazememba-creator/Insurtech-Guy/internal/domain"
	"github.com/hazememba-creator/Insurtech-Guy/internal/ports"
)

// defaultReviewLimit caps a review lookup when the caller does not ask for
// a specific count.
const defaultReviewLimit = 5

// ReviewService fetches insurer reviews through the reviews port.
type ReviewService struct {
	reviews ports.ReviewClient
	metrics *Metrics
	logger  *slog.Logger
}

// ReviewServiceConfig contains configuration for the review service.
type ReviewServiceConfig struct {
	ReviewClient ports.ReviewClient
	Metrics      *Metrics
	Logger       *slog.Logger
}

// NewReviewService creates a new review service with the provided dependencies.
func NewReviewService(cfg ReviewServiceConfig) *ReviewService {
	return &ReviewService{
		reviews: cfg.ReviewClient,
		metrics: cfg.Metrics,
		logger:  cfg.Logger,
	}
}

// GetReviews returns up to limit reviews for a carrier on the panel.
// The insurer name is validated against the panel before the external
// lookup so unknown carriers fail fast without a network call.
func (s *ReviewService) GetReviews(ctx context.Context, insurerName string, limit int) ([]domain.InsurerReview, error) {
	insurer, err := domain.InsurerByName(insurerName)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultReviewLimit
	}

	reviews, err := s.reviews.SearchReviews(ctx, insurer.Name, limit)
	if err != nil {
		s.metrics.reviewLookups.WithLabelValues("error").Inc()
		s.logger.ErrorContext(ctx, "failed to fetch insurer reviews",
			slog.String("insurer", insurer.Name),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.metrics.reviewLookups.WithLabelValues("ok").Inc()
	s.logger.InfoContext(ctx, "fetched insurer reviews",
		slog.String("insurer", insurer.Name),
		slog.Int("count", len(reviews)),
	)

	return reviews, nil
}
