// Package acl implements the Anti-Corruption Layer pattern for external services.
// ACL adapters translate between external API models and domain models,
// protecting the domain from external system changes.
package acl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/hazememba-creator/Insurtech-Guy/internal/adapters/clients"
	"github.com/hazememba-creator/Insurtech-Guy/internal/domain"
	"github.com/hazememba-creator/Insurtech-Guy/internal/platform/logging"
)

// reviewServiceName identifies the downstream reviews API in errors,
// logs, and health checks.
const reviewServiceName = "reviews-api"

// ReviewsClientConfig contains configuration for the reviews client.
type ReviewsClientConfig struct {
	// Client is the HTTP client to use for requests.
	// The client's BaseURL should be set to the reviews API endpoint.
	Client *clients.Client

	// Logger is the structured logger.
	Logger *slog.Logger
}

// ReviewsClient implements ports.ReviewClient against the external reviews
// aggregation API. It translates external review documents to domain types.
type ReviewsClient struct {
	client *clients.Client
	logger *slog.Logger
}

// NewReviewsClient creates a new reviews client adapter.
// Panics if Client is nil. Defaults logger to slog.Default() if nil.
func NewReviewsClient(cfg ReviewsClientConfig) *ReviewsClient {
	if cfg.Client == nil {
		panic("ReviewsClient: Client is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &ReviewsClient{
		client: cfg.Client,
		logger: logger,
	}
}

// externalReview is the external DTO from the reviews API.
// This is an internal type - never exposed outside the ACL.
type externalReview struct {
	Provider string  `json:"provider"`
	Headline string  `json:"headline"`
	Excerpt  string  `json:"excerpt"`
	Stars    float64 `json:"stars"`
	Link     string  `json:"link"`
}

// searchResponse wraps the external API's result list.
type searchResponse struct {
	Results []externalReview `json:"results"`
}

// SearchReviews fetches reviews for an insurer from the external API.
// Implements ports.ReviewClient.
func (c *ReviewsClient) SearchReviews(ctx context.Context, insurer string, limit int) ([]domain.InsurerReview, error) {
	query := url.Values{}
	query.Set("insurer", insurer)
	query.Set("limit", strconv.Itoa(limit))
	path := "/v1/reviews?" + query.Encode()

	c.logger.Log(ctx, logging.LevelTrace, "starting request", slog.String("path", path))
	c.logger.DebugContext(ctx, "searching insurer reviews", slog.String("insurer", insurer))

	resp, err := c.client.Get(ctx, path)
	if err != nil {
		return nil, MapHTTPError(nil, err, reviewServiceName, "search reviews", insurer)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Log(ctx, logging.LevelTrace, "request complete",
		slog.String("path", path),
		slog.Int("status", resp.StatusCode))

	if resp.StatusCode != http.StatusOK {
		return nil, MapHTTPError(resp, nil, reviewServiceName, "search reviews", insurer)
	}

	var external searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&external); err != nil {
		return nil, fmt.Errorf("decoding reviews response: %w", err)
	}

	reviews := make([]domain.InsurerReview, 0, len(external.Results))
	for _, ext := range external.Results {
		reviews = append(reviews, c.translateToDomain(insurer, ext))
	}

	c.logger.Log(ctx, logging.LevelTrace, "translated external DTOs to domain",
		slog.Int("count", len(reviews)))

	return reviews, nil
}

// translateToDomain converts an external review document to a domain review.
// This isolates the domain from external API changes.
func (c *ReviewsClient) translateToDomain(insurer string, ext externalReview) domain.InsurerReview {
	return domain.InsurerReview{
		Insurer: insurer,
		Source:  ext.Provider,
		Title:   ext.Headline,
		Snippet: ext.Excerpt,
		Rating:  ext.Stars,
		URL:     ext.Link,
	}
}

// Name returns the health check name for this client.
// Implements ports.HealthChecker.
func (c *ReviewsClient) Name() string {
	return reviewServiceName
}

// Check performs a health check by calling the API's health endpoint.
// Implements ports.HealthChecker.
func (c *ReviewsClient) Check(ctx context.Context) error {
	resp, err := c.client.Get(ctx, "/v1/health")
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("reviews API returned status %d", resp.StatusCode)
	}

	return nil
}
