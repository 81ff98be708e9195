//go:build integration

package integration

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hazememba-creator/Insurtech-Guy/internal/adapters/clients"
	"github.com/hazememba-creator/Insurtech-Guy/internal/adapters/clients/acl"
	adapterhttp "github.com/hazememba-creator/Insurtech-Guy/internal/adapters/http"
	"github.com/hazememba-creator/Insurtech-Guy/internal/adapters/http/handlers"
	"github.com/hazememba-creator/Insurtech-Guy/internal/adapters/http/middleware"
	"github.com/hazememba-creator/Insurtech-Guy/internal/app"
	"github.com/hazememba-creator/Insurtech-Guy/internal/platform/config"
	"github.com/hazememba-creator/Insurtech-Guy/internal/ports"
)

// TestRequestIDPropagation_Integration verifies that the inbound request ID
// flows through the router, the application layer, and out on the HTTP call
// to the reviews backend.
func TestRequestIDPropagation_Integration(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var seenRequestID string
	reviewsStub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/v1/reviews") {
			seenRequestID = r.Header.Get(middleware.HeaderRequestID)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"results": []}`))
	}))
	defer reviewsStub.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	metricsRegistry := prometheus.NewRegistry()
	metrics := app.NewMetrics(metricsRegistry)

	reviewsHTTP, err := clients.New(&clients.Config{
		BaseURL:     reviewsStub.URL,
		ServiceName: "reviews-api",
		Timeout:     5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     50 * time.Millisecond,
			Multiplier:      2.0,
		},
		Circuit: config.CircuitBreakerConfig{
			MaxFailures:   3,
			Timeout:       time.Second,
			HalfOpenLimit: 2,
		},
		Logger: logger,
	})
	require.NoError(t, err)

	reviewsClient := acl.NewReviewsClient(acl.ReviewsClientConfig{Client: reviewsHTTP, Logger: logger})

	healthRegistry := ports.NewHealthRegistry()
	require.NoError(t, healthRegistry.Register(reviewsClient))

	quoteService := app.NewQuoteService(app.QuoteServiceConfig{Metrics: metrics, Logger: logger})
	reviewService := app.NewReviewService(app.ReviewServiceConfig{
		ReviewClient: reviewsClient,
		Metrics:      metrics,
		Logger:       logger,
	})

	engine := gin.New()
	adapterhttp.SetupRouter(engine, adapterhttp.RouterConfig{
		Logger:         logger,
		AppConfig:      &config.AppConfig{Name: "insurtech-guy", Version: "test", Environment: "test"},
		QuoteHandler:   handlers.NewQuoteHandler(quoteService),
		InsurerHandler: handlers.NewInsurerHandler(quoteService, reviewService),
		PolicyHandler:  handlers.NewPolicyHandler(quoteService),
		HealthHandler: handlers.NewHealthHandler(
			healthRegistry,
			handlers.NewBuildInfo("test", "none", "unknown"),
			metricsRegistry,
		),
		Timeout: 10 * time.Second,
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/insurers/GEICO/reviews", nil)
	req.Header.Set(middleware.HeaderRequestID, "req-integration-1")
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-integration-1", seenRequestID,
		"request ID should be forwarded to the downstream reviews call")
	assert.Equal(t, "req-integration-1", rec.Header().Get(middleware.HeaderRequestID))
}
