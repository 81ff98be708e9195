package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hazememba-creator/Insurtech-Guy/internal/adapters/http/dto"
	"github.com/hazememba-creator/Insurtech-Guy/internal/adapters/http/handlers"
	"github.com/hazememba-creator/Insurtech-Guy/internal/adapters/http/middleware"
	"github.com/hazememba-creator/Insurtech-Guy/internal/platform/config"
	"github.com/hazememba-creator/Insurtech-Guy/internal/platform/telemetry"
)

// DefaultRequestTimeout is the default timeout for API requests.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the structured logger for request logging.
	Logger *slog.Logger

	// AppConfig contains application configuration.
	AppConfig *config.AppConfig

	// QuoteHandler handles quote pricing endpoints.
	QuoteHandler *handlers.QuoteHandler

	// InsurerHandler handles carrier panel endpoints.
	InsurerHandler *handlers.InsurerHandler

	// PolicyHandler handles policy purchase endpoints.
	PolicyHandler *handlers.PolicyHandler

	// HealthHandler handles health check endpoints.
	HealthHandler *handlers.HealthHandler

	// Timeout is the default request timeout.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Request ID - generate/extract request ID
//  3. Correlation ID - handle distributed tracing correlation
//  4. OpenTelemetry - tracing and metrics
//  5. Logging - request logging (skips health endpoints)
//  6. Timeout - request deadline (applied to the API group)
//
// Route groups:
//   - /-/ (internal): health probes, build info, metrics; no timeout
//   - /api/v1/ (public API): quoting, carrier panel, policy purchase
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	// Apply global middleware in order
	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.Middleware(cfg.AppConfig.Name),
		middleware.Logging(cfg.Logger),
	)

	engine.HandleMethodNotAllowed = true
	engine.NoRoute(func(c *gin.Context) {
		RespondWithErrorCode(c, dto.ErrorCodeNotFound, "route not found")
	})
	engine.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, dto.NewErrorResponse(
			dto.ErrorCodeBadRequest,
			"method not allowed",
		).WithTraceID(dto.GetTraceID(c)))
	})

	// Register health endpoints (no timeout, probes must stay cheap)
	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	// Setup API v1 routes with timeout
	apiV1 := engine.Group("/api/v1")
	if cfg.Timeout > 0 {
		apiV1.Use(middleware.SimpleTimeout(cfg.Timeout))
	}

	if cfg.QuoteHandler != nil {
		cfg.QuoteHandler.RegisterQuoteRoutes(apiV1)
	}

	if cfg.InsurerHandler != nil {
		cfg.InsurerHandler.RegisterInsurerRoutes(apiV1)
	}

	if cfg.PolicyHandler != nil {
		cfg.PolicyHandler.RegisterPolicyRoutes(apiV1)
	}
}
