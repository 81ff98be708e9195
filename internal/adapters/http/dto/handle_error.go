package dto

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/hazememba-creator/Insurtech-Guy/internal/domain"
	"github.com/hazememba-creator/Insurtech-Guy/internal/platform/logging"
)

// GetTraceID extracts the trace ID for error responses.
// Precedence: explicit "trace_id" in gin.Context, then the active
// OpenTelemetry span, then the X-Request-ID header as a last resort.
func GetTraceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}

		return ""
	}

	if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
		return span.SpanContext().TraceID().String()
	}

	return c.Request.Header.Get("X-Request-ID")
}

// HandleError maps a domain error to an HTTP response and writes it.
// Handlers call this for any error coming back from the application layer.
func HandleError(c *gin.Context, err error) {
	status, errResp := mapDomainError(err)
	errResp.TraceID = GetTraceID(c)

	// Log internal errors with full details; the response stays generic
	if status == http.StatusInternalServerError {
		logging.FromContext(c.Request.Context()).Error("internal error",
			"error", err.Error(),
			"trace_id", errResp.TraceID,
		)
	}

	c.JSON(status, errResp)
}

// mapDomainError maps a domain error to an HTTP status and error envelope.
func mapDomainError(err error) (int, *ErrorResponse) {
	switch {
	case domain.IsUnknownInsurer(err):
		return http.StatusNotFound, NewErrorResponse(ErrorCodeUnknownInsurer, err.Error())

	case domain.IsUnknownTier(err):
		return http.StatusBadRequest, NewErrorResponse(ErrorCodeUnknownTier, err.Error())

	case domain.IsValidation(err):
		resp := NewErrorResponse(ErrorCodeValidation, err.Error())

		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) && validationErr.Field != "" {
			resp.Error.Details = map[string]string{
				validationErr.Field: validationErr.Message,
			}
		}

		return http.StatusBadRequest, resp

	case domain.IsNotFound(err):
		return http.StatusNotFound, NewErrorResponse(ErrorCodeNotFound, err.Error())

	case domain.IsUnavailable(err):
		return http.StatusServiceUnavailable, NewErrorResponse(
			ErrorCodeUnavailable,
			"service temporarily unavailable",
		)

	default:
		return http.StatusInternalServerError, NewErrorResponse(
			ErrorCodeInternal,
			"an internal error occurred",
		)
	}
}

// HandleBindingError writes a 400 response for binding/validation failures
// from BindAndValidate, with field-level details when available.
func HandleBindingError(c *gin.Context, err error) {
	if fieldErrors := ValidationErrors(err); len(fieldErrors) > 0 {
		resp := NewErrorResponseWithDetails(
			ErrorCodeValidation,
			"request validation failed",
			fieldErrors,
		)
		resp.TraceID = GetTraceID(c)
		c.JSON(http.StatusBadRequest, resp)

		return
	}

	resp := NewErrorResponse(ErrorCodeBadRequest, "malformed request body")
	resp.TraceID = GetTraceID(c)
	c.JSON(http.StatusBadRequest, resp)
}
