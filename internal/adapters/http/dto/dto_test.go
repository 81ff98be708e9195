package dto

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hazememba-creator/Insurtech-Guy/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHTTPStatusFromCode(t *testing.T) {
	tests := []struct {
		name string
		code string
		want int
	}{
		{name: "not found", code: ErrorCodeNotFound, want: http.StatusNotFound},
		{name: "unknown insurer", code: ErrorCodeUnknownInsurer, want: http.StatusNotFound},
		{name: "unknown tier", code: ErrorCodeUnknownTier, want: http.StatusBadRequest},
		{name: "validation", code: ErrorCodeValidation, want: http.StatusBadRequest},
		{name: "bad request", code: ErrorCodeBadRequest, want: http.StatusBadRequest},
		{name: "unavailable", code: ErrorCodeUnavailable, want: http.StatusServiceUnavailable},
		{name: "timeout", code: ErrorCodeTimeout, want: http.StatusGatewayTimeout},
		{name: "unknown code defaults to internal error", code: "UNKNOWN_CODE", want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatusFromCode(tt.code))
		})
	}
}

func TestGetTraceID(t *testing.T) {
	tests := []struct {
		name         string
		setupContext func(*gin.Context)
		want         string
	}{
		{
			name: "trace ID in context",
			setupContext: func(c *gin.Context) {
				c.Set("trace_id", "context-trace-123")
			},
			want: "context-trace-123",
		},
		{
			name: "falls back to request ID header",
			setupContext: func(c *gin.Context) {
				c.Request.Header.Set("X-Request-ID", "header-trace-456")
			},
			want: "header-trace-456",
		},
		{
			name: "context takes precedence over header",
			setupContext: func(c *gin.Context) {
				c.Set("trace_id", "context-trace-123")
				c.Request.Header.Set("X-Request-ID", "header-trace-456")
			},
			want: "context-trace-123",
		},
		{
			name:         "no trace ID",
			setupContext: func(_ *gin.Context) {},
			want:         "",
		},
		{
			name: "trace ID in context but wrong type",
			setupContext: func(c *gin.Context) {
				c.Set("trace_id", 12345)
			},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			tt.setupContext(c)

			assert.Equal(t, tt.want, GetTraceID(c))
		})
	}
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		wantStatus     int
		wantCode       string
		wantMessageKey string
	}{
		{
			name:           "unknown insurer error",
			err:            domain.NewUnknownInsurerError("Lemonade"),
			wantStatus:     http.StatusNotFound,
			wantCode:       ErrorCodeUnknownInsurer,
			wantMessageKey: "Lemonade",
		},
		{
			name:           "unknown tier error",
			err:            domain.NewUnknownTierError("platinum"),
			wantStatus:     http.StatusBadRequest,
			wantCode:       ErrorCodeUnknownTier,
			wantMessageKey: "platinum",
		},
		{
			name:           "validation error",
			err:            domain.NewValidationError("age", "driver must be at least 18 years old"),
			wantStatus:     http.StatusBadRequest,
			wantCode:       ErrorCodeValidation,
			wantMessageKey: "age",
		},
		{
			name:           "unavailable error hides details",
			err:            domain.NewUnavailableError("reviews-api", "connection refused"),
			wantStatus:     http.StatusServiceUnavailable,
			wantCode:       ErrorCodeUnavailable,
			wantMessageKey: "temporarily unavailable",
		},
		{
			name:           "unexpected error gets generic message",
			err:            errors.New("boom"),
			wantStatus:     http.StatusInternalServerError,
			wantCode:       ErrorCodeInternal,
			wantMessageKey: "internal error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Set("trace_id", "trace-123")

			HandleError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

			assert.Equal(t, tt.wantCode, response.Error.Code)
			assert.Contains(t, response.Error.Message, tt.wantMessageKey)
			assert.Equal(t, "trace-123", response.TraceID)
		})
	}
}

func TestHandleError_ValidationFieldDetails(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleError(c, domain.NewValidationError("license_years", "must not be negative"))

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "must not be negative", response.Error.Details["license_years"])
}

func TestBindAndValidate_NormalizesBeforeValidation(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/",
		strings.NewReader(`{"vehicle":{"brand":" Ford ","value":50000},"driver":{"age":40,"license_years":10},"tier":"  Premium "}`))
	c.Request.Header.Set("Content-Type", "application/json")

	var req QuoteRequest
	require.NoError(t, BindAndValidate(c, &req))

	// "Premium" only passes the oneof after Normalize lowercases it
	assert.Equal(t, "premium", req.Tier)
	assert.Equal(t, "Ford", req.Vehicle.Brand)
}

func TestBindAndValidate_FieldErrors(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/",
		strings.NewReader(`{"vehicle":{"brand":"Ford","value":50000},"driver":{"age":40},"tier":"platinum"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	var req QuoteRequest
	err := BindAndValidate(c, &req)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrValidation)

	fieldErrors := ValidationErrors(err)
	assert.Contains(t, fieldErrors["tier"], "must be one of")
}

func TestBindAndValidate_MalformedJSON(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"vehicle":`))
	c.Request.Header.Set("Content-Type", "application/json")

	var req QuoteRequest
	err := BindAndValidate(c, &req)
	require.ErrorIs(t, err, ErrBinding)
	assert.Empty(t, ValidationErrors(err))
}

func TestPurchaseRequestValidation(t *testing.T) {
	valid := PurchaseRequest{
		Vehicle: VehicleRequest{Brand: "Ford", Value: 50000},
		Driver:  DriverRequest{Age: 40, LicenseYears: 10},
		Insurer: "GEICO",
		Tier:    "liability",
		Customer: CustomerRequest{
			FullName:      "Jordan Fisher",
			Email:         "jordan@example.com",
			PaymentMethod: "credit_card",
			StartDate:     "2026-09-15",
		},
	}
	require.NoError(t, Validate(valid))

	badDate := valid
	badDate.Customer.StartDate = "15/09/2026"
	err := Validate(badDate)
	require.Error(t, err)
	assert.Contains(t, ValidationErrors(err)["start_date"], "2006-01-02")
}
