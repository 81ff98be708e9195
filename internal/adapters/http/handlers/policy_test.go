package handlers

import (
	"encoding/json"
	"net/http"
	"regexp"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hazememba-creator/Insurtech-Guy/internal/adapters/http/dto"
)

func newPolicyEngine(t *testing.T) *gin.Engine {
	t.Helper()

	engine := gin.New()
	NewPolicyHandler(newQuoteService(t)).RegisterPolicyRoutes(engine.Group("/api/v1"))

	return engine
}

func TestPurchasePolicy(t *testing.T) {
	engine := newPolicyEngine(t)

	rec := doJSON(engine, http.MethodPost, "/api/v1/policies", `{
		"vehicle": {"brand": "Ford", "value": 50000},
		"driver": {"age": 54, "license_years": 35},
		"insurer": "StateFarm",
		"tier": "standard",
		"customer": {
			"full_name": "Jordan Fisher",
			"email": "jordan@example.com",
			"payment_method": "credit_card",
			"start_date": "2026-09-15"
		}
	}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.PolicyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Regexp(t, regexp.MustCompile(`^STA-\d{8}$`), resp.PolicyNumber)
	assert.Equal(t, "StateFarm", resp.Insurer)
	assert.Equal(t, "standard", resp.Tier)
	assert.InDelta(t, 2500.00, resp.AnnualPremium, 0.001)
	assert.Equal(t, "Jordan Fisher", resp.CustomerName)
	assert.Equal(t, "2026-09-15", resp.StartDate)
}

func TestPurchasePolicy_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{
			name: "invalid email",
			body: `{
				"vehicle": {"brand": "Ford", "value": 50000},
				"driver": {"age": 54, "license_years": 35},
				"insurer": "StateFarm",
				"tier": "standard",
				"customer": {"full_name": "Jordan Fisher", "email": "not-an-email", "payment_method": "credit_card"}
			}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   dto.ErrorCodeValidation,
		},
		{
			name: "unsupported payment method",
			body: `{
				"vehicle": {"brand": "Ford", "value": 50000},
				"driver": {"age": 54, "license_years": 35},
				"insurer": "StateFarm",
				"tier": "standard",
				"customer": {"full_name": "Jordan Fisher", "email": "jordan@example.com", "payment_method": "cash"}
			}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   dto.ErrorCodeValidation,
		},
		{
			name: "unknown insurer",
			body: `{
				"vehicle": {"brand": "Ford", "value": 50000},
				"driver": {"age": 54, "license_years": 35},
				"insurer": "Lemonade",
				"tier": "standard",
				"customer": {"full_name": "Jordan Fisher", "email": "jordan@example.com", "payment_method": "credit_card"}
			}`,
			wantStatus: http.StatusNotFound,
			wantCode:   dto.ErrorCodeUnknownInsurer,
		},
		{
			name: "missing customer",
			body: `{
				"vehicle": {"brand": "Ford", "value": 50000},
				"driver": {"age": 54, "license_years": 35},
				"insurer": "StateFarm",
				"tier": "standard"
			}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   dto.ErrorCodeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newPolicyEngine(t)

			rec := doJSON(engine, http.MethodPost, "/api/v1/policies", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestPurchasePolicy_WithoutStartDate(t *testing.T) {
	engine := newPolicyEngine(t)

	rec := doJSON(engine, http.MethodPost, "/api/v1/policies", `{
		"vehicle": {"brand": "Toyota", "value": 30000},
		"driver": {"age": 30, "license_years": 10},
		"insurer": "GEICO",
		"tier": "liability",
		"customer": {"full_name": "Sam Okafor", "email": "sam@example.com", "payment_method": "bank_transfer"}
	}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.PolicyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Regexp(t, regexp.MustCompile(`^GEI-\d{8}$`), resp.PolicyNumber)
	assert.Empty(t, resp.StartDate)
}
