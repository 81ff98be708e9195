package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hazememba-creator/Insurtech-Guy/internal/adapters/http/dto"
)

func newQuoteEngine(t *testing.T) *gin.Engine {
	t.Helper()

	engine := gin.New()
	NewQuoteHandler(newQuoteService(t)).RegisterQuoteRoutes(engine.Group("/api/v1"))

	return engine
}

func TestGetQuotes_FullPanel(t *testing.T) {
	engine := newQuoteEngine(t)

	rec := doJSON(engine, http.MethodPost, "/api/v1/quotes",
		`{"vehicle":{"brand":"Ford","value":50000},"driver":{"age":54,"license_years":35}}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.QuotesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	// 3 tiers across 5 carriers
	assert.Equal(t, 15, resp.Count)
	require.Len(t, resp.Quotes, 15)

	// Sorted cheapest first
	for i := 1; i < len(resp.Quotes); i++ {
		assert.LessOrEqual(t, resp.Quotes[i-1].AnnualPremium, resp.Quotes[i].AnnualPremium)
	}

	assert.Equal(t, "GEICO", resp.Quotes[0].Insurer)
	assert.Equal(t, "liability", resp.Quotes[0].Tier)
	assert.InDelta(t, 712.50, resp.Quotes[0].AnnualPremium, 0.001)
	assert.Equal(t, "american", resp.Quotes[0].BrandCategory)
}

func TestGetQuotes_Narrowed(t *testing.T) {
	engine := newQuoteEngine(t)

	rec := doJSON(engine, http.MethodPost, "/api/v1/quotes",
		`{"vehicle":{"brand":"Ford","value":50000},"driver":{"age":54,"license_years":35},"tier":"standard","insurer":"StateFarm"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.QuotesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "StateFarm", resp.Quotes[0].Insurer)
	assert.InDelta(t, 2500.00, resp.Quotes[0].AnnualPremium, 0.001)
	assert.InDelta(t, 208.33, resp.Quotes[0].MonthlyPremium, 0.001)
}

func TestGetQuotes_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "malformed json",
			body:       `{"vehicle":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   dto.ErrorCodeBadRequest,
		},
		{
			name:       "missing vehicle value",
			body:       `{"vehicle":{"brand":"Ford"},"driver":{"age":40,"license_years":10}}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   dto.ErrorCodeValidation,
		},
		{
			name:       "tier not in catalog",
			body:       `{"vehicle":{"brand":"Ford","value":50000},"driver":{"age":40,"license_years":10},"tier":"platinum"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   dto.ErrorCodeValidation,
		},
		{
			name:       "unknown insurer",
			body:       `{"vehicle":{"brand":"Ford","value":50000},"driver":{"age":40,"license_years":10},"insurer":"Lemonade"}`,
			wantStatus: http.StatusNotFound,
			wantCode:   dto.ErrorCodeUnknownInsurer,
		},
		{
			name:       "underage driver",
			body:       `{"vehicle":{"brand":"Ford","value":50000},"driver":{"age":17,"license_years":1}}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   dto.ErrorCodeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newQuoteEngine(t)

			rec := doJSON(engine, http.MethodPost, "/api/v1/quotes", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestGetQuotes_MixedCaseFilters(t *testing.T) {
	engine := newQuoteEngine(t)

	rec := doJSON(engine, http.MethodPost, "/api/v1/quotes",
		`{"vehicle":{"brand":"Ford","value":50000},"driver":{"age":54,"license_years":35},"tier":"Standard","insurer":" StateFarm "}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.QuotesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
}
