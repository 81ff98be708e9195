package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hazememba-creator/Insurtech-Guy/internal/adapters/http/dto"
	"github.com/hazememba-creator/Insurtech-Guy/internal/app"
	"github.com/hazememba-creator/Insurtech-Guy/internal/domain"
)

// QuoteHandler handles quote-related HTTP endpoints.
type QuoteHandler struct {
	service *app.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service *app.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		service: service,
	}
}

// GetQuotes handles POST /api/v1/quotes
// Prices the requested vehicle and driver across the carrier panel and
// returns the quotes sorted by annual premium, cheapest first.
//
// @Summary Get insurance quotes
// @Description Prices the vehicle and driver across tiers and carriers
// @Tags quotes
// @Accept json
// @Produce json
// @Success 200 {object} dto.QuotesResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/quotes [post]
func (h *QuoteHandler) GetQuotes(c *gin.Context) {
	var req dto.QuoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleBindingError(c, err)
		return
	}

	quotes, err := h.service.GetQuotes(c.Request.Context(), app.QuoteRequest{
		Vehicle: domain.Vehicle{Brand: req.Vehicle.Brand, Value: req.Vehicle.Value},
		Driver:  domain.Driver{Age: req.Driver.Age, LicenseYears: req.Driver.LicenseYears},
		Tier:    req.Tier,
		Insurer: req.Insurer,
	})
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuotesResponse(quotes))
}

// RegisterQuoteRoutes registers quote routes on the given router group.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	rg.POST("/quotes", h.GetQuotes)
}
