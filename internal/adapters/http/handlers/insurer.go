package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hazememba-creator/Insurtech-Guy/internal/adapters/http/dto"
	"github.com/hazememba-creator/Insurtech-Guy/internal/app"
	"github.com/hazememba-creator/Insurtech-Guy/internal/domain"
)

// InsurerHandler handles carrier panel HTTP endpoints.
type InsurerHandler struct {
	quotes  *app.QuoteService
	reviews *app.ReviewService
}

// NewInsurerHandler creates a new insurer handler.
func NewInsurerHandler(quotes *app.QuoteService, reviews *app.ReviewService) *InsurerHandler {
	return &InsurerHandler{
		quotes:  quotes,
		reviews: reviews,
	}
}

// ListInsurers handles GET /api/v1/insurers
// Returns the carrier panel in canonical order.
//
// @Summary List carriers
// @Description Returns every insurer on the panel
// @Tags insurers
// @Produce json
// @Success 200 {object} dto.InsurersResponse
// @Router /api/v1/insurers [get]
func (h *InsurerHandler) ListInsurers(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewInsurersResponse(domain.Insurers()))
}

// GetAddOns handles GET /api/v1/insurers/:name/addons
// Returns the add-on catalog for one carrier.
//
// @Summary Get carrier add-ons
// @Description Returns the optional coverages one insurer offers
// @Tags insurers
// @Produce json
// @Param name path string true "Insurer name"
// @Success 200 {object} dto.AddOnsResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/insurers/{name}/addons [get]
func (h *InsurerHandler) GetAddOns(c *gin.Context) {
	name := c.Param("name")

	addOns, err := h.quotes.GetAddOns(c.Request.Context(), name)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AddOnsResponse{
		Insurer: name,
		AddOns:  dto.NewAddOnResponses(addOns),
	})
}

// GetReviews handles GET /api/v1/insurers/:name/reviews?limit=n
// Returns recent customer reviews for one carrier from the reviews provider.
//
// @Summary Get carrier reviews
// @Description Fetches customer review snippets for one insurer
// @Tags insurers
// @Produce json
// @Param name path string true "Insurer name"
// @Param limit query int false "Maximum number of reviews"
// @Success 200 {object} dto.ReviewsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/v1/insurers/{name}/reviews [get]
func (h *InsurerHandler) GetReviews(c *gin.Context) {
	name := c.Param("name")

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
				dto.ErrorCodeBadRequest,
				"limit must be a non-negative integer",
			).WithTraceID(dto.GetTraceID(c)))
			return
		}
		limit = parsed
	}

	reviews, err := h.reviews.GetReviews(c.Request.Context(), name, limit)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewReviewsResponse(name, reviews))
}

// RegisterInsurerRoutes registers insurer routes on the given router group.
func (h *InsurerHandler) RegisterInsurerRoutes(rg *gin.RouterGroup) {
	insurers := rg.Group("/insurers")
	insurers.GET("", h.ListInsurers)
	insurers.GET("/:name/addons", h.GetAddOns)
	insurers.GET("/:name/reviews", h.GetReviews)
}
