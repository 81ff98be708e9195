package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hazememba-creator/Insurtech-Guy/internal/adapters/http/dto"
	"github.com/hazememba-creator/Insurtech-Guy/internal/app"
	"github.com/hazememba-creator/Insurtech-Guy/internal/domain"
)

// startDateLayout is the wire format for policy start dates.
const startDateLayout = "2006-01-02"

// PolicyHandler handles policy purchase HTTP endpoints.
type PolicyHandler struct {
	service *app.QuoteService
}

// NewPolicyHandler creates a new policy handler.
func NewPolicyHandler(service *app.QuoteService) *PolicyHandler {
	return &PolicyHandler{
		service: service,
	}
}

// PurchasePolicy handles POST /api/v1/policies
// Simulates buying a policy. The premium is re-derived server-side from the
// vehicle and driver, so it always matches the quote for identical inputs.
//
// @Summary Purchase a policy
// @Description Issues a simulated policy for the selected carrier and tier
// @Tags policies
// @Accept json
// @Produce json
// @Success 201 {object} dto.PolicyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/policies [post]
func (h *PolicyHandler) PurchasePolicy(c *gin.Context) {
	var req dto.PurchaseRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleBindingError(c, err)
		return
	}

	var startDate time.Time
	if req.Customer.StartDate != "" {
		parsed, err := time.Parse(startDateLayout, req.Customer.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
				dto.ErrorCodeBadRequest,
				"start_date must be a date in "+startDateLayout+" format",
			).WithTraceID(dto.GetTraceID(c)))
			return
		}
		startDate = parsed
	}

	confirmation, err := h.service.PurchasePolicy(c.Request.Context(), app.PurchaseRequest{
		Vehicle: domain.Vehicle{Brand: req.Vehicle.Brand, Value: req.Vehicle.Value},
		Driver:  domain.Driver{Age: req.Driver.Age, LicenseYears: req.Driver.LicenseYears},
		Insurer: req.Insurer,
		Tier:    req.Tier,
		Customer: app.Customer{
			FullName:      req.Customer.FullName,
			Email:         req.Customer.Email,
			PaymentMethod: req.Customer.PaymentMethod,
			StartDate:     startDate,
		},
	})
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewPolicyResponse(confirmation, req.Customer.FullName, req.Customer.StartDate))
}

// RegisterPolicyRoutes registers policy routes on the given router group.
func (h *PolicyHandler) RegisterPolicyRoutes(rg *gin.RouterGroup) {
	rg.POST("/policies", h.PurchasePolicy)
}
