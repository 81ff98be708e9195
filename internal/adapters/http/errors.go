package http

import (
	"github.com/gin-gonic/gin"

	"github.com/hazememba-creator/Insurtech-Guy/internal/adapters/http/dto"
)

// RespondWithError maps a domain error to an HTTP response and writes it.
func RespondWithError(c *gin.Context, err error) {
	dto.HandleError(c, err)
}

// RespondWithErrorCode writes an error response with a specific error code.
// Use this for adapter-level errors (e.g., unknown routes) that don't
// originate from domain errors.
func RespondWithErrorCode(c *gin.Context, code, message string) {
	errResp := dto.NewErrorResponse(code, message).WithTraceID(dto.GetTraceID(c))
	c.JSON(dto.HTTPStatusFromCode(code), errResp)
}

// AbortWithErrorCode aborts the request chain with a specific error code.
func AbortWithErrorCode(c *gin.Context, code, message string) {
	errResp := dto.NewErrorResponse(code, message).WithTraceID(dto.GetTraceID(c))
	c.AbortWithStatusJSON(dto.HTTPStatusFromCode(code), errResp)
}
