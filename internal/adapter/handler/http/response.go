package http

import (
	"errors"
	"net/http"

	"github.com/veloguard/veloguard-backend/internal/core/domain"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type errorResponse struct {
	Error string `json:"error"`
}

type successResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func newErrorResponse(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, errorResponse{Error: message})
}

func newSuccessResponse(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, successResponse{Message: message, Data: data})
}

// statusFromError maps domain sentinels to HTTP status codes. Anything
// unmapped is a 500.
func statusFromError(err error) int {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return http.StatusBadRequest
	}

	switch {
	case errors.Is(err, domain.ErrBikeNotFound),
		errors.Is(err, domain.ErrReportNotFound),
		errors.Is(err, domain.ErrAccessoryNotFound),
		errors.Is(err, domain.ErrDocumentNotFound),
		errors.Is(err, domain.ErrWorkflowNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrBikeNotReportable),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrStatusConflict),
		errors.Is(err, domain.ErrFrameNumberTaken),
		errors.Is(err, domain.ErrGenerationInFlight):
		return http.StatusConflict
	case errors.Is(err, domain.ErrValidationIncomplete):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrUnknownJurisdiction):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
