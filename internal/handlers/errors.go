package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/mentorhub/mentorhub-api/pkg/errors"
)

// attachError attaches err to the gin context so the observability middleware
// can include the reason in the request log. c.Error() returns *gin.Error (not
// the error interface), so we suppress errcheck here intentionally.
func attachError(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err) //nolint:errcheck
	}
}

// respondError sends an error JSON response and attaches the error to the gin context
// so the observability middleware can include the reason in the request log.
func respondError(c *gin.Context, status int, message string, err error) {
	attachError(c, err)
	c.JSON(status, gin.H{"error": message})
}

// respondErrorWithDetails sends an error response with an additional details field.
func respondErrorWithDetails(c *gin.Context, status int, message string, details any, err error) { //nolint:unparam
	attachError(c, err)
	c.JSON(status, gin.H{"error": message, "details": details})
}

// respondDomainError maps the scheduling core's error taxonomy onto HTTP
// statuses. Unknown errors are treated as internal and the detail withheld.
func respondDomainError(c *gin.Context, err error, defaultMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		respondError(c, http.StatusNotFound, err.Error(), err)
	case errors.Is(err, apperrors.ErrForbidden):
		respondError(c, http.StatusForbidden, err.Error(), err)
	case errors.Is(err, apperrors.ErrSelfRequest),
		errors.Is(err, apperrors.ErrInvalidInterval),
		errors.Is(err, apperrors.ErrInvalidRating):
		respondError(c, http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, apperrors.ErrInvalidTransition),
		errors.Is(err, apperrors.ErrDuplicateRequest),
		errors.Is(err, apperrors.ErrSlotConflict):
		respondError(c, http.StatusConflict, err.Error(), err)
	case errors.Is(err, apperrors.ErrOutOfAvailability),
		errors.Is(err, apperrors.ErrTooEarly):
		respondError(c, http.StatusUnprocessableEntity, err.Error(), err)
	default:
		respondError(c, http.StatusInternalServerError, defaultMsg, err)
	}
}
