package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mentorhub/mentorhub-api/internal/middleware"
	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/internal/services"
)

// BookingHandler handles session booking endpoints
type BookingHandler struct {
	service services.BookingServiceInterface
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(service services.BookingServiceInterface) *BookingHandler {
	return &BookingHandler{service: service}
}

// Book handles POST /api/v1/bookings
func (h *BookingHandler) Book(c *gin.Context) {
	session, err := middleware.GetUserSession(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var payload models.BookSessionPayload
	if bindErr := c.ShouldBindJSON(&payload); bindErr != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Invalid request body",
			ParseValidationErrors(bindErr), bindErr)
		return
	}

	booked, err := h.service.Book(c.Request.Context(), session, &payload)
	if err != nil {
		respondDomainError(c, err, "Failed to book session")
		return
	}

	c.JSON(http.StatusCreated, booked)
}
