package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mentorhub/mentorhub-api/internal/middleware"
	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/internal/services"
)

// RequestHandler handles mentorship request endpoints
type RequestHandler struct {
	service services.RequestServiceInterface
}

// NewRequestHandler creates a new RequestHandler
func NewRequestHandler(service services.RequestServiceInterface) *RequestHandler {
	return &RequestHandler{service: service}
}

// Create handles POST /api/v1/requests
func (h *RequestHandler) Create(c *gin.Context) {
	session, err := middleware.GetUserSession(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var payload models.CreateRequestPayload
	if bindErr := c.ShouldBindJSON(&payload); bindErr != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Invalid request body",
			ParseValidationErrors(bindErr), bindErr)
		return
	}

	created, err := h.service.Create(c.Request.Context(), session, &payload)
	if err != nil {
		respondDomainError(c, err, "Failed to create request")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// List handles GET /api/v1/requests
// Returns requests the caller opened plus requests addressed to their profile
func (h *RequestHandler) List(c *gin.Context) {
	session, err := middleware.GetUserSession(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	response, err := h.service.ListForActor(c.Request.Context(), session)
	if err != nil {
		respondDomainError(c, err, "Failed to list requests")
		return
	}

	c.JSON(http.StatusOK, response)
}

// Respond handles POST /api/v1/requests/:id/respond
func (h *RequestHandler) Respond(c *gin.Context) {
	session, err := middleware.GetUserSession(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	requestID := c.Param("id")
	if requestID == "" {
		respondError(c, http.StatusBadRequest, "Invalid request ID", nil)
		return
	}

	var payload models.RespondRequestPayload
	if bindErr := c.ShouldBindJSON(&payload); bindErr != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Invalid request body",
			ParseValidationErrors(bindErr), bindErr)
		return
	}

	updated, err := h.service.Respond(c.Request.Context(), session, requestID, &payload)
	if err != nil {
		respondDomainError(c, err, "Failed to respond to request")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// Cancel handles POST /api/v1/requests/:id/cancel
func (h *RequestHandler) Cancel(c *gin.Context) {
	session, err := middleware.GetUserSession(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	requestID := c.Param("id")
	if requestID == "" {
		respondError(c, http.StatusBadRequest, "Invalid request ID", nil)
		return
	}

	updated, err := h.service.Cancel(c.Request.Context(), session, requestID)
	if err != nil {
		respondDomainError(c, err, "Failed to cancel request")
		return
	}

	c.JSON(http.StatusOK, updated)
}
