package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mentorhub/mentorhub-api/internal/middleware"
	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/internal/services"
)

// SessionHandler handles session lifecycle endpoints
type SessionHandler struct {
	service services.SessionServiceInterface
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(service services.SessionServiceInterface) *SessionHandler {
	return &SessionHandler{service: service}
}

// List handles GET /api/v1/sessions
// Returns every session the caller participates in, as mentee or mentor
func (h *SessionHandler) List(c *gin.Context) {
	session, err := middleware.GetUserSession(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	response, err := h.service.ListForActor(c.Request.Context(), session)
	if err != nil {
		respondDomainError(c, err, "Failed to list sessions")
		return
	}

	c.JSON(http.StatusOK, response)
}

// SubmitFeedback handles POST /api/v1/sessions/:id/feedback
func (h *SessionHandler) SubmitFeedback(c *gin.Context) {
	session, err := middleware.GetUserSession(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	sessionID := c.Param("id")
	if sessionID == "" {
		respondError(c, http.StatusBadRequest, "Invalid session ID", nil)
		return
	}

	var payload models.FeedbackPayload
	if bindErr := c.ShouldBindJSON(&payload); bindErr != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Invalid request body",
			ParseValidationErrors(bindErr), bindErr)
		return
	}

	updated, err := h.service.SubmitFeedback(c.Request.Context(), session, sessionID, &payload)
	if err != nil {
		respondDomainError(c, err, "Failed to submit feedback")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// Cancel handles POST /api/v1/sessions/:id/cancel
func (h *SessionHandler) Cancel(c *gin.Context) {
	session, err := middleware.GetUserSession(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	sessionID := c.Param("id")
	if sessionID == "" {
		respondError(c, http.StatusBadRequest, "Invalid session ID", nil)
		return
	}

	updated, err := h.service.Cancel(c.Request.Context(), session, sessionID)
	if err != nil {
		respondDomainError(c, err, "Failed to cancel session")
		return
	}

	c.JSON(http.StatusOK, updated)
}
