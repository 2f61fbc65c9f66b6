package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mentorhub/mentorhub-api/internal/middleware"
	"github.com/mentorhub/mentorhub-api/internal/services"
)

// MatchingHandler handles mentor matching endpoints
type MatchingHandler struct {
	service services.MatchingServiceInterface
}

// NewMatchingHandler creates a new MatchingHandler
func NewMatchingHandler(service services.MatchingServiceInterface) *MatchingHandler {
	return &MatchingHandler{service: service}
}

// FindMatches handles GET /api/v1/matches
// Ranks available mentors by interest overlap with the caller's project tags
func (h *MatchingHandler) FindMatches(c *gin.Context) {
	session, err := middleware.GetUserSession(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	response, err := h.service.FindMatches(c.Request.Context(), session)
	if err != nil {
		respondDomainError(c, err, "Failed to find matches")
		return
	}

	c.JSON(http.StatusOK, response)
}
