package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/pkg/jwt"
)

const (
	// UserSessionContextKey is the key used to store the session in context
	UserSessionContextKey = "user_session"
)

var (
	ErrSessionNotFound = errors.New("session not found in context")
	ErrInvalidSession  = errors.New("invalid session type")
)

// UserSessionMiddleware validates the Bearer token and adds the user session
// to the request context
func UserSessionMiddleware(tokenManager *jwt.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			_ = c.Error(fmt.Errorf("missing authorization header")) //nolint:errcheck
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			_ = c.Error(fmt.Errorf("malformed authorization header")) //nolint:errcheck
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		claims, err := tokenManager.ValidateToken(token)
		if err != nil {
			_ = c.Error(fmt.Errorf("invalid session token: %w", err)) //nolint:errcheck

			if errors.Is(err, jwt.ErrExpiredToken) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired"})
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			}
			c.Abort()
			return
		}

		session := &models.UserSession{
			UserID:    claims.UserID,
			Email:     claims.Email,
			Name:      claims.Name,
			Role:      claims.Role,
			IssuedAt:  claims.IssuedAt.Unix(),
			ExpiresAt: claims.ExpiresAt.Unix(),
		}

		c.Set(UserSessionContextKey, session)
		c.Next()
	}
}

// GetUserSession extracts the authenticated session from context
func GetUserSession(c *gin.Context) (*models.UserSession, error) {
	val, exists := c.Get(UserSessionContextKey)
	if !exists {
		return nil, ErrSessionNotFound
	}

	session, ok := val.(*models.UserSession)
	if !ok {
		return nil, ErrInvalidSession
	}

	return session, nil
}
