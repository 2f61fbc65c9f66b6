package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mentorhub/mentorhub-api/internal/handlers"
	"github.com/mentorhub/mentorhub-api/internal/middleware"
	"github.com/mentorhub/mentorhub-api/internal/models"
	apperrors "github.com/mentorhub/mentorhub-api/pkg/errors"
)

// MockSessionService is a mock implementation of services.SessionServiceInterface
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) SubmitFeedback(ctx context.Context, actor *models.UserSession, sessionID string, payload *models.FeedbackPayload) (*models.MentorshipSession, error) {
	args := m.Called(ctx, actor, sessionID, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MentorshipSession), args.Error(1)
}

func (m *MockSessionService) Cancel(ctx context.Context, actor *models.UserSession, sessionID string) (*models.MentorshipSession, error) {
	args := m.Called(ctx, actor, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MentorshipSession), args.Error(1)
}

func (m *MockSessionService) ListForActor(ctx context.Context, actor *models.UserSession) (*models.SessionsResponse, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SessionsResponse), args.Error(1)
}

func sessionFeedbackRouter(service *MockSessionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := handlers.NewSessionHandler(service)

	// Inject a fixed session instead of running the JWT middleware
	router.POST("/api/v1/sessions/:id/feedback", func(c *gin.Context) {
		c.Set(middleware.UserSessionContextKey, &models.UserSession{UserID: "mentee-1", Name: "Mia"})
	}, handler.SubmitFeedback)

	return router
}

func postFeedback(router *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/session-1/feedback", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestSessionHandler_SubmitFeedback(t *testing.T) {
	service := new(MockSessionService)
	router := sessionFeedbackRouter(service)

	service.On("SubmitFeedback", mock.Anything, mock.Anything, "session-1", mock.Anything).
		Return(&models.MentorshipSession{ID: "session-1", Status: models.SessionStatusCompleted}, nil).Once()

	w := postFeedback(router, `{"rating": 5, "feedback": "great session"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "session-1")
	service.AssertExpectations(t)
}

// A zero rating must pass binding and reach the service, which rejects it
// with the domain error rather than a generic validation failure.
func TestSessionHandler_SubmitFeedback_ZeroRatingReachesService(t *testing.T) {
	service := new(MockSessionService)
	router := sessionFeedbackRouter(service)

	service.On("SubmitFeedback", mock.Anything, mock.Anything, "session-1",
		mock.MatchedBy(func(p *models.FeedbackPayload) bool { return p.Rating == 0 })).
		Return(nil, apperrors.ErrInvalidRating).Once()

	w := postFeedback(router, `{"rating": 0}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), apperrors.ErrInvalidRating.Error())
	service.AssertExpectations(t)
}
