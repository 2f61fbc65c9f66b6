package services

import (
	"context"

	"github.com/mentorhub/mentorhub-api/internal/models"
)

// BookingServiceInterface defines the booking operations
type BookingServiceInterface interface {
	// Book validates the slot against the mentor's availability and existing
	// sessions and persists a scheduled session with a meeting link
	Book(ctx context.Context, actor *models.UserSession, payload *models.BookSessionPayload) (*models.MentorshipSession, error)
}

// SessionServiceInterface defines the session lifecycle operations
type SessionServiceInterface interface {
	SubmitFeedback(ctx context.Context, actor *models.UserSession, sessionID string, payload *models.FeedbackPayload) (*models.MentorshipSession, error)
	Cancel(ctx context.Context, actor *models.UserSession, sessionID string) (*models.MentorshipSession, error)
	ListForActor(ctx context.Context, actor *models.UserSession) (*models.SessionsResponse, error)
}

// RequestServiceInterface defines the mentorship request operations
type RequestServiceInterface interface {
	Create(ctx context.Context, actor *models.UserSession, payload *models.CreateRequestPayload) (*models.MentorshipRequest, error)
	Respond(ctx context.Context, actor *models.UserSession, requestID string, payload *models.RespondRequestPayload) (*models.MentorshipRequest, error)
	Cancel(ctx context.Context, actor *models.UserSession, requestID string) (*models.MentorshipRequest, error)
	ListForActor(ctx context.Context, actor *models.UserSession) (*models.RequestsResponse, error)
}

// MatchingServiceInterface defines the mentor matching operations
type MatchingServiceInterface interface {
	FindMatches(ctx context.Context, actor *models.UserSession) (*models.MatchesResponse, error)
}

// StatsServiceInterface defines the mentor statistics operations
type StatsServiceInterface interface {
	GetMentorStats(ctx context.Context, mentorID string) (*models.MentorStats, error)
}
