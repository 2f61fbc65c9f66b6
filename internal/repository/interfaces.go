package repository

import (
	"context"
	"time"

	"github.com/mentorhub/mentorhub-api/internal/models"
)

// ProfileStore defines the interface for mentor profile data access
type ProfileStore interface {
	// GetByID fetches a mentor profile with its availability rules
	GetByID(ctx context.Context, id string) (*models.MentorProfile, error)

	// GetByUserID fetches the mentor profile owned by a user
	GetByUserID(ctx context.Context, userID string) (*models.MentorProfile, error)

	// GetAllAvailable fetches every profile with the availability flag set
	GetAllAvailable(ctx context.Context) ([]*models.MentorProfile, error)
}

// SessionStore defines the interface for mentorship session data access
type SessionStore interface {
	Create(ctx context.Context, session *models.MentorshipSession) (*models.MentorshipSession, error)

	// FindOverlapping returns a scheduled session overlapping the slot, nil when free
	FindOverlapping(ctx context.Context, mentorID string, startTime, endTime time.Time) (*models.MentorshipSession, error)

	GetByID(ctx context.Context, id string) (*models.MentorshipSession, error)

	UpdateStatus(ctx context.Context, id string, status models.SessionStatus) (*models.MentorshipSession, error)

	// UpdateFeedback stores rating and feedback and marks the session completed
	UpdateFeedback(ctx context.Context, id string, rating int, feedback string) (*models.MentorshipSession, error)

	ListForMentee(ctx context.Context, menteeID string) ([]*models.MentorshipSession, error)

	ListForMentor(ctx context.Context, mentorID string) ([]*models.MentorshipSession, error)

	ListCompletedForMentor(ctx context.Context, mentorID string) ([]*models.MentorshipSession, error)
}

// RequestStore defines the interface for mentorship request data access
type RequestStore interface {
	Create(ctx context.Context, request *models.MentorshipRequest) (*models.MentorshipRequest, error)

	// FindPendingByPair returns the pending request between the pair, nil when none
	FindPendingByPair(ctx context.Context, mentorID, menteeID string) (*models.MentorshipRequest, error)

	GetByID(ctx context.Context, id string) (*models.MentorshipRequest, error)

	UpdateResponse(ctx context.Context, id string, status models.RequestStatus, responseMessage string) (*models.MentorshipRequest, error)

	UpdateStatus(ctx context.Context, id string, status models.RequestStatus) (*models.MentorshipRequest, error)

	ListForMentee(ctx context.Context, menteeID string) ([]*models.MentorshipRequest, error)

	ListForMentor(ctx context.Context, mentorID string) ([]*models.MentorshipRequest, error)
}

// InterestStore defines the interface for mentee interest derivation
type InterestStore interface {
	// GetInterestTags returns distinct lowercased tags across a user's projects
	GetInterestTags(ctx context.Context, userID string) ([]string, error)
}
