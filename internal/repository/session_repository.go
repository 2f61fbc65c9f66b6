package repository

import (
	"context"
	"time"

	"github.com/mentorhub/mentorhub-api/internal/database/postgres"
	"github.com/mentorhub/mentorhub-api/internal/models"
)

// SessionRepository handles mentorship session data access
type SessionRepository struct {
	db *postgres.Client
}

var _ SessionStore = (*SessionRepository)(nil)

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *postgres.Client) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, session *models.MentorshipSession) (*models.MentorshipSession, error) {
	return r.db.CreateSession(ctx, session)
}

func (r *SessionRepository) FindOverlapping(ctx context.Context, mentorID string, startTime, endTime time.Time) (*models.MentorshipSession, error) {
	return r.db.FindOverlappingSession(ctx, mentorID, startTime, endTime)
}

func (r *SessionRepository) GetByID(ctx context.Context, id string) (*models.MentorshipSession, error) {
	return r.db.GetSessionByID(ctx, id)
}

func (r *SessionRepository) UpdateStatus(ctx context.Context, id string, status models.SessionStatus) (*models.MentorshipSession, error) {
	return r.db.UpdateSessionStatus(ctx, id, status)
}

func (r *SessionRepository) UpdateFeedback(ctx context.Context, id string, rating int, feedback string) (*models.MentorshipSession, error) {
	return r.db.UpdateSessionFeedback(ctx, id, rating, feedback)
}

func (r *SessionRepository) ListForMentee(ctx context.Context, menteeID string) ([]*models.MentorshipSession, error) {
	return r.db.ListSessionsForUser(ctx, menteeID)
}

func (r *SessionRepository) ListForMentor(ctx context.Context, mentorID string) ([]*models.MentorshipSession, error) {
	return r.db.ListSessionsForMentor(ctx, mentorID)
}

func (r *SessionRepository) ListCompletedForMentor(ctx context.Context, mentorID string) ([]*models.MentorshipSession, error) {
	return r.db.ListCompletedSessionsForMentor(ctx, mentorID)
}
