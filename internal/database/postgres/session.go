package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/mentorhub/mentorhub-api/internal/models"
	apperrors "github.com/mentorhub/mentorhub-api/pkg/errors"
	"github.com/mentorhub/mentorhub-api/pkg/logger"
	"github.com/mentorhub/mentorhub-api/pkg/metrics"
)

const sessionColumns = `
	id, mentor_id, mentee_id, start_time, end_time, status,
	meeting_link, rating, feedback, notes, created_at, updated_at
`

// CreateSession inserts a scheduled session and returns the stored row
func (c *Client) CreateSession(ctx context.Context, session *models.MentorshipSession) (*models.MentorshipSession, error) {
	start := time.Now()
	operation := "createSession"

	query := fmt.Sprintf(`
		INSERT INTO mentorship_sessions (mentor_id, mentee_id, start_time, end_time, status, meeting_link, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s
	`, sessionColumns)

	created, err := models.ScanMentorshipSession(c.pool.QueryRow(ctx, query,
		session.MentorID,
		session.MenteeID,
		session.StartTime,
		session.EndTime,
		session.Status,
		session.MeetingLink,
		session.Notes,
	))

	duration := metrics.MeasureDuration(start)

	if err != nil {
		recordMetrics(operation, "error", duration)
		logger.LogAPICall("postgres", operation, "error", duration, zap.Error(err))
		return nil, apperrors.InfrastructureError(operation, err)
	}

	recordMetrics(operation, "success", duration)
	return created, nil
}

// FindOverlappingSession returns a scheduled session for the mentor whose
// interval overlaps [startTime, endTime), or nil when the slot is free.
func (c *Client) FindOverlappingSession(ctx context.Context, mentorID string, startTime, endTime time.Time) (*models.MentorshipSession, error) {
	start := time.Now()
	operation := "findOverlappingSession"

	query := fmt.Sprintf(`
		SELECT %s
		FROM mentorship_sessions
		WHERE mentor_id = $1
		  AND status = $2
		  AND start_time < $4
		  AND $3 < end_time
		ORDER BY start_time ASC
		LIMIT 1
	`, sessionColumns)

	session, err := models.ScanMentorshipSession(c.pool.QueryRow(ctx, query,
		mentorID, models.SessionStatusScheduled, startTime, endTime))

	duration := metrics.MeasureDuration(start)

	if errors.Is(err, pgx.ErrNoRows) {
		recordMetrics(operation, "success", duration)
		return nil, nil
	}
	if err != nil {
		recordMetrics(operation, "error", duration)
		logger.LogAPICall("postgres", operation, "error", duration, zap.Error(err))
		return nil, apperrors.InfrastructureError(operation, err)
	}

	recordMetrics(operation, "success", duration)
	return session, nil
}

// GetSessionByID fetches a single session
func (c *Client) GetSessionByID(ctx context.Context, id string) (*models.MentorshipSession, error) {
	start := time.Now()
	operation := "getSessionByID"

	query := fmt.Sprintf(`SELECT %s FROM mentorship_sessions WHERE id = $1`, sessionColumns)

	session, err := models.ScanMentorshipSession(c.pool.QueryRow(ctx, query, id))

	duration := metrics.MeasureDuration(start)

	if errors.Is(err, pgx.ErrNoRows) {
		recordMetrics(operation, "not_found", duration)
		return nil, apperrors.NotFoundError("session")
	}
	if err != nil {
		recordMetrics(operation, "error", duration)
		logger.LogAPICall("postgres", operation, "error", duration, zap.Error(err))
		return nil, apperrors.InfrastructureError(operation, err)
	}

	recordMetrics(operation, "success", duration)
	return session, nil
}

// UpdateSessionStatus moves a session to the given status
func (c *Client) UpdateSessionStatus(ctx context.Context, id string, status models.SessionStatus) (*models.MentorshipSession, error) {
	start := time.Now()
	operation := "updateSessionStatus"

	query := fmt.Sprintf(`
		UPDATE mentorship_sessions
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING %s
	`, sessionColumns)

	session, err := models.ScanMentorshipSession(c.pool.QueryRow(ctx, query, id, status))

	duration := metrics.MeasureDuration(start)

	if errors.Is(err, pgx.ErrNoRows) {
		recordMetrics(operation, "not_found", duration)
		return nil, apperrors.NotFoundError("session")
	}
	if err != nil {
		recordMetrics(operation, "error", duration)
		logger.LogAPICall("postgres", operation, "error", duration, zap.Error(err))
		return nil, apperrors.InfrastructureError(operation, err)
	}

	recordMetrics(operation, "success", duration)
	return session, nil
}

// UpdateSessionFeedback stores rating and feedback and marks the session completed
func (c *Client) UpdateSessionFeedback(ctx context.Context, id string, rating int, feedback string) (*models.MentorshipSession, error) {
	start := time.Now()
	operation := "updateSessionFeedback"

	query := fmt.Sprintf(`
		UPDATE mentorship_sessions
		SET status = $2, rating = $3, feedback = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING %s
	`, sessionColumns)

	session, err := models.ScanMentorshipSession(c.pool.QueryRow(ctx, query,
		id, models.SessionStatusCompleted, rating, nilIfEmpty(feedback)))

	duration := metrics.MeasureDuration(start)

	if errors.Is(err, pgx.ErrNoRows) {
		recordMetrics(operation, "not_found", duration)
		return nil, apperrors.NotFoundError("session")
	}
	if err != nil {
		recordMetrics(operation, "error", duration)
		logger.LogAPICall("postgres", operation, "error", duration, zap.Error(err))
		return nil, apperrors.InfrastructureError(operation, err)
	}

	recordMetrics(operation, "success", duration)
	return session, nil
}

// ListSessionsForUser returns sessions where the user is the mentee, newest first
func (c *Client) ListSessionsForUser(ctx context.Context, menteeID string) ([]*models.MentorshipSession, error) {
	start := time.Now()
	operation := "listSessionsForUser"

	query := fmt.Sprintf(`
		SELECT %s
		FROM mentorship_sessions
		WHERE mentee_id = $1
		ORDER BY start_time DESC
	`, sessionColumns)

	rows, err := c.pool.Query(ctx, query, menteeID)
	if err != nil {
		duration := metrics.MeasureDuration(start)
		recordMetrics(operation, "error", duration)
		return nil, apperrors.InfrastructureError(operation, err)
	}

	sessions, err := models.ScanMentorshipSessions(rows)

	duration := metrics.MeasureDuration(start)

	if err != nil {
		recordMetrics(operation, "error", duration)
		logger.LogAPICall("postgres", operation, "error", duration, zap.Error(err))
		return nil, apperrors.InfrastructureError(operation, err)
	}

	recordMetrics(operation, "success", duration)
	return sessions, nil
}

// ListSessionsForMentor returns sessions booked against a mentor profile, newest first
func (c *Client) ListSessionsForMentor(ctx context.Context, mentorID string) ([]*models.MentorshipSession, error) {
	start := time.Now()
	operation := "listSessionsForMentor"

	query := fmt.Sprintf(`
		SELECT %s
		FROM mentorship_sessions
		WHERE mentor_id = $1
		ORDER BY start_time DESC
	`, sessionColumns)

	rows, err := c.pool.Query(ctx, query, mentorID)
	if err != nil {
		duration := metrics.MeasureDuration(start)
		recordMetrics(operation, "error", duration)
		return nil, apperrors.InfrastructureError(operation, err)
	}

	sessions, err := models.ScanMentorshipSessions(rows)

	duration := metrics.MeasureDuration(start)

	if err != nil {
		recordMetrics(operation, "error", duration)
		logger.LogAPICall("postgres", operation, "error", duration, zap.Error(err))
		return nil, apperrors.InfrastructureError(operation, err)
	}

	recordMetrics(operation, "success", duration)
	return sessions, nil
}

// ListCompletedSessionsForMentor returns completed sessions for stats aggregation
func (c *Client) ListCompletedSessionsForMentor(ctx context.Context, mentorID string) ([]*models.MentorshipSession, error) {
	start := time.Now()
	operation := "listCompletedSessionsForMentor"

	query := fmt.Sprintf(`
		SELECT %s
		FROM mentorship_sessions
		WHERE mentor_id = $1 AND status = $2
		ORDER BY start_time ASC
	`, sessionColumns)

	rows, err := c.pool.Query(ctx, query, mentorID, models.SessionStatusCompleted)
	if err != nil {
		duration := metrics.MeasureDuration(start)
		recordMetrics(operation, "error", duration)
		return nil, apperrors.InfrastructureError(operation, err)
	}

	sessions, err := models.ScanMentorshipSessions(rows)

	duration := metrics.MeasureDuration(start)

	if err != nil {
		recordMetrics(operation, "error", duration)
		logger.LogAPICall("postgres", operation, "error", duration, zap.Error(err))
		return nil, apperrors.InfrastructureError(operation, err)
	}

	recordMetrics(operation, "success", duration)
	return sessions, nil
}
