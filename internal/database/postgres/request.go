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

const requestColumns = `
	id, mentor_id, mentee_id, message, response_message, status, created_at, updated_at
`

// CreateRequest inserts a pending mentorship request
func (c *Client) CreateRequest(ctx context.Context, request *models.MentorshipRequest) (*models.MentorshipRequest, error) {
	start := time.Now()
	operation := "createRequest"

	query := fmt.Sprintf(`
		INSERT INTO mentorship_requests (mentor_id, mentee_id, message, status)
		VALUES ($1, $2, $3, $4)
		RETURNING %s
	`, requestColumns)

	created, err := models.ScanMentorshipRequest(c.pool.QueryRow(ctx, query,
		request.MentorID,
		request.MenteeID,
		nilIfEmpty(request.Message),
		request.Status,
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

// FindPendingRequestByPair returns the pending request between a mentee and a
// mentor, or nil when none exists.
func (c *Client) FindPendingRequestByPair(ctx context.Context, mentorID, menteeID string) (*models.MentorshipRequest, error) {
	start := time.Now()
	operation := "findPendingRequestByPair"

	query := fmt.Sprintf(`
		SELECT %s
		FROM mentorship_requests
		WHERE mentor_id = $1 AND mentee_id = $2 AND status = $3
		LIMIT 1
	`, requestColumns)

	request, err := models.ScanMentorshipRequest(c.pool.QueryRow(ctx, query,
		mentorID, menteeID, models.RequestStatusPending))

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
	return request, nil
}

// GetRequestByID fetches a single request
func (c *Client) GetRequestByID(ctx context.Context, id string) (*models.MentorshipRequest, error) {
	start := time.Now()
	operation := "getRequestByID"

	query := fmt.Sprintf(`SELECT %s FROM mentorship_requests WHERE id = $1`, requestColumns)

	request, err := models.ScanMentorshipRequest(c.pool.QueryRow(ctx, query, id))

	duration := metrics.MeasureDuration(start)

	if errors.Is(err, pgx.ErrNoRows) {
		recordMetrics(operation, "not_found", duration)
		return nil, apperrors.NotFoundError("mentorship request")
	}
	if err != nil {
		recordMetrics(operation, "error", duration)
		logger.LogAPICall("postgres", operation, "error", duration, zap.Error(err))
		return nil, apperrors.InfrastructureError(operation, err)
	}

	recordMetrics(operation, "success", duration)
	return request, nil
}

// UpdateRequestResponse stores the mentor's decision and optional message
func (c *Client) UpdateRequestResponse(ctx context.Context, id string, status models.RequestStatus, responseMessage string) (*models.MentorshipRequest, error) {
	start := time.Now()
	operation := "updateRequestResponse"

	query := fmt.Sprintf(`
		UPDATE mentorship_requests
		SET status = $2, response_message = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING %s
	`, requestColumns)

	request, err := models.ScanMentorshipRequest(c.pool.QueryRow(ctx, query,
		id, status, nilIfEmpty(responseMessage)))

	duration := metrics.MeasureDuration(start)

	if errors.Is(err, pgx.ErrNoRows) {
		recordMetrics(operation, "not_found", duration)
		return nil, apperrors.NotFoundError("mentorship request")
	}
	if err != nil {
		recordMetrics(operation, "error", duration)
		logger.LogAPICall("postgres", operation, "error", duration, zap.Error(err))
		return nil, apperrors.InfrastructureError(operation, err)
	}

	recordMetrics(operation, "success", duration)
	return request, nil
}

// UpdateRequestStatus moves a request to the given status
func (c *Client) UpdateRequestStatus(ctx context.Context, id string, status models.RequestStatus) (*models.MentorshipRequest, error) {
	start := time.Now()
	operation := "updateRequestStatus"

	query := fmt.Sprintf(`
		UPDATE mentorship_requests
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING %s
	`, requestColumns)

	request, err := models.ScanMentorshipRequest(c.pool.QueryRow(ctx, query, id, status))

	duration := metrics.MeasureDuration(start)

	if errors.Is(err, pgx.ErrNoRows) {
		recordMetrics(operation, "not_found", duration)
		return nil, apperrors.NotFoundError("mentorship request")
	}
	if err != nil {
		recordMetrics(operation, "error", duration)
		logger.LogAPICall("postgres", operation, "error", duration, zap.Error(err))
		return nil, apperrors.InfrastructureError(operation, err)
	}

	recordMetrics(operation, "success", duration)
	return request, nil
}

// ListRequestsForMentee returns requests created by a mentee, newest first
func (c *Client) ListRequestsForMentee(ctx context.Context, menteeID string) ([]*models.MentorshipRequest, error) {
	return c.listRequests(ctx, "listRequestsForMentee", "mentee_id", menteeID)
}

// ListRequestsForMentor returns requests addressed to a mentor profile, newest first
func (c *Client) ListRequestsForMentor(ctx context.Context, mentorID string) ([]*models.MentorshipRequest, error) {
	return c.listRequests(ctx, "listRequestsForMentor", "mentor_id", mentorID)
}

func (c *Client) listRequests(ctx context.Context, operation, column, id string) ([]*models.MentorshipRequest, error) {
	start := time.Now()

	query := fmt.Sprintf(`
		SELECT %s
		FROM mentorship_requests
		WHERE %s = $1
		ORDER BY created_at DESC
	`, requestColumns, column)

	rows, err := c.pool.Query(ctx, query, id)
	if err != nil {
		duration := metrics.MeasureDuration(start)
		recordMetrics(operation, "error", duration)
		return nil, apperrors.InfrastructureError(operation, err)
	}

	requests, err := models.ScanMentorshipRequests(rows)

	duration := metrics.MeasureDuration(start)

	if err != nil {
		recordMetrics(operation, "error", duration)
		logger.LogAPICall("postgres", operation, "error", duration, zap.Error(err))
		return nil, apperrors.InfrastructureError(operation, err)
	}

	recordMetrics(operation, "success", duration)
	return requests, nil
}
