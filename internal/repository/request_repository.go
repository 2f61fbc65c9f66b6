package repository

import (
	"context"

	"github.com/mentorhub/mentorhub-api/internal/database/postgres"
	"github.com/mentorhub/mentorhub-api/internal/models"
)

// RequestRepository handles mentorship request data access
type RequestRepository struct {
	db *postgres.Client
}

var _ RequestStore = (*RequestRepository)(nil)

// NewRequestRepository creates a new request repository
func NewRequestRepository(db *postgres.Client) *RequestRepository {
	return &RequestRepository{db: db}
}

func (r *RequestRepository) Create(ctx context.Context, request *models.MentorshipRequest) (*models.MentorshipRequest, error) {
	return r.db.CreateRequest(ctx, request)
}

func (r *RequestRepository) FindPendingByPair(ctx context.Context, mentorID, menteeID string) (*models.MentorshipRequest, error) {
	return r.db.FindPendingRequestByPair(ctx, mentorID, menteeID)
}

func (r *RequestRepository) GetByID(ctx context.Context, id string) (*models.MentorshipRequest, error) {
	return r.db.GetRequestByID(ctx, id)
}

func (r *RequestRepository) UpdateResponse(ctx context.Context, id string, status models.RequestStatus, responseMessage string) (*models.MentorshipRequest, error) {
	return r.db.UpdateRequestResponse(ctx, id, status, responseMessage)
}

func (r *RequestRepository) UpdateStatus(ctx context.Context, id string, status models.RequestStatus) (*models.MentorshipRequest, error) {
	return r.db.UpdateRequestStatus(ctx, id, status)
}

func (r *RequestRepository) ListForMentee(ctx context.Context, menteeID string) ([]*models.MentorshipRequest, error) {
	return r.db.ListRequestsForMentee(ctx, menteeID)
}

func (r *RequestRepository) ListForMentor(ctx context.Context, mentorID string) ([]*models.MentorshipRequest, error) {
	return r.db.ListRequestsForMentor(ctx, mentorID)
}
