package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/internal/notify"
	"github.com/mentorhub/mentorhub-api/internal/repository"
	apperrors "github.com/mentorhub/mentorhub-api/pkg/errors"
	"github.com/mentorhub/mentorhub-api/pkg/logger"
	"github.com/mentorhub/mentorhub-api/pkg/metrics"
)

// RequestService drives the mentorship request lifecycle
type RequestService struct {
	requestStore repository.RequestStore
	profileStore repository.ProfileStore
	notifier     notify.Notifier
}

var _ RequestServiceInterface = (*RequestService)(nil)

// NewRequestService creates a new RequestService
func NewRequestService(requestStore repository.RequestStore, profileStore repository.ProfileStore, notifier notify.Notifier) *RequestService {
	return &RequestService{
		requestStore: requestStore,
		profileStore: profileStore,
		notifier:     notifier,
	}
}

// Create opens a pending request from the actor to a mentor. The mentor must
// exist, must not be the actor, and at most one pending request may exist per
// mentee and mentor pair. A terminal prior request does not block a new one.
func (s *RequestService) Create(ctx context.Context, actor *models.UserSession, payload *models.CreateRequestPayload) (*models.MentorshipRequest, error) {
	profile, err := s.profileStore.GetByID(ctx, payload.MentorID)
	if err != nil {
		metrics.RequestCreations.WithLabelValues("not_found").Inc()
		return nil, err
	}

	if profile.UserID == actor.UserID {
		metrics.RequestCreations.WithLabelValues("self_request").Inc()
		return nil, apperrors.ErrSelfRequest
	}

	existing, err := s.requestStore.FindPendingByPair(ctx, profile.ID, actor.UserID)
	if err != nil {
		metrics.RequestCreations.WithLabelValues("error").Inc()
		return nil, err
	}
	if existing != nil {
		metrics.RequestCreations.WithLabelValues("duplicate").Inc()
		logger.Info("Duplicate pending request rejected",
			zap.String("mentor_id", profile.ID),
			zap.String("mentee_id", actor.UserID),
			zap.String("existing_request_id", existing.ID))
		return nil, fmt.Errorf("pending request %s exists: %w", existing.ID, apperrors.ErrDuplicateRequest)
	}

	request := &models.MentorshipRequest{
		MentorID: profile.ID,
		MenteeID: actor.UserID,
		Message:  payload.Message,
		Status:   models.RequestStatusPending,
	}

	created, err := s.requestStore.Create(ctx, request)
	if err != nil {
		metrics.RequestCreations.WithLabelValues("error").Inc()
		logger.Error("Failed to create mentorship request",
			zap.String("mentor_id", profile.ID),
			zap.String("mentee_id", actor.UserID),
			zap.Error(err))
		return nil, err
	}

	metrics.RequestCreations.WithLabelValues("success").Inc()

	logger.Info("Mentorship request created",
		zap.String("request_id", created.ID),
		zap.String("mentor_id", profile.ID),
		zap.String("mentee_id", actor.UserID))

	s.notifier.Notify(ctx, profile.UserID, "request_created", "New mentorship request",
		fmt.Sprintf("%s asked you for mentorship", actor.Name),
		map[string]string{"request_id": created.ID})

	return created, nil
}

// Respond records the mentor's decision on a pending request. Only the owner
// of the addressed mentor profile may respond, and only while pending.
func (s *RequestService) Respond(ctx context.Context, actor *models.UserSession, requestID string, payload *models.RespondRequestPayload) (*models.MentorshipRequest, error) {
	request, err := s.requestStore.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	profile, err := s.profileStore.GetByID(ctx, request.MentorID)
	if err != nil {
		return nil, err
	}
	if profile.UserID != actor.UserID {
		logger.Warn("Respond denied, actor does not own the mentor profile",
			zap.String("request_id", requestID),
			zap.String("actor_id", actor.UserID))
		return nil, apperrors.ForbiddenError("only the addressed mentor can respond")
	}

	if !request.Status.CanTransitionTo(payload.Status) {
		return nil, apperrors.InvalidTransitionError(string(request.Status), string(payload.Status))
	}

	updated, err := s.requestStore.UpdateResponse(ctx, requestID, payload.Status, payload.Message)
	if err != nil {
		logger.Error("Failed to update request response",
			zap.String("request_id", requestID),
			zap.Error(err))
		return nil, err
	}

	metrics.RequestTransitions.WithLabelValues(
		string(models.RequestStatusPending), string(payload.Status)).Inc()

	logger.Info("Mentorship request answered",
		zap.String("request_id", requestID),
		zap.String("status", string(payload.Status)))

	title := "Mentorship request accepted"
	if payload.Status == models.RequestStatusRejected {
		title = "Mentorship request declined"
	}
	s.notifier.Notify(ctx, request.MenteeID, "request_"+string(payload.Status), title,
		fmt.Sprintf("%s %s your mentorship request", actor.Name, payload.Status),
		map[string]string{"request_id": requestID})

	return updated, nil
}

// Cancel withdraws a pending request. Only the mentee who opened it may cancel.
func (s *RequestService) Cancel(ctx context.Context, actor *models.UserSession, requestID string) (*models.MentorshipRequest, error) {
	request, err := s.requestStore.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if request.MenteeID != actor.UserID {
		logger.Warn("Cancel denied, actor did not open the request",
			zap.String("request_id", requestID),
			zap.String("actor_id", actor.UserID))
		return nil, apperrors.ForbiddenError("only the requester can cancel")
	}

	if !request.Status.CanTransitionTo(models.RequestStatusCancelled) {
		return nil, apperrors.InvalidTransitionError(string(request.Status), string(models.RequestStatusCancelled))
	}

	updated, err := s.requestStore.UpdateStatus(ctx, requestID, models.RequestStatusCancelled)
	if err != nil {
		logger.Error("Failed to cancel request",
			zap.String("request_id", requestID),
			zap.Error(err))
		return nil, err
	}

	metrics.RequestTransitions.WithLabelValues(
		string(models.RequestStatusPending), string(models.RequestStatusCancelled)).Inc()

	logger.Info("Mentorship request cancelled",
		zap.String("request_id", requestID),
		zap.String("mentee_id", actor.UserID))

	return updated, nil
}

// ListForActor returns requests the actor opened plus, when they own a mentor
// profile, requests addressed to that profile.
func (s *RequestService) ListForActor(ctx context.Context, actor *models.UserSession) (*models.RequestsResponse, error) {
	asMentee, err := s.requestStore.ListForMentee(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	requests := make([]models.MentorshipRequest, 0, len(asMentee))
	seen := make(map[string]bool, len(asMentee))
	for _, request := range asMentee {
		requests = append(requests, *request)
		seen[request.ID] = true
	}

	profile, err := s.profileStore.GetByUserID(ctx, actor.UserID)
	if err != nil && !apperrors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if profile != nil {
		asMentor, err := s.requestStore.ListForMentor(ctx, profile.ID)
		if err != nil {
			return nil, err
		}
		for _, request := range asMentor {
			if !seen[request.ID] {
				requests = append(requests, *request)
			}
		}
	}

	return &models.RequestsResponse{Requests: requests, Total: len(requests)}, nil
}
