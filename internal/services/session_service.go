package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/internal/notify"
	"github.com/mentorhub/mentorhub-api/internal/repository"
	apperrors "github.com/mentorhub/mentorhub-api/pkg/errors"
	"github.com/mentorhub/mentorhub-api/pkg/logger"
	"github.com/mentorhub/mentorhub-api/pkg/metrics"
)

// SessionService drives the session lifecycle after booking: feedback,
// cancellation and listing.
type SessionService struct {
	sessionStore repository.SessionStore
	profileStore repository.ProfileStore
	notifier     notify.Notifier
}

var _ SessionServiceInterface = (*SessionService)(nil)

// NewSessionService creates a new SessionService
func NewSessionService(sessionStore repository.SessionStore, profileStore repository.ProfileStore, notifier notify.Notifier) *SessionService {
	return &SessionService{
		sessionStore: sessionStore,
		profileStore: profileStore,
		notifier:     notifier,
	}
}

// SubmitFeedback records the mentee's rating and feedback and completes the
// session. Only the mentee may submit, only after the session's end instant,
// and only from the scheduled status.
func (s *SessionService) SubmitFeedback(ctx context.Context, actor *models.UserSession, sessionID string, payload *models.FeedbackPayload) (*models.MentorshipSession, error) {
	session, err := s.sessionStore.GetByID(ctx, sessionID)
	if err != nil {
		metrics.FeedbackSubmissions.WithLabelValues("not_found").Inc()
		return nil, err
	}

	if session.MenteeID != actor.UserID {
		metrics.FeedbackSubmissions.WithLabelValues("forbidden").Inc()
		logger.Warn("Feedback denied, actor is not the session mentee",
			zap.String("session_id", sessionID),
			zap.String("actor_id", actor.UserID))
		return nil, apperrors.ForbiddenError("only the mentee can submit feedback")
	}

	if !session.Status.CanTransitionTo(models.SessionStatusCompleted) {
		metrics.FeedbackSubmissions.WithLabelValues("invalid_transition").Inc()
		return nil, apperrors.InvalidTransitionError(string(session.Status), string(models.SessionStatusCompleted))
	}

	if !session.HasEnded(time.Now()) {
		metrics.FeedbackSubmissions.WithLabelValues("too_early").Inc()
		return nil, fmt.Errorf("session ends %s: %w",
			session.EndTime.Format(time.RFC3339), apperrors.ErrTooEarly)
	}

	if payload.Rating < 1 || payload.Rating > 5 {
		metrics.FeedbackSubmissions.WithLabelValues("invalid_rating").Inc()
		return nil, fmt.Errorf("got %d: %w", payload.Rating, apperrors.ErrInvalidRating)
	}

	updated, err := s.sessionStore.UpdateFeedback(ctx, sessionID, payload.Rating, payload.Feedback)
	if err != nil {
		metrics.FeedbackSubmissions.WithLabelValues("error").Inc()
		logger.Error("Failed to store feedback",
			zap.String("session_id", sessionID),
			zap.Error(err))
		return nil, err
	}

	metrics.FeedbackSubmissions.WithLabelValues("success").Inc()
	metrics.SessionTransitions.WithLabelValues(
		string(models.SessionStatusScheduled), string(models.SessionStatusCompleted)).Inc()

	logger.Info("Session feedback submitted",
		zap.String("session_id", sessionID),
		zap.String("mentee_id", actor.UserID),
		zap.Int("rating", payload.Rating))

	s.notifyMentor(ctx, updated, "feedback_received", "Session feedback received",
		fmt.Sprintf("%s rated your session %d/5", actor.Name, payload.Rating))

	return updated, nil
}

// Cancel moves a scheduled session to cancelled. Either participant may
// cancel until the session's end instant.
func (s *SessionService) Cancel(ctx context.Context, actor *models.UserSession, sessionID string) (*models.MentorshipSession, error) {
	session, err := s.sessionStore.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	isMentee := session.MenteeID == actor.UserID
	isMentor, err := s.actorOwnsMentorProfile(ctx, actor, session.MentorID)
	if err != nil {
		return nil, err
	}
	if !isMentee && !isMentor {
		logger.Warn("Cancel denied, actor is not a participant",
			zap.String("session_id", sessionID),
			zap.String("actor_id", actor.UserID))
		return nil, apperrors.ForbiddenError("only session participants can cancel")
	}

	if !session.Status.CanTransitionTo(models.SessionStatusCancelled) {
		return nil, apperrors.InvalidTransitionError(string(session.Status), string(models.SessionStatusCancelled))
	}

	if session.HasEnded(time.Now()) {
		return nil, apperrors.InvalidTransitionError(string(session.Status), string(models.SessionStatusCancelled))
	}

	updated, err := s.sessionStore.UpdateStatus(ctx, sessionID, models.SessionStatusCancelled)
	if err != nil {
		logger.Error("Failed to cancel session",
			zap.String("session_id", sessionID),
			zap.Error(err))
		return nil, err
	}

	metrics.SessionTransitions.WithLabelValues(
		string(models.SessionStatusScheduled), string(models.SessionStatusCancelled)).Inc()

	logger.Info("Session cancelled",
		zap.String("session_id", sessionID),
		zap.String("actor_id", actor.UserID))

	message := fmt.Sprintf("The session starting %s was cancelled", session.StartTime.Format(time.RFC3339))
	if isMentee {
		s.notifyMentor(ctx, updated, "session_cancelled", "Session cancelled", message)
	} else {
		s.notifier.Notify(ctx, session.MenteeID, "session_cancelled", "Session cancelled", message,
			map[string]string{"session_id": session.ID})
	}

	return updated, nil
}

// ListForActor returns every session the actor participates in, as mentee and,
// when they own a mentor profile, as mentor.
func (s *SessionService) ListForActor(ctx context.Context, actor *models.UserSession) (*models.SessionsResponse, error) {
	asMentee, err := s.sessionStore.ListForMentee(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	sessions := make([]models.MentorshipSession, 0, len(asMentee))
	seen := make(map[string]bool, len(asMentee))
	for _, session := range asMentee {
		sessions = append(sessions, *session)
		seen[session.ID] = true
	}

	profile, err := s.profileStore.GetByUserID(ctx, actor.UserID)
	if err != nil && !apperrors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if profile != nil {
		asMentor, err := s.sessionStore.ListForMentor(ctx, profile.ID)
		if err != nil {
			return nil, err
		}
		for _, session := range asMentor {
			if !seen[session.ID] {
				sessions = append(sessions, *session)
			}
		}
	}

	return &models.SessionsResponse{Sessions: sessions, Total: len(sessions)}, nil
}

// actorOwnsMentorProfile resolves whether the actor owns the given mentor profile
func (s *SessionService) actorOwnsMentorProfile(ctx context.Context, actor *models.UserSession, mentorID string) (bool, error) {
	profile, err := s.profileStore.GetByID(ctx, mentorID)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return profile.UserID == actor.UserID, nil
}

func (s *SessionService) notifyMentor(ctx context.Context, session *models.MentorshipSession, kind, title, message string) {
	profile, err := s.profileStore.GetByID(ctx, session.MentorID)
	if err != nil {
		logger.Warn("Skipping mentor notification, profile lookup failed",
			zap.String("mentor_id", session.MentorID),
			zap.Error(err))
		return
	}
	s.notifier.Notify(ctx, profile.UserID, kind, title, message,
		map[string]string{"session_id": session.ID})
}
