package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/internal/notify"
	"github.com/mentorhub/mentorhub-api/internal/repository"
	apperrors "github.com/mentorhub/mentorhub-api/pkg/errors"
	"github.com/mentorhub/mentorhub-api/pkg/interval"
	"github.com/mentorhub/mentorhub-api/pkg/logger"
	"github.com/mentorhub/mentorhub-api/pkg/meeting"
	"github.com/mentorhub/mentorhub-api/pkg/metrics"
)

// slotLocks serializes bookings per mentor. Holding the mentor's lock across
// the conflict check and the insert closes the race where two overlapping
// bookings both pass the check.
type slotLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newSlotLocks() *slotLocks {
	return &slotLocks{locks: make(map[string]*sync.Mutex)}
}

func (s *slotLocks) forMentor(mentorID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[mentorID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[mentorID] = lock
	}
	return lock
}

// BookingService validates and books mentorship sessions
type BookingService struct {
	profileStore repository.ProfileStore
	sessionStore repository.SessionStore
	linkProvider meeting.LinkProvider
	notifier     notify.Notifier
	locks        *slotLocks
}

var _ BookingServiceInterface = (*BookingService)(nil)

// NewBookingService creates a new BookingService
func NewBookingService(profileStore repository.ProfileStore, sessionStore repository.SessionStore, linkProvider meeting.LinkProvider, notifier notify.Notifier) *BookingService {
	return &BookingService{
		profileStore: profileStore,
		sessionStore: sessionStore,
		linkProvider: linkProvider,
		notifier:     notifier,
		locks:        newSlotLocks(),
	}
}

// Book runs the full booking pipeline: interval validation, mentor lookup,
// availability rule check, conflict check under the mentor's slot lock, and
// persistence. The mentee is the authenticated actor.
func (s *BookingService) Book(ctx context.Context, actor *models.UserSession, payload *models.BookSessionPayload) (*models.MentorshipSession, error) {
	start := time.Now()

	iv, err := interval.New(payload.StartTime, payload.EndTime)
	if err != nil {
		metrics.BookingAttempts.WithLabelValues("invalid_interval").Inc()
		return nil, fmt.Errorf("%v: %w", err, apperrors.ErrInvalidInterval)
	}

	profile, err := s.profileStore.GetByID(ctx, payload.MentorID)
	if err != nil {
		metrics.BookingAttempts.WithLabelValues("not_found").Inc()
		return nil, err
	}

	check := profile.CheckAvailability(iv)
	if !check.Available {
		metrics.BookingAttempts.WithLabelValues("out_of_availability").Inc()
		logger.Info("Booking rejected, outside availability",
			zap.String("mentor_id", profile.ID),
			zap.String("mentee_id", actor.UserID),
			zap.Time("start_time", payload.StartTime))
		if check.ClosestRule != nil {
			return nil, fmt.Errorf("closest window %s: %w", check.ClosestRule, apperrors.ErrOutOfAvailability)
		}
		return nil, apperrors.ErrOutOfAvailability
	}

	lock := s.locks.forMentor(profile.ID)
	lock.Lock()
	defer lock.Unlock()

	conflict, err := s.sessionStore.FindOverlapping(ctx, profile.ID, payload.StartTime, payload.EndTime)
	if err != nil {
		metrics.BookingAttempts.WithLabelValues("error").Inc()
		return nil, err
	}
	if conflict != nil {
		metrics.BookingAttempts.WithLabelValues("slot_conflict").Inc()
		logger.Info("Booking rejected, slot conflict",
			zap.String("mentor_id", profile.ID),
			zap.String("conflicting_session_id", conflict.ID))
		return nil, fmt.Errorf("overlaps session starting %s: %w",
			conflict.StartTime.Format(time.RFC3339), apperrors.ErrSlotConflict)
	}

	link := s.linkProvider.GenerateLink()
	session := &models.MentorshipSession{
		MentorID:    profile.ID,
		MenteeID:    actor.UserID,
		StartTime:   payload.StartTime,
		EndTime:     payload.EndTime,
		Status:      models.SessionStatusScheduled,
		MeetingLink: &link,
	}
	if payload.Notes != "" {
		session.Notes = &payload.Notes
	}

	created, err := s.sessionStore.Create(ctx, session)
	if err != nil {
		metrics.BookingAttempts.WithLabelValues("error").Inc()
		logger.Error("Failed to persist session",
			zap.String("mentor_id", profile.ID),
			zap.String("mentee_id", actor.UserID),
			zap.Error(err))
		return nil, err
	}

	metrics.BookingAttempts.WithLabelValues("success").Inc()
	metrics.BookingDuration.Observe(metrics.MeasureDuration(start))

	logger.Info("Session booked",
		zap.String("session_id", created.ID),
		zap.String("mentor_id", profile.ID),
		zap.String("mentee_id", actor.UserID),
		zap.Time("start_time", created.StartTime),
		zap.Time("end_time", created.EndTime))

	meta := map[string]string{"session_id": created.ID}
	s.notifier.Notify(ctx, profile.UserID, "session_booked", "New session booked",
		fmt.Sprintf("%s booked a session starting %s", actor.Name, created.StartTime.Format(time.RFC3339)), meta)
	s.notifier.Notify(ctx, actor.UserID, "session_booked", "Session confirmed",
		fmt.Sprintf("Your session starting %s is confirmed", created.StartTime.Format(time.RFC3339)), meta)

	return created, nil
}
