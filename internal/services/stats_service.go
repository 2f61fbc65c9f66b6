package services

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/internal/repository"
	apperrors "github.com/mentorhub/mentorhub-api/pkg/errors"
	"github.com/mentorhub/mentorhub-api/pkg/logger"
)

// StatsService aggregates a mentor's completed-session history
type StatsService struct {
	profileStore repository.ProfileStore
	sessionStore repository.SessionStore
}

var _ StatsServiceInterface = (*StatsService)(nil)

// NewStatsService creates a new StatsService
func NewStatsService(profileStore repository.ProfileStore, sessionStore repository.SessionStore) *StatsService {
	return &StatsService{
		profileStore: profileStore,
		sessionStore: sessionStore,
	}
}

// GetMentorStats computes totals over the mentor's completed sessions only.
// Cancelled and scheduled sessions never count. Hours and average rating are
// rounded to one decimal; the average spans rated sessions only and is 0 when
// none carry a rating. An unknown mentor yields all-zero stats rather than an
// error.
func (s *StatsService) GetMentorStats(ctx context.Context, mentorID string) (*models.MentorStats, error) {
	if _, err := s.profileStore.GetByID(ctx, mentorID); err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return &models.MentorStats{}, nil
		}
		return nil, err
	}

	sessions, err := s.sessionStore.ListCompletedForMentor(ctx, mentorID)
	if err != nil {
		return nil, err
	}

	var totalHours float64
	var ratingSum, ratedCount int
	mentees := make(map[string]bool)

	for _, session := range sessions {
		totalHours += session.Interval().Hours()
		mentees[session.MenteeID] = true
		if session.Rating != nil {
			ratingSum += *session.Rating
			ratedCount++
		}
	}

	averageRating := 0.0
	if ratedCount > 0 {
		averageRating = round1(float64(ratingSum) / float64(ratedCount))
	}

	stats := &models.MentorStats{
		TotalSessions: len(sessions),
		TotalHours:    round1(totalHours),
		AverageRating: averageRating,
		TotalMentees:  len(mentees),
	}

	logger.Debug("Mentor stats computed",
		zap.String("mentor_id", mentorID),
		zap.Int("total_sessions", stats.TotalSessions))

	return stats, nil
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
