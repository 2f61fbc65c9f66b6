package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/internal/services"
	apperrors "github.com/mentorhub/mentorhub-api/pkg/errors"
)

func completedSession(menteeID string, hours float64, rating *int) *models.MentorshipSession {
	start := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	return &models.MentorshipSession{
		MentorID:  "profile-1",
		MenteeID:  menteeID,
		StartTime: start,
		EndTime:   start.Add(time.Duration(hours * float64(time.Hour))),
		Status:    models.SessionStatusCompleted,
		Rating:    rating,
	}
}

func TestStatsService_GetMentorStats(t *testing.T) {
	mockProfiles := new(MockProfileStore)
	mockSessions := new(MockSessionStore)
	service := services.NewStatsService(mockProfiles, mockSessions)
	ctx := context.Background()

	four := 4
	mockProfiles.On("GetByID", ctx, "profile-1").Return(mentorProfile(), nil).Once()
	mockSessions.On("ListCompletedForMentor", ctx, "profile-1").Return([]*models.MentorshipSession{
		completedSession("mentee-a", 1.5, &four),
		completedSession("mentee-b", 2.5, nil),
	}, nil).Once()

	stats, err := service.GetMentorStats(ctx, "profile-1")
	assert.NoError(t, err)
	assert.Equal(t, 2, stats.TotalSessions)
	assert.Equal(t, 4.0, stats.TotalHours)
	// Unrated sessions are excluded from the average
	assert.Equal(t, 4.0, stats.AverageRating)
	assert.Equal(t, 2, stats.TotalMentees)
}

func TestStatsService_GetMentorStats_RoundsToOneDecimal(t *testing.T) {
	mockProfiles := new(MockProfileStore)
	mockSessions := new(MockSessionStore)
	service := services.NewStatsService(mockProfiles, mockSessions)
	ctx := context.Background()

	three, four, five := 3, 4, 5
	mockProfiles.On("GetByID", ctx, "profile-1").Return(mentorProfile(), nil).Once()
	mockSessions.On("ListCompletedForMentor", ctx, "profile-1").Return([]*models.MentorshipSession{
		completedSession("mentee-a", 0.75, &three),
		completedSession("mentee-a", 0.75, &four),
		completedSession("mentee-b", 0.75, &five),
	}, nil).Once()

	stats, err := service.GetMentorStats(ctx, "profile-1")
	assert.NoError(t, err)
	assert.Equal(t, 3, stats.TotalSessions)
	assert.Equal(t, 2.3, stats.TotalHours)
	assert.Equal(t, 4.0, stats.AverageRating)
	assert.Equal(t, 2, stats.TotalMentees)
}

func TestStatsService_GetMentorStats_NoCompletedSessions(t *testing.T) {
	mockProfiles := new(MockProfileStore)
	mockSessions := new(MockSessionStore)
	service := services.NewStatsService(mockProfiles, mockSessions)
	ctx := context.Background()

	mockProfiles.On("GetByID", ctx, "profile-1").Return(mentorProfile(), nil).Once()
	mockSessions.On("ListCompletedForMentor", ctx, "profile-1").Return([]*models.MentorshipSession{}, nil).Once()

	stats, err := service.GetMentorStats(ctx, "profile-1")
	assert.NoError(t, err)
	assert.Equal(t, 0, stats.TotalSessions)
	assert.Equal(t, 0.0, stats.TotalHours)
	assert.Equal(t, 0.0, stats.AverageRating)
	assert.Equal(t, 0, stats.TotalMentees)
}

func TestStatsService_GetMentorStats_UnknownMentor(t *testing.T) {
	mockProfiles := new(MockProfileStore)
	mockSessions := new(MockSessionStore)
	service := services.NewStatsService(mockProfiles, mockSessions)
	ctx := context.Background()

	mockProfiles.On("GetByID", ctx, "ghost").Return(nil, apperrors.NotFoundError("mentor profile")).Once()

	stats, err := service.GetMentorStats(ctx, "ghost")
	assert.NoError(t, err)
	assert.Equal(t, &models.MentorStats{}, stats)

	mockSessions.AssertNotCalled(t, "ListCompletedForMentor")
}
