package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/internal/services"
)

func availableProfile(id, userID string, tags string) *models.MentorProfile {
	return &models.MentorProfile{
		ID:            id,
		UserID:        userID,
		ExpertiseTags: models.ParseTags(tags),
		IsAvailable:   true,
	}
}

func TestMatchingService_FindMatches_Scoring(t *testing.T) {
	mockProfiles := new(MockProfileStore)
	mockInterests := new(MockInterestStore)
	service := services.NewMatchingService(mockProfiles, mockInterests)
	ctx := context.Background()

	mockInterests.On("GetInterestTags", ctx, "mentee-user-1").Return([]string{"python", "ml"}, nil).Once()
	mockProfiles.On("GetAllAvailable", ctx).Return([]*models.MentorProfile{
		availableProfile("p1", "u1", "ml,design"),
		availableProfile("p2", "u2", "python,ml"),
		availableProfile("p3", "u3", "java,kotlin"),
	}, nil).Once()

	resp, err := service.FindMatches(ctx, mentee())
	assert.NoError(t, err)
	assert.Equal(t, 2, resp.Total)

	// Full overlap ranks first
	assert.Equal(t, "p2", resp.Matches[0].Mentor.ID)
	assert.Equal(t, 100, resp.Matches[0].MatchScore)
	assert.ElementsMatch(t, []string{"python", "ml"}, resp.Matches[0].SharedTags)

	// One of two mentor tags shared scores 50
	assert.Equal(t, "p1", resp.Matches[1].Mentor.ID)
	assert.Equal(t, 50, resp.Matches[1].MatchScore)
	assert.Equal(t, []string{"ml"}, resp.Matches[1].SharedTags)
}

func TestMatchingService_FindMatches_CaseInsensitive(t *testing.T) {
	mockProfiles := new(MockProfileStore)
	mockInterests := new(MockInterestStore)
	service := services.NewMatchingService(mockProfiles, mockInterests)
	ctx := context.Background()

	mockInterests.On("GetInterestTags", ctx, "mentee-user-1").Return([]string{"Python", "ML"}, nil).Once()
	mockProfiles.On("GetAllAvailable", ctx).Return([]*models.MentorProfile{
		availableProfile("p1", "u1", "python, Ml"),
	}, nil).Once()

	resp, err := service.FindMatches(ctx, mentee())
	assert.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, 100, resp.Matches[0].MatchScore)
}

func TestMatchingService_FindMatches_NoInterests(t *testing.T) {
	mockProfiles := new(MockProfileStore)
	mockInterests := new(MockInterestStore)
	service := services.NewMatchingService(mockProfiles, mockInterests)
	ctx := context.Background()

	mockInterests.On("GetInterestTags", ctx, "mentee-user-1").Return([]string{}, nil).Once()

	resp, err := service.FindMatches(ctx, mentee())
	assert.NoError(t, err)
	assert.Equal(t, 0, resp.Total)
	assert.Empty(t, resp.Matches)

	mockProfiles.AssertNotCalled(t, "GetAllAvailable")
}

func TestMatchingService_FindMatches_ExcludesOwnProfile(t *testing.T) {
	mockProfiles := new(MockProfileStore)
	mockInterests := new(MockInterestStore)
	service := services.NewMatchingService(mockProfiles, mockInterests)
	ctx := context.Background()

	mockInterests.On("GetInterestTags", ctx, "mentee-user-1").Return([]string{"go"}, nil).Once()
	mockProfiles.On("GetAllAvailable", ctx).Return([]*models.MentorProfile{
		availableProfile("mine", "mentee-user-1", "go"),
		availableProfile("other", "u2", "go"),
	}, nil).Once()

	resp, err := service.FindMatches(ctx, mentee())
	assert.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "other", resp.Matches[0].Mentor.ID)
}

func TestMatchingService_FindMatches_SkipsUnavailableMentor(t *testing.T) {
	mockProfiles := new(MockProfileStore)
	mockInterests := new(MockInterestStore)
	service := services.NewMatchingService(mockProfiles, mockInterests)
	ctx := context.Background()

	unavailable := availableProfile("p1", "u1", "go")
	unavailable.IsAvailable = false

	mockInterests.On("GetInterestTags", ctx, "mentee-user-1").Return([]string{"go"}, nil).Once()
	mockProfiles.On("GetAllAvailable", ctx).Return([]*models.MentorProfile{unavailable}, nil).Once()

	resp, err := service.FindMatches(ctx, mentee())
	assert.NoError(t, err)
	assert.Equal(t, 0, resp.Total)
	assert.Empty(t, resp.Matches)
}

func TestMatchingService_FindMatches_StableOrderAmongTies(t *testing.T) {
	mockProfiles := new(MockProfileStore)
	mockInterests := new(MockInterestStore)
	service := services.NewMatchingService(mockProfiles, mockInterests)
	ctx := context.Background()

	mockInterests.On("GetInterestTags", ctx, "mentee-user-1").Return([]string{"go"}, nil).Once()
	mockProfiles.On("GetAllAvailable", ctx).Return([]*models.MentorProfile{
		availableProfile("first", "u1", "go,rust"),
		availableProfile("second", "u2", "go,python"),
		availableProfile("top", "u3", "go"),
	}, nil).Once()

	resp, err := service.FindMatches(ctx, mentee())
	assert.NoError(t, err)
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, "top", resp.Matches[0].Mentor.ID)
	assert.Equal(t, "first", resp.Matches[1].Mentor.ID)
	assert.Equal(t, "second", resp.Matches[2].Mentor.ID)
}
