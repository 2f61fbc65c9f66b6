package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/pkg/interval"
)

// monday returns an interval on Monday 2025-03-10 at the given wall-clock times
func monday(t *testing.T, start, end string) interval.Interval {
	t.Helper()
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	s, err := time.Parse("15:04", start)
	require.NoError(t, err)
	e, err := time.Parse("15:04", end)
	require.NoError(t, err)
	iv, err := interval.New(
		day.Add(time.Duration(s.Hour())*time.Hour+time.Duration(s.Minute())*time.Minute),
		day.Add(time.Duration(e.Hour())*time.Hour+time.Duration(e.Minute())*time.Minute),
	)
	require.NoError(t, err)
	return iv
}

func TestCheckAvailability_NoRulesMeansUnconstrained(t *testing.T) {
	profile := &models.MentorProfile{ID: "m1"}

	check := profile.CheckAvailability(monday(t, "03:00", "04:00"))
	assert.True(t, check.Available)
}

func TestCheckAvailability_WithinRule(t *testing.T) {
	profile := &models.MentorProfile{
		Availability: []models.AvailabilityRule{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"},
		},
	}

	check := profile.CheckAvailability(monday(t, "10:00", "11:00"))
	assert.True(t, check.Available)
}

func TestCheckAvailability_ExactBoundaries(t *testing.T) {
	profile := &models.MentorProfile{
		Availability: []models.AvailabilityRule{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"},
		},
	}

	check := profile.CheckAvailability(monday(t, "09:00", "12:00"))
	assert.True(t, check.Available)
}

func TestCheckAvailability_EndExceedsWindow(t *testing.T) {
	profile := &models.MentorProfile{
		Availability: []models.AvailabilityRule{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"},
		},
	}

	check := profile.CheckAvailability(monday(t, "11:30", "12:30"))
	assert.False(t, check.Available)
	require.NotNil(t, check.ClosestRule)
	assert.Equal(t, "day 1 09:00-12:00", check.ClosestRule.String())
}

func TestCheckAvailability_WrongDay(t *testing.T) {
	profile := &models.MentorProfile{
		Availability: []models.AvailabilityRule{
			{DayOfWeek: 3, StartTime: "09:00", EndTime: "12:00"},
		},
	}

	check := profile.CheckAvailability(monday(t, "10:00", "11:00"))
	assert.False(t, check.Available)
	require.NotNil(t, check.ClosestRule)
	assert.Equal(t, 3, check.ClosestRule.DayOfWeek)
}

func TestCheckAvailability_ClosestRulePrefersSameDay(t *testing.T) {
	profile := &models.MentorProfile{
		Availability: []models.AvailabilityRule{
			{DayOfWeek: 2, StartTime: "10:00", EndTime: "11:00"},
			{DayOfWeek: 1, StartTime: "14:00", EndTime: "16:00"},
		},
	}

	// Monday 10:00-11:00 misses both; the Monday afternoon rule is closer
	// than the Tuesday rule at the same hour.
	check := profile.CheckAvailability(monday(t, "10:00", "11:00"))
	assert.False(t, check.Available)
	require.NotNil(t, check.ClosestRule)
	assert.Equal(t, 1, check.ClosestRule.DayOfWeek)
}

func TestCheckAvailability_AnyMatchingRuleSatisfies(t *testing.T) {
	profile := &models.MentorProfile{
		Availability: []models.AvailabilityRule{
			{DayOfWeek: 1, StartTime: "08:00", EndTime: "09:00"},
			{DayOfWeek: 1, StartTime: "13:00", EndTime: "17:00"},
		},
	}

	check := profile.CheckAvailability(monday(t, "14:00", "15:00"))
	assert.True(t, check.Available)
}

func TestAvailabilityRule_Validate(t *testing.T) {
	assert.NoError(t, models.AvailabilityRule{DayOfWeek: 0, StartTime: "09:00", EndTime: "17:00"}.Validate())
	assert.Error(t, models.AvailabilityRule{DayOfWeek: 7, StartTime: "09:00", EndTime: "17:00"}.Validate())
	assert.Error(t, models.AvailabilityRule{DayOfWeek: 1, StartTime: "22:00", EndTime: "02:00"}.Validate(),
		"midnight-crossing windows are not supported")
	assert.Error(t, models.AvailabilityRule{DayOfWeek: 1, StartTime: "bad", EndTime: "17:00"}.Validate())
}
