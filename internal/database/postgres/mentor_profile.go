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

const mentorProfileColumns = `
	p.id, p.user_id, p.title, p.company, p.bio, p.expertise_tags,
	p.years_experience, p.is_available, p.max_mentees, p.created_at, p.updated_at
`

// GetMentorProfileByID fetches a mentor profile and its availability rules
func (c *Client) GetMentorProfileByID(ctx context.Context, id string) (*models.MentorProfile, error) {
	start := time.Now()
	operation := "getMentorProfileByID"

	query := fmt.Sprintf(`
		SELECT %s
		FROM mentor_profiles p
		WHERE p.id = $1
	`, mentorProfileColumns)

	profile, err := models.ScanMentorProfile(c.pool.QueryRow(ctx, query, id))

	duration := metrics.MeasureDuration(start)

	if errors.Is(err, pgx.ErrNoRows) {
		recordMetrics(operation, "not_found", duration)
		return nil, apperrors.NotFoundError("mentor profile")
	}
	if err != nil {
		recordMetrics(operation, "error", duration)
		logger.LogAPICall("postgres", operation, "error", duration, zap.Error(err))
		return nil, apperrors.InfrastructureError(operation, err)
	}

	if err := c.attachAvailabilityRules(ctx, []*models.MentorProfile{profile}); err != nil {
		recordMetrics(operation, "error", duration)
		return nil, err
	}

	recordMetrics(operation, "success", duration)
	return profile, nil
}

// GetMentorProfileByUserID fetches the mentor profile owned by a user
func (c *Client) GetMentorProfileByUserID(ctx context.Context, userID string) (*models.MentorProfile, error) {
	start := time.Now()
	operation := "getMentorProfileByUserID"

	query := fmt.Sprintf(`
		SELECT %s
		FROM mentor_profiles p
		WHERE p.user_id = $1
	`, mentorProfileColumns)

	profile, err := models.ScanMentorProfile(c.pool.QueryRow(ctx, query, userID))

	duration := metrics.MeasureDuration(start)

	if errors.Is(err, pgx.ErrNoRows) {
		recordMetrics(operation, "not_found", duration)
		return nil, apperrors.NotFoundError("mentor profile")
	}
	if err != nil {
		recordMetrics(operation, "error", duration)
		logger.LogAPICall("postgres", operation, "error", duration, zap.Error(err))
		return nil, apperrors.InfrastructureError(operation, err)
	}

	if err := c.attachAvailabilityRules(ctx, []*models.MentorProfile{profile}); err != nil {
		recordMetrics(operation, "error", duration)
		return nil, err
	}

	recordMetrics(operation, "success", duration)
	return profile, nil
}

// GetAvailableMentorProfiles fetches all profiles with the availability flag
// set, rules attached. This feeds the matching engine's cache.
func (c *Client) GetAvailableMentorProfiles(ctx context.Context) ([]*models.MentorProfile, error) {
	start := time.Now()
	operation := "getAvailableMentorProfiles"

	query := fmt.Sprintf(`
		SELECT %s
		FROM mentor_profiles p
		WHERE p.is_available = TRUE
		ORDER BY p.created_at ASC
	`, mentorProfileColumns)

	rows, err := c.pool.Query(ctx, query)
	if err != nil {
		duration := metrics.MeasureDuration(start)
		recordMetrics(operation, "error", duration)
		return nil, apperrors.InfrastructureError(operation, err)
	}

	profiles, err := models.ScanMentorProfiles(rows)
	if err != nil {
		duration := metrics.MeasureDuration(start)
		recordMetrics(operation, "error", duration)
		return nil, apperrors.InfrastructureError(operation, err)
	}

	if err := c.attachAvailabilityRules(ctx, profiles); err != nil {
		duration := metrics.MeasureDuration(start)
		recordMetrics(operation, "error", duration)
		return nil, err
	}

	duration := metrics.MeasureDuration(start)
	recordMetrics(operation, "success", duration)
	logger.LogAPICall("postgres", operation, "success", duration, zap.Int("count", len(profiles)))

	return profiles, nil
}

// attachAvailabilityRules loads weekly rules for the given profiles in one query
func (c *Client) attachAvailabilityRules(ctx context.Context, profiles []*models.MentorProfile) error {
	if len(profiles) == 0 {
		return nil
	}

	ids := make([]string, 0, len(profiles))
	byID := make(map[string]*models.MentorProfile, len(profiles))
	for _, p := range profiles {
		ids = append(ids, p.ID)
		byID[p.ID] = p
	}

	query := `
		SELECT mentor_profile_id, day_of_week, start_time, end_time
		FROM availability_rules
		WHERE mentor_profile_id = ANY($1)
		ORDER BY mentor_profile_id, day_of_week, start_time
	`

	rows, err := c.pool.Query(ctx, query, ids)
	if err != nil {
		return apperrors.InfrastructureError("attachAvailabilityRules", err)
	}
	defer rows.Close()

	for rows.Next() {
		var profileID string
		var rule models.AvailabilityRule
		if err := rows.Scan(&profileID, &rule.DayOfWeek, &rule.StartTime, &rule.EndTime); err != nil {
			return apperrors.InfrastructureError("attachAvailabilityRules", err)
		}
		if p, ok := byID[profileID]; ok {
			p.Availability = append(p.Availability, rule)
		}
	}

	if err := rows.Err(); err != nil {
		return apperrors.InfrastructureError("attachAvailabilityRules", err)
	}

	return nil
}
