package postgres

import (
	"context"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/mentorhub/mentorhub-api/pkg/errors"
	"github.com/mentorhub/mentorhub-api/pkg/logger"
	"github.com/mentorhub/mentorhub-api/pkg/metrics"
)

// GetUserInterestTags returns the distinct lowercased technology tags across
// a user's projects. Matching uses these as the mentee's interest set.
func (c *Client) GetUserInterestTags(ctx context.Context, userID string) ([]string, error) {
	start := time.Now()
	operation := "getUserInterestTags"

	query := `
		SELECT DISTINCT LOWER(TRIM(tag))
		FROM projects, UNNEST(STRING_TO_ARRAY(technology_tags, ',')) AS tag
		WHERE user_id = $1 AND TRIM(tag) <> ''
		ORDER BY 1
	`

	rows, err := c.pool.Query(ctx, query, userID)
	if err != nil {
		duration := metrics.MeasureDuration(start)
		recordMetrics(operation, "error", duration)
		return nil, apperrors.InfrastructureError(operation, err)
	}
	defer rows.Close()

	var tags []string
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			duration := metrics.MeasureDuration(start)
			recordMetrics(operation, "error", duration)
			return nil, apperrors.InfrastructureError(operation, err)
		}
		tags = append(tags, tag)
	}

	duration := metrics.MeasureDuration(start)

	if err := rows.Err(); err != nil {
		recordMetrics(operation, "error", duration)
		logger.LogAPICall("postgres", operation, "error", duration, zap.Error(err))
		return nil, apperrors.InfrastructureError(operation, err)
	}

	recordMetrics(operation, "success", duration)
	return tags, nil
}
