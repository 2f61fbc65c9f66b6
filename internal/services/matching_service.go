package services

import (
	"context"
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/internal/repository"
	"github.com/mentorhub/mentorhub-api/pkg/logger"
	"github.com/mentorhub/mentorhub-api/pkg/metrics"
)

// MatchingService ranks available mentors by interest overlap with the
// actor's project tags
type MatchingService struct {
	profileStore  repository.ProfileStore
	interestStore repository.InterestStore
}

var _ MatchingServiceInterface = (*MatchingService)(nil)

// NewMatchingService creates a new MatchingService
func NewMatchingService(profileStore repository.ProfileStore, interestStore repository.InterestStore) *MatchingService {
	return &MatchingService{
		profileStore:  profileStore,
		interestStore: interestStore,
	}
}

// FindMatches computes interest overlap between the actor and every available
// mentor. The score is the shared-tag count over the mentor's tag count,
// scaled to 0-100 and rounded. Mentors with no shared tags are dropped, as is
// the actor's own profile. The result is sorted by score, descending, with
// the incoming mentor order preserved among equals.
func (s *MatchingService) FindMatches(ctx context.Context, actor *models.UserSession) (*models.MatchesResponse, error) {
	interests, err := s.interestStore.GetInterestTags(ctx, actor.UserID)
	if err != nil {
		metrics.MatchQueries.WithLabelValues("error").Inc()
		return nil, err
	}

	if len(interests) == 0 {
		metrics.MatchQueries.WithLabelValues("no_interests").Inc()
		logger.Debug("Match query with no interests", zap.String("user_id", actor.UserID))
		return &models.MatchesResponse{Matches: []models.MatchResult{}, Total: 0}, nil
	}

	interestSet := make(map[string]bool, len(interests))
	for _, tag := range interests {
		interestSet[strings.ToLower(strings.TrimSpace(tag))] = true
	}

	profiles, err := s.profileStore.GetAllAvailable(ctx)
	if err != nil {
		metrics.MatchQueries.WithLabelValues("error").Inc()
		return nil, err
	}

	matches := make([]models.MatchResult, 0, len(profiles))
	for _, profile := range profiles {
		// The store only returns available profiles, but a stale cache entry
		// can still carry a mentor who has since flipped off.
		if !profile.IsAvailable {
			continue
		}
		if profile.UserID == actor.UserID {
			continue
		}

		mentorTags := profile.NormalizedTags()
		shared := make([]string, 0, len(mentorTags))
		for _, tag := range mentorTags {
			if interestSet[tag] {
				shared = append(shared, tag)
			}
		}
		if len(shared) == 0 {
			continue
		}

		divisor := len(mentorTags)
		if divisor == 0 {
			divisor = 1
		}
		score := int(math.Round(float64(len(shared)) / float64(divisor) * 100))

		matches = append(matches, models.MatchResult{
			Mentor:     profile,
			MatchScore: score,
			SharedTags: shared,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})

	metrics.MatchQueries.WithLabelValues("success").Inc()
	metrics.MatchResultsReturned.Observe(float64(len(matches)))

	logger.Info("Match query completed",
		zap.String("user_id", actor.UserID),
		zap.Int("interests", len(interests)),
		zap.Int("matches", len(matches)))

	return &models.MatchesResponse{Matches: matches, Total: len(matches)}, nil
}
