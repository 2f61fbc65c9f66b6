package repository

import (
	"context"

	"github.com/mentorhub/mentorhub-api/internal/cache"
	"github.com/mentorhub/mentorhub-api/internal/database/postgres"
	"github.com/mentorhub/mentorhub-api/internal/models"
)

// ProfileRepository handles mentor profile data access, serving the
// available-profile list from cache when one is configured.
type ProfileRepository struct {
	db           *postgres.Client
	profileCache cache.ProfileCacheInterface
}

var _ ProfileStore = (*ProfileRepository)(nil)

// NewProfileRepository creates a new profile repository. profileCache may be
// nil, in which case every read goes to the database.
func NewProfileRepository(db *postgres.Client, profileCache cache.ProfileCacheInterface) *ProfileRepository {
	return &ProfileRepository{
		db:           db,
		profileCache: profileCache,
	}
}

func (r *ProfileRepository) GetByID(ctx context.Context, id string) (*models.MentorProfile, error) {
	return r.db.GetMentorProfileByID(ctx, id)
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID string) (*models.MentorProfile, error) {
	return r.db.GetMentorProfileByUserID(ctx, userID)
}

func (r *ProfileRepository) GetAllAvailable(ctx context.Context) ([]*models.MentorProfile, error) {
	if r.profileCache != nil && r.profileCache.IsReady() {
		return r.profileCache.Get(ctx)
	}
	return r.db.GetAvailableMentorProfiles(ctx)
}
