package repository

import (
	"context"

	"github.com/mentorhub/mentorhub-api/internal/database/postgres"
)

// InterestRepository derives mentee interests from project tags
type InterestRepository struct {
	db *postgres.Client
}

var _ InterestStore = (*InterestRepository)(nil)

// NewInterestRepository creates a new interest repository
func NewInterestRepository(db *postgres.Client) *InterestRepository {
	return &InterestRepository{db: db}
}

func (r *InterestRepository) GetInterestTags(ctx context.Context, userID string) ([]string, error) {
	return r.db.GetUserInterestTags(ctx, userID)
}
