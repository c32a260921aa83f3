package repository

import (
	"context"

	"github.com/forgo/clubhive/api/internal/model"
	"github.com/forgo/clubhive/api/internal/store"
)

// ClubRepository handles club data access
type ClubRepository struct {
	Collection[model.Club]
}

// NewClubRepository creates a new club repository
func NewClubRepository(s store.Store, keys store.Keyspace) *ClubRepository {
	return &ClubRepository{Collection: newCollection[model.Club](s, keys, store.Clubs)}
}

// GetByID returns the club with the given id, or nil
func (r *ClubRepository) GetByID(ctx context.Context, id string) (*model.Club, error) {
	items, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	return find(items, func(c *model.Club) bool { return c.ID == id }), nil
}

// ListByOwner returns the clubs owned by an admin
func (r *ClubRepository) ListByOwner(ctx context.Context, ownerID string) ([]model.Club, error) {
	items, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter(items, func(c *model.Club) bool { return c.OwnerID == ownerID }), nil
}

// Create appends a club
func (r *ClubRepository) Create(ctx context.Context, club *model.Club) error {
	return r.Append(ctx, *club)
}
