package repository

import (
	"context"

	"github.com/forgo/clubhive/api/internal/model"
	"github.com/forgo/clubhive/api/internal/store"
)

// MembershipRepository handles membership data access
type MembershipRepository struct {
	Collection[model.Membership]
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(s store.Store, keys store.Keyspace) *MembershipRepository {
	return &MembershipRepository{Collection: newCollection[model.Membership](s, keys, store.Memberships)}
}

// Get returns the membership for (club, user), or nil
func (r *MembershipRepository) Get(ctx context.Context, clubID, userID string) (*model.Membership, error) {
	items, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	return find(items, func(m *model.Membership) bool { return m.ClubID == clubID && m.UserID == userID }), nil
}

// ListByUser returns the memberships held by an identity
func (r *MembershipRepository) ListByUser(ctx context.Context, userID string) ([]model.Membership, error) {
	items, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter(items, func(m *model.Membership) bool { return m.UserID == userID }), nil
}

// ListByClub returns the memberships of a club
func (r *MembershipRepository) ListByClub(ctx context.Context, clubID string) ([]model.Membership, error) {
	items, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter(items, func(m *model.Membership) bool { return m.ClubID == clubID }), nil
}

// Create appends a membership
func (r *MembershipRepository) Create(ctx context.Context, m *model.Membership) error {
	return r.Append(ctx, *m)
}
