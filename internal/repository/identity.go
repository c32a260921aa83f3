package repository

import (
	"context"
	"strings"

	"github.com/forgo/clubhive/api/internal/model"
	"github.com/forgo/clubhive/api/internal/store"
	"golang.org/x/text/cases"
)

// IdentityRepository handles identity data access
type IdentityRepository struct {
	Collection[model.Identity]
}

// NewIdentityRepository creates a new identity repository
func NewIdentityRepository(s store.Store, keys store.Keyspace) *IdentityRepository {
	return &IdentityRepository{Collection: newCollection[model.Identity](s, keys, store.Identities)}
}

// GetByID returns the identity with the given id, or nil
func (r *IdentityRepository) GetByID(ctx context.Context, id string) (*model.Identity, error) {
	items, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	return find(items, func(i *model.Identity) bool { return i.ID == id }), nil
}

// GetByEmail returns the identity whose email matches under Unicode case folding, or nil
func (r *IdentityRepository) GetByEmail(ctx context.Context, email string) (*model.Identity, error) {
	items, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	want := FoldEmail(email)
	return find(items, func(i *model.Identity) bool { return FoldEmail(i.Email) == want }), nil
}

// FirstWithRole returns the first identity in store order holding role, or nil
func (r *IdentityRepository) FirstWithRole(ctx context.Context, role model.Role) (*model.Identity, error) {
	items, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	return find(items, func(i *model.Identity) bool { return i.Role == role }), nil
}

// FoldEmail normalizes an email address for comparison
func FoldEmail(email string) string {
	return cases.Fold().String(strings.TrimSpace(email))
}
