package repository

import (
	"context"

	"github.com/forgo/clubhive/api/internal/model"
	"github.com/forgo/clubhive/api/internal/store"
)

// SessionRepository persists the signed-in identity singleton
type SessionRepository struct {
	store store.Store
	key   string
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(s store.Store, keys store.Keyspace) *SessionRepository {
	return &SessionRepository{store: s, key: keys.Key(store.CurrentIdentity)}
}

// Load returns the persisted identity, or nil if absent or unreadable
func (r *SessionRepository) Load(ctx context.Context) (*model.Identity, error) {
	return store.LoadOne[model.Identity](ctx, r.store, r.key)
}

// Save persists the identity
func (r *SessionRepository) Save(ctx context.Context, identity *model.Identity) error {
	return store.SaveOne(ctx, r.store, r.key, identity)
}

// Clear removes the persisted identity
func (r *SessionRepository) Clear(ctx context.Context) error {
	return r.store.Remove(ctx, r.key)
}
