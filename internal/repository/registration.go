package repository

import (
	"context"

	"github.com/forgo/clubhive/api/internal/model"
	"github.com/forgo/clubhive/api/internal/store"
)

// RegistrationRepository handles registration data access
type RegistrationRepository struct {
	Collection[model.Registration]
}

// NewRegistrationRepository creates a new registration repository
func NewRegistrationRepository(s store.Store, keys store.Keyspace) *RegistrationRepository {
	return &RegistrationRepository{Collection: newCollection[model.Registration](s, keys, store.Registrations)}
}

// Get returns the registration for (event, user), or nil
func (r *RegistrationRepository) Get(ctx context.Context, eventID, userID string) (*model.Registration, error) {
	items, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	return find(items, func(reg *model.Registration) bool { return reg.EventID == eventID && reg.UserID == userID }), nil
}

// GetByPassToken returns the registration holding the token, or nil
func (r *RegistrationRepository) GetByPassToken(ctx context.Context, token string) (*model.Registration, error) {
	items, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	return find(items, func(reg *model.Registration) bool { return reg.PassToken == token }), nil
}

// ListByEvent returns the registrations of an event
func (r *RegistrationRepository) ListByEvent(ctx context.Context, eventID string) ([]model.Registration, error) {
	items, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter(items, func(reg *model.Registration) bool { return reg.EventID == eventID }), nil
}

// Create appends a registration
func (r *RegistrationRepository) Create(ctx context.Context, reg *model.Registration) error {
	return r.Append(ctx, *reg)
}

// Update replaces the registration with the same id
func (r *RegistrationRepository) Update(ctx context.Context, reg *model.Registration) error {
	items, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ID == reg.ID {
			items[i] = *reg
			return r.ReplaceAll(ctx, items)
		}
	}
	return nil
}
