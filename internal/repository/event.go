package repository

import (
	"context"

	"github.com/forgo/clubhive/api/internal/model"
	"github.com/forgo/clubhive/api/internal/store"
)

// EventRepository handles event data access
type EventRepository struct {
	Collection[model.Event]
}

// NewEventRepository creates a new event repository
func NewEventRepository(s store.Store, keys store.Keyspace) *EventRepository {
	return &EventRepository{Collection: newCollection[model.Event](s, keys, store.Events)}
}

// GetByID returns the event with the given id, or nil
func (r *EventRepository) GetByID(ctx context.Context, id string) (*model.Event, error) {
	items, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	return find(items, func(e *model.Event) bool { return e.ID == id }), nil
}

// ListFiltered returns events passing the filter in store order
func (r *EventRepository) ListFiltered(ctx context.Context, f model.EventFilter) ([]model.Event, error) {
	items, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter(items, f.Matches), nil
}

// ListByClubs returns events belonging to any of the given clubs
func (r *EventRepository) ListByClubs(ctx context.Context, clubIDs map[string]bool) ([]model.Event, error) {
	items, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter(items, func(e *model.Event) bool { return clubIDs[e.ClubID] }), nil
}

// Create appends an event
func (r *EventRepository) Create(ctx context.Context, e *model.Event) error {
	return r.Append(ctx, *e)
}
