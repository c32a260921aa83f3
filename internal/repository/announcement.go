package repository

import (
	"context"

	"github.com/forgo/clubhive/api/internal/model"
	"github.com/forgo/clubhive/api/internal/store"
)

// AnnouncementRepository handles announcement data access
type AnnouncementRepository struct {
	Collection[model.Announcement]
}

// NewAnnouncementRepository creates a new announcement repository
func NewAnnouncementRepository(s store.Store, keys store.Keyspace) *AnnouncementRepository {
	return &AnnouncementRepository{Collection: newCollection[model.Announcement](s, keys, store.Announcements)}
}

// ListByClub returns the announcements of a club
func (r *AnnouncementRepository) ListByClub(ctx context.Context, clubID string) ([]model.Announcement, error) {
	items, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter(items, func(a *model.Announcement) bool { return a.ClubID == clubID }), nil
}
