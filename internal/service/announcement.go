package service

import (
	"context"

	"github.com/forgo/clubhive/api/internal/model"
)

// AnnouncementRepository defines the interface for announcement storage
type AnnouncementRepository interface {
	ListByClub(ctx context.Context, clubID string) ([]model.Announcement, error)
}

// AnnouncementService serves club announcements
type AnnouncementService struct {
	announcements AnnouncementRepository
}

// NewAnnouncementService creates a new announcement service
func NewAnnouncementService(announcements AnnouncementRepository) *AnnouncementService {
	return &AnnouncementService{announcements: announcements}
}

// ListFor returns a club's announcements in store order
func (s *AnnouncementService) ListFor(ctx context.Context, clubID string) ([]model.Announcement, error) {
	return s.announcements.ListByClub(ctx, clubID)
}
