package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/forgo/clubhive/api/internal/clock"
	"github.com/forgo/clubhive/api/internal/model"
)

// SeedCollection is a collection the seeder can detect and populate
type SeedCollection[T any] interface {
	Key() string
	Exists(ctx context.Context) (bool, error)
	ReplaceAll(ctx context.Context, items []T) error
}

// SeederService writes the built-in demo dataset into empty collections
type SeederService struct {
	identities    SeedCollection[model.Identity]
	clubs         SeedCollection[model.Club]
	memberships   SeedCollection[model.Membership]
	events        SeedCollection[model.Event]
	registrations SeedCollection[model.Registration]
	announcements SeedCollection[model.Announcement]
	clock         clock.Clock
}

// SeederServiceConfig holds configuration for the seeder service
type SeederServiceConfig struct {
	Identities    SeedCollection[model.Identity]
	Clubs         SeedCollection[model.Club]
	Memberships   SeedCollection[model.Membership]
	Events        SeedCollection[model.Event]
	Registrations SeedCollection[model.Registration]
	Announcements SeedCollection[model.Announcement]
	Clock         clock.Clock
}

// NewSeederService creates a new seeder service
func NewSeederService(cfg SeederServiceConfig) *SeederService {
	return &SeederService{
		identities:    cfg.Identities,
		clubs:         cfg.Clubs,
		memberships:   cfg.Memberships,
		events:        cfg.Events,
		registrations: cfg.Registrations,
		announcements: cfg.Announcements,
		clock:         clock.OrSystem(cfg.Clock),
	}
}

// SeedResult contains the results of a seeding operation
type SeedResult struct {
	Seeded   []string `json:"seeded"`
	Duration int64    `json:"duration_ms"`
}

// Seed writes the demo dataset into every collection that is absent.
// Existing collections are left untouched; undecodable ones count as absent.
func (s *SeederService) Seed(ctx context.Context) (*SeedResult, error) {
	start := time.Now()
	data := DemoDataset(s.clock.Now())
	result := &SeedResult{Seeded: []string{}}

	steps := []func() error{
		func() error { return seedCollection(ctx, s.identities, data.Identities, result) },
		func() error { return seedCollection(ctx, s.clubs, data.Clubs, result) },
		func() error { return seedCollection(ctx, s.memberships, data.Memberships, result) },
		func() error { return seedCollection(ctx, s.events, data.Events, result) },
		func() error { return seedCollection(ctx, s.registrations, data.Registrations, result) },
		func() error { return seedCollection(ctx, s.announcements, data.Announcements, result) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}

	result.Duration = time.Since(start).Milliseconds()
	if len(result.Seeded) > 0 {
		slog.Info("seeded demo data", slog.Any("collections", result.Seeded))
	}
	return result, nil
}

func seedCollection[T any](ctx context.Context, c SeedCollection[T], items []T, result *SeedResult) error {
	exists, err := c.Exists(ctx)
	if err != nil {
		return fmt.Errorf("check %s: %w", c.Key(), err)
	}
	if exists {
		return nil
	}
	if err := c.ReplaceAll(ctx, items); err != nil {
		return fmt.Errorf("seed %s: %w", c.Key(), err)
	}
	result.Seeded = append(result.Seeded, c.Key())
	return nil
}

// Dataset is a full set of collections
type Dataset struct {
	Identities    []model.Identity
	Clubs         []model.Club
	Memberships   []model.Membership
	Events        []model.Event
	Registrations []model.Registration
	Announcements []model.Announcement
}

// DemoDataset returns the built-in demo data stamped with now
func DemoDataset(now time.Time) Dataset {
	year := 3
	capacity := func(n int) *int { return &n }

	return Dataset{
		Identities: []model.Identity{
			{ID: "user-1", Email: "student@demo.com", Name: "Alex Johnson", Role: model.RoleStudent, Department: "Computer Science", Year: &year, CreatedOn: now},
			{ID: "admin-1", Email: "admin@demo.com", Name: "Dr. Sarah Chen", Role: model.RoleAdmin, Department: "Student Affairs", CreatedOn: now},
		},
		Clubs: []model.Club{
			{ID: "club-1", Name: "Tech Innovators", Description: "A club for technology enthusiasts to explore cutting-edge innovations, build projects, and network with industry professionals.", OwnerID: "admin-1", CreatedOn: now},
			{ID: "club-2", Name: "Creative Arts Society", Description: "Express yourself through various art forms including painting, photography, digital art, and more.", OwnerID: "admin-1", CreatedOn: now},
			{ID: "club-3", Name: "Entrepreneurship Cell", Description: "Building the next generation of entrepreneurs through workshops, mentorship, and startup competitions.", OwnerID: "admin-1", CreatedOn: now},
		},
		Memberships: []model.Membership{
			{ID: "mem-1", ClubID: "club-1", UserID: "user-1", JoinedOn: now},
			{ID: "mem-2", ClubID: "club-3", UserID: "user-1", JoinedOn: now},
		},
		Events: []model.Event{
			{ID: "event-1", ClubID: "club-1", Title: "AI Workshop: Introduction to Machine Learning", Description: "Learn the fundamentals of machine learning with hands-on exercises using Python and TensorFlow.", Date: "2026-01-15", Time: "14:00", Location: "Tech Lab 101", Capacity: capacity(50), CreatedOn: now},
			{ID: "event-2", ClubID: "club-1", Title: "Hackathon 2026", Description: "24-hour coding competition with amazing prizes and networking opportunities.", Date: "2026-01-25", Time: "09:00", Location: "Main Auditorium", Capacity: capacity(200), CreatedOn: now},
			{ID: "event-3", ClubID: "club-3", Title: "Startup Pitch Night", Description: "Present your startup ideas to a panel of investors and mentors.", Date: "2026-01-20", Time: "18:00", Location: "Business School Hall", Capacity: capacity(100), CreatedOn: now},
		},
		Registrations: []model.Registration{},
		Announcements: []model.Announcement{
			{ID: "ann-1", ClubID: "club-1", Title: "Welcome to Spring Semester!", Content: "Exciting events planned for this semester. Stay tuned for updates!", CreatedOn: now},
			{ID: "ann-2", ClubID: "club-3", Title: "New Partnership with Local Incubator", Content: "We are thrilled to announce our partnership with TechStart Incubator for mentorship programs.", CreatedOn: now},
		},
	}
}
