// Package app wires repositories and services over one store. The HTTP
// server and the command line client share it.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/forgo/clubhive/api/internal/clock"
	"github.com/forgo/clubhive/api/internal/config"
	"github.com/forgo/clubhive/api/internal/model"
	"github.com/forgo/clubhive/api/internal/repository"
	"github.com/forgo/clubhive/api/internal/service"
	"github.com/forgo/clubhive/api/internal/store"
)

// Options controls wiring
type Options struct {
	AllowRoleSwitch bool
	Clock           clock.Clock
}

// App holds every service over a single store
type App struct {
	Store         store.Store
	Sessions      *service.SessionService
	Clubs         *service.ClubService
	Events        *service.EventService
	Reports       *service.ReportService
	Announcements *service.AnnouncementService
	Seeder        *service.SeederService
}

// New builds the services on an open store
func New(s store.Store, keys store.Keyspace, opts Options) *App {
	identities := repository.NewIdentityRepository(s, keys)
	clubs := repository.NewClubRepository(s, keys)
	memberships := repository.NewMembershipRepository(s, keys)
	events := repository.NewEventRepository(s, keys)
	registrations := repository.NewRegistrationRepository(s, keys)
	announcements := repository.NewAnnouncementRepository(s, keys)

	return &App{
		Store: s,
		Sessions: service.NewSessionService(service.SessionServiceConfig{
			Identities:      identities,
			Sessions:        repository.NewSessionRepository(s, keys),
			AllowRoleSwitch: opts.AllowRoleSwitch,
		}),
		Clubs: service.NewClubService(service.ClubServiceConfig{
			Clubs:         clubs,
			Memberships:   memberships,
			Identities:    identities,
			Events:        events,
			Registrations: registrations,
			Clock:         opts.Clock,
		}),
		Events: service.NewEventService(service.EventServiceConfig{
			Events:        events,
			Registrations: registrations,
			Clubs:         clubs,
			Clock:         opts.Clock,
		}),
		Reports: service.NewReportService(service.ReportServiceConfig{
			Events:        events,
			Clubs:         clubs,
			Registrations: registrations,
			Identities:    identities,
			Clock:         opts.Clock,
		}),
		Announcements: service.NewAnnouncementService(announcements),
		Seeder: service.NewSeederService(service.SeederServiceConfig{
			Identities:    identities,
			Clubs:         clubs,
			Memberships:   memberships,
			Events:        events,
			Registrations: registrations,
			Announcements: announcements,
			Clock:         opts.Clock,
		}),
	}
}

// Open connects the configured store and wires the services
func Open(ctx context.Context, cfg *config.Config) (*App, error) {
	s, err := store.Open(ctx, cfg.StoreOptions())
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return New(s, cfg.Keyspace(), Options{AllowRoleSwitch: cfg.Demo.RoleSwitch}), nil
}

// Start seeds missing collections and restores the persisted session
func (a *App) Start(ctx context.Context) (*model.Session, error) {
	result, err := a.Seeder.Seed(ctx)
	if err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	if len(result.Seeded) > 0 {
		slog.Info("seeded demo data", slog.Any("collections", result.Seeded))
	}

	sess, err := a.Sessions.Restore(ctx)
	if err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}
	return sess, nil
}

// Close releases the store
func (a *App) Close() error {
	return a.Store.Close()
}
