package service

import (
	"context"

	"github.com/forgo/clubhive/api/internal/clock"
	"github.com/forgo/clubhive/api/internal/model"
)

// ReportEventRepository defines the event lookup used for reports
type ReportEventRepository interface {
	GetByID(ctx context.Context, id string) (*model.Event, error)
}

// ReportClubRepository defines the club lookup used for reports
type ReportClubRepository interface {
	GetByID(ctx context.Context, id string) (*model.Club, error)
}

// ReportRegistrationRepository defines the registration reads used for reports
type ReportRegistrationRepository interface {
	ListByEvent(ctx context.Context, eventID string) ([]model.Registration, error)
}

// ReportService builds attendance reports
type ReportService struct {
	events        ReportEventRepository
	clubs         ReportClubRepository
	registrations ReportRegistrationRepository
	identities    IdentityRepository
	clock         clock.Clock
}

// ReportServiceConfig holds configuration for the report service
type ReportServiceConfig struct {
	Events        ReportEventRepository
	Clubs         ReportClubRepository
	Registrations ReportRegistrationRepository
	Identities    IdentityRepository
	Clock         clock.Clock
}

// NewReportService creates a new report service
func NewReportService(cfg ReportServiceConfig) *ReportService {
	return &ReportService{
		events:        cfg.Events,
		clubs:         cfg.Clubs,
		registrations: cfg.Registrations,
		identities:    cfg.Identities,
		clock:         clock.OrSystem(cfg.Clock),
	}
}

// BuildReport produces an attendance snapshot of one event with one row per
// registration. Only the owner of the event's club may build it. Nothing
// is written.
func (s *ReportService) BuildReport(ctx context.Context, sess *model.Session, eventID string) (*model.EventReport, error) {
	admin, err := requireAdmin(sess)
	if err != nil {
		return nil, err
	}

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	club, err := s.clubs.GetByID(ctx, event.ClubID)
	if err != nil {
		return nil, err
	}
	if club == nil {
		return nil, ErrClubNotFound
	}
	if club.OwnerID != admin.ID {
		return nil, ErrNotClubOwner
	}

	registrations, err := s.registrations.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	identities, err := s.identities.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]model.Identity, len(identities))
	for _, i := range identities {
		byID[i.ID] = i
	}

	report := &model.EventReport{
		EventID:            event.ID,
		Event:              event.Title,
		Date:               event.Date,
		Time:               event.Time,
		Location:           event.Location,
		Capacity:           event.Capacity,
		Unbounded:          event.IsUnbounded(),
		FillRate:           model.FillRatePercent(len(registrations), event.Capacity),
		TotalRegistrations: len(registrations),
		Attendees:          make([]model.ReportRow, 0, len(registrations)),
		GeneratedOn:        s.clock.Now(),
	}

	for _, r := range registrations {
		// Unresolved identities still get a row keyed by user id
		row := model.ReportRow{
			UserID:       r.UserID,
			RegisteredOn: r.RegisteredOn,
			Attended:     r.Attended,
		}
		if identity, ok := byID[r.UserID]; ok {
			row.Name = identity.Name
			row.Email = identity.Email
			row.Department = identity.Department
			row.Year = identity.Year
		}
		if r.Attended {
			report.TotalAttended++
		}
		report.Attendees = append(report.Attendees, row)
	}

	return report, nil
}
