package service

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/forgo/clubhive/api/internal/clock"
	"github.com/forgo/clubhive/api/internal/model"
	"github.com/forgo/clubhive/api/internal/passtoken"
)

// EventRepository defines the interface for event storage
type EventRepository interface {
	List(ctx context.Context) ([]model.Event, error)
	GetByID(ctx context.Context, id string) (*model.Event, error)
	ListFiltered(ctx context.Context, f model.EventFilter) ([]model.Event, error)
	ListByClubs(ctx context.Context, clubIDs map[string]bool) ([]model.Event, error)
	Create(ctx context.Context, e *model.Event) error
}

// RegistrationRepository defines the interface for registration storage
type RegistrationRepository interface {
	List(ctx context.Context) ([]model.Registration, error)
	Get(ctx context.Context, eventID, userID string) (*model.Registration, error)
	GetByPassToken(ctx context.Context, token string) (*model.Registration, error)
	ListByEvent(ctx context.Context, eventID string) ([]model.Registration, error)
	Create(ctx context.Context, reg *model.Registration) error
	Update(ctx context.Context, reg *model.Registration) error
}

// EventClubRepository defines the club lookups used for ownership checks
type EventClubRepository interface {
	GetByID(ctx context.Context, id string) (*model.Club, error)
	ListByOwner(ctx context.Context, ownerID string) ([]model.Club, error)
}

// TokenMinter mints registration pass tokens
type TokenMinter interface {
	New(eventID, userID string) (string, error)
}

// EventService handles event and registration business logic
type EventService struct {
	mu            sync.Mutex
	events        EventRepository
	registrations RegistrationRepository
	clubs         EventClubRepository
	tokens        TokenMinter
	clock         clock.Clock
}

// EventServiceConfig holds configuration for the event service
type EventServiceConfig struct {
	Events        EventRepository
	Registrations RegistrationRepository
	Clubs         EventClubRepository
	Tokens        TokenMinter
	Clock         clock.Clock
}

// NewEventService creates a new event service
func NewEventService(cfg EventServiceConfig) *EventService {
	tokens := cfg.Tokens
	if tokens == nil {
		tokens = passtoken.NewMinter(nil)
	}
	return &EventService{
		events:        cfg.Events,
		registrations: cfg.Registrations,
		clubs:         cfg.Clubs,
		tokens:        tokens,
		clock:         clock.OrSystem(cfg.Clock),
	}
}

// List returns events in store order, optionally limited to one club
func (s *EventService) List(ctx context.Context, filter model.EventFilter) ([]model.Event, error) {
	return s.events.ListFiltered(ctx, filter)
}

// Get retrieves an event by ID
func (s *EventService) Get(ctx context.Context, eventID string) (*model.Event, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	return event, nil
}

// ListUpcoming returns events dated today or later ordered by date then
// time. A positive limit truncates the result.
func (s *EventService) ListUpcoming(ctx context.Context, limit int) ([]model.Event, error) {
	all, err := s.events.List(ctx)
	if err != nil {
		return nil, err
	}

	today := s.clock.Now()
	upcoming := make([]model.Event, 0, len(all))
	for i := range all {
		if all[i].OnOrAfter(today) {
			upcoming = append(upcoming, all[i])
		}
	}
	model.SortEventsBySchedule(upcoming)

	if limit > 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming, nil
}

// ListManaged returns the events of clubs owned by the signed-in admin
func (s *EventService) ListManaged(ctx context.Context, sess *model.Session) ([]model.Event, error) {
	admin, err := requireAdmin(sess)
	if err != nil {
		return nil, err
	}

	owned, err := s.clubs.ListByOwner(ctx, admin.ID)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]bool, len(owned))
	for _, c := range owned {
		ids[c.ID] = true
	}
	return s.events.ListByClubs(ctx, ids)
}

// Create creates an event in a club owned by the signed-in admin.
// Only an absent capacity is unbounded.
func (s *EventService) Create(ctx context.Context, sess *model.Session, req *model.CreateEventRequest) (*model.Event, error) {
	admin, err := requireAdmin(sess)
	if err != nil {
		return nil, err
	}
	if errors := req.Validate(); len(errors) > 0 {
		return nil, model.NewValidationError(errors)
	}

	if err := s.requireOwner(ctx, admin, req.ClubID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	event := &model.Event{
		ID:          newID("event"),
		ClubID:      req.ClubID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Location:    strings.TrimSpace(req.Location),
		Capacity:    req.NormalizedCapacity(),
		ImageURL:    req.ImageURL,
		CreatedOn:   s.clock.Now(),
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}

	slog.Info("event created", slog.String("event_id", event.ID), slog.String("club_id", event.ClubID))
	return event, nil
}

// Register signs the current identity up for an event. Registering twice
// returns the existing registration with its original pass token.
// Capacity is advisory: registrations past it are accepted and logged.
func (s *EventService) Register(ctx context.Context, sess *model.Session, eventID string) (*model.Registration, error) {
	identity, err := requireIdentity(sess)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	event, err := s.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}

	existing, err := s.registrations.Get(ctx, eventID, identity.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	if event.Capacity != nil {
		current, err := s.registrations.ListByEvent(ctx, eventID)
		if err != nil {
			return nil, err
		}
		if len(current) >= *event.Capacity {
			slog.Warn("registration exceeds event capacity",
				slog.String("event_id", eventID),
				slog.Int("capacity", *event.Capacity),
				slog.Int("registrations", len(current)+1),
			)
		}
	}

	token, err := s.tokens.New(eventID, identity.ID)
	if err != nil {
		return nil, err
	}

	reg := &model.Registration{
		ID:           newID("reg"),
		EventID:      eventID,
		UserID:       identity.ID,
		RegisteredOn: s.clock.Now(),
		PassToken:    token,
	}
	if err := s.registrations.Create(ctx, reg); err != nil {
		return nil, err
	}

	slog.Info("event registered", slog.String("event_id", eventID), slog.String("user_id", identity.ID))
	return reg, nil
}

// MyRegistration returns the current identity's registration for an event,
// or nil when there is none or the session is anonymous.
func (s *EventService) MyRegistration(ctx context.Context, sess *model.Session, eventID string) (*model.Registration, error) {
	identity := sess.Current()
	if identity == nil {
		return nil, nil
	}
	return s.registrations.Get(ctx, eventID, identity.ID)
}

// RegistrationsFor returns all registrations of an event, pass tokens
// included. Only the owner of the event's club may list them.
func (s *EventService) RegistrationsFor(ctx context.Context, sess *model.Session, eventID string) ([]model.Registration, error) {
	admin, err := requireAdmin(sess)
	if err != nil {
		return nil, err
	}
	event, err := s.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := s.requireOwner(ctx, admin, event.ClubID); err != nil {
		return nil, err
	}
	return s.registrations.ListByEvent(ctx, eventID)
}

// CheckIn marks the registration holding passToken as attended.
// Only the owner of the event's club may check attendees in; repeating a
// check-in returns the registration unchanged.
func (s *EventService) CheckIn(ctx context.Context, sess *model.Session, passToken string) (*model.Registration, error) {
	admin, err := requireAdmin(sess)
	if err != nil {
		return nil, err
	}
	passToken = strings.TrimSpace(passToken)
	if errors := (&model.CheckInRequest{PassToken: passToken}).Validate(); len(errors) > 0 {
		return nil, model.NewValidationError(errors)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	reg, err := s.registrations.GetByPassToken(ctx, passToken)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, ErrRegistrationNotFound
	}
	event, err := s.Get(ctx, reg.EventID)
	if err != nil {
		return nil, err
	}
	if err := s.requireOwner(ctx, admin, event.ClubID); err != nil {
		return nil, err
	}

	if reg.Attended {
		return reg, nil
	}

	now := s.clock.Now()
	reg.Attended = true
	reg.CheckedInOn = &now
	if err := s.registrations.Update(ctx, reg); err != nil {
		return nil, err
	}

	slog.Info("checked in", slog.String("event_id", reg.EventID), slog.String("user_id", reg.UserID))
	return reg, nil
}

func (s *EventService) requireOwner(ctx context.Context, admin *model.Identity, clubID string) error {
	club, err := s.clubs.GetByID(ctx, clubID)
	if err != nil {
		return err
	}
	if club == nil {
		return ErrClubNotFound
	}
	if club.OwnerID != admin.ID {
		return ErrNotClubOwner
	}
	return nil
}
