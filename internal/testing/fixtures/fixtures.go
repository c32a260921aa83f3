package fixtures

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/forgo/clubhive/api/internal/model"
	"github.com/forgo/clubhive/api/internal/repository"
	"github.com/forgo/clubhive/api/internal/store"
)

// Factory creates test entities in a store
type Factory struct {
	Identities    *repository.IdentityRepository
	Clubs         *repository.ClubRepository
	Memberships   *repository.MembershipRepository
	Events        *repository.EventRepository
	Registrations *repository.RegistrationRepository
	Announcements *repository.AnnouncementRepository
	Now           time.Time
}

// New creates a new fixture factory
func New(s store.Store, keys store.Keyspace) *Factory {
	return &Factory{
		Identities:    repository.NewIdentityRepository(s, keys),
		Clubs:         repository.NewClubRepository(s, keys),
		Memberships:   repository.NewMembershipRepository(s, keys),
		Events:        repository.NewEventRepository(s, keys),
		Registrations: repository.NewRegistrationRepository(s, keys),
		Announcements: repository.NewAnnouncementRepository(s, keys),
		Now:           time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC),
	}
}

// randomID generates a random hex ID
func randomID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func ctx() context.Context {
	return context.Background()
}

// ============================================================================
// Identity Fixtures
// ============================================================================

// IdentityOpts customizes identity creation
type IdentityOpts struct {
	Email      string
	Name       string
	Role       model.Role
	Department string
	Year       *int
}

// WithEmail sets the identity email
func WithEmail(email string) func(*IdentityOpts) {
	return func(o *IdentityOpts) { o.Email = email }
}

// WithName sets the identity display name
func WithName(name string) func(*IdentityOpts) {
	return func(o *IdentityOpts) { o.Name = name }
}

// CreateIdentity creates an identity with optional customizations
func (f *Factory) CreateIdentity(t *testing.T, opts ...func(*IdentityOpts)) *model.Identity {
	t.Helper()

	id := randomID()
	o := &IdentityOpts{
		Email: fmt.Sprintf("user_%s@test.local", id),
		Name:  fmt.Sprintf("User %s", id),
		Role:  model.RoleStudent,
	}
	for _, fn := range opts {
		fn(o)
	}

	identity := &model.Identity{
		ID:         "user-" + id,
		Email:      o.Email,
		Name:       o.Name,
		Role:       o.Role,
		Department: o.Department,
		Year:       o.Year,
		CreatedOn:  f.Now,
	}
	if o.Role == model.RoleAdmin {
		identity.ID = "admin-" + id
	}
	if err := f.Identities.Append(ctx(), *identity); err != nil {
		t.Fatalf("fixtures: failed to create identity: %v", err)
	}
	return identity
}

// CreateStudent creates a student identity
func (f *Factory) CreateStudent(t *testing.T, opts ...func(*IdentityOpts)) *model.Identity {
	t.Helper()
	year := 2
	return f.CreateIdentity(t, append([]func(*IdentityOpts){func(o *IdentityOpts) {
		o.Department = "Computer Science"
		o.Year = &year
	}}, opts...)...)
}

// CreateAdmin creates an admin identity
func (f *Factory) CreateAdmin(t *testing.T, opts ...func(*IdentityOpts)) *model.Identity {
	t.Helper()
	return f.CreateIdentity(t, append([]func(*IdentityOpts){func(o *IdentityOpts) {
		o.Role = model.RoleAdmin
		o.Department = "Student Affairs"
	}}, opts...)...)
}

// ============================================================================
// Club Fixtures
// ============================================================================

// CreateClub creates a club owned by owner
func (f *Factory) CreateClub(t *testing.T, owner *model.Identity) *model.Club {
	t.Helper()

	id := randomID()
	club := &model.Club{
		ID:          "club-" + id,
		Name:        fmt.Sprintf("Club %s", id),
		Description: "A club for testing",
		OwnerID:     owner.ID,
		CreatedOn:   f.Now,
	}
	if err := f.Clubs.Create(ctx(), club); err != nil {
		t.Fatalf("fixtures: failed to create club: %v", err)
	}
	return club
}

// AddMember adds identity to club
func (f *Factory) AddMember(t *testing.T, identity *model.Identity, club *model.Club) *model.Membership {
	t.Helper()

	m := &model.Membership{
		ID:       "mem-" + randomID(),
		ClubID:   club.ID,
		UserID:   identity.ID,
		JoinedOn: f.Now,
	}
	if err := f.Memberships.Create(ctx(), m); err != nil {
		t.Fatalf("fixtures: failed to add member: %v", err)
	}
	return m
}

// CreateAnnouncement posts an announcement to club
func (f *Factory) CreateAnnouncement(t *testing.T, club *model.Club, title string) *model.Announcement {
	t.Helper()

	a := model.Announcement{
		ID:        "ann-" + randomID(),
		ClubID:    club.ID,
		Title:     title,
		Content:   "Details for " + title,
		CreatedOn: f.Now,
	}
	if err := f.Announcements.Append(ctx(), a); err != nil {
		t.Fatalf("fixtures: failed to create announcement: %v", err)
	}
	return &a
}

// ============================================================================
// Event Fixtures
// ============================================================================

// EventOpts customizes event creation
type EventOpts struct {
	Title    string
	Date     string
	Time     string
	Location string
	Capacity *int
}

// WithCapacity sets the event capacity
func WithCapacity(n int) func(*EventOpts) {
	return func(o *EventOpts) { o.Capacity = &n }
}

// Unbounded clears the event capacity
func Unbounded() func(*EventOpts) {
	return func(o *EventOpts) { o.Capacity = nil }
}

// WithSchedule sets the event date and time
func WithSchedule(date, clock string) func(*EventOpts) {
	return func(o *EventOpts) {
		o.Date = date
		o.Time = clock
	}
}

// WithTitle sets the event title
func WithTitle(title string) func(*EventOpts) {
	return func(o *EventOpts) { o.Title = title }
}

// CreateEvent creates an event in club
func (f *Factory) CreateEvent(t *testing.T, club *model.Club, opts ...func(*EventOpts)) *model.Event {
	t.Helper()

	id := randomID()
	capacity := 50
	o := &EventOpts{
		Title:    fmt.Sprintf("Event %s", id),
		Date:     "2026-02-01",
		Time:     "18:00",
		Location: "Room 101",
		Capacity: &capacity,
	}
	for _, fn := range opts {
		fn(o)
	}

	event := &model.Event{
		ID:          "event-" + id,
		ClubID:      club.ID,
		Title:       o.Title,
		Description: "An event for testing",
		Date:        o.Date,
		Time:        o.Time,
		Location:    o.Location,
		Capacity:    o.Capacity,
		CreatedOn:   f.Now,
	}
	if err := f.Events.Create(ctx(), event); err != nil {
		t.Fatalf("fixtures: failed to create event: %v", err)
	}
	return event
}

// Register registers identity for event with a fixture pass token
func (f *Factory) Register(t *testing.T, event *model.Event, identity *model.Identity) *model.Registration {
	t.Helper()

	reg := &model.Registration{
		ID:           "reg-" + randomID(),
		EventID:      event.ID,
		UserID:       identity.ID,
		RegisteredOn: f.Now,
		PassToken:    "CLUBHIVE-" + randomID(),
	}
	if err := f.Registrations.Create(ctx(), reg); err != nil {
		t.Fatalf("fixtures: failed to register: %v", err)
	}
	return reg
}
