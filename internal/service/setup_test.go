package service

import (
	"testing"
	"time"

	"github.com/forgo/clubhive/api/internal/clock"
	"github.com/forgo/clubhive/api/internal/model"
	"github.com/forgo/clubhive/api/internal/repository"
	"github.com/forgo/clubhive/api/internal/testing/fixtures"
	"github.com/forgo/clubhive/api/internal/testing/testdb"
)

// ============================================================================
// Test Environment
// ============================================================================

// testEnv wires every service to one isolated store
type testEnv struct {
	db            *testdb.TestDB
	f             *fixtures.Factory
	now           time.Time
	sessions      *SessionService
	clubs         *ClubService
	events        *EventService
	reports       *ReportService
	announcements *AnnouncementService
	seeder        *SeederService
}

type envOpts struct {
	allowRoleSwitch bool
}

func withRoleSwitch() func(*envOpts) {
	return func(o *envOpts) { o.allowRoleSwitch = true }
}

func newTestEnv(t *testing.T, opts ...func(*envOpts)) *testEnv {
	t.Helper()

	o := &envOpts{}
	for _, fn := range opts {
		fn(o)
	}

	db := testdb.New(t)
	f := fixtures.New(db.Store, db.Keys)
	clk := clock.NewFixed(f.Now)

	env := &testEnv{db: db, f: f, now: f.Now}
	env.sessions = NewSessionService(SessionServiceConfig{
		Identities:      f.Identities,
		Sessions:        repository.NewSessionRepository(db.Store, db.Keys),
		AllowRoleSwitch: o.allowRoleSwitch,
	})
	env.clubs = NewClubService(ClubServiceConfig{
		Clubs:         f.Clubs,
		Memberships:   f.Memberships,
		Identities:    f.Identities,
		Events:        f.Events,
		Registrations: f.Registrations,
		Clock:         clk,
	})
	env.events = NewEventService(EventServiceConfig{
		Events:        f.Events,
		Registrations: f.Registrations,
		Clubs:         f.Clubs,
		Clock:         clk,
	})
	env.reports = NewReportService(ReportServiceConfig{
		Events:        f.Events,
		Clubs:         f.Clubs,
		Registrations: f.Registrations,
		Identities:    f.Identities,
		Clock:         clk,
	})
	env.announcements = NewAnnouncementService(f.Announcements)
	env.seeder = NewSeederService(SeederServiceConfig{
		Identities:    f.Identities,
		Clubs:         f.Clubs,
		Memberships:   f.Memberships,
		Events:        f.Events,
		Registrations: f.Registrations,
		Announcements: f.Announcements,
		Clock:         clk,
	})
	return env
}

// seed loads the demo dataset and fails the test on error
func (e *testEnv) seed(t *testing.T) {
	t.Helper()
	if _, err := e.seeder.Seed(e.db.Ctx()); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
}

// signIn returns a session authenticated as id
func signIn(id *model.Identity) *model.Session {
	return model.NewSession(id)
}

func clubIDs(clubs []model.Club) []string {
	ids := make([]string, 0, len(clubs))
	for _, c := range clubs {
		ids = append(ids, c.ID)
	}
	return ids
}

func eventIDs(events []model.Event) []string {
	ids := make([]string, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}
	return ids
}
