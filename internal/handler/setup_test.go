package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/forgo/clubhive/api/internal/clock"
	"github.com/forgo/clubhive/api/internal/middleware"
	"github.com/forgo/clubhive/api/internal/model"
	"github.com/forgo/clubhive/api/internal/repository"
	"github.com/forgo/clubhive/api/internal/service"
	"github.com/forgo/clubhive/api/internal/testing/fixtures"
	"github.com/forgo/clubhive/api/internal/testing/testdb"
)

// ============================================================================
// Test Server
// ============================================================================

// testServer routes requests through every handler over one seeded store.
// The session is shared by all requests, like the running server.
type testServer struct {
	db      *testdb.TestDB
	f       *fixtures.Factory
	sess    *model.Session
	handler http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db := testdb.New(t)
	f := fixtures.New(db.Store, db.Keys)
	clk := clock.NewFixed(f.Now)

	sessions := service.NewSessionService(service.SessionServiceConfig{
		Identities:      f.Identities,
		Sessions:        repository.NewSessionRepository(db.Store, db.Keys),
		AllowRoleSwitch: true,
	})
	clubs := service.NewClubService(service.ClubServiceConfig{
		Clubs:         f.Clubs,
		Memberships:   f.Memberships,
		Identities:    f.Identities,
		Events:        f.Events,
		Registrations: f.Registrations,
		Clock:         clk,
	})
	events := service.NewEventService(service.EventServiceConfig{
		Events:        f.Events,
		Registrations: f.Registrations,
		Clubs:         f.Clubs,
		Clock:         clk,
	})
	reports := service.NewReportService(service.ReportServiceConfig{
		Events:        f.Events,
		Clubs:         f.Clubs,
		Registrations: f.Registrations,
		Identities:    f.Identities,
		Clock:         clk,
	})
	seeder := service.NewSeederService(service.SeederServiceConfig{
		Identities:    f.Identities,
		Clubs:         f.Clubs,
		Memberships:   f.Memberships,
		Events:        f.Events,
		Registrations: f.Registrations,
		Announcements: f.Announcements,
		Clock:         clk,
	})
	if _, err := seeder.Seed(db.Ctx()); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	mux := http.NewServeMux()
	NewSessionHandler(sessions).RegisterRoutes(mux)
	NewClubHandler(clubs, service.NewAnnouncementService(f.Announcements)).RegisterRoutes(mux)
	NewEventHandler(events, reports).RegisterRoutes(mux)
	NewHealthHandler(db.Backend, db.Store).RegisterRoutes(mux)

	sess := &model.Session{}
	return &testServer{
		db:      db,
		f:       f,
		sess:    sess,
		handler: middleware.Session(sess)(mux),
	}
}

// do serves the request and returns the recorded response
func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	s.handler.ServeHTTP(rr, req)
	return rr
}

// signInAs sets the shared session to the seeded identity with the given ID
func (s *testServer) signInAs(t *testing.T, id string) {
	t.Helper()
	identity, err := s.f.Identities.GetByID(s.db.Ctx(), id)
	if err != nil || identity == nil {
		t.Fatalf("identity %s not found: %v", id, err)
	}
	s.sess.Set(identity)
}
