package handler

import (
	"mime"
	"net/http"
	"strings"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/forgo/clubhive/api/internal/model"
	"github.com/forgo/clubhive/api/internal/testing/helpers"
)

func decodeEventIDs(t *testing.T, srv *testServer, path string) []string {
	t.Helper()
	resp := srv.do(helpers.NewRequest(t, http.MethodGet, path).Build())
	helpers.AssertStatus(t, resp, http.StatusOK)

	var events []model.Event
	helpers.DecodeData(t, resp, &events)
	ids := make([]string, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}
	return ids
}

// register signs in as userID and registers for the event
func (s *testServer) register(t *testing.T, userID, eventID string) model.Registration {
	t.Helper()
	s.signInAs(t, userID)
	resp := s.do(helpers.NewRequest(t, http.MethodPost, "/v1/events/"+eventID+"/register").Build())
	helpers.AssertStatus(t, resp, http.StatusOK)

	var reg model.Registration
	helpers.DecodeData(t, resp, &reg)
	return reg
}

// ============================================================================
// Listing
// ============================================================================

func TestEventHandler_List(t *testing.T) {
	tests := []struct {
		name string
		path string
		want []string
	}{
		{"all", "/v1/events", []string{"event-1", "event-2", "event-3"}},
		{"club filter", "/v1/events?club_id=club-1", []string{"event-1", "event-2"}},
		{"club without events", "/v1/events?club_id=club-2", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t)
			if ids := decodeEventIDs(t, srv, tt.path); !equalIDs(ids, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, ids)
			}
		})
	}
}

func TestEventHandler_Upcoming(t *testing.T) {
	srv := newTestServer(t)

	if ids := decodeEventIDs(t, srv, "/v1/events/upcoming"); !equalIDs(ids, []string{"event-1", "event-3", "event-2"}) {
		t.Errorf("unexpected order: %v", ids)
	}
	if ids := decodeEventIDs(t, srv, "/v1/events/upcoming?limit=2"); !equalIDs(ids, []string{"event-1", "event-3"}) {
		t.Errorf("unexpected limited list: %v", ids)
	}
}

func TestEventHandler_Upcoming_InvalidLimit(t *testing.T) {
	srv := newTestServer(t)

	for _, limit := range []string{"0", "-1", "ten"} {
		resp := srv.do(helpers.NewRequest(t, http.MethodGet, "/v1/events/upcoming?limit="+limit).Build())
		helpers.AssertValidationError(t, resp, "limit")
	}
}

func TestEventHandler_Get_NotFound(t *testing.T) {
	srv := newTestServer(t)

	resp := srv.do(helpers.NewRequest(t, http.MethodGet, "/v1/events/event-404").Build())

	helpers.AssertProblemDetails(t, resp, http.StatusNotFound, model.ErrCodeNotFound)
}

// ============================================================================
// POST /v1/events
// ============================================================================

func TestEventHandler_Create(t *testing.T) {
	srv := newTestServer(t)
	srv.signInAs(t, "admin-1")

	resp := srv.do(helpers.NewRequest(t, http.MethodPost, "/v1/events").
		WithBody(model.CreateEventRequest{
			ClubID:   "club-2",
			Title:    "Life Drawing",
			Date:     "2026-02-01",
			Time:     "17:30",
			Location: "Studio B",
			Capacity: helpers.IntPtr(0),
		}).
		Build())

	helpers.AssertStatus(t, resp, http.StatusCreated)
	var event model.Event
	helpers.DecodeData(t, resp, &event)
	if event.ClubID != "club-2" || event.IsUnbounded() || event.Capacity == nil || *event.Capacity != 0 {
		t.Errorf("unexpected event: %+v", event)
	}
	if ids := decodeEventIDs(t, srv, "/v1/events?club_id=club-2"); !equalIDs(ids, []string{event.ID}) {
		t.Errorf("expected new event listed, got %v", ids)
	}
}

func TestEventHandler_Create_Validation(t *testing.T) {
	srv := newTestServer(t)
	srv.signInAs(t, "admin-1")

	resp := srv.do(helpers.NewRequest(t, http.MethodPost, "/v1/events").
		WithBody(model.CreateEventRequest{ClubID: "club-1", Title: "No date", Location: "Lab"}).
		Build())

	helpers.AssertValidationError(t, resp, "date")
}

func TestEventHandler_Create_Student(t *testing.T) {
	srv := newTestServer(t)
	srv.signInAs(t, "user-1")

	resp := srv.do(helpers.NewRequest(t, http.MethodPost, "/v1/events").
		WithBody(model.CreateEventRequest{ClubID: "club-1", Title: "Sneaky", Date: "2026-02-01", Location: "Lab"}).
		Build())

	helpers.AssertProblemDetails(t, resp, http.StatusForbidden, model.ErrCodeForbidden)
}

// ============================================================================
// Registration
// ============================================================================

func TestEventHandler_Register(t *testing.T) {
	srv := newTestServer(t)

	first := srv.register(t, "user-1", "event-1")
	second := srv.register(t, "user-1", "event-1")

	if first.PassToken == "" {
		t.Fatal("expected a pass token")
	}
	if first.ID != second.ID || first.PassToken != second.PassToken {
		t.Errorf("expected idempotent registration, got %+v and %+v", first, second)
	}

	resp := srv.do(helpers.NewRequest(t, http.MethodGet, "/v1/events/event-1/registration").Build())
	helpers.AssertStatus(t, resp, http.StatusOK)
	var mine model.Registration
	helpers.DecodeData(t, resp, &mine)
	if mine.PassToken != first.PassToken {
		t.Errorf("expected own registration, got %+v", mine)
	}
}

func TestEventHandler_MyRegistration_None(t *testing.T) {
	srv := newTestServer(t)
	srv.signInAs(t, "user-1")

	resp := srv.do(helpers.NewRequest(t, http.MethodGet, "/v1/events/event-2/registration").Build())

	helpers.AssertStatus(t, resp, http.StatusOK)
	var reg *model.Registration
	helpers.DecodeData(t, resp, &reg)
	if reg != nil {
		t.Errorf("expected null registration, got %+v", reg)
	}
}

func TestEventHandler_MyRegistration_Anonymous(t *testing.T) {
	srv := newTestServer(t)
	srv.register(t, "user-1", "event-1")
	srv.sess.Clear()

	resp := srv.do(helpers.NewRequest(t, http.MethodGet, "/v1/events/event-1/registration").Build())

	helpers.AssertStatus(t, resp, http.StatusOK)
	var reg *model.Registration
	helpers.DecodeData(t, resp, &reg)
	if reg != nil {
		t.Errorf("expected null registration for anonymous caller, got %+v", reg)
	}
}

func TestEventHandler_Register_Errors(t *testing.T) {
	tests := []struct {
		name   string
		signIn string
		path   string
		status int
	}{
		{"anonymous", "", "/v1/events/event-1/register", http.StatusUnauthorized},
		{"unknown event", "user-1", "/v1/events/event-404/register", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t)
			if tt.signIn != "" {
				srv.signInAs(t, tt.signIn)
			}
			resp := srv.do(helpers.NewRequest(t, http.MethodPost, tt.path).Build())
			helpers.AssertStatus(t, resp, tt.status)
		})
	}
}

func TestEventHandler_Registrations(t *testing.T) {
	srv := newTestServer(t)
	srv.register(t, "user-1", "event-3")
	srv.signInAs(t, "admin-1")

	resp := srv.do(helpers.NewRequest(t, http.MethodGet, "/v1/events/event-3/registrations").Build())

	helpers.AssertStatus(t, resp, http.StatusOK)
	var regs []model.Registration
	helpers.DecodeData(t, resp, &regs)
	if len(regs) != 1 || regs[0].UserID != "user-1" {
		t.Errorf("unexpected registrations: %+v", regs)
	}
}

func TestEventHandler_Registrations_NotOwner(t *testing.T) {
	srv := newTestServer(t)
	srv.register(t, "user-1", "event-1")
	srv.sess.Set(srv.f.CreateAdmin(t))

	resp := srv.do(helpers.NewRequest(t, http.MethodGet, "/v1/events/event-1/registrations").Build())

	helpers.AssertStatus(t, resp, http.StatusForbidden)
	if strings.Contains(resp.Body.String(), "pass_token") {
		t.Errorf("pass tokens leaked to non-owner: %s", resp.Body.String())
	}
}

// ============================================================================
// POST /v1/checkins
// ============================================================================

func TestEventHandler_CheckIn(t *testing.T) {
	srv := newTestServer(t)
	reg := srv.register(t, "user-1", "event-1")
	srv.signInAs(t, "admin-1")

	resp := srv.do(helpers.NewRequest(t, http.MethodPost, "/v1/checkins").
		WithBody(model.CheckInRequest{PassToken: "  " + reg.PassToken + "\n"}).
		Build())

	helpers.AssertStatus(t, resp, http.StatusOK)
	var checked model.Registration
	helpers.DecodeData(t, resp, &checked)
	if !checked.Attended || checked.CheckedInOn == nil {
		t.Errorf("expected attendance recorded, got %+v", checked)
	}
}

func TestEventHandler_CheckIn_Errors(t *testing.T) {
	tests := []struct {
		name   string
		token  string
		status int
	}{
		{"blank token", "   ", http.StatusUnprocessableEntity},
		{"unknown token", "CH-doesnotexist", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t)
			srv.signInAs(t, "admin-1")

			resp := srv.do(helpers.NewRequest(t, http.MethodPost, "/v1/checkins").
				WithBody(model.CheckInRequest{PassToken: tt.token}).
				Build())

			helpers.AssertStatus(t, resp, tt.status)
		})
	}
}

// ============================================================================
// GET /v1/events/{eventId}/report
// ============================================================================

func TestEventHandler_Report_JSON(t *testing.T) {
	srv := newTestServer(t)
	srv.register(t, "user-1", "event-1")
	srv.signInAs(t, "admin-1")

	resp := srv.do(helpers.NewRequest(t, http.MethodGet, "/v1/events/event-1/report").Build())

	helpers.AssertStatus(t, resp, http.StatusOK)
	if ct := resp.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %s", ct)
	}
	_, params, err := mime.ParseMediaType(resp.Header().Get("Content-Disposition"))
	if err != nil {
		t.Fatalf("bad Content-Disposition: %v", err)
	}
	if want := "AI_Workshop:_Introduction_to_Machine_Learning_report.json"; params["filename"] != want {
		t.Errorf("expected filename %q, got %q", want, params["filename"])
	}

	var report model.EventReport
	helpers.DecodeResponse(t, resp, &report)
	if report.TotalRegistrations != 1 || report.FillRate == nil || *report.FillRate != 2 {
		t.Errorf("unexpected report: %+v", report)
	}
}

func TestEventHandler_Report_YAML(t *testing.T) {
	srv := newTestServer(t)
	srv.signInAs(t, "admin-1")

	resp := srv.do(helpers.NewRequest(t, http.MethodGet, "/v1/events/event-2/report?format=yaml").Build())

	helpers.AssertStatus(t, resp, http.StatusOK)
	if ct := resp.Header().Get("Content-Type"); ct != "application/yaml" {
		t.Errorf("expected application/yaml, got %s", ct)
	}
	if !strings.Contains(resp.Header().Get("Content-Disposition"), "Hackathon_2026_report.yaml") {
		t.Errorf("unexpected Content-Disposition: %s", resp.Header().Get("Content-Disposition"))
	}

	var report model.EventReport
	if err := yaml.Unmarshal(resp.Body.Bytes(), &report); err != nil {
		t.Fatalf("failed to decode yaml: %v", err)
	}
	if report.EventID != "event-2" || report.TotalRegistrations != 0 {
		t.Errorf("unexpected report: %+v", report)
	}
}

func TestEventHandler_Report_CBOR(t *testing.T) {
	srv := newTestServer(t)
	srv.register(t, "user-1", "event-3")
	srv.signInAs(t, "admin-1")

	resp := srv.do(helpers.NewRequest(t, http.MethodGet, "/v1/events/event-3/report?format=cbor").Build())

	helpers.AssertStatus(t, resp, http.StatusOK)
	var report model.EventReport
	if err := cbor.Unmarshal(resp.Body.Bytes(), &report); err != nil {
		t.Fatalf("failed to decode cbor: %v", err)
	}
	if len(report.Attendees) != 1 || report.Attendees[0].Name != "Alex Johnson" {
		t.Errorf("unexpected attendees: %+v", report.Attendees)
	}
}

func TestEventHandler_Report_Errors(t *testing.T) {
	tests := []struct {
		name   string
		signIn string
		path   string
		status int
	}{
		{"unsupported format", "admin-1", "/v1/events/event-1/report?format=xml", http.StatusBadRequest},
		{"unknown event", "admin-1", "/v1/events/event-404/report", http.StatusNotFound},
		{"student", "user-1", "/v1/events/event-1/report", http.StatusForbidden},
		{"anonymous", "", "/v1/events/event-1/report", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t)
			if tt.signIn != "" {
				srv.signInAs(t, tt.signIn)
			}
			resp := srv.do(helpers.NewRequest(t, http.MethodGet, tt.path).Build())
			helpers.AssertStatus(t, resp, tt.status)
		})
	}
}
