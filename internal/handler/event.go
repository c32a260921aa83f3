package handler

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/forgo/clubhive/api/internal/export"
	"github.com/forgo/clubhive/api/internal/middleware"
	"github.com/forgo/clubhive/api/internal/model"
	"github.com/forgo/clubhive/api/internal/service"
)

// DefaultUpcomingLimit is used when ?limit is absent
const DefaultUpcomingLimit = 5

// EventHandler handles event, registration and report requests
type EventHandler struct {
	events  *service.EventService
	reports *service.ReportService
}

// NewEventHandler creates a new event handler
func NewEventHandler(events *service.EventService, reports *service.ReportService) *EventHandler {
	return &EventHandler{events: events, reports: reports}
}

// RegisterRoutes registers event routes
func (h *EventHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/events", h.List)
	mux.Handle("POST /v1/events", middleware.RequireAdmin(http.HandlerFunc(h.Create)))
	mux.HandleFunc("GET /v1/events/upcoming", h.Upcoming)
	mux.Handle("GET /v1/events/managed", middleware.RequireAdmin(http.HandlerFunc(h.Managed)))
	mux.HandleFunc("GET /v1/events/{eventId}", h.Get)
	mux.Handle("POST /v1/events/{eventId}/register", middleware.RequireSession(http.HandlerFunc(h.Register)))
	mux.HandleFunc("GET /v1/events/{eventId}/registration", h.MyRegistration)
	mux.Handle("GET /v1/events/{eventId}/registrations", middleware.RequireAdmin(http.HandlerFunc(h.Registrations)))
	mux.Handle("GET /v1/events/{eventId}/report", middleware.RequireAdmin(http.HandlerFunc(h.Report)))
	mux.Handle("POST /v1/checkins", middleware.RequireAdmin(http.HandlerFunc(h.CheckIn)))
}

// List handles GET /v1/events?club_id=
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := model.EventFilter{ClubID: r.URL.Query().Get("club_id")}
	events, err := h.events.List(r.Context(), filter)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusOK, events, nil)
}

// Upcoming handles GET /v1/events/upcoming?limit=
func (h *EventHandler) Upcoming(w http.ResponseWriter, r *http.Request) {
	limit := DefaultUpcomingLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			WriteError(w, model.NewValidationError([]model.FieldError{
				{Field: "limit", Message: "limit must be a positive integer"},
			}))
			return
		}
		limit = n
	}

	events, err := h.events.ListUpcoming(r.Context(), limit)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusOK, events, nil)
}

// Managed handles GET /v1/events/managed - events of clubs the caller owns
func (h *EventHandler) Managed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	events, err := h.events.ListManaged(ctx, middleware.GetSession(ctx))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusOK, events, nil)
}

// Create handles POST /v1/events
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateEventRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	ctx := r.Context()
	event, err := h.events.Create(ctx, middleware.GetSession(ctx), &req)
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "create event"))
		return
	}

	WriteData(w, http.StatusCreated, event, map[string]string{
		"self": "/v1/events/" + event.ID,
	})
}

// Get handles GET /v1/events/{eventId}
func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	event, err := h.events.Get(r.Context(), r.PathValue("eventId"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusOK, event, map[string]string{
		"self": "/v1/events/" + event.ID,
		"club": "/v1/clubs/" + event.ClubID,
	})
}

// Register handles POST /v1/events/{eventId}/register
func (h *EventHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reg, err := h.events.Register(ctx, middleware.GetSession(ctx), r.PathValue("eventId"))
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "register"))
		return
	}
	WriteData(w, http.StatusOK, reg, nil)
}

// MyRegistration handles GET /v1/events/{eventId}/registration.
// Data is null when the caller is anonymous or has not registered.
func (h *EventHandler) MyRegistration(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reg, err := h.events.MyRegistration(ctx, middleware.GetSession(ctx), r.PathValue("eventId"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusOK, reg, nil)
}

// Registrations handles GET /v1/events/{eventId}/registrations
func (h *EventHandler) Registrations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	regs, err := h.events.RegistrationsFor(ctx, middleware.GetSession(ctx), r.PathValue("eventId"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusOK, regs, nil)
}

// Report handles GET /v1/events/{eventId}/report?format=json|yaml|cbor
func (h *EventHandler) Report(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		WriteError(w, model.NewBadRequestError(err.Error()))
		return
	}

	ctx := r.Context()
	report, err := h.reports.BuildReport(ctx, middleware.GetSession(ctx), r.PathValue("eventId"))
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "build report"))
		return
	}

	var buf bytes.Buffer
	if err := export.Encode(&buf, report, format); err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "encode report"))
		return
	}
	WriteAttachment(w, export.Filename(report.Event, format), format.ContentType(), buf.Bytes())
}

// CheckIn handles POST /v1/checkins
func (h *EventHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req model.CheckInRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	ctx := r.Context()
	reg, err := h.events.CheckIn(ctx, middleware.GetSession(ctx), req.PassToken)
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "check in"))
		return
	}
	WriteData(w, http.StatusOK, reg, nil)
}
