package handler

import (
	"net/http"

	"github.com/forgo/clubhive/api/internal/middleware"
	"github.com/forgo/clubhive/api/internal/model"
	"github.com/forgo/clubhive/api/internal/service"
)

// ClubHandler handles club HTTP requests
type ClubHandler struct {
	clubs         *service.ClubService
	announcements *service.AnnouncementService
}

// NewClubHandler creates a new club handler
func NewClubHandler(clubs *service.ClubService, announcements *service.AnnouncementService) *ClubHandler {
	return &ClubHandler{clubs: clubs, announcements: announcements}
}

// RegisterRoutes registers club routes
func (h *ClubHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/clubs", h.List)
	mux.Handle("POST /v1/clubs", middleware.RequireAdmin(http.HandlerFunc(h.Create)))
	mux.HandleFunc("GET /v1/clubs/mine", h.Mine)
	mux.HandleFunc("GET /v1/clubs/others", h.Others)
	mux.Handle("GET /v1/clubs/managed", middleware.RequireAdmin(http.HandlerFunc(h.Managed)))
	mux.HandleFunc("GET /v1/clubs/{clubId}", h.Get)
	mux.Handle("POST /v1/clubs/{clubId}/join", middleware.RequireSession(http.HandlerFunc(h.Join)))
	mux.Handle("GET /v1/clubs/{clubId}/members", middleware.RequireAdmin(http.HandlerFunc(h.Members)))
	mux.HandleFunc("GET /v1/clubs/{clubId}/announcements", h.Announcements)
}

// List handles GET /v1/clubs - every club
func (h *ClubHandler) List(w http.ResponseWriter, r *http.Request) {
	clubs, err := h.clubs.ListAll(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusOK, clubs, nil)
}

// Create handles POST /v1/clubs - create a club owned by the caller
func (h *ClubHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateClubRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	ctx := r.Context()
	club, err := h.clubs.Create(ctx, middleware.GetSession(ctx), &req)
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "create club"))
		return
	}

	WriteData(w, http.StatusCreated, club, map[string]string{
		"self": "/v1/clubs/" + club.ID,
	})
}

// Mine handles GET /v1/clubs/mine - clubs joined (students) or owned (admins)
func (h *ClubHandler) Mine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	clubs, err := h.clubs.ListMine(ctx, middleware.GetSession(ctx))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusOK, clubs, nil)
}

// Others handles GET /v1/clubs/others
func (h *ClubHandler) Others(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	clubs, err := h.clubs.ListOthers(ctx, middleware.GetSession(ctx))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusOK, clubs, nil)
}

// Managed handles GET /v1/clubs/managed - owned clubs with counts
func (h *ClubHandler) Managed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	summaries, err := h.clubs.ListManaged(ctx, middleware.GetSession(ctx))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusOK, summaries, nil)
}

// Get handles GET /v1/clubs/{clubId}
func (h *ClubHandler) Get(w http.ResponseWriter, r *http.Request) {
	club, err := h.clubs.Get(r.Context(), r.PathValue("clubId"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusOK, club, map[string]string{
		"self":          "/v1/clubs/" + club.ID,
		"events":        "/v1/events?club_id=" + club.ID,
		"announcements": "/v1/clubs/" + club.ID + "/announcements",
	})
}

// Join handles POST /v1/clubs/{clubId}/join
func (h *ClubHandler) Join(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	membership, err := h.clubs.Join(ctx, middleware.GetSession(ctx), r.PathValue("clubId"))
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "join club"))
		return
	}
	WriteData(w, http.StatusOK, membership, nil)
}

// Members handles GET /v1/clubs/{clubId}/members - owner only
func (h *ClubHandler) Members(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	members, err := h.clubs.Members(ctx, middleware.GetSession(ctx), r.PathValue("clubId"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusOK, members, nil)
}

// Announcements handles GET /v1/clubs/{clubId}/announcements
func (h *ClubHandler) Announcements(w http.ResponseWriter, r *http.Request) {
	anns, err := h.announcements.ListFor(r.Context(), r.PathValue("clubId"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusOK, anns, nil)
}
