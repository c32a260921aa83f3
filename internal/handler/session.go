package handler

import (
	"log/slog"
	"net/http"

	"github.com/forgo/clubhive/api/internal/middleware"
	"github.com/forgo/clubhive/api/internal/model"
	"github.com/forgo/clubhive/api/internal/service"
)

// SessionHandler handles sign-in endpoints
type SessionHandler struct {
	svc *service.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(svc *service.SessionService) *SessionHandler {
	return &SessionHandler{svc: svc}
}

// RegisterRoutes registers session routes
func (h *SessionHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/session", h.Get)
	mux.HandleFunc("POST /v1/session/login", h.Login)
	mux.HandleFunc("POST /v1/session/logout", h.Logout)
	mux.Handle("POST /v1/session/role", middleware.RequireSession(http.HandlerFunc(h.SwitchRole)))
}

// Get handles GET /v1/session - the signed-in identity, or null
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	WriteData(w, http.StatusOK, h.svc.Current(sess), nil)
}

// Login handles POST /v1/session/login
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if errors := req.Validate(); len(errors) > 0 {
		WriteError(w, model.NewValidationError(errors))
		return
	}

	ctx := r.Context()
	sess := middleware.GetSession(ctx)
	ok, err := h.svc.Login(ctx, sess, req.Email)
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "login"))
		return
	}
	if !ok {
		pd := model.NewUnauthorizedError("no account matches that email")
		pd.Code = model.ErrCodeLoginFailed
		WriteError(w, pd)
		return
	}

	WriteData(w, http.StatusOK, h.svc.Current(sess), map[string]string{
		"self": "/v1/session",
	})
}

// Logout handles POST /v1/session/logout
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.svc.Logout(ctx, middleware.GetSession(ctx)); err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "logout"))
		return
	}
	WriteNoContent(w)
}

// SwitchRole handles POST /v1/session/role
func (h *SessionHandler) SwitchRole(w http.ResponseWriter, r *http.Request) {
	var req model.SwitchRoleRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if errors := req.Validate(); len(errors) > 0 {
		WriteError(w, model.NewValidationError(errors))
		return
	}

	ctx := r.Context()
	sess := middleware.GetSession(ctx)
	ok, err := h.svc.SwitchRole(ctx, sess, req.Role)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	if !ok {
		slog.Info("role switch found no identity", slog.String("role", string(req.Role)))
		WriteError(w, model.NewNotFoundError(string(req.Role)+" identity"))
		return
	}

	WriteData(w, http.StatusOK, h.svc.Current(sess), nil)
}
