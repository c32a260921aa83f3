package middleware

import (
	"context"
	"net/http"

	"github.com/forgo/clubhive/api/internal/model"
)

// SessionKey is the context key for the acting session
const SessionKey contextKey = "session"

// Session returns a middleware that attaches sess to every request.
// The server runs as a single logical actor, so all requests share it.
func Session(sess *model.Session) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), SessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithSession returns a copy of ctx carrying sess
func WithSession(ctx context.Context, sess *model.Session) context.Context {
	return context.WithValue(ctx, SessionKey, sess)
}

// GetSession extracts the session from context.
// A request without one acts anonymously.
func GetSession(ctx context.Context) *model.Session {
	if sess, ok := ctx.Value(SessionKey).(*model.Session); ok && sess != nil {
		return sess
	}
	return &model.Session{}
}

// GetUserID returns the signed-in identity's ID, or "" when anonymous
func GetUserID(ctx context.Context) string {
	if id := GetSession(ctx).Current(); id != nil {
		return id.ID
	}
	return ""
}

// RequireSession rejects anonymous requests with 401
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !GetSession(r.Context()).IsAuthenticated() {
			model.NewUnauthorizedError("sign in required").WriteJSON(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects anonymous requests with 401 and non-admins with 403
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := GetSession(r.Context()).Current()
		if id == nil {
			model.NewUnauthorizedError("sign in required").WriteJSON(w)
			return
		}
		if !id.IsAdmin() {
			model.NewForbiddenError("admin role required").WriteJSON(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}
