// Package middleware provides HTTP middleware for the ClubHive API.
//
// # Available Middleware
//
//   - RequestID, Logger, Recovery, CORS: request plumbing
//   - Compress: gzip responses via klauspost/compress
//   - Session: attaches the process-wide session to each request
//   - RequireSession, RequireAdmin: reject anonymous callers or non-admins
//   - RateLimit: token buckets per identity or remote host
//   - Idempotency: replays POST responses for a repeated Idempotency-Key
//
// # Session
//
// The server acts for a single signed-in identity at a time. The session
// middleware puts that shared session in the request context:
//
//	handler = middleware.Chain(mux, middleware.RequestID, middleware.Session(sess))
//
// Handlers and other middleware read it back:
//
//	sess := middleware.GetSession(r.Context())
//	userID := middleware.GetUserID(r.Context())
package middleware
