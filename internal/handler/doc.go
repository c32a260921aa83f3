// Package handler provides the HTTP surface of the ClubHive API.
//
// Each handler struct wraps the services for one feature area (session,
// clubs, events) and registers its own routes on a *http.ServeMux using
// method-qualified patterns.
//
// # Handler Pattern
//
//   - Constructor function (NewXxxHandler) accepts the services it needs
//   - RegisterRoutes wires endpoints, wrapping gated ones in
//     middleware.RequireSession or middleware.RequireAdmin
//   - Response helpers from response.go standardize output format
//   - Errors are mapped to RFC 9457 Problem Details responses
//
// # Response Format
//
//   - WriteData: Single resource or list under "data" with optional links
//   - WriteJSON: Raw JSON response
//   - WriteAttachment: File download (attendance reports)
//   - WriteError: RFC 9457 Problem Details error response
//
// # Sessions
//
// There is one signed-in identity per process. The session middleware
// attaches it to every request; handlers read it with
// middleware.GetSession and pass it to the services.
//
// # Example Usage
//
//	mux := http.NewServeMux()
//	NewClubHandler(clubs, announcements).RegisterRoutes(mux)
//	NewEventHandler(events, reports).RegisterRoutes(mux)
package handler
