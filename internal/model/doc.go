// Package model defines domain entities and data structures for the ClubHive API.
//
// The model package contains the struct definitions for domain objects,
// request types with their validation, the attendance report snapshot and
// error definitions. Models are used across all layers of the application.
//
// # Domain Entities
//
//   - Identity: a student or admin who can sign in
//   - Club: a student organization owned by an admin identity
//   - Membership: links an identity to a club, unique per (club, user)
//   - Event: a scheduled club gathering with an optional capacity
//   - Registration: an identity's sign-up for an event, carrying a pass token
//   - Announcement: a read-only notice posted to a club
//
// # Session
//
// Session holds the identity acting in the current process. It is passed by
// reference into every service call rather than read from global state.
//
// # JSON Serialization
//
// All models use snake_case json struct tags:
//
//	type Club struct {
//	    ID      string `json:"id"`
//	    Name    string `json:"name"`
//	    OwnerID string `json:"owner_id"`
//	}
//
// # Error Types
//
// RFC 9457 Problem Details errors are defined in errors.go. Request types
// expose Validate() []FieldError; a non-empty result is returned to callers
// as NewValidationError(errors).
package model
