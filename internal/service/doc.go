// Package service implements the business logic layer for the ClubHive API.
//
// The service package contains all domain logic, validation rules, and
// role checks. Services are the primary abstraction between HTTP handlers
// (or the clubctl command) and the collection repositories.
//
// # Service Pattern
//
// All services follow a consistent pattern:
//
//   - Constructor function (NewXxxService) accepts a config struct with repository dependencies
//   - Methods that act on behalf of someone take the *model.Session explicitly
//   - Errors are returned as sentinel errors or *model.ProblemDetails for validation
//   - Context is passed through to every store call
//
// # Repository Interfaces
//
// Services define their own repository interfaces, so tests can swap a
// single dependency for a function-field mock while the rest run against
// a real store.
//
// # Concurrency
//
// Stored collections are rewritten whole. ClubService and EventService hold
// a mutex around their read-modify-write sequences so one process never
// loses its own updates. Nothing coordinates separate processes.
//
// # Example Usage
//
//	clubs := NewClubService(ClubServiceConfig{
//	    Clubs:       clubRepository,
//	    Memberships: membershipRepository,
//	    Identities:  identityRepository,
//	})
//	membership, err := clubs.Join(ctx, session, "club-2")
package service
