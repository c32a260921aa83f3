package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Session Errors =====
var (
	ErrNotAuthenticated   = errors.New("not signed in")
	ErrIdentityNotFound   = errors.New("identity not found")
	ErrRoleSwitchDisabled = errors.New("role switching is disabled")
)

// ===== Authorization Errors =====
var (
	ErrNotAdmin     = errors.New("admin role required")
	ErrNotClubOwner = errors.New("not the owner of this club")
)

// ===== Club Errors =====
var (
	ErrClubNotFound = errors.New("club not found")
)

// ===== Event Errors =====
var (
	ErrEventNotFound        = errors.New("event not found")
	ErrRegistrationNotFound = errors.New("registration not found")
)
