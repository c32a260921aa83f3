package model

import (
	"strings"
	"time"
)

// Registration records an identity's sign-up for an event.
// At most one per (event, user); the pass token is minted once.
type Registration struct {
	ID           string     `json:"id"`
	EventID      string     `json:"event_id"`
	UserID       string     `json:"user_id"`
	RegisteredOn time.Time  `json:"registered_on"`
	Attended     bool       `json:"attended"`
	PassToken    string     `json:"pass_token"`
	CheckedInOn  *time.Time `json:"checked_in_on,omitempty"`
}

// CheckInRequest represents a pass token presented at the door
type CheckInRequest struct {
	PassToken string `json:"pass_token"`
}

// Validate validates the check-in request
func (r *CheckInRequest) Validate() []FieldError {
	var errors []FieldError
	if strings.TrimSpace(r.PassToken) == "" {
		errors = append(errors, FieldError{Field: "pass_token", Message: "pass_token is required"})
	}
	return errors
}
