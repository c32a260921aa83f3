package model

import "time"

// Role distinguishes students from club administrators
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// IsValid returns true if the role is a known role
func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleAdmin:
		return true
	default:
		return false
	}
}

// Identity represents a person who can sign in
type Identity struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Role       Role      `json:"role"`
	Department string    `json:"department,omitempty"`
	Year       *int      `json:"year,omitempty"`
	CreatedOn  time.Time `json:"created_on"`
}

// IsAdmin returns true if the identity administers clubs
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}

// LoginRequest represents a sign-in attempt. Password is accepted and ignored.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

// Validate validates the login request
func (r *LoginRequest) Validate() []FieldError {
	var errors []FieldError
	if r.Email == "" {
		errors = append(errors, FieldError{Field: "email", Message: "email is required"})
	}
	return errors
}

// SwitchRoleRequest represents a demo role switch
type SwitchRoleRequest struct {
	Role Role `json:"role"`
}

// Validate validates the switch role request
func (r *SwitchRoleRequest) Validate() []FieldError {
	var errors []FieldError
	if r.Role == "" {
		errors = append(errors, FieldError{Field: "role", Message: "role is required"})
	} else if !r.Role.IsValid() {
		errors = append(errors, FieldError{Field: "role", Message: "role must be student or admin"})
	}
	return errors
}
