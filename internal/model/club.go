package model

import (
	"fmt"
	"strings"
	"time"
)

// Club represents a student organization owned by an admin
type Club struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url,omitempty"`
	OwnerID     string    `json:"owner_id"`
	CreatedOn   time.Time `json:"created_on"`
}

// ClubSummary is a club with the counts shown on the admin dashboard
type ClubSummary struct {
	Club              Club `json:"club"`
	MemberCount       int  `json:"member_count"`
	EventCount        int  `json:"event_count"`
	RegistrationCount int  `json:"registration_count"`
}

// Business constraints
const (
	MaxClubNameLength        = 100
	MaxClubDescriptionLength = 1000
)

// CreateClubRequest represents a request to create a club
type CreateClubRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url,omitempty"`
}

// Validate validates the create club request
func (r *CreateClubRequest) Validate() []FieldError {
	var errors []FieldError
	name := strings.TrimSpace(r.Name)
	if name == "" {
		errors = append(errors, FieldError{Field: "name", Message: "name is required"})
	} else if len(name) > MaxClubNameLength {
		errors = append(errors, FieldError{Field: "name", Message: fmt.Sprintf("name must be %d characters or less", MaxClubNameLength)})
	}
	if len(r.Description) > MaxClubDescriptionLength {
		errors = append(errors, FieldError{Field: "description", Message: fmt.Sprintf("description must be %d characters or less", MaxClubDescriptionLength)})
	}
	return errors
}
