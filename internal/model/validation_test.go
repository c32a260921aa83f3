package model

import (
	"strings"
	"testing"
)

func intPtr(v int) *int { return &v }

func hasFieldError(errors []FieldError, field string) bool {
	for _, e := range errors {
		if e.Field == field {
			return true
		}
	}
	return false
}

// ============================================================================
// CreateClubRequest Tests
// ============================================================================

func TestCreateClubRequest_Validate_Valid(t *testing.T) {
	t.Parallel()

	req := &CreateClubRequest{Name: "Chess Club", Description: "Weekly games"}

	if errors := req.Validate(); len(errors) > 0 {
		t.Errorf("expected no errors, got %v", errors)
	}
}

func TestCreateClubRequest_Validate_MissingName(t *testing.T) {
	t.Parallel()

	req := &CreateClubRequest{Name: "   ", Description: "Weekly games"}

	errors := req.Validate()
	if len(errors) != 1 || errors[0].Field != "name" {
		t.Errorf("expected name error, got %v", errors)
	}
}

func TestCreateClubRequest_Validate_NameTooLong(t *testing.T) {
	t.Parallel()

	req := &CreateClubRequest{Name: strings.Repeat("a", MaxClubNameLength+1)}

	if !hasFieldError(req.Validate(), "name") {
		t.Error("expected name length error")
	}
}

func TestCreateClubRequest_Validate_DescriptionTooLong(t *testing.T) {
	t.Parallel()

	req := &CreateClubRequest{Name: "Chess", Description: strings.Repeat("d", MaxClubDescriptionLength+1)}

	if !hasFieldError(req.Validate(), "description") {
		t.Error("expected description length error")
	}
}

// ============================================================================
// CreateEventRequest Tests
// ============================================================================

func validEventRequest() *CreateEventRequest {
	return &CreateEventRequest{
		ClubID:   "club-1",
		Title:    "Robotics Demo",
		Date:     "2026-11-02",
		Time:     "17:30",
		Location: "Lab 4",
	}
}

func TestCreateEventRequest_Validate_Valid(t *testing.T) {
	t.Parallel()

	if errors := validEventRequest().Validate(); len(errors) > 0 {
		t.Errorf("expected no errors, got %v", errors)
	}
}

func TestCreateEventRequest_Validate_RequiredFields(t *testing.T) {
	t.Parallel()

	errors := (&CreateEventRequest{}).Validate()

	for _, field := range []string{"club_id", "title", "date", "location"} {
		if !hasFieldError(errors, field) {
			t.Errorf("expected %s error, got %v", field, errors)
		}
	}
	if hasFieldError(errors, "time") {
		t.Error("time is optional")
	}
}

func TestCreateEventRequest_Validate_BadDate(t *testing.T) {
	t.Parallel()

	req := validEventRequest()
	req.Date = "11/02/2026"

	if !hasFieldError(req.Validate(), "date") {
		t.Error("expected date format error")
	}
}

func TestCreateEventRequest_Validate_BadTime(t *testing.T) {
	t.Parallel()

	req := validEventRequest()
	req.Time = "5pm"

	if !hasFieldError(req.Validate(), "time") {
		t.Error("expected time format error")
	}
}

func TestCreateEventRequest_Validate_NegativeCapacity(t *testing.T) {
	t.Parallel()

	req := validEventRequest()
	req.Capacity = intPtr(-1)

	if !hasFieldError(req.Validate(), "capacity") {
		t.Error("expected capacity error")
	}
}

func TestCreateEventRequest_NormalizedCapacity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		capacity *int
		want     *int
	}{
		{"absent", nil, nil},
		{"zero kept", intPtr(0), intPtr(0)},
		{"positive", intPtr(50), intPtr(50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validEventRequest()
			req.Capacity = tt.capacity
			got := req.NormalizedCapacity()
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("expected %d, got %d", *tt.want, *got)
			}
		})
	}
}

// ============================================================================
// Session Request Tests
// ============================================================================

func TestLoginRequest_Validate_MissingEmail(t *testing.T) {
	t.Parallel()

	req := &LoginRequest{Password: "ignored"}

	if !hasFieldError(req.Validate(), "email") {
		t.Error("expected email error")
	}
}

func TestSwitchRoleRequest_Validate(t *testing.T) {
	t.Parallel()

	if errors := (&SwitchRoleRequest{Role: RoleAdmin}).Validate(); len(errors) > 0 {
		t.Errorf("expected no errors, got %v", errors)
	}
	if !hasFieldError((&SwitchRoleRequest{Role: "owner"}).Validate(), "role") {
		t.Error("expected role error for unknown role")
	}
	if !hasFieldError((&SwitchRoleRequest{}).Validate(), "role") {
		t.Error("expected role error for empty role")
	}
}

func TestCheckInRequest_Validate_MissingToken(t *testing.T) {
	t.Parallel()

	if !hasFieldError((&CheckInRequest{}).Validate(), "pass_token") {
		t.Error("expected pass_token error")
	}
}
