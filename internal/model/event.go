package model

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Layouts for the calendar fields of an event
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// MaxEventTitleLength bounds event titles
const MaxEventTitleLength = 200

// Event represents a scheduled club gathering
type Event struct {
	ID          string    `json:"id"`
	ClubID      string    `json:"club_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`           // YYYY-MM-DD
	Time        string    `json:"time,omitempty"` // HH:MM
	Location    string    `json:"location"`
	Capacity    *int      `json:"capacity,omitempty"` // nil = unbounded
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedOn   time.Time `json:"created_on"`
}

// IsUnbounded returns true if the event has no capacity limit
func (e *Event) IsUnbounded() bool {
	return e.Capacity == nil
}

// OnOrAfter returns true if the event falls on the given day or later
func (e *Event) OnOrAfter(day time.Time) bool {
	return e.Date >= day.Format(DateLayout)
}

// EventFilter narrows event listings
type EventFilter struct {
	ClubID string
}

// Matches returns true if the event passes the filter
func (f EventFilter) Matches(e *Event) bool {
	return f.ClubID == "" || e.ClubID == f.ClubID
}

// SortEventsBySchedule orders events by date then time, keeping store
// order for ties.
func SortEventsBySchedule(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Date != events[j].Date {
			return events[i].Date < events[j].Date
		}
		return events[i].Time < events[j].Time
	})
}

// CreateEventRequest represents a request to create an event
type CreateEventRequest struct {
	ClubID      string `json:"club_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time,omitempty"`
	Location    string `json:"location"`
	Capacity    *int   `json:"capacity,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

// Validate validates the create event request
func (r *CreateEventRequest) Validate() []FieldError {
	var errors []FieldError
	if r.ClubID == "" {
		errors = append(errors, FieldError{Field: "club_id", Message: "club_id is required"})
	}
	title := strings.TrimSpace(r.Title)
	if title == "" {
		errors = append(errors, FieldError{Field: "title", Message: "title is required"})
	} else if len(title) > MaxEventTitleLength {
		errors = append(errors, FieldError{Field: "title", Message: fmt.Sprintf("title must be %d characters or less", MaxEventTitleLength)})
	}
	if r.Date == "" {
		errors = append(errors, FieldError{Field: "date", Message: "date is required"})
	} else if _, err := time.Parse(DateLayout, r.Date); err != nil {
		errors = append(errors, FieldError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}
	if r.Time != "" {
		if _, err := time.Parse(TimeLayout, r.Time); err != nil {
			errors = append(errors, FieldError{Field: "time", Message: "time must be in HH:MM format"})
		}
	}
	if strings.TrimSpace(r.Location) == "" {
		errors = append(errors, FieldError{Field: "location", Message: "location is required"})
	}
	if r.Capacity != nil && *r.Capacity < 0 {
		errors = append(errors, FieldError{Field: "capacity", Message: "capacity must be 0 or greater"})
	}
	return errors
}

// NormalizedCapacity returns a copy of the capacity to store. Only an absent
// capacity means unbounded; zero is kept as given.
func (r *CreateEventRequest) NormalizedCapacity() *int {
	if r.Capacity == nil {
		return nil
	}
	c := *r.Capacity
	return &c
}
