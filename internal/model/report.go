package model

import "time"

// EventReport is a self-contained attendance snapshot for one event
type EventReport struct {
	EventID            string      `json:"event_id" yaml:"event_id" cbor:"event_id"`
	Event              string      `json:"event" yaml:"event" cbor:"event"`
	Date               string      `json:"date" yaml:"date" cbor:"date"`
	Time               string      `json:"time,omitempty" yaml:"time,omitempty" cbor:"time,omitempty"`
	Location           string      `json:"location" yaml:"location" cbor:"location"`
	Capacity           *int        `json:"capacity,omitempty" yaml:"capacity,omitempty" cbor:"capacity,omitempty"`
	Unbounded          bool        `json:"unbounded" yaml:"unbounded" cbor:"unbounded"`
	FillRate           *int        `json:"fill_rate,omitempty" yaml:"fill_rate,omitempty" cbor:"fill_rate,omitempty"` // percent
	TotalRegistrations int         `json:"total_registrations" yaml:"total_registrations" cbor:"total_registrations"`
	TotalAttended      int         `json:"total_attended" yaml:"total_attended" cbor:"total_attended"`
	Attendees          []ReportRow `json:"attendees" yaml:"attendees" cbor:"attendees"`
	GeneratedOn        time.Time   `json:"generated_on" yaml:"generated_on" cbor:"generated_on"`
}

// ReportRow is one registration resolved to its identity
type ReportRow struct {
	UserID       string    `json:"user_id" yaml:"user_id" cbor:"user_id"`
	Name         string    `json:"name" yaml:"name" cbor:"name"`
	Email        string    `json:"email" yaml:"email" cbor:"email"`
	Department   string    `json:"department,omitempty" yaml:"department,omitempty" cbor:"department,omitempty"`
	Year         *int      `json:"year,omitempty" yaml:"year,omitempty" cbor:"year,omitempty"`
	RegisteredOn time.Time `json:"registered_on" yaml:"registered_on" cbor:"registered_on"`
	Attended     bool      `json:"attended" yaml:"attended" cbor:"attended"`
}

// FillRatePercent returns round(100*registrations/capacity), or nil when
// the capacity is absent or zero.
func FillRatePercent(registrations int, capacity *int) *int {
	if capacity == nil || *capacity <= 0 {
		return nil
	}
	rate := (200*registrations + *capacity) / (2 * *capacity)
	return &rate
}
