package model

import "time"

// Membership links an identity to a club. At most one per (club, user).
type Membership struct {
	ID       string    `json:"id"`
	ClubID   string    `json:"club_id"`
	UserID   string    `json:"user_id"`
	JoinedOn time.Time `json:"joined_on"`
}
