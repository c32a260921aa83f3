package model

import "time"

// Announcement is a read-only notice posted to a club
type Announcement struct {
	ID        string    `json:"id"`
	ClubID    string    `json:"club_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedOn time.Time `json:"created_on"`
}
