package repository

import (
	"strings"

	"github.com/forgo/clubhive/api/internal/store"
)

// legacyKeys maps field names written by earlier clients to canonical names.
// camelCase keys come from the browser client, the snake_case aliases from
// the hosted backend.
var legacyKeys = map[store.Collection]map[string]string{
	store.Identities: {
		"createdAt":  "created_on",
		"created_at": "created_on",
	},
	store.Clubs: {
		"adminId":    "owner_id",
		"admin_id":   "owner_id",
		"imageUrl":   "image_url",
		"createdAt":  "created_on",
		"created_at": "created_on",
	},
	store.Memberships: {
		"clubId":    "club_id",
		"userId":    "user_id",
		"joinedAt":  "joined_on",
		"joined_at": "joined_on",
	},
	store.Events: {
		"clubId":     "club_id",
		"venue":      "location",
		"imageUrl":   "image_url",
		"createdAt":  "created_on",
		"created_at": "created_on",
	},
	store.Registrations: {
		"eventId":       "event_id",
		"userId":        "user_id",
		"registeredAt":  "registered_on",
		"registered_at": "registered_on",
		"qrCode":        "pass_token",
		"qr_code":       "pass_token",
		"checkedInAt":   "checked_in_on",
	},
	store.Announcements: {
		"clubId":     "club_id",
		"createdAt":  "created_on",
		"created_at": "created_on",
	},
}

// legacyTransform returns the record adapter for a collection
func legacyTransform(c store.Collection) store.RecordTransform {
	renames := legacyKeys[c]
	return func(rec map[string]interface{}) map[string]interface{} {
		if rec == nil {
			return rec
		}
		for from, to := range renames {
			v, ok := rec[from]
			if !ok {
				continue
			}
			delete(rec, from)
			if _, exists := rec[to]; !exists {
				rec[to] = v
			}
		}
		if c == store.Events {
			adaptEventSchedule(rec)
		}
		return rec
	}
}

// adaptEventSchedule splits an ISO datetime in "date" into date and time.
func adaptEventSchedule(rec map[string]interface{}) {
	if date, ok := rec["date"].(string); ok && len(date) > 10 && date[10] == 'T' {
		rec["date"] = date[:10]
		if _, hasTime := rec["time"]; !hasTime && len(date) >= 16 {
			rec["time"] = date[11:16]
		}
	}
	if t, ok := rec["time"].(string); ok && strings.TrimSpace(t) == "" {
		delete(rec, "time")
	}
}
