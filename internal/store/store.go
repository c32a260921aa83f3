package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
)

// ErrUnavailable wraps every backend fault. Absence is never an error.
var ErrUnavailable = errors.New("store unavailable")

// Store is a namespaced document store. Each key holds one JSON document
// and writes replace the whole document.
type Store interface {
	// Get returns found=false for a key that was never written.
	Get(ctx context.Context, key string) (doc []byte, found bool, err error)
	Set(ctx context.Context, key string, doc []byte) error
	Remove(ctx context.Context, key string) error
	Close() error
}

// Pinger is implemented by backends that can report liveness
type Pinger interface {
	Ping(ctx context.Context) error
}

// Collection names a persisted document
type Collection string

const (
	Identities    Collection = "identities"
	Clubs         Collection = "clubs"
	Memberships   Collection = "memberships"
	Events        Collection = "events"
	Registrations Collection = "registrations"
	Announcements Collection = "announcements"

	// CurrentIdentity is the singleton holding the signed-in identity
	CurrentIdentity Collection = "current_identity"
)

// DefaultNamespace prefixes every key unless configured otherwise
const DefaultNamespace = "clubhive"

// Collections lists the sequence collections in seeding order
var Collections = []Collection{Identities, Clubs, Memberships, Events, Registrations, Announcements}

// Keyspace maps collections to namespaced keys
type Keyspace struct {
	Namespace string
}

// Key returns "<namespace>_<collection>"
func (k Keyspace) Key(c Collection) string {
	ns := k.Namespace
	if ns == "" {
		ns = DefaultNamespace
	}
	return ns + "_" + string(c)
}

// RecordTransform rewrites one raw record before it is decoded
type RecordTransform func(map[string]interface{}) map[string]interface{}

// Load reads a sequence document. A missing or undecodable document is
// reported as found=false.
func Load[T any](ctx context.Context, s Store, key string, transform RecordTransform) ([]T, bool, error) {
	doc, found, err := s.Get(ctx, key)
	if err != nil || !found {
		return nil, false, err
	}

	if transform != nil {
		var raw []map[string]interface{}
		if err := json.Unmarshal(doc, &raw); err != nil {
			logCorrupt(key, err)
			return nil, false, nil
		}
		for i := range raw {
			raw[i] = transform(raw[i])
		}
		if doc, err = json.Marshal(raw); err != nil {
			logCorrupt(key, err)
			return nil, false, nil
		}
	}

	var items []T
	if err := json.Unmarshal(doc, &items); err != nil {
		logCorrupt(key, err)
		return nil, false, nil
	}
	if items == nil {
		logCorrupt(key, errors.New("document is null"))
		return nil, false, nil
	}
	return items, true, nil
}

// Save replaces a sequence document
func Save[T any](ctx context.Context, s Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	doc, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.Set(ctx, key, doc)
}

// LoadOne reads a singleton document, reporting corrupt documents as absent
func LoadOne[T any](ctx context.Context, s Store, key string) (*T, error) {
	doc, found, err := s.Get(ctx, key)
	if err != nil || !found {
		return nil, err
	}
	var item *T
	if err := json.Unmarshal(doc, &item); err != nil {
		logCorrupt(key, err)
		return nil, nil
	}
	return item, nil
}

// SaveOne replaces a singleton document
func SaveOne[T any](ctx context.Context, s Store, key string, item *T) error {
	doc, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.Set(ctx, key, doc)
}

func logCorrupt(key string, err error) {
	slog.Warn("discarding undecodable document",
		slog.String("key", key),
		slog.String("error", err.Error()),
	)
}

func unavailable(op, key string, err error) error {
	return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, op, key, err)
}
