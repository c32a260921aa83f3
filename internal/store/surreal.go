package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/forgo/clubhive/api/internal/database"
)

const (
	surrealGet    = `SELECT value FROM type::thing('document', $key)`
	surrealSet    = `UPSERT type::thing('document', $key) CONTENT { value: $value, updated_at: time::now() }`
	surrealRemove = `DELETE type::thing('document', $key)`
)

// SurrealStore keeps each document as a document:<key> record
type SurrealStore struct {
	db database.Database
}

// NewSurrealStore wraps a connected database
func NewSurrealStore(db database.Database) *SurrealStore {
	return &SurrealStore{db: db}
}

func (s *SurrealStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	rec, err := s.db.QueryOne(ctx, surrealGet, map[string]interface{}{"key": key})
	if errors.Is(err, database.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, unavailable("get", key, err)
	}

	row, ok := rec.(map[string]interface{})
	if !ok {
		return nil, false, unavailable("get", key, fmt.Errorf("unexpected record %T", rec))
	}
	switch v := row["value"].(type) {
	case string:
		return []byte(v), true, nil
	case []byte:
		return v, true, nil
	case nil:
		return nil, false, nil
	default:
		// Not a serialized document; let the decoder treat it as corrupt
		return []byte(fmt.Sprint(v)), true, nil
	}
}

func (s *SurrealStore) Set(ctx context.Context, key string, doc []byte) error {
	vars := map[string]interface{}{"key": key, "value": string(doc)}
	if err := s.db.Execute(ctx, surrealSet, vars); err != nil {
		return unavailable("set", key, err)
	}
	return nil
}

func (s *SurrealStore) Remove(ctx context.Context, key string) error {
	if err := s.db.Execute(ctx, surrealRemove, map[string]interface{}{"key": key}); err != nil {
		return unavailable("remove", key, err)
	}
	return nil
}

func (s *SurrealStore) Ping(ctx context.Context) error {
	if err := s.db.Ping(ctx); err != nil {
		return unavailable("ping", "", err)
	}
	return nil
}

func (s *SurrealStore) Close() error {
	return s.db.Close()
}
