package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/forgo/clubhive/api/internal/database"
)

// Backend names
const (
	BackendMemory  = "memory"
	BackendSQLite  = "sqlite"
	BackendSurreal = "surrealdb"
	BackendRedis   = "redis"
)

// Options selects and configures a backend
type Options struct {
	Backend    string
	SQLitePath string
	Redis      RedisOptions
	Surreal    database.Config
}

// Open connects the configured backend
func Open(ctx context.Context, opts Options) (Store, error) {
	slog.Info("opening store", slog.String("backend", opts.Backend))

	switch opts.Backend {
	case BackendMemory, "":
		return NewMemoryStore(), nil
	case BackendSQLite:
		return OpenSQLite(opts.SQLitePath)
	case BackendRedis:
		return OpenRedis(ctx, opts.Redis)
	case BackendSurreal:
		db := database.NewSurrealDB(opts.Surreal)
		if err := db.Connect(ctx); err != nil {
			return nil, unavailable("connect", opts.Surreal.Endpoint(), err)
		}
		return NewSurrealStore(db), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", opts.Backend)
	}
}

// Ping reports liveness for backends that support it
func Ping(ctx context.Context, s Store) error {
	if p, ok := s.(Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}
