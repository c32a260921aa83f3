package testdb

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/forgo/clubhive/api/internal/database"
	"github.com/forgo/clubhive/api/internal/store"
)

// TestDB provides an isolated store for testing.
type TestDB struct {
	Store   store.Store
	Keys    store.Keyspace
	Backend string
	t       *testing.T

	closeOnce sync.Once
	surreal   *database.SurrealDB
}

var (
	// counterMu protects the namespace counter
	counterMu sync.Mutex
	counter   int64
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getSurrealConfig returns database config from environment or defaults
func getSurrealConfig() database.Config {
	return database.Config{
		Host:     getEnv("TEST_DB_HOST", "localhost"),
		Port:     getEnv("TEST_DB_PORT", "8000"),
		User:     getEnv("TEST_DB_USER", "root"),
		Password: getEnv("TEST_DB_PASSWORD", "root"),
	}
}

// uniqueNamespace generates a unique namespace for test isolation
func uniqueNamespace() string {
	counterMu.Lock()
	defer counterMu.Unlock()
	counter++
	return fmt.Sprintf("test_%d_%d", time.Now().UnixNano(), counter)
}

// New creates an isolated store. It is closed automatically when the test
// ends; calling Close earlier is allowed.
func New(t *testing.T) *TestDB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tdb := &TestDB{
		Backend: getEnv("TEST_STORE_BACKEND", store.BackendSQLite),
		Keys:    store.Keyspace{Namespace: uniqueNamespace()},
		t:       t,
	}

	switch tdb.Backend {
	case store.BackendMemory:
		tdb.Store = store.NewMemoryStore()
	case store.BackendSQLite:
		s, err := store.OpenSQLite(filepath.Join(t.TempDir(), "clubhive.db"))
		if err != nil {
			t.Fatalf("testdb: failed to open sqlite: %v", err)
		}
		tdb.Store = s
	case store.BackendSurreal:
		cfg := getSurrealConfig()
		cfg.Namespace = tdb.Keys.Namespace
		cfg.Database = "test"
		db := database.NewSurrealDB(cfg)
		if err := db.Connect(ctx); err != nil {
			t.Fatalf("testdb: failed to connect: %v", err)
		}
		tdb.surreal = db
		tdb.Store = store.NewSurrealStore(db)
	case store.BackendRedis:
		s, err := store.OpenRedis(ctx, store.RedisOptions{
			Addr:        getEnv("TEST_REDIS_ADDR", "localhost:6379"),
			DialTimeout: 5 * time.Second,
		})
		if err != nil {
			t.Fatalf("testdb: failed to connect: %v", err)
		}
		tdb.Store = s
	default:
		t.Fatalf("testdb: unknown backend %q", tdb.Backend)
	}

	t.Cleanup(tdb.Close)
	return tdb
}

// Close removes everything the test wrote and closes the store.
func (tdb *TestDB) Close() {
	tdb.closeOnce.Do(func() {
		if tdb.Store == nil {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if tdb.surreal != nil {
			query := fmt.Sprintf("REMOVE NAMESPACE %s", tdb.Keys.Namespace)
			_ = tdb.surreal.Execute(ctx, query, nil) // Ignore errors on cleanup
		} else {
			_ = tdb.clear(ctx)
		}

		_ = tdb.Store.Close()
	})
}

// Reset removes every collection, returning the store to its never-written state.
func (tdb *TestDB) Reset(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := tdb.clear(ctx); err != nil {
		t.Fatalf("testdb: reset failed: %v", err)
	}
}

func (tdb *TestDB) clear(ctx context.Context) error {
	keys := append([]store.Collection{store.CurrentIdentity}, store.Collections...)
	for _, c := range keys {
		if err := tdb.Store.Remove(ctx, tdb.Keys.Key(c)); err != nil {
			return err
		}
	}
	return nil
}

// Ctx returns a context with a reasonable timeout for test operations.
func (tdb *TestDB) Ctx() context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	tdb.t.Cleanup(cancel)
	return ctx
}

// MustSet writes a raw document and fails the test on error.
func (tdb *TestDB) MustSet(c store.Collection, doc string) {
	tdb.t.Helper()
	if err := tdb.Store.Set(tdb.Ctx(), tdb.Keys.Key(c), []byte(doc)); err != nil {
		tdb.t.Fatalf("testdb: set %s failed: %v", c, err)
	}
}
