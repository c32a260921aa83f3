package store

import (
	"context"
	"sync"

	"github.com/forgo/clubhive/api/internal/database"
)

// fakeSurreal answers the three document statements used by SurrealStore
type fakeSurreal struct {
	mu      sync.Mutex
	records map[string]string
	err     error
}

func newFakeSurreal() *fakeSurreal {
	return &fakeSurreal{records: make(map[string]string)}
}

func (f *fakeSurreal) Connect(ctx context.Context) error { return f.err }
func (f *fakeSurreal) Close() error                      { return nil }
func (f *fakeSurreal) Ping(ctx context.Context) error    { return f.err }

func (f *fakeSurreal) Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}

	key, _ := vars["key"].(string)
	rows := []interface{}{}
	switch query {
	case surrealGet:
		if v, ok := f.records[key]; ok {
			rows = append(rows, map[string]interface{}{"value": v})
		}
	case surrealSet:
		f.records[key] = vars["value"].(string)
	case surrealRemove:
		delete(f.records, key)
	}
	return []interface{}{map[string]interface{}{"status": "OK", "result": rows}}, nil
}

func (f *fakeSurreal) QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error) {
	results, err := f.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}
	return database.FirstRecord(results)
}

func (f *fakeSurreal) Execute(ctx context.Context, query string, vars map[string]interface{}) error {
	_, err := f.Query(ctx, query, vars)
	return err
}
