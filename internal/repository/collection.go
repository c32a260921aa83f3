package repository

import (
	"context"

	"github.com/forgo/clubhive/api/internal/store"
)

// Collection provides whole-document access to one persisted collection.
// Lists preserve store order.
type Collection[T any] struct {
	store store.Store
	name  store.Collection
	key   string
}

func newCollection[T any](s store.Store, keys store.Keyspace, name store.Collection) Collection[T] {
	return Collection[T]{store: s, name: name, key: keys.Key(name)}
}

// Key returns the namespaced key of the collection
func (c Collection[T]) Key() string {
	return c.key
}

// Exists reports whether the collection holds a decodable document
func (c Collection[T]) Exists(ctx context.Context) (bool, error) {
	_, found, err := c.load(ctx)
	return found, err
}

// List returns all records, or an empty slice if the collection is absent
func (c Collection[T]) List(ctx context.Context) ([]T, error) {
	items, _, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// ReplaceAll overwrites the collection
func (c Collection[T]) ReplaceAll(ctx context.Context, items []T) error {
	return store.Save(ctx, c.store, c.key, items)
}

// Append adds one record to the end of the collection
func (c Collection[T]) Append(ctx context.Context, item T) error {
	items, err := c.List(ctx)
	if err != nil {
		return err
	}
	return c.ReplaceAll(ctx, append(items, item))
}

func (c Collection[T]) load(ctx context.Context) ([]T, bool, error) {
	return store.Load[T](ctx, c.store, c.key, legacyTransform(c.name))
}

func filter[T any](items []T, keep func(*T) bool) []T {
	out := make([]T, 0, len(items))
	for i := range items {
		if keep(&items[i]) {
			out = append(out, items[i])
		}
	}
	return out
}

func find[T any](items []T, match func(*T) bool) *T {
	for i := range items {
		if match(&items[i]) {
			found := items[i]
			return &found
		}
	}
	return nil
}
