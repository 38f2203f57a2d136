package reconcile

import "context"

// Adapter defines the model-specific persistence logic used by Sync.
// Each adapter decides how items are keyed and how they are written.
type Adapter[T any] interface {
	// Name returns the unique name of this adapter (e.g., "countries").
	Name() string

	// Key returns the normalized identity of an item. Two items with equal keys
	// are the same entity (e.g. a lowercased name for case-insensitive catalogs).
	Key(item T) string

	// Exists reports whether the store already holds an entity with this key.
	Exists(ctx context.Context, key string) (bool, error)

	// Insert creates a new entity.
	Insert(ctx context.Context, item T) error

	// Update overwrites the entity identified by key.
	Update(ctx context.Context, key string, item T) error
}
