// Package repogen provides generic repository interfaces for data access patterns.
//
// Entities are looked up through a filter type F that each repository turns into
// query conditions, keeping callers unaware of the storage backend.
package repogen

import (
	"context"
)

// ReadOnlyRepo defines a generic read-only repository for entities of type E
// with filter type F.
type ReadOnlyRepo[E any, F any] interface {
	// Get retrieves a single entity matching the provided filters.
	// Returns a not found error when nothing matches.
	Get(ctx context.Context, filters F) (*E, error)
	// ListWithCount returns one page of matching entities and the total count
	// ignoring limit and offset.
	ListWithCount(ctx context.Context, filters F) ([]E, int, error)
	// Exists checks if any entity matches the filters.
	Exists(ctx context.Context, filters F) (bool, error)
}

// Repo defines a generic read-write repository for entities of type E
// with filter type F.
type Repo[E any, F any] interface {
	ReadOnlyRepo[E, F]
	// Delete removes an entity by primary key.
	Delete(ctx context.Context, entity *E) error
	// DeleteWhere removes every entity matching the filters and returns how many were removed.
	DeleteWhere(ctx context.Context, filters F) (int64, error)
}
