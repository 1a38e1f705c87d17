package repository

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a key has no entry in a store
var ErrNotFound = errors.New("entity not found")

// Keyed is implemented by every stored entity; the key is its primary key
// and must not change after creation.
type Keyed[K comparable] interface {
	Key() K
}

// Store defines keyed persistence for one entity type.
//
// Save has upsert semantics: it inserts when the key is absent and replaces
// when it exists. DeleteByID is idempotent and never reports a missing key.
// FindAll returns a snapshot copy with no meaningful ordering.
type Store[K comparable, E Keyed[K]] interface {
	Save(ctx context.Context, entity E) (E, error)
	FindByID(ctx context.Context, key K) (E, error)
	FindAll(ctx context.Context) ([]E, error)
	DeleteByID(ctx context.Context, key K) error
}
