package repository

import (
	"context"
	"sync"
)

// MemoryStore implements Store with an in-process map.
// Reads take the shared lock; writes are serialized by the exclusive lock,
// so each operation is atomic with respect to the others.
type MemoryStore[K comparable, E Keyed[K]] struct {
	mu    sync.RWMutex
	items map[K]E
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore[K comparable, E Keyed[K]]() *MemoryStore[K, E] {
	return &MemoryStore[K, E]{
		items: make(map[K]E),
	}
}

// Save inserts or replaces the entity under its key and returns the stored value
func (s *MemoryStore[K, E]) Save(ctx context.Context, entity E) (E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[entity.Key()] = entity
	return entity, nil
}

// FindByID returns the entity for the key, or ErrNotFound
func (s *MemoryStore[K, E]) FindByID(ctx context.Context, key K) (E, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entity, exists := s.items[key]
	if !exists {
		var zero E
		return zero, ErrNotFound
	}
	return entity, nil
}

// FindAll returns a snapshot of every stored entity
func (s *MemoryStore[K, E]) FindAll(ctx context.Context) ([]E, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entities := make([]E, 0, len(s.items))
	for _, entity := range s.items {
		entities = append(entities, entity)
	}
	return entities, nil
}

// DeleteByID removes the entity if present; deleting an absent key is a no-op
func (s *MemoryStore[K, E]) DeleteByID(ctx context.Context, key K) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, key)
	return nil
}
