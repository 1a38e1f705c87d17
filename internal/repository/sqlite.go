package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// OpenDB opens (creating if needed) the sqlite database that backs the
// persistent stores and ensures the shared state table exists. One database
// is shared by every entity store; each store owns a bucket row.
func OpenDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS state (
		bucket TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create state table: %w", err)
	}
	return db, nil
}

// SQLiteStore wraps a MemoryStore and snapshots the full collection to its
// bucket as a JSON payload after every successful write. Reads never touch
// the database.
type SQLiteStore[K comparable, E Keyed[K]] struct {
	mem    *MemoryStore[K, E]
	db     *sql.DB
	bucket string
	mu     sync.Mutex
}

// NewSQLiteStore constructs a persistent store for one entity type,
// restoring any previously snapshotted state from the bucket.
func NewSQLiteStore[K comparable, E Keyed[K]](db *sql.DB, bucket string) (*SQLiteStore[K, E], error) {
	s := &SQLiteStore[K, E]{
		mem:    NewMemoryStore[K, E](),
		db:     db,
		bucket: bucket,
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore[K, E]) load() error {
	var payload []byte
	err := s.db.QueryRow(`SELECT payload FROM state WHERE bucket = ?`, s.bucket).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("select %s state: %w", s.bucket, err)
	}

	var entities []E
	if err := json.Unmarshal(payload, &entities); err != nil {
		return fmt.Errorf("decode %s state: %w", s.bucket, err)
	}
	for _, entity := range entities {
		if _, err := s.mem.Save(context.Background(), entity); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteStore[K, E]) snapshot(ctx context.Context) error {
	entities, err := s.mem.FindAll(ctx)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(entities)
	if err != nil {
		return fmt.Errorf("encode %s state: %w", s.bucket, err)
	}
	if _, err := s.db.ExecContext(ctx, `INSERT INTO state (bucket, payload) VALUES (?, ?)
		ON CONFLICT(bucket) DO UPDATE SET payload = excluded.payload`, s.bucket, payload); err != nil {
		return fmt.Errorf("snapshot %s state: %w", s.bucket, err)
	}
	return nil
}

// Save upserts the entity and snapshots the collection. A failed snapshot
// rolls the memory write back so reads never see state the database lost.
func (s *SQLiteStore[K, E]) Save(ctx context.Context, entity E) (E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, prevErr := s.mem.FindByID(ctx, entity.Key())
	stored, err := s.mem.Save(ctx, entity)
	if err != nil {
		return stored, err
	}
	if err := s.snapshot(ctx); err != nil {
		if errors.Is(prevErr, ErrNotFound) {
			_ = s.mem.DeleteByID(ctx, entity.Key())
		} else {
			_, _ = s.mem.Save(ctx, prev)
		}
		var zero E
		return zero, err
	}
	return stored, nil
}

// FindByID returns the entity for the key, or ErrNotFound
func (s *SQLiteStore[K, E]) FindByID(ctx context.Context, key K) (E, error) {
	return s.mem.FindByID(ctx, key)
}

// FindAll returns a snapshot of every stored entity
func (s *SQLiteStore[K, E]) FindAll(ctx context.Context) ([]E, error) {
	return s.mem.FindAll(ctx)
}

// DeleteByID removes the entity if present and snapshots the collection.
// A failed snapshot restores the deleted entity in memory.
func (s *SQLiteStore[K, E]) DeleteByID(ctx context.Context, key K) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, prevErr := s.mem.FindByID(ctx, key)
	if err := s.mem.DeleteByID(ctx, key); err != nil {
		return err
	}
	if err := s.snapshot(ctx); err != nil {
		if prevErr == nil {
			_, _ = s.mem.Save(ctx, prev)
		}
		return err
	}
	return nil
}
