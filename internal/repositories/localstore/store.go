// Package localstore keeps per-user entity lists as JSON arrays in a
// key/value table of an embedded SQLite file.
package localstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

const (
	keyPrefix      = "rafatec_"
	lastUserKey    = keyPrefix + "user"
	transactionsNS = keyPrefix + "transactions_"
	categoriesNS   = keyPrefix + "categories_"
	subcategoryNS  = keyPrefix + "subcategories_"
)

func transactionsKey(userID string) string  { return transactionsNS + userID }
func categoriesKey(userID string) string    { return categoriesNS + userID }
func subcategoriesKey(userID string) string { return subcategoryNS + userID }

// Store is a key/value store of string values.
// Read-modify-write cycles on array values are serialized by mu.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// Open opens (creating if needed) the SQLite file at dbPath and migrates it.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// a single writer connection avoids SQLITE_BUSY between pooled connections
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Get returns the value stored at key. ok is false when the key is absent.
func (s *Store) Get(ctx context.Context, key string) (value string, ok bool, err error) {
	err = s.db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read key %s: %w", key, err)
	}
	return value, true, nil
}

// Set stores value at key, replacing any previous value.
func (s *Store) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("write key %s: %w", key, err)
	}
	return nil
}

// Remove deletes key. Removing an absent key is not an error.
func (s *Store) Remove(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv_store WHERE key = ?`, key); err != nil {
		return fmt.Errorf("remove key %s: %w", key, err)
	}
	return nil
}

// rawElements splits the JSON array at key into its elements.
func (s *Store) rawElements(ctx context.Context, key string) ([]json.RawMessage, bool, error) {
	value, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return nil, ok, err
	}
	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(value), &raw); err != nil {
		return nil, true, fmt.Errorf("key %s does not hold a JSON array: %w", key, err)
	}
	return raw, true, nil
}

// loadList decodes the array at key, skipping elements that do not decode.
// An absent key yields defaults, or an empty list when defaults is nil.
func loadList[T any](ctx context.Context, s *Store, key string, defaults func() []T) ([]T, error) {
	raw, ok, err := s.rawElements(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		if defaults != nil {
			return defaults(), nil
		}
		return []T{}, nil
	}

	out := make([]T, 0, len(raw))
	for i, r := range raw {
		var v T
		if err := json.Unmarshal(r, &v); err != nil {
			slog.WarnContext(ctx, "Skipping unreadable stored element",
				slog.String("key", key), slog.Int("index", i), slog.String("error", err.Error()))
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

// updateList runs one read-modify-write cycle on the array at key. Elements are
// handed to fn undecoded so entries this version cannot read survive the write.
// An absent key starts from defaults.
func updateList[T any](ctx context.Context, s *Store, key string, defaults func() []T, fn func([]json.RawMessage) ([]json.RawMessage, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.rawElements(ctx, key)
	if err != nil {
		return err
	}
	if !ok {
		raw = []json.RawMessage{}
		if defaults != nil {
			for _, d := range defaults() {
				encoded, err := json.Marshal(d)
				if err != nil {
					return fmt.Errorf("encode default element: %w", err)
				}
				raw = append(raw, encoded)
			}
		}
	}

	updated, err := fn(raw)
	if err != nil {
		return err
	}

	buf, err := json.Marshal(updated)
	if err != nil {
		return fmt.Errorf("encode array for key %s: %w", key, err)
	}
	return s.Set(ctx, key, string(buf))
}

// elementID extracts the "id" field of a raw element, or "" if it has none.
func elementID(raw json.RawMessage) string {
	var probe struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return ""
	}
	return probe.ID
}

func indexOf(raw []json.RawMessage, id string) int {
	for i, r := range raw {
		if elementID(r) == id {
			return i
		}
	}
	return -1
}

// appendUnique appends v unless an element with the same id exists.
func appendUnique(raw []json.RawMessage, id string, v any) ([]json.RawMessage, error) {
	if indexOf(raw, id) >= 0 {
		return nil, errDuplicateID(id)
	}
	encoded, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode element %s: %w", id, err)
	}
	return append(raw, encoded), nil
}

// removeWhere drops the elements for which drop is true and reports how many went.
func removeWhere(raw []json.RawMessage, drop func(json.RawMessage) bool) ([]json.RawMessage, int) {
	out := make([]json.RawMessage, 0, len(raw))
	for _, r := range raw {
		if drop(r) {
			continue
		}
		out = append(out, r)
	}
	return out, len(raw) - len(out)
}
