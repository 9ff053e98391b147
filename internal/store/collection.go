// Package store implements the file-backed durable collections that hold
// all persistent state. Each collection mirrors an in-memory slice of
// records to a single JSON file, rewriting the whole file on every mutation.
// This is intentional: the service targets single-process deployments where
// synchronous whole-file persistence is simple and correct.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"clubverse/internal/observability"
)

// ErrDuplicate is returned by AppendUnique when the conflict check matches
// an existing record.
var ErrDuplicate = errors.New("duplicate record")

// Collection is an in-memory ordered sequence of records of one kind,
// mirrored to a backing file. A single mutex guards every operation, so
// compound mutators (check-then-write) are atomic with respect to each
// other; this is what keeps concurrent toggles from double-inserting.
type Collection[T any] struct {
	name   string
	path   string
	logger *slog.Logger

	mu    sync.Mutex
	items []T
}

// New creates a collection backed by the given file path. Call Load before
// serving requests.
func New[T any](name, path string, logger *slog.Logger) *Collection[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Collection[T]{name: name, path: path, logger: logger}
}

// Load reads the backing file if present. A missing file means an empty
// collection; a parse failure is logged and the collection starts empty
// rather than failing startup.
func (c *Collection[T]) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("create data directory for %s: %w", c.name, err)
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			c.items = nil
			return nil
		}
		return fmt.Errorf("read %s collection: %w", c.name, err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		c.logger.Error("collection file corrupt, starting empty",
			slog.String("collection", c.name),
			slog.String("path", c.path),
			slog.String("error", err.Error()),
		)
		c.items = nil
		return nil
	}

	c.items = items
	observability.SetCollectionSize(c.name, len(c.items))
	return nil
}

// persistLocked serializes the full collection and atomically replaces the
// backing file. Callers must hold c.mu.
func (c *Collection[T]) persistLocked() error {
	defer observability.ObservePersist(c.name, time.Now())

	items := c.items
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s collection: %w", c.name, err)
	}

	dir := filepath.Dir(c.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(c.path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", c.name, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write %s collection: %w", c.name, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp file for %s: %w", c.name, err)
	}
	if err := os.Rename(tmpName, c.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace %s collection file: %w", c.name, err)
	}

	observability.SetCollectionSize(c.name, len(c.items))
	return nil
}

// mutate applies fn to the item slice and persists the result. On a persist
// failure the in-memory state is rolled back to the pre-mutation snapshot.
func (c *Collection[T]) mutate(fn func(items []T) []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	prev := c.items
	c.items = fn(append([]T(nil), c.items...))
	if err := c.persistLocked(); err != nil {
		c.items = prev
		c.logger.Error("collection persist failed, state rolled back",
			slog.String("collection", c.name),
			slog.String("error", err.Error()),
		)
		return err
	}
	return nil
}

// Append adds a record at the tail.
func (c *Collection[T]) Append(item T) error {
	return c.mutate(func(items []T) []T {
		return append(items, item)
	})
}

// Prepend adds a record at the head. Used for newest-first orderings.
func (c *Collection[T]) Prepend(item T) error {
	return c.mutate(func(items []T) []T {
		return append([]T{item}, items...)
	})
}

// AppendUnique adds a record only if no existing record matches conflicts.
// The check and the append happen under one lock acquisition, so duplicate
// keys cannot slip in between them. Returns ErrDuplicate on conflict.
func (c *Collection[T]) AppendUnique(conflicts func(T) bool, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, existing := range c.items {
		if conflicts(existing) {
			return ErrDuplicate
		}
	}

	prev := c.items
	c.items = append(append([]T(nil), c.items...), item)
	if err := c.persistLocked(); err != nil {
		c.items = prev
		return err
	}
	return nil
}

// RemoveFirst removes the first record matching match. Reports whether a
// record was removed.
func (c *Collection[T]) RemoveFirst(match func(T) bool) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := -1
	for i, item := range c.items {
		if match(item) {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false, nil
	}

	prev := c.items
	next := append([]T(nil), c.items[:idx]...)
	c.items = append(next, c.items[idx+1:]...)
	if err := c.persistLocked(); err != nil {
		c.items = prev
		return false, err
	}
	return true, nil
}

// UpdateFirst applies apply to the first record matching match and persists.
// Returns the updated record and whether a match was found.
func (c *Collection[T]) UpdateFirst(match func(T) bool, apply func(*T)) (T, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	idx := -1
	for i, item := range c.items {
		if match(item) {
			idx = i
			break
		}
	}
	if idx == -1 {
		return zero, false, nil
	}

	prev := c.items
	next := append([]T(nil), c.items...)
	apply(&next[idx])
	c.items = next
	if err := c.persistLocked(); err != nil {
		c.items = prev
		return zero, false, err
	}
	return next[idx], true, nil
}

// Toggle flips the presence of a record: if a record matching match exists
// it is removed, otherwise item is appended. The whole flip is one critical
// section, so two concurrent toggles on the same key serialize instead of
// both observing "absent". Reports whether the record was added.
func (c *Collection[T]) Toggle(match func(T) bool, item T) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := -1
	for i, existing := range c.items {
		if match(existing) {
			idx = i
			break
		}
	}

	prev := c.items
	if idx >= 0 {
		next := append([]T(nil), c.items[:idx]...)
		c.items = append(next, c.items[idx+1:]...)
	} else {
		c.items = append(append([]T(nil), c.items...), item)
	}

	if err := c.persistLocked(); err != nil {
		c.items = prev
		return false, err
	}
	return idx == -1, nil
}

// Clear removes every record. Used by the seeder before repopulating.
func (c *Collection[T]) Clear() error {
	return c.mutate(func([]T) []T {
		return nil
	})
}

// Find returns the first record matching match.
func (c *Collection[T]) Find(match func(T) bool) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	for _, item := range c.items {
		if match(item) {
			return item, true
		}
	}
	return zero, false
}

// Filter returns all records matching match, in collection order.
func (c *Collection[T]) Filter(match func(T) bool) []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]T, 0)
	for _, item := range c.items {
		if match(item) {
			out = append(out, item)
		}
	}
	return out
}

// Snapshot returns a copy of the full collection in order.
func (c *Collection[T]) Snapshot() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]T(nil), c.items...)
}

// Len returns the number of records.
func (c *Collection[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Name returns the collection's name, used in logs and error messages.
func (c *Collection[T]) Name() string {
	return c.name
}
