package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

func newTestCollection(t *testing.T) (*Collection[record], string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "records.json")
	c := New[record]("records", path, nil)
	require.NoError(t, c.Load())
	return c, path
}

func TestCollection_LoadMissingFileStartsEmpty(t *testing.T) {
	t.Parallel()
	c, _ := newTestCollection(t)
	assert.Equal(t, 0, c.Len())
}

func TestCollection_LoadCorruptFileStartsEmpty(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "records.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	c := New[record]("records", path, nil)
	require.NoError(t, c.Load())
	assert.Equal(t, 0, c.Len())
}

func TestCollection_AppendPersistsBeforeReturning(t *testing.T) {
	t.Parallel()
	c, path := newTestCollection(t)

	require.NoError(t, c.Append(record{ID: "1", Value: "a"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var onDisk []record
	require.NoError(t, json.Unmarshal(data, &onDisk))
	assert.Equal(t, []record{{ID: "1", Value: "a"}}, onDisk)
}

func TestCollection_DurabilityRoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "records.json")

	first := New[record]("records", path, nil)
	require.NoError(t, first.Load())
	require.NoError(t, first.Prepend(record{ID: "2", Value: "b"}))
	require.NoError(t, first.Prepend(record{ID: "1", Value: "a"}))

	// A fresh collection over the same file simulates a process restart.
	second := New[record]("records", path, nil)
	require.NoError(t, second.Load())
	assert.Equal(t, first.Snapshot(), second.Snapshot())
	assert.Equal(t, "1", second.Snapshot()[0].ID)
}

func TestCollection_AppendUnique(t *testing.T) {
	t.Parallel()
	c, _ := newTestCollection(t)

	sameID := func(id string) func(record) bool {
		return func(r record) bool { return r.ID == id }
	}

	require.NoError(t, c.AppendUnique(sameID("1"), record{ID: "1"}))
	err := c.AppendUnique(sameID("1"), record{ID: "1"})
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.Equal(t, 1, c.Len())
}

func TestCollection_ToggleFlipsMembership(t *testing.T) {
	t.Parallel()
	c, _ := newTestCollection(t)

	match := func(r record) bool { return r.ID == "1" }

	added, err := c.Toggle(match, record{ID: "1"})
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, 1, c.Len())

	added, err = c.Toggle(match, record{ID: "1"})
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, 0, c.Len())
}

func TestCollection_ToggleEvenCallsRestoreState(t *testing.T) {
	t.Parallel()
	c, _ := newTestCollection(t)
	require.NoError(t, c.Append(record{ID: "other"}))

	match := func(r record) bool { return r.ID == "1" }
	for i := 0; i < 4; i++ {
		_, err := c.Toggle(match, record{ID: "1"})
		require.NoError(t, err)
	}
	assert.Equal(t, []record{{ID: "other"}}, c.Snapshot())
}

func TestCollection_ConcurrentTogglesNeverDuplicate(t *testing.T) {
	t.Parallel()
	c, _ := newTestCollection(t)

	match := func(r record) bool { return r.ID == "k" }

	const workers = 16
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, _ = c.Toggle(match, record{ID: "k"})
		}()
	}
	wg.Wait()

	// An even number of toggles must land on empty, and never on >1 copy.
	assert.Equal(t, 0, len(c.Filter(match)))
}

func TestCollection_RemoveFirst(t *testing.T) {
	t.Parallel()
	c, _ := newTestCollection(t)
	require.NoError(t, c.Append(record{ID: "1"}))
	require.NoError(t, c.Append(record{ID: "2"}))

	removed, err := c.RemoveFirst(func(r record) bool { return r.ID == "1" })
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, 1, c.Len())

	removed, err = c.RemoveFirst(func(r record) bool { return r.ID == "missing" })
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestCollection_UpdateFirst(t *testing.T) {
	t.Parallel()
	c, _ := newTestCollection(t)
	require.NoError(t, c.Append(record{ID: "1", Value: "old"}))

	updated, found, err := c.UpdateFirst(
		func(r record) bool { return r.ID == "1" },
		func(r *record) { r.Value = "new" },
	)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "new", updated.Value)
	assert.Equal(t, "new", c.Snapshot()[0].Value)

	_, found, err = c.UpdateFirst(
		func(r record) bool { return r.ID == "missing" },
		func(r *record) { r.Value = "x" },
	)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCollection_PersistFailureRollsBack(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "records.json")
	c := New[record]("records", path, nil)
	require.NoError(t, c.Load())
	require.NoError(t, c.Append(record{ID: "1"}))

	// Make the data directory read-only so the temp-file write fails.
	require.NoError(t, os.Chmod(dir, 0o555))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	err := c.Append(record{ID: "2"})
	require.Error(t, err)
	assert.Equal(t, 1, c.Len())
}
