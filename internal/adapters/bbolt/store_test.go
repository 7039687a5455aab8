package bbolt

import (
	"path/filepath"
	"testing"

	"github.com/corey/kmpgrep/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// bbolt pattern-set store: save/load/list/delete named pattern sets
// Expectation: sets survive reopen, keep pattern order, and deletes are
// idempotent.
// =============================================================================

// newTestStore creates a temporary bbolt store for testing.
func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "test.db")
	store, err := NewStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store, path
}

func TestStore_SaveLoad(t *testing.T) {
	store, _ := newTestStore(t)
	patterns := []string{"zeta", "alpha", "привет", "with\nnewline"}
	require.NoError(t, store.SaveSet("errors", patterns))

	got, err := store.LoadSet("errors")
	require.NoError(t, err)
	assert.Equal(t, patterns, got, "order preserved")
}

func TestStore_Overwrite(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.SaveSet("s", []string{"a", "b"}))
	require.NoError(t, store.SaveSet("s", []string{"c"}))

	got, err := store.LoadSet("s")
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, got)
}

func TestStore_LoadMissing(t *testing.T) {
	store, _ := newTestStore(t)
	_, err := store.LoadSet("nope")
	assert.ErrorIs(t, err, ports.ErrSetNotFound)

	require.NoError(t, store.SaveSet("other", []string{"x"}))
	_, err = store.LoadSet("nope")
	assert.ErrorIs(t, err, ports.ErrSetNotFound)
}

func TestStore_ListAndDelete(t *testing.T) {
	store, _ := newTestStore(t)
	names, err := store.ListSets()
	require.NoError(t, err)
	assert.Empty(t, names)

	require.NoError(t, store.SaveSet("b", []string{"1"}))
	require.NoError(t, store.SaveSet("a", []string{"2"}))
	names, err = store.ListSets()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)

	require.NoError(t, store.DeleteSet("a"))
	require.NoError(t, store.DeleteSet("a"), "idempotent")
	require.NoError(t, store.DeleteSet("never-existed"))
	names, err = store.ListSets()
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, names)
}

func TestStore_DeleteOnFreshDB(t *testing.T) {
	store, _ := newTestStore(t)
	assert.NoError(t, store.DeleteSet("x"))
}

func TestStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sets.db")
	store, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, store.SaveSet("keep", []string{"p", "q"}))
	require.NoError(t, store.Close())

	reopened, err := NewStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.LoadSet("keep")
	require.NoError(t, err)
	assert.Equal(t, []string{"p", "q"}, got)
}

func TestStore_EmptyName(t *testing.T) {
	store, _ := newTestStore(t)
	assert.Error(t, store.SaveSet("", []string{"x"}))
}

func TestEncoding_RoundTripAndCorruption(t *testing.T) {
	for _, in := range [][]string{{}, {""}, {"a", "", "bc"}} {
		out, err := decodePatterns(encodePatterns(in))
		require.NoError(t, err)
		assert.Equal(t, in, out)
	}

	blob := encodePatterns([]string{"abc"})
	_, err := decodePatterns(blob[:len(blob)-1])
	assert.Error(t, err, "truncated")
	_, err = decodePatterns(append(blob, 0))
	assert.Error(t, err, "trailing bytes")
	_, err = decodePatterns([]byte{9, 0, 0, 0, 0})
	assert.Error(t, err, "bad version")
	_, err = decodePatterns(nil)
	assert.Error(t, err)
}
