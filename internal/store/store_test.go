package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/963krob/event-business-ad-optimizer/internal/model"
)

func testParams() model.Params {
	p := model.Defaults()
	p.FixedCosts = 5000
	p.EventCost = 1000
	p.TicketPricePre = 25
	p.TicketPricePost = 50
	p.VenueCapacity = 200
	p.EventsPerMonth = 4
	p.AdSpend = 1500
	p.TicketsSold = 80
	return p
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := New(t.TempDir())
	require.NoError(t, err)
	return st
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := newTestStore(t)
	params := testParams()

	saved, err := st.Save("summer-push", params)
	require.NoError(t, err)
	assert.Equal(t, "summer-push", saved.Name)
	assert.NotEmpty(t, saved.ID)
	assert.False(t, saved.SavedAt.IsZero())

	loaded, err := st.Load("summer-push")
	require.NoError(t, err)
	if diff := cmp.Diff(params, loaded.Parameters); diff != "" {
		t.Errorf("round-trip parameters mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, saved.ID, loaded.ID)
}

func TestSaveOverwritesEntirely(t *testing.T) {
	st := newTestStore(t)

	first := testParams()
	_, err := st.Save("plan", first)
	require.NoError(t, err)

	second := model.Defaults()
	second.AdSpend = 9999
	saved, err := st.Save("plan", second)
	require.NoError(t, err)

	loaded, err := st.Load("plan")
	require.NoError(t, err)
	if diff := cmp.Diff(second, loaded.Parameters); diff != "" {
		t.Errorf("overwrite left stale fields (-want +got):\n%s", diff)
	}
	// Replacement, not merge: a fresh record gets a fresh id.
	assert.Equal(t, saved.ID, loaded.ID)

	names, err := st.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"plan"}, names)
}

func TestLoadMissingIsNotFound(t *testing.T) {
	st := newTestStore(t)

	_, err := st.Load("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteMissingIsNotFound(t *testing.T) {
	st := newTestStore(t)

	err := st.Delete("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteRemovesRecord(t *testing.T) {
	st := newTestStore(t)

	_, err := st.Save("gone-soon", testParams())
	require.NoError(t, err)
	require.NoError(t, st.Delete("gone-soon"))

	_, err = st.Load("gone-soon")
	assert.ErrorIs(t, err, ErrNotFound)

	names, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestListReturnsSortedNames(t *testing.T) {
	st := newTestStore(t)

	_, err := st.Save("B", testParams())
	require.NoError(t, err)
	_, err = st.Save("A", testParams())
	require.NoError(t, err)

	names, err := st.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, names)
}

func TestListIgnoresForeignFiles(t *testing.T) {
	st := newTestStore(t)

	_, err := st.Save("real", testParams())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(st.Dir(), "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(st.Dir(), "sub.json"), 0o755))

	names, err := st.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"real"}, names)
}

func TestInvalidNames(t *testing.T) {
	st := newTestStore(t)

	for _, name := range []string{"", "   ", "a/b", "..", "x\\y", "a\x00b"} {
		_, err := st.Save(name, testParams())
		assert.ErrorIs(t, err, ErrInvalidName, "name %q", name)
	}

	// Trimmed names are accepted.
	_, err := st.Save("  padded  ", testParams())
	require.NoError(t, err)
	_, err = st.Load("padded")
	require.NoError(t, err)
}

func TestSaveIsAtomicOnDisk(t *testing.T) {
	st := newTestStore(t)

	_, err := st.Save("atomic", testParams())
	require.NoError(t, err)

	entries, err := os.ReadDir(st.Dir())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "atomic.json", entries[0].Name())
}
