package bbolt

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/mendelkb/owlkit/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "library.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func meta(name string) *ports.OntologyMeta {
	return &ports.OntologyMeta{
		Name:       name,
		Source:     name + ".zip",
		Size:       3,
		Classes:    42,
		ImportedAt: time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC).Unix(),
	}
}

func TestStore_SaveLoad(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save("ncit", []byte("abc"), meta("ncit")))

	archive, m, err := s.Load("ncit")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), archive)
	require.NotNil(t, m)
	assert.Equal(t, "ncit", m.Name)
	assert.Equal(t, 42, m.Classes)
}

func TestStore_SaveOverwrites(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save("ncit", []byte("old"), meta("ncit")))
	require.NoError(t, s.Save("ncit", []byte("new"), meta("ncit")))

	archive, _, err := s.Load("ncit")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), archive)
}

func TestStore_SaveRejectsNilMeta(t *testing.T) {
	s := newTestStore(t)
	assert.Error(t, s.Save("ncit", []byte("abc"), nil))
}

func TestStore_LoadMissing(t *testing.T) {
	s := newTestStore(t)
	archive, m, err := s.Load("nope")
	require.NoError(t, err)
	assert.Nil(t, archive)
	assert.Nil(t, m)
}

func TestStore_ListSorted(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save("zebra", []byte("z"), meta("zebra")))
	require.NoError(t, s.Save("amr", []byte("a"), meta("amr")))

	metas, err := s.List()
	require.NoError(t, err)
	require.Len(t, metas, 2)
	assert.Equal(t, "amr", metas[0].Name)
	assert.Equal(t, "zebra", metas[1].Name)
}

func TestStore_ListEmpty(t *testing.T) {
	s := newTestStore(t)
	metas, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, metas)
}

func TestStore_Delete(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save("ncit", []byte("abc"), meta("ncit")))
	require.NoError(t, s.Delete("ncit"))

	archive, m, err := s.Load("ncit")
	require.NoError(t, err)
	assert.Nil(t, archive)
	assert.Nil(t, m)
}

func TestStore_DeleteIdempotent(t *testing.T) {
	s := newTestStore(t)
	assert.NoError(t, s.Delete("never-existed"))
	assert.NoError(t, s.Delete("never-existed"))
}
