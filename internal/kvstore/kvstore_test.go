package kvstore

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "storage.json")
	s, err := Open(path, newNoopLogger())
	require.NoError(t, err)
	return s, path
}

func TestStore_SetGet(t *testing.T) {
	s, _ := newTestStore(t)

	type doc struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, s.Set("some-key", doc{Name: "rejection", Count: 47}))

	var got doc
	found, err := s.Get("some-key", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, doc{Name: "rejection", Count: 47}, got)
}

func TestStore_GetMissing(t *testing.T) {
	s, _ := newTestStore(t)

	var got string
	found, err := s.Get("nothing-here", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_PersistsBetweenOpens(t *testing.T) {
	s, path := newTestStore(t)
	require.NoError(t, s.Set("theme", "dark"))

	reopened, err := Open(path, newNoopLogger())
	require.NoError(t, err)

	var theme string
	found, err := reopened.Get("theme", &theme)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "dark", theme)
}

func TestStore_Remove(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Set("theme", "light"))
	require.NoError(t, s.Remove("theme"))

	var theme string
	found, err := s.Get("theme", &theme)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_Clear(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Set("a", 1))
	require.NoError(t, s.Set("b", 2))
	require.NoError(t, s.Clear())

	var v int
	found, err := s.Get("a", &v)
	require.NoError(t, err)
	assert.False(t, found)
	found, err = s.Get("b", &v)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestOpen_CorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	s, err := Open(path, newNoopLogger())
	require.NoError(t, err)

	var v string
	found, err := s.Get("anything", &v)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_CorruptValueIsSwallowed(t *testing.T) {
	s, _ := newTestStore(t)
	// строка не десериализуется в число: значение должно считаться отсутствующим
	require.NoError(t, s.Set("key", "text"))

	var v int
	found, err := s.Get("key", &v)
	require.NoError(t, err)
	assert.False(t, found)
}
