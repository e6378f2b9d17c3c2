package fsnotify

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_NotifiesOnArchiveWrite(t *testing.T) {
	dir := t.TempDir()

	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()

	changed := make(chan string, 8)
	require.NoError(t, w.Watch(dir, func(path string) { changed <- path }))

	target := filepath.Join(dir, "onto.zip")
	require.NoError(t, os.WriteFile(target, []byte("data"), 0644))

	select {
	case path := <-changed:
		assert.Equal(t, target, path)
	case <-time.After(3 * time.Second):
		t.Fatal("no change notification within timeout")
	}
}

func TestWatcher_IgnoresUnrecognizedExtensions(t *testing.T) {
	dir := t.TempDir()

	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()

	changed := make(chan string, 8)
	require.NoError(t, w.Watch(dir, func(path string) { changed <- path }))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	select {
	case path := <-changed:
		t.Fatalf("unexpected notification for %s", path)
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcher_DebouncesRapidWrites(t *testing.T) {
	dir := t.TempDir()

	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()

	changed := make(chan string, 32)
	require.NoError(t, w.Watch(dir, func(path string) { changed <- path }))

	target := filepath.Join(dir, "onto.owl")
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(target, []byte("data"), 0644))
	}

	// The burst happens well inside the debounce interval: expect one
	// notification, not five.
	time.Sleep(time.Second)
	count := len(changed)
	assert.GreaterOrEqual(t, count, 1)
	assert.Less(t, count, 5)
}

func TestWatcher_WatchMissingDirFails(t *testing.T) {
	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()

	err = w.Watch(filepath.Join(t.TempDir(), "does-not-exist"), func(string) {})
	assert.Error(t, err)
}

func TestWatcher_StopIdempotent(t *testing.T) {
	w, err := NewWatcher()
	require.NoError(t, err)

	assert.NoError(t, w.Stop())
	assert.NoError(t, w.Stop())
}
