// SPDX-License-Identifier: MIT

package level_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazechase/level"
)

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	w, err := level.NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	path := filepath.Join(dir, "cross.yaml")
	require.NoError(t, os.WriteFile(path, []byte(window), 0o644))

	select {
	case got := <-w.Events:
		assert.Equal(t, path, got)
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no event for the level file")
	}
}

func TestWatcher_Close(t *testing.T) {
	w, err := level.NewWatcher(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	_, ok := <-w.Events
	assert.False(t, ok)
}

func TestWatcher_MissingDir(t *testing.T) {
	_, err := level.NewWatcher(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestIsLevelFile(t *testing.T) {
	assert.True(t, level.IsLevelFile("a/b.yaml"))
	assert.True(t, level.IsLevelFile("B.YML"))
	assert.False(t, level.IsLevelFile("c.json"))
	assert.False(t, level.IsLevelFile("yaml"))
}
