package jobs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"uhc-registry.io/registry/internal/config"
)

func TestIsContainerName(t *testing.T) {
	t.Parallel()

	require.True(t, isContainerName("export-2026-08.uhc"))
	require.True(t, isContainerName("/drop/EXPORT.UHC"))
	require.False(t, isContainerName("export.uhc.part"))
	require.False(t, isContainerName("notes.txt"))
	require.False(t, isContainerName("uhc"))
}

func TestWatchFolderStartDisabled(t *testing.T) {
	t.Parallel()

	w := NewWatchFolder(config.WatchConfig{Enabled: false}, nil, nil)
	require.NoError(t, w.Start(context.Background()))
	w.Stop()
}

func TestWatchFolderSweepDefersUnstableFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w := NewWatchFolder(config.WatchConfig{Enabled: true, Dir: dir}, nil, nil)

	path := filepath.Join(dir, "incoming.uhc")
	require.NoError(t, os.WriteFile(path, []byte("partial"), 0o640))

	// First sighting records the size and leaves the file alone.
	w.sweep(context.Background())
	require.FileExists(t, path)
	require.Equal(t, int64(len("partial")), w.sizes[path])

	// A file that grew since the last sweep is still being copied in.
	require.NoError(t, os.WriteFile(path, []byte("partial-plus-more"), 0o640))
	w.sweep(context.Background())
	require.FileExists(t, path)
	require.Equal(t, int64(len("partial-plus-more")), w.sizes[path])
}

func TestWatchFolderSweepForgetsRemovedFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w := NewWatchFolder(config.WatchConfig{Enabled: true, Dir: dir}, nil, nil)

	path := filepath.Join(dir, "gone.uhc")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o640))
	w.sweep(context.Background())
	require.Contains(t, w.sizes, path)

	require.NoError(t, os.Remove(path))
	w.sweep(context.Background())
	require.NotContains(t, w.sizes, path)
}

func TestWatchFolderSweepIgnoresOtherFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w := NewWatchFolder(config.WatchConfig{Enabled: true, Dir: dir}, nil, nil)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("x"), 0o640))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, processedSubdir), 0o750))

	w.sweep(context.Background())
	require.Empty(t, w.sizes)
}

func TestWatchFolderMoveToSuffixesOnCollision(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, processedSubdir), 0o750))
	w := NewWatchFolder(config.WatchConfig{Enabled: true, Dir: dir}, nil, nil)

	src := filepath.Join(dir, "pkg.uhc")
	require.NoError(t, os.WriteFile(src, []byte("a"), 0o640))
	require.NoError(t, os.WriteFile(filepath.Join(dir, processedSubdir, "pkg.uhc"), []byte("b"), 0o640))

	w.moveTo(src, processedSubdir)
	require.NoFileExists(t, src)

	entries, err := os.ReadDir(filepath.Join(dir, processedSubdir))
	require.NoError(t, err)
	require.Len(t, entries, 2)
}
