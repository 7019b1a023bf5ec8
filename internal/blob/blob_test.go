package blob

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestStore_PutAndProbe(t *testing.T) {
	s, err := NewStore(filepath.Join(t.TempDir(), "blobs"))
	require.NoError(t, err)

	content := []byte("scanned contract")
	sum := sha256.Sum256(content)
	want := hex.EncodeToString(sum[:])

	has, err := s.Has(want)
	require.NoError(t, err)
	require.False(t, has)

	sha, err := s.Put(content, "")
	require.NoError(t, err)
	require.Equal(t, want, sha)

	has, err = s.Has(sha)
	require.NoError(t, err)
	require.True(t, has)

	// Sharded layout.
	require.Equal(t, filepath.Join(s.Root(), sha[0:2], sha[2:4], sha), s.Path(sha))

	rc, err := s.Open(sha)
	require.NoError(t, err)
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	require.Equal(t, content, got)
}

func TestStore_PutIsIdempotent(t *testing.T) {
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)

	first, err := s.Put([]byte("same bytes"), "")
	require.NoError(t, err)
	second, err := s.Put([]byte("same bytes"), first)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestStore_PutRejectsDigestMismatch(t *testing.T) {
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)

	bogus := "0000000000000000000000000000000000000000000000000000000000000000"
	_, err = s.Put([]byte("content"), bogus)
	require.ErrorContains(t, err, "declares")
}

func TestStore_RejectsMalformedDigest(t *testing.T) {
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, err = s.Has("../../etc/passwd")
	require.Error(t, err)
	_, err = s.Open("deadbeef")
	require.Error(t, err)
}

func TestArchiver_MovesIntoMonthTree(t *testing.T) {
	dir := t.TempDir()
	a, err := NewArchiver(filepath.Join(dir, "archives"))
	require.NoError(t, err)

	src := filepath.Join(dir, "spool", "pkg.uhc")
	require.NoError(t, os.MkdirAll(filepath.Dir(src), 0o755))
	require.NoError(t, os.WriteFile(src, []byte("container bytes"), 0o644))

	id := uuid.MustParse("6f1c2a34-9b1d-4b67-8c55-3f2a11ee0901")
	committed := time.Date(2026, 3, 12, 14, 0, 0, 0, time.UTC)

	dst, err := a.Archive(src, id, committed)
	require.NoError(t, err)
	require.Equal(t,
		filepath.Join(dir, "archives", "2026", "03", id.String()+".uhc"), dst)

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, []byte("container bytes"), got)

	_, err = os.Stat(src)
	require.True(t, os.IsNotExist(err))

	// Re-archiving after the source is gone is a no-op.
	again, err := a.Archive(src, id, committed)
	require.NoError(t, err)
	require.Equal(t, dst, again)
}
