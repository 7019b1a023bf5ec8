// Package blob is the content-addressed attachment store. Blobs live on
// disk under blobs/<sha[0:2]>/<sha[2:4]>/<sha>; the sha256 of the content is
// the only key, so identical attachments across packages are stored once.
package blob

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
)

var shaRx = regexp.MustCompile(`^[0-9a-f]{64}$`)

// Store writes and probes content-addressed blobs under a root directory.
type Store struct {
	root string
}

// NewStore creates the root directory if needed.
func NewStore(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("blob: create store root %s: %w", root, err)
	}
	return &Store{root: root}, nil
}

// Root returns the store's root directory.
func (s *Store) Root() string { return s.root }

// Path returns the on-disk location for a sha256 hex digest.
func (s *Store) Path(sha string) string {
	return filepath.Join(s.root, sha[0:2], sha[2:4], sha)
}

// Has reports whether a blob with this digest is already stored. Commit uses
// it for attachment dedup accounting.
func (s *Store) Has(sha string) (bool, error) {
	if !shaRx.MatchString(sha) {
		return false, fmt.Errorf("blob: %q is not a sha256 hex digest", sha)
	}
	_, err := os.Stat(s.Path(sha))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("blob: probe %s: %w", sha, err)
}

// Put stores content under its own digest and returns that digest. If a
// declared digest is given it must match the content. Writing an existing
// blob is a no-op.
func (s *Store) Put(content []byte, declaredSHA string) (string, error) {
	sum := sha256.Sum256(content)
	sha := hex.EncodeToString(sum[:])
	if declaredSHA != "" && declaredSHA != sha {
		return "", fmt.Errorf("blob: content hashes to %s, record declares %s", sha, declaredSHA)
	}

	path := s.Path(sha)
	if _, err := os.Stat(path); err == nil {
		return sha, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("blob: create shard dir: %w", err)
	}

	// Write through a temp file so a crash never leaves a truncated blob
	// under its final name.
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+sha+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("blob: create temp: %w", err)
	}
	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("blob: write %s: %w", sha, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("blob: close %s: %w", sha, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("blob: publish %s: %w", sha, err)
	}
	return sha, nil
}

// Open returns a reader over a stored blob.
func (s *Store) Open(sha string) (io.ReadCloser, error) {
	if !shaRx.MatchString(sha) {
		return nil, fmt.Errorf("blob: %q is not a sha256 hex digest", sha)
	}
	f, err := os.Open(s.Path(sha))
	if err != nil {
		return nil, fmt.Errorf("blob: open %s: %w", sha, err)
	}
	return f, nil
}
