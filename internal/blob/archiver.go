package blob

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Archiver files committed .uhc containers away under
// archives/YYYY/MM/<PackageId>.uhc.
type Archiver struct {
	root string
}

// NewArchiver creates the archive root if needed.
func NewArchiver(root string) (*Archiver, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("archive: create root %s: %w", root, err)
	}
	return &Archiver{root: root}, nil
}

// DestinationPath is where a package committed at the given time belongs.
func (a *Archiver) DestinationPath(packageID uuid.UUID, committedAt time.Time) string {
	utc := committedAt.UTC()
	return filepath.Join(a.root,
		fmt.Sprintf("%04d", utc.Year()),
		fmt.Sprintf("%02d", int(utc.Month())),
		packageID.String()+".uhc")
}

// Archive moves a spooled container into the archive tree and returns the
// final path. Rename is tried first; a cross-device source falls back to
// copy-then-remove. Archiving an already-archived package is a no-op.
func (a *Archiver) Archive(srcPath string, packageID uuid.UUID, committedAt time.Time) (string, error) {
	dst := a.DestinationPath(packageID, committedAt)
	if _, err := os.Stat(dst); err == nil {
		return dst, nil
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("archive: create month dir: %w", err)
	}

	if err := os.Rename(srcPath, dst); err == nil {
		return dst, nil
	}
	if err := copyFile(srcPath, dst); err != nil {
		return "", err
	}
	if err := os.Remove(srcPath); err != nil && !os.IsNotExist(err) {
		return "", fmt.Errorf("archive: remove spooled %s: %w", srcPath, err)
	}
	return dst, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("archive: open %s: %w", src, err)
	}
	defer in.Close()

	tmp := dst + ".partial"
	out, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("archive: create %s: %w", tmp, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(tmp)
		return fmt.Errorf("archive: copy to %s: %w", tmp, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("archive: close %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, dst); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("archive: publish %s: %w", dst, err)
	}
	return nil
}
