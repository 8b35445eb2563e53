package evidence

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"inv-go/internal/inv"
)

// FileSystemStore keeps evidence under a root directory:
//
//	<root>/
//	  <ownerID>/
//	    <sha256>-<name>
//	  .tmp/          (uploads in progress)
type FileSystemStore struct {
	root   string
	tmpDir string
}

// NewFileSystemStore creates the directory layout under root.
func NewFileSystemStore(root string) (*FileSystemStore, error) {
	tmpDir := filepath.Join(root, ".tmp")
	if err := os.MkdirAll(tmpDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create evidence directory: %w", err)
	}
	return &FileSystemStore{root: root, tmpDir: tmpDir}, nil
}

// Put streams content to a temp file while hashing it, then renames it to
// its content-derived ref.
func (s *FileSystemStore) Put(ctx context.Context, ownerID string, kind inv.EvidenceKind, name string, r io.Reader, size int64) (inv.StoredFile, error) {
	tmpFile, err := os.CreateTemp(s.tmpDir, "upload-*")
	if err != nil {
		return inv.StoredFile{}, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	hr := newHashingReader(r, size)
	if _, err := io.Copy(tmpFile, hr); err != nil {
		tmpFile.Close()
		return inv.StoredFile{}, fmt.Errorf("failed to write data: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return inv.StoredFile{}, fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return inv.StoredFile{}, fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := hr.verify(); err != nil {
		return inv.StoredFile{}, err
	}

	ref := makeRef(ownerID, hr.checksum(), name)
	destPath := s.path(ref)
	if err := os.MkdirAll(filepath.Dir(destPath), 0750); err != nil {
		return inv.StoredFile{}, fmt.Errorf("failed to create owner directory: %w", err)
	}
	if err := os.Rename(tmpPath, destPath); err != nil {
		return inv.StoredFile{}, fmt.Errorf("failed to rename temp file: %w", err)
	}

	success = true
	return inv.StoredFile{Ref: ref, Size: size, Checksum: hr.checksum()}, nil
}

func (s *FileSystemStore) Get(ctx context.Context, ref string, w io.Writer) error {
	if err := validRef(ref); err != nil {
		return err
	}
	f, err := os.Open(s.path(ref))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return notFound(ref)
		}
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	return nil
}

// ValidateSetup verifies that the root is a writable directory.
func (s *FileSystemStore) ValidateSetup() error {
	info, err := os.Stat(s.root)
	if err != nil {
		return fmt.Errorf("evidence root not accessible: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("evidence root is not a directory: %s", s.root)
	}

	f, err := os.CreateTemp(s.tmpDir, "check-*")
	if err != nil {
		return fmt.Errorf("evidence root not writable: %w", err)
	}
	f.Close()
	return os.Remove(f.Name())
}

func (s *FileSystemStore) path(ref string) string {
	return filepath.Join(s.root, filepath.FromSlash(ref))
}

var _ inv.EvidenceStore = (*FileSystemStore)(nil)
