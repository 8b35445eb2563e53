package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"inv-go/internal/inv"
)

// File is a local regular file chosen for upload as evidence.
type File struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// Files resolves and opens local files.
type Files interface {
	// Resolve validates rawPath and returns the file it names.
	Resolve(rawPath string) (*File, error)

	// Open opens a resolved file for reading.
	Open(f *File) (io.ReadCloser, error)
}

// OSFiles is the real filesystem implementation of Files.
type OSFiles struct{}

func NewOSFiles() *OSFiles {
	return &OSFiles{}
}

// Resolve accepts regular files only. Symlinks are rejected rather than
// followed.
func (m *OSFiles) Resolve(rawPath string) (*File, error) {
	absPath, err := filepath.Abs(rawPath)
	if err != nil {
		return nil, fmt.Errorf("resolving absolute path: %w", err)
	}

	info, err := os.Lstat(absPath)
	if err != nil {
		return nil, fmt.Errorf("stat path: %w", err)
	}

	mode := info.Mode()
	switch {
	case mode.IsDir():
		return nil, fmt.Errorf("directories cannot be uploaded: %s", absPath)
	case mode&os.ModeSymlink != 0:
		return nil, fmt.Errorf("symlinks not supported: %s", absPath)
	case mode&os.ModeDevice != 0:
		return nil, fmt.Errorf("device files not supported: %s", absPath)
	case mode&os.ModeNamedPipe != 0:
		return nil, fmt.Errorf("named pipes not supported: %s", absPath)
	case mode&os.ModeSocket != 0:
		return nil, fmt.Errorf("sockets not supported: %s", absPath)
	}

	return &File{
		Path:    absPath,
		Name:    info.Name(),
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}, nil
}

func (m *OSFiles) Open(f *File) (io.ReadCloser, error) {
	return os.Open(f.Path)
}

var photoExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true,
	".webp": true, ".heic": true, ".bmp": true, ".tif": true, ".tiff": true,
}

// KindFor guesses the evidence kind from a file name: images are photos,
// everything else is a document.
func KindFor(name string) inv.EvidenceKind {
	if photoExtensions[strings.ToLower(filepath.Ext(name))] {
		return inv.EvidencePhoto
	}
	return inv.EvidenceDocument
}

// CreateOutput opens path for writing downloaded evidence. An existing file
// is only replaced when overwrite is set.
func CreateOutput(path string, overwrite bool) (*os.File, error) {
	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0600)
	if err != nil {
		if os.IsExist(err) {
			return nil, fmt.Errorf("%s already exists", path)
		}
		return nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, nil
}

var _ Files = (*OSFiles)(nil)
