package testutil

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"inv-go/internal/fs"
)

// MockFile represents a file in the mock filesystem.
type MockFile struct {
	Content []byte
	ModTime time.Time
}

// MockFiles is an in-memory fs.Files for testing.
type MockFiles struct {
	files map[string]*MockFile
	opens int
}

// NewMockFiles creates a new empty mock filesystem.
func NewMockFiles() *MockFiles {
	return &MockFiles{
		files: make(map[string]*MockFile),
	}
}

// AddFile adds a file to the mock filesystem. path is made absolute.
func (m *MockFiles) AddFile(path string, content []byte) {
	abs, _ := filepath.Abs(path)
	m.files[abs] = &MockFile{Content: content, ModTime: time.Now()}
}

// Opens returns how many times Open succeeded.
func (m *MockFiles) Opens() int {
	return m.opens
}

func (m *MockFiles) Resolve(rawPath string) (*fs.File, error) {
	absPath, err := filepath.Abs(rawPath)
	if err != nil {
		return nil, err
	}

	file, ok := m.files[absPath]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", absPath)
	}

	return &fs.File{
		Path:    absPath,
		Name:    filepath.Base(absPath),
		Size:    int64(len(file.Content)),
		ModTime: file.ModTime,
	}, nil
}

func (m *MockFiles) Open(f *fs.File) (io.ReadCloser, error) {
	file, ok := m.files[f.Path]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", f.Path)
	}
	m.opens++
	return io.NopCloser(bytes.NewReader(file.Content)), nil
}

// Compile-time check
var _ fs.Files = (*MockFiles)(nil)
