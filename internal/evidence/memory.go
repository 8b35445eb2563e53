package evidence

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"inv-go/internal/inv"
)

// MemoryStore keeps evidence content in memory. It is safe for concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	content map[string][]byte // ref -> content
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{content: make(map[string][]byte)}
}

func (m *MemoryStore) Put(ctx context.Context, ownerID string, kind inv.EvidenceKind, name string, r io.Reader, size int64) (inv.StoredFile, error) {
	hr := newHashingReader(r, size)
	data, err := io.ReadAll(hr)
	if err != nil {
		return inv.StoredFile{}, fmt.Errorf("failed to read content: %w", err)
	}
	if err := hr.verify(); err != nil {
		return inv.StoredFile{}, err
	}

	ref := makeRef(ownerID, hr.checksum(), name)
	m.mu.Lock()
	m.content[ref] = data
	m.mu.Unlock()

	return inv.StoredFile{Ref: ref, Size: size, Checksum: hr.checksum()}, nil
}

func (m *MemoryStore) Get(ctx context.Context, ref string, w io.Writer) error {
	m.mu.RLock()
	data, ok := m.content[ref]
	m.mu.RUnlock()
	if !ok {
		return notFound(ref)
	}

	if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write content: %w", err)
	}
	return nil
}

// Len returns the number of stored files.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.content)
}

// ValidateSetup always succeeds for the in-memory store.
func (m *MemoryStore) ValidateSetup() error {
	return nil
}

var _ inv.EvidenceStore = (*MemoryStore)(nil)
