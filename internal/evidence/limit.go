package evidence

import (
	"context"
	"io"

	"inv-go/internal/inv"
)

// LimitedStore rejects uploads whose declared size exceeds MaxSize before
// any content reaches the underlying store.
type LimitedStore struct {
	inv.EvidenceStore
	MaxSize int64
}

func NewLimitedStore(inner inv.EvidenceStore, maxSize int64) *LimitedStore {
	return &LimitedStore{EvidenceStore: inner, MaxSize: maxSize}
}

func (l *LimitedStore) Put(ctx context.Context, ownerID string, kind inv.EvidenceKind, name string, r io.Reader, size int64) (inv.StoredFile, error) {
	if l.MaxSize > 0 && size > l.MaxSize {
		return inv.StoredFile{}, inv.ValidationError(inv.CodeFileTooLarge, "file is %d bytes; the limit is %d", size, l.MaxSize)
	}
	return l.EvidenceStore.Put(ctx, ownerID, kind, name, r, size)
}

var _ inv.EvidenceStore = (*LimitedStore)(nil)

// Unwrap returns the store being limited.
func (l *LimitedStore) Unwrap() inv.EvidenceStore {
	return l.EvidenceStore
}
