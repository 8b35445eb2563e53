package inv

import (
	"context"
	"io"
)

// EvidenceStore holds uploaded evidence files. The core only records the
// reference Put returns.
type EvidenceStore interface {
	// Put streams size bytes from r and returns a reference for later retrieval.
	// Implementations reject content over their size limit with a ValidationError.
	Put(ctx context.Context, ownerID string, kind EvidenceKind, name string, r io.Reader, size int64) (StoredFile, error)

	// Get writes the content behind ref to w.
	Get(ctx context.Context, ref string, w io.Writer) error

	// ValidateSetup verifies that the store is reachable and writable.
	ValidateSetup() error
}

// StoredFile describes content accepted by an EvidenceStore.
type StoredFile struct {
	Ref      string
	Size     int64
	Checksum string
}
