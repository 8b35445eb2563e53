package testutil

import (
	"inv-go/internal/evidence"
)

// NewTestEvidenceStore creates a new in-memory evidence store for testing.
func NewTestEvidenceStore() *evidence.MemoryStore {
	return evidence.NewMemoryStore()
}
