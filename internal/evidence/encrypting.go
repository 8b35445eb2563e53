package evidence

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"sync"

	"inv-go/internal/inv"
)

// ErrLocked is returned by Get until Unlock has succeeded.
var ErrLocked = errors.New("evidence store is locked; unlock it with the passphrase")

// EncryptingStore seals content with an inv.Encryptor before handing it to
// the inner store. Size and Checksum describe the plaintext.
type EncryptingStore struct {
	inner     inv.EvidenceStore
	encryptor inv.Encryptor

	mu  sync.RWMutex
	dec inv.DecryptionContext
}

func NewEncryptingStore(inner inv.EvidenceStore, encryptor inv.Encryptor) *EncryptingStore {
	return &EncryptingStore{inner: inner, encryptor: encryptor}
}

func (e *EncryptingStore) Put(ctx context.Context, ownerID string, kind inv.EvidenceKind, name string, r io.Reader, size int64) (inv.StoredFile, error) {
	hr := newHashingReader(r, size)
	var sealed bytes.Buffer
	if err := e.encryptor.Encrypt(hr, &sealed); err != nil {
		return inv.StoredFile{}, fmt.Errorf("encrypting content: %w", err)
	}
	if err := hr.verify(); err != nil {
		return inv.StoredFile{}, err
	}

	stored, err := e.inner.Put(ctx, ownerID, kind, name, &sealed, int64(sealed.Len()))
	if err != nil {
		return inv.StoredFile{}, err
	}
	return inv.StoredFile{Ref: stored.Ref, Size: size, Checksum: hr.checksum()}, nil
}

// Get decrypts the content behind ref into w. The plaintext is buffered and
// only written once decryption has completed.
func (e *EncryptingStore) Get(ctx context.Context, ref string, w io.Writer) error {
	e.mu.RLock()
	dec := e.dec
	e.mu.RUnlock()
	if dec == nil {
		return ErrLocked
	}

	var sealed bytes.Buffer
	if err := e.inner.Get(ctx, ref, &sealed); err != nil {
		return err
	}
	var plain bytes.Buffer
	if err := dec.Decrypt(&sealed, &plain); err != nil {
		return fmt.Errorf("decrypting content: %w", err)
	}
	if _, err := io.Copy(w, &plain); err != nil {
		return fmt.Errorf("failed to write content: %w", err)
	}
	return nil
}

// Unlock enables Get for the lifetime of the store.
func (e *EncryptingStore) Unlock(passphrase string) error {
	dec, err := e.encryptor.Unlock(passphrase)
	if err != nil {
		return err
	}
	e.mu.Lock()
	e.dec = dec
	e.mu.Unlock()
	return nil
}

func (e *EncryptingStore) ValidateSetup() error {
	if !e.encryptor.IsConfigured() {
		return fmt.Errorf("encryption keys are not set up")
	}
	return e.inner.ValidateSetup()
}

// Checksum returns the hex sha256 of data, matching StoredFile.Checksum.
func Checksum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

var _ inv.EvidenceStore = (*EncryptingStore)(nil)

// findEncrypting walks Unwrap chains looking for an EncryptingStore.
func findEncrypting(store inv.EvidenceStore) *EncryptingStore {
	for store != nil {
		if e, ok := store.(*EncryptingStore); ok {
			return e
		}
		u, ok := store.(interface{ Unwrap() inv.EvidenceStore })
		if !ok {
			return nil
		}
		store = u.Unwrap()
	}
	return nil
}

// IsEncrypted reports whether reading from store requires Unlock.
func IsEncrypted(store inv.EvidenceStore) bool {
	return findEncrypting(store) != nil
}

// Unlock unlocks the encrypting layer of store, if it has one.
func Unlock(store inv.EvidenceStore, passphrase string) error {
	e := findEncrypting(store)
	if e == nil {
		return nil
	}
	return e.Unlock(passphrase)
}
