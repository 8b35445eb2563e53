package evidence

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"io"
	"path"
	"strings"

	"inv-go/internal/inv"
)

// Refs have the form <ownerID>/<sha256>-<name>. Identical content uploaded
// twice for the same owner under the same name resolves to the same ref.
func makeRef(ownerID, checksum, name string) string {
	return cleanSegment(ownerID) + "/" + checksum + "-" + cleanSegment(name)
}

// cleanSegment strips anything that could escape the owner's directory.
func cleanSegment(s string) string {
	s = path.Base(strings.ReplaceAll(s, "\\", "/"))
	if s == "." || s == "/" || s == ".." || s == "" {
		return "file"
	}
	return s
}

// validRef rejects refs that were not produced by makeRef.
func validRef(ref string) error {
	owner, file, ok := strings.Cut(ref, "/")
	if !ok || owner == "" || file == "" || strings.Contains(file, "/") || owner == ".." || file == ".." {
		return inv.ValidationError(inv.CodeInvalidField, "invalid evidence reference: %q", ref)
	}
	return nil
}

// hashingReader hashes and counts what flows through it. Reads stop one byte
// past limit so an oversized stream is detected without draining it.
type hashingReader struct {
	r     io.Reader
	h     hash.Hash
	n     int64
	limit int64
}

func newHashingReader(r io.Reader, size int64) *hashingReader {
	return &hashingReader{r: io.LimitReader(r, size+1), h: sha256.New(), limit: size}
}

func (hr *hashingReader) Read(p []byte) (int, error) {
	n, err := hr.r.Read(p)
	hr.n += int64(n)
	hr.h.Write(p[:n])
	return n, err
}

func (hr *hashingReader) checksum() string {
	return hex.EncodeToString(hr.h.Sum(nil))
}

// verify reports a mismatch between the declared and the streamed size.
func (hr *hashingReader) verify() error {
	if hr.n != hr.limit {
		return inv.ValidationError(inv.CodeInvalidField, "size mismatch: expected %d bytes, got %d", hr.limit, hr.n)
	}
	return nil
}

func notFound(ref string) error {
	return inv.NotFoundError(inv.CodeEvidenceNotFound, "evidence content not found: %s", ref)
}
