package httpapi

import (
	"bytes"
	"errors"
	"mime"
	"net/http"
	"path"
	"strconv"

	"github.com/go-chi/chi/v5"

	"inv-go/internal/inv"
)

// multipartMemory is how much of an upload is held in memory before the
// rest spills to a temporary file.
const multipartMemory = 1 << 20

// attachEvidence accepts multipart/form-data with the fields owner_type,
// owner_id, kind, purpose (optional) and the file part "file".
func (s *Server) attachEvidence(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload+multipartMemory)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			s.writeError(w, r, inv.ValidationError(inv.CodeFileTooLarge, "upload exceeds %d bytes", s.maxUpload))
			return
		}
		s.badRequest(w, r, "BAD_MULTIPART", err.Error())
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, r, inv.ValidationError(inv.CodeMissingField, "file part is required"))
		return
	}
	defer file.Close()
	if header.Size > s.maxUpload {
		s.writeError(w, r, inv.ValidationError(inv.CodeFileTooLarge, "file is %d bytes; the limit is %d", header.Size, s.maxUpload))
		return
	}

	cmd := inv.AttachEvidence{
		OwnerID:  r.FormValue("owner_id"),
		FileName: header.Filename,
		Size:     header.Size,
		Content:  file,
	}
	if cmd.OwnerType, err = inv.ParseOwnerType(r.FormValue("owner_type")); err != nil {
		s.writeError(w, r, err)
		return
	}
	kind := r.FormValue("kind")
	if kind == "" {
		kind = string(inv.EvidenceDocument)
	}
	if cmd.Kind, err = inv.ParseEvidenceKind(kind); err != nil {
		s.writeError(w, r, err)
		return
	}
	if raw := r.FormValue("purpose"); raw != "" {
		if cmd.Purpose, err = inv.ParseEvidencePurpose(raw); err != nil {
			s.writeError(w, r, err)
			return
		}
	}

	ev, err := s.svc.AttachEvidence(r.Context(), identity(r), cmd)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respond(w, r, http.StatusCreated, "evidence", newEvidenceView(ev))
}

func (s *Server) listEvidence(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ownerType, err := inv.ParseOwnerType(q.Get("owner_type"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	items, err := s.svc.ListEvidence(r.Context(), identity(r), ownerType, q.Get("owner_id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, "evidence", mapViews(items, newEvidenceView))
}

// evidenceContent streams the stored file. Content is read fully before any
// header is written so a failed read still gets the error envelope.
func (s *Server) evidenceContent(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	ev, err := s.svc.OpenEvidence(r.Context(), identity(r), chi.URLParam(r, "evidence_id"), &buf)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	contentType := "application/octet-stream"
	if byExt := mime.TypeByExtension(path.Ext(ev.FileName)); byExt != "" {
		contentType = byExt
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": ev.FileName}))
	w.Header().Set("X-Checksum-Sha256", ev.Checksum)
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
