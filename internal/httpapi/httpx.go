package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"inv-go/internal/evidence"
	"inv-go/internal/inv"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	identityKey
)

func newRequestID() string { return "req_" + uuid.NewString() }

// requestID returns the id assigned by withRequestID, or a fresh one.
func requestID(r *http.Request) string {
	if id, ok := r.Context().Value(requestIDKey).(string); ok {
		return id
	}
	return newRequestID()
}

func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := newRequestID()
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("content-type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func readJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// respond writes a success body of the form {"request_id": ..., key: v}.
func respond(w http.ResponseWriter, r *http.Request, status int, key string, v any) {
	writeJSON(w, status, map[string]any{"request_id": requestID(r), key: v})
}

type errorBody struct {
	Code    string `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func writeErrorBody(w http.ResponseWriter, r *http.Request, status int, body errorBody) {
	writeJSON(w, status, map[string]any{"request_id": requestID(r), "error": body})
}

// statusFor maps a failure kind to its HTTP status.
func statusFor(kind inv.Kind) int {
	switch kind {
	case inv.KindValidation:
		return http.StatusBadRequest
	case inv.KindNotFound:
		return http.StatusNotFound
	case inv.KindPermission:
		return http.StatusForbidden
	case inv.KindConflict, inv.KindState:
		return http.StatusConflict
	case inv.KindPrecondition:
		return http.StatusPreconditionFailed
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err in the error envelope. Internal failures are logged
// with their cause and reported with a generic message.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, evidence.ErrLocked) {
		writeErrorBody(w, r, http.StatusServiceUnavailable, errorBody{
			Code:    "EVIDENCE_LOCKED",
			Kind:    string(inv.KindPrecondition),
			Message: "evidence store is locked",
		})
		return
	}

	kind := inv.KindOf(err)
	body := errorBody{Code: inv.CodeOf(err), Kind: string(kind), Message: err.Error()}
	if kind == inv.KindInternal {
		s.logger.Error("request failed", "request_id", requestID(r), "method", r.Method, "path", r.URL.Path, "error", err)
		body.Code = inv.CodeInternal
		body.Message = "internal error"
	} else {
		s.logger.Debug("request rejected", "request_id", requestID(r), "code", body.Code, "error", err)
	}
	writeErrorBody(w, r, statusFor(kind), body)
}

func (s *Server) badRequest(w http.ResponseWriter, r *http.Request, code, message string) {
	writeErrorBody(w, r, http.StatusBadRequest, errorBody{Code: code, Kind: string(inv.KindValidation), Message: message})
}

func withIdentity(ctx context.Context, id inv.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// identity returns the caller set by authenticate.
func identity(r *http.Request) inv.Identity {
	id, _ := r.Context().Value(identityKey).(inv.Identity)
	return id
}
