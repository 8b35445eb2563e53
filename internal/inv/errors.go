package inv

import (
	"errors"
	"fmt"
)

// Kind is the failure category surfaced to callers.
type Kind string

const (
	KindValidation   Kind = "VALIDATION"
	KindNotFound     Kind = "NOT_FOUND"
	KindPermission   Kind = "PERMISSION"
	KindConflict     Kind = "CONFLICT"
	KindPrecondition Kind = "PRECONDITION"
	KindState        Kind = "STATE"
	KindInternal     Kind = "INTERNAL"
)

// Stable error codes. Each code belongs to exactly one Kind.
const (
	CodeInvalidField        = "INVALID_FIELD"
	CodeMissingField        = "MISSING_FIELD"
	CodeUnknownPerson       = "UNKNOWN_PERSON"
	CodeUnknownSigner       = "UNKNOWN_SIGNER"
	CodeUnknownLocation     = "UNKNOWN_LOCATION"
	CodeUnknownSupplier     = "UNKNOWN_SUPPLIER"
	CodeFileTooLarge        = "FILE_TOO_LARGE"
	CodeEvidenceOwner       = "EVIDENCE_OWNER_MISMATCH"
	CodeAssetNotFound       = "ASSET_NOT_FOUND"
	CodeCustodyNotFound     = "CUSTODY_NOT_FOUND"
	CodeAssessmentNotFound  = "ASSESSMENT_NOT_FOUND"
	CodeEvidenceNotFound    = "EVIDENCE_NOT_FOUND"
	CodeLocationNotFound    = "LOCATION_NOT_FOUND"
	CodeSupplierNotFound    = "SUPPLIER_NOT_FOUND"
	CodeCapabilityDenied    = "CAPABILITY_DENIED"
	CodeNotOwner            = "NOT_OWNER"
	CodeElevatedOnly        = "ELEVATED_ONLY"
	CodeDuplicateTag        = "DUPLICATE_TAG"
	CodeDuplicateLocation   = "DUPLICATE_LOCATION_CODE"
	CodeCatalogInUse        = "CATALOG_ENTRY_IN_USE"
	CodeOpenCustodyExists   = "OPEN_CUSTODY_EXISTS"
	CodeDraftAssessment     = "DRAFT_ASSESSMENT_EXISTS"
	CodeMissingAcquisition  = "MISSING_ACQUISITION_EVIDENCE"
	CodeMissingCustodySign  = "MISSING_CUSTODY_EVIDENCE"
	CodeMissingCancellation = "MISSING_CANCELLATION_EVIDENCE"
	CodeMissingReport       = "MISSING_REPORT_EVIDENCE"
	CodeInvalidState        = "INVALID_STATE"
	CodePendingCustody      = "CUSTODY_PENDING"
	CodeInternal            = "INTERNAL"
)

// Error is the typed failure returned by every core operation.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches by kind, and by code when the target carries one.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Code == "" || t.Code == e.Code
}

// Sentinels for errors.Is checks by kind.
var (
	ErrValidation   = &Error{Kind: KindValidation}
	ErrNotFound     = &Error{Kind: KindNotFound}
	ErrPermission   = &Error{Kind: KindPermission}
	ErrConflict     = &Error{Kind: KindConflict}
	ErrPrecondition = &Error{Kind: KindPrecondition}
	ErrState        = &Error{Kind: KindState}
	ErrInternal     = &Error{Kind: KindInternal}
)

func newError(kind Kind, code, format string, args ...any) *Error {
	return &Error{Kind: kind, Code: code, Message: fmt.Sprintf(format, args...)}
}

func ValidationError(code, format string, args ...any) *Error {
	return newError(KindValidation, code, format, args...)
}

func NotFoundError(code, format string, args ...any) *Error {
	return newError(KindNotFound, code, format, args...)
}

func PermissionError(code, format string, args ...any) *Error {
	return newError(KindPermission, code, format, args...)
}

func ConflictError(code, format string, args ...any) *Error {
	return newError(KindConflict, code, format, args...)
}

func PreconditionError(code, format string, args ...any) *Error {
	return newError(KindPrecondition, code, format, args...)
}

func StateError(code, format string, args ...any) *Error {
	return newError(KindState, code, format, args...)
}

// InternalError wraps an unexpected failure. The cause is kept for logs only.
func InternalError(msg string, cause error) *Error {
	return &Error{Kind: KindInternal, Code: CodeInternal, Message: msg, Cause: cause}
}

// KindOf returns the Kind of err, or KindInternal for untyped errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// CodeOf returns the stable code of err, or CodeInternal for untyped errors.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Code != "" {
		return e.Code
	}
	return CodeInternal
}
