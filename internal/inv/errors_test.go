package inv_test

import (
	"errors"
	"fmt"
	"testing"

	"inv-go/internal/inv"
)

func TestError_Is(t *testing.T) {
	err := fmt.Errorf("loading: %w", inv.ConflictError(inv.CodeDuplicateTag, "tag %s taken", "T-1"))

	if !errors.Is(err, inv.ErrConflict) {
		t.Error("errors.Is(err, ErrConflict) = false")
	}
	if errors.Is(err, inv.ErrState) {
		t.Error("errors.Is(err, ErrState) = true")
	}
	if !errors.Is(err, &inv.Error{Kind: inv.KindConflict, Code: inv.CodeDuplicateTag}) {
		t.Error("errors.Is with matching code = false")
	}
	if errors.Is(err, &inv.Error{Kind: inv.KindConflict, Code: inv.CodeDraftAssessment}) {
		t.Error("errors.Is with other code = true")
	}
	if got := err.Error(); got != "loading: tag T-1 taken" {
		t.Errorf("Error() = %q", got)
	}
}

func TestKindAndCodeOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind inv.Kind
		wantCode string
	}{
		{"typed", inv.StateError(inv.CodeInvalidState, "x"), inv.KindState, inv.CodeInvalidState},
		{"wrapped", fmt.Errorf("a: %w", inv.NotFoundError(inv.CodeAssetNotFound, "x")), inv.KindNotFound, inv.CodeAssetNotFound},
		{"untyped", errors.New("disk on fire"), inv.KindInternal, inv.CodeInternal},
		{"internal with cause", inv.InternalError("failed", errors.New("boom")), inv.KindInternal, inv.CodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inv.KindOf(tt.err); got != tt.wantKind {
				t.Errorf("KindOf() = %s, want %s", got, tt.wantKind)
			}
			if got := inv.CodeOf(tt.err); got != tt.wantCode {
				t.Errorf("CodeOf() = %s, want %s", got, tt.wantCode)
			}
		})
	}

	cause := errors.New("boom")
	if !errors.Is(inv.InternalError("failed", cause), cause) {
		t.Error("InternalError does not unwrap to its cause")
	}
}
