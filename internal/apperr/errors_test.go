package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestWrappedKinds(t *testing.T) {
	err := fmt.Errorf("load profile: %w", NotFound("profile"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound in chain: %v", err)
	}
	if errors.Is(err, ErrConflict) {
		t.Fatalf("did not expect ErrConflict")
	}
	if got := Forbidden("admin only").Error(); got != "permission denied: admin only" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestValidationError(t *testing.T) {
	err := fmt.Errorf("send: %w", NewValidationError("content is required", FieldError{Field: "content", Error: "this field is required"}))
	if !IsValidation(err) {
		t.Fatalf("expected validation error")
	}

	var v *ValidationError
	if !errors.As(err, &v) || len(v.Fields) != 1 || v.Fields[0].Field != "content" {
		t.Fatalf("unexpected fields: %+v", v)
	}
	if IsValidation(ErrNotFound) {
		t.Fatalf("ErrNotFound is not a validation error")
	}
}
