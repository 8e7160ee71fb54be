package validation

import (
	"errors"
	"testing"

	"github.com/PaulBabatuyi/campusnet-gRPC/internal/apperr"
)

type sample struct {
	Name string `json:"name" validate:"notblank,max=5"`
	Site string `json:"site" validate:"omitempty,url"`
	Kind string `json:"kind" validate:"omitempty,oneof=a b"`
}

func TestStruct_Valid(t *testing.T) {
	if err := Struct(sample{Name: "ok", Site: "https://campus.edu", Kind: "a"}); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
}

func TestStruct_FieldErrors(t *testing.T) {
	err := Struct(sample{Name: "   ", Site: "nope", Kind: "c"})
	var v *apperr.ValidationError
	if !errors.As(err, &v) {
		t.Fatalf("expected ValidationError, got %T %v", err, err)
	}
	got := map[string]string{}
	for _, f := range v.Fields {
		got[f.Field] = f.Error
	}
	if got["name"] != "this field cannot be blank" {
		t.Fatalf("name message = %q", got["name"])
	}
	if got["site"] != "site must be a valid URL" {
		t.Fatalf("site message = %q", got["site"])
	}
	if _, ok := got["kind"]; !ok {
		t.Fatalf("expected kind to fail oneof")
	}
}
