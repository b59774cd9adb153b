package fielderr

import (
	"errors"
	"testing"
)

func TestNewAndIs(t *testing.T) {
	err := New(InvalidArgument, "bad value %d", 7)
	if !Is(err, InvalidArgument) {
		t.Fatalf("expected Is(InvalidArgument) true")
	}
	if Is(err, NotFound) {
		t.Fatalf("expected Is(NotFound) false")
	}
	if err.Error() == "" {
		t.Fatalf("expected non-empty error string")
	}
}

func TestWrapUnwrap(t *testing.T) {
	root := errors.New("root cause")
	wrapped := Wrap(root, DimensionMismatch, "shapes disagree")
	if !Is(wrapped, DimensionMismatch) {
		t.Fatalf("expected DimensionMismatch code")
	}
	if wrapped.Unwrap() == nil {
		t.Fatalf("expected non-nil unwrap")
	}
}
