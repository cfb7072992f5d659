package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestInvalidPathError(t *testing.T) {
	err := NewInvalidPathError("bad\x00path", "embedded NUL byte")

	var pathErr *InvalidPathError
	if !As(err, &pathErr) {
		t.Fatalf("Expected InvalidPathError, got %T", err)
	}
	if pathErr.Reason != "embedded NUL byte" {
		t.Errorf("Unexpected reason: %q", pathErr.Reason)
	}
	if !strings.Contains(err.Error(), "invalid model path") {
		t.Errorf("Unexpected message: %q", err.Error())
	}
}

func TestNativeCallError(t *testing.T) {
	err := NewNativeCallError("XGBoosterPredict", -1, "wrong feature count")

	var nativeErr *NativeCallError
	if !As(err, &nativeErr) {
		t.Fatalf("Expected NativeCallError, got %T", err)
	}
	if nativeErr.Call != "XGBoosterPredict" || nativeErr.Code != -1 {
		t.Errorf("Unexpected fields: %+v", nativeErr)
	}

	msg := err.Error()
	if !strings.Contains(msg, "XGBoosterPredict") || !strings.Contains(msg, "wrong feature count") {
		t.Errorf("Message should name the call and engine message: %q", msg)
	}

	// Without an engine message the status alone is reported.
	bare := NewNativeCallError("XGBoosterCreate", -1, "")
	if !strings.Contains(bare.Error(), "status -1") {
		t.Errorf("Unexpected bare message: %q", bare.Error())
	}
}

func TestNullValueErrorCoordinates(t *testing.T) {
	err := NewNullValueError(2, 1, "price")

	var nullErr *NullValueError
	if !As(err, &nullErr) {
		t.Fatalf("Expected NullValueError, got %T", err)
	}
	if nullErr.Row != 2 || nullErr.Col != 1 || nullErr.Column != "price" {
		t.Errorf("Unexpected coordinates: %+v", nullErr)
	}
	if !strings.Contains(err.Error(), "row 2, col 1") {
		t.Errorf("Message should carry coordinates: %q", err.Error())
	}
}

func TestColumnNotFoundError(t *testing.T) {
	err := NewColumnNotFoundError("missing", []string{"a", "b"})

	var notFound *ColumnNotFoundError
	if !As(err, &notFound) {
		t.Fatalf("Expected ColumnNotFoundError, got %T", err)
	}
	if !strings.Contains(err.Error(), `"missing"`) {
		t.Errorf("Message should name the column: %q", err.Error())
	}
}

func TestWrapPreservesType(t *testing.T) {
	inner := NewCastFailureError("label", "string")
	wrapped := Wrap(inner, "converting frame")

	var castErr *CastFailureError
	if !As(wrapped, &castErr) {
		t.Fatal("Wrapping should preserve the typed error in the chain")
	}
	if !strings.Contains(wrapped.Error(), "converting frame") {
		t.Errorf("Wrapped message missing context: %q", wrapped.Error())
	}
}

func TestStackTraceAttached(t *testing.T) {
	err := NewEmptyInputError("frame.FromDataFrame", 0, 3)

	// cockroachdb/errors renders the stack via %+v.
	detailed := fmt.Sprintf("%+v", err)
	if !strings.Contains(detailed, "errors_test.go") {
		t.Error("Expected a stack trace referencing the call site")
	}
}
