package errors

import (
	"strings"
	"testing"
)

func TestRecoverConvertsPanic(t *testing.T) {
	fn := func() (err error) {
		defer Recover(&err, "frame.FromDataFrame")
		panic("ragged input")
	}

	err := fn()
	if err == nil {
		t.Fatal("Expected recovered panic as error")
	}

	var panicErr *PanicError
	if !As(err, &panicErr) {
		t.Fatalf("Expected PanicError, got %T: %v", err, err)
	}
	if panicErr.Operation != "frame.FromDataFrame" {
		t.Errorf("Unexpected operation: %q", panicErr.Operation)
	}
	if panicErr.StackTrace == "" {
		t.Error("Expected a captured stack trace")
	}
}

func TestRecoverKeepsExistingError(t *testing.T) {
	sentinel := New("original failure")
	fn := func() (err error) {
		defer Recover(&err, "convert")
		err = sentinel
		panic("after error")
	}

	err := fn()
	if err == nil {
		t.Fatal("Expected an error")
	}
	if !Is(err, sentinel) {
		t.Error("Original error should remain in the chain")
	}
	if !strings.Contains(err.Error(), "panic in convert") {
		t.Errorf("Panic context missing: %q", err.Error())
	}
}

func TestSafeExecute(t *testing.T) {
	err := SafeExecute("noop", func() error { return nil })
	if err != nil {
		t.Fatalf("Expected nil, got %v", err)
	}

	err = SafeExecute("boom", func() error { panic("boom") })
	if err == nil {
		t.Fatal("Expected recovered panic")
	}
}
