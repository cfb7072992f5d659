// Package errors provides structured error handling for the XGBoost binding.
//
// Every failure the binding can surface is represented by a typed error that
// carries enough context to report the failing operation: the native call and
// engine message for foreign failures, and row/column coordinates for input
// validation failures in the dense bridge. All constructors attach a stack
// trace via cockroachdb/errors, and the types implement
// zerolog.LogObjectMarshaler so callers can log failures structurally.
package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Path and native-call errors
//
// ===========================================================================

// InvalidPathError indicates a model path that cannot be passed across the
// C boundary: empty, not valid UTF-8, or containing an embedded NUL byte.
type InvalidPathError struct {
	Path   string
	Reason string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("xgboost: invalid model path %q: %s", e.Path, e.Reason)
}

// MarshalZerologObject adds structured path-error fields to a zerolog event.
func (e *InvalidPathError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("path", e.Path).
		Str("reason", e.Reason).
		Str("type", "InvalidPathError")
}

// NewInvalidPathError creates a new InvalidPathError with a stack trace.
func NewInvalidPathError(path, reason string) error {
	err := &InvalidPathError{Path: path, Reason: reason}
	return errors.WithStack(err)
}

// NativeCallError indicates a non-zero status returned by an XGBoost C API
// call. Message holds the engine's last-error string, which must be captured
// immediately after the failing call because the engine keeps it in
// process-global state.
type NativeCallError struct {
	Call    string
	Code    int
	Message string
}

func (e *NativeCallError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("xgboost: %s failed (status %d): %s", e.Call, e.Code, e.Message)
	}
	return fmt.Sprintf("xgboost: %s failed (status %d)", e.Call, e.Code)
}

// MarshalZerologObject adds structured native-call fields to a zerolog event.
func (e *NativeCallError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("call", e.Call).
		Int("status", e.Code).
		Str("message", e.Message).
		Str("type", "NativeCallError")
}

// NewNativeCallError creates a new NativeCallError with a stack trace.
func NewNativeCallError(call string, code int, message string) error {
	err := &NativeCallError{Call: call, Code: code, Message: message}
	return errors.WithStack(err)
}

// HandleReleasedError indicates an operation on a Booster whose native
// handle has already been released via Close.
type HandleReleasedError struct {
	Op string
}

func (e *HandleReleasedError) Error() string {
	return fmt.Sprintf("xgboost: %s: booster handle already released", e.Op)
}

// MarshalZerologObject adds structured lifecycle fields to a zerolog event.
func (e *HandleReleasedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("type", "HandleReleasedError")
}

// NewHandleReleasedError creates a new HandleReleasedError with a stack trace.
func NewHandleReleasedError(op string) error {
	err := &HandleReleasedError{Op: op}
	return errors.WithStack(err)
}

// DimensionError indicates a dense buffer whose length does not match the
// declared rows*features shape.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("xgboost: %s: buffer length mismatch. Expected %d, got %d", e.Op, e.Expected, e.Got)
}

// MarshalZerologObject adds structured dimension fields to a zerolog event.
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Str("type", "DimensionError")
}

// NewDimensionError creates a new DimensionError with a stack trace.
func NewDimensionError(op string, expected, got int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Bridge input-validation errors
//
// ===========================================================================

// EmptyInputError indicates tabular input with zero rows or zero columns.
type EmptyInputError struct {
	Op   string
	Rows int
	Cols int
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("xgboost: %s: input has zero rows or columns (%d x %d)", e.Op, e.Rows, e.Cols)
}

// MarshalZerologObject adds structured shape fields to a zerolog event.
func (e *EmptyInputError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("rows", e.Rows).
		Int("cols", e.Cols).
		Str("type", "EmptyInputError")
}

// NewEmptyInputError creates a new EmptyInputError with a stack trace.
func NewEmptyInputError(op string, rows, cols int) error {
	err := &EmptyInputError{Op: op, Rows: rows, Cols: cols}
	return errors.WithStack(err)
}

// NullValueError indicates a null cell in tabular input. The bridge treats
// nulls as a hard error rather than forwarding them as the engine's
// missing-value sentinel.
type NullValueError struct {
	Row    int
	Col    int
	Column string
}

func (e *NullValueError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("xgboost: null value at row %d, col %d (column %q)", e.Row, e.Col, e.Column)
	}
	return fmt.Sprintf("xgboost: null value at row %d, col %d", e.Row, e.Col)
}

// MarshalZerologObject adds structured cell coordinates to a zerolog event.
func (e *NullValueError) MarshalZerologObject(event *zerolog.Event) {
	event.Int("row", e.Row).
		Int("col", e.Col).
		Str("column", e.Column).
		Str("type", "NullValueError")
}

// NewNullValueError creates a new NullValueError with a stack trace.
func NewNullValueError(row, col int, column string) error {
	err := &NullValueError{Row: row, Col: col, Column: column}
	return errors.WithStack(err)
}

// ColumnNotFoundError indicates a column-subset selection naming a column
// that does not exist in the input table.
type ColumnNotFoundError struct {
	Column    string
	Available []string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("xgboost: column %q not found (available: %v)", e.Column, e.Available)
}

// MarshalZerologObject adds structured column fields to a zerolog event.
func (e *ColumnNotFoundError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("column", e.Column).
		Strs("available", e.Available).
		Str("type", "ColumnNotFoundError")
}

// NewColumnNotFoundError creates a new ColumnNotFoundError with a stack trace.
func NewColumnNotFoundError(column string, available []string) error {
	err := &ColumnNotFoundError{Column: column, Available: available}
	return errors.WithStack(err)
}

// CastFailureError indicates a column whose type cannot be coerced to
// float32 (non-numeric source type).
type CastFailureError struct {
	Column   string
	FromType string
}

func (e *CastFailureError) Error() string {
	return fmt.Sprintf("xgboost: cannot cast column %q (type %s) to float32", e.Column, e.FromType)
}

// MarshalZerologObject adds structured cast fields to a zerolog event.
func (e *CastFailureError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("column", e.Column).
		Str("from_type", e.FromType).
		Str("type", "CastFailureError")
}

// NewCastFailureError creates a new CastFailureError with a stack trace.
func NewCastFailureError(column, fromType string) error {
	err := &CastFailureError{Column: column, FromType: fromType}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether err matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an error with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack attaches a stack trace to an error.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Common error variables
//
// ===========================================================================

var (
	// ErrEmptyBuffer is returned when an in-memory model buffer has zero length.
	ErrEmptyBuffer = New("empty model buffer")
)
