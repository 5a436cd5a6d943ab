// Package errors provides structured error handling for flipclock.
//
// Library code returns ordinary Go errors. Failures that cross a component
// boundary are wrapped in a [ClockError] so callers can branch on [ErrorKind]
// with errors.As, and are forwarded to the global [ErrorHandler] through
// [Report] when nobody up the stack can act on them.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrIncompleteDecomposition reports that a timestamp could not be split into
// the full set of calendar fields a clock face needs.
var ErrIncompleteDecomposition = stderrors.New("timestamp decomposition incomplete")

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindPrecondition indicates a caller-supplied value violated a precondition.
	KindPrecondition
	// KindConfig indicates an invalid or unreadable configuration.
	KindConfig
	// KindRender indicates a rasterization or encoding failure.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindPrecondition:
		return "precondition"
	case KindConfig:
		return "config"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// ClockError represents a structured error raised by a flipclock component.
type ClockError struct {
	// Op is the operation that failed (e.g., "clockface.SetTime").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

// New returns a ClockError for op wrapping err.
func New(op string, kind ErrorKind, err error) *ClockError {
	return &ClockError{Op: op, Kind: kind, Err: err, Timestamp: time.Now()}
}

func (e *ClockError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *ClockError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first ClockError in err's chain,
// or KindUnknown if there is none.
func KindOf(err error) ErrorKind {
	var ce *ClockError
	if stderrors.As(err, &ce) {
		return ce.Kind
	}
	return KindUnknown
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "preview.frameLoop").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by flipclock components.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *ClockError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
