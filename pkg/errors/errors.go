// Package errors provides structured error handling for chartmotion.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindInvalidArgument indicates a constructor received an argument outside its domain.
	KindInvalidArgument
	// KindConfig indicates a settings file could not be read or validated.
	KindConfig
	// KindRender indicates a drawing backend failed while producing a frame.
	KindRender
	// KindState indicates a visual state could not be applied to a target.
	KindState
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindConfig:
		return "config"
	case KindRender:
		return "render"
	case KindState:
		return "state"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// MotionError represents a structured error raised by the motion core.
type MotionError struct {
	// Op is the operation that failed (e.g., "easing.NewCubicBezier").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *MotionError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *MotionError) Unwrap() error {
	return e.Err
}

// New returns a MotionError for op wrapping a formatted message.
func New(op string, kind ErrorKind, format string, args ...any) *MotionError {
	return &MotionError{
		Op:   op,
		Kind: kind,
		Err:  fmt.Errorf(format, args...),
	}
}

// Wrap returns a MotionError for op around err, or nil when err is nil.
func Wrap(op string, kind ErrorKind, err error) error {
	if err == nil {
		return nil
	}
	return &MotionError{Op: op, Kind: kind, Err: err}
}

// IsKind reports whether any MotionError in err's chain has the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var me *MotionError
	if !stderrors.As(err, &me) {
		return false
	}
	return me.Kind == kind
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool { return stderrors.As(err, target) }

// Join returns an error wrapping errs, discarding nils.
func Join(errs ...error) error { return stderrors.Join(errs...) }

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "canvas.DrawFrame").
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

// ErrorHandler receives errors reported by the motion core and its hosts.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *MotionError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
