// Package errors provides structured error and defect reporting for the toolkit.
//
// Two classes of failure exist. Defects are broken invariants inside the
// widget tree (reconciling a consumed Def, dropping a child from an
// unexpected owner/parent state). They abort the operation in progress by
// panicking with a *DefectError after being reported to the global handler.
// Shell-level failures (bad configuration, a render target that cannot be
// written) are ordinary errors wrapped in *GuiError.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates a configuration loading or validation error.
	KindConfig
	// KindRender indicates a rendering or output error.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindDefect indicates a broken tree invariant.
	KindDefect
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	case KindDefect:
		return "defect"
	default:
		return "unknown"
	}
}

// GuiError represents a structured, recoverable error.
type GuiError struct {
	// Op is the operation that failed (e.g., "config.Load").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *GuiError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *GuiError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "engine.MouseButton").
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

// Unwrap exposes a wrapped defect when the panic value was one.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// DefectError describes a violated tree invariant.
type DefectError struct {
	// Op is the operation that detected the defect (e.g., "core.Drop").
	Op string
	// Detail describes the violated invariant.
	Detail string
	// Widget is the type name of the widget involved, if any.
	Widget string
	// StackTrace contains the call stack where the defect was detected.
	StackTrace string
	// Timestamp is when the defect was detected.
	Timestamp time.Time
}

func (e *DefectError) Error() string {
	if e.Widget != "" {
		return fmt.Sprintf("defect in %s (%s): %s", e.Op, e.Widget, e.Detail)
	}
	return fmt.Sprintf("defect in %s: %s", e.Op, e.Detail)
}

// ErrorHandler receives errors reported by the toolkit.
type ErrorHandler interface {
	// HandleError is called when a recoverable error is reported.
	HandleError(err *GuiError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
	// HandleDefect is called right before a defect aborts the current operation.
	HandleDefect(err *DefectError)
}
