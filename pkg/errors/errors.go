// Package errors provides structured error reporting for the layout engine.
//
// Layout resolution never fails a frame: configuration problems (a percent
// length with no reference frame, a minimum above a maximum, a docked size
// overflowing its container) degrade to documented fallback values and are
// reported here as [LayoutError] values with [KindConfig]. Programming errors
// (a relative operation on a widget with no parent) are returned to the
// caller of the mutating operation, typically wrapping [ErrNoParent].
package errors

import (
	"errors"
	"fmt"
	"time"
)

// Kind identifies the category of a layout error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindConfig indicates a configuration error resolved via a documented
	// fallback value. The frame completes.
	KindConfig
	// KindUsage indicates API misuse signaled to the caller of a mutating
	// operation.
	KindUsage
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindUsage:
		return "usage"
	default:
		return "unknown"
	}
}

// LayoutError represents a structured error in the layout engine.
type LayoutError struct {
	// Op is the operation that degraded (e.g., "widgets.resolveGeometry").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Widget is the name of the widget involved, if known.
	Widget string
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *LayoutError) Error() string {
	if e.Widget != "" {
		return fmt.Sprintf("%s [%s] widget=%s: %v", e.Op, e.Kind, e.Widget, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *LayoutError) Unwrap() error {
	return e.Err
}

// ErrNoParent signals a relative operation on a widget that has no parent.
var ErrNoParent = errors.New("widget has no parent")

// ErrNotRoot signals a root-only operation invoked on a child widget.
var ErrNotRoot = errors.New("widget is not the root")
