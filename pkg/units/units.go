// Package units provides unit-tagged lengths that resolve to pixel values
// against a reference frame.
//
// A [Length] pairs a scalar with a [Unit] and carries no context of its own;
// it is resolved against a [Context] holding the parent content size and the
// screen size. The unit, not the field a length is stored in, decides which
// reference axis is used: a width declared in percent of the parent's height
// resolves against the height, which allows aspect-locked sizing.
//
// Relative lengths resolved without a parent reference frame fall back to 0
// and return [ErrNoReference]; callers report the condition and continue.
package units

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/go-canopy/canopy/pkg/geometry"
)

// Unit identifies the reference quantity a Length is measured against.
type Unit int

const (
	// Pixel is an absolute pixel count, resolved as-is.
	Pixel Unit = iota
	// ParentWidth is a percentage of the parent's content width.
	ParentWidth
	// ParentHeight is a percentage of the parent's content height.
	ParentHeight
	// ScreenWidth is a percentage of the root's resolved width.
	ScreenWidth
	// ScreenHeight is a percentage of the root's resolved height.
	ScreenHeight
)

func (u Unit) String() string {
	switch u {
	case Pixel:
		return "px"
	case ParentWidth:
		return "%pw"
	case ParentHeight:
		return "%ph"
	case ScreenWidth:
		return "%sw"
	case ScreenHeight:
		return "%sh"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

// ErrNoReference is returned when a parent-relative length is resolved
// without a parent reference frame.
var ErrNoReference = errors.New("no parent reference frame for relative length")

// Length is a scalar tagged with a unit. It resolves to pixels only in the
// context of a reference frame. Percent units store the percentage as-is
// (50 means 50%).
type Length struct {
	Value float64
	Unit  Unit
}

// Px returns a pixel-unit length.
func Px(v float64) Length {
	return Length{Value: v, Unit: Pixel}
}

func (l Length) String() string {
	return strconv.FormatFloat(l.Value, 'g', -1, 64) + l.Unit.String()
}

// Length2 is a pair of independent lengths, one per axis. The axes never
// share resolution context: each resolves against whatever reference its own
// unit names.
type Length2 struct {
	X Length
	Y Length
}

// Px2 returns a Length2 with both axes in pixels.
func Px2(x, y float64) Length2 {
	return Length2{X: Px(x), Y: Px(y)}
}

// Context is the reference frame a length resolves against.
type Context struct {
	// Parent is the parent's resolved content size.
	Parent geometry.Size
	// Screen is the root's resolved size.
	Screen geometry.Size
	// HasParent is false for the root widget, where parent-relative units
	// have no reference and fall back to 0.
	HasParent bool
}

// Resolve converts the length to pixels. Parent-relative units resolved
// without a parent return 0 and ErrNoReference; the value is always usable.
func (l Length) Resolve(ctx Context) (float64, error) {
	switch l.Unit {
	case Pixel:
		return l.Value, nil
	case ParentWidth:
		if !ctx.HasParent {
			return 0, ErrNoReference
		}
		return l.Value / 100 * ctx.Parent.Width, nil
	case ParentHeight:
		if !ctx.HasParent {
			return 0, ErrNoReference
		}
		return l.Value / 100 * ctx.Parent.Height, nil
	case ScreenWidth:
		return l.Value / 100 * ctx.Screen.Width, nil
	case ScreenHeight:
		return l.Value / 100 * ctx.Screen.Height, nil
	default:
		return 0, fmt.Errorf("unknown unit %v", l.Unit)
	}
}

// Resolve converts both axes to pixels independently. If either axis fails,
// the failing axis resolves to 0 and the first error is returned.
func (l Length2) Resolve(ctx Context) (x, y float64, err error) {
	x, err = l.X.Resolve(ctx)
	y, yerr := l.Y.Resolve(ctx)
	if err == nil {
		err = yerr
	}
	return x, y, err
}
