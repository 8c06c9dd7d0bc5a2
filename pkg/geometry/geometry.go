// Package geometry provides the pixel-space value types shared by the
// layout resolvers: points, sizes, and rectangles, plus the rectangle
// algebra used by constraint clamping and edge docking.
package geometry

import "math"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Offset represents a 2D point or vector in pixel coordinates.
type Offset struct {
	X float64
	Y float64
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  float64
	Height float64
}

// IsEmpty returns true if either dimension is zero or negative.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// TopLeft returns the top-left corner of the rectangle.
func (r Rect) TopLeft() Offset {
	return Offset{X: r.Left, Y: r.Top}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Offset {
	return Offset{
		X: (r.Left + r.Right) * 0.5,
		Y: (r.Top + r.Bottom) * 0.5,
	}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Contains returns true if the point lies inside the rectangle.
// Edges count as inside.
func (r Rect) Contains(p Offset) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// Translate returns a new rect offset by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

// CarveLeft splits off a strip of the given width from the left edge.
// The width is clamped to [0, r.Width()].
func (r Rect) CarveLeft(width float64) (strip, rest Rect) {
	width = clamp(width, 0, r.Width())
	strip = Rect{Left: r.Left, Top: r.Top, Right: r.Left + width, Bottom: r.Bottom}
	rest = Rect{Left: r.Left + width, Top: r.Top, Right: r.Right, Bottom: r.Bottom}
	return strip, rest
}

// CarveRight splits off a strip of the given width from the right edge.
func (r Rect) CarveRight(width float64) (strip, rest Rect) {
	width = clamp(width, 0, r.Width())
	strip = Rect{Left: r.Right - width, Top: r.Top, Right: r.Right, Bottom: r.Bottom}
	rest = Rect{Left: r.Left, Top: r.Top, Right: r.Right - width, Bottom: r.Bottom}
	return strip, rest
}

// CarveTop splits off a strip of the given height from the top edge.
func (r Rect) CarveTop(height float64) (strip, rest Rect) {
	height = clamp(height, 0, r.Height())
	strip = Rect{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Top + height}
	rest = Rect{Left: r.Left, Top: r.Top + height, Right: r.Right, Bottom: r.Bottom}
	return strip, rest
}

// CarveBottom splits off a strip of the given height from the bottom edge.
func (r Rect) CarveBottom(height float64) (strip, rest Rect) {
	height = clamp(height, 0, r.Height())
	strip = Rect{Left: r.Left, Top: r.Bottom - height, Right: r.Right, Bottom: r.Bottom}
	rest = Rect{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Bottom - height}
	return strip, rest
}

// ClampSize applies minimum and maximum bounds to a candidate size,
// component-wise. The minimum wins when it exceeds the maximum. A maximum
// component <= 0 means that axis has no upper bound.
func ClampSize(candidate, min, max Size) Size {
	return Size{
		Width:  clampAxis(candidate.Width, min.Width, max.Width),
		Height: clampAxis(candidate.Height, min.Height, max.Height),
	}
}

func clampAxis(v, min, max float64) float64 {
	if max > 0 && v > max {
		v = max
	}
	if v < min {
		v = min
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// ApproxEqual returns true if two float64 values are approximately equal.
func ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}
