package widgets

import "fmt"

// AnchorStyle selects which parent edges a widget's position is measured
// from. The flags are independent: anchoring to opposite edges (Left and
// Right, or Top and Bottom) stretches the widget across that axis, with the
// raw position and size values reinterpreted as the two margins.
type AnchorStyle struct {
	Left   bool
	Top    bool
	Right  bool
	Bottom bool
}

// DockStyle determines how a widget claims space from its parent's remaining
// free rectangle. Styles are mutually exclusive per widget.
type DockStyle int

const (
	// DockNone positions the widget independently via anchors/alignment.
	DockNone DockStyle = iota
	// DockLeft carves a strip off the left edge of the remaining rectangle.
	DockLeft
	// DockTop carves a strip off the top edge.
	DockTop
	// DockRight carves a strip off the right edge.
	DockRight
	// DockBottom carves a strip off the bottom edge.
	DockBottom
	// DockFill consumes whatever remains after all edge-docked siblings.
	DockFill
)

func (d DockStyle) String() string {
	switch d {
	case DockNone:
		return "none"
	case DockLeft:
		return "left"
	case DockTop:
		return "top"
	case DockRight:
		return "right"
	case DockBottom:
		return "bottom"
	case DockFill:
		return "fill"
	default:
		return fmt.Sprintf("DockStyle(%d)", int(d))
	}
}

// Align names the parent corner, edge midpoint, or center used as the
// position origin for an axis with no anchor flags set. Raw position values
// push the widget rightward/downward from left/top/center origins and inward
// from right/bottom origins.
type Align int

const (
	AlignTopLeft Align = iota
	AlignTopCenter
	AlignTopRight
	AlignCenterLeft
	AlignCenter
	AlignCenterRight
	AlignBottomLeft
	AlignBottomCenter
	AlignBottomRight
)

// axis slot within an Align value
const (
	alignStart = iota
	alignMiddle
	alignEnd
)

func (a Align) horizontal() int { return int(a) % 3 }
func (a Align) vertical() int   { return int(a) / 3 }

// PositionType governs a widget's reference frame and flow participation.
type PositionType int

const (
	// PositionStatic resolves against the parent's content rectangle.
	PositionStatic PositionType = iota
	// PositionRelative resolves against the parent's content rectangle.
	PositionRelative
	// PositionAbsolute resolves against the root screen rectangle.
	PositionAbsolute
	// PositionFixed resolves against the root screen rectangle.
	PositionFixed
)

func (p PositionType) String() string {
	switch p {
	case PositionStatic:
		return "static"
	case PositionRelative:
		return "relative"
	case PositionAbsolute:
		return "absolute"
	case PositionFixed:
		return "fixed"
	default:
		return fmt.Sprintf("PositionType(%d)", int(p))
	}
}

// screenRelative reports whether the reference frame is the root screen
// rectangle rather than the parent's content rectangle.
func (p PositionType) screenRelative() bool {
	return p == PositionAbsolute || p == PositionFixed
}
