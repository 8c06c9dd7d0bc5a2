// Package widgets implements the widget tree and its per-frame geometry
// resolution: unit-tagged raw values become absolute pixel rectangles under
// anchor, alignment, constraint, and docking rules, with any raw quantity
// animatable through a transition.
//
// # The Widget Tree
//
// Widgets form a tree. Each widget exclusively owns its ordered children and
// holds a non-owning back-reference to its parent; the parentless widget is
// the root and its reference frame is the screen. [New] builds a widget under
// a parent from a pixel destination rectangle; [NewRoot] builds a root sized
// to the screen.
//
//	root := widgets.NewRoot("screen", geometry.Size{Width: 800, Height: 600})
//	panel := widgets.New(root, "panel", geometry.RectFromLTWH(10, 10, 200, 150))
//
// # Resolution Order
//
// Each frame, [Widget.Update] walks the tree pre-order. A widget first
// advances its active transitions (mutating the raw values), then resolves
// raw min/max and dimensions through the unit resolver, clamps (minimum wins
// over maximum), applies anchor/alignment against the parent's
// already-resolved content rectangle, and finally runs the docking pass over
// its children. Docked children receive their rectangle from the carve and
// skip their own position and size resolution that frame.
//
// Setters take effect immediately: mutating a raw field recomputes the
// resolved geometry of the affected subtree synchronously, so a later step
// in the same pass observes up-to-date values. Transitions are the only
// field advanced per frame rather than per mutation.
//
// # Failure Semantics
//
// A frame always completes. Malformed configurations (a percent length on
// the root, min above max, a docked size overflowing its container) resolve
// to documented fallbacks and are reported through the diagnostics handler
// in pkg/errors. API misuse on mutating operations returns an error to the
// caller and leaves the tree untouched.
package widgets
