package widgets

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"golang.org/x/image/font"

	"github.com/go-canopy/canopy/pkg/animation"
	"github.com/go-canopy/canopy/pkg/config"
	"github.com/go-canopy/canopy/pkg/errors"
	"github.com/go-canopy/canopy/pkg/geometry"
	"github.com/go-canopy/canopy/pkg/units"
)

// Renderer receives drawable registration for widgets. The engine never
// draws pixels itself; it hands resolved rectangles, z-indices, and the
// drawable-reload flag to this collaborator.
type Renderer interface {
	AddDrawables(w *Widget)
	RemoveDrawables(w *Widget)
}

// Widget is a node in the UI tree. It owns raw (unit-tagged, possibly
// animating) position, dimension, and constraint values, and orchestrates
// the resolvers that turn them into an absolute pixel rectangle each frame.
//
// Widgets are not safe for concurrent use; the tree belongs to the frame
// thread (setters may re-enter from callbacks inside a frame, which is fine
// since they recompute synchronously).
type Widget struct {
	id   uuid.UUID
	name string

	parent   *Widget
	children []*Widget

	// raw, unit-tagged source values
	rawPos   units.Length2
	rawSize  units.Length2
	rawMin   units.Length2
	rawMax   units.Length2
	dockSize units.Length

	// active transitions, one per raw field, nil when idle
	posTr      *animation.Transition[units.Length2]
	sizeTr     *animation.Transition[units.Length2]
	minTr      *animation.Transition[units.Length2]
	maxTr      *animation.Transition[units.Length2]
	dockSizeTr *animation.Transition[units.Length]

	anchor      AnchorStyle
	align       Align
	dock        DockStyle
	positioning PositionType
	zIndex      int
	enabled     bool

	// screen is the root reference frame; meaningful on the root only.
	screen   geometry.Size
	defaults AnimationDefaults

	resolvedPos  geometry.Offset
	resolvedSize geometry.Size
	needsReload  bool

	font     font.Face
	renderer Renderer
}

// New creates a widget under parent. destRect is a pixel rectangle seeding
// the raw position and dimensions; unit-tagged values can be set afterwards.
// A nil parent makes the widget a root whose screen is destRect's size.
func New(parent *Widget, name string, destRect geometry.Rect) *Widget {
	w := &Widget{
		id:      uuid.New(),
		name:    name,
		rawPos:  units.Px2(destRect.Left, destRect.Top),
		rawSize: units.Px2(destRect.Width(), destRect.Height()),
		enabled: true,
	}
	if parent != nil {
		w.parent = parent
		parent.children = append(parent.children, w)
	} else {
		w.screen = destRect.Size()
	}
	w.layout(nil)
	return w
}

// NewRoot creates a parentless widget filling the screen rectangle.
func NewRoot(name string, screen geometry.Size) *Widget {
	return New(nil, name, geometry.RectFromLTWH(0, 0, screen.Width, screen.Height))
}

// NewRootFromConfig creates a root widget from resolved configuration:
// screen size and transition defaults.
func NewRootFromConfig(name string, res *config.Resolved) *Widget {
	root := NewRoot(name, res.Screen)
	root.SetAnimationDefaults(AnimationDefaults{
		Duration: res.TransitionDuration,
		Curve:    res.Curve,
	})
	return root
}

// ID returns the widget's stable identity, used by renderers as a
// registration and paint-order key.
func (w *Widget) ID() uuid.UUID { return w.id }

// Name returns the widget's display name.
func (w *Widget) Name() string { return w.name }

// Parent returns the parent widget, nil for the root.
func (w *Widget) Parent() *Widget { return w.parent }

// Children returns a copy of the ordered child list.
func (w *Widget) Children() []*Widget {
	out := make([]*Widget, len(w.children))
	copy(out, w.children)
	return out
}

// PaintOrder returns the children sorted by z-index, stable for equal keys.
func (w *Widget) PaintOrder() []*Widget {
	out := w.Children()
	sort.SliceStable(out, func(i, j int) bool { return out[i].zIndex < out[j].zIndex })
	return out
}

// AddChild reparents child under w, detaching it from its current parent.
// Adding a widget to itself or to one of its own descendants is an error.
func (w *Widget) AddChild(child *Widget) error {
	if child == nil {
		return fmt.Errorf("widgets: add child to %q: nil child", w.name)
	}
	for n := w; n != nil; n = n.parent {
		if n == child {
			return fmt.Errorf("widgets: add child %q to %q: child is an ancestor", child.name, w.name)
		}
	}
	if child.parent != nil {
		child.parent.removeChild(child)
	}
	child.parent = w
	w.children = append(w.children, child)
	child.refresh()
	return nil
}

func (w *Widget) removeChild(child *Widget) {
	for i, c := range w.children {
		if c == child {
			w.children = append(w.children[:i], w.children[i+1:]...)
			return
		}
	}
}

// Dispose releases the widget: children are disposed recursively (the tree
// owns them exclusively), drawables are unregistered from the renderer, and
// the widget detaches from its parent.
func (w *Widget) Dispose() {
	children := w.Children()
	for _, c := range children {
		c.Dispose()
	}
	w.children = nil
	if w.renderer != nil {
		w.renderer.RemoveDrawables(w)
		w.renderer = nil
	}
	if w.parent != nil {
		w.parent.removeChild(w)
		w.parent = nil
	}
	w.posTr, w.sizeTr, w.minTr, w.maxTr, w.dockSizeTr = nil, nil, nil, nil, nil
}

func (w *Widget) root() *Widget {
	n := w
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// Position returns the resolved absolute position in pixels.
func (w *Widget) Position() geometry.Offset { return w.resolvedPos }

// Dimensions returns the resolved size in pixels.
func (w *Widget) Dimensions() geometry.Size { return w.resolvedSize }

// ResolvedRect returns the resolved absolute rectangle in pixels.
func (w *Widget) ResolvedRect() geometry.Rect {
	return geometry.RectFromLTWH(w.resolvedPos.X, w.resolvedPos.Y, w.resolvedSize.Width, w.resolvedSize.Height)
}

// InBounds reports whether a screen-space point lies inside the resolved
// rectangle. Exposed for input collaborators; no event dispatch happens here.
func (w *Widget) InBounds(p geometry.Offset) bool {
	return w.ResolvedRect().Contains(p)
}

// RawPosition returns the raw, unit-tagged position.
func (w *Widget) RawPosition() units.Length2 { return w.rawPos }

// RawDimensions returns the raw, unit-tagged dimensions.
func (w *Widget) RawDimensions() units.Length2 { return w.rawSize }

// RawMinSize returns the raw minimum size.
func (w *Widget) RawMinSize() units.Length2 { return w.rawMin }

// RawMaxSize returns the raw maximum size. A resolved component <= 0 means
// that axis is unconstrained.
func (w *Widget) RawMaxSize() units.Length2 { return w.rawMax }

// DockSizeValue returns the raw docked size.
func (w *Widget) DockSizeValue() units.Length { return w.dockSize }

// Anchor returns the anchor flags.
func (w *Widget) Anchor() AnchorStyle { return w.anchor }

// Alignment returns the alignment origin.
func (w *Widget) Alignment() Align { return w.align }

// Dock returns the dock style.
func (w *Widget) Dock() DockStyle { return w.dock }

// Positioning returns the position type.
func (w *Widget) Positioning() PositionType { return w.positioning }

// ZIndex returns the paint-order key among siblings.
func (w *Widget) ZIndex() int { return w.zIndex }

// Enabled reports whether the widget participates in input dispatch.
func (w *Widget) Enabled() bool { return w.enabled }

// Enable marks the widget as participating in input dispatch.
func (w *Widget) Enable() { w.enabled = true }

// Disable marks the widget as not participating in input dispatch.
func (w *Widget) Disable() { w.enabled = false }

// Font returns the opaque font reference, nil when unset.
func (w *Widget) Font() font.Face { return w.font }

// SetFont stores the font reference and flags the drawables for reload.
// No text layout happens in this package.
func (w *Widget) SetFont(f font.Face) {
	w.font = f
	w.needsReload = true
}

// Renderer returns the rendering collaborator, nil when unset.
func (w *Widget) Renderer() Renderer { return w.renderer }

// SetRenderer registers the widget's drawables with a renderer,
// unregistering from the previous one first.
func (w *Widget) SetRenderer(r Renderer) {
	if w.renderer == r {
		return
	}
	if w.renderer != nil {
		w.renderer.RemoveDrawables(w)
	}
	w.renderer = r
	if r != nil {
		r.AddDrawables(w)
	}
}

// NeedsDrawableReload reports whether resolved geometry (or another
// drawable-affecting property) changed since the flag was last cleared.
// The renderer reads and clears it between frames.
func (w *Widget) NeedsDrawableReload() bool { return w.needsReload }

// ClearDrawableReload resets the reload flag after the renderer re-batched.
func (w *Widget) ClearDrawableReload() { w.needsReload = false }

// SetDestRect seeds raw position and dimensions from a pixel rectangle,
// canceling any position or dimension transition.
func (w *Widget) SetDestRect(r geometry.Rect) {
	w.posTr, w.sizeTr = nil, nil
	w.rawPos = units.Px2(r.Left, r.Top)
	w.rawSize = units.Px2(r.Width(), r.Height())
	w.refresh()
}

// SetPosition sets the raw position, canceling any position transition.
func (w *Widget) SetPosition(p units.Length2) {
	w.posTr = nil
	w.rawPos = p
	w.refresh()
}

// SetDimensions sets the raw dimensions, canceling any dimension transition.
func (w *Widget) SetDimensions(d units.Length2) {
	w.sizeTr = nil
	w.rawSize = d
	w.refresh()
}

// SetMinSize sets the raw minimum size, canceling any min-size transition.
func (w *Widget) SetMinSize(m units.Length2) {
	w.minTr = nil
	w.rawMin = m
	w.refresh()
}

// SetMaxSize sets the raw maximum size, canceling any max-size transition.
// A component resolving to <= 0 leaves that axis unconstrained.
func (w *Widget) SetMaxSize(m units.Length2) {
	w.maxTr = nil
	w.rawMax = m
	w.refresh()
}

// SetDockSize sets the raw docked size, canceling any dock-size transition.
func (w *Widget) SetDockSize(s units.Length) {
	w.dockSizeTr = nil
	w.dockSize = s
	w.refresh()
}

// SetAnchor sets the anchor flags.
func (w *Widget) SetAnchor(a AnchorStyle) {
	w.anchor = a
	w.refresh()
}

// SetAlignment sets the alignment origin used by axes with no anchor flags.
func (w *Widget) SetAlignment(a Align) {
	w.align = a
	w.refresh()
}

// SetDock sets the dock style. Docking requires a parent container; on a
// parentless widget this returns an error wrapping errors.ErrNoParent.
func (w *Widget) SetDock(d DockStyle) error {
	if d != DockNone && w.parent == nil {
		return fmt.Errorf("widgets: set dock %v on %q: %w", d, w.name, errors.ErrNoParent)
	}
	w.dock = d
	w.refresh()
	return nil
}

// SetPositioning sets the position type.
func (w *Widget) SetPositioning(p PositionType) {
	w.positioning = p
	w.refresh()
}

// SetZIndex sets the paint-order key and flags the drawables for reload.
func (w *Widget) SetZIndex(z int) {
	if w.zIndex == z {
		return
	}
	w.zIndex = z
	w.needsReload = true
}

// ScreenSize returns the root reference frame.
func (w *Widget) ScreenSize() geometry.Size { return w.root().screen }

// SetScreenSize resizes the root reference frame; the root tracks the screen
// rectangle and the whole tree re-resolves. Calling it on a non-root widget
// returns an error wrapping errors.ErrNotRoot.
func (w *Widget) SetScreenSize(s geometry.Size) error {
	if w.parent != nil {
		return fmt.Errorf("widgets: set screen size on %q: %w", w.name, errors.ErrNotRoot)
	}
	w.screen = s
	w.rawPos = units.Px2(0, 0)
	w.rawSize = units.Px2(s.Width, s.Height)
	w.refresh()
	return nil
}
