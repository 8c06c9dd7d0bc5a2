package widgets

import (
	"fmt"
	"time"

	"github.com/go-canopy/canopy/pkg/errors"
	"github.com/go-canopy/canopy/pkg/geometry"
	"github.com/go-canopy/canopy/pkg/units"
)

// Update advances active transitions by dt and recomputes the resolved
// geometry of this widget and its subtree, pre-order. Call once per frame
// on the root.
func (w *Widget) Update(dt time.Duration) {
	w.advanceAll(dt)
	w.layout(nil)
}

func (w *Widget) advanceAll(dt time.Duration) {
	w.advanceTransitions(dt)
	for _, c := range w.children {
		c.advanceAll(dt)
	}
}

// layout resolves this widget's rectangle and lays out its subtree.
// assigned, when non-nil, is a rectangle already carved by the parent's
// docking pass; the widget then skips its own position/size resolution.
//
// The docking pass runs over the direct children in declared order: edge
// docks carve strips from the remaining rectangle as they are encountered,
// Fill children run after every edge dock regardless of declaration order.
func (w *Widget) layout(assigned *geometry.Rect) {
	if assigned != nil {
		w.applyAssigned(*assigned)
	} else {
		w.resolveGeometry()
	}

	remaining := w.ResolvedRect()
	var fills []*Widget
	for _, c := range w.children {
		switch c.dock {
		case DockNone:
			c.layout(nil)
		case DockFill:
			fills = append(fills, c)
		default:
			strip := w.carveDock(c, &remaining)
			c.layout(&strip)
		}
	}
	for _, c := range fills {
		fill := remaining
		// Later Fill siblings stack into what an earlier fill left behind:
		// the remaining rectangle collapses to its far corner.
		remaining = geometry.Rect{Left: fill.Right, Top: fill.Bottom, Right: fill.Right, Bottom: fill.Bottom}
		c.layout(&fill)
	}
}

// refresh recomputes resolved geometry after a raw-field mutation, without
// advancing transitions. A docked widget's rectangle is owned by its
// parent's docking pass, so the refresh starts one level up in that case
// (the mutation may shift siblings).
func (w *Widget) refresh() {
	if w.parent != nil && w.dock != DockNone {
		w.parent.refresh()
		return
	}
	w.layout(nil)
}

// referenceFrame returns the rectangle this widget resolves against and the
// unit resolution context. PositionAbsolute/PositionFixed widgets and the
// root use the screen rectangle; everything else uses the parent's resolved
// content rectangle.
func (w *Widget) referenceFrame() (geometry.Rect, units.Context) {
	screen := w.root().screen
	screenRect := geometry.RectFromLTWH(0, 0, screen.Width, screen.Height)
	switch {
	case w.parent == nil:
		return screenRect, units.Context{Screen: screen}
	case w.positioning.screenRelative():
		return screenRect, units.Context{Parent: screen, Screen: screen, HasParent: true}
	default:
		pr := w.parent.ResolvedRect()
		return pr, units.Context{Parent: pr.Size(), Screen: screen, HasParent: true}
	}
}

// resolveGeometry turns the raw values into the resolved rectangle:
// resolve raw min/max and dimensions, apply anchor stretching, clamp
// (minimum wins), then place the widget by anchor flags or alignment.
func (w *Widget) resolveGeometry() {
	ref, ctx := w.referenceFrame()

	min := w.resolveSize(w.rawMin, ctx, "min size")
	max := w.resolveSize(w.rawMax, ctx, "max size")
	if (max.Width > 0 && min.Width > max.Width) || (max.Height > 0 && min.Height > max.Height) {
		w.reportConfig("widgets.resolveGeometry",
			fmt.Errorf("min size %v exceeds max size %v: min wins", min, max))
	}

	size := w.resolveSize(w.rawSize, ctx, "dimensions")
	posX, posY, err := w.rawPos.Resolve(ctx)
	if err != nil {
		w.reportConfig("widgets.resolveGeometry", fmt.Errorf("resolving position: %w", err))
	}

	// Opposite anchor flags stretch the axis: the raw position and size
	// values are the two margins. Negative stretch collapses to zero.
	stretchX := w.anchor.Left && w.anchor.Right
	stretchY := w.anchor.Top && w.anchor.Bottom
	if stretchX {
		size.Width = ref.Width() - posX - size.Width
		if size.Width < 0 {
			size.Width = 0
		}
	}
	if stretchY {
		size.Height = ref.Height() - posY - size.Height
		if size.Height < 0 {
			size.Height = 0
		}
	}

	size = geometry.ClampSize(size, min, max)

	var pos geometry.Offset
	switch {
	case stretchX, w.anchor.Left:
		pos.X = ref.Left + posX
	case w.anchor.Right:
		pos.X = ref.Right - size.Width - posX
	default:
		switch w.align.horizontal() {
		case alignStart:
			pos.X = ref.Left + posX
		case alignMiddle:
			pos.X = ref.Center().X - size.Width/2 + posX
		case alignEnd:
			pos.X = ref.Right - size.Width - posX
		}
	}
	switch {
	case stretchY, w.anchor.Top:
		pos.Y = ref.Top + posY
	case w.anchor.Bottom:
		pos.Y = ref.Bottom - size.Height - posY
	default:
		switch w.align.vertical() {
		case alignStart:
			pos.Y = ref.Top + posY
		case alignMiddle:
			pos.Y = ref.Center().Y - size.Height/2 + posY
		case alignEnd:
			pos.Y = ref.Bottom - size.Height - posY
		}
	}

	w.applyResolved(pos, size)
}

// applyAssigned adopts a rectangle carved by the parent's docking pass.
// The widget's own min/max constraints still bound the carved size.
func (w *Widget) applyAssigned(r geometry.Rect) {
	_, ctx := w.referenceFrame()
	min := w.resolveSize(w.rawMin, ctx, "min size")
	max := w.resolveSize(w.rawMax, ctx, "max size")
	w.applyResolved(r.TopLeft(), geometry.ClampSize(r.Size(), min, max))
}

// applyResolved stores the final rectangle and flags the drawables for
// reload when the geometry actually changed.
func (w *Widget) applyResolved(pos geometry.Offset, size geometry.Size) {
	if pos == w.resolvedPos && size == w.resolvedSize {
		return
	}
	w.resolvedPos = pos
	w.resolvedSize = size
	w.needsReload = true
}

// carveDock resolves a child's docked size against this container and
// carves the strip off the remaining rectangle. Oversized requests clamp
// to the remaining extent; both that and unresolvable sizes are reported.
func (w *Widget) carveDock(c *Widget, remaining *geometry.Rect) geometry.Rect {
	ctx := units.Context{Parent: w.resolvedSize, Screen: w.root().screen, HasParent: true}
	size, err := c.dockSize.Resolve(ctx)
	if err != nil {
		c.reportConfig("widgets.carveDock", fmt.Errorf("resolving dock size: %w", err))
		size = 0
	}
	if size < 0 {
		size = 0
	}

	extent := remaining.Height()
	if c.dock == DockLeft || c.dock == DockRight {
		extent = remaining.Width()
	}
	if size > extent {
		c.reportConfig("widgets.carveDock",
			fmt.Errorf("dock size %g exceeds remaining extent %g: clamped", size, extent))
		size = extent
	}

	var strip geometry.Rect
	switch c.dock {
	case DockLeft:
		strip, *remaining = remaining.CarveLeft(size)
	case DockRight:
		strip, *remaining = remaining.CarveRight(size)
	case DockTop:
		strip, *remaining = remaining.CarveTop(size)
	case DockBottom:
		strip, *remaining = remaining.CarveBottom(size)
	}
	return strip
}

// resolveSize resolves a Length2 into a pixel size, reporting and falling
// back to zero on unresolvable axes.
func (w *Widget) resolveSize(l units.Length2, ctx units.Context, field string) geometry.Size {
	x, y, err := l.Resolve(ctx)
	if err != nil {
		w.reportConfig("widgets.resolveGeometry", fmt.Errorf("resolving %s: %w", field, err))
	}
	return geometry.Size{Width: x, Height: y}
}

func (w *Widget) reportConfig(op string, err error) {
	errors.Report(&errors.LayoutError{
		Op:     op,
		Kind:   errors.KindConfig,
		Widget: w.name,
		Err:    err,
	})
}
