package widgets

import (
	"time"

	"github.com/go-canopy/canopy/pkg/animation"
	"github.com/go-canopy/canopy/pkg/units"
)

// AnimationDefaults are the transition parameters applied when an Animate
// call passes a zero duration or nil curve. Defaults set on a widget apply
// to its whole subtree; unset widgets inherit from their ancestors.
type AnimationDefaults struct {
	Duration time.Duration
	Curve    animation.Curve
}

const fallbackTransitionDuration = 200 * time.Millisecond

// SetAnimationDefaults sets the transition defaults for this widget's
// subtree.
func (w *Widget) SetAnimationDefaults(d AnimationDefaults) {
	w.defaults = d
}

func (w *Widget) effectiveDefaults() AnimationDefaults {
	for n := w; n != nil; n = n.parent {
		if n.defaults.Duration > 0 || n.defaults.Curve != nil {
			d := n.defaults
			if d.Duration <= 0 {
				d.Duration = fallbackTransitionDuration
			}
			if d.Curve == nil {
				d.Curve = animation.Ease
			}
			return d
		}
	}
	return AnimationDefaults{Duration: fallbackTransitionDuration, Curve: animation.Ease}
}

func (w *Widget) transitionParams(d time.Duration, c animation.Curve) (time.Duration, animation.Curve) {
	defaults := w.effectiveDefaults()
	if d <= 0 {
		d = defaults.Duration
	}
	if c == nil {
		c = defaults.Curve
	}
	return d, c
}

// AnimatePosition transitions the raw position to target. Starting a new
// transition while one is active begins from the current mid-interpolation
// value, so there is no visible jump. A zero duration or nil curve uses the
// subtree's animation defaults.
func (w *Widget) AnimatePosition(target units.Length2, duration time.Duration, curve animation.Curve) {
	duration, curve = w.transitionParams(duration, curve)
	w.posTr = animation.NewTransition(w.rawPos, target, duration, curve, animation.LerpLength2)
}

// AnimateDimensions transitions the raw dimensions to target.
func (w *Widget) AnimateDimensions(target units.Length2, duration time.Duration, curve animation.Curve) {
	duration, curve = w.transitionParams(duration, curve)
	w.sizeTr = animation.NewTransition(w.rawSize, target, duration, curve, animation.LerpLength2)
}

// AnimateMinSize transitions the raw minimum size to target.
func (w *Widget) AnimateMinSize(target units.Length2, duration time.Duration, curve animation.Curve) {
	duration, curve = w.transitionParams(duration, curve)
	w.minTr = animation.NewTransition(w.rawMin, target, duration, curve, animation.LerpLength2)
}

// AnimateMaxSize transitions the raw maximum size to target.
func (w *Widget) AnimateMaxSize(target units.Length2, duration time.Duration, curve animation.Curve) {
	duration, curve = w.transitionParams(duration, curve)
	w.maxTr = animation.NewTransition(w.rawMax, target, duration, curve, animation.LerpLength2)
}

// AnimateDockSize transitions the raw docked size to target.
func (w *Widget) AnimateDockSize(target units.Length, duration time.Duration, curve animation.Curve) {
	duration, curve = w.transitionParams(duration, curve)
	w.dockSizeTr = animation.NewTransition(w.dockSize, target, duration, curve, animation.LerpLength)
}

// Animating reports whether any transition is active on this widget.
func (w *Widget) Animating() bool {
	return w.posTr != nil || w.sizeTr != nil || w.minTr != nil || w.maxTr != nil || w.dockSizeTr != nil
}

// StopAnimations cancels all active transitions, pinning each raw value at
// its current mid-interpolation state. No completion or notification fires;
// clearing the transition is the cancellation.
func (w *Widget) StopAnimations() {
	w.posTr, w.sizeTr, w.minTr, w.maxTr, w.dockSizeTr = nil, nil, nil, nil, nil
}

// advanceTransitions steps every active transition by dt, writing the
// interpolated value into the owning raw field. A finished transition pins
// the raw value to its target and is cleared, so later frames do no
// interpolation work. The transitions are independent: none blocks another.
func (w *Widget) advanceTransitions(dt time.Duration) {
	if w.posTr != nil {
		v, done := w.posTr.Advance(dt)
		w.rawPos = v
		if done {
			w.posTr = nil
		}
	}
	if w.sizeTr != nil {
		v, done := w.sizeTr.Advance(dt)
		w.rawSize = v
		if done {
			w.sizeTr = nil
		}
	}
	if w.minTr != nil {
		v, done := w.minTr.Advance(dt)
		w.rawMin = v
		if done {
			w.minTr = nil
		}
	}
	if w.maxTr != nil {
		v, done := w.maxTr.Advance(dt)
		w.rawMax = v
		if done {
			w.maxTr = nil
		}
	}
	if w.dockSizeTr != nil {
		v, done := w.dockSizeTr.Advance(dt)
		w.dockSize = v
		if done {
			w.dockSizeTr = nil
		}
	}
}
