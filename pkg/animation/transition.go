package animation

import "time"

// LerpFunc linearly interpolates between two values of the same type.
// Receives the begin value, end value, and eased progress t in [0, 1].
type LerpFunc[T any] func(a, b T, t float64) T

// Transition animates a raw value from Begin to End over Duration.
//
// A transition holds no clock of its own: the owner calls [Transition.Advance]
// with the frame delta, and replaces its static raw value with the returned
// interpolated value. When Advance reports done, the owner pins the raw value
// to End and drops the transition so later frames do no interpolation work.
type Transition[T any] struct {
	// Begin is the raw value at time zero.
	Begin T
	// End is the raw value at completion.
	End T
	// Duration is the total length of the transition. A duration <= 0
	// completes on the first Advance.
	Duration time.Duration
	// Curve transforms linear progress; nil means linear.
	Curve Curve
	// Lerp interpolates between Begin and End; nil snaps to End.
	Lerp LerpFunc[T]

	elapsed time.Duration
}

// NewTransition creates a transition from begin to end over the given
// duration.
func NewTransition[T any](begin, end T, duration time.Duration, curve Curve, lerp LerpFunc[T]) *Transition[T] {
	return &Transition[T]{
		Begin:    begin,
		End:      end,
		Duration: duration,
		Curve:    curve,
		Lerp:     lerp,
	}
}

// Advance moves the transition clock forward by dt, clamped to Duration, and
// returns the interpolated value for the current time. done reports whether
// the transition has reached its end; the returned value is then exactly End.
func (tr *Transition[T]) Advance(dt time.Duration) (value T, done bool) {
	tr.elapsed += dt
	if tr.elapsed >= tr.Duration || tr.Duration <= 0 {
		tr.elapsed = tr.Duration
		return tr.End, true
	}

	t := float64(tr.elapsed) / float64(tr.Duration)
	if tr.Curve != nil {
		t = tr.Curve(t)
	}
	if tr.Lerp == nil {
		return tr.End, false
	}
	return tr.Lerp(tr.Begin, tr.End, t), false
}

// Elapsed returns the time the transition has been running, in [0, Duration].
func (tr *Transition[T]) Elapsed() time.Duration {
	return tr.elapsed
}

// Done reports whether the transition has reached its end.
func (tr *Transition[T]) Done() bool {
	return tr.elapsed >= tr.Duration
}
