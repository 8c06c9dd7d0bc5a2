package widgets

import (
	"testing"
	"time"

	"github.com/go-canopy/canopy/pkg/animation"
	"github.com/go-canopy/canopy/pkg/config"
	"github.com/go-canopy/canopy/pkg/geometry"
	"github.com/go-canopy/canopy/pkg/units"
)

func TestAnimatePositionAdvancesWithFrames(t *testing.T) {
	root := NewRoot("screen", geometry.Size{Width: 800, Height: 600})
	box := New(root, "box", geometry.RectFromLTWH(0, 0, 50, 50))
	box.AnimatePosition(units.Px2(100, 0), 100*time.Millisecond, animation.Linear)

	root.Update(50 * time.Millisecond)
	if got := box.Position().X; !geometry.ApproxEqual(got, 50) {
		t.Fatalf("midpoint x = %g, want 50", got)
	}

	root.Update(50 * time.Millisecond)
	if got := box.Position().X; got != 100 {
		t.Fatalf("final x = %g, want exactly 100", got)
	}
	if box.Animating() {
		t.Fatal("completed transition should be cleared")
	}
}

func TestCompletionPinsRawValueToTarget(t *testing.T) {
	root := NewRoot("screen", geometry.Size{Width: 800, Height: 600})
	box := New(root, "box", geometry.RectFromLTWH(0, 0, 50, 50))
	box.AnimatePosition(units.Px2(100, 40), 100*time.Millisecond, animation.Linear)

	root.Update(250 * time.Millisecond)
	if got := box.RawPosition(); got != units.Px2(100, 40) {
		t.Fatalf("raw position = %+v, want pinned to (100, 40)", got)
	}
}

func TestRetargetingStartsFromCurrentValue(t *testing.T) {
	root := NewRoot("screen", geometry.Size{Width: 800, Height: 600})
	box := New(root, "box", geometry.RectFromLTWH(0, 0, 50, 50))
	box.AnimatePosition(units.Px2(100, 0), 100*time.Millisecond, animation.Linear)
	root.Update(50 * time.Millisecond)

	box.AnimatePosition(units.Px2(0, 0), 100*time.Millisecond, animation.Linear)
	root.Update(50 * time.Millisecond)
	if got := box.Position().X; !geometry.ApproxEqual(got, 25) {
		t.Fatalf("x after retarget = %g, want 25", got)
	}
}

func TestIndependentTransitionsAdvanceTogether(t *testing.T) {
	root := NewRoot("screen", geometry.Size{Width: 800, Height: 600})
	box := New(root, "box", geometry.RectFromLTWH(0, 0, 100, 100))
	box.AnimatePosition(units.Px2(200, 0), 100*time.Millisecond, animation.Linear)
	box.AnimateDimensions(units.Px2(200, 200), 200*time.Millisecond, animation.Linear)

	root.Update(100 * time.Millisecond)
	if got := box.Position().X; got != 200 {
		t.Fatalf("position x = %g, want 200", got)
	}
	if got := box.Dimensions().Width; !geometry.ApproxEqual(got, 150) {
		t.Fatalf("width = %g, want 150 at dimension midpoint", got)
	}
	if !box.Animating() {
		t.Fatal("dimension transition should still be active")
	}
}

func TestAnimateDockSizeShiftsFillDuringTransition(t *testing.T) {
	root := NewRoot("screen", geometry.Size{Width: 800, Height: 600})
	side := New(root, "side", geometry.Rect{})
	body := New(root, "body", geometry.Rect{})
	mustDock(t, side, DockLeft, units.Px(0))
	mustDock(t, body, DockFill, units.Px(0))

	side.AnimateDockSize(units.Px(200), 100*time.Millisecond, animation.Linear)
	root.Update(50 * time.Millisecond)
	wantRect(t, side, geometry.RectFromLTWH(0, 0, 100, 600))
	wantRect(t, body, geometry.RectFromLTWH(100, 0, 700, 600))

	root.Update(50 * time.Millisecond)
	wantRect(t, side, geometry.RectFromLTWH(0, 0, 200, 600))
	wantRect(t, body, geometry.RectFromLTWH(200, 0, 600, 600))
}

func TestSetterCancelsItsTransitionOnly(t *testing.T) {
	root := NewRoot("screen", geometry.Size{Width: 800, Height: 600})
	box := New(root, "box", geometry.RectFromLTWH(0, 0, 50, 50))
	box.AnimatePosition(units.Px2(100, 0), 100*time.Millisecond, animation.Linear)
	box.AnimateDimensions(units.Px2(200, 200), 100*time.Millisecond, animation.Linear)

	box.SetPosition(units.Px2(7, 7))
	if got := box.Position(); !geometry.ApproxEqual(got.X, 7) || !geometry.ApproxEqual(got.Y, 7) {
		t.Fatalf("position = %+v, want (7, 7)", got)
	}

	root.Update(50 * time.Millisecond)
	if got := box.Position(); !geometry.ApproxEqual(got.X, 7) || !geometry.ApproxEqual(got.Y, 7) {
		t.Fatalf("position after frame = %+v, want still (7, 7)", got)
	}
	if got := box.Dimensions().Width; !geometry.ApproxEqual(got, 125) {
		t.Fatalf("width = %g, want dimension transition unaffected", got)
	}
}

func TestStopAnimationsFreezesCurrentValues(t *testing.T) {
	root := NewRoot("screen", geometry.Size{Width: 800, Height: 600})
	box := New(root, "box", geometry.RectFromLTWH(0, 0, 50, 50))
	box.AnimatePosition(units.Px2(100, 0), 100*time.Millisecond, animation.Linear)
	root.Update(50 * time.Millisecond)

	box.StopAnimations()
	if box.Animating() {
		t.Fatal("StopAnimations should clear all transitions")
	}
	root.Update(100 * time.Millisecond)
	if got := box.Position().X; !geometry.ApproxEqual(got, 50) {
		t.Fatalf("x = %g, want frozen at 50", got)
	}
}

func TestPercentTargetInterpolatesInValueSpace(t *testing.T) {
	root := NewRoot("screen", geometry.Size{Width: 800, Height: 600})
	box := New(root, "box", geometry.Rect{})
	box.SetDimensions(units.Length2{
		X: units.Length{Value: 0, Unit: units.ParentWidth},
		Y: units.Length{Value: 0, Unit: units.ParentHeight},
	})
	box.AnimateDimensions(units.Length2{
		X: units.Length{Value: 50, Unit: units.ParentWidth},
		Y: units.Length{Value: 50, Unit: units.ParentHeight},
	}, 100*time.Millisecond, animation.Linear)

	root.Update(50 * time.Millisecond)
	got := box.Dimensions()
	if !geometry.ApproxEqual(got.Width, 200) || !geometry.ApproxEqual(got.Height, 150) {
		t.Fatalf("size = %+v, want 200x150 at 25%%", got)
	}
}

func TestZeroDurationCompletesOnFirstFrame(t *testing.T) {
	root := NewRoot("screen", geometry.Size{Width: 800, Height: 600})
	root.SetAnimationDefaults(AnimationDefaults{Duration: time.Nanosecond, Curve: animation.Linear})
	box := New(root, "box", geometry.RectFromLTWH(0, 0, 50, 50))
	box.AnimatePosition(units.Px2(100, 0), 0, nil)

	root.Update(time.Millisecond)
	if got := box.Position().X; got != 100 {
		t.Fatalf("x = %g, want 100 after first frame", got)
	}
	if box.Animating() {
		t.Fatal("transition should be cleared")
	}
}

func TestAnimationDefaultsInheritFromAncestors(t *testing.T) {
	root := NewRoot("screen", geometry.Size{Width: 800, Height: 600})
	root.SetAnimationDefaults(AnimationDefaults{Duration: 100 * time.Millisecond, Curve: animation.Linear})
	panel := New(root, "panel", geometry.RectFromLTWH(0, 0, 400, 300))
	box := New(panel, "box", geometry.RectFromLTWH(0, 0, 50, 50))

	box.AnimatePosition(units.Px2(100, 0), 0, nil)
	root.Update(50 * time.Millisecond)
	if got := box.Position().X; !geometry.ApproxEqual(got, 50) {
		t.Fatalf("x = %g, want 50 under inherited linear 100ms defaults", got)
	}
}

func TestRootFromConfigCarriesAnimationDefaults(t *testing.T) {
	res := &config.Resolved{
		Screen:             geometry.Size{Width: 640, Height: 480},
		TransitionDuration: 100 * time.Millisecond,
		Curve:              animation.Linear,
		CurveName:          "linear",
	}
	root := NewRootFromConfig("screen", res)
	if got := root.ScreenSize(); got != res.Screen {
		t.Fatalf("screen size = %+v, want %+v", got, res.Screen)
	}

	box := New(root, "box", geometry.RectFromLTWH(0, 0, 50, 50))
	box.AnimatePosition(units.Px2(100, 0), 0, nil)
	root.Update(50 * time.Millisecond)
	if got := box.Position().X; !geometry.ApproxEqual(got, 50) {
		t.Fatalf("x = %g, want 50 under configured defaults", got)
	}
}
