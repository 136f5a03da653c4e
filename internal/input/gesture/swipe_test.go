package gesture

import (
	"testing"
	"time"

	"github.com/dshills/aurora/internal/input"
)

func TestSwipeChangedThenEnded(t *testing.T) {
	sw := NewSwipe(DefaultSwipeConfig())

	if info := sw.Update(mousePress(100, 100, 0)); info != nil {
		t.Fatalf("press emitted %v, want nil", info)
	}

	info := sw.Update(mouseMove(160, 160, 100))
	if info == nil {
		t.Fatal("qualifying move did not emit")
	}
	if info.State != StateChanged {
		t.Errorf("State = %v, want changed", info.State)
	}
	if info.Delta != pos(60, 60) {
		t.Errorf("Delta = %v, want {60 60}", info.Delta)
	}
	if info.SwipeDirection != input.DirDownRight {
		t.Errorf("SwipeDirection = %v, want down-right", info.SwipeDirection)
	}

	final := sw.Update(mouseRelease(180, 180, 150))
	if final == nil {
		t.Fatal("qualifying release did not emit")
	}
	if final.State != StateEnded {
		t.Errorf("final State = %v, want ended", final.State)
	}
	if final.Delta != pos(80, 80) {
		t.Errorf("final Delta = %v, want {80 80}", final.Delta)
	}
	if final.Velocity.Speed() <= 0 {
		t.Errorf("final Velocity = %+v, want non-zero speed", final.Velocity)
	}
	if sw.IsActive() {
		t.Error("still active after release")
	}
}

func TestSwipeTooShort(t *testing.T) {
	sw := NewSwipe(DefaultSwipeConfig())

	sw.Update(mousePress(100, 100, 0))
	if info := sw.Update(mouseMove(120, 100, 50)); info != nil {
		t.Errorf("sub-threshold move emitted %v, want nil", info)
	}
	if info := sw.Update(mouseRelease(130, 100, 100)); info != nil {
		t.Errorf("sub-threshold release emitted %v, want nil", info)
	}
}

func TestSwipeTooSlow(t *testing.T) {
	sw := NewSwipe(DefaultSwipeConfig())

	sw.Update(mousePress(100, 100, 0))
	if info := sw.Update(mouseRelease(300, 100, 900)); info != nil {
		t.Errorf("slow release emitted %v, want nil", info)
	}
	if sw.IsActive() {
		t.Error("still active after failed release")
	}
}

func TestSwipeDirections(t *testing.T) {
	tests := []struct {
		name string
		to   input.Position
		want input.Direction
	}{
		{"right", pos(300, 100), input.DirRight},
		{"left", pos(-100, 100), input.DirLeft},
		{"down", pos(100, 300), input.DirDown},
		{"up", pos(100, -100), input.DirUp},
		{"up-left", pos(0, 0), input.DirUpLeft},
		{"down-right", pos(200, 200), input.DirDownRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sw := NewSwipe(DefaultSwipeConfig())
			sw.Update(mousePress(100, 100, 0))
			info := sw.Update(mouseRelease(tt.to.X, tt.to.Y, 200))
			if info == nil {
				t.Fatal("swipe not recognized")
			}
			if info.SwipeDirection != tt.want {
				t.Errorf("SwipeDirection = %v, want %v", info.SwipeDirection, tt.want)
			}
		})
	}
}

func TestSwipeFromTouch(t *testing.T) {
	sw := NewSwipe(DefaultSwipeConfig())

	sw.Update(touchBegin(5, 0, 0, 0))

	// A second finger landing mid-gesture must not cross-talk.
	sw.Update(touchBegin(9, 500, 500, 20))
	if info := sw.Update(touchUpdate(9, 600, 500, 40)); info != nil {
		t.Errorf("unbound touch move emitted %v, want nil", info)
	}

	info := sw.Update(touchEnd(5, 120, 0, 200))
	if info == nil {
		t.Fatal("touch swipe not recognized")
	}
	if info.SwipeDirection != input.DirRight {
		t.Errorf("SwipeDirection = %v, want right", info.SwipeDirection)
	}
}

func TestSwipeVelocityLinearMotion(t *testing.T) {
	sw := NewSwipe(DefaultSwipeConfig())

	// 100 px over 100 ms in x: 1000 px/s.
	sw.Update(mousePress(0, 0, 0))
	sw.Update(mouseMove(25, 0, 25))
	sw.Update(mouseMove(50, 0, 50))
	sw.Update(mouseMove(75, 0, 75))
	info := sw.Update(mouseRelease(100, 0, 100))
	if info == nil {
		t.Fatal("swipe not recognized")
	}
	if got := info.Velocity.X; got < 990 || got > 1010 {
		t.Errorf("Velocity.X = %v, want ~1000", got)
	}
	if got := info.Velocity.Y; got != 0 {
		t.Errorf("Velocity.Y = %v, want 0", got)
	}
}

func TestSwipeResetIdempotent(t *testing.T) {
	sw := NewSwipe(DefaultSwipeConfig())
	sw.Update(mousePress(0, 0, 0))

	sw.Reset()
	sw.Reset()
	if sw.IsActive() {
		t.Error("IsActive() = true after double Reset")
	}
}

func TestSwipeConfigValidation(t *testing.T) {
	sw := NewSwipe(SwipeConfig{})
	if got := sw.Config(); got != DefaultSwipeConfig() {
		t.Fatalf("zero config not normalized: %+v", got)
	}

	sw.SetMinDistance(-1)
	sw.SetMaxTime(0)
	if got := sw.Config(); got != DefaultSwipeConfig() {
		t.Errorf("invalid setters mutated config: %+v", got)
	}

	sw.SetMinDistance(80)
	sw.SetMaxTime(time.Second)
	if got := sw.Config(); got.MinDistance != 80 || got.MaxTime != time.Second {
		t.Errorf("valid setters not applied: %+v", got)
	}
}
