package gesture

import (
	"testing"
	"time"

	"github.com/dshills/aurora/internal/input"
	"github.com/dshills/aurora/internal/input/event"
	"github.com/dshills/aurora/internal/input/key"
)

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

func pos(x, y float64) input.Position { return input.Position{X: x, Y: y} }

func mousePress(x, y float64, t int) *event.Event {
	return event.New(event.MousePress{Timestamp: ms(t), Button: event.ButtonLeft, Pos: pos(x, y)})
}

func mouseMove(x, y float64, t int) *event.Event {
	return event.New(event.MouseMove{Timestamp: ms(t), Pos: pos(x, y)})
}

func mouseRelease(x, y float64, t int) *event.Event {
	return event.New(event.MouseRelease{Timestamp: ms(t), Button: event.ButtonLeft, Pos: pos(x, y)})
}

func touchBegin(id input.TouchID, x, y float64, t int) *event.Event {
	return event.New(event.TouchBegin{Timestamp: ms(t), ID: id, Pos: pos(x, y)})
}

func touchUpdate(id input.TouchID, x, y float64, t int) *event.Event {
	return event.New(event.TouchUpdate{Timestamp: ms(t), ID: id, Pos: pos(x, y)})
}

func touchEnd(id input.TouchID, x, y float64, t int) *event.Event {
	return event.New(event.TouchEnd{Timestamp: ms(t), ID: id, Pos: pos(x, y)})
}

func TestTapRecognized(t *testing.T) {
	tap := NewTap(DefaultTapConfig())

	if got := tap.Update(mousePress(100, 100, 1000)); got != nil {
		t.Fatalf("press emitted %v, want nil", got)
	}
	if !tap.IsActive() {
		t.Fatal("tap not armed after press")
	}

	info := tap.Update(mouseRelease(105, 105, 1100))
	if info == nil {
		t.Fatal("release did not emit a gesture")
	}
	if info.Type != TypeTap {
		t.Errorf("Type = %v, want tap", info.Type)
	}
	if info.State != StateRecognized {
		t.Errorf("State = %v, want recognized", info.State)
	}
	if info.Position != pos(105, 105) {
		t.Errorf("Position = %v, want {105 105}", info.Position)
	}
	if info.StartPosition != pos(100, 100) {
		t.Errorf("StartPosition = %v, want {100 100}", info.StartPosition)
	}
	if tap.IsActive() {
		t.Error("tap still active after recognition")
	}
}

func TestTapFailsOnDistance(t *testing.T) {
	tap := NewTap(DefaultTapConfig())

	tap.Update(mousePress(100, 100, 1000))
	if info := tap.Update(mouseRelease(200, 100, 1100)); info != nil {
		t.Errorf("release beyond threshold emitted %v, want nil", info)
	}
	if tap.IsActive() {
		t.Error("tap still active after failed release")
	}
}

func TestTapFailsOnTimeout(t *testing.T) {
	tap := NewTap(DefaultTapConfig())

	tap.Update(mousePress(100, 100, 1000))
	if info := tap.Update(mouseRelease(101, 101, 1400)); info != nil {
		t.Errorf("late release emitted %v, want nil", info)
	}
}

func TestTapCancelledByDrift(t *testing.T) {
	tap := NewTap(DefaultTapConfig())

	tap.Update(mousePress(100, 100, 1000))
	tap.Update(mouseMove(150, 100, 1050))
	if tap.IsActive() {
		t.Error("tap still armed after drifting past threshold")
	}

	// The eventual release must not emit.
	if info := tap.Update(mouseRelease(100, 100, 1080)); info != nil {
		t.Errorf("release after drift emitted %v, want nil", info)
	}
}

func TestTapFromTouch(t *testing.T) {
	tap := NewTap(DefaultTapConfig())

	tap.Update(touchBegin(7, 50, 50, 0))
	info := tap.Update(touchEnd(7, 52, 53, 120))
	if info == nil {
		t.Fatal("touch tap not recognized")
	}
	if info.TouchCount != 1 {
		t.Errorf("TouchCount = %d, want 1", info.TouchCount)
	}
}

func TestTapIgnoresSecondTouch(t *testing.T) {
	tap := NewTap(DefaultTapConfig())

	tap.Update(touchBegin(1, 50, 50, 0))
	tap.Update(touchBegin(2, 300, 300, 10))

	// The bound contact still completes the tap; the second touch ending
	// far away must not interfere.
	if info := tap.Update(touchEnd(2, 300, 300, 50)); info != nil {
		t.Errorf("unbound touch end emitted %v, want nil", info)
	}
	info := tap.Update(touchEnd(1, 51, 51, 100))
	if info == nil {
		t.Fatal("bound touch tap not recognized")
	}
}

func TestTapIgnoresUnrelatedEvents(t *testing.T) {
	tap := NewTap(DefaultTapConfig())

	events := []*event.Event{
		event.New(event.KeyPress{Timestamp: ms(1), Key: key.KeyEnter}),
		event.New(event.MouseScroll{Timestamp: ms(2)}),
		event.New(event.FocusIn{Timestamp: ms(3), Node: 1}),
	}
	for _, ev := range events {
		if info := tap.Update(ev); info != nil {
			t.Errorf("Update(%T) = %v, want nil", ev.Payload, info)
		}
	}
}

func TestTapResetIdempotent(t *testing.T) {
	tap := NewTap(DefaultTapConfig())
	tap.Update(mousePress(10, 10, 0))

	tap.Reset()
	tap.Reset()
	if tap.IsActive() {
		t.Error("IsActive() = true after double Reset")
	}
}

func TestTapConfigValidation(t *testing.T) {
	tap := NewTap(DefaultTapConfig())

	tap.SetMaxDistance(-5)
	if got := tap.Config().MaxDistance; got != 10 {
		t.Errorf("MaxDistance after invalid set = %v, want 10", got)
	}

	tap.SetTimeout(0)
	if got := tap.Config().Timeout; got != 300*time.Millisecond {
		t.Errorf("Timeout after invalid set = %v, want 300ms", got)
	}

	tap.SetMaxDistance(24)
	tap.SetTimeout(450 * time.Millisecond)
	if got := tap.Config(); got.MaxDistance != 24 || got.Timeout != 450*time.Millisecond {
		t.Errorf("Config after valid set = %+v", got)
	}
}

func TestNewTapNormalizesZeroConfig(t *testing.T) {
	tap := NewTap(TapConfig{})
	if got := tap.Config(); got != DefaultTapConfig() {
		t.Errorf("Config = %+v, want defaults", got)
	}
}
