package event

import (
	"testing"
	"time"

	"github.com/dshills/aurora/internal/input"
	"github.com/dshills/aurora/internal/input/key"
)

func TestTimeTotalOverVariants(t *testing.T) {
	ts := 1234 * time.Millisecond
	payloads := []Payload{
		KeyPress{Timestamp: ts, Key: key.KeyRune, Rune: 'a'},
		KeyRelease{Timestamp: ts, Key: key.KeyRune, Rune: 'a'},
		MousePress{Timestamp: ts, Button: ButtonLeft},
		MouseRelease{Timestamp: ts, Button: ButtonLeft},
		MouseMove{Timestamp: ts},
		MouseScroll{Timestamp: ts},
		TouchBegin{Timestamp: ts, ID: 1},
		TouchUpdate{Timestamp: ts, ID: 1},
		TouchEnd{Timestamp: ts, ID: 1},
		TabletProximity{Timestamp: ts, Tool: "pen", In: true},
		TabletTip{Timestamp: ts, Down: true},
		TabletButton{Timestamp: ts, Button: ButtonLeft, Pressed: true},
		FocusIn{Timestamp: ts, Node: 7},
		FocusOut{Timestamp: ts, Node: 7},
	}

	for _, p := range payloads {
		if got := p.Time(); got != ts {
			t.Errorf("%T.Time() = %v, want %v", p, got, ts)
		}
	}
}

func TestClassificationPredicates(t *testing.T) {
	tests := []struct {
		name    string
		payload Payload
		isKey   bool
		isMouse bool
		isTouch bool
		tablet  bool
		isFocus bool
	}{
		{"key press", KeyPress{}, true, false, false, false, false},
		{"key release", KeyRelease{}, true, false, false, false, false},
		{"mouse press", MousePress{}, false, true, false, false, false},
		{"mouse move", MouseMove{}, false, true, false, false, false},
		{"mouse scroll", MouseScroll{}, false, true, false, false, false},
		{"touch begin", TouchBegin{}, false, false, true, false, false},
		{"touch end", TouchEnd{}, false, false, true, false, false},
		{"tablet tip", TabletTip{}, false, false, false, true, false},
		{"focus in", FocusIn{}, false, false, false, false, true},
		{"focus out", FocusOut{}, false, false, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := New(tt.payload)
			if got := ev.IsKey(); got != tt.isKey {
				t.Errorf("IsKey() = %v, want %v", got, tt.isKey)
			}
			if got := ev.IsMouse(); got != tt.isMouse {
				t.Errorf("IsMouse() = %v, want %v", got, tt.isMouse)
			}
			if got := ev.IsTouch(); got != tt.isTouch {
				t.Errorf("IsTouch() = %v, want %v", got, tt.isTouch)
			}
			if got := ev.IsTablet(); got != tt.tablet {
				t.Errorf("IsTablet() = %v, want %v", got, tt.tablet)
			}
			if got := ev.IsFocus(); got != tt.isFocus {
				t.Errorf("IsFocus() = %v, want %v", got, tt.isFocus)
			}
		})
	}
}

func TestEnvelopeDefaults(t *testing.T) {
	ev := New(MouseMove{Timestamp: time.Millisecond})

	if !ev.Propagate {
		t.Error("New event should propagate by default")
	}
	if ev.Handled {
		t.Error("New event should not be handled")
	}
	if !ev.Target.IsNone() {
		t.Errorf("New event target = %v, want none", ev.Target)
	}
}

func TestEnvelopeMutators(t *testing.T) {
	ev := NewTargeted(input.NodeID(9), KeyPress{Key: key.KeyEnter}).WithSource(input.DeviceKeyboard)

	if ev.Target != 9 {
		t.Errorf("Target = %v, want 9", ev.Target)
	}
	if ev.SourceDevice != input.DeviceKeyboard {
		t.Errorf("SourceDevice = %q, want %q", ev.SourceDevice, input.DeviceKeyboard)
	}

	ev.StopPropagation()
	if ev.Propagate {
		t.Error("StopPropagation did not clear Propagate")
	}

	ev.MarkHandled()
	if !ev.Handled {
		t.Error("MarkHandled did not set Handled")
	}
}

func TestButtonString(t *testing.T) {
	tests := []struct {
		button   Button
		expected string
	}{
		{ButtonNone, "none"},
		{ButtonLeft, "left"},
		{ButtonMiddle, "middle"},
		{ButtonRight, "right"},
		{ButtonBack, "back"},
		{ButtonForward, "forward"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.button.String(); got != tt.expected {
				t.Errorf("Button.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}
