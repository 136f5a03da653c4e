package gesture

import (
	"time"

	"github.com/dshills/aurora/internal/input"
	"github.com/dshills/aurora/internal/input/event"
	"github.com/dshills/aurora/internal/input/key"
)

// mouseContact is the pseudo touch id used when a gesture is driven by the
// mouse instead of a finger.
const mouseContact input.TouchID = -1

// TapConfig configures tap recognition.
type TapConfig struct {
	// MaxDistance is the furthest the contact may drift from its origin,
	// in pixels.
	MaxDistance float64

	// Timeout is the longest press-to-release interval.
	Timeout time.Duration
}

// DefaultTapConfig returns sensible defaults.
func DefaultTapConfig() TapConfig {
	return TapConfig{
		MaxDistance: 10,
		Timeout:     300 * time.Millisecond,
	}
}

// Tap recognizes quick press-and-release gestures from the left mouse
// button or a single touch. It is single-shot: one Recognized emission per
// completed tap.
type Tap struct {
	config TapConfig

	armed   bool
	contact input.TouchID
	origin  input.Position
	start   time.Duration
	target  input.NodeID
	mods    key.Modifier
	source  string
}

// NewTap creates a tap recognizer.
func NewTap(config TapConfig) *Tap {
	if config.MaxDistance <= 0 {
		config.MaxDistance = DefaultTapConfig().MaxDistance
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultTapConfig().Timeout
	}
	return &Tap{config: config}
}

// Name implements Recognizer.
func (t *Tap) Name() string { return "tap" }

// Type implements Recognizer.
func (t *Tap) Type() Type { return TypeTap }

// IsActive implements Recognizer.
func (t *Tap) IsActive() bool { return t.armed }

// SetMaxDistance updates the drift threshold. Non-positive values are
// rejected and the prior value retained.
func (t *Tap) SetMaxDistance(px float64) {
	if px <= 0 {
		return
	}
	t.config.MaxDistance = px
}

// SetTimeout updates the press-to-release limit. Non-positive values are
// rejected and the prior value retained.
func (t *Tap) SetTimeout(d time.Duration) {
	if d <= 0 {
		return
	}
	t.config.Timeout = d
}

// Config returns the current configuration.
func (t *Tap) Config() TapConfig { return t.config }

// Reset implements Recognizer.
func (t *Tap) Reset() {
	t.armed = false
	t.contact = 0
	t.origin = input.Position{}
	t.start = 0
	t.target = input.NodeNone
	t.mods = key.ModNone
	t.source = ""
}

// Update implements Recognizer.
func (t *Tap) Update(ev *event.Event) *Info {
	switch p := ev.Payload.(type) {
	case event.MousePress:
		if p.Button == event.ButtonLeft && !t.armed {
			t.arm(mouseContact, p.Pos, p.Timestamp, ev, p.Modifiers)
		}

	case event.TouchBegin:
		// Single-touch gesture: a second contact while armed is ignored.
		if !t.armed {
			t.arm(p.ID, p.Pos, p.Timestamp, ev, key.ModNone)
		}

	case event.MouseMove:
		if t.armed && t.contact == mouseContact {
			t.checkDrift(p.Pos, p.Timestamp)
		}

	case event.TouchUpdate:
		if t.armed && t.contact == p.ID {
			t.checkDrift(p.Pos, p.Timestamp)
		}

	case event.MouseRelease:
		if p.Button == event.ButtonLeft && t.armed && t.contact == mouseContact {
			return t.finish(p.Pos, p.Timestamp)
		}

	case event.TouchEnd:
		if t.armed && t.contact == p.ID {
			return t.finish(p.Pos, p.Timestamp)
		}
	}

	return nil
}

// arm captures the press origin and enters the armed state.
func (t *Tap) arm(id input.TouchID, pos input.Position, ts time.Duration, ev *event.Event, mods key.Modifier) {
	t.armed = true
	t.contact = id
	t.origin = pos
	t.start = ts
	t.target = ev.Target
	t.mods = mods
	t.source = ev.SourceDevice
}

// checkDrift fails the gesture silently if the contact moved too far or
// the press outlived the timeout.
func (t *Tap) checkDrift(pos input.Position, ts time.Duration) {
	if pos.Distance(t.origin) > t.config.MaxDistance || ts-t.start > t.config.Timeout {
		t.Reset()
	}
}

// finish emits a recognized tap if the release is still within bounds.
func (t *Tap) finish(pos input.Position, ts time.Duration) *Info {
	defer t.Reset()

	if pos.Distance(t.origin) > t.config.MaxDistance || ts-t.start > t.config.Timeout {
		return nil
	}

	info := NewBuilder(TypeTap).
		State(StateRecognized).
		Time(ts).
		Target(t.target).
		At(pos).
		From(t.origin).
		Touches(1).
		Source(t.source).
		Modifiers(t.mods).
		Build()
	return &info
}
