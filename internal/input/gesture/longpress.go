package gesture

import (
	"time"

	"github.com/dshills/aurora/internal/input"
	"github.com/dshills/aurora/internal/input/event"
	"github.com/dshills/aurora/internal/input/key"
)

// LongPressConfig configures long-press recognition.
type LongPressConfig struct {
	// Duration is how long the contact must be held.
	Duration time.Duration

	// MaxDistance is the furthest the contact may drift from its origin
	// while held, in pixels.
	MaxDistance float64
}

// DefaultLongPressConfig returns sensible defaults.
func DefaultLongPressConfig() LongPressConfig {
	return LongPressConfig{
		Duration:    600 * time.Millisecond,
		MaxDistance: 10,
	}
}

// LongPress recognizes a press held in place past a duration threshold.
// Like every recognizer it is polling-driven: the hold is detected on the
// next event whose timestamp crosses the threshold, there is no timer.
type LongPress struct {
	config LongPressConfig

	armed   bool
	contact input.TouchID
	origin  input.Position
	start   time.Duration
	target  input.NodeID
	mods    key.Modifier
	source  string
}

// NewLongPress creates a long-press recognizer.
func NewLongPress(config LongPressConfig) *LongPress {
	if config.Duration <= 0 {
		config.Duration = DefaultLongPressConfig().Duration
	}
	if config.MaxDistance <= 0 {
		config.MaxDistance = DefaultLongPressConfig().MaxDistance
	}
	return &LongPress{config: config}
}

// Name implements Recognizer.
func (l *LongPress) Name() string { return "long-press" }

// Type implements Recognizer.
func (l *LongPress) Type() Type { return TypeLongPress }

// IsActive implements Recognizer.
func (l *LongPress) IsActive() bool { return l.armed }

// SetDuration updates the hold threshold. Non-positive values are rejected
// and the prior value retained.
func (l *LongPress) SetDuration(d time.Duration) {
	if d <= 0 {
		return
	}
	l.config.Duration = d
}

// SetMaxDistance updates the drift threshold. Non-positive values are
// rejected and the prior value retained.
func (l *LongPress) SetMaxDistance(px float64) {
	if px <= 0 {
		return
	}
	l.config.MaxDistance = px
}

// Config returns the current configuration.
func (l *LongPress) Config() LongPressConfig { return l.config }

// Reset implements Recognizer.
func (l *LongPress) Reset() {
	l.armed = false
	l.contact = 0
	l.origin = input.Position{}
	l.start = 0
	l.target = input.NodeNone
	l.mods = key.ModNone
	l.source = ""
}

// Update implements Recognizer.
func (l *LongPress) Update(ev *event.Event) *Info {
	switch p := ev.Payload.(type) {
	case event.MousePress:
		if p.Button == event.ButtonLeft && !l.armed {
			l.arm(mouseContact, p.Pos, p.Timestamp, ev, p.Modifiers)
		}

	case event.TouchBegin:
		if !l.armed {
			l.arm(p.ID, p.Pos, p.Timestamp, ev, key.ModNone)
		}

	case event.MouseMove:
		if l.armed && l.contact == mouseContact {
			return l.track(p.Pos, p.Timestamp)
		}

	case event.TouchUpdate:
		if l.armed && l.contact == p.ID {
			return l.track(p.Pos, p.Timestamp)
		}

	case event.MouseRelease:
		if p.Button == event.ButtonLeft && l.armed && l.contact == mouseContact {
			return l.finish(p.Pos, p.Timestamp)
		}

	case event.TouchEnd:
		if l.armed && l.contact == p.ID {
			return l.finish(p.Pos, p.Timestamp)
		}
	}

	return nil
}

func (l *LongPress) arm(id input.TouchID, pos input.Position, ts time.Duration, ev *event.Event, mods key.Modifier) {
	l.armed = true
	l.contact = id
	l.origin = pos
	l.start = ts
	l.target = ev.Target
	l.mods = mods
	l.source = ev.SourceDevice
}

// track checks drift and fires once the hold crosses the threshold while
// the contact stayed in place.
func (l *LongPress) track(pos input.Position, ts time.Duration) *Info {
	if pos.Distance(l.origin) > l.config.MaxDistance {
		l.Reset()
		return nil
	}
	if ts-l.start >= l.config.Duration {
		return l.emit(pos, ts)
	}
	return nil
}

// finish handles release: a release after the threshold still counts as a
// long press (the hold completed before the finger lifted).
func (l *LongPress) finish(pos input.Position, ts time.Duration) *Info {
	held := ts - l.start
	withinDrift := pos.Distance(l.origin) <= l.config.MaxDistance

	if held >= l.config.Duration && withinDrift {
		return l.emit(pos, ts)
	}

	l.Reset()
	return nil
}

func (l *LongPress) emit(pos input.Position, ts time.Duration) *Info {
	defer l.Reset()

	info := NewBuilder(TypeLongPress).
		State(StateRecognized).
		Time(ts).
		Target(l.target).
		At(pos).
		From(l.origin).
		Touches(1).
		Held(ts - l.start).
		Source(l.source).
		Modifiers(l.mods).
		Build()
	return &info
}
