package gesture

import (
	"time"

	"github.com/dshills/aurora/internal/input"
	"github.com/dshills/aurora/internal/input/event"
	"github.com/dshills/aurora/internal/input/key"
	"github.com/dshills/aurora/internal/input/touch"
)

// SwipeConfig configures swipe recognition.
type SwipeConfig struct {
	// MinDistance is the minimum travel from the origin, in pixels.
	MinDistance float64

	// MaxTime is the longest press-to-release interval for a swipe.
	MaxTime time.Duration
}

// DefaultSwipeConfig returns sensible defaults.
func DefaultSwipeConfig() SwipeConfig {
	return SwipeConfig{
		MinDistance: 50,
		MaxTime:     500 * time.Millisecond,
	}
}

// Swipe recognizes fast directional movements of the left mouse button or
// a single touch. It is continuous: every qualifying movement sample
// re-emits a Changed gesture, and release emits a final Ended.
//
// The recognizer binds to the first contact it sees, so other fingers
// landing mid-gesture do not cross-talk into the swipe.
type Swipe struct {
	config SwipeConfig

	armed   bool
	contact input.TouchID
	origin  input.Position
	start   time.Duration
	target  input.NodeID
	mods    key.Modifier
	source  string

	tracker *touch.Tracker
}

// NewSwipe creates a swipe recognizer.
func NewSwipe(config SwipeConfig) *Swipe {
	if config.MinDistance <= 0 {
		config.MinDistance = DefaultSwipeConfig().MinDistance
	}
	if config.MaxTime <= 0 {
		config.MaxTime = DefaultSwipeConfig().MaxTime
	}
	return &Swipe{
		config:  config,
		tracker: touch.NewTracker(),
	}
}

// Name implements Recognizer.
func (s *Swipe) Name() string { return "swipe" }

// Type implements Recognizer.
func (s *Swipe) Type() Type { return TypeSwipe }

// IsActive implements Recognizer.
func (s *Swipe) IsActive() bool { return s.armed }

// SetMinDistance updates the travel threshold. Non-positive values are
// rejected and the prior value retained.
func (s *Swipe) SetMinDistance(px float64) {
	if px <= 0 {
		return
	}
	s.config.MinDistance = px
}

// SetMaxTime updates the duration limit. Non-positive values are rejected
// and the prior value retained.
func (s *Swipe) SetMaxTime(d time.Duration) {
	if d <= 0 {
		return
	}
	s.config.MaxTime = d
}

// Config returns the current configuration.
func (s *Swipe) Config() SwipeConfig { return s.config }

// Reset implements Recognizer.
func (s *Swipe) Reset() {
	s.armed = false
	s.contact = 0
	s.origin = input.Position{}
	s.start = 0
	s.target = input.NodeNone
	s.mods = key.ModNone
	s.source = ""
	s.tracker.Clear()
}

// Update implements Recognizer.
func (s *Swipe) Update(ev *event.Event) *Info {
	switch p := ev.Payload.(type) {
	case event.MousePress:
		if p.Button == event.ButtonLeft && !s.armed {
			s.arm(mouseContact, p.Pos, p.Timestamp, ev, p.Modifiers)
		}

	case event.TouchBegin:
		if !s.armed {
			s.arm(p.ID, p.Pos, p.Timestamp, ev, key.ModNone)
		}

	case event.MouseMove:
		if s.armed && s.contact == mouseContact {
			return s.move(p.Pos, p.Timestamp)
		}

	case event.TouchUpdate:
		if s.armed && s.contact == p.ID {
			return s.move(p.Pos, p.Timestamp)
		}

	case event.MouseRelease:
		if p.Button == event.ButtonLeft && s.armed && s.contact == mouseContact {
			return s.finish(p.Pos, p.Timestamp)
		}

	case event.TouchEnd:
		if s.armed && s.contact == p.ID {
			return s.finish(p.Pos, p.Timestamp)
		}
	}

	return nil
}

func (s *Swipe) arm(id input.TouchID, pos input.Position, ts time.Duration, ev *event.Event, mods key.Modifier) {
	s.armed = true
	s.contact = id
	s.origin = pos
	s.start = ts
	s.target = ev.Target
	s.mods = mods
	s.source = ev.SourceDevice
	s.tracker.Begin(touch.Point{ID: id, Pos: pos, Timestamp: ts})
}

// qualifies checks the distance/time criteria at a given sample.
func (s *Swipe) qualifies(pos input.Position, ts time.Duration) bool {
	return pos.Distance(s.origin) >= s.config.MinDistance && ts-s.start <= s.config.MaxTime
}

// move re-emits a Changed gesture for every qualifying sample. There is no
// minimum-delta gate beyond the initial travel threshold.
func (s *Swipe) move(pos input.Position, ts time.Duration) *Info {
	s.tracker.Update(touch.Point{ID: s.contact, Pos: pos, Timestamp: ts})

	if !s.qualifies(pos, ts) {
		return nil
	}

	return s.emit(StateChanged, pos, ts)
}

// finish emits the final Ended gesture if the release still meets the
// criteria; otherwise the gesture is abandoned silently.
func (s *Swipe) finish(pos input.Position, ts time.Duration) *Info {
	s.tracker.Update(touch.Point{ID: s.contact, Pos: pos, Timestamp: ts})
	defer s.Reset()

	if !s.qualifies(pos, ts) {
		return nil
	}

	// Reset clears the tracker, so build the emission first.
	return s.emit(StateEnded, pos, ts)
}

func (s *Swipe) emit(state State, pos input.Position, ts time.Duration) *Info {
	delta := pos.Delta(s.origin)

	info := NewBuilder(TypeSwipe).
		State(state).
		Time(ts).
		Target(s.target).
		At(pos).
		From(s.origin).
		Velocity(s.tracker.EstimateVelocity(s.contact)).
		Direction(input.DirectionOf(delta.X, delta.Y)).
		Touches(1).
		Source(s.source).
		Modifiers(s.mods).
		Build()
	return &info
}
