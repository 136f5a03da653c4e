package gesture

import (
	"time"

	"github.com/dshills/aurora/internal/input"
	"github.com/dshills/aurora/internal/input/event"
	"github.com/dshills/aurora/internal/input/key"
	"github.com/dshills/aurora/internal/input/touch"
)

// PinchConfig configures pinch recognition.
type PinchConfig struct {
	// MinDistance is the minimum initial finger spread, in pixels. Pairs
	// closer together cannot be measured reliably and are suppressed.
	MinDistance float64

	// MinScaleDelta is the debounce threshold: once a pinch is
	// recognized, scale changes smaller than this do not re-emit.
	MinScaleDelta float64

	// WheelFactor converts a trackpad wheel tick into a scale change:
	// each tick multiplies the scale by 1 - deltaY*WheelFactor.
	WheelFactor float64

	// WheelTimeout ends an emulated pinch after this much wheel silence.
	WheelTimeout time.Duration

	// ZoomModifier is the modifier that marks a touchpad scroll as a
	// pinch tick.
	ZoomModifier key.Modifier
}

// DefaultPinchConfig returns sensible defaults.
func DefaultPinchConfig() PinchConfig {
	return PinchConfig{
		MinDistance:   20,
		MinScaleDelta: 0.05,
		WheelFactor:   0.01,
		WheelTimeout:  200 * time.Millisecond,
		ZoomModifier:  key.ModCtrl,
	}
}

// Pinch recognizes two-finger scale gestures. It correlates at most two
// simultaneous contacts by touch id; contacts beyond the pair are ignored
// without resetting the gesture.
//
// Physical trackpads on many platforms report pinch only as a modified
// scroll stream, so the recognizer also accepts MouseScroll events from a
// "touchpad" source carrying the zoom modifier and unifies both inputs
// behind the same emission shape. The two paths do not interoperate: while
// two raw contacts are active, wheel ticks are ignored (touch correlation
// wins), and a raw second contact silently abandons an in-flight emulated
// pinch.
type Pinch struct {
	config PinchConfig

	tracker *touch.Tracker

	// Two-touch state
	pair       []input.TouchID
	active     bool
	baseline   float64
	lastScale  float64
	pattern    PinchPattern
	recognized bool
	startMid   input.Position
	lastMid    input.Position

	// Wheel emulation state
	emulating    bool
	wheelScale   float64
	wheelPattern PinchPattern
	wheelCenter  input.Position
	lastWheel    time.Duration

	target input.NodeID
	mods   key.Modifier
	source string
}

// NewPinch creates a pinch recognizer.
func NewPinch(config PinchConfig) *Pinch {
	def := DefaultPinchConfig()
	if config.MinDistance <= 0 {
		config.MinDistance = def.MinDistance
	}
	if config.MinScaleDelta <= 0 {
		config.MinScaleDelta = def.MinScaleDelta
	}
	if config.WheelFactor <= 0 {
		config.WheelFactor = def.WheelFactor
	}
	if config.WheelTimeout <= 0 {
		config.WheelTimeout = def.WheelTimeout
	}
	if config.ZoomModifier == key.ModNone {
		config.ZoomModifier = def.ZoomModifier
	}
	return &Pinch{
		config:  config,
		tracker: touch.NewTracker(),
	}
}

// Name implements Recognizer.
func (p *Pinch) Name() string { return "pinch" }

// Type implements Recognizer.
func (p *Pinch) Type() Type { return TypePinch }

// IsActive implements Recognizer.
func (p *Pinch) IsActive() bool { return p.active || p.emulating }

// SetMinDistance updates the minimum finger spread. Non-positive values
// are rejected and the prior value retained.
func (p *Pinch) SetMinDistance(px float64) {
	if px <= 0 {
		return
	}
	p.config.MinDistance = px
}

// SetMinScaleDelta updates the debounce threshold. Non-positive values are
// rejected and the prior value retained.
func (p *Pinch) SetMinScaleDelta(d float64) {
	if d <= 0 {
		return
	}
	p.config.MinScaleDelta = d
}

// SetWheelFactor updates the wheel-to-scale conversion factor.
// Non-positive values are rejected and the prior value retained.
func (p *Pinch) SetWheelFactor(k float64) {
	if k <= 0 {
		return
	}
	p.config.WheelFactor = k
}

// SetWheelTimeout updates the emulation silence timeout. Non-positive
// values are rejected and the prior value retained.
func (p *Pinch) SetWheelTimeout(d time.Duration) {
	if d <= 0 {
		return
	}
	p.config.WheelTimeout = d
}

// Config returns the current configuration.
func (p *Pinch) Config() PinchConfig { return p.config }

// Reset implements Recognizer.
func (p *Pinch) Reset() {
	p.pair = nil
	p.active = false
	p.baseline = 0
	p.lastScale = 0
	p.pattern = PinchNone
	p.recognized = false
	p.startMid = input.Position{}
	p.lastMid = input.Position{}
	p.resetWheel()
	p.target = input.NodeNone
	p.mods = key.ModNone
	p.source = ""
	p.tracker.Clear()
}

func (p *Pinch) resetWheel() {
	p.emulating = false
	p.wheelScale = 0
	p.wheelPattern = PinchNone
	p.wheelCenter = input.Position{}
	p.lastWheel = 0
}

// Update implements Recognizer.
func (p *Pinch) Update(ev *event.Event) *Info {
	switch pl := ev.Payload.(type) {
	case event.TouchBegin:
		p.touchBegin(ev, pl)
	case event.TouchUpdate:
		return p.touchUpdate(pl)
	case event.TouchEnd:
		return p.touchEnd(pl)
	case event.MouseScroll:
		return p.wheel(ev, pl)
	}
	return nil
}

// inPair reports whether an id is one of the correlated pair.
func (p *Pinch) inPair(id input.TouchID) bool {
	for _, pid := range p.pair {
		if pid == id {
			return true
		}
	}
	return false
}

func (p *Pinch) touchBegin(ev *event.Event, pl event.TouchBegin) {
	// Raw contacts take over from an in-flight emulated pinch.
	if p.emulating {
		p.resetWheel()
	}

	// Contacts beyond the pair are ignored without resetting.
	if len(p.pair) >= 2 || p.inPair(pl.ID) {
		return
	}

	p.pair = append(p.pair, pl.ID)
	p.tracker.Begin(touch.Point{ID: pl.ID, Pos: pl.Pos, Timestamp: pl.Timestamp, Pressure: pl.Pressure})

	if len(p.pair) == 2 {
		// Need an initial distance baseline before anything can be
		// emitted.
		p.active = true
		p.baseline = 0
		p.lastScale = 1.0
		p.pattern = PinchNone
		p.recognized = false
		p.target = ev.Target
		p.source = ev.SourceDevice
	}
}

func (p *Pinch) touchUpdate(pl event.TouchUpdate) *Info {
	if !p.inPair(pl.ID) {
		return nil
	}
	p.tracker.Update(touch.Point{ID: pl.ID, Pos: pl.Pos, Timestamp: pl.Timestamp, Pressure: pl.Pressure})

	if !p.active || len(p.pair) != 2 {
		return nil
	}

	a, okA := p.tracker.Latest(p.pair[0])
	b, okB := p.tracker.Latest(p.pair[1])
	if !okA || !okB {
		return nil
	}

	distance := a.Pos.Distance(b.Pos)
	center := a.Pos.Midpoint(b.Pos)
	p.lastMid = center

	if p.baseline == 0 {
		p.baseline = distance
		p.startMid = center
		return nil
	}
	if p.baseline < p.config.MinDistance {
		return nil
	}

	scale := distance / p.baseline

	// Debounce: once recognized, tiny scale wiggles do not re-emit.
	if p.recognized && abs(scale-p.lastScale) < p.config.MinScaleDelta {
		return nil
	}

	pattern := PinchOut
	if scale < 1.0 {
		pattern = PinchIn
	}

	// A direction reversal restarts the perceptual gesture.
	state := StateChanged
	if !p.recognized || pattern != p.pattern {
		state = StateBegan
	}

	p.pattern = pattern
	p.lastScale = scale
	p.recognized = true

	return p.emitTouch(state, scale, center, pl.Timestamp)
}

func (p *Pinch) touchEnd(pl event.TouchEnd) *Info {
	if !p.inPair(pl.ID) {
		return nil
	}

	var final *Info
	if p.recognized {
		final = p.emitTouch(StateEnded, p.lastScale, p.lastMid, pl.Timestamp)
	}

	// One finger lifting dissolves the correlation entirely.
	p.Reset()
	return final
}

func (p *Pinch) emitTouch(state State, scale float64, center input.Position, ts time.Duration) *Info {
	info := NewBuilder(TypePinch).
		State(state).
		Time(ts).
		Target(p.target).
		At(center).
		From(p.startMid).
		Scale(scale).
		Pattern(p.pattern).
		Touches(2).
		Source(p.source).
		Modifiers(p.mods).
		Build()
	return &info
}

// wheel handles the trackpad emulation path.
func (p *Pinch) wheel(ev *event.Event, pl event.MouseScroll) *Info {
	// Touch correlation wins over emulation.
	if len(p.pair) == 2 {
		return nil
	}

	zoom := ev.SourceDevice == input.DeviceTouchpad && pl.Modifiers.Has(p.config.ZoomModifier)

	if !p.emulating {
		if !zoom {
			return nil
		}
		// First tick starts the emulated gesture at the pointer.
		p.emulating = true
		p.wheelCenter = pl.Pos
		p.lastWheel = pl.Timestamp
		p.mods = pl.Modifiers
		p.target = ev.Target
		p.source = ev.SourceDevice

		delta := 1 - pl.Delta.Y*p.config.WheelFactor
		p.wheelScale = delta
		p.wheelPattern = PinchOut
		if delta < 1.0 {
			p.wheelPattern = PinchIn
		}
		return p.emitWheel(StateBegan, pl.Timestamp)
	}

	// A modifier-less tick or too long a silence terminates the gesture.
	if !zoom || pl.Timestamp-p.lastWheel > p.config.WheelTimeout {
		final := p.emitWheel(StateEnded, pl.Timestamp)
		p.resetWheel()
		return final
	}

	delta := 1 - pl.Delta.Y*p.config.WheelFactor
	p.wheelScale *= delta
	p.lastWheel = pl.Timestamp

	// The perceived direction of an emulated pinch is the per-tick delta,
	// not the cumulative scale: reversing the wheel flips the gesture
	// even before the running scale crosses 1.0 again.
	pattern := PinchOut
	if delta < 1.0 {
		pattern = PinchIn
	}

	state := StateChanged
	if pattern != p.wheelPattern {
		state = StateBegan
	}
	p.wheelPattern = pattern

	return p.emitWheel(state, pl.Timestamp)
}

func (p *Pinch) emitWheel(state State, ts time.Duration) *Info {
	info := NewBuilder(TypePinch).
		State(state).
		Time(ts).
		Target(p.target).
		At(p.wheelCenter).
		From(p.wheelCenter).
		Scale(p.wheelScale).
		Pattern(p.wheelPattern).
		Touches(2).
		Source(p.source).
		Modifiers(p.mods).
		Build()
	return &info
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
