package gesture

import (
	"time"

	"github.com/dshills/aurora/internal/input"
	"github.com/dshills/aurora/internal/input/key"
	"github.com/dshills/aurora/internal/input/touch"
)

// Info is one recognized gesture notification. It is built incrementally
// by a recognizer through a Builder and immutable once emitted.
type Info struct {
	// Type is the gesture family.
	Type Type

	// State is the lifecycle state of this emission.
	State State

	// Timestamp is the time of the triggering event.
	Timestamp time.Duration

	// Target is the node the gesture is addressed to, when known.
	Target input.NodeID

	// Position is the current gesture position (pointer position, touch
	// centroid, or pinch center).
	Position input.Position

	// StartPosition is where the gesture began.
	StartPosition input.Position

	// Delta is the total movement since StartPosition.
	Delta input.Position

	// Velocity is the estimated movement velocity in pixels per second.
	Velocity touch.Velocity

	// Scale is the pinch scale factor relative to the initial spread.
	// 1.0 for non-pinch gestures.
	Scale float64

	// Rotation is the accumulated rotation in radians, when tracked.
	Rotation float64

	// TouchCount is the number of contacts involved.
	TouchCount int

	// SwipeDirection is the 8-way direction for swipe gestures,
	// DirNone otherwise.
	SwipeDirection input.Direction

	// LongPressDuration is how long the press was held, for long-press
	// gestures; zero otherwise.
	LongPressDuration time.Duration

	// Pattern is the perceived pinch direction for pinch gestures,
	// PinchNone otherwise. Two-finger pinches classify the cumulative
	// scale; trackpad-emulated pinches classify the latest wheel tick.
	Pattern PinchPattern

	// SourceDevice names the device that produced the gesture, when known.
	SourceDevice string

	// Modifiers are the keyboard modifiers held during the gesture.
	Modifiers key.Modifier
}

// PinchPattern classifies the perceived pinch motion.
type PinchPattern uint8

const (
	// PinchNone indicates no pinch classification.
	PinchNone PinchPattern = iota
	// PinchIn is a contracting pinch (zoom out intent).
	PinchIn
	// PinchOut is an expanding pinch (zoom in intent).
	PinchOut
)

// String returns a string representation of the pattern.
func (p PinchPattern) String() string {
	switch p {
	case PinchIn:
		return "in"
	case PinchOut:
		return "out"
	default:
		return "none"
	}
}

// IsPinchIn returns true for a pinch perceived as contracting.
func (i Info) IsPinchIn() bool {
	return i.Type == TypePinch && i.Pattern == PinchIn
}

// IsPinchOut returns true for a pinch perceived as expanding.
func (i Info) IsPinchOut() bool {
	return i.Type == TypePinch && i.Pattern == PinchOut
}

// Builder assembles an Info fluently. Recognizers stamp the per-emission
// fields (state, timestamp, position) right before Build.
type Builder struct {
	info Info
}

// NewBuilder starts building a gesture of the given type.
// Scale defaults to 1.0.
func NewBuilder(t Type) *Builder {
	return &Builder{info: Info{Type: t, Scale: 1.0}}
}

// State sets the lifecycle state.
func (b *Builder) State(s State) *Builder {
	b.info.State = s
	return b
}

// Time sets the timestamp.
func (b *Builder) Time(ts time.Duration) *Builder {
	b.info.Timestamp = ts
	return b
}

// Target sets the addressed node.
func (b *Builder) Target(n input.NodeID) *Builder {
	b.info.Target = n
	return b
}

// At sets the current position.
func (b *Builder) At(p input.Position) *Builder {
	b.info.Position = p
	return b
}

// From sets the start position and derives Delta from the current
// position when one is already set.
func (b *Builder) From(p input.Position) *Builder {
	b.info.StartPosition = p
	b.info.Delta = b.info.Position.Delta(p)
	return b
}

// Delta overrides the movement delta.
func (b *Builder) Delta(d input.Position) *Builder {
	b.info.Delta = d
	return b
}

// Velocity sets the estimated velocity.
func (b *Builder) Velocity(v touch.Velocity) *Builder {
	b.info.Velocity = v
	return b
}

// Scale sets the pinch scale factor.
func (b *Builder) Scale(s float64) *Builder {
	b.info.Scale = s
	return b
}

// Rotation sets the accumulated rotation.
func (b *Builder) Rotation(r float64) *Builder {
	b.info.Rotation = r
	return b
}

// Touches sets the contact count.
func (b *Builder) Touches(n int) *Builder {
	b.info.TouchCount = n
	return b
}

// Direction sets the swipe direction.
func (b *Builder) Direction(d input.Direction) *Builder {
	b.info.SwipeDirection = d
	return b
}

// Pattern sets the pinch direction classification.
func (b *Builder) Pattern(p PinchPattern) *Builder {
	b.info.Pattern = p
	return b
}

// Held sets the long-press hold duration.
func (b *Builder) Held(d time.Duration) *Builder {
	b.info.LongPressDuration = d
	return b
}

// Source sets the producing device name.
func (b *Builder) Source(device string) *Builder {
	b.info.SourceDevice = device
	return b
}

// Modifiers sets the held keyboard modifiers.
func (b *Builder) Modifiers(m key.Modifier) *Builder {
	b.info.Modifiers = m
	return b
}

// Build returns the assembled Info.
func (b *Builder) Build() Info {
	return b.info
}
