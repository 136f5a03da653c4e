// Package gesture converts raw input event streams into recognized
// semantic gestures.
//
// Each recognizer is an independent, single-owner state machine. The same
// event stream is offered to every registered recognizer, typically by
// wiring them as global handlers on the input manager; a recognizer that is
// mid-disambiguation or does not recognize simply returns nil. Recognizers
// never coordinate with each other: when several gesture types fire for the
// same physical motion, the consumer decides precedence.
package gesture

import "github.com/dshills/aurora/internal/input/event"

// Type identifies a gesture family.
type Type uint8

const (
	// TypeNone indicates no gesture.
	TypeNone Type = iota
	// TypeTap is a quick press-and-release without movement.
	TypeTap
	// TypeLongPress is a press held in place past a duration threshold.
	TypeLongPress
	// TypeSwipe is a fast directional movement.
	TypeSwipe
	// TypePinch is a two-finger scale gesture, or its trackpad emulation.
	TypePinch
)

// String returns a string representation of the gesture type.
func (t Type) String() string {
	switch t {
	case TypeTap:
		return "tap"
	case TypeLongPress:
		return "long-press"
	case TypeSwipe:
		return "swipe"
	case TypePinch:
		return "pinch"
	default:
		return "none"
	}
}

// State describes where a gesture is in its lifecycle. Continuous gestures
// loop Began -> Changed* -> Ended; single-shot gestures emit Recognized
// once. Ended, Cancelled, Failed, and Recognized are terminal.
type State uint8

const (
	// StateNone indicates no gesture activity.
	StateNone State = iota
	// StateBegan is the first emission of a continuous gesture.
	StateBegan
	// StateChanged is a continuing emission of an in-progress gesture.
	StateChanged
	// StateEnded is the final emission of a completed continuous gesture.
	StateEnded
	// StateCancelled reports a gesture abandoned mid-flight.
	StateCancelled
	// StateFailed reports a gesture that missed its recognition criteria.
	StateFailed
	// StateRecognized is the single emission of a single-shot gesture.
	StateRecognized
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateBegan:
		return "began"
	case StateChanged:
		return "changed"
	case StateEnded:
		return "ended"
	case StateCancelled:
		return "cancelled"
	case StateFailed:
		return "failed"
	case StateRecognized:
		return "recognized"
	default:
		return "none"
	}
}

// IsTerminal returns true for states that end a gesture instance.
func (s State) IsTerminal() bool {
	switch s {
	case StateEnded, StateCancelled, StateFailed, StateRecognized:
		return true
	}
	return false
}

// Recognizer is the uniform contract implemented by every concrete
// gesture recognizer.
//
// Update offers one event to the recognizer and returns a recognized
// gesture, or nil when the event does not complete or advance one.
// Unmatched event variants are no-ops; Update never panics. Reset clears
// all in-progress state and is safe to call at any time, any number of
// times.
type Recognizer interface {
	// Name returns a stable identifier for logs and registries.
	Name() string

	// Type returns the gesture family this recognizer produces.
	Type() Type

	// Update processes one event, possibly emitting a gesture.
	Update(ev *event.Event) *Info

	// Reset abandons any in-progress gesture.
	Reset()

	// IsActive reports whether a gesture is in progress.
	IsActive() bool
}
