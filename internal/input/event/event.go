// Package event defines the input event envelope and its closed set of
// device payload variants.
//
// An Event is transient: a producer creates it, the dispatch pipeline
// consumes it exactly once, and it is dropped. The payload is immutable;
// the envelope fields (Target, Handled, Propagate) may be set by dispatch.
package event

import (
	"github.com/dshills/aurora/internal/input"
)

// Event is the envelope flowing through the dispatch pipeline.
type Event struct {
	// Target is the node this event is addressed to. If left unset by the
	// producer, the input manager fills it from the current focus before
	// dispatch.
	Target input.NodeID

	// Payload is the immutable device event variant.
	Payload Payload

	// Handled marks the event as consumed by a handler or shortcut.
	Handled bool

	// Propagate controls whether dispatch continues to further handlers.
	Propagate bool

	// SourceDevice names the producing device ("touchpad", "mouse", ...).
	// Empty when the producer did not identify the device.
	SourceDevice string
}

// New creates an event envelope around a payload. Propagation is enabled
// by default.
func New(p Payload) *Event {
	return &Event{Payload: p, Propagate: true}
}

// NewTargeted creates an event addressed to a specific node.
func NewTargeted(target input.NodeID, p Payload) *Event {
	return &Event{Target: target, Payload: p, Propagate: true}
}

// WithSource returns the event with its source device set.
func (e *Event) WithSource(device string) *Event {
	e.SourceDevice = device
	return e
}

// StopPropagation prevents any further handlers from seeing this event.
func (e *Event) StopPropagation() {
	e.Propagate = false
}

// MarkHandled marks the event consumed without stopping propagation.
func (e *Event) MarkHandled() {
	e.Handled = true
}

// IsKey returns true for key press/release payloads.
func (e *Event) IsKey() bool {
	switch e.Payload.(type) {
	case KeyPress, KeyRelease:
		return true
	}
	return false
}

// IsMouse returns true for mouse button, motion, and scroll payloads.
func (e *Event) IsMouse() bool {
	switch e.Payload.(type) {
	case MousePress, MouseRelease, MouseMove, MouseScroll:
		return true
	}
	return false
}

// IsTouch returns true for touch contact payloads.
func (e *Event) IsTouch() bool {
	switch e.Payload.(type) {
	case TouchBegin, TouchUpdate, TouchEnd:
		return true
	}
	return false
}

// IsTablet returns true for tablet tool payloads.
func (e *Event) IsTablet() bool {
	switch e.Payload.(type) {
	case TabletProximity, TabletTip, TabletButton:
		return true
	}
	return false
}

// IsFocus returns true for focus change payloads.
func (e *Event) IsFocus() bool {
	switch e.Payload.(type) {
	case FocusIn, FocusOut:
		return true
	}
	return false
}
