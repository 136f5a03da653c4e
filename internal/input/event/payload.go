package event

import (
	"time"

	"github.com/dshills/aurora/internal/input"
	"github.com/dshills/aurora/internal/input/key"
)

// Payload is the closed set of device event variants. Every variant
// carries a monotonic timestamp measured from pipeline start; Time is a
// total function over the set. The variant set is sealed so that consumers
// can switch over it exhaustively.
type Payload interface {
	// Time returns the event timestamp as a duration since pipeline start.
	Time() time.Duration

	sealed()
}

// Button represents a mouse or tablet-tool button.
type Button uint8

const (
	// ButtonNone indicates no button.
	ButtonNone Button = iota
	// ButtonLeft is the primary (left) mouse button.
	ButtonLeft
	// ButtonMiddle is the middle mouse button.
	ButtonMiddle
	// ButtonRight is the secondary (right) mouse button.
	ButtonRight
	// ButtonBack is the back navigation button (mouse button 4).
	ButtonBack
	// ButtonForward is the forward navigation button (mouse button 5).
	ButtonForward
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	case ButtonBack:
		return "back"
	case ButtonForward:
		return "forward"
	default:
		return "none"
	}
}

// KeyPress reports a key going down. Repeat is true for synthesized
// key-repeat presses.
type KeyPress struct {
	Timestamp time.Duration
	Code      uint32
	Key       key.Key
	Rune      rune
	Modifiers key.Modifier
	Repeat    bool
}

// KeyRelease reports a key coming up.
type KeyRelease struct {
	Timestamp time.Duration
	Code      uint32
	Key       key.Key
	Rune      rune
	Modifiers key.Modifier
}

// MousePress reports a mouse button going down.
type MousePress struct {
	Timestamp time.Duration
	Button    Button
	Pos       input.Position
	Modifiers key.Modifier
}

// MouseRelease reports a mouse button coming up.
type MouseRelease struct {
	Timestamp time.Duration
	Button    Button
	Pos       input.Position
	Modifiers key.Modifier
}

// MouseMove reports pointer motion. Delta is the motion since the previous
// move event.
type MouseMove struct {
	Timestamp time.Duration
	Pos       input.Position
	Delta     input.Position
	Modifiers key.Modifier
}

// MouseScroll reports wheel or trackpad scroll motion. Delta is the scroll
// amount for this tick; Pos is the pointer position at the time.
type MouseScroll struct {
	Timestamp time.Duration
	Pos       input.Position
	Delta     input.Position
	Modifiers key.Modifier
}

// TouchBegin reports a new finger contact.
type TouchBegin struct {
	Timestamp time.Duration
	ID        input.TouchID
	Pos       input.Position
	Pressure  float64
}

// TouchUpdate reports motion of an existing contact.
type TouchUpdate struct {
	Timestamp time.Duration
	ID        input.TouchID
	Pos       input.Position
	Delta     input.Position
	Pressure  float64
}

// TouchEnd reports a finger lifting.
type TouchEnd struct {
	Timestamp time.Duration
	ID        input.TouchID
	Pos       input.Position
}

// TabletProximity reports a tablet tool entering or leaving sensing range.
type TabletProximity struct {
	Timestamp time.Duration
	Tool      string
	In        bool
	Pos       input.Position
}

// TabletTip reports tablet pen tip contact state and pressure.
type TabletTip struct {
	Timestamp time.Duration
	Pos       input.Position
	Pressure  float64
	Down      bool
}

// TabletButton reports a tablet tool button change.
type TabletButton struct {
	Timestamp time.Duration
	Button    Button
	Pressed   bool
	Modifiers key.Modifier
}

// FocusIn reports a node gaining keyboard focus.
type FocusIn struct {
	Timestamp time.Duration
	Node      input.NodeID
}

// FocusOut reports a node losing keyboard focus.
type FocusOut struct {
	Timestamp time.Duration
	Node      input.NodeID
}

func (p KeyPress) Time() time.Duration        { return p.Timestamp }
func (p KeyRelease) Time() time.Duration      { return p.Timestamp }
func (p MousePress) Time() time.Duration      { return p.Timestamp }
func (p MouseRelease) Time() time.Duration    { return p.Timestamp }
func (p MouseMove) Time() time.Duration       { return p.Timestamp }
func (p MouseScroll) Time() time.Duration     { return p.Timestamp }
func (p TouchBegin) Time() time.Duration      { return p.Timestamp }
func (p TouchUpdate) Time() time.Duration     { return p.Timestamp }
func (p TouchEnd) Time() time.Duration        { return p.Timestamp }
func (p TabletProximity) Time() time.Duration { return p.Timestamp }
func (p TabletTip) Time() time.Duration       { return p.Timestamp }
func (p TabletButton) Time() time.Duration    { return p.Timestamp }
func (p FocusIn) Time() time.Duration         { return p.Timestamp }
func (p FocusOut) Time() time.Duration        { return p.Timestamp }

func (KeyPress) sealed()        {}
func (KeyRelease) sealed()      {}
func (MousePress) sealed()      {}
func (MouseRelease) sealed()    {}
func (MouseMove) sealed()       {}
func (MouseScroll) sealed()     {}
func (TouchBegin) sealed()      {}
func (TouchUpdate) sealed()     {}
func (TouchEnd) sealed()        {}
func (TabletProximity) sealed() {}
func (TabletTip) sealed()       {}
func (TabletButton) sealed()    {}
func (FocusIn) sealed()         {}
func (FocusOut) sealed()        {}
