package manager

import (
	"time"

	"github.com/dshills/aurora/internal/input"
	"github.com/dshills/aurora/internal/input/event"
	"github.com/dshills/aurora/internal/input/key"
	"github.com/dshills/aurora/internal/input/touch"
)

// DragState is a read-only snapshot of the pointer drag tracker.
type DragState struct {
	// Active is true once the pointer has travelled past the drag
	// threshold with a button held.
	Active bool

	// Button is the held mouse button.
	Button event.Button

	// Target is the mouse-focused node when the drag candidate started.
	Target input.NodeID

	// Start is where the button went down.
	Start input.Position

	// Current is the latest pointer position.
	Current input.Position
}

// Delta returns the total movement since Start.
func (d DragState) Delta() input.Position {
	return d.Current.Delta(d.Start)
}

// dragTracker watches for a button-down pointer travelling past a
// threshold. A press only creates a candidate; the drag activates on the
// first far-enough move.
type dragTracker struct {
	threshold float64

	pending bool
	active  bool
	button  event.Button
	target  input.NodeID
	start   input.Position
	current input.Position
}

func (t *dragTracker) begin(pos input.Position, button event.Button, target input.NodeID) {
	if t.pending || t.active {
		return
	}
	t.pending = true
	t.button = button
	t.target = target
	t.start = pos
	t.current = pos
}

func (t *dragTracker) move(pos input.Position) {
	if !t.pending && !t.active {
		return
	}
	t.current = pos
	if t.pending && pos.Distance(t.start) > t.threshold {
		t.pending = false
		t.active = true
	}
}

func (t *dragTracker) end(button event.Button) {
	if button != t.button {
		return
	}
	t.pending = false
	t.active = false
	t.button = event.ButtonNone
	t.target = input.NodeNone
	t.start = input.Position{}
	t.current = input.Position{}
}

func (t *dragTracker) state() DragState {
	return DragState{
		Active:  t.active,
		Button:  t.button,
		Target:  t.target,
		Start:   t.start,
		Current: t.current,
	}
}

// clickTracker detects double and triple clicks. The count wraps back to 1
// after 3, so a quad-click starts a new sequence.
type clickTracker struct {
	maxTime     time.Duration
	maxDistance float64

	lastPos   input.Position
	lastTime  time.Duration
	lastCount int
}

// record registers a click and returns the click count (1, 2, or 3).
func (t *clickTracker) record(pos input.Position, ts time.Duration) int {
	if t.partOfSequence(pos, ts) {
		t.lastCount++
		if t.lastCount > 3 {
			t.lastCount = 1
		}
	} else {
		t.lastCount = 1
	}
	t.lastPos = pos
	t.lastTime = ts
	return t.lastCount
}

func (t *clickTracker) partOfSequence(pos input.Position, ts time.Duration) bool {
	if t.lastCount == 0 {
		return false
	}
	// Clock going backwards starts a new sequence.
	elapsed := ts - t.lastTime
	if elapsed < 0 || elapsed > t.maxTime {
		return false
	}
	return pos.Distance(t.lastPos) <= t.maxDistance
}

func (t *clickTracker) reset() {
	t.lastCount = 0
	t.lastTime = 0
	t.lastPos = input.Position{}
}

// deviceState is the manager's view of the physical devices: which keys and
// buttons are down, where the pointer is, which touches are live, and the
// in-flight drag/click sequences.
type deviceState struct {
	pressedKeys map[keyID]struct{}
	keyOrder    []keyID

	buttons   map[event.Button]struct{}
	cursor    input.Position
	modifiers key.Modifier

	touches *touch.Tracker
	drag    dragTracker
	clicks  clickTracker
}

func newDeviceState(config Config) *deviceState {
	return &deviceState{
		pressedKeys: make(map[keyID]struct{}),
		buttons:     make(map[event.Button]struct{}),
		touches:     touch.NewTracker(),
		drag:        dragTracker{threshold: config.DragThreshold},
		clicks: clickTracker{
			maxTime:     config.DoubleClickTime,
			maxDistance: config.DoubleClickDistance,
		},
	}
}

func (s *deviceState) pressKey(id keyID) {
	if _, down := s.pressedKeys[id]; down {
		return
	}
	s.pressedKeys[id] = struct{}{}
	s.keyOrder = append(s.keyOrder, id)
}

func (s *deviceState) releaseKey(id keyID) {
	if _, down := s.pressedKeys[id]; !down {
		return
	}
	delete(s.pressedKeys, id)
	for i, k := range s.keyOrder {
		if k == id {
			s.keyOrder = append(s.keyOrder[:i], s.keyOrder[i+1:]...)
			return
		}
	}
}

// pressedInOrder returns the held keys in press order.
func (s *deviceState) pressedInOrder() []key.Key {
	out := make([]key.Key, len(s.keyOrder))
	for i, id := range s.keyOrder {
		out[i] = id.Key
	}
	return out
}
