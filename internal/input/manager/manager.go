// Package manager implements the input orchestrator: it owns the event
// queue, device state, focus, the shortcut table, and the handler
// registries, and drives every queued event through key-repeat synthesis,
// state update, shortcut matching, and dispatch.
//
// The manager is single-threaded and polling-driven. The hosting loop calls
// PushEvent as raw input arrives and ProcessEvents(now) once per tick with
// a monotonic clock; there are no goroutines, timers, or locks here, and a
// multi-threaded embedding must serialize access externally.
package manager

import (
	"time"

	"github.com/dshills/aurora/internal/input"
	"github.com/dshills/aurora/internal/input/event"
	"github.com/dshills/aurora/internal/input/key"
	"github.com/dshills/aurora/internal/input/touch"

	"github.com/google/uuid"
)

// Config configures the input manager.
type Config struct {
	// RepeatDelay is how long a key must be held before the first
	// synthesized repeat. Default: 500ms.
	RepeatDelay time.Duration

	// RepeatInterval is the spacing of repeats after the first.
	// Default: 50ms.
	RepeatInterval time.Duration

	// DoubleClickTime is the maximum time between clicks of a multi-click
	// sequence. Default: 400ms.
	DoubleClickTime time.Duration

	// DoubleClickDistance is how far apart clicks of a sequence may land,
	// in pixels. Default: 5.
	DoubleClickDistance float64

	// DragThreshold is how far the pointer must travel with a button held
	// before a drag activates, in pixels. Default: 4.
	DragThreshold float64
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		RepeatDelay:         500 * time.Millisecond,
		RepeatInterval:      50 * time.Millisecond,
		DoubleClickTime:     400 * time.Millisecond,
		DoubleClickDistance: 5,
		DragThreshold:       4,
	}
}

// Manager is the input pipeline orchestrator.
type Manager struct {
	config Config

	queue []*event.Event
	now   time.Duration

	state     *deviceState
	repeats   *repeatTable
	shortcuts *shortcutTable
	handlers  *registry

	keyboardFocus input.NodeID
	mouseFocus    input.NodeID
}

// New creates an input manager. Non-positive config fields fall back to
// their defaults.
func New(config Config) *Manager {
	def := DefaultConfig()
	if config.RepeatDelay <= 0 {
		config.RepeatDelay = def.RepeatDelay
	}
	if config.RepeatInterval <= 0 {
		config.RepeatInterval = def.RepeatInterval
	}
	if config.DoubleClickTime <= 0 {
		config.DoubleClickTime = def.DoubleClickTime
	}
	if config.DoubleClickDistance <= 0 {
		config.DoubleClickDistance = def.DoubleClickDistance
	}
	if config.DragThreshold <= 0 {
		config.DragThreshold = def.DragThreshold
	}
	return &Manager{
		config:    config,
		state:     newDeviceState(config),
		repeats:   newRepeatTable(config.RepeatDelay, config.RepeatInterval),
		shortcuts: newShortcutTable(),
		handlers:  newRegistry(),
	}
}

// Config returns the current configuration.
func (m *Manager) Config() Config { return m.config }

// SetRepeatDelay updates the initial repeat delay. Non-positive values are
// rejected and the prior value retained.
func (m *Manager) SetRepeatDelay(d time.Duration) {
	if d <= 0 {
		return
	}
	m.config.RepeatDelay = d
	m.repeats.delay = d
}

// SetRepeatInterval updates the repeat spacing. Non-positive values are
// rejected and the prior value retained.
func (m *Manager) SetRepeatInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	m.config.RepeatInterval = d
	m.repeats.interval = d
}

// SetDoubleClickTime updates the multi-click window. Non-positive values
// are rejected and the prior value retained.
func (m *Manager) SetDoubleClickTime(d time.Duration) {
	if d <= 0 {
		return
	}
	m.config.DoubleClickTime = d
	m.state.clicks.maxTime = d
}

// SetDoubleClickDistance updates the multi-click distance. Non-positive
// values are rejected and the prior value retained.
func (m *Manager) SetDoubleClickDistance(px float64) {
	if px <= 0 {
		return
	}
	m.config.DoubleClickDistance = px
	m.state.clicks.maxDistance = px
}

// SetDragThreshold updates the drag activation distance. Non-positive
// values are rejected and the prior value retained.
func (m *Manager) SetDragThreshold(px float64) {
	if px <= 0 {
		return
	}
	m.config.DragThreshold = px
	m.state.drag.threshold = px
}

// PushEvent appends an event to the tail of the queue. It never blocks and
// has no side effects beyond the enqueue. Nil events are ignored.
func (m *Manager) PushEvent(ev *event.Event) {
	if ev == nil {
		return
	}
	m.queue = append(m.queue, ev)
}

// QueueLen returns the number of events waiting to be processed.
func (m *Manager) QueueLen() int { return len(m.queue) }

// ProcessEvents synthesizes repeat presses for held keys whose timers have
// elapsed at now, then drains the queue in FIFO order. Synthesized repeats
// are enqueued behind already-queued events and ahead of anything arriving
// in a later tick.
func (m *Manager) ProcessEvents(now time.Duration) {
	m.now = now

	for _, repeat := range m.repeats.tick(now) {
		m.PushEvent(event.New(repeat))
	}

	// Events pushed by handlers mid-drain are processed in the same tick.
	for len(m.queue) > 0 {
		ev := m.queue[0]
		m.queue = m.queue[1:]
		m.ProcessEvent(ev)
	}
}

// ProcessEvent routes one event: device state update, then shortcut
// matching for key presses, then target resolution from focus, then
// dispatch.
func (m *Manager) ProcessEvent(ev *event.Event) {
	if ev == nil {
		return
	}

	m.updateState(ev)

	if kp, ok := ev.Payload.(event.KeyPress); ok {
		m.matchShortcut(ev, kp)
	}

	// A missing target resolves to the relevant focus: keyboard focus for
	// key and focus events, mouse focus for everything else.
	if ev.Target.IsNone() {
		if ev.IsKey() || ev.IsFocus() {
			ev.Target = m.keyboardFocus
		} else {
			ev.Target = m.mouseFocus
		}
	}

	m.DispatchEvent(ev)
}

// DispatchEvent runs all global handlers in registration order, then the
// target node's handlers. Dispatch short-circuits as soon as a handler
// returns false or the event stops propagating.
func (m *Manager) DispatchEvent(ev *event.Event) {
	if ev == nil {
		return
	}

	for _, entry := range m.handlers.globalEntries() {
		if !ev.Propagate {
			return
		}
		if !entry.fn(ev) {
			return
		}
	}

	if ev.Target.IsNone() {
		return
	}
	for _, entry := range m.handlers.nodeEntries(ev.Target) {
		if !ev.Propagate {
			return
		}
		if !entry.fn(ev) {
			return
		}
	}
}

// updateState folds one event into the device state.
func (m *Manager) updateState(ev *event.Event) {
	switch p := ev.Payload.(type) {
	case event.KeyPress:
		m.state.modifiers = p.Modifiers
		id := keyID{Key: p.Key, Rune: p.Rune}
		m.state.pressKey(id)
		if !p.Repeat {
			m.repeats.arm(id, p.Code, p.Modifiers, p.Timestamp)
		}

	case event.KeyRelease:
		m.state.modifiers = p.Modifiers
		id := keyID{Key: p.Key, Rune: p.Rune}
		m.state.releaseKey(id)
		m.repeats.disarm(id)

	case event.MousePress:
		m.state.modifiers = p.Modifiers
		m.state.cursor = p.Pos
		m.state.buttons[p.Button] = struct{}{}
		m.state.drag.begin(p.Pos, p.Button, m.mouseFocus)
		if p.Button == event.ButtonLeft {
			m.state.clicks.record(p.Pos, p.Timestamp)
		}

	case event.MouseRelease:
		m.state.modifiers = p.Modifiers
		m.state.cursor = p.Pos
		delete(m.state.buttons, p.Button)
		m.state.drag.end(p.Button)

	case event.MouseMove:
		m.state.modifiers = p.Modifiers
		m.state.cursor = p.Pos
		m.state.drag.move(p.Pos)

	case event.MouseScroll:
		m.state.modifiers = p.Modifiers
		m.state.cursor = p.Pos

	case event.TouchBegin:
		m.state.touches.Begin(touch.Point{ID: p.ID, Pos: p.Pos, Timestamp: p.Timestamp, Pressure: p.Pressure})

	case event.TouchUpdate:
		m.state.touches.Update(touch.Point{ID: p.ID, Pos: p.Pos, Timestamp: p.Timestamp, Pressure: p.Pressure})

	case event.TouchEnd:
		m.state.touches.End(p.ID)
	}
}

// matchShortcut checks a key press against the shortcut table. On the
// first structural chord match the action runs and the event is marked
// handled and non-propagating, so it never reaches handlers.
func (m *Manager) matchShortcut(ev *event.Event, kp event.KeyPress) {
	var chord key.Chord
	if kp.Key == key.KeyRune {
		chord = key.NewRuneChord(kp.Rune, kp.Modifiers)
	} else {
		chord = key.NewSpecialChord(kp.Key, kp.Modifiers)
	}

	action, ok := m.shortcuts.match(chord)
	if !ok {
		return
	}
	action()
	ev.MarkHandled()
	ev.StopPropagation()
}

// SetKeyboardFocus moves keyboard focus. The focus mutation is immediate;
// synthetic FocusOut/FocusIn events for the old and new nodes are enqueued
// for observers and dispatched on the next tick.
func (m *Manager) SetKeyboardFocus(target input.NodeID) {
	if target == m.keyboardFocus {
		return
	}
	prev := m.keyboardFocus
	m.keyboardFocus = target

	if !prev.IsNone() {
		m.PushEvent(event.NewTargeted(prev, event.FocusOut{Timestamp: m.now, Node: prev}))
	}
	if !target.IsNone() {
		m.PushEvent(event.NewTargeted(target, event.FocusIn{Timestamp: m.now, Node: target}))
	}
}

// SetMouseFocus moves mouse focus.
func (m *Manager) SetMouseFocus(target input.NodeID) {
	m.mouseFocus = target
}

// KeyboardFocus returns the keyboard-focused node.
func (m *Manager) KeyboardFocus() input.NodeID { return m.keyboardFocus }

// MouseFocus returns the mouse-focused node.
func (m *Manager) MouseFocus() input.NodeID { return m.mouseFocus }

// AddHandler registers a global handler and returns its removal token.
func (m *Manager) AddHandler(fn Handler) uuid.UUID {
	if fn == nil {
		return uuid.Nil
	}
	return m.handlers.addGlobal(fn)
}

// RemoveHandler unregisters a global handler. Unknown tokens are a no-op.
func (m *Manager) RemoveHandler(id uuid.UUID) {
	m.handlers.removeGlobal(id)
}

// AddNodeHandler registers a handler for events targeted at one node and
// returns its removal token.
func (m *Manager) AddNodeHandler(node input.NodeID, fn Handler) uuid.UUID {
	if fn == nil || node.IsNone() {
		return uuid.Nil
	}
	return m.handlers.addNode(node, fn)
}

// RemoveNodeHandler unregisters a per-node handler. Unknown nodes or tokens
// are a no-op.
func (m *Manager) RemoveNodeHandler(node input.NodeID, id uuid.UUID) {
	m.handlers.removeNode(node, id)
}

// RegisterShortcut adds a shortcut and returns its removal token. A nil
// action is rejected with the zero token.
func (m *Manager) RegisterShortcut(sc Shortcut, action Action) uuid.UUID {
	return m.shortcuts.register(sc, action)
}

// UnregisterShortcut removes a shortcut. Unknown tokens are a no-op.
func (m *Manager) UnregisterShortcut(id uuid.UUID) {
	m.shortcuts.unregister(id)
}

// LookupShortcut returns the first registered shortcut matching a chord.
func (m *Manager) LookupShortcut(c key.Chord) (Shortcut, bool) {
	return m.shortcuts.lookup(c)
}

// Shortcuts returns all registered shortcuts in registration order.
func (m *Manager) Shortcuts() []Shortcut {
	return m.shortcuts.list()
}

// PressedKeys returns the held keys in press order.
func (m *Manager) PressedKeys() []key.Key {
	return m.state.pressedInOrder()
}

// IsKeyPressed reports whether a non-rune key is held.
func (m *Manager) IsKeyPressed(k key.Key) bool {
	_, down := m.state.pressedKeys[keyID{Key: k}]
	return down
}

// IsRunePressed reports whether a character key is held.
func (m *Manager) IsRunePressed(r rune) bool {
	_, down := m.state.pressedKeys[keyID{Key: key.KeyRune, Rune: r}]
	return down
}

// IsButtonPressed reports whether a mouse button is held.
func (m *Manager) IsButtonPressed(b event.Button) bool {
	_, down := m.state.buttons[b]
	return down
}

// CursorPosition returns the last known pointer position.
func (m *Manager) CursorPosition() input.Position { return m.state.cursor }

// Modifiers returns the most recently observed modifier set.
func (m *Manager) Modifiers() key.Modifier { return m.state.modifiers }

// ActiveTouches returns the live touch ids in ascending order.
func (m *Manager) ActiveTouches() []input.TouchID {
	return m.state.touches.ActiveIDs()
}

// Touches exposes the touch history tracker fed by processed events.
func (m *Manager) Touches() *touch.Tracker { return m.state.touches }

// Drag returns a snapshot of the pointer drag state.
func (m *Manager) Drag() DragState { return m.state.drag.state() }

// ClickCount returns the current multi-click count (1, 2, or 3).
func (m *Manager) ClickCount() int { return m.state.clicks.lastCount }
