package manager

import (
	"github.com/dshills/aurora/internal/input/key"

	"github.com/google/uuid"
)

// Shortcut describes one keyboard shortcut. Matching is defined over the
// chord only; Description is display metadata for keybinding UIs.
type Shortcut struct {
	Chord       key.Chord
	Description string
}

// Action is invoked when a shortcut's chord matches a key press.
type Action func()

// shortcutEntry pairs a shortcut with its action and removal token.
type shortcutEntry struct {
	id       uuid.UUID
	shortcut Shortcut
	action   Action
}

// shortcutTable is an ordered shortcut registry. Lookup walks entries in
// registration order; the first chord match wins, so earlier registrations
// shadow later ones.
type shortcutTable struct {
	entries []shortcutEntry
}

func newShortcutTable() *shortcutTable {
	return &shortcutTable{}
}

// register adds a shortcut and returns its removal token. A nil action is
// rejected and the zero token returned.
func (t *shortcutTable) register(sc Shortcut, action Action) uuid.UUID {
	if action == nil {
		return uuid.Nil
	}
	id := uuid.New()
	t.entries = append(t.entries, shortcutEntry{id: id, shortcut: sc, action: action})
	return id
}

// unregister removes a shortcut. Unknown tokens are a no-op.
func (t *shortcutTable) unregister(id uuid.UUID) {
	for i, entry := range t.entries {
		if entry.id == id {
			t.entries = append(t.entries[:i], t.entries[i+1:]...)
			return
		}
	}
}

// match returns the first registered action whose chord matches.
func (t *shortcutTable) match(c key.Chord) (Action, bool) {
	for _, entry := range t.entries {
		if entry.shortcut.Chord.Equals(c) {
			return entry.action, true
		}
	}
	return nil, false
}

// lookup returns the first registered shortcut whose chord matches.
func (t *shortcutTable) lookup(c key.Chord) (Shortcut, bool) {
	for _, entry := range t.entries {
		if entry.shortcut.Chord.Equals(c) {
			return entry.shortcut, true
		}
	}
	return Shortcut{}, false
}

// list returns all registered shortcuts in registration order.
func (t *shortcutTable) list() []Shortcut {
	out := make([]Shortcut, len(t.entries))
	for i, entry := range t.entries {
		out[i] = entry.shortcut
	}
	return out
}
