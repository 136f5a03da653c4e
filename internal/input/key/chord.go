package key

import (
	"strings"
)

// Chord is a key symbol plus its modifier set. It is the value type used
// for shortcut definitions and shortcut lookup: equality is defined over
// (Key, Rune, Modifiers) only, so a Chord can serve as a map key or be
// compared structurally against an incoming key press.
type Chord struct {
	// Key identifies the key symbol. KeyRune for character keys.
	Key Key

	// Rune is the character for KeyRune chords.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneChord creates a chord for a character key.
func NewRuneChord(r rune, mods Modifier) Chord {
	return Chord{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialChord creates a chord for a special (non-character) key.
func NewSpecialChord(k Key, mods Modifier) Chord {
	return Chord{Key: k, Modifiers: mods}
}

// IsRune returns true if this is a character chord.
func (c Chord) IsRune() bool {
	return c.Key == KeyRune && c.Rune != 0
}

// IsZero returns true if the chord names no key at all.
func (c Chord) IsZero() bool {
	return c.Key == KeyNone && c.Rune == 0 && c.Modifiers == ModNone
}

// Equals returns true if two chords represent the same key press.
func (c Chord) Equals(other Chord) bool {
	return c.Key == other.Key &&
		c.Rune == other.Rune &&
		c.Modifiers == other.Modifiers
}

// String returns a canonical representation like "Ctrl+S" or "Alt+F4".
func (c Chord) String() string {
	var parts []string

	if c.Modifiers.HasCtrl() {
		parts = append(parts, "Ctrl")
	}
	if c.Modifiers.HasAlt() {
		parts = append(parts, "Alt")
	}
	if c.Modifiers.HasMeta() {
		parts = append(parts, "Meta")
	}
	// Shift is part of the character for rune chords.
	if c.Modifiers.HasShift() && !c.IsRune() {
		parts = append(parts, "Shift")
	}

	var keyName string
	switch {
	case c.Key == KeyRune && c.Rune == ' ':
		keyName = "Space"
	case c.Key == KeyRune:
		keyName = string(c.Rune)
	default:
		keyName = c.Key.String()
	}
	parts = append(parts, keyName)

	return strings.Join(parts, "+")
}

// Matches checks if this chord matches a key specification string.
func (c Chord) Matches(spec string) bool {
	parsed, err := Parse(spec)
	if err != nil {
		return false
	}
	return c.Equals(parsed)
}
