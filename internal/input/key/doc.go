// Package key defines keyboard key symbols, modifier bitmasks, and the
// Chord value type used for shortcut definitions.
//
// A Chord is (symbol, rune, modifier set); equality ignores timestamps and
// device details, which makes it suitable as a shortcut lookup key. Parse
// converts human-readable specifications like "Ctrl+Shift+P" into chords.
package key
