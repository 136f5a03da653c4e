package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification string into a Chord.
//
// Supported formats:
//   - Single character: "a", "A", "1", "@"
//   - Special keys: "Enter", "Escape", "Tab", "Space", "F5"
//   - With modifiers: "Ctrl+S", "Alt+F4", "Ctrl+Shift+P", "Meta+Left"
func Parse(spec string) (Chord, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Chord{}, ErrEmptySpec
	}

	if strings.Contains(spec, "+") && utf8.RuneCountInString(spec) > 1 {
		return parseModifierStyle(spec)
	}

	return parseSingle(spec, ModNone)
}

// parseModifierStyle parses "Ctrl+S" style specifications. The last part
// is the key, every preceding part must name a modifier.
func parseModifierStyle(spec string) (Chord, error) {
	// "Ctrl++" binds the plus character itself.
	keySpec := ""
	if strings.HasSuffix(spec, "++") {
		keySpec = "+"
		spec = strings.TrimSuffix(spec, "++")
	}

	parts := strings.Split(spec, "+")
	if keySpec == "" {
		keySpec = strings.TrimSpace(parts[len(parts)-1])
		parts = parts[:len(parts)-1]
	}

	var mods Modifier
	for _, p := range parts {
		p = strings.TrimSpace(p)
		mod := ModifierFromName(p)
		if mod == ModNone {
			return Chord{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}

	return parseSingle(keySpec, mods)
}

// parseSingle parses a bare key name or single character.
func parseSingle(spec string, mods Modifier) (Chord, error) {
	if spec == "" {
		return Chord{}, ErrInvalidSpec
	}

	// Named special key
	if k := FromName(spec); k != KeyNone {
		return NewSpecialChord(k, mods), nil
	}

	// Single character
	if utf8.RuneCountInString(spec) == 1 {
		r, _ := utf8.DecodeRuneInString(spec)
		// An uppercase letter implies Shift.
		if unicode.IsUpper(r) {
			mods = mods.With(ModShift)
		}
		return NewRuneChord(r, mods), nil
	}

	return Chord{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, spec)
}
