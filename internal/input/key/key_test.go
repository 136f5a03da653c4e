package key

import "testing"

func TestKeyString(t *testing.T) {
	tests := []struct {
		key      Key
		expected string
	}{
		{KeyNone, "None"},
		{KeyEscape, "Escape"},
		{KeyEnter, "Enter"},
		{KeyTab, "Tab"},
		{KeyBackspace, "Backspace"},
		{KeySpace, "Space"},
		{KeyUp, "Up"},
		{KeyF1, "F1"},
		{KeyF12, "F12"},
		{KeyRune, "Rune"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.key.String(); got != tt.expected {
				t.Errorf("Key.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestKeyIsSpecial(t *testing.T) {
	if KeyNone.IsSpecial() {
		t.Error("KeyNone.IsSpecial() = true, want false")
	}
	if KeyRune.IsSpecial() {
		t.Error("KeyRune.IsSpecial() = true, want false")
	}
	if !KeyEscape.IsSpecial() {
		t.Error("KeyEscape.IsSpecial() = false, want true")
	}
	if !KeyF5.IsSpecial() {
		t.Error("KeyF5.IsSpecial() = false, want true")
	}
}

func TestFromName(t *testing.T) {
	tests := []struct {
		name     string
		expected Key
	}{
		{"escape", KeyEscape},
		{"Esc", KeyEscape},
		{"ENTER", KeyEnter},
		{"return", KeyEnter},
		{"pgup", KeyPageUp},
		{"f10", KeyF10},
		{"bogus", KeyNone},
		{"", KeyNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromName(tt.name); got != tt.expected {
				t.Errorf("FromName(%q) = %v, want %v", tt.name, got, tt.expected)
			}
		})
	}
}
