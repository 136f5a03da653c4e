package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dshills/aurora/internal/input/key"
)

func TestDefaultRoundTripsToComponentConfigs(t *testing.T) {
	cfg := Default()

	tap := cfg.Tap.TapConfig()
	if tap.MaxDistance != 10 || tap.Timeout != 300*time.Millisecond {
		t.Errorf("tap = %+v", tap)
	}

	lp := cfg.LongPress.LongPressConfig()
	if lp.Duration != 600*time.Millisecond || lp.MaxDistance != 10 {
		t.Errorf("long press = %+v", lp)
	}

	sw := cfg.Swipe.SwipeConfig()
	if sw.MinDistance != 50 || sw.MaxTime != 500*time.Millisecond {
		t.Errorf("swipe = %+v", sw)
	}

	pn := cfg.Pinch.PinchConfig()
	if pn.MinDistance != 20 || pn.MinScaleDelta != 0.05 || pn.WheelFactor != 0.01 {
		t.Errorf("pinch = %+v", pn)
	}
	if pn.WheelTimeout != 200*time.Millisecond || pn.ZoomModifier != key.ModCtrl {
		t.Errorf("pinch wheel = %+v", pn)
	}

	mc := cfg.ManagerConfig()
	if mc.RepeatDelay != 500*time.Millisecond || mc.RepeatInterval != 50*time.Millisecond {
		t.Errorf("repeat = %+v", mc)
	}
	if mc.DoubleClickTime != 400*time.Millisecond || mc.DoubleClickDistance != 5 || mc.DragThreshold != 4 {
		t.Errorf("mouse = %+v", mc)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Shortcuts) != 0 {
		t.Fatalf("shortcuts = %+v, want none", cfg.Shortcuts)
	}
	if cfg.Tap != Default().Tap || cfg.Keyboard != Default().Keyboard {
		t.Errorf("missing file did not yield defaults: %+v", cfg)
	}
}

func TestLoadOverlaysPresentKeysOnly(t *testing.T) {
	doc := `
[tap]
max_distance = 16.0

[keyboard]
repeat_delay_ms = 250

[[shortcuts]]
keys = "Ctrl+Q"
description = "quit"
action = "quit()"
`
	cfg, err := LoadFromReader(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}

	if cfg.Tap.MaxDistance != 16 {
		t.Errorf("tap.max_distance = %v, want 16", cfg.Tap.MaxDistance)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Tap.TimeoutMS != 300 {
		t.Errorf("tap.timeout_ms = %v, want default 300", cfg.Tap.TimeoutMS)
	}
	if cfg.Keyboard.RepeatDelayMS != 250 || cfg.Keyboard.RepeatIntervalMS != 50 {
		t.Errorf("keyboard = %+v", cfg.Keyboard)
	}

	if len(cfg.Shortcuts) != 1 {
		t.Fatalf("shortcuts = %+v", cfg.Shortcuts)
	}
	sc := cfg.Shortcuts[0]
	if sc.Keys != "Ctrl+Q" || sc.Description != "quit" || sc.Action != "quit()" {
		t.Errorf("shortcut = %+v", sc)
	}
}

func TestLoadRejectsOutOfRangeValues(t *testing.T) {
	doc := `
[tap]
max_distance = -3.0
timeout_ms = 0

[pinch]
wheel_factor = -0.5
zoom_modifier = "bogus"

[mouse]
drag_threshold = -1.0
`
	cfg, err := LoadFromReader(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}

	def := Default()
	if cfg.Tap != def.Tap {
		t.Errorf("tap = %+v, want defaults kept", cfg.Tap)
	}
	if cfg.Pinch.WheelFactor != def.Pinch.WheelFactor {
		t.Errorf("wheel_factor = %v, want default", cfg.Pinch.WheelFactor)
	}
	if cfg.Pinch.ZoomModifier != "ctrl" {
		t.Errorf("zoom_modifier = %q, want default ctrl", cfg.Pinch.ZoomModifier)
	}
	if cfg.Mouse.DragThreshold != def.Mouse.DragThreshold {
		t.Errorf("drag_threshold = %v, want default", cfg.Mouse.DragThreshold)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aurora.toml")
	if err := os.WriteFile(path, []byte("[tap\nmax_distance ="), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("malformed file loaded without error")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Errorf("error type = %T, want *ParseError", err)
	}
	if perr != nil && perr.Path != path {
		t.Errorf("ParseError.Path = %q, want %q", perr.Path, path)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aurora.toml")
	doc := "[swipe]\nmin_distance = 75.0\nmax_time_ms = 350\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	sw := cfg.Swipe.SwipeConfig()
	if sw.MinDistance != 75 || sw.MaxTime != 350*time.Millisecond {
		t.Errorf("swipe = %+v", sw)
	}
}

func TestPinchZoomModifierNames(t *testing.T) {
	tests := []struct {
		name string
		want key.Modifier
	}{
		{"ctrl", key.ModCtrl},
		{"alt", key.ModAlt},
		{"shift", key.ModShift},
		{"meta", key.ModMeta},
		{"cmd", key.ModMeta},
		{"", key.ModCtrl},
	}
	for _, tt := range tests {
		s := PinchSection{ZoomModifier: tt.name}
		if got := s.PinchConfig().ZoomModifier; got != tt.want {
			t.Errorf("ZoomModifier(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
