// Package config defines the TOML-backed configuration for the input
// pipeline: every recognizer threshold, the key-repeat timing, the mouse
// click/drag tuning, and the user shortcut table.
//
// Durations are expressed in the file as integer milliseconds. Loading
// starts from Default() and overlays only the keys present in the file;
// out-of-range values are dropped field by field, keeping the default, so
// a bad config never produces an unusable pipeline.
package config

import (
	"time"

	"github.com/dshills/aurora/internal/input/gesture"
	"github.com/dshills/aurora/internal/input/key"
	"github.com/dshills/aurora/internal/input/manager"
)

// Config is the root configuration document.
type Config struct {
	Tap       TapSection       `toml:"tap"`
	LongPress LongPressSection `toml:"long_press"`
	Swipe     SwipeSection     `toml:"swipe"`
	Pinch     PinchSection     `toml:"pinch"`
	Keyboard  KeyboardSection  `toml:"keyboard"`
	Mouse     MouseSection     `toml:"mouse"`
	Shortcuts []ShortcutEntry  `toml:"shortcuts"`
}

// TapSection tunes the tap recognizer.
type TapSection struct {
	// MaxDistance is the tap slop radius in pixels.
	MaxDistance float64 `toml:"max_distance"`

	// TimeoutMS is the press-to-release limit in milliseconds.
	TimeoutMS int `toml:"timeout_ms"`
}

// LongPressSection tunes the long-press recognizer.
type LongPressSection struct {
	// DurationMS is the hold threshold in milliseconds.
	DurationMS int `toml:"duration_ms"`

	// MaxDistance is the allowed drift in pixels.
	MaxDistance float64 `toml:"max_distance"`
}

// SwipeSection tunes the swipe recognizer.
type SwipeSection struct {
	// MinDistance is the minimum travel in pixels.
	MinDistance float64 `toml:"min_distance"`

	// MaxTimeMS is the press-to-release limit in milliseconds.
	MaxTimeMS int `toml:"max_time_ms"`
}

// PinchSection tunes the pinch recognizer.
type PinchSection struct {
	// MinDistance is the minimum initial finger spread in pixels.
	MinDistance float64 `toml:"min_distance"`

	// MinScaleDelta is the re-emission debounce threshold.
	MinScaleDelta float64 `toml:"min_scale_delta"`

	// WheelFactor converts one wheel tick into a scale change.
	WheelFactor float64 `toml:"wheel_factor"`

	// WheelTimeoutMS ends an emulated pinch after this much wheel silence,
	// in milliseconds.
	WheelTimeoutMS int `toml:"wheel_timeout_ms"`

	// ZoomModifier names the modifier that marks a touchpad scroll as a
	// pinch tick ("ctrl", "alt", "shift", "meta").
	ZoomModifier string `toml:"zoom_modifier"`
}

// KeyboardSection tunes key-repeat synthesis.
type KeyboardSection struct {
	// RepeatDelayMS is the hold time before the first repeat, in
	// milliseconds.
	RepeatDelayMS int `toml:"repeat_delay_ms"`

	// RepeatIntervalMS is the spacing of further repeats, in milliseconds.
	RepeatIntervalMS int `toml:"repeat_interval_ms"`
}

// MouseSection tunes click and drag tracking.
type MouseSection struct {
	// DoubleClickTimeMS is the multi-click window in milliseconds.
	DoubleClickTimeMS int `toml:"double_click_time_ms"`

	// DoubleClickDistance is the multi-click slop radius in pixels.
	DoubleClickDistance float64 `toml:"double_click_distance"`

	// DragThreshold is the drag activation distance in pixels.
	DragThreshold float64 `toml:"drag_threshold"`
}

// ShortcutEntry is one user-defined shortcut. Action holds a Lua chunk run
// by the script engine when the chord matches.
type ShortcutEntry struct {
	// Keys is the chord spec, e.g. "Ctrl+S" or "F11".
	Keys string `toml:"keys"`

	// Description is display metadata for keybinding UIs.
	Description string `toml:"description"`

	// Action is the Lua source to run on match.
	Action string `toml:"action"`
}

// Default returns the built-in configuration, matching the recognizer and
// manager defaults.
func Default() Config {
	return Config{
		Tap: TapSection{
			MaxDistance: 10,
			TimeoutMS:   300,
		},
		LongPress: LongPressSection{
			DurationMS:  600,
			MaxDistance: 10,
		},
		Swipe: SwipeSection{
			MinDistance: 50,
			MaxTimeMS:   500,
		},
		Pinch: PinchSection{
			MinDistance:    20,
			MinScaleDelta:  0.05,
			WheelFactor:    0.01,
			WheelTimeoutMS: 200,
			ZoomModifier:   "ctrl",
		},
		Keyboard: KeyboardSection{
			RepeatDelayMS:    500,
			RepeatIntervalMS: 50,
		},
		Mouse: MouseSection{
			DoubleClickTimeMS:   400,
			DoubleClickDistance: 5,
			DragThreshold:       4,
		},
	}
}

// sanitize drops out-of-range values field by field, restoring the value
// from prior.
func (c *Config) sanitize(prior Config) {
	if c.Tap.MaxDistance <= 0 {
		c.Tap.MaxDistance = prior.Tap.MaxDistance
	}
	if c.Tap.TimeoutMS <= 0 {
		c.Tap.TimeoutMS = prior.Tap.TimeoutMS
	}
	if c.LongPress.DurationMS <= 0 {
		c.LongPress.DurationMS = prior.LongPress.DurationMS
	}
	if c.LongPress.MaxDistance <= 0 {
		c.LongPress.MaxDistance = prior.LongPress.MaxDistance
	}
	if c.Swipe.MinDistance <= 0 {
		c.Swipe.MinDistance = prior.Swipe.MinDistance
	}
	if c.Swipe.MaxTimeMS <= 0 {
		c.Swipe.MaxTimeMS = prior.Swipe.MaxTimeMS
	}
	if c.Pinch.MinDistance <= 0 {
		c.Pinch.MinDistance = prior.Pinch.MinDistance
	}
	if c.Pinch.MinScaleDelta <= 0 {
		c.Pinch.MinScaleDelta = prior.Pinch.MinScaleDelta
	}
	if c.Pinch.WheelFactor <= 0 {
		c.Pinch.WheelFactor = prior.Pinch.WheelFactor
	}
	if c.Pinch.WheelTimeoutMS <= 0 {
		c.Pinch.WheelTimeoutMS = prior.Pinch.WheelTimeoutMS
	}
	if key.ModifierFromName(c.Pinch.ZoomModifier) == key.ModNone {
		c.Pinch.ZoomModifier = prior.Pinch.ZoomModifier
	}
	if c.Keyboard.RepeatDelayMS <= 0 {
		c.Keyboard.RepeatDelayMS = prior.Keyboard.RepeatDelayMS
	}
	if c.Keyboard.RepeatIntervalMS <= 0 {
		c.Keyboard.RepeatIntervalMS = prior.Keyboard.RepeatIntervalMS
	}
	if c.Mouse.DoubleClickTimeMS <= 0 {
		c.Mouse.DoubleClickTimeMS = prior.Mouse.DoubleClickTimeMS
	}
	if c.Mouse.DoubleClickDistance <= 0 {
		c.Mouse.DoubleClickDistance = prior.Mouse.DoubleClickDistance
	}
	if c.Mouse.DragThreshold <= 0 {
		c.Mouse.DragThreshold = prior.Mouse.DragThreshold
	}
}

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

// TapConfig converts the section for the tap recognizer.
func (s TapSection) TapConfig() gesture.TapConfig {
	return gesture.TapConfig{
		MaxDistance: s.MaxDistance,
		Timeout:     ms(s.TimeoutMS),
	}
}

// LongPressConfig converts the section for the long-press recognizer.
func (s LongPressSection) LongPressConfig() gesture.LongPressConfig {
	return gesture.LongPressConfig{
		Duration:    ms(s.DurationMS),
		MaxDistance: s.MaxDistance,
	}
}

// SwipeConfig converts the section for the swipe recognizer.
func (s SwipeSection) SwipeConfig() gesture.SwipeConfig {
	return gesture.SwipeConfig{
		MinDistance: s.MinDistance,
		MaxTime:     ms(s.MaxTimeMS),
	}
}

// PinchConfig converts the section for the pinch recognizer. An unknown
// zoom modifier name falls back to Ctrl.
func (s PinchSection) PinchConfig() gesture.PinchConfig {
	mod := key.ModifierFromName(s.ZoomModifier)
	if mod == key.ModNone {
		mod = key.ModCtrl
	}
	return gesture.PinchConfig{
		MinDistance:   s.MinDistance,
		MinScaleDelta: s.MinScaleDelta,
		WheelFactor:   s.WheelFactor,
		WheelTimeout:  ms(s.WheelTimeoutMS),
		ZoomModifier:  mod,
	}
}

// ManagerConfig converts the keyboard and mouse sections for the input
// manager.
func (c Config) ManagerConfig() manager.Config {
	return manager.Config{
		RepeatDelay:         ms(c.Keyboard.RepeatDelayMS),
		RepeatInterval:      ms(c.Keyboard.RepeatIntervalMS),
		DoubleClickTime:     ms(c.Mouse.DoubleClickTimeMS),
		DoubleClickDistance: c.Mouse.DoubleClickDistance,
		DragThreshold:       c.Mouse.DragThreshold,
	}
}
