// Package input provides the shared value types for the aurora input core:
// node identities, screen positions, touch identifiers, and movement
// directions.
//
// The input core converts raw device events into routed, stateful input
// events and recognized gestures. Subpackages:
//
//   - event: the event envelope and closed payload variant set
//   - key: key codes, modifiers, and chord parsing
//   - touch: per-finger bounded sample history and velocity estimation
//   - gesture: gesture recognizers (tap, long-press, swipe, pinch)
//   - manager: event queue, device state, focus, shortcuts, and dispatch
//
// The core is single-threaded and polling-driven: the host pushes raw
// events as they arrive and ticks the manager once per frame with a
// monotonic "now". No component spawns timers or goroutines.
package input
