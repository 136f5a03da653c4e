package manager

import (
	"time"

	"github.com/dshills/aurora/internal/input/event"
	"github.com/dshills/aurora/internal/input/key"
)

// keyID identifies one physical key for repeat and pressed-set purposes.
// Rune is only meaningful for KeyRune.
type keyID struct {
	Key  key.Key
	Rune rune
}

// repeatTimer holds the pending repeat deadline for one held key.
type repeatTimer struct {
	id   keyID
	code uint32
	mods key.Modifier
	next time.Duration
}

// repeatTable synthesizes repeat key presses for held keys. It is
// polling-driven: deadlines are stored timestamps compared against the now
// supplied to each tick, there is no timer goroutine. Timers are kept in
// arm order so synthesis is deterministic.
type repeatTable struct {
	delay    time.Duration
	interval time.Duration
	timers   []*repeatTimer
}

func newRepeatTable(delay, interval time.Duration) *repeatTable {
	return &repeatTable{delay: delay, interval: interval}
}

// arm starts (or restarts) the repeat timer for a key at its press time.
func (t *repeatTable) arm(id keyID, code uint32, mods key.Modifier, ts time.Duration) {
	for _, timer := range t.timers {
		if timer.id == id {
			timer.code = code
			timer.mods = mods
			timer.next = ts + t.delay
			return
		}
	}
	t.timers = append(t.timers, &repeatTimer{
		id:   id,
		code: code,
		mods: mods,
		next: ts + t.delay,
	})
}

// disarm removes the repeat timer for a released key. Unknown keys are a
// no-op.
func (t *repeatTable) disarm(id keyID) {
	for i, timer := range t.timers {
		if timer.id == id {
			t.timers = append(t.timers[:i], t.timers[i+1:]...)
			return
		}
	}
}

// tick synthesizes at most one repeat press per elapsed key and advances
// each fired timer by the (shorter) interval.
func (t *repeatTable) tick(now time.Duration) []event.KeyPress {
	var out []event.KeyPress
	for _, timer := range t.timers {
		if now < timer.next {
			continue
		}
		out = append(out, event.KeyPress{
			Timestamp: now,
			Code:      timer.code,
			Key:       timer.id.Key,
			Rune:      timer.id.Rune,
			Modifiers: timer.mods,
			Repeat:    true,
		})
		timer.next = now + t.interval
	}
	return out
}

// clear drops all timers.
func (t *repeatTable) clear() {
	t.timers = nil
}
