// Package terminal adapts tcell terminal input to pipeline events.
//
// Terminals never report key releases and run their own autorepeat, so
// every tcell key event becomes a KeyPress immediately followed by a
// KeyRelease; the manager's repeat synthesis therefore never double-fires
// on top of the terminal's. Mouse reporting is a current-button bitmask,
// so the translator keeps the previous mask and derives press, release,
// move, and scroll events from the difference.
package terminal

import (
	"time"

	"github.com/dshills/aurora/internal/input"
	"github.com/dshills/aurora/internal/input/event"
	"github.com/dshills/aurora/internal/input/key"

	"github.com/gdamore/tcell/v2"
)

// Translator converts tcell events into pipeline events. It is stateful:
// the previous mouse button mask and pointer position are needed to turn
// tcell's absolute reports into press/release/move deltas.
type Translator struct {
	prevButtons tcell.ButtonMask
	prevPos     input.Position
	havePos     bool
}

// Translate converts one tcell event into zero or more pipeline events,
// stamped with the supplied pipeline time. Resize, paste, and other
// non-input events yield nothing.
func (t *Translator) Translate(ev tcell.Event, now time.Duration) []*event.Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return t.translateKey(e, now)
	case *tcell.EventMouse:
		return t.translateMouse(e, now)
	}
	return nil
}

// Reset clears the tracked mouse state.
func (t *Translator) Reset() {
	t.prevButtons = 0
	t.prevPos = input.Position{}
	t.havePos = false
}

func (t *Translator) translateKey(e *tcell.EventKey, now time.Duration) []*event.Event {
	k, r, mods := convertKey(e)
	if k == key.KeyNone {
		return nil
	}

	press := event.KeyPress{
		Timestamp: now,
		Code:      uint32(e.Key()),
		Key:       k,
		Rune:      r,
		Modifiers: mods,
	}
	release := event.KeyRelease{
		Timestamp: now,
		Code:      uint32(e.Key()),
		Key:       k,
		Rune:      r,
		Modifiers: mods,
	}
	return []*event.Event{
		event.New(press).WithSource(input.DeviceKeyboard),
		event.New(release).WithSource(input.DeviceKeyboard),
	}
}

func (t *Translator) translateMouse(e *tcell.EventMouse, now time.Duration) []*event.Event {
	x, y := e.Position()
	pos := input.Position{X: float64(x), Y: float64(y)}
	mods := convertMod(e.Modifiers())
	mask := e.Buttons()

	var out []*event.Event

	if delta, ok := wheelDelta(mask); ok {
		out = append(out, event.New(event.MouseScroll{
			Timestamp: now,
			Pos:       pos,
			Delta:     delta,
			Modifiers: mods,
		}).WithSource(input.DeviceMouse))
	}

	pressed := mask &^ t.prevButtons
	released := t.prevButtons &^ mask
	for _, b := range buttonOrder {
		if pressed&b.mask != 0 {
			out = append(out, event.New(event.MousePress{
				Timestamp: now,
				Button:    b.button,
				Pos:       pos,
				Modifiers: mods,
			}).WithSource(input.DeviceMouse))
		}
		if released&b.mask != 0 {
			out = append(out, event.New(event.MouseRelease{
				Timestamp: now,
				Button:    b.button,
				Pos:       pos,
				Modifiers: mods,
			}).WithSource(input.DeviceMouse))
		}
	}

	// A report with no button transitions and no wheel bits is motion.
	if len(out) == 0 && (!t.havePos || pos != t.prevPos) {
		var delta input.Position
		if t.havePos {
			delta = pos.Delta(t.prevPos)
		}
		out = append(out, event.New(event.MouseMove{
			Timestamp: now,
			Pos:       pos,
			Delta:     delta,
			Modifiers: mods,
		}).WithSource(input.DeviceMouse))
	}

	t.prevButtons = mask &^ wheelMask
	t.prevPos = pos
	t.havePos = true
	return out
}

var buttonOrder = []struct {
	mask   tcell.ButtonMask
	button event.Button
}{
	{tcell.ButtonPrimary, event.ButtonLeft},
	{tcell.ButtonMiddle, event.ButtonMiddle},
	{tcell.ButtonSecondary, event.ButtonRight},
}

const wheelMask = tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight

// wheelDelta maps wheel bits to a scroll delta. Up is negative Y, per the
// usual scroll convention.
func wheelDelta(mask tcell.ButtonMask) (input.Position, bool) {
	var d input.Position
	if mask&tcell.WheelUp != 0 {
		d.Y--
	}
	if mask&tcell.WheelDown != 0 {
		d.Y++
	}
	if mask&tcell.WheelLeft != 0 {
		d.X--
	}
	if mask&tcell.WheelRight != 0 {
		d.X++
	}
	return d, d != input.Position{}
}

// convertKey maps a tcell key event to the pipeline key model. Ctrl+letter
// arrives from tcell as a dedicated key code and is unfolded back into the
// letter rune with the Ctrl modifier set.
func convertKey(e *tcell.EventKey) (key.Key, rune, key.Modifier) {
	mods := convertMod(e.Modifiers())
	k := e.Key()

	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		r := 'a' + rune(k-tcell.KeyCtrlA)
		return key.KeyRune, r, mods.With(key.ModCtrl)
	}

	switch k {
	case tcell.KeyRune:
		return key.KeyRune, e.Rune(), mods
	case tcell.KeyEscape:
		return key.KeyEscape, 0, mods
	case tcell.KeyEnter:
		return key.KeyEnter, 0, mods
	case tcell.KeyTab:
		return key.KeyTab, 0, mods
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.KeyBackspace, 0, mods
	case tcell.KeyDelete:
		return key.KeyDelete, 0, mods
	case tcell.KeyInsert:
		return key.KeyInsert, 0, mods
	case tcell.KeyHome:
		return key.KeyHome, 0, mods
	case tcell.KeyEnd:
		return key.KeyEnd, 0, mods
	case tcell.KeyPgUp:
		return key.KeyPageUp, 0, mods
	case tcell.KeyPgDn:
		return key.KeyPageDown, 0, mods
	case tcell.KeyUp:
		return key.KeyUp, 0, mods
	case tcell.KeyDown:
		return key.KeyDown, 0, mods
	case tcell.KeyLeft:
		return key.KeyLeft, 0, mods
	case tcell.KeyRight:
		return key.KeyRight, 0, mods
	case tcell.KeyF1:
		return key.KeyF1, 0, mods
	case tcell.KeyF2:
		return key.KeyF2, 0, mods
	case tcell.KeyF3:
		return key.KeyF3, 0, mods
	case tcell.KeyF4:
		return key.KeyF4, 0, mods
	case tcell.KeyF5:
		return key.KeyF5, 0, mods
	case tcell.KeyF6:
		return key.KeyF6, 0, mods
	case tcell.KeyF7:
		return key.KeyF7, 0, mods
	case tcell.KeyF8:
		return key.KeyF8, 0, mods
	case tcell.KeyF9:
		return key.KeyF9, 0, mods
	case tcell.KeyF10:
		return key.KeyF10, 0, mods
	case tcell.KeyF11:
		return key.KeyF11, 0, mods
	case tcell.KeyF12:
		return key.KeyF12, 0, mods
	}
	return key.KeyNone, 0, mods
}

// convertMod maps the tcell modifier mask to the pipeline bitmask.
func convertMod(m tcell.ModMask) key.Modifier {
	var out key.Modifier
	if m&tcell.ModShift != 0 {
		out = out.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		out = out.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		out = out.With(key.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		out = out.With(key.ModMeta)
	}
	return out
}
