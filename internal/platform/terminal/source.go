package terminal

import (
	"time"

	"github.com/dshills/aurora/internal/input/event"

	"github.com/gdamore/tcell/v2"
)

// Source pumps a tcell screen into pipeline events. Timestamps are
// measured from the Source's creation, giving the pipeline its
// milliseconds-since-start clock.
type Source struct {
	screen tcell.Screen
	tr     Translator
	start  time.Time
}

// NewSource wraps an initialized screen.
func NewSource(screen tcell.Screen) *Source {
	return &Source{
		screen: screen,
		start:  time.Now(),
	}
}

// Now returns the current pipeline time.
func (s *Source) Now() time.Duration {
	return time.Since(s.start)
}

// Poll blocks for the next terminal event and translates it. It returns
// ok=false once the screen is finalized; an empty slice with ok=true means
// the terminal event carried no input (resize, paste markers).
func (s *Source) Poll() ([]*event.Event, bool) {
	ev := s.screen.PollEvent()
	if ev == nil {
		return nil, false
	}
	if _, resize := ev.(*tcell.EventResize); resize {
		s.screen.Sync()
		return nil, true
	}
	return s.tr.Translate(ev, s.Now()), true
}

// Interrupt wakes a blocked Poll, typically to let the caller run a
// process tick or shut down.
func (s *Source) Interrupt() {
	_ = s.screen.PostEvent(tcell.NewEventInterrupt(nil))
}
