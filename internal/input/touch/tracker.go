// Package touch tracks per-finger sample history for gesture recognizers.
//
// Each active contact keeps a bounded, append-only history of timed
// position samples. Recognizers use the history for duration, travel, and
// velocity estimation; the velocity estimate is a least-squares linear fit
// over the sample window, which smooths sensor jitter better than a
// two-point difference.
package touch

import (
	"sort"
	"time"

	"github.com/dshills/aurora/internal/input"
)

// HistoryCap is the maximum number of samples retained per contact.
// The oldest sample is evicted when the cap is reached.
const HistoryCap = 20

// Point is one timed sample of a contact. Points are superseded, never
// mutated: each update appends a new Point to the contact's history.
type Point struct {
	// ID identifies the finger this sample belongs to.
	ID input.TouchID

	// Pos is the sampled position.
	Pos input.Position

	// Timestamp is the sample time since pipeline start.
	Timestamp time.Duration

	// Pressure is the contact pressure in [0, 1], when reported.
	Pressure float64
}

// Velocity is an estimated contact velocity in pixels per second.
type Velocity struct {
	X float64
	Y float64
}

// Speed returns the velocity magnitude.
func (v Velocity) Speed() float64 {
	return input.Position{X: v.X, Y: v.Y}.Length()
}

// Tracker owns the bounded history of every active contact.
// It is single-owner state: one recognizer or manager drives it from the
// event loop thread.
type Tracker struct {
	histories map[input.TouchID][]Point
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		histories: make(map[input.TouchID][]Point),
	}
}

// Begin starts tracking a contact. Beginning an already-tracked id resets
// its history to the new sample.
func (t *Tracker) Begin(pt Point) {
	t.histories[pt.ID] = append(make([]Point, 0, HistoryCap), pt)
}

// Update appends a sample to an existing contact's history, evicting the
// oldest sample at the cap. Updates for unknown ids start a new history.
func (t *Tracker) Update(pt Point) {
	history, ok := t.histories[pt.ID]
	if !ok {
		t.Begin(pt)
		return
	}
	if len(history) >= HistoryCap {
		copy(history, history[1:])
		history = history[:len(history)-1]
	}
	t.histories[pt.ID] = append(history, pt)
}

// End stops tracking a contact and drops its history.
func (t *Tracker) End(id input.TouchID) {
	delete(t.histories, id)
}

// Latest returns the most recent sample for a contact.
func (t *Tracker) Latest(id input.TouchID) (Point, bool) {
	history := t.histories[id]
	if len(history) == 0 {
		return Point{}, false
	}
	return history[len(history)-1], true
}

// First returns the oldest retained sample for a contact.
func (t *Tracker) First(id input.TouchID) (Point, bool) {
	history := t.histories[id]
	if len(history) == 0 {
		return Point{}, false
	}
	return history[0], true
}

// History returns a copy of a contact's samples, oldest first.
func (t *Tracker) History(id input.TouchID) []Point {
	history := t.histories[id]
	if len(history) == 0 {
		return nil
	}
	out := make([]Point, len(history))
	copy(out, history)
	return out
}

// Count returns the number of active contacts.
func (t *Tracker) Count() int {
	return len(t.histories)
}

// ActiveIDs returns the active contact ids in ascending order.
func (t *Tracker) ActiveIDs() []input.TouchID {
	ids := make([]input.TouchID, 0, len(t.histories))
	for id := range t.histories {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Duration returns how long a contact has been tracked, based on its
// retained samples.
func (t *Tracker) Duration(id input.TouchID) time.Duration {
	history := t.histories[id]
	if len(history) < 2 {
		return 0
	}
	return history[len(history)-1].Timestamp - history[0].Timestamp
}

// PathLength returns the total distance traveled across the retained
// samples.
func (t *Tracker) PathLength(id input.TouchID) float64 {
	history := t.histories[id]
	total := 0.0
	for i := 1; i < len(history); i++ {
		total += history[i].Pos.Distance(history[i-1].Pos)
	}
	return total
}

// AveragePressure returns the mean pressure over the retained samples.
func (t *Tracker) AveragePressure(id input.TouchID) float64 {
	history := t.histories[id]
	if len(history) == 0 {
		return 0
	}
	sum := 0.0
	for _, pt := range history {
		sum += pt.Pressure
	}
	return sum / float64(len(history))
}

// EstimateVelocity fits a line through the contact's samples and returns
// its slope in pixels per second. At least two samples spanning a nonzero
// interval are required; otherwise the zero velocity is returned.
func (t *Tracker) EstimateVelocity(id input.TouchID) Velocity {
	history := t.histories[id]
	if len(history) < 2 {
		return Velocity{}
	}

	// Least-squares fit of x(t) and y(t) with t in seconds relative to the
	// first sample to keep the sums well conditioned.
	t0 := history[0].Timestamp
	var sumT, sumTT, sumX, sumY, sumTX, sumTY float64
	for _, pt := range history {
		dt := (pt.Timestamp - t0).Seconds()
		sumT += dt
		sumTT += dt * dt
		sumX += pt.Pos.X
		sumY += pt.Pos.Y
		sumTX += dt * pt.Pos.X
		sumTY += dt * pt.Pos.Y
	}

	n := float64(len(history))
	denom := n*sumTT - sumT*sumT
	if denom == 0 {
		return Velocity{}
	}

	return Velocity{
		X: (n*sumTX - sumT*sumX) / denom,
		Y: (n*sumTY - sumT*sumY) / denom,
	}
}

// Clear drops every contact.
func (t *Tracker) Clear() {
	t.histories = make(map[input.TouchID][]Point)
}
