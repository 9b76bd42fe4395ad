package analytics

import (
	"math"
	"time"
)

// DefaultWindowDays is the assumed span of an unbounded window, used only
// where a concrete length is required for a denominator.
const DefaultWindowDays = 30

// Window is a [Start, End) interval over which metrics are computed.
// Nil bounds mean the window is unbounded (all time).
type Window struct {
	Start *time.Time
	End   *time.Time
}

// ResolveWindow builds a window from optional bounds. If either bound is
// missing the window is unbounded.
func ResolveWindow(start, end *time.Time) Window {
	if start == nil || end == nil {
		return Window{}
	}
	return Window{Start: start, End: end}
}

// Bounded reports whether both window bounds are present.
func (w Window) Bounded() bool {
	return w.Start != nil && w.End != nil
}

// Days returns the window length in days, never less than 1. Unbounded
// windows report DefaultWindowDays.
func (w Window) Days() int {
	if !w.Bounded() {
		return DefaultWindowDays
	}
	return DaysBetween(*w.Start, *w.End)
}

// DaysBetween returns max(1, ceil(span in days)). Clamping to 1 guarantees
// downstream denominators are never zero.
func DaysBetween(start, end time.Time) int {
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}

// Previous returns the contiguous, equal-length window immediately preceding
// this one: PreviousEnd == Start. Unbounded windows have no previous period.
func (w Window) Previous() Window {
	if !w.Bounded() {
		return Window{}
	}
	span := w.End.Sub(*w.Start)
	prevEnd := *w.Start
	prevStart := prevEnd.Add(-span)
	return Window{Start: &prevStart, End: &prevEnd}
}

// Contains reports whether t falls inside the half-open window. Absent bounds
// are unbounded on that side.
func (w Window) Contains(t time.Time) bool {
	if w.Start != nil && t.Before(*w.Start) {
		return false
	}
	if w.End != nil && !t.Before(*w.End) {
		return false
	}
	return true
}
