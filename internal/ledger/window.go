package ledger

import "time"

// Window is an inclusive calendar-date reporting range.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Placement classifies an entry's date relative to a window.
type Placement int

const (
	// PlacementOpening contributes to the carried-forward balance.
	PlacementOpening Placement = iota
	// PlacementPeriod is itemized inside the window.
	PlacementPeriod
	// PlacementExcluded lies past the window and is ignored entirely.
	PlacementExcluded
)

// Contains reports whether t falls inside [Start, End] by instant comparison.
// Used by the dashboard aggregator, which has no carry-forward tolerance.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Classify places t for the statement engine. Dates are compared against
// End plus one day so time-of-day noise in stored dates cannot push an
// end-of-window entry out of the period.
func (w Window) Classify(t time.Time) Placement {
	if t.After(w.End.AddDate(0, 0, 1)) {
		return PlacementExcluded
	}
	if t.Before(w.Start) {
		return PlacementOpening
	}
	return PlacementPeriod
}
