package filtering

import (
	"time"

	"github.com/PFTrackr/fin_tracker_app/internal/core/domain"
)

// DateWindow is a concrete [Start, End) interval resolved from a billing
// cycle selection.
type DateWindow struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (w DateWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// ResolveCycleWindow turns a selected billing cycle into a concrete date
// window. A nil cycle or the "all" sentinel resolves to nil, meaning
// unbounded. An open cycle (no end date) extends to now.
func ResolveCycleWindow(cycle *domain.BillingCycle, now time.Time) *DateWindow {
	if cycle == nil || cycle.CycleID == domain.CycleAll {
		return nil
	}
	end := now
	if cycle.EndDate != nil {
		end = *cycle.EndDate
	}
	return &DateWindow{Start: cycle.StartDate, End: end}
}
