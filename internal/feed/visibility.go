package feed

import (
	"time"

	"github.com/flourishtalents/backend/internal/models"
)

// GraceWindow is how long past its nominal end an event stays in the
// public join tab before it ages out of the feed.
const GraceWindow = time.Hour

// EndOfInterest computes the instant after which an event stops being
// interesting to the public feed. Timed events end their window at the
// scheduled instant; all-day events at 23:59:59.999 of their date.
func EndOfInterest(e models.Event) (time.Time, error) {
	start, err := e.StartsAt()
	if err != nil {
		return time.Time{}, err
	}
	if e.IsAllDay() {
		return start.Add(24*time.Hour - time.Millisecond), nil
	}
	return start, nil
}

// VisibleInJoinTab decides whether an event belongs in the public join
// tab at the given instant. Stored flags always win: an unpublished or
// hidden event is never listed regardless of date. Past the flags, the
// event stays visible until EndOfInterest plus GraceWindow. The decision
// is presentation-only; no stored flag is ever mutated by aging out.
//
// Events with a malformed date or time are treated as not visible.
func VisibleInJoinTab(e models.Event, now time.Time) bool {
	if !e.IsPubliclyListed() {
		return false
	}

	end, err := EndOfInterest(e)
	if err != nil {
		return false
	}
	return !now.After(end.Add(GraceWindow))
}

// FilterJoinTab applies VisibleInJoinTab to a listing, preserving the
// relative order of the events that pass.
func FilterJoinTab(events []models.Event, now time.Time) []models.Event {
	visible := make([]models.Event, 0, len(events))
	for _, e := range events {
		if VisibleInJoinTab(e, now) {
			visible = append(visible, e)
		}
	}
	return visible
}
