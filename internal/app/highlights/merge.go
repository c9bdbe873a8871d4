package highlights

import (
	"cmp"
	"slices"

	domainhighlights "github.com/preston-bernstein/nba-highlights-service/internal/domain/highlights"
)

// Merge concatenates the lists in order, keeps the first copy of each event
// id and returns the result sorted ascending by event id.
func Merge(lists ...[]domainhighlights.Event) []domainhighlights.Event {
	total := 0
	for _, l := range lists {
		total += len(l)
	}

	out := make([]domainhighlights.Event, 0, total)
	seen := make(map[int]struct{}, total)
	for _, l := range lists {
		for _, ev := range l {
			if _, dup := seen[ev.EventID]; dup {
				continue
			}
			seen[ev.EventID] = struct{}{}
			out = append(out, ev)
		}
	}

	slices.SortFunc(out, func(a, b domainhighlights.Event) int {
		return cmp.Compare(a.EventID, b.EventID)
	})
	return out
}

// FilterClutch keeps the events whose id is in the clutch set.
func FilterClutch(events []domainhighlights.Event, contains func(eventID int) bool) []domainhighlights.Event {
	var out []domainhighlights.Event
	for _, ev := range events {
		if contains(ev.EventID) {
			out = append(out, ev)
		}
	}
	return out
}
