package events

import (
	"sort"
	"strings"

	"eventpulse/internal/domain/event"
)

// sortEvents orders the accumulated set by the requested key. String keys
// compare case-insensitively except dates; records missing the key sort
// last. sortDir "desc" reverses the whole comparator.
func sortEvents(list []event.Event, sortBy, sortDir string) {
	desc := strings.EqualFold(sortDir, "desc")
	sort.SliceStable(list, func(i, j int) bool {
		c := compareEvents(&list[i], &list[j], sortBy)
		if desc {
			return c > 0
		}
		return c < 0
	})
}

func compareEvents(a, b *event.Event, sortBy string) int {
	switch sortBy {
	case "name":
		return compareEmptyLast(a.Name, b.Name, true)
	case "venue":
		return compareEmptyLast(a.Venue, b.Venue, true)
	default:
		return compareEmptyLast(a.Date, b.Date, false)
	}
}

func compareEmptyLast(a, b string, foldCase bool) int {
	if a == "" || b == "" {
		switch {
		case a == b:
			return 0
		case a == "":
			return 1
		default:
			return -1
		}
	}
	if foldCase {
		a = strings.ToLower(a)
		b = strings.ToLower(b)
	}
	return strings.Compare(a, b)
}
