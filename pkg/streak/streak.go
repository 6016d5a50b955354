// Package streak derives consecutive-day statistics from a journal.
package streak

import (
	"time"

	"tableflip.dev/gratitude/pkg/datekey"
	"tableflip.dev/gratitude/pkg/entry"
)

// Lookup reports whether an entry exists for a date key.
type Lookup interface {
	Has(key string) bool
}

// Current counts the consecutive days with an entry that end today, or end
// yesterday when today has not been written yet. Dates after today are never
// examined.
func Current(entries Lookup, today time.Time) int {
	if entries == nil {
		return 0
	}
	cursor := datekey.Midnight(today)
	if !entries.Has(datekey.Encode(cursor)) {
		cursor = cursor.AddDate(0, 0, -1)
	}

	streak := 0
	for entries.Has(datekey.Encode(cursor)) {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}

// Longest is the longest run of consecutive dated entries anywhere in the
// collection.
func Longest(entries entry.Collection) int {
	best, run := 0, 0
	var prev time.Time
	for _, e := range entries.Entries() {
		if e.Date.IsZero() {
			break
		}
		if !prev.IsZero() && datekey.SameDate(prev.AddDate(0, 0, 1), e.Date) {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
		prev = e.Date
	}
	return best
}
