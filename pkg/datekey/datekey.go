// Package datekey encodes calendar dates as the string keys used to index
// journal entries.
//
// Keys use an unpadded year-month-day layout ("2024-3-7"). The layout is kept
// for compatibility with existing journals and exports, but it means key
// strings do not sort chronologically; use Less or Sort instead of comparing
// strings.
package datekey

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ErrInvalid is returned when a key or user supplied date cannot be parsed.
var ErrInvalid = errors.New("datekey: invalid date")

// Encode returns the canonical key for the wall-clock date of t.
func Encode(t time.Time) string {
	return fmt.Sprintf("%d-%d-%d", t.Year(), int(t.Month()), t.Day())
}

// Decode parses a key produced by Encode and returns local midnight of that
// date. Zero-padded keys ("2024-03-07") are accepted too.
func Decode(key string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(key), "-")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalid, key)
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalid, key)
		}
		nums[i] = n
	}
	year, month, day := nums[0], nums[1], nums[2]
	if month < 1 || month > 12 || day < 1 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalid, key)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	// time.Date normalizes overflow, 2024-2-30 becomes 2024-3-1.
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalid, key)
	}
	return t, nil
}

// SameDate reports whether a and b fall on the same calendar day. Time of day
// and location are ignored.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Midnight truncates t to the start of its day in t's location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Less orders keys chronologically. Keys that do not decode sort after every
// valid key, and among themselves by string.
func Less(a, b string) bool {
	ta, errA := Decode(a)
	tb, errB := Decode(b)
	switch {
	case errA != nil && errB != nil:
		return a < b
	case errA != nil:
		return false
	case errB != nil:
		return true
	default:
		return ta.Before(tb)
	}
}

// Sort orders keys chronologically in place.
func Sort(keys []string) {
	sort.SliceStable(keys, func(i, j int) bool {
		return Less(keys[i], keys[j])
	})
}

// Parse interprets a date typed by a user. It understands "today",
// "yesterday", keys such as "2024-3-7" or "2024-03-07", and "3/7" for a day in
// the current year. A short date that lands more than a day after now is taken
// to mean last year.
func Parse(input string, now time.Time) (time.Time, error) {
	in := strings.ToLower(strings.TrimSpace(input))
	today := Midnight(now)
	switch in {
	case "", "today":
		return today, nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	}
	if strings.Contains(in, "-") {
		t, err := Decode(in)
		if err != nil {
			return time.Time{}, err
		}
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, now.Location()), nil
	}
	t, err := time.Parse("1/2", in)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalid, input)
	}
	month, day := t.Month(), t.Day()
	year := now.Year()
	t = time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	if t.After(today.AddDate(0, 0, 1)) {
		year--
		t = time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	}
	// time.Date normalizes 2/29 in a common year to 3/1.
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalid, input)
	}
	return t, nil
}
