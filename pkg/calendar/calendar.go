// Package calendar builds the month grid shown by the journal.
package calendar

import (
	"time"

	"tableflip.dev/gratitude/pkg/datekey"
)

// Cell is one square of the month grid. Blank cells pad the first and last
// week.
type Cell struct {
	Date     time.Time
	Day      int
	Blank    bool
	Selected bool
	HasEntry bool
	Today    bool
}

// Grid is a month laid out Sunday first.
type Grid struct {
	Month time.Time
	Cells []Cell
}

// Build lays out the month containing month. Cells are marked selected,
// today, or having an entry by comparing calendar dates only.
func Build(month, selected, today time.Time, has func(time.Time) bool) Grid {
	first := FirstOfMonth(month)
	days := DaysIn(first)
	offset := int(first.Weekday())

	cells := make([]Cell, 0, offset+days)
	for i := 0; i < offset; i++ {
		cells = append(cells, Cell{Blank: true})
	}
	for d := 1; d <= days; d++ {
		date := time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, first.Location())
		cell := Cell{
			Date:     date,
			Day:      d,
			Selected: datekey.SameDate(date, selected),
			Today:    datekey.SameDate(date, today),
		}
		if has != nil {
			cell.HasEntry = has(date)
		}
		cells = append(cells, cell)
	}
	return Grid{Month: first, Cells: cells}
}

// Weeks splits the grid into rows of seven, padding the last row.
func (g Grid) Weeks() [][]Cell {
	var weeks [][]Cell
	for i := 0; i < len(g.Cells); i += 7 {
		end := i + 7
		week := make([]Cell, 0, 7)
		if end > len(g.Cells) {
			week = append(week, g.Cells[i:]...)
			for len(week) < 7 {
				week = append(week, Cell{Blank: true})
			}
		} else {
			week = append(week, g.Cells[i:end]...)
		}
		weeks = append(weeks, week)
	}
	return weeks
}

// Title is the month and year, e.g. "March 2024".
func (g Grid) Title() string {
	return g.Month.Format("January 2006")
}

// Marked returns the day numbers that have entries.
func (g Grid) Marked() []int {
	var days []int
	for _, c := range g.Cells {
		if !c.Blank && c.HasEntry {
			days = append(days, c.Day)
		}
	}
	return days
}

// FirstOfMonth returns midnight on the first day of t's month.
func FirstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// AddMonths moves the first of t's month by n months.
func AddMonths(t time.Time, n int) time.Time {
	return FirstOfMonth(t).AddDate(0, n, 0)
}

// DaysIn returns the number of days in a month.
func DaysIn(month time.Time) int {
	return FirstOfMonth(month).AddDate(0, 1, -1).Day()
}

// ParseMonth accepts "2024-3", "2024-03" or "March 2024".
func ParseMonth(name string) (time.Time, bool) {
	for _, layout := range []string{"2006-1", "January 2006", "Jan 2006"} {
		if t, err := time.ParseInLocation(layout, name, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
