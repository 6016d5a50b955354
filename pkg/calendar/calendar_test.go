package calendar

import (
	"strings"
	"testing"
	"time"

	"tableflip.dev/gratitude/pkg/datekey"
	"tableflip.dev/gratitude/pkg/entry"
)

func TestBuildMarch2024(t *testing.T) {
	entries := entry.Collection{"2024-3-5": "family", "2024-3-6": "health", "2024-4-1": "other month"}
	month := time.Date(2024, 3, 17, 13, 0, 0, 0, time.Local)
	selected := time.Date(2024, 3, 6, 9, 30, 0, 0, time.Local)
	today := time.Date(2024, 3, 7, 22, 0, 0, 0, time.Local)

	g := Build(month, selected, today, func(d time.Time) bool {
		return entries.Has(datekey.Encode(d))
	})

	// March 1st 2024 is a Friday.
	blanks := 0
	for _, c := range g.Cells {
		if !c.Blank {
			break
		}
		blanks++
	}
	if blanks != 5 {
		t.Fatalf("leading blanks = %d, want 5", blanks)
	}
	if got := len(g.Cells) - blanks; got != 31 {
		t.Fatalf("day cells = %d, want 31", got)
	}

	var selectedDays, todayDays []int
	for _, c := range g.Cells {
		if c.Selected {
			selectedDays = append(selectedDays, c.Day)
		}
		if c.Today {
			todayDays = append(todayDays, c.Day)
		}
	}
	if len(selectedDays) != 1 || selectedDays[0] != 6 {
		t.Fatalf("selected = %v, want [6]", selectedDays)
	}
	if len(todayDays) != 1 || todayDays[0] != 7 {
		t.Fatalf("today = %v, want [7]", todayDays)
	}
	if marked := g.Marked(); len(marked) != 2 || marked[0] != 5 || marked[1] != 6 {
		t.Fatalf("Marked() = %v, want [5 6]", marked)
	}
	if g.Title() != "March 2024" {
		t.Fatalf("Title() = %q", g.Title())
	}
}

func TestBuildSelectionOutsideMonth(t *testing.T) {
	g := Build(time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local), time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local), time.Time{}, nil)
	for _, c := range g.Cells {
		if c.Selected || c.Today || c.HasEntry {
			t.Fatalf("unexpected mark on %+v", c)
		}
	}
	if DaysIn(g.Month) != 29 {
		t.Fatalf("DaysIn(Feb 2024) = %d", DaysIn(g.Month))
	}
}

func TestWeeks(t *testing.T) {
	// September 2024 starts on a Sunday and has 30 days: 5 rows.
	g := Build(time.Date(2024, 9, 1, 0, 0, 0, 0, time.Local), time.Time{}, time.Time{}, nil)
	weeks := g.Weeks()
	if len(weeks) != 5 {
		t.Fatalf("weeks = %d, want 5", len(weeks))
	}
	for i, w := range weeks {
		if len(w) != 7 {
			t.Fatalf("week %d has %d cells", i, len(w))
		}
	}
	if weeks[0][0].Day != 1 {
		t.Fatalf("first cell = %+v, want day 1", weeks[0][0])
	}
	last := weeks[4]
	if last[1].Day != 30 || !last[2].Blank || !last[6].Blank {
		t.Fatalf("last week = %+v", last)
	}
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		from time.Time
		n    int
		want string
	}{
		{time.Date(2024, 1, 31, 0, 0, 0, 0, time.Local), 1, "February 2024"},
		{time.Date(2024, 12, 15, 0, 0, 0, 0, time.Local), 1, "January 2025"},
		{time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local), -1, "December 2023"},
		{time.Date(2024, 3, 31, 0, 0, 0, 0, time.Local), -1, "February 2024"},
	}
	for _, tt := range tests {
		if got := AddMonths(tt.from, tt.n).Format("January 2006"); got != tt.want {
			t.Errorf("AddMonths(%v, %d) = %s, want %s", tt.from, tt.n, got, tt.want)
		}
	}
}

func TestParseMonth(t *testing.T) {
	for _, in := range []string{"2024-3", "2024-03", "March 2024", "Mar 2024"} {
		m, ok := ParseMonth(in)
		if !ok || m.Year() != 2024 || m.Month() != time.March {
			t.Errorf("ParseMonth(%q) = %v, %v", in, m, ok)
		}
	}
	if _, ok := ParseMonth("someday"); ok {
		t.Error("expected failure")
	}
}

func TestRender(t *testing.T) {
	g := Build(time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local), time.Time{}, time.Time{}, nil)
	out := Render(g, DefaultOptions())
	if !strings.Contains(out, "March 2024") {
		t.Fatalf("missing title:\n%s", out)
	}
	if !strings.Contains(out, weekdayHeader) {
		t.Fatalf("missing header:\n%s", out)
	}
	if !strings.Contains(out, "31") {
		t.Fatalf("missing last day:\n%s", out)
	}
	// Title, header, and six week rows.
	if lines := strings.Count(out, "\n") + 1; lines != 8 {
		t.Fatalf("lines = %d, want 8:\n%s", lines, out)
	}
}
