package app

import (
	"time"

	"tableflip.dev/gratitude/pkg/datekey"
	"tableflip.dev/gratitude/pkg/entry"
	"tableflip.dev/gratitude/pkg/streak"
	"tableflip.dev/gratitude/pkg/timeutil"
)

// ReportResult lists the entries written within a window of days ending today.
type ReportResult struct {
	Window  string
	Since   time.Time
	Until   time.Time
	Entries []entry.Entry
	Missed  int
	Streak  int
}

// Report returns the entries in window (see timeutil.ParseWindow), oldest
// first, with the number of days in it that have no entry.
func (j *Journal) Report(window string) (ReportResult, error) {
	days, label, err := timeutil.ParseWindow(window)
	if err != nil {
		return ReportResult{}, err
	}
	today := datekey.Midnight(j.now())
	since := timeutil.Since(today, days)
	all := j.persistence.All()

	var in []entry.Entry
	for _, e := range all.Since(since) {
		if e.Date.After(today) {
			break
		}
		in = append(in, e)
	}
	return ReportResult{
		Window:  label,
		Since:   since,
		Until:   today,
		Entries: in,
		Missed:  days - len(in),
		Streak:  streak.Current(all, today),
	}, nil
}
