// Package track provides the runner that prints a month with its entry days
// marked.
package track

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/gratitude/pkg/app"
	"tableflip.dev/gratitude/pkg/printers"
)

// Track prints the calendar for Month, defaulting to the current month.
type Track struct {
	Journal *app.Journal
	Month   time.Time
	JSON    bool
	Out     io.Writer
}

func (n *Track) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not show calendar, no journal")
	}
	month := n.Month
	if month.IsZero() {
		month = n.Journal.Now()
	}

	snap := n.Journal.Select(month)

	pp := printers.PrettyPrint{Out: n.Out}
	if n.JSON {
		return pp.JSON(map[string]interface{}{
			"month":  snap.Grid.Title(),
			"days":   nonNil(snap.Grid.Marked()),
			"streak": snap.Streak,
		})
	}
	pp.NewLine()
	pp.Calendar(snap.Grid)
	pp.Stats(snap.Streak, snap.Longest, snap.Total)
	return nil
}

func nonNil(d []int) []int {
	if d == nil {
		return []int{}
	}
	return d
}
