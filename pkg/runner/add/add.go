// Package add provides the runner that writes an entry for a day.
package add

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/gratitude/pkg/app"
	"tableflip.dev/gratitude/pkg/datekey"
	"tableflip.dev/gratitude/pkg/entry"
	"tableflip.dev/gratitude/pkg/printers"
)

// Add saves Message as the entry for On. An empty message removes the entry.
type Add struct {
	Journal *app.Journal
	On      time.Time
	Message string
	JSON    bool
	Out     io.Writer
}

func (n *Add) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not write, no journal")
	}
	on := n.On
	if on.IsZero() {
		on = n.Journal.Now()
	}
	snap, err := n.Journal.Save(ctx, on, n.Message)
	if err != nil {
		return err
	}

	content, _ := n.Journal.Entry(on)
	e := entry.Entry{Key: datekey.Encode(on), Date: datekey.Midnight(on), Content: content}

	pp := printers.PrettyPrint{Out: n.Out}
	if n.JSON {
		return pp.JSON(struct {
			Entry  entry.Entry `json:"entry"`
			Streak int         `json:"streak"`
			Total  int         `json:"total"`
		}{e, snap.Streak, snap.Total})
	}
	pp.NewLine()
	pp.Entry(e)
	pp.Stats(snap.Streak, snap.Longest, snap.Total)
	return nil
}
