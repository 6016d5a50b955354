// Package strike provides the runner that removes the entry for a day.
package strike

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/gratitude/pkg/app"
	"tableflip.dev/gratitude/pkg/entry"
	"tableflip.dev/gratitude/pkg/printers"
)

// Strike removes the entry for On.
type Strike struct {
	Journal *app.Journal
	On      time.Time
	JSON    bool
	Out     io.Writer
}

func (n *Strike) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not remove, no journal")
	}
	on := n.On
	if on.IsZero() {
		on = n.Journal.Now()
	}
	title := entry.Entry{Date: on}.Title()

	_, existed := n.Journal.Entry(on)
	snap, err := n.Journal.Delete(ctx, on)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out}
	if n.JSON {
		return pp.JSON(map[string]interface{}{"removed": existed, "total": snap.Total})
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	if !existed {
		_, _ = fmt.Fprintf(out, "Nothing written for %s.\n", title)
		return nil
	}
	_, _ = color.New(color.Faint).Fprintf(out, "Removed the entry for %s.\n", title)
	return nil
}
