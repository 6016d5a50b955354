// Package get provides the runner that prints the entry for one day.
package get

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

type Get struct {
	Journal *app.Journal
	// On defaults to today.
	On   time.Time
	JSON bool
	Out  io.Writer
}

func (n *Get) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not get, no journal")
	}
	on := n.On
	if on.IsZero() {
		on = n.Journal.Now()
	}

	content, ok := n.Journal.Entry(on)
	e := entry.Entry{Key: datekey.Encode(on), Date: datekey.Midnight(on), Content: content}

	pp := printers.PrettyPrint{Out: n.Out}
	if n.JSON {
		if !ok {
			return pp.JSON(map[string]interface{}{"entry": nil})
		}
		return pp.JSON(map[string]interface{}{"entry": e})
	}
	pp.NewLine()
	pp.Entry(e)
	return nil
}
