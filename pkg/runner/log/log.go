// Package log provides the runner that lists entries oldest first.
package log

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/gratitude/pkg/app"
	"tableflip.dev/gratitude/pkg/entry"
	"tableflip.dev/gratitude/pkg/printers"
)

// Log lists every entry, or only those within Window when it is set.
type Log struct {
	Journal *app.Journal
	Window  string
	JSON    bool
	Out     io.Writer
}

func (n *Log) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not list, no journal")
	}

	pp := printers.PrettyPrint{Out: n.Out}

	if n.Window == "" {
		all := n.Journal.Entries()
		if n.JSON {
			return pp.JSON(map[string]interface{}{"count": len(all), "entries": nonNil(all)})
		}
		pp.NewLine()
		pp.TitleWithCount("Gratitude journal", len(all))
		pp.Entries(all)
		return nil
	}

	res, err := n.Journal.Report(n.Window)
	if err != nil {
		return err
	}
	if n.JSON {
		return pp.JSON(map[string]interface{}{
			"window":  res.Window,
			"since":   res.Since.Format("2006-01-02"),
			"count":   len(res.Entries),
			"missed":  res.Missed,
			"entries": nonNil(res.Entries),
		})
	}
	pp.NewLine()
	pp.TitleWithCount(fmt.Sprintf("Last %s", res.Window), len(res.Entries))
	pp.Entries(res.Entries)
	return nil
}

func nonNil(e []entry.Entry) []entry.Entry {
	if e == nil {
		return []entry.Entry{}
	}
	return e
}
