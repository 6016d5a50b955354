// Package share provides the runner that shares the entry for a day.
package share

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/gratitude/pkg/app"
	"tableflip.dev/gratitude/pkg/printers"
	sharing "tableflip.dev/gratitude/pkg/share"
)

type Share struct {
	Journal *app.Journal
	On      time.Time
	JSON    bool
	Out     io.Writer
}

func (n *Share) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not share, no journal")
	}
	on := n.On
	if on.IsZero() {
		on = n.Journal.Now()
	}

	res, err := n.Journal.Share(ctx, on)
	if errors.Is(err, sharing.ErrEmpty) {
		return errors.New("write something first to share your joy")
	}
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out}
	if n.JSON {
		return pp.JSON(map[string]interface{}{"method": res.Method.String(), "text": res.Text, "failed": res.Failed})
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	switch {
	case res.Failed:
		_, _ = fmt.Fprintln(out, "Share was not completed.")
	case res.Method == sharing.MethodClipboard:
		_, _ = fmt.Fprintln(out, "Copied to clipboard! Share it anywhere.")
	default:
		_, _ = fmt.Fprintln(out, "Shared.")
	}
	_, _ = color.New(color.Faint).Fprintln(out, res.Text)
	return nil
}
