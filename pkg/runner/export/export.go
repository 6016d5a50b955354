// Package export provides the runner that writes the journal to a JSON file.
package export

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/gratitude/pkg/app"
	"tableflip.dev/gratitude/pkg/printers"
)

type Export struct {
	Journal *app.Journal
	// Dir overrides the configured export directory.
	Dir  string
	JSON bool
	Out  io.Writer
}

func (n *Export) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not export, no journal")
	}
	path, err := n.Journal.Export(n.Dir)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out}
	if n.JSON {
		return pp.JSON(map[string]string{"path": path})
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	_, _ = fmt.Fprintln(out, "Journal exported successfully!")
	_, _ = color.New(color.Faint).Fprintln(out, path)
	return nil
}
