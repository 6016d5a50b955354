// Package info provides the runner that reports journal statistics and where
// the journal is stored.
package info

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/gratitude/pkg/app"
	"tableflip.dev/gratitude/pkg/printers"
	"tableflip.dev/gratitude/pkg/store"
)

type Info struct {
	Config  store.Config
	Journal *app.Journal
	JSON    bool
	Out     io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not report stats, no journal")
	}
	snap := n.Journal.Snapshot()

	pp := printers.PrettyPrint{Out: n.Out}
	if n.JSON {
		out := map[string]interface{}{
			"currentStreak": snap.Streak,
			"longestStreak": snap.Longest,
			"totalEntries":  snap.Total,
		}
		if n.Config != nil {
			out["path"] = n.Config.BasePath()
			out["driver"] = n.Config.Driver()
		}
		return pp.JSON(out)
	}

	pp.NewLine()
	pp.Stats(snap.Streak, snap.Longest, snap.Total)

	if n.Config != nil {
		w := n.Out
		if w == nil {
			w = color.Output
		}
		f := color.New(color.Faint)
		pp.NewLine()
		if override := os.Getenv("GRATITUDE_CONFIG_PATH"); override != "" {
			_, _ = f.Fprintf(w, "GRATITUDE_CONFIG_PATH: %s\n", override)
		}
		driver := n.Config.Driver()
		if driver == "" {
			driver = store.DriverDiskv
		}
		_, _ = f.Fprintf(w, "Stored in %s (%s)\n", n.Config.BasePath(), driver)
	}
	return nil
}
