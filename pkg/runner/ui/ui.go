// Package ui provides the runner that opens the interactive journal.
package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/gratitude/pkg/app"
	"tableflip.dev/gratitude/pkg/quote"
	teaui "tableflip.dev/gratitude/pkg/tui/app"
)

type UI struct {
	Journal *app.Journal
	// LogFile receives log output while the UI owns the terminal.
	LogFile string
}

func (d *UI) Do(ctx context.Context) error {
	if d.Journal == nil {
		return errors.New("can not open ui, no journal")
	}
	if d.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(d.LogFile), 0o755); err != nil {
			return fmt.Errorf("ui: log dir: %w", err)
		}
		f, err := tea.LogToFile(d.LogFile, "gratitude")
		if err != nil {
			return fmt.Errorf("ui: open log: %w", err)
		}
		defer f.Close()
	}

	total := d.Journal.Snapshot().Total
	unsubscribe := d.Journal.Subscribe(func(s app.Snapshot) {
		if s.Total != total {
			log.Printf("ui: %d entries, streak %d", s.Total, s.Streak)
			total = s.Total
		}
	})
	defer unsubscribe()

	return teaui.Run(d.Journal, quote.Quoted(quote.Pick(nil)))
}
