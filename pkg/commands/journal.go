package commands

import (
	"context"

	"tableflip.dev/gratitude/pkg/app"
	"tableflip.dev/gratitude/pkg/share"
	"tableflip.dev/gratitude/pkg/store"
)

// openJournal loads the configuration and the stored journal. The returned
// func releases the store.
func openJournal(ctx context.Context) (*app.Journal, store.Config, func(), error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	p, err := store.Open(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	j, err := app.NewJournal(p, app.Options{
		Share:     share.NewService(cfg.ShareCommand()),
		ExportDir: cfg.ExportDir(),
	})
	if err != nil {
		_ = p.Close()
		return nil, nil, nil, err
	}
	return j, cfg, func() { _ = p.Close() }, nil
}
