package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/gratitude/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the interactive journal",
		Example: `
gratitude ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd)
		},
	}

	topLevel.AddCommand(cmd)
}

func runUI(cmd *cobra.Command) error {
	j, cfg, closer, err := openJournal(cmd.Context())
	if err != nil {
		return err
	}
	defer closer()
	i := ui.UI{Journal: j, LogFile: cfg.LogFile()}
	return i.Do(cmd.Context())
}
