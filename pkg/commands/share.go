package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/gratitude/pkg/commands/options"
	"tableflip.dev/gratitude/pkg/runner/export"
	"tableflip.dev/gratitude/pkg/runner/quote"
	"tableflip.dev/gratitude/pkg/runner/share"
)

func addShare(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "share",
		Short: "share the entry for a day",
		Long: `Share sends the entry to the command set as share.command, or copies it to
the clipboard when none is configured.`,
		Example: `
gratitude share
gratitude share --on yesterday
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			j, _, closer, err := openJournal(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			defer closer()
			when, err := on.GetOn(j.Now())
			if err != nil {
				return oo.HandleError(err)
			}
			s := share.Share{Journal: j, On: when, JSON: oo.JSON}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddOutputArg(cmd, oo)
	registerOnCompletion(cmd)

	topLevel.AddCommand(cmd)
}

func addExport(topLevel *cobra.Command) {
	do := &options.DirOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "write the journal to gratitude-journal.json",
		Example: `
gratitude export
gratitude export --dir ~/Backups
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			j, _, closer, err := openJournal(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			defer closer()
			e := export.Export{Journal: j, Dir: do.Dir, JSON: oo.JSON}
			return oo.HandleError(e.Do(cmd.Context()))
		},
	}

	options.AddDirArgs(cmd, do)
	options.AddOutputArg(cmd, oo)
	_ = cmd.MarkFlagDirname("dir")

	topLevel.AddCommand(cmd)
}

func addQuote(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "print a gratitude quote",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q := quote.Quote{JSON: oo.JSON}
			return oo.HandleError(q.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
