package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/gratitude/pkg/commands/options"
	"tableflip.dev/gratitude/pkg/runner/get"
	"tableflip.dev/gratitude/pkg/runner/info"
	"tableflip.dev/gratitude/pkg/runner/log"
	"tableflip.dev/gratitude/pkg/runner/track"
)

func addShow(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "show",
		Aliases: []string{"get"},
		Short:   "show the entry for a day",
		Example: `
gratitude show
gratitude show --on yesterday --json
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
			g := get.Get{Journal: j, On: when, JSON: oo.JSON}
			return oo.HandleError(g.Do(cmd.Context()))
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddOutputArg(cmd, oo)
	registerOnCompletion(cmd)

	topLevel.AddCommand(cmd)
}

func addList(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"log", "ls"},
		Short:   "list entries, oldest first",
		Example: `
gratitude list
gratitude list --window 2w
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			j, _, closer, err := openJournal(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			defer closer()
			l := log.Log{Journal: j, Window: wo.Window, JSON: oo.JSON}
			return oo.HandleError(l.Do(cmd.Context()))
		},
	}

	options.AddWindowArgs(cmd, wo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addCalendar(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "show a month with the days you wrote",
		Example: `
gratitude calendar
gratitude calendar --month 2024-2
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			j, _, closer, err := openJournal(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			defer closer()
			month, err := mo.GetMonth(j.Now())
			if err != nil {
				return oo.HandleError(err)
			}
			tr := track.Track{Journal: j, Month: month, JSON: oo.JSON}
			return oo.HandleError(tr.Do(cmd.Context()))
		},
	}

	options.AddMonthArgs(cmd, mo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addStats(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "stats",
		Aliases: []string{"info", "streak"},
		Short:   "show your streak and where the journal is stored",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			j, cfg, closer, err := openJournal(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			defer closer()
			i := info.Info{Config: cfg, Journal: j, JSON: oo.JSON}
			return oo.HandleError(i.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
