package commands

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "gratitude",
		Short: base.Wrap80("A daily gratitude journal for the command line."),
		Long: base.Wrap80("Write one thing you are grateful for each day, keep your streak going, " +
			"and look back over a calendar of the days you wrote. Run with no arguments " +
			"in a terminal to open the journal."),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !stdoutIsTerminal() {
				return cmd.Help()
			}
			return runUI(cmd)
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addWrite(topLevel)
	addShow(topLevel)
	addRemove(topLevel)
	addList(topLevel)
	addCalendar(topLevel)
	addStats(topLevel)
	addShare(topLevel)
	addExport(topLevel)
	addQuote(topLevel)
	addMCP(topLevel)
	addCompletions(topLevel)
	addUpgrade(topLevel)
	addVersion(topLevel)
}

var stdoutIsTerminal = func() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
