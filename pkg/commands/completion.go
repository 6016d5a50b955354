package commands

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/gratitude/pkg/datekey"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(gratitude completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(gratitude completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

// onCompletions offers the last week of date keys.
func onCompletions(now time.Time) []string {
	out := []string{"today", "yesterday"}
	for i := 0; i < 7; i++ {
		out = append(out, datekey.Encode(now.AddDate(0, 0, -i)))
	}
	return out
}

func registerOnCompletion(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("on", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return onCompletions(time.Now()), cobra.ShellCompDirectiveNoFileComp
	})
}
