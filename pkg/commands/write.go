package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/gratitude/pkg/commands/options"
	"tableflip.dev/gratitude/pkg/runner/add"
	"tableflip.dev/gratitude/pkg/runner/strike"
)

func addWrite(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "write [text]",
		Aliases: []string{"add"},
		Short:   "write what you are grateful for",
		Long:    "Write the entry for a day, replacing what was there. Writing nothing removes the entry.",
		Example: `
gratitude write a long call with my sister
gratitude write --on yesterday the first warm day of spring
gratitude write --on 3/7 fresh bread
`,
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
			a := add.Add{
				Journal: j,
				On:      when,
				Message: strings.Join(args, " "),
				JSON:    oo.JSON,
			}
			return oo.HandleError(a.Do(cmd.Context()))
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddOutputArg(cmd, oo)
	registerOnCompletion(cmd)

	topLevel.AddCommand(cmd)
}

func addRemove(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "remove",
		Aliases: []string{"rm", "strike"},
		Short:   "remove the entry for a day",
		Example: `
gratitude remove --on 2024-3-7
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
			s := strike.Strike{Journal: j, On: when, JSON: oo.JSON}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddOutputArg(cmd, oo)
	registerOnCompletion(cmd)

	topLevel.AddCommand(cmd)
}
