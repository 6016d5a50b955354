package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/gratitude/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "start the Model Context Protocol server",
		Long: `Launch an MCP server on stdio that lets an assistant read and write
journal entries and check your streak.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			j, _, closer, err := openJournal(cmd.Context())
			if err != nil {
				return err
			}
			defer closer()

			runner := mcp.Runner{
				Journal: j,
				Name:    "gratitude",
				Version: version,
			}
			return runner.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
