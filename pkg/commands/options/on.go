package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/gratitude/pkg/datekey"
)

// OnOptions selects the day a command acts on.
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2024-2-28", --on="2/28" or --on=yesterday. Defaults to today.`)
}

// GetOn resolves the flag relative to now. An M/D date more than a day ahead
// is taken to mean last year.
func (o *OnOptions) GetOn(now time.Time) (time.Time, error) {
	return datekey.Parse(o.OnString, now)
}
