package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/gratitude/pkg/calendar"
)

// WindowOptions limits a listing to recent days.
type WindowOptions struct {
	Window string
}

func AddWindowArgs(cmd *cobra.Command, o *WindowOptions) {
	cmd.Flags().StringVarP(&o.Window, "window", "w", "",
		`Only list days in this window ending today, example: --window=2w or --window=10d.`)
}

// MonthOptions selects a calendar month.
type MonthOptions struct {
	MonthString string
}

func AddMonthArgs(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().StringVarP(&o.MonthString, "month", "m", "",
		`Specify a month, example: --month=2024-3 or --month="March 2024". Defaults to this month.`)
}

func (o *MonthOptions) GetMonth(now time.Time) (time.Time, error) {
	if o.MonthString == "" {
		return calendar.FirstOfMonth(now), nil
	}
	m, ok := calendar.ParseMonth(o.MonthString)
	if !ok {
		return time.Time{}, fmt.Errorf("invalid month %q, expected YYYY-M or \"January 2006\"", o.MonthString)
	}
	return m, nil
}

// DirOptions picks an output directory.
type DirOptions struct {
	Dir string
}

func AddDirArgs(cmd *cobra.Command, o *DirOptions) {
	cmd.Flags().StringVarP(&o.Dir, "dir", "d", "",
		"Directory to write to. Defaults to the export.dir setting.")
}
