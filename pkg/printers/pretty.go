// Package printers renders journal data for the command line.
package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/gratitude/pkg/entry"
)

const wrapWidth = 76

type PrettyPrint struct {
	// Out defaults to color.Output.
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " entry")
	default:
		_, _ = c.Fprintln(pp.out(), " entries")
	}
}

// Entry prints one day: its long date and the wrapped, indented content.
func (pp *PrettyPrint) Entry(e entry.Entry) {
	pp.Title(e.Title())
	if strings.TrimSpace(e.Content) == "" {
		pp.None()
		return
	}
	body := indent.String(wordwrap.String(e.Content, wrapWidth-2), 2)
	_, _ = fmt.Fprintln(pp.out(), body)
	pp.NewLine()
}

// None prints the placeholder for a day or list without entries.
func (pp *PrettyPrint) None() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprint(pp.out(), "  nothing written\n\n")
}

// Entries prints a date/content table, oldest first as given.
func (pp *PrettyPrint) Entries(entries []entry.Entry) {
	if len(entries) == 0 {
		pp.None()
		return
	}
	y := color.New(color.FgHiYellow)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = wrapWidth - 18
	tbl.Wrap = true
	for _, e := range entries {
		date, content := e.Row()
		tbl.AddRow(y.Sprint(date), content)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Stats prints the streak summary.
func (pp *PrettyPrint) Stats(streak, longest, total int) {
	bold := color.New(color.Bold)
	hi := color.New(color.FgHiMagenta, color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Current streak"), hi.Sprint(plural(streak, "day")))
	tbl.AddRow(bold.Sprint("Longest streak"), hi.Sprint(plural(longest, "day")))
	tbl.AddRow(bold.Sprint("Entries"), hi.Sprint(total))
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Quote prints a quote in italics.
func (pp *PrettyPrint) Quote(q string) {
	i := color.New(color.Italic, color.FgCyan)
	_, _ = i.Fprintln(pp.out(), wordwrap.String(q, wrapWidth))
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// JSON writes v as a single line of JSON.
func (pp *PrettyPrint) JSON(v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(pp.out(), string(b))
	return err
}
