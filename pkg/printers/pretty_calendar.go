package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/gratitude/pkg/calendar"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Calendar prints a month grid. Days with an entry are bold, today is
// underlined.
func (pp *PrettyPrint) Calendar(g calendar.Grid) {
	out := pp.out()
	tf := color.New(color.FgWhite, color.Italic)

	m := g.Title()
	mid := (width - len(m)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Fprintf(out, "%s%s\n", strings.Repeat(" ", mid), m)
	_, _ = color.New(color.Faint).Fprintln(out, "Su Mo Tu We Th Fr Sa")

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiMagenta)

	for _, week := range g.Weeks() {
		cells := make([]string, 0, len(week))
		for _, c := range week {
			if c.Blank {
				cells = append(cells, "  ")
				continue
			}
			p := l1
			if c.HasEntry {
				p = l2
			}
			if c.Today {
				p = color.New(color.Underline)
				if c.HasEntry {
					p = color.New(color.Underline, color.Bold, color.FgHiMagenta)
				}
			}
			cells = append(cells, p.Sprintf("%2d", c.Day))
		}
		_, _ = fmt.Fprintln(out, strings.TrimRight(strings.Join(cells, " "), " "))
	}
	pp.NewLine()
}
