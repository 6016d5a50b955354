// Package quote provides the runner that prints a gratitude quote.
package quote

import (
	"context"
	"io"
	"math/rand"

	"tableflip.dev/gratitude/pkg/printers"
	quotes "tableflip.dev/gratitude/pkg/quote"
)

type Quote struct {
	// Rand picks the quote; nil uses the global source.
	Rand *rand.Rand
	JSON bool
	Out  io.Writer
}

func (n *Quote) Do(_ context.Context) error {
	q := quotes.Pick(n.Rand)
	pp := printers.PrettyPrint{Out: n.Out}
	if n.JSON {
		return pp.JSON(map[string]string{"quote": q})
	}
	pp.NewLine()
	pp.Quote(quotes.Quoted(q))
	pp.NewLine()
	return nil
}
