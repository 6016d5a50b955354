// Package quote supplies the gratitude quotes shown alongside the journal.
package quote

import (
	"math/rand"
)

// Quotes is the fixed list a daily quote is drawn from.
var Quotes = []string{
	"Gratitude turns what we have into enough.",
	"When you are grateful, fear disappears and abundance appears.",
	"Gratitude is a powerful catalyst for happiness.",
	"Enjoy the little things, for one day you may look back and realize they were the big things.",
	"The more grateful I am, the more beauty I see.",
	"Gratitude is the healthiest of all human emotions.",
	"Silent gratitude isn't very much to anyone.",
	"Gratitude is not only the greatest of virtues, but the parent of all others.",
}

// Pick returns a quote chosen uniformly at random. A nil r uses the global
// source.
func Pick(r *rand.Rand) string {
	if r == nil {
		return Quotes[rand.Intn(len(Quotes))]
	}
	return Quotes[r.Intn(len(Quotes))]
}

// Quoted wraps q in typographic quotes for display.
func Quoted(q string) string {
	return "“" + q + "”"
}
