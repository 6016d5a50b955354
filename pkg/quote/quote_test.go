package quote

import (
	"math/rand"
	"testing"
)

func TestPickCoversEveryQuote(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	seen := make(map[string]int)
	for i := 0; i < 4000; i++ {
		seen[Pick(r)]++
	}
	if len(seen) != len(Quotes) {
		t.Fatalf("saw %d distinct quotes, want %d", len(seen), len(Quotes))
	}
	for q, n := range seen {
		// Expect ~500 each; a wide band keeps this deterministic seed safe.
		if n < 350 || n > 650 {
			t.Errorf("quote %q picked %d times", q, n)
		}
	}
}

func TestPickGlobalSource(t *testing.T) {
	q := Pick(nil)
	for _, known := range Quotes {
		if q == known {
			return
		}
	}
	t.Fatalf("Pick(nil) = %q, not in list", q)
}
