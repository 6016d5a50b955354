package strike

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/gratitude/pkg/app"
	"tableflip.dev/gratitude/pkg/store"
)

func TestStrike(t *testing.T) {
	color.NoColor = true
	now := time.Date(2024, time.March, 7, 8, 0, 0, 0, time.Local)
	p := store.New(store.NewMemory())
	p.Set("2024-3-7", "x")
	j, err := app.NewJournal(p, app.Options{Now: func() time.Time { return now }})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	s := Strike{Journal: j, Out: &buf}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("strike: %v", err)
	}
	if _, ok := j.Entry(now); ok {
		t.Fatal("expected entry removed")
	}
	if !strings.Contains(buf.String(), "Removed the entry for Thursday, March 7, 2024") {
		t.Fatalf("unexpected output %q", buf.String())
	}

	buf.Reset()
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("strike: %v", err)
	}
	if !strings.Contains(buf.String(), "Nothing written") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
