package log

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/gratitude/pkg/app"
	"tableflip.dev/gratitude/pkg/store"
)

var now = time.Date(2024, time.October, 2, 8, 0, 0, 0, time.Local)

func newJournal(t *testing.T, entries map[string]string) *app.Journal {
	t.Helper()
	p := store.New(store.NewMemory())
	for k, v := range entries {
		p.Set(k, v)
	}
	j, err := app.NewJournal(p, app.Options{Now: func() time.Time { return now }})
	if err != nil {
		t.Fatal(err)
	}
	return j
}

func TestLogListsChronologically(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	j := newJournal(t, map[string]string{
		"2024-10-1": "october",
		"2024-9-30": "september",
		"2024-2-5":  "february",
	})
	l := Log{Journal: j, Out: &buf}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("log: %v", err)
	}
	out := buf.String()
	feb := strings.Index(out, "february")
	sep := strings.Index(out, "september")
	oct := strings.Index(out, "october")
	if feb < 0 || !(feb < sep && sep < oct) {
		t.Fatalf("expected chronological order:\n%s", out)
	}
	if !strings.Contains(out, "3 entries") {
		t.Fatalf("expected count in title:\n%s", out)
	}
}

func TestLogWindowJSON(t *testing.T) {
	var buf bytes.Buffer
	j := newJournal(t, map[string]string{
		"2024-10-1": "in",
		"2024-9-30": "in",
		"2024-9-1":  "out",
	})
	l := Log{Journal: j, Window: "1w", JSON: true, Out: &buf}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("log: %v", err)
	}
	var got struct {
		Window string `json:"window"`
		Count  int    `json:"count"`
		Missed int    `json:"missed"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode %q: %v", buf.String(), err)
	}
	if got.Window != "1w" || got.Count != 2 || got.Missed != 5 {
		t.Fatalf("unexpected output %+v", got)
	}
}

func TestLogBadWindow(t *testing.T) {
	l := Log{Journal: newJournal(t, nil), Window: "fortnight"}
	if err := l.Do(context.Background()); err == nil {
		t.Fatal("expected window error")
	}
}
