package teaui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/gratitude/pkg/app"
	"tableflip.dev/gratitude/pkg/debounce"
	"tableflip.dev/gratitude/pkg/export"
	"tableflip.dev/gratitude/pkg/share"
	"tableflip.dev/gratitude/pkg/store"
)

var testNow = time.Date(2024, time.March, 7, 20, 15, 0, 0, time.Local)

type testEnv struct {
	model     *Model
	journal   *app.Journal
	mem       *store.Memory
	exportDir string
	clipboard *fakeClipboard
}

type fakeClipboard struct{ text string }

func (f *fakeClipboard) Available() bool { return true }

func (f *fakeClipboard) Share(_ context.Context, _, text string) error {
	f.text = text
	return nil
}

func newTestEnv(t *testing.T, entries map[string]string) testEnv {
	t.Helper()
	mem := store.NewMemory()
	p := store.New(mem)
	for k, v := range entries {
		p.Set(k, v)
	}
	env := testEnv{mem: mem, exportDir: t.TempDir(), clipboard: &fakeClipboard{}}
	j, err := app.NewJournal(p, app.Options{
		Now:       func() time.Time { return testNow },
		ExportDir: env.exportDir,
		Share:     &share.Service{Clipboard: env.clipboard},
	})
	if err != nil {
		t.Fatalf("new journal: %v", err)
	}
	env.journal = j
	env.model = New(j, "\"Gratitude turns what we have into enough.\"")
	return env
}

func typeText(m *Model, text string) {
	for _, r := range text {
		m.Update(tea.KeyPressMsg{Text: string(r), Code: r})
	}
}

func press(m *Model, code rune) {
	m.Update(tea.KeyPressMsg{Code: code})
}

func TestNewFocusesEditorOnToday(t *testing.T) {
	env := newTestEnv(t, map[string]string{"2024-3-7": "morning coffee"})
	m := env.model
	if m.mode != modeEdit || !m.editor.Focused() {
		t.Fatalf("expected editor focused on startup")
	}
	if m.snap.Key != "2024-3-7" {
		t.Fatalf("expected today selected, got %s", m.snap.Key)
	}
	if got := m.editor.Value(); got != "morning coffee" {
		t.Fatalf("expected today's entry loaded, got %q", got)
	}
}

func TestRapidTypingSavesOnce(t *testing.T) {
	env := newTestEnv(t, nil)
	m := env.model

	typeText(m, "hello")
	if env.mem.Writes() != 0 {
		t.Fatalf("nothing should be written while typing, got %d", env.mem.Writes())
	}
	if !m.autosave.Pending() {
		t.Fatal("expected a pending save")
	}

	// Every keystroke scheduled a tick; only the newest may commit.
	for tag := 1; tag <= 5; tag++ {
		m.Update(autosaveMsg{tag: debounce.Tag(tag)})
	}
	m.Update(autosaveMsg{tag: 5})

	if env.mem.Writes() != 1 {
		t.Fatalf("expected exactly one write, got %d", env.mem.Writes())
	}
	if got, _ := env.journal.Entry(testNow); got != "hello" {
		t.Fatalf("expected last value saved, got %q", got)
	}
	if !m.saved {
		t.Fatal("expected saved indicator")
	}
	if m.snap.Total != 1 || m.snap.Streak != 1 {
		t.Fatalf("stats not refreshed: %+v", m.snap)
	}
}

func TestEscFlushesPendingSave(t *testing.T) {
	env := newTestEnv(t, nil)
	m := env.model

	typeText(m, "tea")
	press(m, tea.KeyEscape)

	if m.mode != modeBrowse || m.editor.Focused() {
		t.Fatal("expected browse mode after esc")
	}
	if env.mem.Writes() != 1 {
		t.Fatalf("expected flush on esc, got %d writes", env.mem.Writes())
	}
	m.Update(autosaveMsg{tag: 3})
	if env.mem.Writes() != 1 {
		t.Fatalf("stale tick must not save again, got %d writes", env.mem.Writes())
	}
}

func TestQuitFlushesPendingSave(t *testing.T) {
	env := newTestEnv(t, nil)
	m := env.model

	typeText(m, "rain")
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if got, _ := env.journal.Entry(testNow); got != "rain" {
		t.Fatalf("expected draft saved on quit, got %q", got)
	}
}

func TestSavedIndicatorOutlivesEarlierTimers(t *testing.T) {
	env := newTestEnv(t, nil)
	m := env.model

	typeText(m, "a")
	m.Update(autosaveMsg{tag: 1})
	typeText(m, "b")
	m.Update(autosaveMsg{tag: 2})

	m.Update(savedExpiredMsg{tag: 1})
	if !m.saved {
		t.Fatal("first timer must not hide the newer indicator")
	}
	m.Update(savedExpiredMsg{tag: 2})
	if m.saved {
		t.Fatal("expected indicator hidden")
	}
}

func TestClearingEditorDeletesEntry(t *testing.T) {
	env := newTestEnv(t, map[string]string{"2024-3-7": "x"})
	m := env.model

	press(m, tea.KeyBackspace)
	press(m, tea.KeyEscape)

	if _, ok := env.journal.Entry(testNow); ok {
		t.Fatal("expected entry deleted")
	}
	if m.snap.Total != 0 {
		t.Fatalf("expected total 0, got %d", m.snap.Total)
	}
}

func TestNavigation(t *testing.T) {
	env := newTestEnv(t, map[string]string{"2024-2-29": "leap day"})
	m := env.model
	press(m, tea.KeyEscape)

	press(m, tea.KeyLeft)
	if m.snap.Key != "2024-3-6" {
		t.Fatalf("left: got %s", m.snap.Key)
	}
	press(m, tea.KeyUp)
	if m.snap.Key != "2024-2-28" {
		t.Fatalf("up: got %s", m.snap.Key)
	}
	if !m.snap.ViewMonth.Equal(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.Local)) {
		t.Fatalf("view should follow selection, got %v", m.snap.ViewMonth)
	}
	m.Update(tea.KeyPressMsg{Text: "l", Code: 'l'})
	if m.snap.Key != "2024-2-29" || m.editor.Value() != "leap day" {
		t.Fatalf("expected leap day loaded, got %s %q", m.snap.Key, m.editor.Value())
	}
	if m.mode != modeBrowse {
		t.Fatal("moving onto a day must not focus the editor")
	}

	m.Update(tea.KeyPressMsg{Text: "]", Code: ']'})
	if m.snap.ViewMonth.Month() != time.March || m.snap.Key != "2024-2-29" {
		t.Fatalf("month shift should keep selection: %v %s", m.snap.ViewMonth, m.snap.Key)
	}

	m.Update(tea.KeyPressMsg{Text: "t", Code: 't'})
	if m.snap.Key != "2024-3-7" || m.mode != modeEdit {
		t.Fatalf("expected today selected and focused, got %s mode %d", m.snap.Key, m.mode)
	}
}

func TestEditModeKeepsLettersForEditor(t *testing.T) {
	env := newTestEnv(t, nil)
	m := env.model
	typeText(m, "hjkl")
	if m.snap.Key != "2024-3-7" {
		t.Fatalf("typing must not navigate, got %s", m.snap.Key)
	}
	if m.editor.Value() != "hjkl" {
		t.Fatalf("expected text in editor, got %q", m.editor.Value())
	}
}

func TestShareEmptyShowsNotice(t *testing.T) {
	env := newTestEnv(t, nil)
	m := env.model

	msg, ok := m.shareCmd()().(shareDoneMsg)
	if !ok {
		t.Fatalf("expected shareDoneMsg")
	}
	m.Update(msg)
	if m.toast != toastShareEmpty {
		t.Fatalf("unexpected toast %q", m.toast)
	}
	if env.clipboard.text != "" {
		t.Fatal("nothing should be copied")
	}
}

func TestShareCopiesToClipboard(t *testing.T) {
	env := newTestEnv(t, map[string]string{"2024-3-7": "friends"})
	m := env.model

	msg, ok := m.shareCmd()().(shareDoneMsg)
	if !ok {
		t.Fatal("expected shareDoneMsg")
	}
	m.Update(msg)
	if m.toast != toastCopied {
		t.Fatalf("unexpected toast %q", m.toast)
	}
	want, _ := share.Message("friends")
	if env.clipboard.text != want {
		t.Fatalf("unexpected clipboard %q", env.clipboard.text)
	}

	m.Update(toastExpiredMsg{tag: 1})
	if m.toast != "" {
		t.Fatalf("expected toast cleared, got %q", m.toast)
	}
}

func TestExportKey(t *testing.T) {
	env := newTestEnv(t, map[string]string{"2024-3-7": "x"})
	m := env.model
	press(m, tea.KeyEscape)
	m.Update(tea.KeyPressMsg{Text: "e", Code: 'e'})

	if m.toast != toastExported {
		t.Fatalf("unexpected toast %q", m.toast)
	}
	if _, err := os.Stat(filepath.Join(env.exportDir, export.FileName)); err != nil {
		t.Fatalf("expected export file: %v", err)
	}
}

func TestWatchEventReloadsEditorWhenBrowsing(t *testing.T) {
	env := newTestEnv(t, nil)
	m := env.model
	press(m, tea.KeyEscape)

	other := store.New(env.mem)
	other.Set("2024-3-7", "written elsewhere")
	if err := other.Persist(context.Background()); err != nil {
		t.Fatal(err)
	}

	m.Update(watchEventMsg{event: store.Event{Type: store.EventEntriesChanged}})
	if m.editor.Value() != "written elsewhere" {
		t.Fatalf("expected reloaded entry, got %q", m.editor.Value())
	}
}

func TestWatchEventKeepsDraftWhileEditing(t *testing.T) {
	env := newTestEnv(t, nil)
	m := env.model
	typeText(m, "draft")

	m.Update(watchEventMsg{event: store.Event{Type: store.EventEntriesChanged}})
	if m.editor.Value() != "draft" {
		t.Fatalf("draft clobbered: %q", m.editor.Value())
	}
}

func TestViewShowsDayAndStats(t *testing.T) {
	env := newTestEnv(t, map[string]string{"2024-3-6": "a", "2024-3-7": "b"})
	m := env.model
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	view := m.View()
	for _, want := range []string{"Daily Gratitude", "Thursday, March 7, 2024", "March 2024", "Streak", "Su Mo Tu We Th Fr Sa"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

type fakeNative struct{ err error }

func (f *fakeNative) Available() bool { return true }

func (f *fakeNative) Share(context.Context, string, string) error { return f.err }

func TestNativeShareToast(t *testing.T) {
	for name, tt := range map[string]struct {
		err  error
		want string
	}{
		"shared":    {nil, toastShared},
		"dismissed": {errors.New("share sheet dismissed"), ""},
	} {
		t.Run(name, func(t *testing.T) {
			p := store.New(store.NewMemory())
			p.Set("2024-3-7", "friends")
			j, err := app.NewJournal(p, app.Options{
				Now:   func() time.Time { return testNow },
				Share: &share.Service{Native: &fakeNative{err: tt.err}, Clipboard: &fakeClipboard{}},
			})
			if err != nil {
				t.Fatal(err)
			}
			m := New(j, "")
			msg, ok := m.shareCmd()().(shareDoneMsg)
			if !ok {
				t.Fatal("expected shareDoneMsg")
			}
			m.Update(msg)
			if m.toast != tt.want {
				t.Fatalf("toast = %q, want %q", m.toast, tt.want)
			}
		})
	}
}

func TestLongMultilineEntrySurvivesEdit(t *testing.T) {
	long := strings.Repeat("a", 1500) + "\nline two\nline three"
	env := newTestEnv(t, map[string]string{"2024-3-7": long})
	m := env.model

	if got := m.editor.Value(); got != long {
		t.Fatalf("editor altered the entry on load: %d runes, want %d", len([]rune(got)), len([]rune(long)))
	}
	typeText(m, "!")
	press(m, tea.KeyEscape)

	got, _ := env.journal.Entry(testNow)
	if got != long+"!" {
		t.Fatalf("stored entry lost text: %d runes, want %d", len([]rune(got)), len([]rune(long))+1)
	}

}

func TestEntryEditorCannotHoldIsReadOnly(t *testing.T) {
	odd := "a bell\a in the text"
	env := newTestEnv(t, map[string]string{"2024-3-7": odd})
	m := env.model

	if !m.readOnly {
		t.Skip("editor keeps control characters; nothing to guard")
	}
	if !strings.Contains(m.footerView(), "gratitude write") {
		t.Fatalf("expected read-only hint, got %q", m.footerView())
	}
	typeText(m, "x")
	press(m, tea.KeyBackspace)
	press(m, tea.KeyEscape)
	if env.mem.Writes() != 0 {
		t.Fatalf("read-only entry was saved %d times", env.mem.Writes())
	}
	if got, _ := env.journal.Entry(testNow); got != odd {
		t.Fatalf("entry changed to %q", got)
	}
}
