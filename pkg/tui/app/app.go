// Package teaui hosts the Bubble Tea program for the gratitude journal.
package teaui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textarea"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/gratitude/pkg/app"
	"tableflip.dev/gratitude/pkg/calendar"
	"tableflip.dev/gratitude/pkg/datekey"
	"tableflip.dev/gratitude/pkg/debounce"
	"tableflip.dev/gratitude/pkg/entry"
	"tableflip.dev/gratitude/pkg/store"
	"tableflip.dev/gratitude/pkg/tui/theme"
)

const (
	autosaveDelay = 1000 * time.Millisecond
	savedDuration = 2000 * time.Millisecond
	toastDuration = 3000 * time.Millisecond

	editorPlaceholder = "What are you grateful for today?"
	browseHelp        = "←↓↑→/hjkl move · [ ] month · t today · enter write · s share · e export · q quit"
	editHelp          = "esc done · ctrl+s share · autosaves as you type"
	readOnlyHelp      = "this entry has text the editor can't show; change it with gratitude write"

	editorHeight = 6
)

type mode int

const (
	modeBrowse mode = iota
	modeEdit
)

// Model contains UI state
type Model struct {
	journal *app.Journal
	ctx     context.Context
	theme   theme.Theme
	mode    mode

	snap     app.Snapshot
	editor   textarea.Model
	editDate time.Time
	// readOnly is set when the editor cannot hold the selected entry
	// exactly, so typing would overwrite it with altered text.
	readOnly bool
	quote    string

	autosave  debounce.Gate
	savedGate debounce.Gate
	toastGate debounce.Gate
	saved     bool
	toast     string

	focusCmd tea.Cmd

	termWidth  int
	termHeight int

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc
}

// New creates the UI model for journal. Today is selected and the editor
// starts focused.
func New(journal *app.Journal, quote string) *Model {
	ta := textarea.New()
	ta.Placeholder = editorPlaceholder
	ta.Prompt = ""
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.SetWidth(44)
	ta.SetHeight(editorHeight)

	m := &Model{
		journal: journal,
		ctx:     context.Background(),
		theme:   theme.Default(),
		editor:  ta,
		quote:   quote,
	}
	m.showSelection(journal.SelectToday())
	m.focusCmd = m.focusEditor()
	return m
}

// Init focuses the editor and starts watching the store.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.focusCmd, startWatchCmd(m.ctx, m.journal))
}

// messages
type autosaveMsg struct{ tag debounce.Tag }
type savedExpiredMsg struct{ tag debounce.Tag }
type toastExpiredMsg struct{ tag debounce.Tag }

// Update handles messages and keybindings
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
	case autosaveMsg:
		if m.autosave.Fire(msg.tag) {
			cmds = append(cmds, m.commit())
		}
	case savedExpiredMsg:
		if m.savedGate.Fire(msg.tag) {
			m.saved = false
		}
	case toastExpiredMsg:
		if m.toastGate.Fire(msg.tag) {
			m.toast = ""
		}
	case shareDoneMsg:
		cmds = append(cmds, m.handleShareDone(msg))
	case watchStartedMsg:
		if msg.err != nil {
			logf("watch: %v", msg.err)
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		cmds = append(cmds, m.waitForWatch())
	case watchEventMsg:
		m.handleWatchEvent(msg.event)
		cmds = append(cmds, m.waitForWatch())
	case watchStoppedMsg:
		m.stopWatch()
	case tea.KeyPressMsg:
		if quit := m.handleKeyPress(msg, &cmds); quit {
			m.stopWatch()
			return m, tea.Quit
		}
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKeyPress(msg tea.KeyPressMsg, cmds *[]tea.Cmd) bool {
	if msg.String() == "ctrl+c" {
		m.flush()
		return true
	}
	if m.mode == modeEdit {
		m.handleEditKey(msg, cmds)
		return false
	}
	return m.handleBrowseKey(msg, cmds)
}

func (m *Model) handleBrowseKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) bool {
	switch msg.String() {
	case "q":
		m.flush()
		return true
	case "left", "h":
		*cmds = append(*cmds, m.move(-1))
	case "right", "l":
		*cmds = append(*cmds, m.move(1))
	case "up", "k":
		*cmds = append(*cmds, m.move(-7))
	case "down", "j":
		*cmds = append(*cmds, m.move(7))
	case "[":
		m.snap = m.journal.ShiftMonth(-1)
	case "]":
		m.snap = m.journal.ShiftMonth(1)
	case "t":
		*cmds = append(*cmds, m.flush())
		m.showSelection(m.journal.SelectToday())
		*cmds = append(*cmds, m.focusEditor())
	case "enter", "i":
		*cmds = append(*cmds, m.focusEditor())
	case "s":
		*cmds = append(*cmds, m.share())
	case "e":
		*cmds = append(*cmds, m.export())
	}
	return false
}

func (m *Model) handleEditKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "esc":
		*cmds = append(*cmds, m.blurEditor())
		return
	case "ctrl+s":
		*cmds = append(*cmds, m.share())
		return
	}
	if m.readOnly {
		return
	}
	before := m.editor.Value()
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if cmd != nil {
		*cmds = append(*cmds, cmd)
	}
	if m.editor.Value() != before {
		*cmds = append(*cmds, m.scheduleSave())
	}
}

// move shifts the selection, saving any pending draft for the day being left.
func (m *Model) move(days int) tea.Cmd {
	cmd := m.flush()
	m.showSelection(m.journal.MoveSelection(days))
	return cmd
}

// showSelection adopts snap and loads the selected day's entry into the
// editor.
func (m *Model) showSelection(snap app.Snapshot) {
	m.snap = snap
	m.editDate = snap.Selected
	m.editor.SetValue(snap.Content)
	m.readOnly = m.editor.Value() != snap.Content
}

func (m *Model) focusEditor() tea.Cmd {
	m.mode = modeEdit
	return m.editor.Focus()
}

func (m *Model) blurEditor() tea.Cmd {
	m.mode = modeBrowse
	m.editor.Blur()
	return m.flush()
}

// applySizes recalculates widths based on current terminal size.
func (m *Model) applySizes() {
	if m.termWidth == 0 {
		return
	}
	w := m.termWidth - calendarWidth - 10
	if w < 20 {
		w = 20
	}
	if w > 72 {
		w = 72
	}
	m.editor.SetWidth(w)
}

// calendarWidth is the rendered width of a week row.
var calendarWidth = lipgloss.Width("Su Mo Tu We Th Fr Sa")

// View renders the journal.
func (m *Model) View() string {
	th := m.theme

	header := lipgloss.JoinVertical(lipgloss.Left,
		th.Header.Title.Render("Daily Gratitude"),
		th.Header.Quote.Render(m.quote),
	)

	cal := th.Panel.Frame.Render(calendar.Render(m.snap.Grid, th.Calendar))

	frame := th.Panel.Frame
	if m.mode == modeEdit {
		frame = th.Panel.FocusFrame
	}
	title := entry.Entry{Key: m.snap.Key, Date: m.snap.Selected}.Title()
	if datekey.SameDate(m.snap.Selected, m.snap.Today) {
		title += " (today)"
	}
	entryPane := frame.Render(lipgloss.JoinVertical(lipgloss.Left,
		th.Panel.Title.Render(title),
		"",
		m.editor.View(),
		"",
		m.statsView(),
	))

	body := lipgloss.JoinHorizontal(lipgloss.Top, cal, " ", entryPane)
	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", m.footerView())
}

func (m *Model) statsView() string {
	th := m.theme.Panel
	stat := func(label string, n int) string {
		return th.StatLabel.Render(label+" ") + th.StatValue.Render(fmt.Sprintf("%d", n))
	}
	days := "days"
	if m.snap.Streak == 1 {
		days = "day"
	}
	return strings.Join([]string{
		stat("Streak", m.snap.Streak) + th.StatLabel.Render(" "+days),
		stat("Longest", m.snap.Longest),
		stat("Entries", m.snap.Total),
	}, "   ")
}

func (m *Model) footerView() string {
	th := m.theme.Footer
	var parts []string
	if m.toast != "" {
		parts = append(parts, th.Toast.Render(m.toast))
	}
	if m.saved {
		parts = append(parts, th.Saved.Render("✓ Saved"))
	}
	help := browseHelp
	switch {
	case m.mode == modeEdit && m.readOnly:
		help = readOnlyHelp
	case m.mode == modeEdit:
		help = editHelp
	}
	parts = append(parts, th.Help.Render(help))
	return strings.Join(parts, "  ")
}

// Run launches the interactive TUI program.
func Run(journal *app.Journal, quote string) error {
	p := tea.NewProgram(New(journal, quote), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
