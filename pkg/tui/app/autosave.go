package teaui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/gratitude/pkg/datekey"
)

// scheduleSave replaces any pending save with one that fires after
// autosaveDelay of quiet.
func (m *Model) scheduleSave() tea.Cmd {
	tag := m.autosave.Schedule()
	return tea.Tick(autosaveDelay, func(time.Time) tea.Msg {
		return autosaveMsg{tag: tag}
	})
}

// flush commits a pending save now. It returns nil when nothing was pending.
func (m *Model) flush() tea.Cmd {
	if !m.autosave.Cancel() {
		return nil
	}
	return m.commit()
}

// commit writes the editor's value for the day it was loaded from.
func (m *Model) commit() tea.Cmd {
	snap, err := m.journal.Save(m.ctx, m.editDate, m.editor.Value())
	m.snap = snap
	if err != nil {
		logf("save %s: %v", datekey.Encode(m.editDate), err)
		return m.showToast("Could not save: " + err.Error())
	}
	m.saved = true
	tag := m.savedGate.Schedule()
	return tea.Tick(savedDuration, func(time.Time) tea.Msg {
		return savedExpiredMsg{tag: tag}
	})
}

func (m *Model) showToast(text string) tea.Cmd {
	m.toast = text
	tag := m.toastGate.Schedule()
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{tag: tag}
	})
}
