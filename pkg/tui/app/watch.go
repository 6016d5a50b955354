package teaui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/gratitude/pkg/app"
	"tableflip.dev/gratitude/pkg/store"
)

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event store.Event
}

type watchStoppedMsg struct{}

func startWatchCmd(parent context.Context, journal *app.Journal) tea.Cmd {
	if journal == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := journal.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

// handleWatchEvent reloads after the store changed on disk. The editor keeps
// its text while it is focused or a save is pending, so our own writes never
// clobber what is being typed.
func (m *Model) handleWatchEvent(ev store.Event) {
	switch ev.Type {
	case store.EventEntriesChanged, store.EventInvalidated:
		snap := m.journal.Reload(m.ctx)
		if m.mode == modeEdit || m.autosave.Pending() {
			m.snap = snap
			return
		}
		m.showSelection(snap)
	}
}
