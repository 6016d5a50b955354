package teaui

import (
	"errors"
	"log"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/gratitude/pkg/share"
)

const (
	toastShareEmpty = "Write something first to share your joy!"
	toastCopied     = "Copied to clipboard! Share it anywhere."
	toastShared     = "Shared!"
	toastExported   = "Journal exported successfully!"
)

type shareDoneMsg struct {
	result share.Result
	err    error
}

func logf(format string, args ...interface{}) {
	log.Printf("ui: "+format, args...)
}

// share saves any pending draft and then shares the selected day's entry.
// The share itself runs as a command since a native share may block.
func (m *Model) share() tea.Cmd {
	saved := m.flush()
	return tea.Batch(saved, m.shareCmd())
}

func (m *Model) shareCmd() tea.Cmd {
	date := m.snap.Selected
	ctx := m.ctx
	journal := m.journal
	return func() tea.Msg {
		res, err := journal.Share(ctx, date)
		return shareDoneMsg{result: res, err: err}
	}
}

func (m *Model) handleShareDone(msg shareDoneMsg) tea.Cmd {
	switch {
	case errors.Is(msg.err, share.ErrEmpty):
		return m.showToast(toastShareEmpty)
	case msg.err != nil:
		logf("share: %v", msg.err)
		return m.showToast("Could not share: " + msg.err.Error())
	case msg.result.Method == share.MethodClipboard:
		return m.showToast(toastCopied)
	case msg.result.Failed:
		// A dismissed or failed share sheet is already logged.
		return nil
	default:
		return m.showToast(toastShared)
	}
}

// export writes the whole journal to the configured export directory.
func (m *Model) export() tea.Cmd {
	path, err := m.journal.Export("")
	if err != nil {
		logf("export: %v", err)
		return m.showToast("Could not export: " + err.Error())
	}
	logf("exported journal to %s", path)
	return m.showToast(toastExported)
}
