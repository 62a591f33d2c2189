package tui

import (
	"time"

	"github.com/Zaphoood/urstack/src/history"
	tea "github.com/charmbracelet/bubbletea"
)

func capacitySelectedCmd(capacity int, options Options) tea.Cmd {
	return func() tea.Msg {
		h, err := history.New(capacity)
		if err != nil {
			return capacityFailedMsg{err}
		}
		h.SetLogger(options.Logger)
		return capacitySetMsg{h}
	}
}

type capacitySetMsg struct {
	history *history.BoundedHistory
}

type capacityFailedMsg struct {
	err error
}

// Emitted when the user wants to replace the history with a new one of different capacity
type resizeRequestMsg struct{}

func resizeRequestCmd() tea.Msg {
	return resizeRequestMsg{}
}

func scheduleClearClipboard(delay int, notify <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-notify:
			return nil
		case <-time.After(time.Duration(delay) * time.Second):
			return clearClipboardMsg{}
		}
	}
}

type clearClipboardMsg struct{}

type clearClipboardAndQuitMsg struct{}

/* When any model receives a tea.WindowSizeMsg, it should emit this command
in order to alert the main model of the resize. The main model will store the new
window size and pass it to other models upon initialization */
func globalResizeCmd(width, height int) tea.Cmd {
	return func() tea.Msg {
		return globalResizeMsg{width, height}
	}
}

type globalResizeMsg struct {
	width  int
	height int
}

type setCommandLineMessageMsg struct {
	msg string
}
