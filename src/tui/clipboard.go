package tui

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"golang.design/x/clipboard"
)

type clipboardWriter interface {
	// Write puts value into the clipboard. The returned channel is closed once the clipboard
	// content is overwritten by someone else.
	Write(value string) (<-chan struct{}, error)
}

// systemClipboard initializes the clipboard on first use, since that fails on machines without one
type systemClipboard struct {
	initialized bool
	err         error
}

func (c *systemClipboard) Write(value string) (<-chan struct{}, error) {
	if !c.initialized {
		c.initialized = true
		c.err = clipboard.Init()
	}
	if c.err != nil {
		return nil, fmt.Errorf("Clipboard unavailable: %s", c.err)
	}
	return clipboard.Write(clipboard.FmtText, []byte(value)), nil
}

func copyToClipboard(c clipboardWriter, value string, clearClipboardDelay int) (tea.Cmd, error) {
	notifyChangeChan, err := c.Write(value)
	if err != nil {
		return nil, err
	}

	commandLineMsg := "Copied to clipboard."
	var clearClipboardCmd tea.Cmd = nil
	if clearClipboardDelay > 0 {
		commandLineMsg += fmt.Sprintf(" (Clearing in %d seconds)", clearClipboardDelay)
		clearClipboardCmd = scheduleClearClipboard(clearClipboardDelay, notifyChangeChan)
	}
	setMsgCmd := func() tea.Msg {
		return setCommandLineMessageMsg{commandLineMsg}
	}
	return tea.Batch(setMsgCmd, clearClipboardCmd), nil
}

func clearClipboard(c clipboardWriter) {
	if _, err := c.Write(""); err != nil {
		log.Println(err)
	}
}
