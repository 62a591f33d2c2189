package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

var boxStyle = lipgloss.NewStyle().
	Width(50).
	Padding(1, 2, 1).
	BorderStyle(lipgloss.NormalBorder())

var titleStyle = lipgloss.NewStyle().Bold(true)

func centerInWindow(text string, windowWidth, windowHeight int) string {
	return lipgloss.Place(windowWidth, windowHeight, lipgloss.Center, lipgloss.Center, text)
}

//tableFocusCursor makes sure that cursor of a table.Model is visible
func tableFocusCursor(t *table.Model) {
	// This workaround is necessary, since when the cursor is set using t.SetCursor(), it may go off screen
	t.MoveUp(0)
	t.MoveDown(0)
}
