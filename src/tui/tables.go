package tui

import (
	"fmt"
	"strings"

	"github.com/Zaphoood/urstack/src/history"
	"github.com/Zaphoood/urstack/src/util"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	HISTORY_PLACEH   = "(No actions)"
	CURRENT_MARKER   = ">"
	NUM_COL_WIDTH    = 4
	STATE_COL_WIDTH  = 8
	MIN_ACTION_WIDTH = 10
)

type historyTable struct {
	table.Model
	styles  table.Styles
	entries []history.Entry
}

func newHistoryTable(styles table.Styles, options ...table.Option) historyTable {
	t := historyTable{
		Model:  table.New(append(options, table.WithStyles(styles))...),
		styles: styles,
	}
	t.Resize(NUM_COL_WIDTH+STATE_COL_WIDTH+MIN_ACTION_WIDTH, 1)
	return t
}

// Resize keeps the number and state columns fixed and gives the remaining width to the action column
func (t *historyTable) Resize(width, height int) {
	t.SetWidth(width)
	t.SetHeight(util.Max(height, 1))
	frameWidth, _ := t.styles.Header.GetFrameSize()

	t.SetColumns([]table.Column{
		{Title: "#", Width: NUM_COL_WIDTH},
		{Title: "State", Width: STATE_COL_WIDTH},
		{Title: "Action", Width: util.Max(width-3*frameWidth-NUM_COL_WIDTH-STATE_COL_WIDTH, MIN_ACTION_WIDTH)},
	})
}

func (t historyTable) Update(msg tea.Msg) (historyTable, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// Load shows every retained entry of h, most recent first, and moves the cursor to the current entry
func (t *historyTable) Load(h *history.BoundedHistory) {
	t.entries = h.Entries()
	if len(t.entries) == 0 {
		// Must set a row, otherwise View() renders nothing and the layout breaks
		t.SetRows([]table.Row{{"", "", HISTORY_PLACEH}})
		t.SetCursor(0)
		return
	}

	rows := make([]table.Row, 0, len(t.entries))
	cursor := 0
	for i, entry := range t.entries {
		marker := ""
		if entry.Current {
			marker = CURRENT_MARKER
			cursor = i
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%s%d", marker, len(t.entries)-i),
			entry.State.String(),
			entry.Action,
		})
	}
	t.SetRows(rows)
	t.SetCursor(cursor)
	tableFocusCursor(&t.Model)
}

// FindAll returns the row indices of all entries whose action contains query, ignoring case
func (t *historyTable) FindAll(query string) []int {
	query = strings.ToLower(query)
	result := []int{}
	for i, entry := range t.entries {
		if strings.Contains(strings.ToLower(entry.Action), query) {
			result = append(result, i)
		}
	}
	return result
}

// FocusedAction returns the action in the selected row, if there is one
func (t *historyTable) FocusedAction() (string, bool) {
	cursor := t.Cursor()
	if cursor < 0 || cursor >= len(t.entries) {
		return "", false
	}
	return t.entries[cursor].Action, true
}
