package tui

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/Zaphoood/urstack/src/history"
	"github.com/Zaphoood/urstack/src/util"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

/* Model for browsing the history and inserting, undoing and redoing actions */

const INSERT_PROMPT = "New action: "

type Navigate struct {
	table   historyTable
	cmdLine CommandLine

	insert    textinput.Model
	inserting bool

	search        []int
	searchIndex   int
	searchForward bool

	clipboard clipboardWriter
	yanked    bool

	options Options

	windowWidth  int
	windowHeight int

	history *history.BoundedHistory
}

func NewNavigate(h *history.BoundedHistory, options Options, windowWidth, windowHeight int) Navigate {
	tableStyles := table.Styles{
		Header: lipgloss.NewStyle().Bold(true).PaddingRight(1),
		Cell:   lipgloss.NewStyle().PaddingRight(1),
		Selected: lipgloss.NewStyle().
			Reverse(true).
			Bold(true).
			Foreground(lipgloss.Color("#9dcbf4")),
	}
	n := Navigate{
		table:        newHistoryTable(tableStyles, table.WithFocused(true)),
		cmdLine:      NewCommandLine(),
		insert:       textinput.New(),
		clipboard:    options.Clipboard,
		options:      options,
		history:      h,
		windowWidth:  windowWidth,
		windowHeight: windowHeight,
	}
	if n.clipboard == nil {
		n.clipboard = &systemClipboard{}
	}
	n.insert.Prompt = INSERT_PROMPT

	n.resizeAll()
	n.updateAll()

	return n
}

func (n *Navigate) resizeAll() {
	// One line each for the title and the command line
	n.table.Resize(n.windowWidth, n.windowHeight-1-n.cmdLine.GetHeight())
	n.insert.Width = util.Max(n.windowWidth-len(INSERT_PROMPT)-1, 1)
}

func (n *Navigate) updateAll() {
	n.table.Load(n.history)
	// Reset search results
	n.search = []int{}
}

func (n *Navigate) insertAction(action string) {
	change := n.history.Insert(action)
	message := fmt.Sprintf("Inserted: %s", action)
	if len(change.Discarded) > 0 {
		message += fmt.Sprintf(" (discarded %d undone)", len(change.Discarded))
	}
	if len(change.Evicted) > 0 {
		message += fmt.Sprintf(" (evicted '%s')", change.Evicted[0])
	}
	n.cmdLine.SetMessage(message)
	n.updateAll()
}

func (n *Navigate) undo() {
	action, err := n.history.Undo()
	if err != nil {
		n.cmdLine.SetMessage(err.Error())
		return
	}
	n.cmdLine.SetMessage("Undoing: " + action)
	n.updateAll()
}

func (n *Navigate) redo() {
	action, err := n.history.Redo()
	if err != nil {
		n.cmdLine.SetMessage(err.Error())
		return
	}
	n.cmdLine.SetMessage("Redoing: " + action)
	n.updateAll()
}

func (n *Navigate) copyToClipboard() tea.Cmd {
	action, ok := n.table.FocusedAction()
	if !ok {
		n.cmdLine.SetMessage(history.NoActions{}.Error())
		return nil
	}
	cmd, err := copyToClipboard(n.clipboard, action, n.options.ClipboardClearSeconds)
	if err != nil {
		log.Println(err)
		n.cmdLine.SetMessage(err.Error())
		return nil
	}
	n.yanked = true
	return cmd
}

func (n *Navigate) startInsert() tea.Cmd {
	n.inserting = true
	n.insert.SetValue("")
	return n.insert.Focus()
}

func (n *Navigate) endInsert() {
	n.inserting = false
	n.insert.Blur()
}

func (n *Navigate) handleCommand(cmd []string, raw string) tea.Cmd {
	if len(cmd) == 0 {
		return nil
	}
	switch cmd[0] {
	case "q":
		return n.handleQuitCmd(cmd)
	case "i", "insert":
		return n.handleInsertCmd(cmd, raw)
	case "u", "undo":
		n.undo()
	case "r", "redo":
		n.redo()
	case "resize":
		return n.handleResizeCmd(cmd)
	case "size":
		n.cmdLine.SetMessage(n.sizeLine())
	default:
		n.cmdLine.SetMessage(fmt.Sprintf("Not a command: %s", cmd[0]))
	}
	return nil
}

func (n *Navigate) handleQuitCmd(cmd []string) tea.Cmd {
	if len(cmd) > 1 {
		n.cmdLine.SetMessage("Error: Too many arguments")
		return nil
	}
	return func() tea.Msg { return clearClipboardAndQuitMsg{} }
}

func (n *Navigate) handleInsertCmd(cmd []string, raw string) tea.Cmd {
	if len(cmd) == 1 {
		return n.startInsert()
	}
	action := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), cmd[0]))
	n.insertAction(action)
	return nil
}

func (n *Navigate) handleResizeCmd(cmd []string) tea.Cmd {
	switch len(cmd) {
	case 1:
		return resizeRequestCmd
	case 2:
		capacity, err := strconv.Atoi(cmd[1])
		if err != nil {
			n.cmdLine.SetMessage(fmt.Sprintf("Error: Invalid capacity '%s'", cmd[1]))
			return nil
		}
		h, err := history.New(capacity)
		if err != nil {
			n.cmdLine.SetMessage("Error: " + err.Error())
			return nil
		}
		h.SetLogger(n.options.Logger)
		n.history = h
		n.updateAll()
		n.cmdLine.SetMessage(fmt.Sprintf("History reset with capacity %d", capacity))
		return nil
	default:
		n.cmdLine.SetMessage("Error: Too many arguments")
		return nil
	}
}

func (n *Navigate) handleSearch(query string, reverse bool) tea.Cmd {
	n.search = n.table.FindAll(query)
	if len(n.search) == 0 {
		n.cmdLine.SetMessage(fmt.Sprintf("Not found: %s", query))
		return nil
	}
	n.searchForward = !reverse
	if reverse {
		n.searchIndex = len(n.search) - 1
	} else {
		n.searchIndex = 0
	}
	n.focusSearchResult()
	return nil
}

func (n *Navigate) nextSearchResult() {
	if n.searchForward {
		n.moveSearchIndex(1)
	} else {
		n.moveSearchIndex(-1)
	}
}

func (n *Navigate) previousSearchResult() {
	if n.searchForward {
		n.moveSearchIndex(-1)
	} else {
		n.moveSearchIndex(1)
	}
}

func (n *Navigate) moveSearchIndex(step int) {
	if len(n.search) == 0 {
		return
	}
	n.searchIndex = util.Mod(n.searchIndex+step, len(n.search))
	n.focusSearchResult()
}

func (n *Navigate) focusSearchResult() {
	n.table.SetCursor(n.search[n.searchIndex])
	tableFocusCursor(&n.table.Model)
}

func (n Navigate) sizeLine() string {
	return fmt.Sprintf("History size: %d / %d", n.history.Size(), n.history.Capacity())
}

// History returns the history that is currently shown
func (n Navigate) History() *history.BoundedHistory {
	return n.history
}

func (n Navigate) Init() tea.Cmd {
	return nil
}

func (n Navigate) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case clearClipboardMsg:
		clearClipboard(n.clipboard)
		n.yanked = false
	case clearClipboardAndQuitMsg:
		if n.yanked {
			clearClipboard(n.clipboard)
		}
		return n, tea.Quit
	case setCommandLineMessageMsg:
		n.cmdLine.SetMessage(msg.msg)
	case commandInputMsg:
		cmd = n.handleCommand(msg.cmd, msg.raw)
		return n, cmd
	case searchInputMsg:
		cmd = n.handleSearch(msg.query, msg.reverse)
		return n, cmd
	case tea.WindowSizeMsg:
		n.windowWidth = msg.Width
		n.windowHeight = msg.Height
		n.resizeAll()
		return n, globalResizeCmd(msg.Width, msg.Height)
	case tea.KeyMsg:
		if n.cmdLine.Focused() {
			// Key events should not be handled by Navigate in case the command line is active
			break
		}
		if n.inserting {
			return n, n.handleKeyInsert(msg)
		}

		if handled, cmd := n.handleCtrlC(msg); handled {
			return n, cmd
		}
		if handled, cmd := n.handleKeyCmdLineTrigger(msg); handled {
			return n, cmd
		}
		if handled, cmd := n.handleKeyDefault(msg); handled {
			return n, cmd
		}
	}

	if n.cmdLine.Focused() {
		n.cmdLine, cmd = n.cmdLine.Update(msg)
		return n, cmd
	} else if n.inserting {
		n.insert, cmd = n.insert.Update(msg)
		return n, cmd
	}
	n.table, cmd = n.table.Update(msg)
	return n, cmd
}

func (n *Navigate) handleKeyInsert(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "ctrl+c":
		n.endInsert()
		n.cmdLine.SetMessage(DEFAULT_MESSAGE)
		return nil
	case "enter":
		action := n.insert.Value()
		n.endInsert()
		n.insertAction(action)
		return nil
	}
	var cmd tea.Cmd
	n.insert, cmd = n.insert.Update(msg)
	return cmd
}

func (n *Navigate) handleCtrlC(msg tea.KeyMsg) (bool, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		n.cmdLine.SetMessage("Type  :q  and press <Enter> to exit urstack")
		return true, nil
	}
	return false, nil
}

// handleKeyDefault handles key events when neither the command line nor the insert prompt is focused
func (n *Navigate) handleKeyDefault(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "i":
		return true, n.startInsert()
	case "u":
		n.undo()
		return true, nil
	case "r", "ctrl+r":
		n.redo()
		return true, nil
	case "y":
		return true, n.copyToClipboard()
	case "R":
		return true, resizeRequestCmd
	case "s":
		n.cmdLine.SetMessage(n.sizeLine())
		return true, nil
	case "n":
		n.nextSearchResult()
		return true, nil
	case "N":
		n.previousSearchResult()
		return true, nil
	}
	return false, nil
}

func (n *Navigate) handleKeyCmdLineTrigger(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case PROMPT_COMMAND:
		return true, n.cmdLine.StartInput(InputCommand, PROMPT_COMMAND)
	case PROMPT_SEARCH:
		return true, n.cmdLine.StartInput(InputSearch, PROMPT_SEARCH)
	case PROMPT_REV_SEARCH:
		return true, n.cmdLine.StartInput(InputSearch, PROMPT_REV_SEARCH)
	}
	return false, nil
}

func (n Navigate) View() string {
	bottom := n.cmdLine.View()
	if n.inserting {
		bottom = n.insert.View()
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render(n.sizeLine()),
		n.table.View(),
		bottom,
	)
}
