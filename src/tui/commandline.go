package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const DEFAULT_MESSAGE = "Ready."

const (
	PROMPT_COMMAND    = ":"
	PROMPT_SEARCH     = "/"
	PROMPT_REV_SEARCH = "?"
)

type InputMode int

const (
	InputNone InputMode = iota
	InputCommand
	InputSearch
)

type CommandLine struct {
	input     textinput.Model
	inputMode InputMode
	message   string
}

func NewCommandLine() CommandLine {
	input := textinput.New()
	input.Prompt = ""
	return CommandLine{
		input:     input,
		inputMode: InputNone,
		message:   DEFAULT_MESSAGE,
	}
}

func (c CommandLine) Init() tea.Cmd {
	return nil
}

// StartInput focuses the command line, showing prompt in front of the input
func (c *CommandLine) StartInput(mode InputMode, prompt string) tea.Cmd {
	c.inputMode = mode
	c.input.Prompt = prompt
	c.input.SetValue("")
	return c.input.Focus()
}

func (c CommandLine) Update(msg tea.Msg) (CommandLine, tea.Cmd) {
	var cmd tea.Cmd
	if msg, ok := msg.(tea.KeyMsg); ok {
		if c.inputMode == InputNone {
			return c, nil
		}

		switch msg.String() {
		case "esc", "ctrl+c":
			c.endInputMode()
			return c, nil
		case "enter":
			return c, c.onEnter()
		case "backspace":
			if len(c.input.Value()) == 0 {
				c.endInputMode()
				return c, nil
			}
		}

		c.input, cmd = c.input.Update(msg)
		return c, cmd
	}
	return c, nil
}

func (c *CommandLine) onEnter() tea.Cmd {
	value := c.input.Value()
	mode := c.inputMode
	reverse := c.input.Prompt == PROMPT_REV_SEARCH
	c.endInputMode()

	switch mode {
	case InputCommand:
		c.message = PROMPT_COMMAND + value
		cmd := parseCommand(value)
		if len(cmd) == 0 {
			return nil
		}
		return func() tea.Msg { return commandInputMsg{cmd, value} }
	case InputSearch:
		if len(value) == 0 {
			return nil
		}
		return func() tea.Msg { return searchInputMsg{value, reverse} }
	}
	return nil
}

// parseCommand splits input into words, dropping empty strings
func parseCommand(input string) []string {
	return strings.Fields(input)
}

func (c *CommandLine) endInputMode() {
	c.inputMode = InputNone
	c.input.Blur()
	c.message = DEFAULT_MESSAGE
}

func (c CommandLine) View() string {
	switch c.inputMode {
	case InputNone:
		return c.message
	case InputCommand, InputSearch:
		return c.input.View()
	default:
		panic(fmt.Sprintf("ERROR: Invalid input mode %d", c.inputMode))
	}
}

func (c *CommandLine) SetMessage(msg string) {
	c.message = msg
}

func (c CommandLine) Message() string {
	return c.message
}

func (c CommandLine) Focused() bool {
	return c.inputMode != InputNone
}

func (c CommandLine) GetHeight() int {
	return 1
}

type commandInputMsg struct {
	cmd []string
	// raw is the input as typed, without the prompt
	raw string
}

type searchInputMsg struct {
	query   string
	reverse bool
}
