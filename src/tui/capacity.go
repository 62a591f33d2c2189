package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

/* Initial model where you enter the capacity of the history */

type CapacityInput struct {
	input   textinput.Model
	err     error
	options Options

	windowWidth  int
	windowHeight int
}

func NewCapacityInput(options Options, windowWidth, windowHeight int) CapacityInput {
	m := CapacityInput{
		input:        textinput.New(),
		options:      options,
		windowWidth:  windowWidth,
		windowHeight: windowHeight,
	}

	m.input.Width = 32
	m.input.CharLimit = 9
	m.input.Placeholder = fmt.Sprintf("Default is %d", options.DefaultCapacity)
	m.input.Focus()

	return m
}

func (m CapacityInput) Init() tea.Cmd {
	return textinput.Blink
}

func (m CapacityInput) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case capacityFailedMsg:
		m.err = msg.err
		m.input.SetValue("")
		return m, nil
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		return m, globalResizeCmd(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "enter":
			capacity, err := m.parseCapacity()
			if err != nil {
				m.err = err
				m.input.SetValue("")
				return m, nil
			}
			return m, capacitySelectedCmd(capacity, m.options)
		}
	}
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

// parseCapacity reads the typed capacity, an empty input means the default
func (m CapacityInput) parseCapacity() (int, error) {
	value := strings.TrimSpace(m.input.Value())
	if len(value) == 0 {
		return m.options.DefaultCapacity, nil
	}
	capacity, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("Invalid integer input: '%s'", value)
	}
	return capacity, nil
}

func (m CapacityInput) viewError() string {
	if m.err != nil {
		return fmt.Sprintf("\n%s\n", m.err)
	}
	return ""
}

func (m CapacityInput) View() string {
	var builder strings.Builder
	builder.WriteString("Enter history capacity:\n\n")
	builder.WriteString(m.input.View())
	builder.WriteRune('\n')
	builder.WriteString(m.viewError())
	builder.WriteString("\n(Press 'Ctrl-c' to quit)")

	return centerInWindow(boxStyle.Render(builder.String()), m.windowWidth, m.windowHeight)
}
