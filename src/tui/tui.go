package tui

import (
	"log"

	"github.com/Zaphoood/urstack/src/history"
	tea "github.com/charmbracelet/bubbletea"
)

type Options struct {
	// Capacity offered when the capacity input is left empty
	DefaultCapacity       int
	ClipboardClearSeconds int
	Logger                *log.Logger
	// Clipboard defaults to the system clipboard
	Clipboard clipboardWriter
}

type viewState int

const (
	capacityView viewState = iota
	navigateView
)

type MainModel struct {
	// Which sub-model we are currently viewing
	view     viewState
	capacity tea.Model
	navigate tea.Model
	options  Options
	// Instead of asking the user for a capacity, a history can be passed upon construction
	// This is useful when the capacity is given via command line arguments
	history *history.BoundedHistory

	windowWidth  int
	windowHeight int
}

func NewMainModel(h *history.BoundedHistory, options Options) MainModel {
	return MainModel{
		view:     capacityView,
		capacity: NewCapacityInput(options, 0, 0),
		options:  options,
		history:  h,
	}
}

func (m MainModel) Init() tea.Cmd {
	if m.history != nil {
		return func() tea.Msg { return capacitySetMsg{m.history} }
	}
	return m.capacity.Init()
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
	case capacitySetMsg:
		m.history = msg.history
		cmds = append(cmds, m.initNavigateView(msg.history))
	case resizeRequestMsg:
		cmds = append(cmds, m.initCapacityView())
	case globalResizeMsg:
		m.windowWidth = msg.width
		m.windowHeight = msg.height
	}

	switch m.view {
	case capacityView:
		newCapacity, newCmd := m.capacity.Update(msg)
		newCapacity, ok := newCapacity.(CapacityInput)
		if !ok {
			panic("Could not assert that newCapacity is of type CapacityInput after Update()")
		}
		m.capacity = newCapacity
		cmd = newCmd
	case navigateView:
		newNavigate, newCmd := m.navigate.Update(msg)
		newNavigate, ok := newNavigate.(Navigate)
		if !ok {
			panic("Could not assert that newNavigate is of type Navigate after Update()")
		}
		m.navigate = newNavigate
		cmd = newCmd
	}
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *MainModel) initCapacityView() tea.Cmd {
	m.view = capacityView
	m.capacity = NewCapacityInput(m.options, m.windowWidth, m.windowHeight)
	return m.capacity.Init()
}

func (m *MainModel) initNavigateView(h *history.BoundedHistory) tea.Cmd {
	m.view = navigateView
	m.navigate = NewNavigate(h, m.options, m.windowWidth, m.windowHeight)
	return m.navigate.Init()
}

func (m MainModel) View() string {
	switch m.view {
	case capacityView:
		return m.capacity.View()
	case navigateView:
		return m.navigate.View()
	default:
		log.Printf("ERROR: Invalid view: %d", m.view)
		return "Invalid view"
	}
}
