// Package menu runs the numbered console menu on top of a BoundedHistory.
package menu

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/Zaphoood/urstack/src/history"
	"github.com/Zaphoood/urstack/src/prompt"
)

const LIST_SEPARATOR = " | "

type option struct {
	label  string
	action func(m *Menu) (quit bool, err error)
}

var options = []option{
	{"Insert a new action", (*Menu).insert},
	{"Undo action", (*Menu).undo},
	{"Redo action", (*Menu).redo},
	{"Display all actions", (*Menu).displayAll},
	{"Display all previous actions", (*Menu).displayPrevious},
	{"Display all next actions", (*Menu).displayNext},
	{"Reset history", func(m *Menu) (bool, error) { return false, m.Reset() }},
	{"Display history size", (*Menu).displaySize},
	{"Exit", func(*Menu) (bool, error) { return true, nil }},
}

type Menu struct {
	prompter        prompt.Prompter
	history         *history.BoundedHistory
	defaultCapacity int
	logger          *log.Logger
}

// New creates a menu whose history starts with the given capacity.
// defaultCapacity is also offered whenever the history is reset.
func New(p prompt.Prompter, defaultCapacity int, logger *log.Logger) (*Menu, error) {
	h, err := history.New(defaultCapacity)
	if err != nil {
		return nil, err
	}
	h.SetLogger(logger)
	return &Menu{
		prompter:        p,
		history:         h,
		defaultCapacity: defaultCapacity,
		logger:          logger,
	}, nil
}

func (m *Menu) History() *history.BoundedHistory {
	return m.history
}

// Run shows the menu until the user exits or the input ends
func (m *Menu) Run() error {
	m.separator()
	for {
		m.displaySizeLine()
		m.displayMenu()

		selected, err := m.prompter.ReadBoundedInt("Choose an option", prompt.WithMin(1), prompt.WithMax(len(options)))
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}

		quit, err := options[selected-1].action(m)
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

func (m *Menu) displayMenu() {
	for i, o := range options {
		m.prompter.ReportInfo(fmt.Sprintf("%d- %s", i+1, o.label))
	}
	m.separator()
}

func (m *Menu) separator() {
	if s, ok := m.prompter.(prompt.Separator); ok {
		s.Separator()
	}
}

func (m *Menu) insert() (bool, error) {
	action, err := m.prompter.ReadLine("Enter a new action")
	if err != nil {
		return false, err
	}
	change := m.history.Insert(action)
	if len(change.Discarded) > 0 {
		m.prompter.ReportInfo("Discarded: " + strings.Join(change.Discarded, LIST_SEPARATOR))
	}
	if len(change.Evicted) > 0 {
		m.prompter.ReportInfo("Evicted: " + strings.Join(change.Evicted, LIST_SEPARATOR))
	}
	return false, nil
}

func (m *Menu) undo() (bool, error) {
	action, err := m.history.Undo()
	if err != nil {
		m.prompter.ReportError(err.Error())
		return false, nil
	}
	m.prompter.ReportInfo("Undoing: " + action)
	return false, nil
}

func (m *Menu) redo() (bool, error) {
	action, err := m.history.Redo()
	if err != nil {
		m.prompter.ReportError(err.Error())
		return false, nil
	}
	m.prompter.ReportInfo("Redoing: " + action)
	return false, nil
}

func (m *Menu) displayAll() (bool, error) {
	all, err := m.history.All()
	if err != nil {
		m.prompter.ReportError(err.Error())
		return false, nil
	}
	m.prompter.ReportInfo(strings.Join(all, LIST_SEPARATOR))
	return false, nil
}

func (m *Menu) displayPrevious() (bool, error) {
	m.displayList(m.history.Previous(), "No previous actions")
	return false, nil
}

func (m *Menu) displayNext() (bool, error) {
	m.displayList(m.history.Next(), "No next actions")
	return false, nil
}

func (m *Menu) displayList(actions []string, placeholder string) {
	if len(actions) == 0 {
		m.prompter.ReportInfo(placeholder)
		return
	}
	m.prompter.ReportInfo(strings.Join(actions, LIST_SEPARATOR))
}

// Reset asks for a capacity and replaces the history with an empty one of that capacity
func (m *Menu) Reset() error {
	capacity, err := m.prompter.ReadBoundedInt("Enter history capacity", prompt.WithMin(1), prompt.WithDefault(m.defaultCapacity))
	if err != nil {
		return err
	}
	h, err := history.New(capacity)
	if err != nil {
		return err
	}
	h.SetLogger(m.logger)
	m.history = h
	if m.logger != nil {
		m.logger.Printf("History reset with capacity %d", capacity)
	}
	return nil
}

func (m *Menu) displaySize() (bool, error) {
	m.displaySizeLine()
	return false, nil
}

func (m *Menu) displaySizeLine() {
	m.prompter.ReportInfo(fmt.Sprintf("History size: %d / %d", m.history.Size(), m.history.Capacity()))
}
