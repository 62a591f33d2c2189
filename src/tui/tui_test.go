package tui

import (
	"testing"

	"github.com/Zaphoood/urstack/src/history"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func updateMain(m MainModel, msg tea.Msg) (MainModel, tea.Cmd) {
	model, cmd := m.Update(msg)
	return model.(MainModel), cmd
}

func typeCapacity(m MainModel, text string) MainModel {
	for _, r := range text {
		m, _ = updateMain(m, keyRunes(string(r)))
	}
	return m
}

// pressEnter confirms the capacity input. The command is taken from the capacity view itself,
// since MainModel batches it.
func pressEnter(m MainModel) (MainModel, tea.Cmd) {
	model, cmd := m.capacity.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.capacity = model
	return m, cmd
}

func TestMainModelDefaultCapacity(t *testing.T) {
	assert := assert.New(t)
	m := NewMainModel(nil, Options{DefaultCapacity: 4, Clipboard: &fakeClipboard{}})
	assert.Equal(capacityView, m.view)

	m, cmd := pressEnter(m)
	require.NotNil(t, cmd)
	msg := cmd()
	assert.IsType(capacitySetMsg{}, msg)

	m, _ = updateMain(m, msg)
	assert.Equal(navigateView, m.view)
	assert.Equal(4, m.navigate.(Navigate).History().Capacity())
}

func TestMainModelTypedCapacity(t *testing.T) {
	m := NewMainModel(nil, Options{DefaultCapacity: 4, Clipboard: &fakeClipboard{}})

	m = typeCapacity(m, "12")
	m, cmd := pressEnter(m)
	require.NotNil(t, cmd)
	m, _ = updateMain(m, cmd())
	assert.Equal(t, 12, m.navigate.(Navigate).History().Capacity())
}

func TestMainModelInvalidCapacity(t *testing.T) {
	assert := assert.New(t)
	m := NewMainModel(nil, Options{DefaultCapacity: 4})

	m = typeCapacity(m, "0")
	m, cmd := pressEnter(m)
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(capacityFailedMsg{history.InvalidCapacity{Capacity: 0}}, msg)

	m, _ = updateMain(m, msg)
	assert.Equal(capacityView, m.view)
	assert.Equal(history.InvalidCapacity{Capacity: 0}, m.capacity.(CapacityInput).err)

	m = typeCapacity(m, "abc")
	m, cmd = pressEnter(m)
	assert.Nil(cmd)
	assert.NotNil(m.capacity.(CapacityInput).err)
	assert.Contains(m.View(), "Enter history capacity")
}

func TestMainModelWithHistory(t *testing.T) {
	h, err := history.New(2)
	require.Nil(t, err)
	m := NewMainModel(h, Options{DefaultCapacity: 4, Clipboard: &fakeClipboard{}})

	msg := m.Init()()
	m, _ = updateMain(m, msg)
	assert.Equal(t, navigateView, m.view)
	assert.Same(t, h, m.navigate.(Navigate).History())

	m, _ = updateMain(m, resizeRequestMsg{})
	assert.Equal(t, capacityView, m.view)
}

func TestCommandLine(t *testing.T) {
	assert := assert.New(t)
	c := NewCommandLine()
	assert.False(c.Focused())
	assert.Equal(DEFAULT_MESSAGE, c.View())

	c.StartInput(InputCommand, PROMPT_COMMAND)
	assert.True(c.Focused())
	for _, r := range "resize 5" {
		c, _ = c.Update(keyRunes(string(r)))
	}
	c, cmd := c.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(c.Focused())
	assert.Equal(":resize 5", c.Message())
	if assert.NotNil(cmd) {
		assert.Equal(commandInputMsg{[]string{"resize", "5"}, "resize 5"}, cmd())
	}
}

func TestCommandLineReverseSearch(t *testing.T) {
	c := NewCommandLine()
	c.StartInput(InputSearch, PROMPT_REV_SEARCH)
	c, _ = c.Update(keyRunes("x"))
	_, cmd := c.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if assert.NotNil(t, cmd) {
		assert.Equal(t, searchInputMsg{"x", true}, cmd())
	}
}

func TestCommandLineCancel(t *testing.T) {
	c := NewCommandLine()
	c.StartInput(InputCommand, PROMPT_COMMAND)
	c, _ = c.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.False(t, c.Focused())

	c.StartInput(InputCommand, PROMPT_COMMAND)
	c, _ = c.Update(keyRunes("q"))
	c, cmd := c.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, c.Focused())
	assert.Nil(t, cmd)
}

func TestParseCommand(t *testing.T) {
	assert.Equal(t, []string{"insert", "a", "b"}, parseCommand("  insert a   b "))
	assert.Empty(t, parseCommand("   "))
}
