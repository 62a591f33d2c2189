package menu

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/Zaphoood/urstack/src/history"
	"github.com/Zaphoood/urstack/src/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runScript(t *testing.T, capacity int, lines ...string) (*Menu, string) {
	out := &bytes.Buffer{}
	input := strings.Join(lines, "\n") + "\n"
	p := prompt.NewConsole(strings.NewReader(input), out, prompt.PlainStyles())
	m, err := New(p, capacity, nil)
	require.Nil(t, err)
	assert.Nil(t, m.Run())
	return m, out.String()
}

func TestNewInvalidCapacity(t *testing.T) {
	p := prompt.NewConsole(strings.NewReader(""), &bytes.Buffer{}, prompt.PlainStyles())
	_, err := New(p, 0, nil)
	assert.Equal(t, history.InvalidCapacity{Capacity: 0}, err)
}

func TestExit(t *testing.T) {
	_, out := runScript(t, 3, "9")
	assert.Contains(t, out, "1- Insert a new action")
	assert.Contains(t, out, "9- Exit")
	assert.Contains(t, out, "History size: 0 / 3")
}

func TestEndOfInputStops(t *testing.T) {
	m, _ := runScript(t, 3, "1", "a")
	all, err := m.History().All()
	assert.Nil(t, err)
	assert.Equal(t, []string{"a"}, all)
}

func TestInsertUndoRedo(t *testing.T) {
	assert := assert.New(t)
	m, out := runScript(t, 3,
		"1", "a",
		"1", "b",
		"2",
		"5",
		"6",
		"3",
		"4",
		"9",
	)

	assert.Contains(out, "Undoing: b")
	assert.Contains(out, "Redoing: b")
	assert.Contains(out, "b | a")
	assert.Contains(out, "History size: 2 / 3")
	assert.Equal(2, m.History().Size())
}

func TestEmptyHistoryMessages(t *testing.T) {
	assert := assert.New(t)
	_, out := runScript(t, 3, "2", "3", "4", "5", "6", "9")

	assert.Contains(out, "No actions")
	assert.Contains(out, "No next actions")
	assert.Contains(out, "No previous actions")
}

func TestEvictionAndTruncationReported(t *testing.T) {
	assert := assert.New(t)
	_, out := runScript(t, 2,
		"1", "a",
		"1", "b",
		"1", "c",
		"2",
		"1", "d",
		"9",
	)

	assert.Contains(out, "Evicted: a")
	assert.Contains(out, "Discarded: c")
}

func TestReset(t *testing.T) {
	assert := assert.New(t)
	m, out := runScript(t, 3,
		"1", "a",
		"7", "0", "5",
		"8",
		"9",
	)

	assert.Contains(out, "Invalid integer must be >= 1")
	assert.Contains(out, "History size: 0 / 5")
	assert.Equal(5, m.History().Capacity())
	assert.Equal(0, m.History().Len())
}

func TestResetKeepsDefault(t *testing.T) {
	m, out := runScript(t, 4, "7", "", "9")
	assert.Contains(t, out, "(Default is 4)")
	assert.Equal(t, 4, m.History().Capacity())
}

func TestInvalidOption(t *testing.T) {
	_, out := runScript(t, 3, "10", "x", "9")
	assert.Contains(t, out, "Invalid integer must be between 1 & 9")
	assert.Contains(t, out, "Invalid integer input!")
}

func TestLoggerFollowsReset(t *testing.T) {
	assert := assert.New(t)
	var logs bytes.Buffer
	input := strings.Join([]string{"1", "a", "1", "b", "7", "2", "1", "x", "1", "y", "1", "z", "9"}, "\n") + "\n"
	p := prompt.NewConsole(strings.NewReader(input), &bytes.Buffer{}, prompt.PlainStyles())
	m, err := New(p, 1, log.New(&logs, "", 0))
	require.Nil(t, err)
	assert.Nil(m.Run())

	assert.Contains(logs.String(), "Evicted oldest action 'a'")
	assert.Contains(logs.String(), "History reset with capacity 2")
	// The replacement history logs to the same logger
	assert.Contains(logs.String(), "Evicted oldest action 'x'")
}
