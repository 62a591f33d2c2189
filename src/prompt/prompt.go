// Package prompt reads user input from a line-oriented console and reports messages back to it.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const SEPARATOR_WIDTH = 70

type Prompter interface {
	// ReadLine displays prompt and blocks until one line of input is read
	ReadLine(prompt string) (string, error)
	// ReadBoundedInt asks until it gets an integer within the given bounds.
	// An empty line yields the default, if there is one.
	ReadBoundedInt(prompt string, opts ...IntOption) (int, error)
	ReportInfo(text string)
	ReportError(text string)
}

// Separator is implemented by prompters that can draw a horizontal rule
type Separator interface {
	Separator()
}

type intBounds struct {
	min, max, def          int
	hasMin, hasMax, hasDef bool
}

type IntOption func(*intBounds)

func WithMin(min int) IntOption {
	return func(b *intBounds) {
		b.min = min
		b.hasMin = true
	}
}

func WithMax(max int) IntOption {
	return func(b *intBounds) {
		b.max = max
		b.hasMax = true
	}
}

func WithDefault(def int) IntOption {
	return func(b *intBounds) {
		b.def = def
		b.hasDef = true
	}
}

type Styles struct {
	Prompt lipgloss.Style
	Info   lipgloss.Style
	Error  lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Prompt: lipgloss.NewStyle().Bold(true),
		Info:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		Error:  lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("1")),
	}
}

// PlainStyles renders text unchanged, e.g. for output that is not a terminal
func PlainStyles() Styles {
	return Styles{
		Prompt: lipgloss.NewStyle(),
		Info:   lipgloss.NewStyle(),
		Error:  lipgloss.NewStyle(),
	}
}

type Console struct {
	in     *bufio.Reader
	out    io.Writer
	styles Styles
}

func NewConsole(in io.Reader, out io.Writer, styles Styles) *Console {
	return &Console{
		in:     bufio.NewReader(in),
		out:    out,
		styles: styles,
	}
}

func (c *Console) ReadLine(prompt string) (string, error) {
	fmt.Fprint(c.out, c.styles.Prompt.Render(prompt+":")+" ")
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Console) ReadBoundedInt(prompt string, opts ...IntOption) (int, error) {
	var bounds intBounds
	for _, opt := range opts {
		opt(&bounds)
	}
	if bounds.hasDef {
		prompt = fmt.Sprintf("%s (Default is %d)", prompt, bounds.def)
	}

	for {
		line, err := c.ReadLine(prompt)
		if err != nil {
			return 0, err
		}
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			if bounds.hasDef {
				return bounds.def, nil
			}
			c.ReportError("Input required!")
			continue
		}
		value, err := strconv.Atoi(line)
		if err != nil {
			c.ReportError("Invalid integer input!")
			continue
		}
		if msg, ok := bounds.check(value); !ok {
			c.ReportError(msg)
			continue
		}
		return value, nil
	}
}

func (b intBounds) check(value int) (string, bool) {
	tooSmall := b.hasMin && value < b.min
	tooLarge := b.hasMax && value > b.max
	if !tooSmall && !tooLarge {
		return "", true
	}
	switch {
	case b.hasMin && b.hasMax:
		return fmt.Sprintf("Invalid integer must be between %d & %d", b.min, b.max), false
	case b.hasMin:
		return fmt.Sprintf("Invalid integer must be >= %d", b.min), false
	default:
		return fmt.Sprintf("Invalid integer must be <= %d", b.max), false
	}
}

func (c *Console) ReportInfo(text string) {
	fmt.Fprintln(c.out, c.styles.Info.Render(text))
}

func (c *Console) ReportError(text string) {
	fmt.Fprintln(c.out, c.styles.Error.Render(text))
}

func (c *Console) Separator() {
	fmt.Fprintln(c.out, strings.Repeat("-", SEPARATOR_WIDTH))
}
