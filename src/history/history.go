package history

import (
	"fmt"
	"log"
)

type InvalidCapacity struct {
	Capacity int
}

func (e InvalidCapacity) Error() string {
	return fmt.Sprintf("Capacity must be a positive integer, got %d", e.Capacity)
}

type NoActions struct{}

func (_ NoActions) Error() string {
	return "No actions"
}

type NoRedoAvailable struct{}

func (_ NoRedoAvailable) Error() string {
	return "No next actions"
}

type State int

const (
	Active State = iota
	Undone
)

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case Undone:
		return "undone"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Entry describes one retained action
type Entry struct {
	Action string
	State  State
	// Current is set for the entry under the cursor while at least one entry is active
	Current bool
}

// Change lists the actions an insert removed from the history
type Change struct {
	// Discarded are the undone actions that were dropped, newest first
	Discarded []string
	// Evicted holds the oldest active action if it had to make room
	Evicted []string
}

// BoundedHistory is a linear undo/redo history holding at most capacity active actions.
// Entries between top and current have been undone and can be redone until a new action is inserted.
//
// A BoundedHistory is not safe for concurrent use.
type BoundedHistory struct {
	nodes    arena
	top      handle
	current  handle
	capacity int
	// size counts the active entries, from current down to the oldest retained one
	size int

	logger *log.Logger
}

func New(capacity int) (*BoundedHistory, error) {
	if capacity <= 0 {
		return nil, InvalidCapacity{capacity}
	}
	return &BoundedHistory{
		top:      none,
		current:  none,
		capacity: capacity,
	}, nil
}

// SetLogger makes the history report truncation and eviction to l. A nil logger disables this.
func (h *BoundedHistory) SetLogger(l *log.Logger) {
	h.logger = l
}

func (h *BoundedHistory) logf(format string, v ...interface{}) {
	if h.logger != nil {
		h.logger.Printf(format, v...)
	}
}

func (h *BoundedHistory) Insert(action string) Change {
	var change Change

	if h.size == 0 {
		// Everything still retained has been undone
		change.Discarded = h.nodes.removeRange(h.top, none)
		h.nodes.reset()
		h.top = h.nodes.alloc(action)
		h.current = h.top
		h.size = 1
		h.logDiscarded(change.Discarded)
		return change
	}

	change.Discarded = h.nodes.removeRange(h.top, h.current)
	h.logDiscarded(change.Discarded)

	newNode := h.nodes.alloc(action)
	h.nodes.link(newNode, h.current)
	h.top = newNode
	h.current = newNode

	if h.size < h.capacity {
		h.size++
		return change
	}

	oldest := h.nodes.hop(h.current, h.size)
	if oldest == none {
		panic(fmt.Sprintf("history: no entry beyond capacity window of %d", h.capacity))
	}
	if h.nodes.older(oldest) != none {
		panic(fmt.Sprintf("history: more than one entry beyond capacity window of %d", h.capacity))
	}
	change.Evicted = h.nodes.removeRange(oldest, none)
	h.logf("Evicted oldest action '%s'", change.Evicted[0])
	return change
}

func (h *BoundedHistory) logDiscarded(discarded []string) {
	if len(discarded) > 0 {
		h.logf("Discarded %d undone action(s)", len(discarded))
	}
}

// Undo deactivates the action under the cursor and returns it
func (h *BoundedHistory) Undo() (string, error) {
	if h.size == 0 {
		return "", NoActions{}
	}
	action := h.nodes.payload(h.current)
	// The last active entry stays under the cursor so that it can be redone
	if h.size > 1 {
		h.current = h.nodes.hop(h.current, 1)
	}
	h.size--
	return action, nil
}

func (h *BoundedHistory) CanRedo() bool {
	if h.top == none {
		return false
	}
	return h.size == 0 || h.current != h.top
}

// Redo reactivates the most recently undone action and returns it
func (h *BoundedHistory) Redo() (string, error) {
	if !h.CanRedo() {
		return "", NoRedoAvailable{}
	}
	if h.size > 0 {
		h.current = h.nodes.hop(h.current, -1)
	}
	h.size++
	return h.nodes.payload(h.current), nil
}

// All returns every retained action, most recent first
func (h *BoundedHistory) All() ([]string, error) {
	if h.top == none {
		return nil, NoActions{}
	}
	return h.collect(h.top, none), nil
}

// Previous returns the active actions from the cursor down to the oldest one
func (h *BoundedHistory) Previous() []string {
	if h.size == 0 {
		return []string{}
	}
	return h.collect(h.current, none)
}

// Next returns the undone actions, most recent first
func (h *BoundedHistory) Next() []string {
	if h.top == none {
		return []string{}
	}
	if h.size == 0 {
		return h.collect(h.top, none)
	}
	return h.collect(h.top, h.current)
}

// collect walks from start towards older entries and stops before end
func (h *BoundedHistory) collect(start, end handle) []string {
	result := []string{}
	for n := start; n != end && n != none; n = h.nodes.older(n) {
		result = append(result, h.nodes.payload(n))
	}
	return result
}

// Entries returns every retained entry, most recent first, together with its state
func (h *BoundedHistory) Entries() []Entry {
	entries := []Entry{}
	state := Undone
	for n := h.top; n != none; n = h.nodes.older(n) {
		isCurrent := n == h.current && h.size > 0
		if isCurrent {
			state = Active
		}
		entries = append(entries, Entry{Action: h.nodes.payload(n), State: state, Current: isCurrent})
	}
	return entries
}

// Current returns the action under the cursor. ok is false if no action is active.
func (h *BoundedHistory) Current() (action string, ok bool) {
	if h.size == 0 {
		return "", false
	}
	return h.nodes.payload(h.current), true
}

func (h *BoundedHistory) Size() int {
	return h.size
}

func (h *BoundedHistory) Capacity() int {
	return h.capacity
}

// Len returns the number of retained entries, active and undone
func (h *BoundedHistory) Len() int {
	count := 0
	for n := h.top; n != none; n = h.nodes.older(n) {
		count++
	}
	return count
}
