package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// chain builds newest -> ... -> oldest and returns the handles in that order
func chain(a *arena, payloads ...string) []handle {
	handles := make([]handle, len(payloads))
	for i := len(payloads) - 1; i >= 0; i-- {
		handles[i] = a.alloc(payloads[i])
		if i < len(payloads)-1 {
			a.link(handles[i], handles[i+1])
		}
	}
	return handles
}

func walk(a *arena, h handle) []string {
	result := []string{}
	for ; h != none; h = a.older(h) {
		result = append(result, a.payload(h))
	}
	return result
}

func TestLink(t *testing.T) {
	assert := assert.New(t)
	a := arena{}
	x := a.alloc("x")
	y := a.alloc("y")

	a.link(x, y)
	assert.Equal(y, a.older(x))
	assert.Equal(x, a.newer(y))

	a.link(x, none)
	assert.Equal(none, a.older(x))
}

func TestHop(t *testing.T) {
	assert := assert.New(t)
	a := arena{}
	h := chain(&a, "c", "b", "a")

	assert.Equal(h[0], a.hop(h[0], 0))
	assert.Equal(h[2], a.hop(h[0], 2))
	assert.Equal(none, a.hop(h[0], 3))
	assert.Equal(h[0], a.hop(h[2], -2))
	assert.Equal(none, a.hop(h[2], -3))
	assert.Equal(none, a.hop(none, 1))
	assert.Equal(none, a.hop(none, -1))
}

func TestRemoveRangeStopsAtBoundary(t *testing.T) {
	assert := assert.New(t)
	a := arena{}
	h := chain(&a, "e", "d", "c", "b", "a")

	removed := a.removeRange(h[0], h[2])
	assert.Equal([]string{"e", "d"}, removed)
	assert.Equal([]string{"c", "b", "a"}, walk(&a, h[2]))
	assert.Equal(none, a.newer(h[2]))
	assert.Len(a.free, 2)
}

func TestRemoveRangeNoop(t *testing.T) {
	a := arena{}
	h := chain(&a, "b", "a")

	assert.Nil(t, a.removeRange(h[0], h[0]))
	assert.Nil(t, a.removeRange(none, none))
	assert.Equal(t, []string{"b", "a"}, walk(&a, h[0]))
}

func TestRemoveRangeToEnd(t *testing.T) {
	assert := assert.New(t)
	a := arena{}
	h := chain(&a, "c", "b", "a")

	removed := a.removeRange(h[1], none)
	assert.Equal([]string{"b", "a"}, removed)
	assert.Equal([]string{"c"}, walk(&a, h[0]))
}

func TestReleasedHandlePanics(t *testing.T) {
	a := arena{}
	h := a.alloc("x")
	a.release(h)
	assert.Panics(t, func() { a.payload(h) })
	assert.Panics(t, func() { a.older(handle(42)) })
}

func TestAllocReusesFreedSlot(t *testing.T) {
	a := arena{}
	x := a.alloc("x")
	a.alloc("y")
	a.release(x)

	z := a.alloc("z")
	assert.Equal(t, x, z)
	assert.Equal(t, "z", a.payload(z))
	assert.Equal(t, none, a.older(z))
}
