package history

import "fmt"

// handle addresses a node slot in an arena. Handles stay valid until the node is released.
type handle int

const none handle = -1

type node struct {
	payload string
	// older owns the rest of the chain. newer is only used for walking back towards top
	older handle
	newer handle
	live  bool
}

// arena stores every node of a history. Freed slots are recycled through free
type arena struct {
	nodes []node
	free  []handle
}

func (a *arena) alloc(payload string) handle {
	n := node{payload: payload, older: none, newer: none, live: true}
	if len(a.free) > 0 {
		h := a.free[len(a.free)-1]
		a.free = a.free[:len(a.free)-1]
		a.nodes[h] = n
		return h
	}
	a.nodes = append(a.nodes, n)
	return handle(len(a.nodes) - 1)
}

// release frees exactly one node. It never touches the nodes h is linked to.
func (a *arena) release(h handle) {
	a.mustBeLive(h)
	a.nodes[h] = node{older: none, newer: none}
	a.free = append(a.free, h)
}

func (a *arena) reset() {
	a.nodes = a.nodes[:0]
	a.free = a.free[:0]
}

func (a *arena) mustBeLive(h handle) {
	if h < 0 || int(h) >= len(a.nodes) || !a.nodes[h].live {
		panic(fmt.Sprintf("history: invalid node handle %d", h))
	}
}

func (a *arena) payload(h handle) string {
	a.mustBeLive(h)
	return a.nodes[h].payload
}

func (a *arena) older(h handle) handle {
	a.mustBeLive(h)
	return a.nodes[h].older
}

func (a *arena) newer(h handle) handle {
	a.mustBeLive(h)
	return a.nodes[h].newer
}

// link points h's older link at target and, if target exists, target's newer link back at h
func (a *arena) link(h, target handle) {
	a.mustBeLive(h)
	a.nodes[h].older = target
	if target != none {
		a.mustBeLive(target)
		a.nodes[target].newer = h
	}
}

// hop walks n steps from h, towards older entries for n > 0 and towards newer ones for n < 0.
// Running past either end of the chain yields none.
func (a *arena) hop(h handle, n int) handle {
	for h != none && n > 0 {
		h = a.older(h)
		n--
	}
	for h != none && n < 0 {
		h = a.newer(h)
		n++
	}
	return h
}

// removeRange releases every node from h in the older direction up to, but not including, boundary.
// The link into boundary is cut before anything is released, so nothing at or beyond boundary
// is affected. The removed payloads are returned newest first.
func (a *arena) removeRange(h, boundary handle) []string {
	if h == boundary || h == none {
		return nil
	}
	if boundary != none {
		if prev := a.newer(boundary); prev != none {
			a.nodes[prev].older = none
		}
		a.nodes[boundary].newer = none
	}
	if prev := a.newer(h); prev != none {
		a.nodes[prev].older = none
	}

	var removed []string
	for h != none {
		next := a.older(h)
		removed = append(removed, a.payload(h))
		a.release(h)
		h = next
	}
	return removed
}
