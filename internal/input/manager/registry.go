package manager

import (
	"github.com/dshills/aurora/internal/input"
	"github.com/dshills/aurora/internal/input/event"

	"github.com/google/uuid"
)

// Handler consumes one dispatched event. Returning false stops dispatch of
// that event to any further handler.
type Handler func(ev *event.Event) bool

// handlerEntry pairs a handler with its registration token.
type handlerEntry struct {
	id uuid.UUID
	fn Handler
}

// registry stores global and per-node handlers in registration order.
// Node handlers are exact-key-matched: a handler registered on one node
// never runs for another node's events.
type registry struct {
	global []handlerEntry
	nodes  map[input.NodeID][]handlerEntry
}

func newRegistry() *registry {
	return &registry{
		nodes: make(map[input.NodeID][]handlerEntry),
	}
}

// addGlobal registers a handler for every dispatched event and returns its
// removal token.
func (r *registry) addGlobal(fn Handler) uuid.UUID {
	id := uuid.New()
	r.global = append(r.global, handlerEntry{id: id, fn: fn})
	return id
}

// removeGlobal unregisters a global handler. Unknown tokens are a no-op.
func (r *registry) removeGlobal(id uuid.UUID) {
	for i, entry := range r.global {
		if entry.id == id {
			r.global = append(r.global[:i], r.global[i+1:]...)
			return
		}
	}
}

// addNode registers a handler for events targeted at one node and returns
// its removal token.
func (r *registry) addNode(node input.NodeID, fn Handler) uuid.UUID {
	id := uuid.New()
	r.nodes[node] = append(r.nodes[node], handlerEntry{id: id, fn: fn})
	return id
}

// removeNode unregisters a per-node handler. Unknown nodes or tokens are a
// no-op.
func (r *registry) removeNode(node input.NodeID, id uuid.UUID) {
	entries := r.nodes[node]
	for i, entry := range entries {
		if entry.id == id {
			entries = append(entries[:i], entries[i+1:]...)
			if len(entries) == 0 {
				delete(r.nodes, node)
			} else {
				r.nodes[node] = entries
			}
			return
		}
	}
}

func (r *registry) globalEntries() []handlerEntry {
	return r.global
}

func (r *registry) nodeEntries(node input.NodeID) []handlerEntry {
	return r.nodes[node]
}
