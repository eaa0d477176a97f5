package spawn

import (
	"github.com/milk9111/portalarena/ecs"
	"github.com/milk9111/portalarena/physics"
	"github.com/milk9111/portalarena/scene"
)

// DefaultCapacity is the number of spawned objects kept alive at once.
const DefaultCapacity = 30

// Entry ties a spawned entity to the resources it holds in the physics
// world and the scene.
type Entry struct {
	Entity ecs.Entity
	Body   physics.BodyID
	Node   scene.NodeID
}

// Pool is a bounded FIFO of spawned objects. Pushing past capacity evicts the
// oldest entry.
type Pool struct {
	capacity int
	entries  []Entry
}

func NewPool(capacity int) *Pool {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Pool{capacity: capacity, entries: make([]Entry, 0, capacity+1)}
}

// Push appends e. When the pool overflows, the oldest entry is removed and
// returned with ok set; the caller releases its resources.
func (p *Pool) Push(e Entry) (evicted Entry, ok bool) {
	p.entries = append(p.entries, e)
	if len(p.entries) <= p.capacity {
		return Entry{}, false
	}
	evicted = p.entries[0]
	copy(p.entries, p.entries[1:])
	p.entries = p.entries[:len(p.entries)-1]
	return evicted, true
}

// Entries returns the live entries, oldest first.
func (p *Pool) Entries() []Entry {
	return p.entries
}

func (p *Pool) Len() int {
	return len(p.entries)
}

func (p *Pool) Cap() int {
	return p.capacity
}
