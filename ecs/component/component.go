// Package component declares the components of the arena and the typed
// handles the world stores them under.
package component

import (
	"errors"
	"fmt"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID keys one component store. Zero is never handed out.
type ComponentID uint32

func (id ComponentID) Valid() bool {
	return id != 0
}

var nextComponentID atomic.Uint32

// ComponentHandle ties a Go type to its store. Declare one per type at
// package level, e.g. var TTLComponent = NewComponent[TTL]().
type ComponentHandle[T any] struct {
	id   ComponentID
	name string
}

func NewComponent[T any]() ComponentHandle[T] {
	var zero T
	return ComponentHandle[T]{
		id:   ComponentID(nextComponentID.Add(1)),
		name: fmt.Sprintf("%T", zero),
	}
}

func (h ComponentHandle[T]) ID() ComponentID {
	return h.id
}

// String names the component type, for errors and logs.
func (h ComponentHandle[T]) String() string {
	return h.name
}
