package ecs

import (
	"github.com/kamstrup/intmap"
)

const storeBlockSize = 64

// componentStore is the type-erased surface a world holds per component type.
// The typed operations live on store[T] and the generic functions in
// component.go; this interface carries only what world-level bookkeeping and
// the reflect-typed surface need.
type componentStore interface {
	discard(Entity) bool
	has(Entity) bool
	entities() []Entity
	mutAny(Entity) (any, bool)
	count() int
}

// store holds every component of type T in one world. Values live in
// fixed-size blocks so a slot's address is stable until the block slice
// itself is regrown; entity-to-slot lookup goes through an integer-keyed map.
type store[T any] struct {
	index  *intmap.Map[Entity, int]
	blocks [][storeBlockSize]T
	filled [][storeBlockSize]bool
	owners [][storeBlockSize]Entity
	free   []int
	next   int
}

func newStore[T any]() *store[T] {
	return &store[T]{
		index: intmap.New[Entity, int](storeBlockSize),
	}
}

// set attaches or overwrites the component for e.
func (cs *store[T]) set(e Entity, value T) {
	if slot, ok := cs.index.Get(e); ok {
		cs.blocks[slot/storeBlockSize][slot%storeBlockSize] = value
		return
	}

	var slot int
	if n := len(cs.free); n > 0 {
		slot = cs.free[n-1]
		cs.free = cs.free[:n-1]
	} else {
		slot = cs.next
		cs.next++
		if slot/storeBlockSize >= len(cs.blocks) {
			cs.blocks = append(cs.blocks, [storeBlockSize]T{})
			cs.filled = append(cs.filled, [storeBlockSize]bool{})
			cs.owners = append(cs.owners, [storeBlockSize]Entity{})
		}
	}

	blockIdx, slotIdx := slot/storeBlockSize, slot%storeBlockSize
	cs.blocks[blockIdx][slotIdx] = value
	cs.filled[blockIdx][slotIdx] = true
	cs.owners[blockIdx][slotIdx] = e
	cs.index.Put(e, slot)
}

// get returns a copy of e's component.
func (cs *store[T]) get(e Entity) (T, bool) {
	slot, ok := cs.index.Get(e)
	if !ok {
		var zero T
		return zero, false
	}
	return cs.blocks[slot/storeBlockSize][slot%storeBlockSize], true
}

// mut returns a pointer into the slot holding e's component. The pointer is
// valid only until the next structural change of this store (slot reuse,
// block growth, entity destroy); retaining it past that is a caller error.
func (cs *store[T]) mut(e Entity) (*T, bool) {
	slot, ok := cs.index.Get(e)
	if !ok {
		return nil, false
	}
	return &cs.blocks[slot/storeBlockSize][slot%storeBlockSize], true
}

// discard detaches e's component, returning whether anything was removed.
func (cs *store[T]) discard(e Entity) bool {
	slot, ok := cs.index.Get(e)
	if !ok {
		return false
	}
	blockIdx, slotIdx := slot/storeBlockSize, slot%storeBlockSize
	var zero T
	cs.blocks[blockIdx][slotIdx] = zero
	cs.filled[blockIdx][slotIdx] = false
	cs.owners[blockIdx][slotIdx] = 0
	cs.free = append(cs.free, slot)
	cs.index.Del(e)
	return true
}

func (cs *store[T]) has(e Entity) bool {
	_, ok := cs.index.Get(e)
	return ok
}

// entities returns the owners of every filled slot in slot order.
func (cs *store[T]) entities() []Entity {
	result := make([]Entity, 0, cs.count())
	for slot := 0; slot < cs.next; slot++ {
		blockIdx, slotIdx := slot/storeBlockSize, slot%storeBlockSize
		if cs.filled[blockIdx][slotIdx] {
			result = append(result, cs.owners[blockIdx][slotIdx])
		}
	}
	return result
}

func (cs *store[T]) mutAny(e Entity) (any, bool) {
	ptr, ok := cs.mut(e)
	if !ok {
		return nil, false
	}
	return ptr, true
}

func (cs *store[T]) count() int {
	return cs.next - len(cs.free)
}
