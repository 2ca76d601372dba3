package ecs

import (
	"fmt"
	"reflect"
)

// storeFor returns the world's store for T, creating it when create is set.
func storeFor[T any](w *World, create bool) *store[T] {
	t := reflect.TypeFor[T]()
	if cs, ok := w.stores[t]; ok {
		return cs.(*store[T])
	}
	if !create {
		return nil
	}
	cs := newStore[T]()
	w.stores[t] = cs
	return cs
}

func notFound[T any](w *World, e Entity) error {
	return fmt.Errorf("%w: %s on entity %#x in world %q",
		ErrComponentNotFound, reflect.TypeFor[T]().String(), uint64(e), w.name)
}

// AddComponent attaches value to e under type T, overwriting any component
// of the same type already attached. Attaching to a dead or stale handle is
// a no-op.
func AddComponent[T any](w *World, e Entity, value T) {
	if !w.pool.contains(e) {
		return
	}
	storeFor[T](w, true).set(e, value)
}

// GetComponent returns a copy of e's component of type T. It fails with
// ErrComponentNotFound when the component is absent; use TryGetComponent for
// exploratory reads.
func GetComponent[T any](w *World, e Entity) (T, error) {
	if cs := storeFor[T](w, false); cs != nil {
		if value, ok := cs.get(e); ok {
			return value, nil
		}
	}
	var zero T
	return zero, notFound[T](w, e)
}

// TryGetComponent returns a copy of e's component of type T, reporting
// absence through the bool instead of an error.
func TryGetComponent[T any](w *World, e Entity) (T, bool) {
	if cs := storeFor[T](w, false); cs != nil {
		return cs.get(e)
	}
	var zero T
	return zero, false
}

// MutComponent returns a pointer granting in-place write access to e's
// component of type T; writes through it are visible to every later read
// without a separate set call.
//
// The pointer is valid for the current synchronous call chain only. It must
// not be retained across a structural change of the store — destroying the
// entity, removing the component, or attaching components of the same type
// to other entities may all relocate or recycle the slot.
func MutComponent[T any](w *World, e Entity) (*T, error) {
	if cs := storeFor[T](w, false); cs != nil {
		if ptr, ok := cs.mut(e); ok {
			return ptr, nil
		}
	}
	return nil, notFound[T](w, e)
}

// RemoveComponent detaches e's component of type T, returning whether
// anything was removed. Removing an absent component is not an error.
func RemoveComponent[T any](w *World, e Entity) bool {
	cs := storeFor[T](w, false)
	if cs == nil {
		return false
	}
	return cs.discard(e)
}

// HasComponent reports whether e holds a component of type T in w.
func HasComponent[T any](w *World, e Entity) bool {
	cs := storeFor[T](w, false)
	return cs != nil && cs.has(e)
}

// EntitiesWith enumerates all entities in w currently holding a component of
// type T, in store slot order. The slice is a snapshot owned by the caller.
func EntitiesWith[T any](w *World) []Entity {
	cs := storeFor[T](w, false)
	if cs == nil {
		return nil
	}
	return cs.entities()
}
