package ecs

import (
	"reflect"

	"go.uber.org/zap"
)

// World is an isolated namespace of entities, component stores, and the two
// system queues. Nothing scoped to one world is visible from another, even
// when both hold numerically equal entity handles.
//
// Worlds are single-threaded: every operation runs to completion on the
// calling goroutine and no operation may be invoked concurrently.
type World struct {
	name   string
	pool   *entityPool
	stores map[reflect.Type]componentStore
	update *scheduler
	fixed  *scheduler
	log    *zap.Logger
}

// WorldOption configures a world at construction time.
type WorldOption func(*World)

// WithLogger sets the logger systems faults are reported through.
// Defaults to a no-op logger; faults are still recorded on sweep reports.
func WithLogger(log *zap.Logger) WorldOption {
	return func(w *World) {
		w.log = log
	}
}

// NewWorld creates a standalone world. Most callers obtain worlds through a
// Registry instead, which creates them lazily by name.
func NewWorld(name string, opts ...WorldOption) *World {
	w := &World{
		name:   name,
		pool:   newEntityPool(),
		stores: make(map[reflect.Type]componentStore),
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.update = newScheduler(w, Update)
	w.fixed = newScheduler(w, FixedUpdate)
	return w
}

// Name returns the registry name of the world. The default world's name is
// DefaultWorldName.
func (w *World) Name() string {
	return w.name
}

// CreateEntity allocates a new entity handle scoped to this world. Handles
// of destroyed entities are recycled with a bumped generation, so an
// allocation never collides with a live handle.
func (w *World) CreateEntity() Entity {
	return w.pool.create()
}

// DestroyEntity releases the entity and evicts all of its components from
// every store in this world. Destroying a dead, stale, or foreign-world
// handle is a no-op returning false.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.pool.destroy(e) {
		return false
	}
	for _, cs := range w.stores {
		cs.discard(e)
	}
	return true
}

// Alive reports whether e is a currently live handle of this world.
func (w *World) Alive(e Entity) bool {
	return w.pool.contains(e)
}

// EntityCount returns the number of currently live entities.
func (w *World) EntityCount() int {
	return w.pool.count()
}

// storeByType returns the store for t, or nil if no component of that type
// was ever attached in this world.
func (w *World) storeByType(t reflect.Type) componentStore {
	return w.stores[t]
}

// ComponentByType returns a copy of e's component of the given type through
// the type-erased surface. Prefer the generic GetComponent where the type is
// known statically.
func (w *World) ComponentByType(e Entity, t reflect.Type) (any, bool) {
	cs := w.storeByType(t)
	if cs == nil {
		return nil, false
	}
	ptr, ok := cs.mutAny(e)
	if !ok {
		return nil, false
	}
	return reflect.ValueOf(ptr).Elem().Interface(), true
}

// MutByType returns a pointer (as *T boxed in any) to e's component of the
// given type. The same validity contract as MutComponent applies.
func (w *World) MutByType(e Entity, t reflect.Type) (any, bool) {
	cs := w.storeByType(t)
	if cs == nil {
		return nil, false
	}
	return cs.mutAny(e)
}

// RemoveByType detaches e's component of the given type if present.
func (w *World) RemoveByType(e Entity, t reflect.Type) bool {
	cs := w.storeByType(t)
	if cs == nil {
		return false
	}
	return cs.discard(e)
}

// HasByType reports whether e holds a component of the given type.
func (w *World) HasByType(e Entity, t reflect.Type) bool {
	cs := w.storeByType(t)
	return cs != nil && cs.has(e)
}

// EntitiesByType enumerates all entities holding a component of the given
// type, in store slot order.
func (w *World) EntitiesByType(t reflect.Type) []Entity {
	cs := w.storeByType(t)
	if cs == nil {
		return nil
	}
	return cs.entities()
}
