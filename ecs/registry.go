package ecs

import "sort"

// DefaultWorldName is the reserved name of the implicit default world.
const DefaultWorldName = ""

// Registry maps world names to world instances. Worlds are created lazily on
// first request and live until the registry itself is dropped; there is no
// implicit destruction or merging.
type Registry struct {
	worlds map[string]*World
	opts   []WorldOption
}

// NewRegistry creates an empty registry. The options are applied to every
// world the registry realizes.
func NewRegistry(opts ...WorldOption) *Registry {
	return &Registry{
		worlds: make(map[string]*World),
		opts:   opts,
	}
}

// World returns the world registered under name, creating it on first
// request. Creation is idempotent per name; repeated calls return the same
// instance.
func (r *Registry) World(name string) *World {
	if w, ok := r.worlds[name]; ok {
		return w
	}
	w := NewWorld(name, r.opts...)
	r.worlds[name] = w
	return w
}

// Default returns the implicit default world, creating it on first request.
func (r *Registry) Default() *World {
	return r.World(DefaultWorldName)
}

// WorldCount reports how many worlds have been realized so far. Only worlds
// actually requested count; the default world counts once it has been.
func (r *Registry) WorldCount() int {
	return len(r.worlds)
}

// Names returns the realized world names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.worlds))
	for name := range r.worlds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// defaultRegistry backs the package-level convenience surface. It is
// constructed on package init and torn down only by explicit ResetRegistry.
var defaultRegistry = NewRegistry()

// Default returns the process-wide default world.
func Default() *World {
	return defaultRegistry.Default()
}

// GetWorld returns the process-wide world registered under name, creating it
// on first request.
func GetWorld(name string) *World {
	return defaultRegistry.World(name)
}

// WorldCount reports how many process-wide worlds have been realized.
func WorldCount() int {
	return defaultRegistry.WorldCount()
}

// ResetRegistry replaces the process-wide registry with a fresh one built
// with the given options, dropping every world it held. Intended for tests
// and explicit process teardown.
func ResetRegistry(opts ...WorldOption) {
	defaultRegistry = NewRegistry(opts...)
}
