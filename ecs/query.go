package ecs

import "reflect"

// C returns the type tag for component type T, for use with Query.With and
// Query.Without.
func C[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// Query is a fluent composition filter over one world's entity population.
// An entity matches when it holds a component of every included type and
// none of the excluded types.
type Query struct {
	world   *World
	include []reflect.Type
	exclude []reflect.Type
}

// Query starts a new filter against this world.
func (w *World) Query() *Query {
	return &Query{world: w}
}

// With adds required component types to the filter.
func (q *Query) With(types ...reflect.Type) *Query {
	q.include = append(q.include, types...)
	return q
}

// Without adds excluded component types to the filter.
func (q *Query) Without(types ...reflect.Type) *Query {
	q.exclude = append(q.exclude, types...)
	return q
}

// Execute evaluates the filter eagerly against the world's state at the
// moment of the call and returns the matching entities. The slice is a
// snapshot: mutating the world afterwards does not change it, and re-running
// the query requires calling Execute again. With no predicates every live
// entity matches.
func (q *Query) Execute() []Entity {
	candidates := q.candidates()
	result := make([]Entity, 0, len(candidates))

next:
	for _, e := range candidates {
		for _, t := range q.include {
			if !q.world.HasByType(e, t) {
				continue next
			}
		}
		for _, t := range q.exclude {
			if q.world.HasByType(e, t) {
				continue next
			}
		}
		result = append(result, e)
	}
	return result
}

// candidates picks the cheapest base population to scan: the smallest
// included store, or the whole live population when nothing is required.
func (q *Query) candidates() []Entity {
	if len(q.include) == 0 {
		return q.world.pool.live()
	}

	var smallest componentStore
	for _, t := range q.include {
		cs := q.world.storeByType(t)
		if cs == nil {
			// A required type no entity holds: nothing can match.
			return nil
		}
		if smallest == nil || cs.count() < smallest.count() {
			smallest = cs
		}
	}
	return smallest.entities()
}
