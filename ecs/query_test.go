package ecs_test

import (
	"testing"

	"github.com/plus3/tick/ecs"
	"github.com/stretchr/testify/assert"
)

func TestQueryWith(t *testing.T) {
	w := ecs.NewWorld("query-with")

	moving := w.CreateEntity()
	ecs.AddComponent(w, moving, Position{})
	ecs.AddComponent(w, moving, Velocity{DX: 1})

	parked := w.CreateEntity()
	ecs.AddComponent(w, parked, Position{})

	got := w.Query().With(ecs.C[Position](), ecs.C[Velocity]()).Execute()
	assert.Equal(t, []ecs.Entity{moving}, got)
}

func TestQueryWithout(t *testing.T) {
	w := ecs.NewWorld("query-without")

	player := w.CreateEntity()
	ecs.AddComponent(w, player, Position{})
	ecs.AddComponent(w, player, PlayerController{})

	npc := w.CreateEntity()
	ecs.AddComponent(w, npc, Position{})

	got := w.Query().
		With(ecs.C[Position]()).
		Without(ecs.C[PlayerController]()).
		Execute()
	assert.Equal(t, []ecs.Entity{npc}, got)
}

func TestQueryNoPredicatesMatchesAllLive(t *testing.T) {
	w := ecs.NewWorld("query-all")

	a := w.CreateEntity()
	b := w.CreateEntity()
	dead := w.CreateEntity()
	w.DestroyEntity(dead)

	got := w.Query().Execute()
	assert.ElementsMatch(t, []ecs.Entity{a, b}, got)
}

func TestQueryUnknownRequiredTypeMatchesNothing(t *testing.T) {
	w := ecs.NewWorld("query-unknown")
	e := w.CreateEntity()
	ecs.AddComponent(w, e, Position{})

	got := w.Query().With(ecs.C[Health]()).Execute()
	assert.Empty(t, got)
}

func TestQueryExecuteIsSnapshot(t *testing.T) {
	w := ecs.NewWorld("query-snapshot")

	e := w.CreateEntity()
	ecs.AddComponent(w, e, Counter{})

	got := w.Query().With(ecs.C[Counter]()).Execute()
	assert.Len(t, got, 1)

	// Mutating the population afterwards does not change the snapshot, and
	// re-execution re-evaluates from scratch.
	late := w.CreateEntity()
	ecs.AddComponent(w, late, Counter{})
	assert.Len(t, got, 1)
	assert.Len(t, w.Query().With(ecs.C[Counter]()).Execute(), 2)
}

func TestQueryMutatePopulationMidIteration(t *testing.T) {
	w := ecs.NewWorld("query-mutation")

	for i := 0; i < 8; i++ {
		e := w.CreateEntity()
		ecs.AddComponent(w, e, Counter{Value: i})
	}

	// Destroying entities while walking the snapshot must not skip,
	// duplicate, or crash.
	visited := 0
	for _, e := range w.Query().With(ecs.C[Counter]()).Execute() {
		visited++
		w.DestroyEntity(e)
	}
	assert.Equal(t, 8, visited)
	assert.Equal(t, 0, w.EntityCount())
}

func TestQueryExcludedTypeNeverAttached(t *testing.T) {
	w := ecs.NewWorld("query-exclude-unknown")
	e := w.CreateEntity()
	ecs.AddComponent(w, e, Position{})

	// Excluding a type no entity holds excludes nothing.
	got := w.Query().With(ecs.C[Position]()).Without(ecs.C[Tag]()).Execute()
	assert.Equal(t, []ecs.Entity{e}, got)
}
