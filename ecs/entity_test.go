package ecs_test

import (
	"fmt"
	"testing"

	"github.com/plus3/tick/ecs"
	"github.com/stretchr/testify/assert"
)

func TestEntityHandleEncoding(t *testing.T) {
	w := ecs.NewWorld("encoding")

	e := w.CreateEntity()
	assert.Equal(t, uint32(0), e.Index())
	assert.Equal(t, uint32(1), e.Generation())
	assert.NotEqual(t, ecs.Entity(0), e, "zero value must never be a live entity")
}

func TestCreateEntityNeverCollides(t *testing.T) {
	w := ecs.NewWorld("collide")

	seen := make(map[ecs.Entity]bool)
	for i := 0; i < 100; i++ {
		e := w.CreateEntity()
		assert.False(t, seen[e], "entity %#x handed out twice", uint64(e))
		seen[e] = true
	}
	assert.Equal(t, 100, w.EntityCount())
}

func TestDestroyEntity(t *testing.T) {
	w := ecs.NewWorld("destroy")

	e := w.CreateEntity()
	ecs.AddComponent(w, e, Position{X: 1})
	ecs.AddComponent(w, e, Health{Current: 10, Max: 10})

	assert.True(t, w.DestroyEntity(e))
	assert.False(t, w.Alive(e))
	assert.Equal(t, 0, w.EntityCount())

	// Components are evicted with the entity.
	assert.False(t, ecs.HasComponent[Position](w, e))
	assert.False(t, ecs.HasComponent[Health](w, e))

	// Double destroy is a no-op.
	assert.False(t, w.DestroyEntity(e))
}

func TestDestroyedSlotRecycledWithNewGeneration(t *testing.T) {
	w := ecs.NewWorld("recycle")

	old := w.CreateEntity()
	ecs.AddComponent(w, old, Counter{Value: 7})
	assert.True(t, w.DestroyEntity(old))

	fresh := w.CreateEntity()
	assert.Equal(t, old.Index(), fresh.Index(), "slot should be recycled")
	assert.NotEqual(t, old.Generation(), fresh.Generation())
	assert.NotEqual(t, old, fresh)

	// The stale handle resolves nowhere.
	assert.False(t, w.Alive(old))
	assert.False(t, ecs.HasComponent[Counter](w, old))
	_, err := ecs.GetComponent[Counter](w, old)
	assert.ErrorIs(t, err, ecs.ErrComponentNotFound)

	// Writing through the stale handle is a no-op.
	ecs.AddComponent(w, old, Counter{Value: 9})
	assert.False(t, ecs.HasComponent[Counter](w, fresh))
}

func TestDestroyForeignWorldEntity(t *testing.T) {
	a := ecs.NewWorld("a")
	b := ecs.NewWorld("b")

	e := a.CreateEntity()
	// Same numeric handle exists in b once b allocates, but a's handle is
	// not destroyable through b before then.
	assert.False(t, b.DestroyEntity(e))
	assert.True(t, a.Alive(e))
}

func TestEntityCountTracksChurn(t *testing.T) {
	w := ecs.NewWorld("churn")

	entities := make([]ecs.Entity, 0, 10)
	for i := 0; i < 10; i++ {
		entities = append(entities, w.CreateEntity())
	}
	assert.Equal(t, 10, w.EntityCount())

	for _, e := range entities[:4] {
		w.DestroyEntity(e)
	}
	assert.Equal(t, 6, w.EntityCount())

	for i := 0; i < 3; i++ {
		w.CreateEntity()
	}
	assert.Equal(t, 9, w.EntityCount())
}

func TestGenerationSurvivesRepeatedRecycling(t *testing.T) {
	w := ecs.NewWorld("generations")

	e := w.CreateEntity()
	idx := e.Index()
	for gen := 0; gen < 16; gen++ {
		assert.True(t, w.DestroyEntity(e))
		next := w.CreateEntity()
		assert.Equal(t, idx, next.Index())
		assert.Equal(t, e.Generation()+1, next.Generation(),
			fmt.Sprintf("generation should advance on recycle %d", gen))
		e = next
	}
}
