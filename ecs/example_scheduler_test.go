package ecs_test

import (
	"fmt"

	"github.com/plus3/tick/ecs"
)

type RegenSystem struct {
	Rate int
}

func (s *RegenSystem) Execute(w *ecs.World) {
	for _, e := range ecs.EntitiesWith[Health](w) {
		hp, err := ecs.MutComponent[Health](w, e)
		if err != nil {
			continue
		}
		hp.Current += s.Rate
		if hp.Current > hp.Max {
			hp.Current = hp.Max
		}
	}
}

// ExampleWorld_RunQueue demonstrates the queue-driven execution model: the
// host tick source calls RunQueue once per frame (Update) or per fixed
// interval (FixedUpdate); systems run in queue order on the calling
// goroutine.
func ExampleWorld_RunQueue() {
	world := ecs.NewWorld("loop")

	wounded := world.CreateEntity()
	ecs.AddComponent(world, wounded, Health{Current: 90, Max: 100})

	regen := &RegenSystem{Rate: 5}
	world.AddSystem(ecs.Update, regen)

	for frame := 0; frame < 3; frame++ {
		world.RunQueue(ecs.Update)
	}

	hp, _ := ecs.GetComponent[Health](world, wounded)
	fmt.Printf("health after 3 frames: %d\n", hp.Current)

	// Output:
	// health after 3 frames: 100
}

// ExampleWorld_ExecuteOnce demonstrates one-shot execution outside the
// queues, typically for setup or manual triggers.
func ExampleWorld_ExecuteOnce() {
	world := ecs.NewWorld("oneshot")

	wounded := world.CreateEntity()
	ecs.AddComponent(world, wounded, Health{Current: 10, Max: 100})

	world.ExecuteOnce(&RegenSystem{Rate: 50})

	hp, _ := ecs.GetComponent[Health](world, wounded)
	fmt.Printf("health: %d\n", hp.Current)
	fmt.Printf("queued systems: %d\n", world.Systems(ecs.Update).Len())

	// Output:
	// health: 60
	// queued systems: 0
}
