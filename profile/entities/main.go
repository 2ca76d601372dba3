// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
	"github.com/pkg/profile"

	"github.com/plus3/tick/ecs"
)

type comp1 struct {
	V, W int64
}

type comp2 struct {
	V, W int64
}

func main() {
	rounds := 50
	iters := 1000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for range rounds {
		w := ecs.NewWorld("profile-entities")

		for range iters {
			spawned := make([]ecs.Entity, 0, numEntities)
			for range numEntities {
				e := w.CreateEntity()
				ecs.AddComponent(w, e, comp1{V: 1, W: 2})
				ecs.AddComponent(w, e, comp2{V: 3, W: 4})
				spawned = append(spawned, e)
			}
			for _, e := range spawned {
				w.DestroyEntity(e)
			}
		}
	}
}
