// Profiling:
// go build ./profile/query
// go tool pprof -http=":8000" -nodefraction=0.001 ./query cpu.pprof

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

type tag struct{}

func main() {
	iters := 10000
	entities := 1000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(iters, entities)
	p.Stop()
}

func run(iters, numEntities int) {
	w := ecs.NewWorld("profile-query")

	for i := range numEntities {
		e := w.CreateEntity()
		ecs.AddComponent(w, e, comp1{V: int64(i)})
		if i%2 == 0 {
			ecs.AddComponent(w, e, comp2{W: int64(i)})
		}
		if i%7 == 0 {
			ecs.AddComponent(w, e, tag{})
		}
	}

	query := w.Query().
		With(ecs.C[comp1](), ecs.C[comp2]()).
		Without(ecs.C[tag]())

	for range iters {
		for _, e := range query.Execute() {
			c1, err := ecs.MutComponent[comp1](w, e)
			if err != nil {
				continue
			}
			c2, _ := ecs.TryGetComponent[comp2](w, e)
			c1.V += c2.V
			c1.W += c2.W
		}
	}
}
