// stress-gen emits the component and system fixtures for cmd/ecs-stress.
// The counts are baked into the generated file so the stress binary reports
// them without re-deriving anything at runtime.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"text/template"

	"golang.org/x/tools/imports"
)

const fileTemplate = `// Code generated by stress-gen; DO NOT EDIT.

package main

import (
	"math/rand"

	"github.com/plus3/tick/ecs"
)

const (
	stressComponentCount = {{.Components}}
	stressSystemCount    = {{.Systems}}
)

{{range $i := iter .Components}}
type StressComponent{{$i}} struct {
	A, B float64
}
{{end}}

var stressAttachers = [...]func(w *ecs.World, e ecs.Entity, rng *rand.Rand){
{{range $i := iter .Components}}	func(w *ecs.World, e ecs.Entity, rng *rand.Rand) {
		ecs.AddComponent(w, e, StressComponent{{$i}}{A: rng.Float64(), B: rng.Float64()})
	},
{{end}}}

// spawnStressEntity creates one entity holding 1 to stressComponentCount
// random components.
func spawnStressEntity(w *ecs.World, rng *rand.Rand) ecs.Entity {
	e := w.CreateEntity()
	n := rng.Intn(stressComponentCount) + 1
	for _, idx := range rng.Perm(stressComponentCount)[:n] {
		stressAttachers[idx](w, e, rng)
	}
	return e
}

{{range $i := iter .Systems}}
type StressSystem{{$i}} struct{}

func (StressSystem{{$i}}) Execute(w *ecs.World) {
	for _, e := range ecs.EntitiesWith[StressComponent{{$i}}](w) {
		if c, err := ecs.MutComponent[StressComponent{{$i}}](w, e); err == nil {
			c.A += c.B
		}
	}
}
{{end}}

// registerStressSystems queues the generated systems, alternating between
// the frame and fixed-interval queues.
func registerStressSystems(w *ecs.World) {
{{range $i := iter .Systems}}	w.AddSystem({{if even $i}}ecs.Update{{else}}ecs.FixedUpdate{{end}}, StressSystem{{$i}}{})
{{end}}}
`

func main() {
	components := flag.Int("components", 8, "Number of component types to generate.")
	systems := flag.Int("systems", 6, "Number of systems to generate; each reads the same-index component.")
	out := flag.String("out", "cmd/ecs-stress/fixtures_generated.go", "Output file path.")
	flag.Parse()

	if *systems > *components {
		fmt.Fprintf(os.Stderr, "stress-gen: systems (%d) cannot exceed components (%d)\n", *systems, *components)
		os.Exit(1)
	}

	tmpl, err := template.New("fixtures").Funcs(template.FuncMap{
		"iter": func(n int) []int {
			seq := make([]int, n)
			for i := range seq {
				seq[i] = i
			}
			return seq
		},
		"even": func(i int) bool { return i%2 == 0 },
	}).Parse(fileTemplate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "stress-gen: parse template: %v\n", err)
		os.Exit(1)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct{ Components, Systems int }{*components, *systems}); err != nil {
		fmt.Fprintf(os.Stderr, "stress-gen: execute template: %v\n", err)
		os.Exit(1)
	}

	// imports.Process both formats the output and prunes anything the
	// template left unused at small counts.
	formatted, err := imports.Process(*out, buf.Bytes(), nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "stress-gen: format: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, formatted, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "stress-gen: write %s: %v\n", *out, err)
		os.Exit(1)
	}
	fmt.Printf("stress-gen: wrote %s (%d components, %d systems)\n", *out, *components, *systems)
}
