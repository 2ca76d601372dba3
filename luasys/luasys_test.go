package luasys_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/tick/ecs"
	"github.com/plus3/tick/luasys"
)

type Counter struct {
	Value int
}

type Position struct {
	X, Y float64
}

type Velocity struct {
	DX, DY float64
}

const incrementScript = `
function update(world)
	for _, e in ipairs(world.entities("counter")) do
		world.set(e, "counter", "Value", world.get(e, "counter", "Value") + 1)
	end
end
`

func TestScriptMutatesComponents(t *testing.T) {
	sys, err := luasys.New("increment", incrementScript)
	require.NoError(t, err)
	defer sys.Close()
	luasys.Bind[Counter](sys, "counter")

	w := ecs.NewWorld("lua")
	e := w.CreateEntity()
	ecs.AddComponent(w, e, Counter{Value: 0})

	require.NoError(t, w.AddSystem(ecs.Update, sys))
	for i := 0; i < 3; i++ {
		report := w.RunQueue(ecs.Update)
		require.False(t, report.Faulted())
	}

	c, err := ecs.GetComponent[Counter](w, e)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Value)
}

func TestScriptMovesEntities(t *testing.T) {
	const moveScript = `
function update(world)
	for _, e in ipairs(world.entities("pos")) do
		if world.has(e, "vel") then
			world.set(e, "pos", "X", world.get(e, "pos", "X") + world.get(e, "vel", "DX"))
			world.set(e, "pos", "Y", world.get(e, "pos", "Y") + world.get(e, "vel", "DY"))
		end
	end
end
`
	sys, err := luasys.New("move", moveScript)
	require.NoError(t, err)
	defer sys.Close()
	luasys.Bind[Position](sys, "pos")
	luasys.Bind[Velocity](sys, "vel")

	w := ecs.NewWorld("lua-move")
	e := w.CreateEntity()
	ecs.AddComponent(w, e, Position{})
	ecs.AddComponent(w, e, Velocity{DX: 1, DY: 2})

	require.NoError(t, sys.Run(w))
	require.NoError(t, sys.Run(w))

	pos, err := ecs.GetComponent[Position](w, e)
	require.NoError(t, err)
	assert.Equal(t, Position{X: 2, Y: 4}, pos)
}

func TestScriptSpawnAndDestroy(t *testing.T) {
	const script = `
function update(world)
	local e = world.spawn()
	world.add(e, "counter")
	world.set(e, "counter", "Value", 7)
	spawned = e
end
`
	sys, err := luasys.New("spawner", script)
	require.NoError(t, err)
	defer sys.Close()
	luasys.Bind[Counter](sys, "counter")

	w := ecs.NewWorld("lua-spawn")
	require.NoError(t, sys.Run(w))

	assert.Equal(t, 1, w.EntityCount())
	entities := ecs.EntitiesWith[Counter](w)
	require.Len(t, entities, 1)
	c, err := ecs.GetComponent[Counter](w, entities[0])
	require.NoError(t, err)
	assert.Equal(t, 7, c.Value)
}

func TestScriptErrorIsIsolatedInQueue(t *testing.T) {
	sys, err := luasys.New("broken", `
function update(world)
	error("script blew up")
end
`)
	require.NoError(t, err)
	defer sys.Close()

	w := ecs.NewWorld("lua-fault")
	require.NoError(t, w.AddSystem(ecs.Update, sys))

	report := w.RunQueue(ecs.Update)
	require.True(t, report.Faulted())
	assert.Equal(t, "luasys.Script(broken)", report.Faults[0].System)

	// Direct invocation reports the error instead of panicking.
	assert.Error(t, sys.Run(w))
}

func TestNewRejectsBadScripts(t *testing.T) {
	_, err := luasys.New("syntax", `function update( world`)
	assert.Error(t, err)

	_, err = luasys.New("no-update", `x = 1`)
	assert.ErrorContains(t, err, "no update function")
}

func TestScriptStatePersistsAcrossExecutions(t *testing.T) {
	sys, err := luasys.New("stateful", `
ticks = 0
function update(world)
	ticks = ticks + 1
	if ticks == 3 then
		local e = world.spawn()
		world.add(e, "counter")
	end
end
`)
	require.NoError(t, err)
	defer sys.Close()
	luasys.Bind[Counter](sys, "counter")

	w := ecs.NewWorld("lua-state")
	w.AddSystem(ecs.FixedUpdate, sys)

	for i := 0; i < 3; i++ {
		assert.False(t, w.RunQueue(ecs.FixedUpdate).Faulted())
	}
	assert.Equal(t, 1, w.EntityCount(), "script state must persist across sweeps")
}
