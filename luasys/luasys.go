// Package luasys adapts Lua chunks into ECS systems. A script defines an
// update(world) function; the world argument is a table of accessors over
// the component types the host has bound by name. Script faults raised
// during queued execution surface as ordinary system faults, so sweep
// isolation applies; Run reports them as errors for direct callers.
package luasys

import (
	"fmt"
	"reflect"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/plus3/tick/ecs"
)

// binding ties a script-visible component name to its Go type. addZero keeps
// a typed attach path without reflection at call time.
type binding struct {
	typ     reflect.Type
	addZero func(w *ecs.World, e ecs.Entity)
}

// Script is a stateful system whose behavior lives in a Lua chunk. One VM
// per script; Lua globals persist across executions, so scripts can carry
// state the same way a Go system carries fields.
//
// Entity handles cross the boundary as Lua numbers. float64 holds them
// exactly while the generation stays below 2^21, which covers any realistic
// amount of recycling.
type Script struct {
	name     string
	vm       *lua.LState
	log      *zap.Logger
	bindings map[string]binding
}

// Option configures a Script at construction time.
type Option func(*Script)

// WithLogger sets the logger script faults are reported through.
func WithLogger(log *zap.Logger) Option {
	return func(s *Script) {
		s.log = log
	}
}

// New compiles source and verifies it defines an update function.
func New(name, source string, opts ...Option) (*Script, error) {
	s := &Script{
		name:     name,
		vm:       lua.NewState(),
		log:      zap.NewNop(),
		bindings: make(map[string]binding),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.vm.DoString(source); err != nil {
		s.vm.Close()
		return nil, fmt.Errorf("luasys: load %s: %w", name, err)
	}
	if s.vm.GetGlobal("update") == lua.LNil {
		s.vm.Close()
		return nil, fmt.Errorf("luasys: script %s defines no update function", name)
	}
	return s, nil
}

// Load reads and compiles a script file.
func Load(name, path string, opts ...Option) (*Script, error) {
	s := &Script{
		name:     name,
		vm:       lua.NewState(),
		log:      zap.NewNop(),
		bindings: make(map[string]binding),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.vm.DoFile(path); err != nil {
		s.vm.Close()
		return nil, fmt.Errorf("luasys: load %s: %w", path, err)
	}
	if s.vm.GetGlobal("update") == lua.LNil {
		s.vm.Close()
		return nil, fmt.Errorf("luasys: script %s defines no update function", name)
	}
	return s, nil
}

// Bind exposes component type T to the script under the given name.
func Bind[T any](s *Script, name string) {
	s.bindings[name] = binding{
		typ: reflect.TypeFor[T](),
		addZero: func(w *ecs.World, e ecs.Entity) {
			var zero T
			ecs.AddComponent(w, e, zero)
		},
	}
}

// Close releases the Lua VM. The script must not be executed afterwards.
func (s *Script) Close() {
	s.vm.Close()
}

func (s *Script) String() string {
	return "luasys.Script(" + s.name + ")"
}

// Execute runs the script's update function against w. A script error
// panics so that queued sweeps capture it at the per-system boundary.
func (s *Script) Execute(w *ecs.World) {
	if err := s.Run(w); err != nil {
		panic(err)
	}
}

// Run executes update(world) and returns script errors to the caller.
// Use this for one-shot invocation outside a queue.
func (s *Script) Run(w *ecs.World) error {
	fn := s.vm.GetGlobal("update")
	if fn == lua.LNil {
		return fmt.Errorf("luasys: script %s lost its update function", s.name)
	}

	err := s.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	}, s.worldAPI(w))
	if err != nil {
		s.log.Error("lua system error",
			zap.String("script", s.name),
			zap.String("world", w.Name()),
			zap.Error(err))
		return fmt.Errorf("luasys: %s: %w", s.name, err)
	}
	return nil
}

func (s *Script) mustBinding(L *lua.LState, name string) binding {
	b, ok := s.bindings[name]
	if !ok {
		L.RaiseError("unbound component type %q", name)
	}
	return b
}

func checkEntity(L *lua.LState, n int) ecs.Entity {
	return ecs.Entity(uint64(L.CheckNumber(n)))
}

// worldAPI builds the accessor table handed to update.
func (s *Script) worldAPI(w *ecs.World) *lua.LTable {
	t := s.vm.NewTable()

	t.RawSetString("entities", s.vm.NewFunction(func(L *lua.LState) int {
		b := s.mustBinding(L, L.CheckString(1))
		result := L.NewTable()
		for i, e := range w.EntitiesByType(b.typ) {
			result.RawSetInt(i+1, lua.LNumber(e))
		}
		L.Push(result)
		return 1
	}))

	t.RawSetString("has", s.vm.NewFunction(func(L *lua.LState) int {
		e := checkEntity(L, 1)
		b := s.mustBinding(L, L.CheckString(2))
		L.Push(lua.LBool(w.HasByType(e, b.typ)))
		return 1
	}))

	t.RawSetString("get", s.vm.NewFunction(func(L *lua.LState) int {
		e := checkEntity(L, 1)
		b := s.mustBinding(L, L.CheckString(2))
		field := L.CheckString(3)
		ptr, ok := w.MutByType(e, b.typ)
		if !ok {
			L.RaiseError("entity %d has no %s component", uint64(e), b.typ)
		}
		fv := reflect.ValueOf(ptr).Elem().FieldByName(field)
		if !fv.IsValid() {
			L.RaiseError("component %s has no field %q", b.typ, field)
		}
		L.Push(fieldToLua(L, fv))
		return 1
	}))

	t.RawSetString("set", s.vm.NewFunction(func(L *lua.LState) int {
		e := checkEntity(L, 1)
		b := s.mustBinding(L, L.CheckString(2))
		field := L.CheckString(3)
		value := L.CheckAny(4)
		ptr, ok := w.MutByType(e, b.typ)
		if !ok {
			L.RaiseError("entity %d has no %s component", uint64(e), b.typ)
		}
		fv := reflect.ValueOf(ptr).Elem().FieldByName(field)
		if !fv.IsValid() || !fv.CanSet() {
			L.RaiseError("component %s has no settable field %q", b.typ, field)
		}
		setFieldFromLua(L, fv, value)
		return 0
	}))

	t.RawSetString("add", s.vm.NewFunction(func(L *lua.LState) int {
		e := checkEntity(L, 1)
		b := s.mustBinding(L, L.CheckString(2))
		b.addZero(w, e)
		return 0
	}))

	t.RawSetString("remove", s.vm.NewFunction(func(L *lua.LState) int {
		e := checkEntity(L, 1)
		b := s.mustBinding(L, L.CheckString(2))
		L.Push(lua.LBool(w.RemoveByType(e, b.typ)))
		return 1
	}))

	t.RawSetString("spawn", s.vm.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LNumber(w.CreateEntity()))
		return 1
	}))

	t.RawSetString("destroy", s.vm.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LBool(w.DestroyEntity(checkEntity(L, 1))))
		return 1
	}))

	t.RawSetString("count", s.vm.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LNumber(w.EntityCount()))
		return 1
	}))

	return t
}

func fieldToLua(L *lua.LState, fv reflect.Value) lua.LValue {
	switch fv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return lua.LNumber(fv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return lua.LNumber(fv.Uint())
	case reflect.Float32, reflect.Float64:
		return lua.LNumber(fv.Float())
	case reflect.Bool:
		return lua.LBool(fv.Bool())
	case reflect.String:
		return lua.LString(fv.String())
	default:
		L.RaiseError("unsupported field kind %s", fv.Kind())
		return lua.LNil
	}
}

func setFieldFromLua(L *lua.LState, fv reflect.Value, value lua.LValue) {
	switch fv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		fv.SetInt(int64(lua.LVAsNumber(value)))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		fv.SetUint(uint64(lua.LVAsNumber(value)))
	case reflect.Float32, reflect.Float64:
		fv.SetFloat(float64(lua.LVAsNumber(value)))
	case reflect.Bool:
		fv.SetBool(lua.LVAsBool(value))
	case reflect.String:
		fv.SetString(lua.LVAsString(value))
	default:
		L.RaiseError("unsupported field kind %s", fv.Kind())
	}
}
