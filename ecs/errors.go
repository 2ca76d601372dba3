package ecs

import (
	"errors"
	"fmt"
)

var (
	// ErrNilSystem is returned by queue operations given a nil system.
	ErrNilSystem = errors.New("ecs: nil system")

	// ErrOrderOutOfRange is returned by AddSystemAt when the requested
	// position is outside [0, queue length].
	ErrOrderOutOfRange = errors.New("ecs: queue order out of range")

	// ErrComponentNotFound is returned by strict component reads and
	// mutable access when the entity holds no component of the requested
	// type in that world.
	ErrComponentNotFound = errors.New("ecs: component not found")
)

// SystemFault records a panic captured at the per-system boundary during a
// queued sweep. Faults never abort the sweep; they are collected on the
// SweepReport, counted in the world's stats, and logged.
type SystemFault struct {
	System string
	Queue  Queue
	Value  any
	Stack  []byte
}

func (f *SystemFault) Error() string {
	return fmt.Sprintf("ecs: system %s faulted in %s queue: %v", f.System, f.Queue, f.Value)
}
