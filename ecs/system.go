package ecs

import (
	"fmt"
	"reflect"
)

// System represents a behavior that operates on a world's entities and
// components. User-defined systems implement this interface and may carry
// whatever state fields they need; state persists across executions for the
// life of the system instance.
type System interface {
	Execute(w *World)
}

// SystemName returns a diagnostic name for a system: its fmt.Stringer
// output when implemented, otherwise the concrete type name.
func SystemName(s System) string {
	if s == nil {
		return "<nil>"
	}
	if str, ok := s.(fmt.Stringer); ok {
		return str.String()
	}
	t := reflect.TypeOf(s)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Name() == "" {
		return t.String()
	}
	return t.Name()
}
