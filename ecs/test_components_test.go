package ecs_test

// Common test component types
type Position struct {
	X, Y, Z float32
}

type Velocity struct {
	DX, DY, DZ float32
}

type Health struct {
	Current int
	Max     int
}

type Counter struct {
	Value int
}

type Name struct {
	Value string
}

type PlayerController struct{}

// Custom primitive types for testing non-struct components
type Score int32
type Tag string
