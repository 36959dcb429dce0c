package integrators

import "github.com/hartmandrector/polar-sub001/internal/dynamo"

// New returns the integrator for a config name, defaulting to RK4.
func New(name string) dynamo.Integrator {
	switch name {
	case "euler":
		return NewEuler()
	default:
		return NewRK4()
	}
}
