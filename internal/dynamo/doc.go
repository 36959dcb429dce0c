// Package dynamo provides core simulation primitives for the flight-dynamics
// engine.
//
// The package defines the fundamental types shared by every layer:
//
//   - [State]: the 12-scalar rigid-body state (position, body velocity,
//     Euler attitude, body rates) with named indices
//   - [Controls]: the full flight control vector (brakes, risers, throttles,
//     deployment, plus the legacy delta/dirty channels)
//   - [System]: interface for the equations of motion (dX/dt = f(X, u, t))
//   - [Integrator]: fixed-step numerical integrator interface
//   - [Metric], [Observer]: per-step instrumentation hooks
//
// # Example
//
//	veh := vehicle.Canopy()
//	integ := integrators.NewRK4()
//	s := sim.New(vehicle.NewSystem(veh), integ, dynamo.Constant(dynamo.Controls{Deploy: 1}))
//	result, _ := s.Run(ctx, x0, cfg)
//
// # Thread Safety
//
// Simulator instances are NOT thread-safe. All kernel evaluation is pure:
// a step is a function of (state, controls) with no hidden mutable state,
// so independent simulations may run on separate goroutines.
package dynamo
