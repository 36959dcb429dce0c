package integrators

import (
	"math"
	"testing"

	"github.com/hartmandrector/polar-sub001/internal/dynamo"
)

// oscillator is a unit harmonic oscillator: x'' = -x. Its exact solution
// from (1, 0) is cos(t), which pins integrator accuracy.
type oscillator struct{}

func (o *oscillator) Derive(x dynamo.State, u dynamo.Controls, t float64) dynamo.State {
	return dynamo.State{x[1], -x[0]}
}

func (o *oscillator) StateDim() int { return 2 }

func integrate(integ dynamo.Integrator, x dynamo.State, dt float64, steps int) dynamo.State {
	dyn := &oscillator{}
	u := dynamo.Controls{}
	t := 0.0
	for i := 0; i < steps; i++ {
		x = integ.Step(dyn, x, u, t, dt)
		t += dt
	}
	return x
}

func TestRK4Accuracy(t *testing.T) {
	x := integrate(NewRK4(), dynamo.State{1, 0}, 0.01, 1000)
	want := math.Cos(10.0)
	if math.Abs(x[0]-want) > 1e-6 {
		t.Errorf("rk4 after 10s: got %f, want %f", x[0], want)
	}
}

func TestEulerFirstOrder(t *testing.T) {
	// Coarse Euler drifts but should stay in the right ballpark over a
	// quarter period.
	x := integrate(NewEuler(), dynamo.State{1, 0}, 0.001, 1571)
	if math.Abs(x[0]) > 0.01 {
		t.Errorf("euler quarter period: got %f, want ~0", x[0])
	}
}

func TestRK4BeatsEuler(t *testing.T) {
	dt := 0.05
	steps := 200
	want := math.Cos(10.0)

	rk4 := integrate(NewRK4(), dynamo.State{1, 0}, dt, steps)
	euler := integrate(NewEuler(), dynamo.State{1, 0}, dt, steps)

	if math.Abs(rk4[0]-want) >= math.Abs(euler[0]-want) {
		t.Errorf("rk4 error %e should beat euler error %e",
			math.Abs(rk4[0]-want), math.Abs(euler[0]-want))
	}
}

func TestEulerRK4SingleStepAgreement(t *testing.T) {
	// On one small step of a smooth system the two methods agree to
	// first order: their gap is dominated by Euler's O(dt^2) local
	// truncation error, so halving dt shrinks it about fourfold.
	gap := func(dt float64) float64 {
		e := integrate(NewEuler(), dynamo.State{1, 0}, dt, 1)
		r := integrate(NewRK4(), dynamo.State{1, 0}, dt, 1)
		return e.Sub(r).Norm()
	}

	g1 := gap(0.1)
	g2 := gap(0.05)

	if g1 > 0.1*0.1 {
		t.Errorf("single-step gap %e too large for dt=0.1", g1)
	}
	ratio := g1 / g2
	if ratio < 3.5 || ratio > 4.5 {
		t.Errorf("gap ratio on halved dt = %f, want ~4 (O(dt^2))", ratio)
	}
}

func TestStepDoesNotMutateInput(t *testing.T) {
	x := dynamo.State{1, 0}
	orig := x.Clone()

	for _, integ := range []dynamo.Integrator{NewEuler(), NewRK4()} {
		_ = integ.Step(&oscillator{}, x, dynamo.Controls{}, 0, 0.1)
		if x[0] != orig[0] || x[1] != orig[1] {
			t.Errorf("integrator mutated its input state: %v", x)
		}
	}
}

func TestRK4ScratchReuse(t *testing.T) {
	// Repeated steps on one instance must not accumulate state between
	// calls: two fresh instances and one reused instance agree.
	a := NewRK4()
	xa := integrate(a, dynamo.State{1, 0}, 0.01, 100)
	xa2 := integrate(a, dynamo.State{1, 0}, 0.01, 100)
	if xa[0] != xa2[0] || xa[1] != xa2[1] {
		t.Errorf("reused rk4 diverged: %v vs %v", xa, xa2)
	}
}

func TestRegistry(t *testing.T) {
	if _, ok := New("euler").(*Euler); !ok {
		t.Error("registry should return euler by name")
	}
	if _, ok := New("rk4").(*RK4); !ok {
		t.Error("registry should return rk4 by name")
	}
	if _, ok := New("").(*RK4); !ok {
		t.Error("registry should default to rk4")
	}
}
