package dynamo

import (
	"math"
	"testing"
)

func TestStateCloneIndependent(t *testing.T) {
	x := NewState()
	x[VelU] = 10

	y := x.Clone()
	y[VelU] = 20

	if x[VelU] != 10 {
		t.Errorf("clone should not alias: %f", x[VelU])
	}
}

func TestStateIsValid(t *testing.T) {
	x := NewState()
	if !x.IsValid() {
		t.Error("zero state should be valid")
	}

	x[RateP] = math.NaN()
	if x.IsValid() {
		t.Error("NaN state should be invalid")
	}

	x[RateP] = math.Inf(1)
	if x.IsValid() {
		t.Error("Inf state should be invalid")
	}
}

func TestStateAirspeed(t *testing.T) {
	x := NewState()
	x[VelU] = 3
	x[VelV] = 4
	if math.Abs(x.Airspeed()-5) > 1e-12 {
		t.Errorf("airspeed: got %f, want 5", x.Airspeed())
	}
}

func TestStateAltitude(t *testing.T) {
	x := NewState()
	x[PosDown] = -800
	if x.Altitude() != 800 {
		t.Errorf("altitude: got %f, want 800", x.Altitude())
	}
}

func TestStateArithmetic(t *testing.T) {
	x := State{1, 2, 3}
	y := State{4, 5, 6}

	sum := x.Add(y)
	if sum[0] != 5 || sum[2] != 9 {
		t.Errorf("add: %v", sum)
	}

	diff := y.Sub(x)
	if diff[0] != 3 || diff[2] != 3 {
		t.Errorf("sub: %v", diff)
	}

	scaled := x.Scale(2)
	if scaled[0] != 2 || scaled[2] != 6 {
		t.Errorf("scale: %v", scaled)
	}

	// Originals untouched.
	if x[0] != 1 || y[0] != 4 {
		t.Error("arithmetic should not mutate operands")
	}
}

func TestFlightStateRoundTrip(t *testing.T) {
	s := NewState()
	s[PosNorth] = 150
	s[PosDown] = -1200
	s[VelU] = 12
	s[VelW] = 1.5
	s[EulerPitch] = -10 * math.Pi / 180
	s[RateQ] = 0.2

	f := s.Flight()
	if f.Altitude != 1200 {
		t.Errorf("altitude = %v, want 1200", f.Altitude)
	}
	if math.Abs(f.Pitch-(-10)) > 1e-9 {
		t.Errorf("pitch = %v deg, want -10", f.Pitch)
	}

	back := f.Vector()
	for i := range s {
		if math.Abs(back[i]-s[i]) > 1e-12 {
			t.Errorf("index %d: round trip %v != %v", i, back[i], s[i])
		}
	}
}

func TestConstantProvider(t *testing.T) {
	u := Controls{BrakeLeft: 0.5, Deploy: 1}
	p := Constant(u)

	got := p.Controls(NewState(), 3.7)
	if got != u {
		t.Errorf("constant provider should ignore state and time: %+v", got)
	}
}
