package metrics

import (
	"math"
	"testing"

	"github.com/hartmandrector/polar-sub001/internal/dynamo"
)

func stateWith(u, v, w float64) dynamo.State {
	x := dynamo.NewState()
	x[dynamo.VelU] = u
	x[dynamo.VelV] = v
	x[dynamo.VelW] = w
	return x
}

func TestMaxMinSpeed(t *testing.T) {
	max := NewMaxSpeed()
	min := NewMinSpeed()

	for _, speed := range []float64{10, 14, 8, 12} {
		x := stateWith(speed, 0, 0)
		max.Observe(x, dynamo.Controls{}, 0)
		min.Observe(x, dynamo.Controls{}, 0)
	}

	if max.Value() != 14 {
		t.Errorf("max speed: got %f, want 14", max.Value())
	}
	if min.Value() != 8 {
		t.Errorf("min speed: got %f, want 8", min.Value())
	}

	max.Reset()
	min.Reset()
	if max.Value() != 0 || min.Value() != 0 {
		t.Error("reset should clear both metrics")
	}
}

func TestMinSpeedFirstSample(t *testing.T) {
	m := NewMinSpeed()
	m.Observe(stateWith(25, 0, 0), dynamo.Controls{}, 0)
	if m.Value() != 25 {
		t.Errorf("first sample should seed the minimum: %f", m.Value())
	}
}

func TestDescentRateLevel(t *testing.T) {
	m := NewDescentRate()

	// Level attitude, pure body-down velocity: sink equals w.
	m.Observe(stateWith(0, 0, 3), dynamo.Controls{}, 0)
	if math.Abs(m.Value()-3) > 1e-12 {
		t.Errorf("level sink: got %f, want 3", m.Value())
	}
}

func TestDescentRatePitched(t *testing.T) {
	m := NewDescentRate()

	// Nose down 90 degrees: body forward velocity is straight down.
	x := stateWith(10, 0, 0)
	x[dynamo.EulerPitch] = -math.Pi / 2
	m.Observe(x, dynamo.Controls{}, 0)
	if math.Abs(m.Value()-10) > 1e-9 {
		t.Errorf("nose-down sink: got %f, want 10", m.Value())
	}
}

func TestGlideRatio(t *testing.T) {
	m := NewGlideRatio()

	// 4:1 glide: 8 m/s forward, 2 m/s down, level attitude.
	m.Observe(stateWith(8, 0, 2), dynamo.Controls{}, 0)
	if math.Abs(m.Value()-4) > 1e-9 {
		t.Errorf("glide ratio: got %f, want 4", m.Value())
	}
}

func TestGlideRatioIgnoresClimb(t *testing.T) {
	m := NewGlideRatio()
	m.Observe(stateWith(8, 0, -2), dynamo.Controls{}, 0)
	if m.Value() != 0 {
		t.Errorf("climbing samples should be skipped: %f", m.Value())
	}
}

func TestAttitudeBound(t *testing.T) {
	m := NewAttitudeBound()

	x := dynamo.NewState()
	x[dynamo.EulerRoll] = 0.2
	x[dynamo.EulerPitch] = -0.6
	m.Observe(x, dynamo.Controls{}, 0)

	if math.Abs(m.Value()-0.6) > 1e-12 {
		t.Errorf("attitude bound: got %f, want 0.6", m.Value())
	}

	// Heading wraps freely and must not register.
	y := dynamo.NewState()
	y[dynamo.EulerYaw] = 3
	m.Reset()
	m.Observe(y, dynamo.Controls{}, 0)
	if m.Value() != 0 {
		t.Errorf("yaw should not affect the bound: %f", m.Value())
	}
}
