package polar

import (
	"math"
	"testing"
)

func basePolar() Polar {
	return Polar{
		ClAlpha:        3.5,
		Alpha0:         1.5,
		Cd0:            0.085,
		K:              0.18,
		CdN:            1.0,
		AlphaStallFwd:  16,
		S1Fwd:          4,
		AlphaStallBack: -10,
		S1Back:         6,
		S:              3.5,
		Chord:          2.0,
	}
}

func TestEffectiveBrakeDominates(t *testing.T) {
	p := basePolar()
	p.Controls = map[string]Deltas{
		"brake":       {Alpha0: -10},
		"rear_riser":  {Alpha0: 99},
		"front_riser": {Alpha0: -99},
	}

	eff := p.Effective(0.5, 0)
	want := p.Alpha0 + 0.5*(-10)
	if math.Abs(eff.Alpha0-want) > 1e-12 {
		t.Errorf("brake block should win: got alpha_0=%f, want %f", eff.Alpha0, want)
	}
}

func TestEffectiveRiserFallback(t *testing.T) {
	p := basePolar()
	p.Controls = map[string]Deltas{
		"rear_riser":  {Alpha0: 4},
		"front_riser": {Alpha0: -99},
	}
	eff := p.Effective(1.0, 0)
	if math.Abs(eff.Alpha0-(p.Alpha0+4)) > 1e-12 {
		t.Errorf("rear riser should win over front: got alpha_0=%f", eff.Alpha0)
	}

	p.Controls = map[string]Deltas{"front_riser": {Alpha0: -6}}
	eff = p.Effective(1.0, 0)
	if math.Abs(eff.Alpha0-(p.Alpha0-6)) > 1e-12 {
		t.Errorf("front riser fallback: got alpha_0=%f", eff.Alpha0)
	}
}

func TestEffectiveDirtyAdditive(t *testing.T) {
	p := basePolar()
	p.Controls = map[string]Deltas{
		"brake": {Cd0: 0.1},
		"dirty": {Cd0: 0.05},
	}
	eff := p.Effective(1.0, 0.5)
	want := p.Cd0 + 0.1 + 0.5*0.05
	if math.Abs(eff.Cd0-want) > 1e-12 {
		t.Errorf("dirty applies on top of brake: got cd_0=%f, want %f", eff.Cd0, want)
	}
}

func TestEffectiveNoBlocks(t *testing.T) {
	p := basePolar()
	eff := p.Effective(1.0, 1.0)
	if eff.Alpha0 != p.Alpha0 || eff.Cd0 != p.Cd0 {
		t.Error("polar without control blocks must pass through unchanged")
	}
}

func TestLerpEndpoints(t *testing.T) {
	a := basePolar()
	b := basePolar()
	b.ClAlpha = 1.0
	b.Cd0 = 0.3
	b.Controls = map[string]Deltas{"brake": {Cd0: 1}}

	if got := Lerp(a, b, 0); got.ClAlpha != a.ClAlpha || got.Controls != nil {
		t.Errorf("t=0 should reproduce a, got cl_alpha=%f", got.ClAlpha)
	}
	if got := Lerp(a, b, 1); got.ClAlpha != b.ClAlpha || got.Controls == nil {
		t.Errorf("t=1 should reproduce b, got cl_alpha=%f", got.ClAlpha)
	}

	mid := Lerp(a, b, 0.5)
	want := (a.ClAlpha + b.ClAlpha) / 2
	if math.Abs(mid.ClAlpha-want) > 1e-12 {
		t.Errorf("midpoint cl_alpha: got %f, want %f", mid.ClAlpha, want)
	}
}

func TestValidate(t *testing.T) {
	if err := basePolar().Validate(); err != nil {
		t.Errorf("base polar should validate: %v", err)
	}

	p := basePolar()
	p.S1Fwd = 0
	if err := p.Validate(); err == nil {
		t.Error("zero sigmoid width must fail validation")
	}

	p = basePolar()
	p.AlphaStallBack = 20
	if err := p.Validate(); err == nil {
		t.Error("inverted stall corridor must fail validation")
	}

	p = basePolar()
	p.Cd0 = -0.01
	if err := p.Validate(); err == nil {
		t.Error("negative cd_0 must fail validation")
	}

	// A negative lateral plate coefficient would drive CD below zero at
	// high sideslip.
	p = basePolar()
	p.CdNLateral = -0.2
	if err := p.Validate(); err == nil {
		t.Error("negative cd_n_lateral must fail validation")
	}
}
