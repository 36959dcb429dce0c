// Package polar defines the aerodynamic identity of a surface or vehicle:
// the closed-form coefficient parameters consumed by the separation model,
// the physical scalars (area, mass, chord) and the optional named
// control-derivative blocks that morph a polar under control input.
//
// All angle parameters are stored in degrees; conversion to radians
// happens only inside trig calls downstream.
package polar

import "fmt"

// Polar holds the coefficient model parameters for one surface.
type Polar struct {
	// Attached-flow model.
	ClAlpha float64 `yaml:"cl_alpha"` // lift-curve slope (per rad of sin)
	Alpha0  float64 `yaml:"alpha_0"`  // zero-lift angle, degrees
	Cd0     float64 `yaml:"cd_0"`     // parasitic drag at zero lift
	K       float64 `yaml:"k"`        // induced-drag factor

	// Flat-plate model.
	CdN        float64 `yaml:"cd_n"`         // normal-flow drag coefficient
	CdNLateral float64 `yaml:"cd_n_lateral"` // normal drag for pure sideslip

	// Separation sigmoid.
	AlphaStallFwd  float64 `yaml:"alpha_stall_fwd"`  // forward stall angle, degrees
	S1Fwd          float64 `yaml:"s1_fwd"`           // forward sigmoid width, degrees
	AlphaStallBack float64 `yaml:"alpha_stall_back"` // backward stall angle, degrees
	S1Back         float64 `yaml:"s1_back"`          // backward sigmoid width, degrees

	// Lateral stability derivatives.
	CyBeta float64 `yaml:"cy_beta"` // side force per sideslip
	CnBeta float64 `yaml:"cn_beta"` // yaw stiffness
	ClBeta float64 `yaml:"cl_beta"` // dihedral effect

	// Pitching moment and center of pressure.
	Cm0     float64 `yaml:"cm_0"`
	CmAlpha float64 `yaml:"cm_alpha"` // per degree
	Cp0     float64 `yaml:"cp_0"`     // chord fraction at alpha_0
	CpAlpha float64 `yaml:"cp_alpha"` // chord fraction per degree

	// Physical scalars.
	S         float64 `yaml:"s"`     // reference area, m^2
	M         float64 `yaml:"m"`     // mass, kg
	Chord     float64 `yaml:"chord"` // mean chord, m
	RefLength float64 `yaml:"reference_length"`

	// Control-derivative blocks keyed by channel name ("brake",
	// "rear_riser", "front_riser", "dirty").
	Controls map[string]Deltas `yaml:"controls,omitempty"`
}

// Deltas is one control-derivative block: per-parameter slopes applied
// linearly as param_eff = param_base + amount * delta.
type Deltas struct {
	ClAlpha        float64 `yaml:"cl_alpha,omitempty"`
	Alpha0         float64 `yaml:"alpha_0,omitempty"`
	Cd0            float64 `yaml:"cd_0,omitempty"`
	K              float64 `yaml:"k,omitempty"`
	CdN            float64 `yaml:"cd_n,omitempty"`
	CdNLateral     float64 `yaml:"cd_n_lateral,omitempty"`
	AlphaStallFwd  float64 `yaml:"alpha_stall_fwd,omitempty"`
	S1Fwd          float64 `yaml:"s1_fwd,omitempty"`
	AlphaStallBack float64 `yaml:"alpha_stall_back,omitempty"`
	S1Back         float64 `yaml:"s1_back,omitempty"`
	CyBeta         float64 `yaml:"cy_beta,omitempty"`
	CnBeta         float64 `yaml:"cn_beta,omitempty"`
	ClBeta         float64 `yaml:"cl_beta,omitempty"`
	Cm0            float64 `yaml:"cm_0,omitempty"`
	CmAlpha        float64 `yaml:"cm_alpha,omitempty"`
	Cp0            float64 `yaml:"cp_0,omitempty"`
	CpAlpha        float64 `yaml:"cp_alpha,omitempty"`
}

// WithDeltas returns a copy of p with one control block applied at the
// given amount.
func (p Polar) WithDeltas(d Deltas, amount float64) Polar {
	p.ClAlpha += amount * d.ClAlpha
	p.Alpha0 += amount * d.Alpha0
	p.Cd0 += amount * d.Cd0
	p.K += amount * d.K
	p.CdN += amount * d.CdN
	p.CdNLateral += amount * d.CdNLateral
	p.AlphaStallFwd += amount * d.AlphaStallFwd
	p.S1Fwd += amount * d.S1Fwd
	p.AlphaStallBack += amount * d.AlphaStallBack
	p.S1Back += amount * d.S1Back
	p.CyBeta += amount * d.CyBeta
	p.CnBeta += amount * d.CnBeta
	p.ClBeta += amount * d.ClBeta
	p.Cm0 += amount * d.Cm0
	p.CmAlpha += amount * d.CmAlpha
	p.Cp0 += amount * d.Cp0
	p.CpAlpha += amount * d.CpAlpha
	return p
}

// Effective applies the dominant primary control block (brake, else rear
// riser, else front riser) at amount delta, then the dirty block
// additively, and returns the morphed polar. A polar with no control
// blocks passes through unchanged.
func (p Polar) Effective(delta, dirty float64) Polar {
	eff := p
	if delta != 0 {
		if d, ok := p.Controls["brake"]; ok {
			eff = eff.WithDeltas(d, delta)
		} else if d, ok := p.Controls["rear_riser"]; ok {
			eff = eff.WithDeltas(d, delta)
		} else if d, ok := p.Controls["front_riser"]; ok {
			eff = eff.WithDeltas(d, delta)
		}
	}
	if dirty != 0 {
		if d, ok := p.Controls["dirty"]; ok {
			eff = eff.WithDeltas(d, dirty)
		}
	}
	return eff
}

// Lerp interpolates every scalar field of two polars by t in [0,1].
// Control blocks follow the nearer endpoint.
func Lerp(a, b Polar, t float64) Polar {
	mix := func(x, y float64) float64 { return x + t*(y-x) }
	out := Polar{
		ClAlpha:        mix(a.ClAlpha, b.ClAlpha),
		Alpha0:         mix(a.Alpha0, b.Alpha0),
		Cd0:            mix(a.Cd0, b.Cd0),
		K:              mix(a.K, b.K),
		CdN:            mix(a.CdN, b.CdN),
		CdNLateral:     mix(a.CdNLateral, b.CdNLateral),
		AlphaStallFwd:  mix(a.AlphaStallFwd, b.AlphaStallFwd),
		S1Fwd:          mix(a.S1Fwd, b.S1Fwd),
		AlphaStallBack: mix(a.AlphaStallBack, b.AlphaStallBack),
		S1Back:         mix(a.S1Back, b.S1Back),
		CyBeta:         mix(a.CyBeta, b.CyBeta),
		CnBeta:         mix(a.CnBeta, b.CnBeta),
		ClBeta:         mix(a.ClBeta, b.ClBeta),
		Cm0:            mix(a.Cm0, b.Cm0),
		CmAlpha:        mix(a.CmAlpha, b.CmAlpha),
		Cp0:            mix(a.Cp0, b.Cp0),
		CpAlpha:        mix(a.CpAlpha, b.CpAlpha),
		S:              mix(a.S, b.S),
		M:              mix(a.M, b.M),
		Chord:          mix(a.Chord, b.Chord),
		RefLength:      mix(a.RefLength, b.RefLength),
	}
	if t < 0.5 {
		out.Controls = a.Controls
	} else {
		out.Controls = b.Controls
	}
	return out
}

// Validate checks the invariants a well-formed polar must satisfy. These
// are caught at load time; the evaluation kernel assumes them.
func (p Polar) Validate() error {
	if p.Cd0 < 0 {
		return fmt.Errorf("polar: cd_0 must be >= 0, got %g", p.Cd0)
	}
	if p.K < 0 {
		return fmt.Errorf("polar: k must be >= 0, got %g", p.K)
	}
	if p.CdN < 0 {
		return fmt.Errorf("polar: cd_n must be >= 0, got %g", p.CdN)
	}
	if p.CdNLateral < 0 {
		return fmt.Errorf("polar: cd_n_lateral must be >= 0, got %g", p.CdNLateral)
	}
	if p.S1Fwd <= 0 || p.S1Back <= 0 {
		return fmt.Errorf("polar: sigmoid widths must be positive, got s1_fwd=%g s1_back=%g", p.S1Fwd, p.S1Back)
	}
	if p.AlphaStallBack > p.AlphaStallFwd {
		return fmt.Errorf("polar: alpha_stall_back (%g) above alpha_stall_fwd (%g)", p.AlphaStallBack, p.AlphaStallFwd)
	}
	return nil
}
