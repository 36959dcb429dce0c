// Package segment models the individual aerodynamic surfaces that compose
// a vehicle: their geometry, their per-kind coefficient evaluation, the
// wind-frame force evaluator and the rotating-frame local-flow correction.
//
// The set of surface kinds is closed: adding a new kind means adding an
// enum case and its arm in the evaluation switch, keeping the evaluator
// total and inspectable. Segments are immutable value descriptions;
// anything that depends on the control vector (deployment scaling, flap
// growth, riser trim) is recomputed per evaluation, never persisted.
package segment

import (
	"github.com/hartmandrector/polar-sub001/internal/frames"
	"github.com/hartmandrector/polar-sub001/internal/polar"
)

// Kind selects the coefficient-evaluation strategy of a surface.
type Kind int

const (
	// Parasitic surfaces return constant coefficients regardless of flow
	// angles (lines, pilot body drag items).
	Parasitic Kind = iota

	// LiftingBody rotates the freestream alpha by a fixed pitch offset
	// (plus the pilot-pitch pivot when coupled) before blending.
	LiftingBody

	// CanopyCell rotates the freestream by the cell's arc angle, adds
	// riser and brake induced increments and scales its geometry with
	// deployment.
	CanopyCell

	// BrakeFlap has zero area at zero control and grows linearly with
	// brake amount, deflected far past stall.
	BrakeFlap

	// Unzippable interpolates between two complete polars by the unzip
	// channel before evaluating.
	Unzippable
)

func (k Kind) String() string {
	switch k {
	case Parasitic:
		return "parasitic"
	case LiftingBody:
		return "lifting_body"
	case CanopyCell:
		return "canopy_cell"
	case BrakeFlap:
		return "brake_flap"
	case Unzippable:
		return "unzippable"
	}
	return "unknown"
}

// Side selects which control channels drive a surface.
type SideSel int

const (
	Left   SideSel = -1
	Center SideSel = 0
	Right  SideSel = 1
)

// Segment is one physical aerodynamic surface. Position is NED,
// normalized by the vehicle reference length. ArcAngle is the geometric
// arc/roll of a canopy cell about the body X axis, distinct from both the
// Euler roll attitude and the wind-roll lift decomposition of brake flaps.
type Segment struct {
	Name     string
	Kind     Kind
	Side     SideSel
	Position frames.Vec3
	S        float64 // reference area, m^2
	Chord    float64 // m

	Polar polar.Polar

	// Parasitic: fixed coefficients.
	FixedCL, FixedCD, FixedCY float64

	// LiftingBody / Unzippable.
	PitchOffset  float64 // degrees
	PitchCoupled bool    // rotate with the pilot-pitch channel

	// CanopyCell.
	ArcAngle       float64 // degrees
	RiserAlphaGain float64 // degrees of alpha per net riser pull
	BrakeAlphaGain float64 // degrees of alpha per brake pull
	BrakeDeltaGain float64 // control delta per brake pull

	// BrakeFlap.
	FlapOffset  float64 // degrees added to alpha at any brake amount
	WindRollMax float64 // degrees of lift-vector roll at full brake

	// Unzippable: second polar blended in by the unzip channel.
	PolarB polar.Polar
}

// Geometry is the control- and deployment-resolved geometry of a segment
// for one evaluation: effective area, chord and normalized position.
type Geometry struct {
	S        float64
	Chord    float64
	Position frames.Vec3
}
