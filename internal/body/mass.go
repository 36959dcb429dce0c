// Package body implements the rigid-body side of the engine: mass
// distribution (center of gravity, inertia tensor), the flat-plate
// apparent-mass model and the 6DOF equations of motion in both isotropic
// and anisotropic (Lamb) form.
package body

import "github.com/hartmandrector/polar-sub001/internal/frames"

// MassSegment is one point mass in a vehicle's mass table. Position is
// NED, normalized by the vehicle reference length. Ratio is the fraction
// of total system mass; the ratios of a weight set sum to 1.
type MassSegment struct {
	Name     string      `yaml:"name"`
	Ratio    float64     `yaml:"ratio"`
	Position frames.Vec3 `yaml:"position"`

	// PitchCoupled marks segments repositioned by the pilot-pitch angle
	// (rotated about the body Y axis through the origin).
	PitchCoupled bool `yaml:"pitch_coupled,omitempty"`
}

// TotalRatio sums the mass ratios of a segment set.
func TotalRatio(segs []MassSegment) float64 {
	sum := 0.0
	for _, s := range segs {
		sum += s.Ratio
	}
	return sum
}

// CenterOfGravity returns the ratio-weighted mean position in meters.
func CenterOfGravity(segs []MassSegment, refLength float64) frames.Vec3 {
	var cg frames.Vec3
	total := 0.0
	for _, s := range segs {
		cg = cg.Add(s.Position.Scale(s.Ratio * refLength))
		total += s.Ratio
	}
	if total == 0 {
		return frames.Vec3{}
	}
	return cg.Scale(1 / total)
}

// InertiaTensor is a full symmetric inertia tensor about the CG, kg·m².
type InertiaTensor struct {
	Ixx, Iyy, Izz float64
	Ixy, Ixz, Iyz float64
}

// Inertia sums point-mass contributions about cg. Summing each segment
// about the common CG is the parallel-axis theorem applied per segment.
func Inertia(segs []MassSegment, totalMass, refLength float64, cg frames.Vec3) InertiaTensor {
	var t InertiaTensor
	for _, s := range segs {
		m := s.Ratio * totalMass
		r := s.Position.Scale(refLength).Sub(cg)
		t.Ixx += m * (r.Y*r.Y + r.Z*r.Z)
		t.Iyy += m * (r.X*r.X + r.Z*r.Z)
		t.Izz += m * (r.X*r.X + r.Y*r.Y)
		t.Ixy -= m * r.X * r.Y
		t.Ixz -= m * r.X * r.Z
		t.Iyz -= m * r.Y * r.Z
	}
	return t
}
