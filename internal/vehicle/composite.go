package vehicle

import (
	"math"

	"github.com/hartmandrector/polar-sub001/internal/body"
	"github.com/hartmandrector/polar-sub001/internal/frames"
)

// CompositeFrame is the cached derived mass picture of a vehicle at one
// (deploy, pilotPitch) condition: total mass, CG in meters, physical
// inertia about the CG, apparent mass/inertia, and the per-axis effective
// values the equations of motion consume.
type CompositeFrame struct {
	Deploy     float64
	PilotPitch float64

	Mass     float64
	CG       frames.Vec3
	Inertia  body.InertiaTensor
	Apparent body.Apparent

	EffMass    body.EffectiveMass
	EffInertia body.EffectiveInertia
}

// Matches reports whether the cache key equals the given drivers. Pure
// value comparison: re-running the same sequence rebuilds identically.
func (c *CompositeFrame) Matches(deploy, pilotPitch float64) bool {
	return c != nil && c.Deploy == deploy && c.PilotPitch == pilotPitch
}

func pitchMasses(segs []body.MassSegment, pilotPitchDeg float64) []body.MassSegment {
	if pilotPitchDeg == 0 {
		return segs
	}
	rot := frames.RotationY(pilotPitchDeg * math.Pi / 180)
	out := make([]body.MassSegment, len(segs))
	for i, s := range segs {
		if s.PitchCoupled {
			s.Position = rot.MulVec(s.Position)
		}
		out[i] = s
	}
	return out
}

// BuildComposite assembles the composite frame: weight-based CG, physical
// inertia from the inertia mass set (parallel-axis summation about the
// CG), apparent mass at the deployment fraction, and effective mass /
// inertia (physical plus apparent on the diagonal only; the Ixz cross
// term is purely physical).
func BuildComposite(v *Vehicle, deploy, pilotPitch, rho float64) *CompositeFrame {
	weight := pitchMasses(v.WeightMasses, pilotPitch)
	inertiaSet := pitchMasses(v.InertiaMasses, pilotPitch)
	if len(inertiaSet) == 0 {
		inertiaSet = weight
	}

	cg := body.CenterOfGravity(weight, v.RefLength)
	inertia := body.Inertia(inertiaSet, v.TotalMass, v.RefLength, cg)
	apparent := body.FlatPlateApparent(rho, v.CanopyChord, v.CanopySpan, deploy)

	return &CompositeFrame{
		Deploy:     deploy,
		PilotPitch: pilotPitch,
		Mass:       v.TotalMass,
		CG:         cg,
		Inertia:    inertia,
		Apparent:   apparent,
		EffMass: body.EffectiveMass{
			X: v.TotalMass + apparent.MX,
			Y: v.TotalMass + apparent.MY,
			Z: v.TotalMass + apparent.MZ,
		},
		EffInertia: body.EffectiveInertia{
			XX: inertia.Ixx + apparent.IXX,
			YY: inertia.Iyy + apparent.IYY,
			ZZ: inertia.Izz + apparent.IZZ,
			XZ: inertia.Ixz,
		},
	}
}
