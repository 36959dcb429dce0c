package body

import "github.com/hartmandrector/polar-sub001/internal/frames"

// EffectiveMass is the per-axis translational mass (physical + apparent).
type EffectiveMass struct {
	X, Y, Z float64
}

// Uniform builds an isotropic effective mass.
func Uniform(m float64) EffectiveMass {
	return EffectiveMass{X: m, Y: m, Z: m}
}

// EffectiveInertia is the rotational inertia seen by the equations of
// motion: physical plus apparent on the diagonal, with the physical Ixz
// cross term retained.
type EffectiveInertia struct {
	XX, YY, ZZ float64
	XZ         float64
}

// TranslationalIso is the textbook body-frame translational EOM with a
// single scalar mass: udot = F/m + (v x omega terms).
func TranslationalIso(f frames.Vec3, m float64, vel, omega frames.Vec3) frames.Vec3 {
	u, v, w := vel.X, vel.Y, vel.Z
	p, q, r := omega.X, omega.Y, omega.Z
	return frames.Vec3{
		X: f.X/m + r*v - q*w,
		Y: f.Y/m + p*w - r*u,
		Z: f.Z/m + q*u - p*v,
	}
}

// Translational is the anisotropic (Lamb/Kirchhoff) translational EOM.
// Each Coriolis cross term carries the effective mass of the axis the
// velocity component lives on, not the axis being accelerated; that
// asymmetry is what produces the Munk yaw-in-sideslip moment for bodies
// with strongly anisotropic added mass. Reduces exactly to
// TranslationalIso when the three masses are equal.
func Translational(f frames.Vec3, m EffectiveMass, vel, omega frames.Vec3) frames.Vec3 {
	u, v, w := vel.X, vel.Y, vel.Z
	p, q, r := omega.X, omega.Y, omega.Z
	return frames.Vec3{
		X: (f.X + m.Y*r*v - m.Z*q*w) / m.X,
		Y: (f.Y + m.Z*p*w - m.X*r*u) / m.Y,
		Z: (f.Z + m.X*q*u - m.Y*p*v) / m.Z,
	}
}

// Rotational solves Euler's equations for the body angular accelerations
// under a full symmetric inertia tensor with an XZ cross term. The roll
// and yaw equations are coupled through Ixz and solved as a 2x2 system;
// with Ixz = 0 the axes decouple.
func Rotational(m frames.Vec3, in EffectiveInertia, omega frames.Vec3) frames.Vec3 {
	p, q, r := omega.X, omega.Y, omega.Z

	qdot := (m.Y - p*r*(in.XX-in.ZZ) - in.XZ*(p*p-r*r)) / in.YY

	// Ixx pdot - Ixz rdot = aL ; -Ixz pdot + Izz rdot = aN
	aL := m.X - q*r*(in.ZZ-in.YY) + in.XZ*p*q
	aN := m.Z - p*q*(in.YY-in.XX) - in.XZ*q*r
	det := in.XX*in.ZZ - in.XZ*in.XZ

	pdot := (aL*in.ZZ + aN*in.XZ) / det
	rdot := (aN*in.XX + aL*in.XZ) / det

	return frames.Vec3{X: pdot, Y: qdot, Z: rdot}
}
