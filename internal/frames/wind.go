package frames

import "math"

// WindAxes holds the wind-frame direction triad expressed in body NED.
// Wind points along the relative airflow, Side to the right of it, Lift
// perpendicular to the flow in the plane of symmetry (up at alpha = 0).
// The three vectors are mutually orthogonal unit vectors for any
// (alpha, beta).
type WindAxes struct {
	Wind Vec3
	Side Vec3
	Lift Vec3
}

// NewWindAxes builds the wind triad from angle of attack and sideslip
// (radians).
func NewWindAxes(alpha, beta float64) WindAxes {
	sa, ca := math.Sincos(alpha)
	sb, cb := math.Sincos(beta)

	return WindAxes{
		Wind: Vec3{ca * cb, sb, sa * cb},
		Side: Vec3{-ca * sb, cb, -sa * sb},
		Lift: Vec3{sa, 0, -ca},
	}
}

// Force assembles a body-frame force vector from wind-frame magnitudes.
// Drag acts opposite the flow, lift along the lift axis, side along the
// side axis.
func (w WindAxes) Force(lift, drag, side float64) Vec3 {
	return w.Wind.Scale(-drag).Add(w.Side.Scale(side)).Add(w.Lift.Scale(lift))
}

// FlowAngles recovers (alpha, beta) in radians from a body-frame velocity.
// Zero velocity maps to alpha = beta = 0.
func FlowAngles(v Vec3) (alpha, beta float64) {
	speed := v.Norm()
	if speed == 0 {
		return 0, 0
	}
	alpha = math.Atan2(v.Z, v.X)
	beta = math.Asin(v.Y / speed)
	return
}
