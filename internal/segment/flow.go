package segment

import (
	"math"

	"github.com/hartmandrector/polar-sub001/internal/frames"
)

// Flow is the local flow condition at one segment.
type Flow struct {
	Velocity frames.Vec3 // body frame, m/s
	V        float64     // airspeed magnitude
	AlphaDeg float64
	BetaDeg  float64
}

// LocalFlow computes a segment's local flow from the vehicle body
// velocity, angular rate and the segment offset r from the CG (meters):
// V_local = V_cg + omega x r. This single correction reproduces roll,
// pitch and yaw rate damping without separate derivative coefficients;
// with omega = 0 it reduces exactly to the freestream condition.
//
// Zero local airspeed maps to alpha = beta = 0 (and zero dynamic
// pressure downstream), keeping the evaluation total.
func LocalFlow(vBody, omega, r frames.Vec3) Flow {
	vl := vBody.Add(omega.Cross(r))
	speed := vl.Norm()
	if speed == 0 {
		return Flow{Velocity: vl}
	}
	alpha, beta := frames.FlowAngles(vl)
	return Flow{
		Velocity: vl,
		V:        speed,
		AlphaDeg: alpha * 180 / math.Pi,
		BetaDeg:  beta * 180 / math.Pi,
	}
}
