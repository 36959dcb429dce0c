package vehicle

import (
	"math"

	"github.com/hartmandrector/polar-sub001/internal/dynamo"
)

// TrimResult is an approximate steady-glide condition found by scanning.
type TrimResult struct {
	Airspeed float64 // m/s
	AlphaDeg float64
	PitchDeg float64
	Residual float64 // norm of the six acceleration components
	State    dynamo.State
}

// FindTrim scans airspeed, angle of attack and pitch attitude for the
// condition minimizing translational and rotational acceleration under
// the given controls. The grid is coarse: it seeds simulations near
// equilibrium, it is not a root solver.
func FindTrim(sys *System, u dynamo.Controls) TrimResult {
	best := TrimResult{Residual: math.Inf(1)}

	for v := 6.0; v <= 20.0; v += 0.5 {
		for alphaDeg := -4.0; alphaDeg <= 14.0; alphaDeg += 1.0 {
			for pitchDeg := -30.0; pitchDeg <= 10.0; pitchDeg += 1.0 {
				x := trimState(v, alphaDeg, pitchDeg)
				dx := sys.Derive(x, u, 0)
				res := accelNorm(dx)
				if res < best.Residual {
					best = TrimResult{
						Airspeed: v,
						AlphaDeg: alphaDeg,
						PitchDeg: pitchDeg,
						Residual: res,
						State:    x,
					}
				}
			}
		}
	}
	return best
}

func trimState(v, alphaDeg, pitchDeg float64) dynamo.State {
	a := alphaDeg * math.Pi / 180
	x := dynamo.NewState()
	x[dynamo.VelU] = v * math.Cos(a)
	x[dynamo.VelW] = v * math.Sin(a)
	x[dynamo.EulerPitch] = pitchDeg * math.Pi / 180
	return x
}

func accelNorm(dx dynamo.State) float64 {
	sum := 0.0
	for _, i := range []int{dynamo.VelU, dynamo.VelV, dynamo.VelW, dynamo.RateP, dynamo.RateQ, dynamo.RateR} {
		sum += dx[i] * dx[i]
	}
	return math.Sqrt(sum)
}
