package aero

import (
	"math"

	"github.com/hartmandrector/polar-sub001/internal/polar"
)

// Coefficients is the full aerodynamic coefficient set for one surface at
// one flow condition. CR is the rolling-moment coefficient.
type Coefficients struct {
	CL float64 // lift
	CD float64 // drag, always >= 0
	CY float64 // side force
	CM float64 // pitching moment
	CP float64 // center of pressure, chord fraction in [0,1]
	CN float64 // yawing moment (weathercock)
	CR float64 // rolling moment (dihedral effect)
}

// Blend evaluates the full coefficient set at (alpha, beta) in degrees
// against an already-effective polar (control deltas applied by the
// caller via polar.Effective). Attached-flow and flat-plate estimates
// are mixed by the separation fraction; beta effects are applied on top.
// The result is finite for all real inputs.
func Blend(alphaDeg, betaDeg float64, p polar.Polar) Coefficients {
	f := Separation(alphaDeg, p)
	sb, cb := math.Sincos(rad(betaDeg))
	cb2 := cb * cb

	cl := (f*AttachedLift(alphaDeg, p) + (1-f)*PlateLift(alphaDeg, p)) * cb2
	cd := (f*AttachedDrag(alphaDeg, p)+(1-f)*PlateDrag(alphaDeg, p))*cb2 +
		p.CdNLateral*sb*sb

	cmAtt := p.Cm0 + p.CmAlpha*(alphaDeg-p.Alpha0)
	cm := f*cmAtt + (1-f)*PlateMoment(alphaDeg)

	cpAtt := clamp01(p.Cp0 + p.CpAlpha*(alphaDeg-p.Alpha0))
	cp := clamp01(f*cpAtt + (1-f)*PlateCP(alphaDeg))

	// Lateral-only derivatives are not blended by f.
	return Coefficients{
		CL: cl,
		CD: cd,
		CY: p.CyBeta * sb * cb,
		CM: cm,
		CP: cp,
		CN: p.CnBeta * sb * cb,
		CR: p.ClBeta * sb * cb,
	}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
