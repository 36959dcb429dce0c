package aero

import (
	"math"

	"github.com/hartmandrector/polar-sub001/internal/polar"
)

// sigmoid exponent arguments are clamped to avoid overflow in Exp.
const expClamp = 500.0

func sigmoid(arg float64) float64 {
	if arg > expClamp {
		arg = expClamp
	} else if arg < -expClamp {
		arg = -expClamp
	}
	return 1.0 / (1.0 + math.Exp(arg))
}

// Separation is the Kirchhoff attachment fraction f(alpha) in [0,1]:
// ~1 between the two stall angles, rolling off through each stall with
// the polar's sigmoid widths. Alpha in degrees.
func Separation(alphaDeg float64, p polar.Polar) float64 {
	fFwd := sigmoid((alphaDeg - p.AlphaStallFwd) / p.S1Fwd)
	fBack := sigmoid((p.AlphaStallBack - alphaDeg) / p.S1Back)
	return fFwd * fBack
}

// AttachedLift is the thin-airfoil attached-flow lift estimate.
func AttachedLift(alphaDeg float64, p polar.Polar) float64 {
	return p.ClAlpha * math.Sin(rad(alphaDeg-p.Alpha0))
}

// AttachedDrag is parasitic plus induced drag for the attached-flow lift.
func AttachedDrag(alphaDeg float64, p polar.Polar) float64 {
	cl := AttachedLift(alphaDeg, p)
	return p.Cd0 + p.K*cl*cl
}

// PlateLift is the flat-plate lift estimate, valid for any alpha.
func PlateLift(alphaDeg float64, p polar.Polar) float64 {
	a := rad(alphaDeg)
	return p.CdN * math.Sin(a) * math.Cos(a)
}

// PlateDrag is the flat-plate drag estimate, valid for any alpha.
func PlateDrag(alphaDeg float64, p polar.Polar) float64 {
	sa, ca := math.Sincos(rad(alphaDeg))
	return p.CdN*sa*sa + p.Cd0*ca*ca
}

// PlateMoment is the flat-plate pitching-moment estimate.
func PlateMoment(alphaDeg float64) float64 {
	return -0.1 * math.Sin(2*rad(alphaDeg))
}

// PlateCP is the flat-plate center-of-pressure chord fraction: quarter
// chord at zero alpha, moving to mid chord in normal flow.
func PlateCP(alphaDeg float64) float64 {
	return 0.25 + 0.25*math.Abs(math.Sin(rad(alphaDeg)))
}

func rad(deg float64) float64 { return deg * math.Pi / 180 }
