package segment

import (
	"github.com/hartmandrector/polar-sub001/internal/aero"
	"github.com/hartmandrector/polar-sub001/internal/dynamo"
)

// Forces is the wind-frame force/moment output of one segment evaluation.
// Lift, Drag and Side are Newtons, Moment is N·m about the segment's own
// pitch axis, CP the chord fraction where the force acts.
type Forces struct {
	Lift   float64
	Drag   float64 // always >= 0
	Side   float64
	Moment float64
	CP     float64
}

// Forces evaluates the segment at the local flow condition (degrees,
// density kg/m^3, airspeed m/s) and returns forces alongside the raw
// coefficients and resolved geometry. No side effects.
func (s Segment) Forces(alphaDeg, betaDeg, rho, speed float64, u dynamo.Controls) (Forces, aero.Coefficients, Geometry) {
	c := s.Coefficients(alphaDeg, betaDeg, u)
	geom := s.Resolve(u)
	q := 0.5 * rho * speed * speed
	return Forces{
		Lift:   q * geom.S * c.CL,
		Drag:   q * geom.S * c.CD,
		Side:   q * geom.S * c.CY,
		Moment: q * geom.S * geom.Chord * c.CM,
		CP:     c.CP,
	}, c, geom
}
