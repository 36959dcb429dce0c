package body

import "math"

// Apparent holds per-axis added mass (kg) and added inertia (kg·m²) for
// an inflated lifting surface. Axes follow body NED.
type Apparent struct {
	MX, MY, MZ    float64
	IXX, IYY, IZZ float64
}

// Packed-geometry fractions: an uninflated canopy presents a small
// fraction of its full span and chord to the flow.
const (
	packedSpanFraction  = 0.15
	packedChordFraction = 0.30
)

// FlatPlateApparent computes analytic added mass and inertia for a thin
// lifting surface approximated as a flat plate of the given full chord
// and span (meters), at air density rho and deployment fraction deploy
// in [0,1]. Geometry scales continuously from packed to inflated, so the
// result is monotonic in deploy and everything scales linearly with rho.
//
// Chordwise (in-plane) added mass and yaw added inertia are negligible
// for a thin plate and left zero.
func FlatPlateApparent(rho, chord, span, deploy float64) Apparent {
	if deploy < 0 {
		deploy = 0
	} else if deploy > 1 {
		deploy = 1
	}
	b := span * (packedSpanFraction + (1-packedSpanFraction)*deploy)
	c := chord * (packedChordFraction + (1-packedChordFraction)*deploy)

	quarterPiRho := math.Pi / 4 * rho
	return Apparent{
		MZ:  quarterPiRho * c * c * b,
		IXX: quarterPiRho * c * c * b * b * b / 12,
		IYY: quarterPiRho * b * c * c * c * c / 12,
	}
}
