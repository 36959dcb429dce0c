// Package vehicle assembles aerodynamic and mass segments into a complete
// simulated vehicle: the composite frame (CG, inertia, apparent mass,
// per-axis effective mass/inertia) cached on its two scalar drivers, and
// the dynamo.System implementation that sums per-segment forces into the
// 12-state derivative.
package vehicle

import (
	"fmt"

	"github.com/hartmandrector/polar-sub001/internal/body"
	"github.com/hartmandrector/polar-sub001/internal/segment"
)

// Vehicle is the full static description of one flyable system. All
// segment and mass positions are NED, normalized by RefLength.
type Vehicle struct {
	Name      string
	RefLength float64 // meters
	TotalMass float64 // kg
	Gravity   float64 // m/s^2

	// Full inflated lifting-surface geometry, used by the apparent-mass
	// model. Kept per vehicle; there is no shared scale constant.
	CanopySpan  float64 // meters
	CanopyChord float64 // meters

	Segments []segment.Segment

	// WeightMasses contribute to gravity and the CG; ratios sum to 1.
	// InertiaMasses may be a larger set that also carries buoyant or
	// trapped-air contributions affecting rotational inertia only.
	WeightMasses  []body.MassSegment
	InertiaMasses []body.MassSegment
}

// Validate checks the structural invariants of a vehicle description.
func (v *Vehicle) Validate() error {
	if v.RefLength <= 0 {
		return fmt.Errorf("vehicle %s: reference length must be positive", v.Name)
	}
	if v.TotalMass <= 0 {
		return fmt.Errorf("vehicle %s: total mass must be positive", v.Name)
	}
	if r := body.TotalRatio(v.WeightMasses); r < 0.999 || r > 1.001 {
		return fmt.Errorf("vehicle %s: weight mass ratios sum to %.4f, want 1", v.Name, r)
	}
	if len(v.Segments) == 0 {
		return fmt.Errorf("vehicle %s: no aerodynamic segments", v.Name)
	}
	for _, s := range v.Segments {
		if s.Kind != segment.Parasitic {
			if err := s.Polar.Validate(); err != nil {
				return fmt.Errorf("vehicle %s segment %s: %w", v.Name, s.Name, err)
			}
		}
	}
	return nil
}

// LiftingArea sums the reference areas of the canopy-cell segments. For a
// well-formed canopy the cells partition the total reference area.
func (v *Vehicle) LiftingArea() float64 {
	sum := 0.0
	for _, s := range v.Segments {
		if s.Kind == segment.CanopyCell {
			sum += s.S
		}
	}
	return sum
}
