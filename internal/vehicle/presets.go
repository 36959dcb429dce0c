package vehicle

import (
	"math"
	"sort"

	"github.com/hartmandrector/polar-sub001/internal/body"
	"github.com/hartmandrector/polar-sub001/internal/frames"
	"github.com/hartmandrector/polar-sub001/internal/polar"
	"github.com/hartmandrector/polar-sub001/internal/segment"
)

// cellPolar is the per-cell aerodynamic identity of the ram-air canopy
// preset. Angles in degrees.
func cellPolar() polar.Polar {
	return polar.Polar{
		ClAlpha:        3.5,
		Alpha0:         1.5,
		Cd0:            0.085,
		K:              0.18,
		CdN:            1.0,
		CdNLateral:     0.85,
		AlphaStallFwd:  16,
		S1Fwd:          4,
		AlphaStallBack: -10,
		S1Back:         6,
		CyBeta:         -0.25,
		CnBeta:         -0.08,
		ClBeta:         -0.05,
		Cm0:            -0.02,
		CmAlpha:        -0.008,
		Cp0:            0.28,
		CpAlpha:        -0.004,
		Chord:          2.6,
		RefLength:      3.0,
		Controls: map[string]polar.Deltas{
			"brake": {
				Alpha0:        -2.5,
				Cd0:           0.09,
				Cm0:           -0.03,
				CdN:           0.2,
				AlphaStallFwd: -2,
			},
			"rear_riser": {
				Alpha0: -1.2,
				Cd0:    0.02,
			},
			"front_riser": {
				Alpha0: 2.0,
				Cd0:    -0.006,
			},
			"dirty": {
				Cd0:           0.05,
				ClAlpha:       -0.7,
				AlphaStallFwd: -3,
			},
		},
	}
}

// Canopy is a 7-cell ram-air canopy with a suspended pilot: cells laid
// out along the arc, left/right brake flaps, pilot body drag, and
// weight/inertia mass tables (the inertia set carries the trapped-air
// contribution).
func Canopy() *Vehicle {
	const (
		refLen    = 3.0  // meters
		totalArea = 25.0 // m^2
		span      = 7.2  // meters
		nCells    = 7
	)
	p := cellPolar()

	segs := make([]segment.Segment, 0, nCells+3)
	arcAngles := []float64{-54, -36, -18, 0, 18, 36, 54}
	halfSpanNorm := span / 2 / refLen
	for i, arc := range arcAngles {
		side := segment.Center
		if arc < 0 {
			side = segment.Left
		} else if arc > 0 {
			side = segment.Right
		}
		rad := arc * math.Pi / 180
		segs = append(segs, segment.Segment{
			Name:           cellName(i, nCells),
			Kind:           segment.CanopyCell,
			Side:           side,
			ArcAngle:       arc,
			S:              totalArea / nCells,
			Chord:          2.6,
			Polar:          p,
			RiserAlphaGain: 6,
			BrakeAlphaGain: 4,
			BrakeDeltaGain: 1,
			Position: frames.Vec3{
				X: 0,
				Y: halfSpanNorm * math.Sin(rad) / math.Sin(54*math.Pi/180),
				Z: -1.0 * math.Cos(rad),
			},
		})
	}

	for _, side := range []segment.SideSel{segment.Left, segment.Right} {
		name := "brake_flap_left"
		if side == segment.Right {
			name = "brake_flap_right"
		}
		segs = append(segs, segment.Segment{
			Name:        name,
			Kind:        segment.BrakeFlap,
			Side:        side,
			S:           1.2,
			Chord:       0.5,
			Polar:       p,
			FlapOffset:  70,
			WindRollMax: 20,
			Position:    frames.Vec3{X: -0.15, Y: float64(side) * 0.9, Z: -0.85},
		})
	}

	segs = append(segs, segment.Segment{
		Name:     "pilot",
		Kind:     segment.Parasitic,
		S:        0.5,
		Chord:    0.5,
		FixedCD:  1.0,
		Position: frames.Vec3{X: 0, Y: 0, Z: 0.03},
	})

	weight := []body.MassSegment{
		{Name: "pilot", Ratio: 0.88, Position: frames.Vec3{Z: 0.05}, PitchCoupled: true},
		{Name: "lines", Ratio: 0.05, Position: frames.Vec3{Z: -0.5}},
		{Name: "fabric", Ratio: 0.07, Position: frames.Vec3{Z: -0.97}},
	}
	inertia := append([]body.MassSegment{
		{Name: "trapped_air_center", Ratio: 0.09, Position: frames.Vec3{Z: -1.0}},
		{Name: "trapped_air_left", Ratio: 0.08, Position: frames.Vec3{Y: -0.6, Z: -0.9}},
		{Name: "trapped_air_right", Ratio: 0.08, Position: frames.Vec3{Y: 0.6, Z: -0.9}},
	}, weight...)

	return &Vehicle{
		Name:          "canopy",
		RefLength:     refLen,
		TotalMass:     100,
		Gravity:       9.81,
		CanopySpan:    span,
		CanopyChord:   2.6,
		Segments:      segs,
		WeightMasses:  weight,
		InertiaMasses: inertia,
	}
}

func cellName(i, n int) string {
	names := []string{"cell_l3", "cell_l2", "cell_l1", "cell_center", "cell_r1", "cell_r2", "cell_r3"}
	if n == len(names) {
		return names[i]
	}
	return "cell"
}

// wingPolar is the inflated arm-wing identity of the wingsuit preset;
// zipPolar is the same surface unzipped (mostly flat-plate behavior).
func wingPolar() polar.Polar {
	return polar.Polar{
		ClAlpha:        2.8,
		Alpha0:         -2,
		Cd0:            0.03,
		K:              0.10,
		CdN:            1.1,
		CdNLateral:     0.9,
		AlphaStallFwd:  22,
		S1Fwd:          5,
		AlphaStallBack: -14,
		S1Back:         7,
		CyBeta:         -0.15,
		CnBeta:         -0.04,
		ClBeta:         -0.03,
		Cm0:            -0.01,
		CmAlpha:        -0.005,
		Cp0:            0.3,
		CpAlpha:        -0.003,
		Chord:          0.9,
		RefLength:      1.8,
	}
}

func zipPolar() polar.Polar {
	p := wingPolar()
	p.ClAlpha = 0.6
	p.Cd0 = 0.08
	p.CdN = 1.2
	p.AlphaStallFwd = 10
	p.AlphaStallBack = -8
	return p
}

// Wingsuit is a three-surface wingsuit pilot: pitch-coupled torso, two
// unzippable arm wings and a leg wing, with a parasitic helmet/gear item.
func Wingsuit() *Vehicle {
	wp := wingPolar()
	zp := zipPolar()

	segs := []segment.Segment{
		{
			Name: "torso", Kind: segment.LiftingBody, S: 0.55, Chord: 1.2,
			Polar: wp, PitchOffset: -4, PitchCoupled: true,
			Position: frames.Vec3{X: 0.1},
		},
		{
			Name: "armwing_left", Kind: segment.Unzippable, Side: segment.Left,
			S: 0.45, Chord: 0.9, Polar: wp, PolarB: zp, PitchOffset: -2,
			Position: frames.Vec3{X: 0.15, Y: -0.35},
		},
		{
			Name: "armwing_right", Kind: segment.Unzippable, Side: segment.Right,
			S: 0.45, Chord: 0.9, Polar: wp, PolarB: zp, PitchOffset: -2,
			Position: frames.Vec3{X: 0.15, Y: 0.35},
		},
		{
			Name: "legwing", Kind: segment.LiftingBody, S: 0.35, Chord: 0.7,
			Polar: wp, PitchOffset: 2,
			Position: frames.Vec3{X: -0.45},
		},
		{
			Name: "helmet", Kind: segment.Parasitic, S: 0.05, Chord: 0.2,
			FixedCD: 0.6, Position: frames.Vec3{X: 0.5, Z: -0.05},
		},
	}

	weight := []body.MassSegment{
		{Name: "torso", Ratio: 0.52, Position: frames.Vec3{X: 0.05}, PitchCoupled: true},
		{Name: "legs", Ratio: 0.32, Position: frames.Vec3{X: -0.4}},
		{Name: "head_arms", Ratio: 0.16, Position: frames.Vec3{X: 0.35}},
	}

	return &Vehicle{
		Name:          "wingsuit",
		RefLength:     1.8,
		TotalMass:     85,
		Gravity:       9.81,
		CanopySpan:    1.6,
		CanopyChord:   0.8,
		Segments:      segs,
		WeightMasses:  weight,
		InertiaMasses: weight,
	}
}

// Skydiver is a belly-to-earth freefall body: one plate-dominant lifting
// body plus parasitic limb drag.
func Skydiver() *Vehicle {
	p := polar.Polar{
		ClAlpha:        1.2,
		Alpha0:         0,
		Cd0:            0.3,
		K:              0.05,
		CdN:            1.1,
		CdNLateral:     1.0,
		AlphaStallFwd:  12,
		S1Fwd:          6,
		AlphaStallBack: -12,
		S1Back:         6,
		CnBeta:         -0.03,
		ClBeta:         -0.02,
		Cm0:            0,
		CmAlpha:        -0.004,
		Cp0:            0.3,
		Chord:          0.6,
		RefLength:      1.7,
	}

	segs := []segment.Segment{
		{
			Name: "body", Kind: segment.LiftingBody, S: 0.75, Chord: 0.6,
			Polar: p, PitchOffset: 0, PitchCoupled: true,
		},
		{
			Name: "limbs", Kind: segment.Parasitic, S: 0.25, Chord: 0.3,
			FixedCD: 1.0,
		},
	}

	weight := []body.MassSegment{
		{Name: "torso", Ratio: 0.6, Position: frames.Vec3{}},
		{Name: "legs", Ratio: 0.25, Position: frames.Vec3{X: -0.35}},
		{Name: "head", Ratio: 0.15, Position: frames.Vec3{X: 0.3}},
	}

	return &Vehicle{
		Name:          "skydiver",
		RefLength:     1.7,
		TotalMass:     80,
		Gravity:       9.81,
		CanopySpan:    0.6,
		CanopyChord:   0.4,
		Segments:      segs,
		WeightMasses:  weight,
		InertiaMasses: weight,
	}
}

// Registry maps preset names to constructors.
var Registry = map[string]func() *Vehicle{
	"canopy":   Canopy,
	"wingsuit": Wingsuit,
	"skydiver": Skydiver,
}

// Get returns a fresh vehicle for the preset name, or nil.
func Get(name string) *Vehicle {
	if ctor, ok := Registry[name]; ok {
		return ctor()
	}
	return nil
}

// Names lists the registered preset names, sorted.
func Names() []string {
	names := make([]string, 0, len(Registry))
	for n := range Registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
