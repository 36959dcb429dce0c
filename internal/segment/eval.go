package segment

import (
	"math"

	"github.com/hartmandrector/polar-sub001/internal/aero"
	"github.com/hartmandrector/polar-sub001/internal/dynamo"
	"github.com/hartmandrector/polar-sub001/internal/frames"
	"github.com/hartmandrector/polar-sub001/internal/polar"
)

// brake returns the brake amount driving this segment: the side channel
// plus the legacy symmetric delta.
func (s Segment) brake(u dynamo.Controls) float64 {
	switch s.Side {
	case Left:
		return u.BrakeLeft + u.Delta
	case Right:
		return u.BrakeRight + u.Delta
	default:
		return 0.5*(u.BrakeLeft+u.BrakeRight) + u.Delta
	}
}

// netRiser returns rear-minus-front riser pull for this segment's side.
// Rear riser pull raises the cell's angle of attack, front riser lowers it.
func (s Segment) netRiser(u dynamo.Controls) float64 {
	switch s.Side {
	case Left:
		return u.RearRiserLeft - u.FrontRiserLeft
	case Right:
		return u.RearRiserRight - u.FrontRiserRight
	default:
		return 0.5 * ((u.RearRiserLeft + u.RearRiserRight) - (u.FrontRiserLeft + u.FrontRiserRight))
	}
}

// deploySpanScale and deployChordScale grow a cell's presented geometry
// continuously from packed to fully inflated.
func deploySpanScale(d float64) float64  { return 0.15 + 0.85*clamp01(d) }
func deployChordScale(d float64) float64 { return 0.30 + 0.70*clamp01(d) }

// Resolve returns the segment geometry under the given control vector:
// canopy cells scale with deployment, brake flaps grow linearly with
// brake amount, everything else passes through unchanged.
func (s Segment) Resolve(u dynamo.Controls) Geometry {
	switch s.Kind {
	case CanopyCell:
		span := deploySpanScale(u.Deploy)
		chord := deployChordScale(u.Deploy)
		return Geometry{
			S:        s.S * span * chord,
			Chord:    s.Chord * chord,
			Position: frames.Vec3{X: s.Position.X * chord, Y: s.Position.Y * span, Z: s.Position.Z},
		}
	case BrakeFlap:
		amt := clamp01(s.brake(u))
		return Geometry{
			S:        s.S * amt,
			Chord:    s.Chord * amt,
			Position: s.Position,
		}
	default:
		return Geometry{S: s.S, Chord: s.Chord, Position: s.Position}
	}
}

// Coefficients evaluates the segment's coefficient strategy at the local
// flow angles (degrees) under the given control vector. Pure: safe to
// call on every integration sub-step.
func (s Segment) Coefficients(alphaDeg, betaDeg float64, u dynamo.Controls) aero.Coefficients {
	switch s.Kind {
	case Parasitic:
		return aero.Coefficients{
			CL: s.FixedCL,
			CD: s.FixedCD,
			CY: s.FixedCY,
			CP: 0.25,
		}

	case LiftingBody:
		alpha := alphaDeg + s.PitchOffset
		if s.PitchCoupled {
			alpha += u.PilotPitch
		}
		eff := s.Polar.Effective(u.Delta+u.Elevator, u.Dirty)
		return aero.Blend(alpha, betaDeg, eff)

	case CanopyCell:
		sinArc, cosArc := math.Sincos(s.ArcAngle * math.Pi / 180)
		alpha := alphaDeg*cosArc + betaDeg*sinArc
		beta := betaDeg*cosArc - alphaDeg*sinArc

		brakeAmt := s.brake(u)
		alpha += s.RiserAlphaGain*s.netRiser(u) + s.BrakeAlphaGain*brakeAmt
		eff := s.Polar.Effective(s.BrakeDeltaGain*brakeAmt, u.Dirty)
		return aero.Blend(alpha, beta, eff)

	case BrakeFlap:
		amt := clamp01(s.brake(u))
		if amt == 0 {
			return aero.Coefficients{CP: 0.25}
		}
		eff := s.Polar.Effective(0, u.Dirty)
		c := aero.Blend(alphaDeg+s.FlapOffset, betaDeg, eff)

		// The deflected flap rolls its lift vector off the stream plane;
		// split lift into stream and side components.
		sinRoll, cosRoll := math.Sincos(s.WindRollMax * amt * math.Pi / 180)
		c.CY += c.CL * sinRoll * float64(s.Side)
		c.CL *= cosRoll
		return c

	case Unzippable:
		p := polar.Lerp(s.Polar, s.PolarB, clamp01(u.Unzip))
		eff := p.Effective(u.Delta, u.Dirty)
		alpha := alphaDeg + s.PitchOffset
		if s.PitchCoupled {
			alpha += u.PilotPitch
		}
		return aero.Blend(alpha, betaDeg, eff)
	}

	return aero.Coefficients{CP: 0.25}
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
