package vehicle

import (
	"math"

	"github.com/hartmandrector/polar-sub001/internal/body"
	"github.com/hartmandrector/polar-sub001/internal/dynamo"
	"github.com/hartmandrector/polar-sub001/internal/frames"
	"github.com/hartmandrector/polar-sub001/internal/segment"
)

// System wires a vehicle into the dynamo.System interface. The composite
// frame is the only cached resource; it is rebuilt exactly when the
// deploy or pilot-pitch drivers change value.
type System struct {
	Vehicle *Vehicle
	Atmos   Atmosphere

	frame *CompositeFrame
}

// NewSystem creates a steppable system for the vehicle under the
// standard atmosphere.
func NewSystem(v *Vehicle) *System {
	return &System{Vehicle: v, Atmos: ISA()}
}

func (s *System) StateDim() int { return dynamo.StateDim }

// Composite returns the cached composite frame for the control vector,
// rebuilding on a (deploy, pilotPitch) value change. Apparent mass uses
// the reference density so the cache key stays two scalars.
func (s *System) Composite(u dynamo.Controls) *CompositeFrame {
	if !s.frame.Matches(u.Deploy, u.PilotPitch) {
		s.frame = BuildComposite(s.Vehicle, u.Deploy, u.PilotPitch, s.Atmos.Rho0)
	}
	return s.frame
}

// SegmentForce is the per-segment output record exposed for debug
// rendering and export.
type SegmentForce struct {
	Name     string
	Lift     float64
	Drag     float64
	Side     float64
	Moment   float64
	CP       float64
	AlphaDeg float64
	BetaDeg  float64
	Force    frames.Vec3 // body frame, Newtons
}

// sumForces accumulates body-frame force and moment about the CG over
// all segments, with each segment evaluated at its own rotating-frame
// local flow. The returned slice is nil unless collect is set.
func (s *System) sumForces(vBody, omega frames.Vec3, rho float64, u dynamo.Controls, cf *CompositeFrame, collect bool) (frames.Vec3, frames.Vec3, []SegmentForce) {
	var force, moment frames.Vec3
	var report []SegmentForce
	if collect {
		report = make([]SegmentForce, 0, len(s.Vehicle.Segments))
	}

	for _, seg := range s.Vehicle.Segments {
		geom := seg.Resolve(u)
		r := geom.Position.Scale(s.Vehicle.RefLength).Sub(cf.CG)

		flow := segment.LocalFlow(vBody, omega, r)
		f, c, _ := seg.Forces(flow.AlphaDeg, flow.BetaDeg, rho, flow.V, u)

		alphaRad := flow.AlphaDeg * math.Pi / 180
		betaRad := flow.BetaDeg * math.Pi / 180
		axes := frames.NewWindAxes(alphaRad, betaRad)
		fb := axes.Force(f.Lift, f.Drag, f.Side)

		// Lever arm: shift the application point from the quarter-chord
		// reference to the center of pressure, rotated by the segment's
		// pitch offset.
		arm := frames.Vec3{X: -(f.CP - 0.25) * geom.Chord}
		if off := seg.PitchOffset; off != 0 {
			arm = frames.RotationY(off * math.Pi / 180).MulVec(arm)
		}
		rcp := r.Add(arm)

		force = force.Add(fb)
		moment = moment.Add(rcp.Cross(fb))
		moment.Y += f.Moment

		// Lateral stability moments scale with the reference length.
		q := 0.5 * rho * flow.V * flow.V
		moment.X += q * geom.S * s.Vehicle.RefLength * c.CR
		moment.Z += q * geom.S * s.Vehicle.RefLength * c.CN

		if collect {
			report = append(report, SegmentForce{
				Name:     seg.Name,
				Lift:     f.Lift,
				Drag:     f.Drag,
				Side:     f.Side,
				Moment:   f.Moment,
				CP:       f.CP,
				AlphaDeg: flow.AlphaDeg,
				BetaDeg:  flow.BetaDeg,
				Force:    fb,
			})
		}
	}
	return force, moment, report
}

// Derive computes the 12-state time derivative: aerodynamic forces and
// moments from every segment at its local flow, gravity in the body
// frame, the anisotropic rigid-body equations of motion, and the Euler
// kinematic equations.
func (s *System) Derive(x dynamo.State, u dynamo.Controls, t float64) dynamo.State {
	cf := s.Composite(u)

	vBody := frames.Vec3{X: x[dynamo.VelU], Y: x[dynamo.VelV], Z: x[dynamo.VelW]}
	omega := frames.Vec3{X: x[dynamo.RateP], Y: x[dynamo.RateQ], Z: x[dynamo.RateR]}
	phi, theta, psi := x[dynamo.EulerRoll], x[dynamo.EulerPitch], x[dynamo.EulerYaw]

	rho := s.Atmos.Density(-x[dynamo.PosDown])
	force, moment, _ := s.sumForces(vBody, omega, rho, u, cf, false)

	// Gravity acts on physical mass only.
	force = force.Add(frames.GravityBody(phi, theta, s.Vehicle.Gravity).Scale(cf.Mass))

	acc := body.Translational(force, cf.EffMass, vBody, omega)
	angAcc := body.Rotational(moment, cf.EffInertia, omega)

	posDot := frames.BodyToInertial(phi, theta, psi).MulVec(vBody)
	phiDot, thetaDot, psiDot := frames.EulerRates(phi, theta, omega.X, omega.Y, omega.Z)

	dx := dynamo.NewState()
	dx[dynamo.PosNorth] = posDot.X
	dx[dynamo.PosEast] = posDot.Y
	dx[dynamo.PosDown] = posDot.Z
	dx[dynamo.VelU] = acc.X
	dx[dynamo.VelV] = acc.Y
	dx[dynamo.VelW] = acc.Z
	dx[dynamo.EulerRoll] = phiDot
	dx[dynamo.EulerPitch] = thetaDot
	dx[dynamo.EulerYaw] = psiDot
	dx[dynamo.RateP] = angAcc.X
	dx[dynamo.RateQ] = angAcc.Y
	dx[dynamo.RateR] = angAcc.Z
	return dx
}

// Forces returns the system-level body force/moment and the per-segment
// breakdown for the given state and controls, for rendering and export.
func (s *System) Forces(x dynamo.State, u dynamo.Controls) (frames.Vec3, frames.Vec3, []SegmentForce) {
	cf := s.Composite(u)
	vBody := frames.Vec3{X: x[dynamo.VelU], Y: x[dynamo.VelV], Z: x[dynamo.VelW]}
	omega := frames.Vec3{X: x[dynamo.RateP], Y: x[dynamo.RateQ], Z: x[dynamo.RateR]}
	rho := s.Atmos.Density(-x[dynamo.PosDown])
	return s.sumForces(vBody, omega, rho, u, cf, true)
}
