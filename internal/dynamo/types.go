package dynamo

import (
	"fmt"
	"math"
)

// State index constants for the 12-scalar rigid-body state vector.
// Position is inertial NED (meters), velocity is body-frame (m/s),
// attitude is 3-2-1 Euler angles (radians), rates are body-frame (rad/s).
const (
	PosNorth = iota
	PosEast
	PosDown
	VelU
	VelV
	VelW
	EulerRoll
	EulerPitch
	EulerYaw
	RateP
	RateQ
	RateR

	StateDim = 12
)

type State []float64

func NewState() State {
	return make(State, StateDim)
}

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

func (s State) Add(other State) State {
	result := make(State, len(s))
	for i := range s {
		if i < len(other) {
			result[i] = s[i] + other[i]
		} else {
			result[i] = s[i]
		}
	}
	return result
}

func (s State) Scale(factor float64) State {
	result := make(State, len(s))
	for i := range s {
		result[i] = s[i] * factor
	}
	return result
}

func (s State) Sub(other State) State {
	result := make(State, len(s))
	for i := range s {
		if i < len(other) {
			result[i] = s[i] - other[i]
		} else {
			result[i] = s[i]
		}
	}
	return result
}

// Airspeed returns the total body-frame speed.
func (s State) Airspeed() float64 {
	u, v, w := s[VelU], s[VelV], s[VelW]
	return math.Sqrt(u*u + v*v + w*w)
}

// Altitude returns height above the NED origin (positive up).
func (s State) Altitude() float64 {
	return -s[PosDown]
}

// FlightState is a readable view of the state vector for reporting.
// Angles and rates are in degrees; the state vector itself stays in
// radians.
type FlightState struct {
	North, East, Altitude float64 // m
	U, V, W               float64 // m/s body frame
	Roll, Pitch, Yaw      float64 // deg
	P, Q, R               float64 // deg/s
}

const radToDeg = 180.0 / math.Pi

func (s State) Flight() FlightState {
	return FlightState{
		North:    s[PosNorth],
		East:     s[PosEast],
		Altitude: -s[PosDown],
		U:        s[VelU],
		V:        s[VelV],
		W:        s[VelW],
		Roll:     s[EulerRoll] * radToDeg,
		Pitch:    s[EulerPitch] * radToDeg,
		Yaw:      s[EulerYaw] * radToDeg,
		P:        s[RateP] * radToDeg,
		Q:        s[RateQ] * radToDeg,
		R:        s[RateR] * radToDeg,
	}
}

// Vector converts the readable record back to a state vector.
func (f FlightState) Vector() State {
	s := NewState()
	s[PosNorth] = f.North
	s[PosEast] = f.East
	s[PosDown] = -f.Altitude
	s[VelU] = f.U
	s[VelV] = f.V
	s[VelW] = f.W
	s[EulerRoll] = f.Roll / radToDeg
	s[EulerPitch] = f.Pitch / radToDeg
	s[EulerYaw] = f.Yaw / radToDeg
	s[RateP] = f.P / radToDeg
	s[RateQ] = f.Q / radToDeg
	s[RateR] = f.R / radToDeg
	return s
}

// Controls is the full control vector for one evaluation. All channels are
// dimensionless pulls in [0,1] unless noted; defaults are zero/neutral.
type Controls struct {
	BrakeLeft       float64
	BrakeRight      float64
	FrontRiserLeft  float64
	FrontRiserRight float64
	RearRiserLeft   float64
	RearRiserRight  float64
	WeightShiftLR   float64 // -1 left .. +1 right
	Elevator        float64
	Rudder          float64
	AileronLeft     float64
	AileronRight    float64
	Flap            float64
	PitchThrottle   float64
	YawThrottle     float64
	RollThrottle    float64
	Dihedral        float64 // degrees
	Deploy          float64 // deployment fraction, 0 packed .. 1 inflated
	PilotPitch      float64 // degrees, externally driven
	Unzip           float64 // 0 zipped .. 1 unzipped

	// Legacy scalar channels.
	Delta float64 // symmetric primary control amount
	Dirty float64 // fabric-tension degradation, 0..1
}

// System is a continuous dynamical system dX/dt = f(X, u, t).
type System interface {
	Derive(x State, u Controls, t float64) State
	StateDim() int
}

type Integrator interface {
	Step(dyn System, x State, u Controls, t float64, dt float64) State
}

// ControlProvider supplies the control vector for each step.
type ControlProvider interface {
	Controls(x State, t float64) Controls
}

// ControlFunc adapts a function to the ControlProvider interface.
type ControlFunc func(x State, t float64) Controls

func (f ControlFunc) Controls(x State, t float64) Controls { return f(x, t) }

// Constant returns a provider that always yields u.
func Constant(u Controls) ControlProvider {
	return ControlFunc(func(State, float64) Controls { return u })
}

type Metric interface {
	Name() string
	Observe(x State, u Controls, t float64)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(x State, u Controls, t float64)
}

type Config struct {
	Dt            float64
	Duration      float64
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		Dt:            0.01,
		Duration:      10.0,
		ValidateState: true,
	}
}

type Result struct {
	States     []State
	Controls   []Controls
	Times      []float64
	Metrics    map[string]float64
	StepsTaken int
	Errors     []error
}

type SimError struct {
	Time    float64
	Step    int
	Message string
}

func (e SimError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %s", e.Step, e.Time, e.Message)
}
