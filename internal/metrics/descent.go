package metrics

import (
	"math"

	"github.com/hartmandrector/polar-sub001/internal/dynamo"
)

// DescentRate averages the inertial sink rate (m/s, positive down) over
// the run, from the body velocity rotated by the pitch/roll attitude.
type DescentRate struct {
	total   float64
	samples int
}

func NewDescentRate() *DescentRate { return &DescentRate{} }

func (m *DescentRate) Name() string { return "descent_rate" }

func (m *DescentRate) Observe(x dynamo.State, u dynamo.Controls, t float64) {
	phi, theta := x[dynamo.EulerRoll], x[dynamo.EulerPitch]
	uVel, vVel, wVel := x[dynamo.VelU], x[dynamo.VelV], x[dynamo.VelW]

	// Third row of the body-to-inertial DCM.
	sink := -math.Sin(theta)*uVel +
		math.Cos(theta)*math.Sin(phi)*vVel +
		math.Cos(theta)*math.Cos(phi)*wVel

	m.total += sink
	m.samples++
}

func (m *DescentRate) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *DescentRate) Reset() { m.total = 0; m.samples = 0 }

// GlideRatio averages horizontal speed over sink rate, ignoring samples
// with negligible sink.
type GlideRatio struct {
	total   float64
	samples int
}

func NewGlideRatio() *GlideRatio { return &GlideRatio{} }

func (m *GlideRatio) Name() string { return "glide_ratio" }

func (m *GlideRatio) Observe(x dynamo.State, u dynamo.Controls, t float64) {
	phi, theta := x[dynamo.EulerRoll], x[dynamo.EulerPitch]
	uVel, vVel, wVel := x[dynamo.VelU], x[dynamo.VelV], x[dynamo.VelW]

	sink := -math.Sin(theta)*uVel +
		math.Cos(theta)*math.Sin(phi)*vVel +
		math.Cos(theta)*math.Cos(phi)*wVel
	if sink < 0.1 {
		return
	}
	total := x.Airspeed()
	horiz := math.Sqrt(math.Max(total*total-sink*sink, 0))
	m.total += horiz / sink
	m.samples++
}

func (m *GlideRatio) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *GlideRatio) Reset() { m.total = 0; m.samples = 0 }
