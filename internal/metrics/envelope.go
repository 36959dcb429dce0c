// Package metrics provides per-step instrumentation implementing
// dynamo.Metric: flight-envelope bounds used by the end-to-end checks
// and surfaced in run reports.
package metrics

import (
	"math"

	"github.com/hartmandrector/polar-sub001/internal/dynamo"
)

// MaxSpeed records the largest total body-frame airspeed seen.
type MaxSpeed struct {
	max float64
}

func NewMaxSpeed() *MaxSpeed { return &MaxSpeed{} }

func (m *MaxSpeed) Name() string { return "max_speed" }

func (m *MaxSpeed) Observe(x dynamo.State, u dynamo.Controls, t float64) {
	if v := x.Airspeed(); v > m.max {
		m.max = v
	}
}

func (m *MaxSpeed) Value() float64 { return m.max }
func (m *MaxSpeed) Reset()         { m.max = 0 }

// MinSpeed records the smallest airspeed after the first observation.
type MinSpeed struct {
	min     float64
	samples int
}

func NewMinSpeed() *MinSpeed { return &MinSpeed{} }

func (m *MinSpeed) Name() string { return "min_speed" }

func (m *MinSpeed) Observe(x dynamo.State, u dynamo.Controls, t float64) {
	v := x.Airspeed()
	if m.samples == 0 || v < m.min {
		m.min = v
	}
	m.samples++
}

func (m *MinSpeed) Value() float64 { return m.min }
func (m *MinSpeed) Reset()         { m.min = 0; m.samples = 0 }

// AttitudeBound records the largest absolute roll or pitch angle (rad).
// A value past pi/2 means the vehicle tumbled.
type AttitudeBound struct {
	max float64
}

func NewAttitudeBound() *AttitudeBound { return &AttitudeBound{} }

func (m *AttitudeBound) Name() string { return "attitude_bound" }

func (m *AttitudeBound) Observe(x dynamo.State, u dynamo.Controls, t float64) {
	for _, i := range []int{dynamo.EulerRoll, dynamo.EulerPitch} {
		if a := math.Abs(x[i]); a > m.max {
			m.max = a
		}
	}
}

func (m *AttitudeBound) Value() float64 { return m.max }
func (m *AttitudeBound) Reset()         { m.max = 0 }
