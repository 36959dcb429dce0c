package sim

import (
	"context"
	"math"
	"testing"

	"github.com/hartmandrector/polar-sub001/internal/dynamo"
)

// decay is dx/dt = -x, solution x0*exp(-t).
type decay struct{}

func (d *decay) Derive(x dynamo.State, u dynamo.Controls, t float64) dynamo.State {
	return dynamo.State{-x[0]}
}

func (d *decay) StateDim() int { return 1 }

type eulerStep struct{}

func (e *eulerStep) Step(dyn dynamo.System, x dynamo.State, u dynamo.Controls, t, dt float64) dynamo.State {
	dx := dyn.Derive(x, u, t)
	out := make(dynamo.State, len(x))
	for i := range x {
		out[i] = x[i] + dt*dx[i]
	}
	return out
}

// blowup drives the state non-finite after the given time.
type blowup struct{ at float64 }

func (b *blowup) Derive(x dynamo.State, u dynamo.Controls, t float64) dynamo.State {
	if t >= b.at {
		return dynamo.State{math.NaN()}
	}
	return dynamo.State{0}
}

func (b *blowup) StateDim() int { return 1 }

func TestSimulatorRun(t *testing.T) {
	s := New(&decay{}, &eulerStep{}, nil)

	result, err := s.Run(context.Background(), dynamo.State{1.0}, dynamo.Config{
		Dt:       0.1,
		Duration: 1.0,
	})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.States) != 11 {
		t.Errorf("expected 11 states, got %d", len(result.States))
	}
	if result.StepsTaken != 10 {
		t.Errorf("expected 10 steps, got %d", result.StepsTaken)
	}

	final := result.States[len(result.States)-1][0]
	want := math.Exp(-1)
	if math.Abs(final-want) > 0.2 {
		t.Errorf("final state: got %f, want ~%f", final, want)
	}
}

func TestSimulatorValidatesConfig(t *testing.T) {
	s := New(&decay{}, &eulerStep{}, nil)

	if _, err := s.Run(context.Background(), dynamo.State{1}, dynamo.Config{Dt: 0, Duration: 1}); err == nil {
		t.Error("zero dt should be rejected")
	}
	if _, err := s.Run(context.Background(), dynamo.State{1}, dynamo.Config{Dt: 0.1, Duration: 0}); err == nil {
		t.Error("zero duration should be rejected")
	}
}

func TestSimulatorStopsOnInvalidState(t *testing.T) {
	s := New(&blowup{at: 0.5}, &eulerStep{}, nil)

	result, err := s.Run(context.Background(), dynamo.State{1}, dynamo.Config{
		Dt:            0.1,
		Duration:      2.0,
		ValidateState: true,
	})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(result.Errors) == 0 {
		t.Fatal("expected a recorded state error")
	}
	if result.StepsTaken >= 20 {
		t.Errorf("run should stop early, took %d steps", result.StepsTaken)
	}
	for _, x := range result.States {
		if !x.IsValid() {
			t.Error("invalid states must not be recorded")
		}
	}
}

func TestSimulatorContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := New(&decay{}, &eulerStep{}, nil)
	_, err := s.Run(ctx, dynamo.State{1}, dynamo.Config{Dt: 0.01, Duration: 10})
	if err == nil {
		t.Error("cancelled context should abort the run")
	}
}

type countMetric struct{ n int }

func (c *countMetric) Name() string                                         { return "count" }
func (c *countMetric) Observe(x dynamo.State, u dynamo.Controls, t float64) { c.n++ }
func (c *countMetric) Value() float64                                       { return float64(c.n) }
func (c *countMetric) Reset()                                               { c.n = 0 }

func TestSimulatorMetrics(t *testing.T) {
	s := New(&decay{}, &eulerStep{}, nil)
	m := &countMetric{n: 99} // Reset must clear this
	s.AddMetric(m)

	result, err := s.Run(context.Background(), dynamo.State{1}, dynamo.Config{Dt: 0.1, Duration: 1})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if got := result.Metrics["count"]; got != 10 {
		t.Errorf("metric observed %v times, want 10", got)
	}
}

func TestRunWithCallbackEarlyStop(t *testing.T) {
	s := New(&decay{}, &eulerStep{}, nil)

	calls := 0
	err := s.RunWithCallback(context.Background(), dynamo.State{1}, dynamo.Config{
		Dt:       0.1,
		Duration: 10,
	}, func(x dynamo.State, u dynamo.Controls, t float64) bool {
		calls++
		return calls < 5
	})
	if err != nil {
		t.Fatalf("callback run failed: %v", err)
	}
	if calls != 5 {
		t.Errorf("callback should stop the run at 5 calls, got %d", calls)
	}
}

func TestControlProviderReceivesState(t *testing.T) {
	s := New(&decay{}, &eulerStep{}, dynamo.ControlFunc(func(x dynamo.State, t float64) dynamo.Controls {
		return dynamo.Controls{Delta: x[0]}
	}))

	result, err := s.Run(context.Background(), dynamo.State{1}, dynamo.Config{Dt: 0.1, Duration: 0.5})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(result.Controls) == 0 {
		t.Fatal("controls not recorded")
	}
	if result.Controls[0].Delta != 1.0 {
		t.Errorf("first control should see the initial state: %f", result.Controls[0].Delta)
	}
}
