package storage

import (
	"testing"

	"github.com/hartmandrector/polar-sub001/internal/dynamo"
	"github.com/hartmandrector/polar-sub001/internal/frames"
	"github.com/hartmandrector/polar-sub001/internal/vehicle"
)

func sampleResult() *dynamo.Result {
	x0 := dynamo.NewState()
	x1 := x0.Clone()
	x1[dynamo.VelU] = 10
	x1[dynamo.PosDown] = -999.9

	return &dynamo.Result{
		States:     []dynamo.State{x0, x1},
		Times:      []float64{0, 0.01},
		Metrics:    map[string]float64{"max_speed": 10},
		StepsTaken: 1,
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}

	forces := []vehicle.SegmentForce{
		{Name: "cell_center", Lift: 400, Drag: 50, CP: 0.28, AlphaDeg: 8, Force: frames.Vec3{Z: -400}},
	}

	runID, err := st.Save("canopy", "trim", 0.01, 0.01, "rk4", sampleResult(), forces)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if meta.Vehicle != "canopy" || meta.Scenario != "trim" || meta.Integrator != "rk4" {
		t.Errorf("metadata mismatch: %+v", meta)
	}
	if meta.Metrics["max_speed"] != 10 {
		t.Errorf("metrics not persisted: %+v", meta.Metrics)
	}

	states, times, err := st.LoadStates(runID)
	if err != nil {
		t.Fatalf("load states: %v", err)
	}
	if len(states) != 2 || len(times) != 2 {
		t.Fatalf("expected 2 samples, got %d states %d times", len(states), len(times))
	}
	if states[1][dynamo.VelU] != 10 {
		t.Errorf("state values lost: %v", states[1])
	}
	if times[1] != 0.01 {
		t.Errorf("times lost: %v", times)
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list empty store: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("fresh store should have no runs, got %d", len(runs))
	}

	if _, err := st.Save("canopy", "", 0.01, 0.01, "rk4", sampleResult(), nil); err != nil {
		t.Fatalf("save: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].Vehicle != "canopy" {
		t.Errorf("listed run mismatch: %+v", runs[0])
	}
}

func TestLoadMissingRun(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("nope"); err == nil {
		t.Error("loading a missing run should fail")
	}
}
