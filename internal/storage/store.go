// Package storage persists simulation runs: one directory per run with
// metadata.json, a states.csv trace and a forces.csv per-segment
// breakdown of the final condition. The kernel never touches this
// package; persistence is strictly an orchestration concern.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/hartmandrector/polar-sub001/internal/dynamo"
	"github.com/hartmandrector/polar-sub001/internal/vehicle"
)

var stateHeader = []string{
	"time",
	"north", "east", "down",
	"u", "v", "w",
	"roll", "pitch", "yaw",
	"p", "q", "r",
}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string             `json:"id"`
	Vehicle    string             `json:"vehicle"`
	Scenario   string             `json:"scenario"`
	Timestamp  time.Time          `json:"timestamp"`
	Dt         float64            `json:"dt"`
	Duration   float64            `json:"duration"`
	Integrator string             `json:"integrator"`
	Metrics    map[string]float64 `json:"metrics"`
}

func (s *Store) Save(veh, scenario string, dt, duration float64, integrator string, result *dynamo.Result, forces []vehicle.SegmentForce) (string, error) {
	runID := fmt.Sprintf("%s_%d", veh, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Vehicle:    veh,
		Scenario:   scenario,
		Timestamp:  time.Now(),
		Dt:         dt,
		Duration:   duration,
		Integrator: integrator,
		Metrics:    result.Metrics,
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := s.writeStates(runDir, result); err != nil {
		return "", err
	}
	if len(forces) > 0 {
		if err := s.writeForces(runDir, forces); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) writeStates(runDir string, result *dynamo.Result) error {
	csvFile, err := os.Create(filepath.Join(runDir, "states.csv"))
	if err != nil {
		return err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if len(result.States) == 0 {
		return nil
	}

	if err := w.Write(stateHeader); err != nil {
		return err
	}

	for i := range result.States {
		row := make([]string, 0, len(stateHeader))
		row = append(row, strconv.FormatFloat(result.Times[i], 'f', 6, 64))
		for _, val := range result.States[i] {
			row = append(row, strconv.FormatFloat(val, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) writeForces(runDir string, forces []vehicle.SegmentForce) error {
	csvFile, err := os.Create(filepath.Join(runDir, "forces.csv"))
	if err != nil {
		return err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"segment", "lift", "drag", "side", "moment", "cp", "alpha", "beta"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, f := range forces {
		row := []string{
			f.Name,
			strconv.FormatFloat(f.Lift, 'f', 4, 64),
			strconv.FormatFloat(f.Drag, 'f', 4, 64),
			strconv.FormatFloat(f.Side, 'f', 4, 64),
			strconv.FormatFloat(f.Moment, 'f', 4, 64),
			strconv.FormatFloat(f.CP, 'f', 4, 64),
			strconv.FormatFloat(f.AlphaDeg, 'f', 3, 64),
			strconv.FormatFloat(f.BetaDeg, 'f', 3, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadStates(runID string) ([][]float64, []float64, error) {
	csvPath := filepath.Join(s.baseDir, runID, "states.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	if len(records) < 2 {
		return [][]float64{}, []float64{}, nil
	}

	times := make([]float64, 0, len(records)-1)
	states := make([][]float64, 0, len(records)-1)

	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 2 {
			continue
		}

		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}

		state := make([]float64, 0, len(record)-1)
		for _, field := range record[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				break
			}
			state = append(state, v)
		}

		times = append(times, t)
		states = append(states, state)
	}

	return states, times, nil
}
