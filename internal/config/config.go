package config

import (
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hartmandrector/polar-sub001/internal/dynamo"
)

const (
	DefaultDt       = 0.01
	DefaultDuration = 10.0
	DefaultAltitude = 1000.0
)

type Config struct {
	Vehicle    string          `yaml:"vehicle"`
	Integrator string          `yaml:"integrator"`
	Dt         float64         `yaml:"dt"`
	Duration   float64         `yaml:"duration"`
	InitState  InitStateConfig `yaml:"init_state"`
	Controls   ControlsConfig  `yaml:"controls"`
}

type InitStateConfig struct {
	Altitude   float64 `yaml:"altitude"`    // meters above NED origin
	Airspeed   float64 `yaml:"airspeed"`    // m/s along the body X axis
	Descent    float64 `yaml:"descent"`     // m/s body Z (down) component
	PitchDeg   float64 `yaml:"pitch_deg"`   // Euler pitch
	RollDeg    float64 `yaml:"roll_deg"`    // Euler roll
	HeadingDeg float64 `yaml:"heading_deg"` // Euler yaw
}

type ControlsConfig struct {
	BrakeLeft       float64 `yaml:"brake_left"`
	BrakeRight      float64 `yaml:"brake_right"`
	FrontRiserLeft  float64 `yaml:"front_riser_left"`
	FrontRiserRight float64 `yaml:"front_riser_right"`
	RearRiserLeft   float64 `yaml:"rear_riser_left"`
	RearRiserRight  float64 `yaml:"rear_riser_right"`
	Delta           float64 `yaml:"delta"`
	Dirty           float64 `yaml:"dirty"`
	Deploy          float64 `yaml:"deploy"`
	PilotPitch      float64 `yaml:"pilot_pitch"`
	Unzip           float64 `yaml:"unzip"`
}

func DefaultConfig() *Config {
	return &Config{
		Vehicle:    "canopy",
		Integrator: "rk4",
		Dt:         DefaultDt,
		Duration:   DefaultDuration,
		InitState: InitStateConfig{
			Altitude: DefaultAltitude,
		},
		Controls: ControlsConfig{
			Deploy: 1.0,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// GetInitState builds the 12-scalar state vector from the config record.
func (c *Config) GetInitState() dynamo.State {
	x := dynamo.NewState()
	x[dynamo.PosDown] = -c.InitState.Altitude
	x[dynamo.VelU] = c.InitState.Airspeed
	x[dynamo.VelW] = c.InitState.Descent
	x[dynamo.EulerRoll] = c.InitState.RollDeg * math.Pi / 180
	x[dynamo.EulerPitch] = c.InitState.PitchDeg * math.Pi / 180
	x[dynamo.EulerYaw] = c.InitState.HeadingDeg * math.Pi / 180
	return x
}

// GetControls builds the control vector from the config record.
func (c *Config) GetControls() dynamo.Controls {
	return dynamo.Controls{
		BrakeLeft:       c.Controls.BrakeLeft,
		BrakeRight:      c.Controls.BrakeRight,
		FrontRiserLeft:  c.Controls.FrontRiserLeft,
		FrontRiserRight: c.Controls.FrontRiserRight,
		RearRiserLeft:   c.Controls.RearRiserLeft,
		RearRiserRight:  c.Controls.RearRiserRight,
		Delta:           c.Controls.Delta,
		Dirty:           c.Controls.Dirty,
		Deploy:          c.Controls.Deploy,
		PilotPitch:      c.Controls.PilotPitch,
		Unzip:           c.Controls.Unzip,
	}
}
