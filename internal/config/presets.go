package config

var Presets = map[string]map[string]*Config{
	"canopy": {
		"trim": {
			Vehicle: "canopy", Integrator: "rk4", Dt: 0.02, Duration: 30.0,
			InitState: InitStateConfig{Altitude: 1000, Airspeed: 12.0, Descent: 1.7, PitchDeg: -6},
			Controls:  ControlsConfig{Deploy: 1.0},
		},
		"freefall": {
			Vehicle: "canopy", Integrator: "rk4", Dt: 0.01, Duration: 5.0,
			InitState: InitStateConfig{Altitude: 1500},
			Controls:  ControlsConfig{Deploy: 1.0},
		},
		"flare": {
			Vehicle: "canopy", Integrator: "rk4", Dt: 0.01, Duration: 8.0,
			InitState: InitStateConfig{Altitude: 50, Airspeed: 12.0, Descent: 1.7, PitchDeg: -6},
			Controls:  ControlsConfig{Deploy: 1.0, BrakeLeft: 0.9, BrakeRight: 0.9},
		},
		"deep-brake": {
			Vehicle: "canopy", Integrator: "rk4", Dt: 0.02, Duration: 20.0,
			InitState: InitStateConfig{Altitude: 800, Airspeed: 8.0, Descent: 2.5, PitchDeg: -4},
			Controls:  ControlsConfig{Deploy: 1.0, BrakeLeft: 0.6, BrakeRight: 0.6},
		},
		"left-turn": {
			Vehicle: "canopy", Integrator: "rk4", Dt: 0.02, Duration: 15.0,
			InitState: InitStateConfig{Altitude: 600, Airspeed: 12.0, Descent: 1.7, PitchDeg: -6},
			Controls:  ControlsConfig{Deploy: 1.0, BrakeLeft: 0.5},
		},
		"deploy": {
			Vehicle: "canopy", Integrator: "rk4", Dt: 0.01, Duration: 6.0,
			InitState: InitStateConfig{Altitude: 900, Descent: 45},
			Controls:  ControlsConfig{Deploy: 0.2},
		},
	},
	"wingsuit": {
		"glide": {
			Vehicle: "wingsuit", Integrator: "rk4", Dt: 0.01, Duration: 20.0,
			InitState: InitStateConfig{Altitude: 2500, Airspeed: 40, Descent: 12, PitchDeg: -20},
		},
		"unzip": {
			Vehicle: "wingsuit", Integrator: "rk4", Dt: 0.01, Duration: 10.0,
			InitState: InitStateConfig{Altitude: 1200, Airspeed: 35, Descent: 15, PitchDeg: -25},
			Controls:  ControlsConfig{Unzip: 1.0},
		},
	},
	"skydiver": {
		"belly": {
			Vehicle: "skydiver", Integrator: "rk4", Dt: 0.01, Duration: 15.0,
			InitState: InitStateConfig{Altitude: 3000, Descent: 20},
		},
	},
}

// GetPreset returns the named scenario for a vehicle, or nil.
func GetPreset(vehicle, scenario string) *Config {
	byVehicle, ok := Presets[vehicle]
	if !ok {
		return nil
	}
	cfg, ok := byVehicle[scenario]
	if !ok {
		return nil
	}
	return cfg
}

// ListPresets returns the scenario names for a vehicle, or nil.
func ListPresets(vehicle string) []string {
	byVehicle, ok := Presets[vehicle]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(byVehicle))
	for name := range byVehicle {
		names = append(names, name)
	}
	return names
}
