package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/hartmandrector/polar-sub001/internal/config"
	"github.com/hartmandrector/polar-sub001/internal/dynamo"
	"github.com/hartmandrector/polar-sub001/internal/integrators"
	"github.com/hartmandrector/polar-sub001/internal/metrics"
	"github.com/hartmandrector/polar-sub001/internal/sim"
	"github.com/hartmandrector/polar-sub001/internal/storage"
	"github.com/hartmandrector/polar-sub001/internal/tui"
	"github.com/hartmandrector/polar-sub001/internal/vehicle"
)

var (
	dataDir    string
	dt         float64
	duration   float64
	integrator string
	scenario   string
	configFile string
	frameRate  int

	altitude float64
	airspeed float64
	descent  float64
	pitchDeg float64

	brakeLeft  float64
	brakeRight float64
	deploy     float64
	unzip      float64
	dirty      float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "polarsim",
		Short: "six degree of freedom flight dynamics lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the interactive TUI when no command given
			return tui.Run()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".polarsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [vehicle]",
		Short: "run simulation",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
	addFlightFlags(runCmd)
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&scenario, "scenario", "", "use scenario preset")

	liveCmd := &cobra.Command{
		Use:   "live [vehicle]",
		Short: "run simulation with live flight trace",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addFlightFlags(liveCmd)
	liveCmd.Flags().StringVar(&scenario, "scenario", "", "use scenario preset")
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive terminal mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run()
		},
	}

	trimCmd := &cobra.Command{
		Use:   "trim [vehicle]",
		Short: "find steady glide trim",
		Args:  cobra.ExactArgs(1),
		RunE:  findTrim,
	}
	trimCmd.Flags().Float64Var(&brakeLeft, "brake-left", 0, "left brake pull")
	trimCmd.Flags().Float64Var(&brakeRight, "brake-right", 0, "right brake pull")
	trimCmd.Flags().Float64Var(&deploy, "deploy", 1.0, "deployment fraction")
	trimCmd.Flags().Float64Var(&dirty, "dirty", 0, "fabric degradation")

	forcesCmd := &cobra.Command{
		Use:   "forces [vehicle]",
		Short: "per-segment force breakdown at the given flight condition",
		Args:  cobra.ExactArgs(1),
		RunE:  showForces,
	}
	addFlightFlags(forcesCmd)

	vehiclesCmd := &cobra.Command{
		Use:   "vehicles",
		Short: "list vehicle presets",
		RunE:  listVehicles,
	}

	scenariosCmd := &cobra.Command{
		Use:   "scenarios [vehicle]",
		Short: "list available scenarios for a vehicle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if len(names) == 0 {
				fmt.Printf("no scenarios for vehicle: %s\n", args[0])
				return nil
			}
			fmt.Printf("scenarios for %s:\n", args[0])
			for _, n := range names {
				fmt.Printf("  %s\n", n)
			}
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run results",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	rootCmd.AddCommand(runCmd, liveCmd, tuiCmd, trimCmd, forcesCmd, vehiclesCmd,
		scenariosCmd, listCmd, plotCmd, exportCmd, exportCSVCmd, exportJSONCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addFlightFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", 0.01, "timestep")
	cmd.Flags().Float64Var(&duration, "time", 10.0, "duration")
	cmd.Flags().StringVar(&integrator, "integrator", "rk4", "integrator")
	cmd.Flags().Float64Var(&altitude, "alt", 1000, "initial altitude (m)")
	cmd.Flags().Float64Var(&airspeed, "speed", 10, "initial forward speed (m/s)")
	cmd.Flags().Float64Var(&descent, "descent", 1.5, "initial descent rate (m/s)")
	cmd.Flags().Float64Var(&pitchDeg, "pitch", -6, "initial pitch (deg)")
	cmd.Flags().Float64Var(&brakeLeft, "brake-left", 0, "left brake pull")
	cmd.Flags().Float64Var(&brakeRight, "brake-right", 0, "right brake pull")
	cmd.Flags().Float64Var(&deploy, "deploy", 1.0, "deployment fraction")
	cmd.Flags().Float64Var(&unzip, "unzip", 0, "wing unzip fraction")
	cmd.Flags().Float64Var(&dirty, "dirty", 0, "fabric degradation")
}

// buildConfig resolves scenario preset, config file and CLI flags into
// one run configuration. CLI flags override whatever they name.
func buildConfig(cmd *cobra.Command, veh string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Vehicle = veh

	if scenario != "" {
		p := config.GetPreset(veh, scenario)
		if p == nil {
			return nil, fmt.Errorf("unknown scenario: %s (available: %v)", scenario, config.ListPresets(veh))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	apply := func(name string, dst *float64, v float64) {
		if cmd.Flags().Changed(name) {
			*dst = v
		}
	}
	apply("dt", &cfg.Dt, dt)
	apply("time", &cfg.Duration, duration)
	apply("alt", &cfg.InitState.Altitude, altitude)
	apply("speed", &cfg.InitState.Airspeed, airspeed)
	apply("descent", &cfg.InitState.Descent, descent)
	apply("pitch", &cfg.InitState.PitchDeg, pitchDeg)
	apply("brake-left", &cfg.Controls.BrakeLeft, brakeLeft)
	apply("brake-right", &cfg.Controls.BrakeRight, brakeRight)
	apply("deploy", &cfg.Controls.Deploy, deploy)
	apply("unzip", &cfg.Controls.Unzip, unzip)
	apply("dirty", &cfg.Controls.Dirty, dirty)
	if cmd.Flags().Changed("integrator") {
		cfg.Integrator = integrator
	}

	return cfg, nil
}

func newSimulator(veh *vehicle.Vehicle, cfg *config.Config) *sim.Simulator {
	sys := vehicle.NewSystem(veh)
	integ := integrators.New(cfg.Integrator)
	s := sim.New(sys, integ, dynamo.Constant(cfg.GetControls()))
	s.AddMetric(metrics.NewMaxSpeed())
	s.AddMetric(metrics.NewMinSpeed())
	s.AddMetric(metrics.NewDescentRate())
	s.AddMetric(metrics.NewGlideRatio())
	s.AddMetric(metrics.NewAttitudeBound())
	return s
}

func runSimulation(cmd *cobra.Command, args []string) error {
	veh := vehicle.Get(args[0])
	if veh == nil {
		return fmt.Errorf("unknown vehicle: %s (available: %v)", args[0], vehicle.Names())
	}

	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	s := newSimulator(veh, cfg)

	fmt.Printf("running %s simulation...\n", args[0])
	start := time.Now()

	result, err := s.Run(context.Background(), cfg.GetInitState(), dynamo.Config{
		Dt:            cfg.Dt,
		Duration:      cfg.Duration,
		ValidateState: true,
	})
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	// Per-segment breakdown at the final state, for the forces export.
	sys := vehicle.NewSystem(veh)
	u := cfg.GetControls()
	var forces []vehicle.SegmentForce
	if n := len(result.States); n > 0 {
		_, _, forces = sys.Forces(result.States[n-1], u)
	}

	runID, err := st.Save(args[0], scenario, cfg.Dt, cfg.Duration, cfg.Integrator, result, forces)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", result.StepsTaken)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	fs := result.States[len(result.States)-1].Flight()
	fmt.Printf("\nfinal: alt %.1f m, speed %.1f m/s, pitch %.1f deg, yaw %.1f deg\n",
		fs.Altitude, math.Sqrt(fs.U*fs.U+fs.V*fs.V+fs.W*fs.W), fs.Pitch, fs.Yaw)

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	veh := vehicle.Get(args[0])
	if veh == nil {
		return fmt.Errorf("unknown vehicle: %s (available: %v)", args[0], vehicle.Names())
	}

	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	s := newSimulator(veh, cfg)
	r := tui.NewLiveRenderer(args[0], frameRate)
	r.Start()
	defer r.Stop()

	pace := time.Duration(cfg.Dt * float64(time.Second))
	return s.RunWithCallback(context.Background(), cfg.GetInitState(), dynamo.Config{
		Dt:       cfg.Dt,
		Duration: cfg.Duration,
	}, func(x dynamo.State, u dynamo.Controls, t float64) bool {
		r.OnStep(x, u, t)
		time.Sleep(pace)
		return true
	})
}

func findTrim(cmd *cobra.Command, args []string) error {
	veh := vehicle.Get(args[0])
	if veh == nil {
		return fmt.Errorf("unknown vehicle: %s (available: %v)", args[0], vehicle.Names())
	}

	sys := vehicle.NewSystem(veh)
	u := dynamo.Controls{
		BrakeLeft:  brakeLeft,
		BrakeRight: brakeRight,
		Deploy:     deploy,
		Dirty:      dirty,
	}

	res := vehicle.FindTrim(sys, u)

	fmt.Printf("trim for %s (brakes %.2f/%.2f, deploy %.2f):\n\n",
		args[0], brakeLeft, brakeRight, deploy)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "airspeed\t%.2f m/s\n", res.Airspeed)
	fmt.Fprintf(w, "alpha\t%.2f deg\n", res.AlphaDeg)
	fmt.Fprintf(w, "pitch\t%.2f deg\n", res.PitchDeg)
	fmt.Fprintf(w, "residual\t%.4f\n", res.Residual)
	return w.Flush()
}

func showForces(cmd *cobra.Command, args []string) error {
	veh := vehicle.Get(args[0])
	if veh == nil {
		return fmt.Errorf("unknown vehicle: %s (available: %v)", args[0], vehicle.Names())
	}

	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	sys := vehicle.NewSystem(veh)
	u := cfg.GetControls()
	force, moment, segs := sys.Forces(cfg.GetInitState(), u)

	fmt.Printf("%s at %.1f m/s, %.1f m/s down, pitch %.1f deg:\n\n",
		args[0], cfg.InitState.Airspeed, cfg.InitState.Descent, cfg.InitState.PitchDeg)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEGMENT\tALPHA\tBETA\tLIFT\tDRAG\tSIDE\tCP")
	for _, f := range segs {
		fmt.Fprintf(w, "%s\t%.1f\t%.1f\t%.1f\t%.1f\t%.1f\t%.2f\n",
			f.Name, f.AlphaDeg, f.BetaDeg, f.Lift, f.Drag, f.Side, f.CP)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\ntotal force (body):  [%.1f %.1f %.1f] N\n", force.X, force.Y, force.Z)
	fmt.Printf("total moment (body): [%.1f %.1f %.1f] Nm\n", moment.X, moment.Y, moment.Z)
	return nil
}

func listVehicles(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMASS\tSPAN\tSEGMENTS")
	for _, name := range vehicle.Names() {
		v := vehicle.Get(name)
		fmt.Fprintf(w, "%s\t%.0fkg\t%.1fm\t%d\n",
			v.Name, v.TotalMass, v.CanopySpan, len(v.Segments))
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tVEHICLE\tSCENARIO\tTIME\tDURATION\tDT\tINTEG")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2fs\t%.4fs\t%s\n",
			run.ID,
			run.Vehicle,
			run.Scenario,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.Integrator,
		)
	}

	return w.Flush()
}

var plotChannels = []struct {
	index   int
	caption string
	scale   float64
}{
	{dynamo.PosDown, "altitude (m, NED down negated)", -1},
	{dynamo.VelU, "forward speed u (m/s)", 1},
	{dynamo.VelW, "vertical speed w (m/s)", 1},
	{dynamo.EulerPitch, "pitch (rad)", 1},
	{dynamo.EulerRoll, "roll (rad)", 1},
	{dynamo.RateQ, "pitch rate q (rad/s)", 1},
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, _, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	if len(states) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("vehicle: %s\n", meta.Vehicle)
	fmt.Printf("samples: %d\n\n", len(states))

	for _, ch := range plotChannels {
		if ch.index >= len(states[0]) {
			continue
		}
		data := make([]float64, len(states))
		for i := range states {
			data[i] = states[i][ch.index] * ch.scale
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(ch.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	states, times, err := st.LoadStates(args[0])
	if err != nil {
		return err
	}

	if len(states) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{"time", "north", "east", "down", "u", "v", "w",
		"roll", "pitch", "yaw", "p", "q", "r"}
	if err := w.Write(header); err != nil {
		return err
	}

	for i := range states {
		row := []string{strconv.FormatFloat(times[i], 'f', 6, 64)}
		for _, val := range states[i] {
			row = append(row, strconv.FormatFloat(val, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	states, times, err := st.LoadStates(args[0])
	if err != nil {
		return err
	}

	out := struct {
		Meta   *storage.RunMetadata `json:"meta"`
		Times  []float64            `json:"times"`
		States [][]float64          `json:"states"`
	}{meta, times, states}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
