package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hartmandrector/polar-sub001/internal/config"
	"github.com/hartmandrector/polar-sub001/internal/dynamo"
	"github.com/hartmandrector/polar-sub001/internal/integrators"
	"github.com/hartmandrector/polar-sub001/internal/vehicle"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

var vehicleInfo = map[string]string{
	"canopy":   "7-cell ram-air + pilot",
	"wingsuit": "three-surface wingsuit",
	"skydiver": "belly-to-earth freefall",
}

type uiState int

const (
	stateMenu uiState = iota
	stateScenario
	stateSim
)

type model struct {
	state  uiState
	cursor int

	vehicles  []string
	selected  string
	scenarios []string
	scenario  string

	cfg      *config.Config
	sys      *vehicle.System
	integ    dynamo.Integrator
	controls dynamo.Controls
	simState dynamo.State
	simTime  float64

	running   bool
	paused    bool
	speed     float64
	lastFrame time.Time
	fps       float64
	history   []float64

	width  int
	height int
}

func NewInteractiveApp() model {
	return model{
		state:    stateMenu,
		vehicles: vehicle.Names(),
		speed:    1.0,
		history:  make([]float64, 0, 60),
		width:    80,
		height:   24,
	}
}

// Run starts the interactive TUI and blocks until it exits.
func Run() error {
	_, err := tea.NewProgram(NewInteractiveApp(), tea.WithAltScreen()).Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(16*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if m.state != stateSim {
			return m, nil
		}
		if m.running && !m.paused && m.simState != nil {
			now := time.Now()
			if !m.lastFrame.IsZero() {
				dt := now.Sub(m.lastFrame).Seconds()
				if dt > 0 {
					m.fps = 1.0 / dt
				}
			}
			m.lastFrame = now
			steps := int(m.speed)
			if steps < 1 {
				steps = 1
			}
			for i := 0; i < steps; i++ {
				m.step()
			}
		}
		if m.running && m.state == stateSim {
			return m, tick()
		}
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateScenario:
		return m.scenarioKey(msg)
	case stateSim:
		return m.simKey(msg)
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.vehicles)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.selected = m.vehicles[m.cursor]
		m.scenarios = config.ListPresets(m.selected)
		m.cursor = 0
		m.state = stateScenario
	}
	return m, nil
}

func (m model) scenarioKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "escape":
		m.state = stateMenu
		m.cursor = 0
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.scenarios)-1 {
			m.cursor++
		}
	case "enter", " ", "s":
		if len(m.scenarios) == 0 {
			return m, nil
		}
		m.scenario = m.scenarios[m.cursor]
		m.start()
		m.state = stateSim
		return m, tea.Batch(tea.ClearScreen, tick())
	}
	return m, nil
}

func (m model) simKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "escape":
		m.running = false
		m.state = stateMenu
		m.cursor = 0
		return m, tea.ClearScreen
	case " ", "p":
		m.paused = !m.paused
	case "r":
		m.start()
		return m, tea.ClearScreen
	case "+", "=":
		m.speed = math.Min(m.speed*2, 16)
	case "-", "_":
		m.speed = math.Max(m.speed/2, 0.25)
	case "0":
		m.speed = 1.0

	// In-flight control keys.
	case "left", "h":
		m.controls.BrakeLeft = clampPull(m.controls.BrakeLeft + 0.1)
	case "right", "l":
		m.controls.BrakeRight = clampPull(m.controls.BrakeRight + 0.1)
	case "down", "j":
		m.controls.BrakeLeft = clampPull(m.controls.BrakeLeft + 0.1)
		m.controls.BrakeRight = clampPull(m.controls.BrakeRight + 0.1)
	case "up", "k":
		m.controls.BrakeLeft = clampPull(m.controls.BrakeLeft - 0.1)
		m.controls.BrakeRight = clampPull(m.controls.BrakeRight - 0.1)
	case "u":
		m.controls.Unzip = clampPull(m.controls.Unzip + 0.25)
	}
	return m, nil
}

func clampPull(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func (m *model) start() {
	cfg := config.GetPreset(m.selected, m.scenario)
	if cfg == nil {
		cfg = config.DefaultConfig()
		cfg.Vehicle = m.selected
	}
	m.cfg = cfg
	m.sys = vehicle.NewSystem(vehicle.Get(m.selected))
	m.integ = integrators.New(cfg.Integrator)
	m.controls = cfg.GetControls()
	m.simState = cfg.GetInitState()
	m.simTime = 0
	m.history = m.history[:0]
	m.speed = 1.0
	m.lastFrame = time.Time{}
	m.running = true
	m.paused = false
}

func (m *model) step() {
	if m.simTime >= m.cfg.Duration {
		m.paused = true
		return
	}
	m.simState = m.integ.Step(m.sys, m.simState, m.controls, m.simTime, m.cfg.Dt)
	m.simTime += m.cfg.Dt
	if !m.simState.IsValid() {
		m.paused = true
		return
	}
	m.history = append(m.history, m.simState.Altitude())
	if len(m.history) > 60 {
		m.history = m.history[1:]
	}
}

func (m model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateScenario:
		return m.viewScenario()
	case stateSim:
		return m.viewSim()
	}
	return ""
}

func (m model) viewMenu() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("          " + cyan.Render("p o l a r s i m") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")

	for i, name := range m.vehicles {
		desc := vehicleInfo[name]
		if i == m.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-12s", name)) + dim.Render(desc) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-12s", name)) + dimmer.Render(desc) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   enter scenarios   q quit") + "\n")

	return b.String()
}

func (m model) viewScenario() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("      " + cyan.Render(m.selected) + "  " + dim.Render(vehicleInfo[m.selected]) + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 30)) + "\n\n")

	if len(m.scenarios) == 0 {
		b.WriteString("        " + dim.Render("no scenarios") + "\n")
	}
	for i, name := range m.scenarios {
		if i == m.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(name) + "\n")
		} else {
			b.WriteString("        " + dim.Render(name) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select  enter fly  esc back") + "\n")

	return b.String()
}

func (m model) viewSim() string {
	var b strings.Builder

	statusIcon := green.Render("●")
	statusText := green.Render("flying")
	if m.paused {
		statusIcon = yellow.Render("○")
		statusText = yellow.Render("paused")
	}
	b.WriteString(fmt.Sprintf("\n   %s %s/%s  %s\n",
		statusIcon, cyan.Render(m.selected), cyan.Render(m.scenario), statusText))

	progress := m.simTime / m.cfg.Duration
	if progress > 1 {
		progress = 1
	}
	barWidth := 36
	filled := int(progress * float64(barWidth))
	timeStr := fmt.Sprintf("%.1fs/%.0fs", m.simTime, m.cfg.Duration)
	bar := cyan.Render(strings.Repeat("━", filled)) + dimmer.Render(strings.Repeat("─", barWidth-filled))
	b.WriteString(fmt.Sprintf("   %s %s  %s\n\n", bar, dim.Render(timeStr), dim.Render(fmt.Sprintf("%.0ffps", m.fps))))

	if m.simState != nil {
		x := m.simState
		deg := 180 / math.Pi
		b.WriteString("   " + dim.Render("alt ") + white.Render(fmt.Sprintf("%7.1f m", x.Altitude())) +
			dim.Render("   V ") + white.Render(fmt.Sprintf("%5.1f m/s", x.Airspeed())) + "\n")
		b.WriteString("   " + dim.Render("pitch ") + magenta.Render(fmt.Sprintf("%6.1f°", x[dynamo.EulerPitch]*deg)) +
			dim.Render("  roll ") + magenta.Render(fmt.Sprintf("%6.1f°", x[dynamo.EulerRoll]*deg)) +
			dim.Render("  yaw ") + magenta.Render(fmt.Sprintf("%6.1f°", x[dynamo.EulerYaw]*deg)) + "\n")
		b.WriteString("   " + dim.Render("rates ") +
			white.Render(fmt.Sprintf("p %5.2f  q %5.2f  r %5.2f", x[dynamo.RateP], x[dynamo.RateQ], x[dynamo.RateR])) + "\n\n")

		b.WriteString("   " + dim.Render("brakes ") +
			pullBar(m.controls.BrakeLeft) + " " + pullBar(m.controls.BrakeRight))
		if m.controls.Unzip > 0 {
			b.WriteString(dim.Render("   unzip ") + yellow.Render(fmt.Sprintf("%.0f%%", m.controls.Unzip*100)))
		}
		b.WriteString("\n")

		if len(m.history) > 1 {
			b.WriteString("\n   " + dim.Render("alt ") + sparkline(m.history, 40) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("   ←→ brakes  ↑↓ both  space pause  +/- speed  r restart  esc back") + "\n")

	return b.String()
}

func pullBar(v float64) string {
	const w = 8
	filled := int(v * w)
	return green.Render(strings.Repeat("█", filled)) + dimmer.Render(strings.Repeat("░", w-filled))
}

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

func sparkline(data []float64, width int) string {
	if len(data) == 0 {
		return ""
	}
	if len(data) > width {
		data = data[len(data)-width:]
	}
	lo, hi := data[0], data[0]
	for _, v := range data {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}
	var b strings.Builder
	for _, v := range data {
		idx := int((v - lo) / span * float64(len(sparkRunes)-1))
		b.WriteRune(sparkRunes[idx])
	}
	return cyan.Render(b.String())
}
