// Package tui renders simulations in the terminal: a raw-ANSI live view
// driven as a sim observer, and a bubbletea interactive app for picking
// vehicles and scenarios and flying them with keyboard controls.
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/hartmandrector/polar-sub001/internal/dynamo"
)

const (
	width       = 70
	height      = 20
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer is a dynamo.Observer that draws a side-view flight trace:
// the vehicle glyph pitched with the attitude, a trailing path scaled to
// the altitude band covered so far, and a state readout.
type LiveRenderer struct {
	vehicle   string
	frameRate int
	lastFrame time.Time
	canvas    [][]rune
	trail     []struct{ dist, alt float64 }
	maxAlt    float64
	minAlt    float64
}

func NewLiveRenderer(vehicle string, frameRate int) *LiveRenderer {
	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
	}
	return &LiveRenderer{
		vehicle:   vehicle,
		frameRate: frameRate,
		canvas:    canvas,
		trail:     make([]struct{ dist, alt float64 }, 0, 200),
	}
}

func (r *LiveRenderer) Start() { fmt.Print(hideCursor) }
func (r *LiveRenderer) Stop()  { fmt.Print(showCursor) }

func (r *LiveRenderer) OnStep(x dynamo.State, u dynamo.Controls, t float64) {
	dist := math.Hypot(x[dynamo.PosNorth], x[dynamo.PosEast])
	alt := x.Altitude()
	r.trail = append(r.trail, struct{ dist, alt float64 }{dist, alt})
	if len(r.trail) > 200 {
		r.trail = r.trail[1:]
	}
	if len(r.trail) == 1 || alt > r.maxAlt {
		r.maxAlt = alt
	}
	if len(r.trail) == 1 || alt < r.minAlt {
		r.minAlt = alt
	}

	elapsed := time.Since(r.lastFrame)
	if elapsed < time.Second/time.Duration(r.frameRate) {
		return
	}
	r.lastFrame = time.Now()

	r.clear()
	r.drawTrail()
	r.drawVehicle(x)
	r.render(x, t)
}

func (r *LiveRenderer) clear() {
	for y := range r.canvas {
		for x := range r.canvas[y] {
			r.canvas[y][x] = ' '
		}
	}
}

func (r *LiveRenderer) set(x, y int, c rune) {
	if x >= 0 && x < width && y >= 0 && y < height {
		r.canvas[y][x] = c
	}
}

func (r *LiveRenderer) line(x1, y1, x2, y2 int, c rune) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy
	for {
		r.set(x1, y1, c)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func (r *LiveRenderer) project(dist, alt float64) (int, int) {
	span := r.maxAlt - r.minAlt
	if span < 1 {
		span = 1
	}
	first := r.trail[0].dist
	last := r.trail[len(r.trail)-1].dist
	dspan := last - first
	if dspan < 1 {
		dspan = 1
	}
	px := int((dist - first) / dspan * float64(width-10))
	py := int((r.maxAlt - alt) / span * float64(height-4))
	return px + 4, py + 2
}

func (r *LiveRenderer) drawTrail() {
	for _, p := range r.trail {
		px, py := r.project(p.dist, p.alt)
		r.set(px, py, '·')
	}
}

func (r *LiveRenderer) drawVehicle(x dynamo.State) {
	last := r.trail[len(r.trail)-1]
	px, py := r.project(last.dist, last.alt)

	// Pitch the glyph: a short chord line through the vehicle point.
	theta := x[dynamo.EulerPitch]
	dx := int(4 * math.Cos(theta))
	dy := int(4 * math.Sin(theta))
	r.line(px-dx, py+dy, px+dx, py-dy, '=')
	r.set(px, py, '@')
}

func (r *LiveRenderer) render(x dynamo.State, t float64) {
	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString(fmt.Sprintf(" %s  t=%6.2fs\n", r.vehicle, t))
	b.WriteString(" " + strings.Repeat("─", width) + "\n")
	for _, row := range r.canvas {
		b.WriteString(" " + string(row) + "\n")
	}
	b.WriteString(" " + strings.Repeat("─", width) + "\n")

	deg := 180 / math.Pi
	b.WriteString(fmt.Sprintf(" alt %7.1fm   V %5.1fm/s   pitch %6.1f°  roll %6.1f°  yaw %6.1f°\n",
		x.Altitude(), x.Airspeed(),
		x[dynamo.EulerPitch]*deg, x[dynamo.EulerRoll]*deg, x[dynamo.EulerYaw]*deg))
	b.WriteString(fmt.Sprintf(" u %6.2f  v %6.2f  w %6.2f   p %6.2f  q %6.2f  r %6.2f\n",
		x[dynamo.VelU], x[dynamo.VelV], x[dynamo.VelW],
		x[dynamo.RateP], x[dynamo.RateQ], x[dynamo.RateR]))
	fmt.Print(b.String())
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
