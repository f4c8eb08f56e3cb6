package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/qviz/internal/transport"
)

const (
	fieldCanvasW    = 44
	fieldCanvasH    = 14
	waveformSamples = 60
	frameInterval   = time.Second / 60
)

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// TransportModel animates the trap handoff cycle. Each frame folds wall
// clock time into the normalized cycle and derives everything else from it;
// pausing simply stops accumulating elapsed time. Quitting tears down the
// tick loop with it, and a restarted program begins at t=0.
type TransportModel struct {
	schedule transport.Schedule
	cycle    time.Duration
	canvas   *Canvas

	elapsed  time.Duration
	lastTick time.Time
	running  bool
}

func NewTransportModel(policy transport.PathPolicy, cycle time.Duration) TransportModel {
	if cycle <= 0 {
		cycle = transport.DefaultCycle
	}
	return TransportModel{
		schedule: transport.NewSchedule(policy),
		cycle:    cycle,
		canvas:   NewCanvas(fieldCanvasW, fieldCanvasH),
		lastTick: time.Now(),
		running:  true,
	}
}

func (m TransportModel) Init() tea.Cmd { return tick() }

func (m TransportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
			m.lastTick = time.Now()
		case "r":
			m.elapsed = 0
			m.lastTick = time.Now()
		case "p":
			if m.schedule.Policy == transport.PathDiagonal {
				m.schedule.Policy = transport.PathSequential
			} else {
				m.schedule.Policy = transport.PathDiagonal
			}
		}
	case TickMsg:
		now := time.Time(msg)
		if m.running {
			m.elapsed += now.Sub(m.lastTick)
		}
		m.lastTick = now
		return m, tick()
	}
	return m, nil
}

func (m TransportModel) View() string {
	t := transport.TimeOfCycle(m.elapsed, m.cycle)
	st := m.schedule.StateAt(t)

	m.drawField(st)
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render("TWEEZER TRANSPORT") + "\n")
	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	s.WriteString(labelStyle.Render("Stage") + stageStyle.Render(st.Stage.String()) + "\n")
	s.WriteString(labelStyle.Render("Cycle") + valueStyle.Render(fmt.Sprintf("%.2f / %.0fs", t, m.cycle.Seconds())) + "\n")
	s.WriteString(labelStyle.Render("Path") + valueStyle.Render(m.schedule.Policy.String()) + "\n")
	s.WriteString(labelStyle.Render("SLM") + powerBar(st.SLMPower) + "\n")
	s.WriteString(labelStyle.Render("AOD") + powerBar(st.AODPower) + "\n")

	s.WriteString("\n" + m.waveformView(t))
	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause P:Path R:Reset Q:Quit"))

	statsView := statsStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}

// drawField renders the trap sites, the particle, and its path corridor.
func (m TransportModel) drawField(st transport.State) {
	m.canvas.Clear()
	cw, ch := m.canvas.SubWidth(), m.canvas.SubHeight()

	margin := 8
	mapX := func(x float64) int { return margin + int(x*float64(cw-2*margin)) }
	mapY := func(y float64) int { return ch - margin - int(y*float64(ch-2*margin)) }

	// Trap sites at both ends of the move.
	for _, site := range []transport.Position{m.schedule.Start, m.schedule.End} {
		sx, sy := mapX(site.X), mapY(site.Y)
		m.canvas.DrawLine(sx-3, sy-3, sx+3, sy-3)
		m.canvas.DrawLine(sx-3, sy+3, sx+3, sy+3)
		m.canvas.DrawLine(sx-3, sy-3, sx-3, sy+3)
		m.canvas.DrawLine(sx+3, sy-3, sx+3, sy+3)
	}

	px, py := mapX(st.Pos.X), mapY(st.Pos.Y)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			m.canvas.Set(px+dx, py+dy)
		}
	}
}

// waveformView plots both intensity schedules with a "now" cursor.
func (m TransportModel) waveformView(t float64) string {
	slm, aod := m.schedule.Waveforms(waveformSamples)
	chart := asciigraph.PlotMany(
		[][]float64{transport.Amplitudes(slm), transport.Amplitudes(aod)},
		asciigraph.Height(5),
		asciigraph.Width(waveformSamples),
		asciigraph.Caption("trap intensity"),
	)

	// asciigraph prefixes each row with a y-axis label gutter.
	const labelPad = 7
	cursor := transport.CursorIndex(t, waveformSamples)
	marker := strings.Repeat(" ", labelPad+cursor) + "▲"
	return graphStyle.Render(chart+"\n"+marker) + "\n"
}

// powerBar renders a trap intensity in [0,1] as a fixed-width bar.
func powerBar(v float64) string {
	const width = 16
	filled := int(v * width)
	if filled > width {
		filled = width
	}
	return valueStyle.Render(
		"[" + strings.Repeat("=", filled) + strings.Repeat("-", width-filled) + "]" +
			fmt.Sprintf(" %3.0f%%", v*100))
}
