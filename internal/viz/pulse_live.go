package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/qviz/internal/bloch"
)

const (
	pulseCanvasW = 56
	pulseCanvasH = 22
	errStep      = 0.01
)

// PulseModel is the interactive pulse view: the calibration error lives
// here, in the UI, and both trajectories are regenerated from scratch on
// every adjustment. The generators themselves hold no state.
type PulseModel struct {
	calErr    float64
	view      SphereView
	single    bloch.Trajectory
	composite bloch.Trajectory
}

func NewPulseModel(calErr float64) PulseModel {
	m := PulseModel{
		calErr: bloch.ClampError(calErr),
		view:   NewSphereView(NewCanvas(pulseCanvasW, pulseCanvasH)),
	}
	m.regenerate()
	return m
}

func (m *PulseModel) regenerate() {
	m.single, m.composite = m.view.Render(m.calErr)
}

func (m PulseModel) Init() tea.Cmd { return nil }

func (m PulseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			m.calErr = bloch.ClampError(m.calErr + errStep)
			m.regenerate()
		case "down", "j":
			m.calErr = bloch.ClampError(m.calErr - errStep)
			m.regenerate()
		case "r":
			m.calErr = 0
			m.regenerate()
		}
	}
	return m, nil
}

func (m PulseModel) View() string {
	canvasView := canvasStyle.Render(m.view.Canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render("PULSE CALIBRATION") + "\n\n")

	r := m.view.Sphere.Radius
	s.WriteString(labelStyle.Render("Error") + valueStyle.Render(fmt.Sprintf("%+.2f", m.calErr)) + "\n")
	s.WriteString(errorBar(m.calErr) + "\n\n")
	s.WriteString(labelStyle.Render("Single") +
		valueStyle.Render(fmt.Sprintf("misses by %4.1f%% R", 100*m.view.Sphere.Deviation(m.single)/r)) + "\n")
	s.WriteString(labelStyle.Render("Composite") +
		valueStyle.Render(fmt.Sprintf("misses by %4.1f%% R", 100*m.view.Sphere.Deviation(m.composite)/r)) + "\n")

	s.WriteString(helpStyle.Render("\n─────────────────────\n↑↓:Error R:Reset Q:Quit"))

	statsView := statsStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}

// errorBar renders the calibration slider, centered at zero.
func errorBar(calErr float64) string {
	const halfWidth = 10
	pos := int(calErr / bloch.MaxCalibrationError * halfWidth)
	var b strings.Builder
	b.WriteString("[")
	for i := -halfWidth; i <= halfWidth; i++ {
		switch {
		case i == pos:
			b.WriteString("●")
		case i == 0:
			b.WriteString("|")
		default:
			b.WriteString("-")
		}
	}
	b.WriteString("]")
	return b.String()
}
