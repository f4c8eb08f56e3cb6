package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/qviz/internal/bloch"
	"github.com/san-kum/qviz/internal/geom"
)

// WireframeSVG draws the sphere outline behind trajectories: equator, a
// meridian, and the polar axis, all through the shared oblique projection.
func WireframeSVG(s bloch.Sphere, segments int) string {
	if segments < 8 {
		segments = 8
	}
	var sb strings.Builder

	circle := func(point func(a float64) geom.Vector3) {
		sb.WriteString(`<polyline fill="none" stroke="#333333" stroke-width="1" points="`)
		for i := 0; i <= segments; i++ {
			a := 2 * math.Pi * float64(i) / float64(segments)
			p := s.View.Project(point(a))
			sb.WriteString(fmt.Sprintf("%.1f,%.1f ", p.CX, p.CY))
		}
		sb.WriteString("\"/>\n")
	}

	circle(func(a float64) geom.Vector3 {
		return geom.Vector3{X: s.Radius * math.Cos(a), Z: s.Radius * math.Sin(a)}
	})
	circle(func(a float64) geom.Vector3 {
		return geom.Vector3{X: s.Radius * math.Cos(a), Y: s.Radius * math.Sin(a)}
	})

	north := s.View.Project(s.Start())
	south := s.View.Project(s.Target())
	sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#333333"/>`+"\n",
		north.CX, north.CY, south.CX, south.CY))

	return sb.String()
}

// PulseSceneSVG composes wireframe plus single and composite trajectories
// into one complete document.
func PulseSceneSVG(s bloch.Sphere, calErr float64) string {
	single := s.SinglePulse(calErr, bloch.DefaultSteps)
	composite := s.CompositePulse(calErr, bloch.DefaultLegSteps)

	body := WireframeSVG(s, 64) +
		trajectoryBody(single, "#ff5555") +
		trajectoryBody(composite, "#55ff55")

	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
%s</svg>`, s.View.Width, s.View.Height, s.View.Width, s.View.Height, body)
}

func trajectoryBody(traj bloch.Trajectory, color string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<polyline fill="none" stroke="%s" stroke-width="1.5" points="`, color))
	for _, p := range traj.Points {
		sb.WriteString(fmt.Sprintf("%.1f,%.1f ", p.CX, p.CY))
	}
	sb.WriteString("\"/>\n")
	if n := len(traj.Points); n > 0 {
		end := traj.Points[n-1]
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="3" fill="%s"/>`+"\n", end.CX, end.CY, color))
	}
	return sb.String()
}
