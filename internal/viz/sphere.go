package viz

import (
	"math"

	"github.com/san-kum/qviz/internal/bloch"
	"github.com/san-kum/qviz/internal/geom"
)

const wireSegments = 48

// SphereView draws the Bloch sphere wireframe and pulse trajectories onto a
// canvas, everything projected through the one shared oblique view.
type SphereView struct {
	Sphere bloch.Sphere
	Canvas *Canvas
}

// NewSphereView sizes a sphere to the canvas and wires both together.
func NewSphereView(c *Canvas) SphereView {
	vp := geom.Viewport{
		Width:  float64(c.SubWidth()),
		Height: float64(c.SubHeight()),
	}
	radius := math.Min(vp.Width, vp.Height)*0.5 - 4
	return SphereView{
		Sphere: bloch.NewSphere(radius, vp),
		Canvas: c,
	}
}

// DrawWireframe draws the equator, a meridian, the vertical axis and both
// pole markers.
func (sv SphereView) DrawWireframe() {
	r := sv.Sphere.Radius
	vp := sv.Sphere.View

	equator := make([]geom.ScreenPoint, 0, wireSegments+1)
	meridian := make([]geom.ScreenPoint, 0, wireSegments+1)
	for i := 0; i <= wireSegments; i++ {
		a := 2 * math.Pi * float64(i) / float64(wireSegments)
		equator = append(equator, vp.Project(geom.Vector3{X: r * math.Cos(a), Z: r * math.Sin(a)}))
		meridian = append(meridian, vp.Project(geom.Vector3{X: r * math.Cos(a), Y: r * math.Sin(a)}))
	}
	sv.Canvas.DrawPolyline(equator)
	sv.Canvas.DrawPolyline(meridian)

	north := vp.Project(sv.Sphere.Start())
	south := vp.Project(sv.Sphere.Target())
	sv.Canvas.DrawLine(int(north.CX), int(north.CY), int(south.CX), int(south.CY))
	sv.Canvas.MarkDot(north, 1)
	sv.Canvas.MarkDot(south, 1)
}

// DrawTrajectory draws a pulse path and highlights its endpoint.
func (sv SphereView) DrawTrajectory(t bloch.Trajectory) {
	sv.Canvas.DrawPolyline(t.Points)
	if len(t.Points) > 0 {
		sv.Canvas.MarkDot(t.Points[len(t.Points)-1], 2)
	}
}

// Render regenerates both trajectories for a calibration error and draws
// the complete pulse scene. The trajectories are rebuilt wholesale; the
// error scalar is the single source of truth.
func (sv SphereView) Render(calErr float64) (single, composite bloch.Trajectory) {
	sv.Canvas.Clear()
	sv.DrawWireframe()

	single = sv.Sphere.SinglePulse(calErr, bloch.DefaultSteps)
	composite = sv.Sphere.CompositePulse(calErr, bloch.DefaultLegSteps)
	sv.DrawTrajectory(single)
	sv.DrawTrajectory(composite)
	return single, composite
}
