package bloch

import (
	"math"

	"github.com/san-kum/qviz/internal/geom"
)

const (
	// MaxCalibrationError bounds the fractional over/undershoot of a pulse.
	// Callers clamp before generating; the generators themselves are total.
	MaxCalibrationError = 0.2

	DefaultSteps    = 60 // single-pulse samples
	DefaultLegSteps = 30 // samples per composite leg
)

// ClampError limits a calibration error to the supported range.
func ClampError(e float64) float64 {
	return math.Max(-MaxCalibrationError, math.Min(MaxCalibrationError, e))
}

// PulseSegment is one rotation leg: total angle, axis direction in the
// horizontal plane, and sampling resolution.
type PulseSegment struct {
	Angle     float64
	AxisPhase float64
	Steps     int
}

// Trajectory is an ordered polyline in screen space plus its sphere-space
// endpoint. It is regenerated wholesale on every parameter change.
type Trajectory struct {
	Points []geom.ScreenPoint
	End    geom.Vector3
}

// Sphere generates pulse trajectories on a Bloch sphere of fixed radius,
// projected through one shared viewport.
type Sphere struct {
	Radius float64
	View   geom.Viewport
}

func NewSphere(radius float64, view geom.Viewport) Sphere {
	return Sphere{Radius: radius, View: view}
}

// Start is the +y pole where every pulse begins.
func (s Sphere) Start() geom.Vector3 { return geom.Vector3{Y: s.Radius} }

// Target is the -y pole an ideal half-turn pulse reaches.
func (s Sphere) Target() geom.Vector3 { return geom.Vector3{Y: -s.Radius} }

// SinglePulse samples one rotation from 0 to pi*(1+calErr) about axis phase
// 0. Every sample is re-derived from the start vector at the fractional
// angle reached so far, so no drift accumulates along the path. The endpoint
// misses the target pole in proportion to the error.
func (s Sphere) SinglePulse(calErr float64, steps int) Trajectory {
	if steps <= 0 {
		steps = DefaultSteps
	}
	total := math.Pi * (1 + calErr)
	start := s.Start()

	traj := Trajectory{Points: make([]geom.ScreenPoint, 0, steps+1)}
	var v geom.Vector3
	for i := 0; i <= steps; i++ {
		v = geom.Rotate(start, 0, total*float64(i)/float64(steps))
		traj.Points = append(traj.Points, s.View.Project(v))
	}
	traj.End = v
	return traj
}

// CompositeSegments returns the three legs of the composite half-turn:
// quarter-turn, half-turn about a perpendicular axis phase, quarter-turn.
// Scaling every leg by (1+calErr) lets the oversized middle leg cancel the
// angular error of the outer legs to second order, which is what keeps the
// composite endpoint near the target pole across the whole error range.
func CompositeSegments(calErr float64, legSteps int) [3]PulseSegment {
	if legSteps <= 0 {
		legSteps = DefaultLegSteps
	}
	outer := PulseSegment{Angle: math.Pi / 2 * (1 + calErr), AxisPhase: 0, Steps: legSteps}
	middle := PulseSegment{Angle: math.Pi * (1 + calErr), AxisPhase: math.Pi / 2, Steps: legSteps}
	return [3]PulseSegment{outer, middle, outer}
}

// CompositePulse executes the three legs in sequence, each continuing from
// the endpoint of the previous one (true incremental composition, unlike
// the single pulse).
func (s Sphere) CompositePulse(calErr float64, legSteps int) Trajectory {
	segs := CompositeSegments(calErr, legSteps)

	traj := Trajectory{Points: make([]geom.ScreenPoint, 0, 3*segs[0].Steps+1)}
	v := s.Start()
	traj.Points = append(traj.Points, s.View.Project(v))

	for _, seg := range segs {
		legStart := v
		for i := 1; i <= seg.Steps; i++ {
			v = geom.Rotate(legStart, seg.AxisPhase, seg.Angle*float64(i)/float64(seg.Steps))
			traj.Points = append(traj.Points, s.View.Project(v))
		}
	}
	traj.End = v
	return traj
}

// Deviation is the distance from a trajectory endpoint to the target pole.
func (s Sphere) Deviation(t Trajectory) float64 {
	return t.End.DistanceTo(s.Target())
}
