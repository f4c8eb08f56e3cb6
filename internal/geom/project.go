package geom

import "math"

// Oblique view shared by every sphere visual. All callers project through
// the same tilt/rotation so trajectories, wireframes and markers line up.
const (
	ViewRotation = -math.Pi / 6 // about the vertical (y) axis
	ViewTilt     = math.Pi / 8  // about the horizontal (x) axis
)

// ScreenPoint is a 2-D drawing coordinate in the viewport.
type ScreenPoint struct {
	CX, CY float64
}

// Viewport centers projected points in a drawing area.
type Viewport struct {
	Width, Height float64
}

// Project maps a sphere coordinate to the viewport under the fixed oblique
// view: rotate about y, tilt about x, then translate to the center. Screen y
// grows downward.
func (vp Viewport) Project(v Vector3) ScreenPoint {
	cr, sr := math.Cos(ViewRotation), math.Sin(ViewRotation)
	x := v.X*cr + v.Z*sr
	z := -v.X*sr + v.Z*cr

	ct, st := math.Cos(ViewTilt), math.Sin(ViewTilt)
	y := v.Y*ct - z*st

	return ScreenPoint{
		CX: vp.Width/2 + x,
		CY: vp.Height/2 - y,
	}
}
