package geom

import "math"

// Vector3 is a point on or near the Bloch sphere. The vertical axis is Y;
// rotation axes live in the horizontal x-z plane.
type Vector3 struct {
	X, Y, Z float64
}

func (v Vector3) Add(o Vector3) Vector3      { return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vector3) Sub(o Vector3) Vector3      { return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vector3) Scale(s float64) Vector3    { return Vector3{v.X * s, v.Y * s, v.Z * s} }
func (v Vector3) Dot(o Vector3) float64      { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vector3) Norm() float64              { return math.Sqrt(v.Dot(v)) }
func (v Vector3) DistanceTo(o Vector3) float64 { return v.Sub(o).Norm() }

func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vector3) Normalize() Vector3 {
	if l := v.Norm(); l != 0 {
		return v.Scale(1 / l)
	}
	return Vector3{}
}

// IsValid reports whether all components are finite.
func (v Vector3) IsValid() bool {
	for _, c := range []float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Rotate applies the Rodrigues rotation of v by theta radians about the
// horizontal-plane axis (cos axisPhase, 0, sin axisPhase). The axis is unit
// length by construction, so the rotation preserves |v|.
func Rotate(v Vector3, axisPhase, theta float64) Vector3 {
	k := Vector3{math.Cos(axisPhase), 0, math.Sin(axisPhase)}
	c, s := math.Cos(theta), math.Sin(theta)
	return v.Scale(c).
		Add(k.Cross(v).Scale(s)).
		Add(k.Scale(k.Dot(v) * (1 - c)))
}
