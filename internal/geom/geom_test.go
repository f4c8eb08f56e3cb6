package geom

import (
	"math"
	"testing"
)

func TestRotateIdentityAtZero(t *testing.T) {
	v := Vector3{0.3, 0.9, -0.2}
	got := Rotate(v, 0.7, 0)
	if got != v {
		t.Errorf("rotate by 0 changed vector: %+v -> %+v", v, got)
	}
}

func TestRotatePreservesNorm(t *testing.T) {
	v := Vector3{0, 1, 0}
	for _, phase := range []float64{0, math.Pi / 4, math.Pi / 2, 1.3} {
		for theta := -2 * math.Pi; theta <= 2*math.Pi; theta += 0.37 {
			got := Rotate(v, phase, theta)
			if math.Abs(got.Norm()-1) > 1e-12 {
				t.Fatalf("norm not preserved: phase=%v theta=%v norm=%v", phase, theta, got.Norm())
			}
		}
	}
}

func TestRotateComposesAboutFixedAxis(t *testing.T) {
	v := Vector3{0, 1, 0}
	phase := 0.4
	t1, t2 := 0.9, -1.7

	step := Rotate(Rotate(v, phase, t1), phase, t2)
	direct := Rotate(v, phase, t1+t2)

	if step.DistanceTo(direct) > 1e-12 {
		t.Errorf("composition mismatch: %+v vs %+v", step, direct)
	}
}

func TestRotateHalfTurnReachesOppositePole(t *testing.T) {
	north := Vector3{0, 1, 0}
	south := Vector3{0, -1, 0}
	got := Rotate(north, 0, math.Pi)
	if got.DistanceTo(south) > 1e-12 {
		t.Errorf("half-turn missed opposite pole: %+v", got)
	}
}

func TestProjectDeterministic(t *testing.T) {
	vp := Viewport{Width: 160, Height: 96}
	v := Vector3{12, 30, -7}
	a := vp.Project(v)
	b := vp.Project(v)
	if a != b {
		t.Errorf("projection not deterministic: %+v vs %+v", a, b)
	}
}

func TestProjectCentersOrigin(t *testing.T) {
	vp := Viewport{Width: 160, Height: 96}
	p := vp.Project(Vector3{})
	if p.CX != 80 || p.CY != 48 {
		t.Errorf("origin not at viewport center: %+v", p)
	}
}

func TestProjectPoleGoesUp(t *testing.T) {
	// The +y pole must land above the viewport center under the oblique view.
	vp := Viewport{Width: 160, Height: 96}
	p := vp.Project(Vector3{0, 30, 0})
	if p.CY >= 48 {
		t.Errorf("north pole projected at or below center: %+v", p)
	}
}

func TestVectorIsValid(t *testing.T) {
	tests := []struct {
		name  string
		v     Vector3
		valid bool
	}{
		{"finite", Vector3{1, 2, 3}, true},
		{"nan", Vector3{math.NaN(), 0, 0}, false},
		{"inf", Vector3{0, math.Inf(1), 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}
