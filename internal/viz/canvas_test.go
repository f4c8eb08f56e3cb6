package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/qviz/internal/geom"
)

func TestCanvasSetAndClear(t *testing.T) {
	c := NewCanvas(4, 4)

	c.Set(0, 0)
	if c.Grid[0][0] == 0x2800 {
		t.Error("Set left cell empty")
	}

	c.Clear()
	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				t.Fatal("Clear left lit pixels")
			}
		}
	}
}

func TestCanvasIgnoresOutOfRange(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(c.SubWidth(), 0)
	c.Set(0, c.SubHeight())
	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				t.Fatal("out-of-range Set lit a pixel")
			}
		}
	}
}

func TestDrawLineEndpoints(t *testing.T) {
	c := NewCanvas(8, 8)
	c.DrawLine(0, 0, 10, 10)

	if c.Grid[0][0] == 0x2800 {
		t.Error("line start not set")
	}
	if c.Grid[10/4][10/2] == 0x2800 {
		t.Error("line end not set")
	}
}

func TestDrawPolyline(t *testing.T) {
	c := NewCanvas(8, 8)
	c.DrawPolyline([]geom.ScreenPoint{
		{CX: 0, CY: 0},
		{CX: 10, CY: 0},
		{CX: 10, CY: 10},
	})
	if c.Grid[0][5] == 0x2800 {
		t.Error("polyline corner not set")
	}
}

func TestSphereViewRendersBothTrajectories(t *testing.T) {
	sv := NewSphereView(NewCanvas(40, 16))
	single, composite := sv.Render(0.1)

	if len(single.Points) == 0 || len(composite.Points) == 0 {
		t.Fatal("empty trajectory")
	}
	if !strings.ContainsFunc(sv.Canvas.String(), func(r rune) bool { return r > 0x2800 && r <= 0x28FF }) {
		t.Error("nothing drawn to canvas")
	}
	if sv.Sphere.Deviation(single) <= sv.Sphere.Deviation(composite) {
		t.Error("composite should land closer to the target than the single pulse")
	}
}
