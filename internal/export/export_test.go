package export

import (
	"strings"
	"testing"

	"github.com/san-kum/qviz/internal/bloch"
	"github.com/san-kum/qviz/internal/curves"
	"github.com/san-kum/qviz/internal/geom"
)

func TestPulseSceneSVG(t *testing.T) {
	s := bloch.NewSphere(100, geom.Viewport{Width: 400, Height: 300})
	doc := PulseSceneSVG(s, 0.1)

	if !strings.HasPrefix(doc, `<?xml version="1.0"`) {
		t.Error("missing XML prolog")
	}
	if !strings.HasSuffix(doc, "</svg>") {
		t.Error("unterminated svg document")
	}
	if strings.Count(doc, "<polyline") < 4 {
		t.Errorf("expected wireframe plus two trajectories, got %d polylines", strings.Count(doc, "<polyline"))
	}
}

func TestDecayCSVSparseMeasuredColumn(t *testing.T) {
	cfg := curves.DefaultDecay()
	cfg.Noise = 0
	samples := curves.GenerateDecay(cfg, nil)

	var sb strings.Builder
	if err := DecayCSV(&sb, samples); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	if len(lines) != len(samples)+1 {
		t.Fatalf("expected %d lines, got %d", len(samples)+1, len(lines))
	}
	// Second data row falls between strides: measured column must be empty.
	if !strings.HasSuffix(lines[2], ",") {
		t.Errorf("expected empty measured cell, got %q", lines[2])
	}
}

func TestRBCSVRowsTagged(t *testing.T) {
	curve := curves.GenerateRB(curves.DefaultRB(), nil)

	var sb strings.Builder
	if err := RBCSV(&sb, curve); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, ",fit,baseline") || !strings.Contains(out, ",scatter,baseline") {
		t.Error("rows not tagged with kind and mode")
	}
}
