package board

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/panelcam/panelcam/pkg/errors"
	"github.com/panelcam/panelcam/pkg/geom"
)

const sampleDoc = `{
  "name": "vco.board",
  "features": [
    {"ref": "J1", "source": "jack_3.5mm", "kind": "hole", "x": 10, "y": 20, "dia": 6},
    {"ref": "OLED1", "source": "oled_0.96", "kind": "rect", "x1": 5, "y1": 8, "x2": 30, "y2": 22}
  ],
  "edges": [
    {"kind": "segment", "start": {"x": 0, "y": 0}, "end": {"x": 40, "y": 0}},
    {"kind": "chain", "points": [{"x": 0, "y": 0}, {"x": 40, "y": 0}, {"x": 40, "y": 30}]}
  ]
}`

func TestReadJSON(t *testing.T) {
	b, err := ReadJSON(strings.NewReader(sampleDoc))
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}

	if b.Name != "vco.board" {
		t.Errorf("Name = %q, want %q", b.Name, "vco.board")
	}
	if len(b.Features) != 2 {
		t.Fatalf("len(Features) = %d, want 2", len(b.Features))
	}
	if b.Features[0].Kind != KindHole || b.Features[0].Diameter != 6 {
		t.Errorf("feature 0 = %+v, want 6mm hole", b.Features[0])
	}
	if b.Features[1].Kind != KindRect || b.Features[1].X2 != 30 {
		t.Errorf("feature 1 = %+v, want rect to x2=30", b.Features[1])
	}
	if len(b.Edges) != 2 {
		t.Fatalf("len(Edges) = %d, want 2", len(b.Edges))
	}
	if b.Edges[0].Kind != EdgeSegment || b.Edges[1].Kind != EdgeChain {
		t.Errorf("edge kinds = %v, %v", b.Edges[0].Kind, b.Edges[1].Kind)
	}
	if len(b.Edges[1].Points) != 3 {
		t.Errorf("chain points = %d, want 3", len(b.Edges[1].Points))
	}
}

func TestReadJSONRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"bad kind", `{"features": [{"ref": "X", "kind": "oval"}]}`},
		{"zero diameter hole", `{"features": [{"ref": "X", "kind": "hole", "x": 1, "y": 1}]}`},
		{"short chain", `{"edges": [{"kind": "chain", "points": [{"x": 0, "y": 0}]}]}`},
		{"bad edge kind", `{"edges": [{"kind": "arc"}]}`},
		{"malformed json", `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadJSON(strings.NewReader(tt.doc)); err == nil {
				t.Error("ReadJSON() = nil error, want error")
			}
		})
	}
}

func TestFeatureBounds(t *testing.T) {
	b := &Board{
		Name: "t",
		Features: []Feature{
			{Ref: "J1", Kind: KindHole, X: 10, Y: 10, Diameter: 4},
			{Ref: "S1", Kind: KindRect, X1: 20, Y1: 5, X2: 30, Y2: 15},
		},
	}
	r, err := b.FeatureBounds()
	if err != nil {
		t.Fatalf("FeatureBounds() error = %v", err)
	}
	want := geom.Rect{OriginX: 8, OriginY: 5, Width: 22, Height: 10}
	if diff := cmp.Diff(want, r); diff != "" {
		t.Errorf("FeatureBounds() mismatch (-want +got):\n%s", diff)
	}
}

func TestFeatureBoundsEmpty(t *testing.T) {
	b := &Board{Name: "empty"}
	if _, err := b.FeatureBounds(); !errors.Is(err, errors.ErrCodeNoFeatures) {
		t.Errorf("FeatureBounds() error = %v, want NO_FEATURES", err)
	}
}

func TestApplyFilter(t *testing.T) {
	b := &Board{
		Features: []Feature{
			{Ref: "J1", Kind: KindHole, X: 1, Y: 1, Diameter: 3},
			{Ref: "J2", Kind: KindHole, X: 2, Y: 2, Diameter: 3},
			{Ref: "S1", Kind: KindRect, X1: 0, Y1: 0, X2: 5, Y2: 5},
		},
	}

	t.Run("skip", func(t *testing.T) {
		var dropped []string
		out := b.ApplyFilter(FilterOptions{
			Skip:   []string{"J2"},
			Logger: func(msg string, args ...any) { dropped = append(dropped, msg) },
		})
		if len(out.Features) != 2 {
			t.Errorf("kept %d features, want 2", len(out.Features))
		}
		if len(dropped) != 1 {
			t.Errorf("logged %d drops, want 1", len(dropped))
		}
	})

	t.Run("include", func(t *testing.T) {
		out := b.ApplyFilter(FilterOptions{Include: []string{"S1"}})
		if len(out.Features) != 1 || out.Features[0].Ref != "S1" {
			t.Errorf("Features = %+v, want only S1", out.Features)
		}
	})

	t.Run("adjust", func(t *testing.T) {
		out := b.ApplyFilter(FilterOptions{
			Adjust: map[string]geom.Point{"J1": {X: 0.5, Y: -0.5}},
		})
		if out.Features[0].X != 1.5 || out.Features[0].Y != 0.5 {
			t.Errorf("adjusted J1 = (%v, %v), want (1.5, 0.5)", out.Features[0].X, out.Features[0].Y)
		}
		// Original board untouched.
		if b.Features[0].X != 1 {
			t.Errorf("receiver mutated: X = %v", b.Features[0].X)
		}
	})
}
