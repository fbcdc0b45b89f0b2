package render

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/panelcam/panelcam/pkg/board"
	"github.com/panelcam/panelcam/pkg/errors"
	"github.com/panelcam/panelcam/pkg/geom"
	"github.com/panelcam/panelcam/pkg/toolpath"
)

func testBoard() *board.Board {
	return &board.Board{
		Name: "test.board",
		Features: []board.Feature{
			{Ref: "J1", Source: "jack", Kind: board.KindHole, X: 10, Y: 10, Diameter: 6.0},
			{Ref: "POT1", Source: "pot", Kind: board.KindHole, X: 4, Y: 16, Diameter: 7.0},
			{Ref: "S1", Source: "display", Kind: board.KindRect, X1: 2, Y1: 2, X2: 18, Y2: 6},
		},
	}
}

func TestSortFeatures(t *testing.T) {
	b := testBoard()
	if err := SortFeatures(b.Features, "dia,ref"); err != nil {
		t.Fatalf("SortFeatures() error = %v", err)
	}
	var refs []string
	for _, f := range b.Features {
		refs = append(refs, f.Ref)
	}
	// The rect's dia reads as zero, so it sorts first.
	if diff := cmp.Diff([]string{"S1", "J1", "POT1"}, refs); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestSortFeaturesUnknownKey(t *testing.T) {
	err := SortFeatures(testBoard().Features, "ref,bogus")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("SortFeatures() error = %v, want INVALID_INPUT", err)
	}
}

func TestTabular(t *testing.T) {
	var buf bytes.Buffer
	if err := Tabular(&buf, testBoard()); err != nil {
		t.Fatalf("Tabular() error = %v", err)
	}
	want := "  1: J1     drill    10.000    10.000 dia 6.00\n" +
		"  2: POT1   drill     4.000    16.000 dia 7.00\n" +
		"  3: S1     rect      2.000     2.000    18.000     6.000\n"
	if got := buf.String(); got != want {
		t.Errorf("listing = %q, want %q", got, want)
	}
}

func TestCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := CSV(&buf, testBoard(), "ref,kind,dia,x1"); err != nil {
		t.Fatalf("CSV() error = %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	want := [][]string{
		{"ref", "kind", "dia", "x1"},
		{"J1", "hole", "6.000", ""},
		{"POT1", "hole", "7.000", ""},
		{"S1", "rect", "", "2.000"},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestCSVUnknownField(t *testing.T) {
	err := CSV(&bytes.Buffer{}, testBoard(), "ref,nope")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("CSV() error = %v, want INVALID_INPUT", err)
	}
}

func TestRenderSVG(t *testing.T) {
	out, err := RenderSVG(testBoard())
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	got := string(out)
	for _, want := range []string{
		`<g id="drill-J1">`,
		`<g id="rect-S1">`,
		`fill="none"`,
		`text-anchor="middle"`,
		"</svg>\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in SVG:\n%s", want, got)
		}
	}
}

func TestRenderSVGEmpty(t *testing.T) {
	_, err := RenderSVG(&board.Board{Name: "empty.board"})
	if !errors.Is(err, errors.ErrCodeNoFeatures) {
		t.Errorf("RenderSVG() error = %v, want NO_FEATURES", err)
	}
}

func TestRenderSVGPanel(t *testing.T) {
	edge := geom.Rect{OriginX: 0, OriginY: 0, Width: 20, Height: 20}
	p, err := toolpath.NewPanel(edge.Width, edge.Height)
	if err != nil {
		t.Fatalf("NewPanel() error = %v", err)
	}
	out, err := RenderSVG(testBoard(), WithSVGPanel(p, edge))
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	got := string(out)
	// 4 HP panel: 20.32 x 128.5 drawing; J1 shifts by the panel offsets.
	if !strings.Contains(got, `viewBox="0 0 20.320 128.500"`) {
		t.Errorf("missing panel-sized viewBox in SVG:\n%s", got)
	}
	if !strings.Contains(got, `cx="10.160" cy="64.250"`) {
		t.Errorf("missing offset hole centre in SVG:\n%s", got)
	}
}

func TestRenderOpenSCAD(t *testing.T) {
	edge := geom.Rect{OriginX: 0, OriginY: 0, Width: 20, Height: 20}
	p, err := toolpath.NewPanel(edge.Width, edge.Height)
	if err != nil {
		t.Fatalf("NewPanel() error = %v", err)
	}
	got := string(RenderOpenSCAD(testBoard(), p, edge, 2.0))

	for _, want := range []string{
		"use <eurorack.scad>",
		"eurorack_panel(hp = 4);",
		"depth=2;",
		"// Drill: J1",
		// Y flips against the panel height: 128.5 - (10 + 54.25).
		"translate([10.160, 64.250, 0])",
		"cylinder(h=depth, r=6.000 / 2.0, center=false);",
		"// Rect: S1",
		"cube(size=[16.000, 4.000, depth], center=false);",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in script:\n%s", want, got)
		}
	}
}
