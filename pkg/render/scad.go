package render

import (
	"bytes"
	"fmt"
	"math"

	"github.com/panelcam/panelcam/pkg/board"
	"github.com/panelcam/panelcam/pkg/geom"
	"github.com/panelcam/panelcam/pkg/toolpath"
)

// RenderOpenSCAD writes a script that subtracts every feature from a
// panel blank, with a viewport preamble framing the whole panel.
// OpenSCAD's Y axis grows up, so feature positions flip against the
// panel height.
func RenderOpenSCAD(b *board.Board, p toolpath.Panel, edge geom.Rect, thickness float64) []byte {
	xoff := p.XOffset - edge.OriginX
	yoff := p.YOffset - edge.OriginY

	var buf bytes.Buffer
	buf.WriteString("use <eurorack.scad>\n\n")
	buf.WriteString("$fn=32;\n")
	buf.WriteString("$vpr = [0, 0, 0];\n")
	fmt.Fprintf(&buf, "$vpt = [%.2f, %.2f, 0];\n", p.Width/2, p.Height/2)
	fmt.Fprintf(&buf, "$vpd = %.2f;\n", math.Max(p.BoardWidth, p.BoardHeight)*2.5)
	fmt.Fprintf(&buf, "depth=%g;\n", thickness)
	buf.WriteString("difference() {\n")
	fmt.Fprintf(&buf, "\teurorack_panel(hp = %d);\n", p.HP)
	for _, f := range b.Features {
		if f.Kind != board.KindHole {
			continue
		}
		fmt.Fprintf(&buf, "\t// Drill: %s\n", f.Ref)
		fmt.Fprintf(&buf, "\ttranslate([%.3f, %.3f, 0])\n", f.X+xoff, p.Height-(f.Y+yoff))
		fmt.Fprintf(&buf, "\t    cylinder(h=depth, r=%.3f / 2.0, center=false);\n", f.Diameter)
	}
	for _, f := range b.Features {
		if f.Kind != board.KindRect {
			continue
		}
		fmt.Fprintf(&buf, "\t// Rect: %s\n", f.Ref)
		fmt.Fprintf(&buf, "\ttranslate([%.3f, %.3f, 0])\n", f.X1+xoff, p.Height-(f.Y2+yoff))
		fmt.Fprintf(&buf, "\t    cube(size=[%.3f, %.3f, depth], center=false);\n", f.X2-f.X1, f.Y2-f.Y1)
	}
	buf.WriteString("}\n")
	return buf.Bytes()
}
