package gcode

import (
	"io"
	"math"

	"github.com/panelcam/panelcam/pkg/errors"
	"github.com/panelcam/panelcam/pkg/toolpath"
	"github.com/panelcam/panelcam/pkg/tools"
)

// Machining constants, in millimetres unless noted.
const (
	// hover is the rapid-traverse height above the work.
	hover = 2.0
	// retract is the inter-block retract height.
	retract = 20.0
	// drillClearance is drilled through-hole over-travel.
	drillClearance = 0.1
	// millClearance is milled through-cut over-travel.
	millClearance = 0.075
	// pointAngle is the drill point included angle in degrees.
	pointAngle = 120.0
)

// DrillPointLength returns the axial length of a drill's point for the
// fixed 120° point angle. Through-hole depth must include it so the full
// diameter breaks through the back face.
func DrillPointLength(dia float64) float64 {
	return (dia / 2.0) * math.Tan((90.0-pointAngle/2.0)*math.Pi/180.0)
}

// DrillDepth is the commanded drilling depth for a hit: material depth
// plus drill point length plus clearance.
func DrillDepth(hit toolpath.DrillHit, tool tools.Tool) float64 {
	return hit.Depth + DrillPointLength(tool.Diameter) + drillClearance
}

// MillDepth is the commanded milling depth for a cutout depth.
func MillDepth(depth float64) float64 {
	return depth + millClearance
}

// Emit writes the plan as a complete program to w.
func Emit(w io.Writer, plan *toolpath.Plan) error {
	e := &emitter{prog: NewProgram(w), plan: plan}
	e.preamble()
	for _, b := range plan.Blocks {
		switch b.Kind {
		case toolpath.BlockSpotDrill, toolpath.BlockDrill:
			e.drillBlock(b)
		case toolpath.BlockRectCutout:
			e.rectBlock(b)
		case toolpath.BlockRoundCutout:
			e.roundBlock(b)
		case toolpath.BlockPanelCutout:
			e.panelBlock(b)
		}
	}
	e.shutdown()
	if err := e.prog.Err(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write program")
	}
	return nil
}

type emitter struct {
	prog *Program
	plan *toolpath.Plan
}

// coolantOn activates coolant when the tool table asks for it.
func (e *emitter) coolantOn() {
	switch e.plan.Coolant {
	case tools.CoolantFlood:
		e.prog.Line("M8")
	case tools.CoolantMist:
		e.prog.Line("M7")
	}
}

// coolantOff is a no-op when the coolant mode is none.
func (e *emitter) coolantOff() {
	if e.plan.Coolant == tools.CoolantFlood || e.plan.Coolant == tools.CoolantMist {
		e.prog.Line("M9")
	}
}

func (e *emitter) preamble() {
	p := e.prog
	panel := e.plan.Panel

	p.Comment("Generated from %s by panelcam", e.plan.Board)
	p.Comment("")
	p.Comment("Tool list:")
	for _, tool := range e.plan.Tools {
		p.Comment("    Tool %d: %.1fmm %s", tool.Num, tool.Diameter, tool.Kind)
	}
	p.Comment("")
	p.Comment("Coolant: %s", e.plan.Coolant)
	p.Comment("")
	p.Comment("Origin is at top left of panel edge")
	p.Comment("Panel size is X: %.2f (%d HP) Y: %.1f", panel.Width, panel.HP, panel.Height)
	p.Comment("PCB size is X: %.3f Y: %.3f", panel.BoardWidth, panel.BoardHeight)
	p.Comment("PCB offset in panel is X: %.3f Y: %.3f", panel.XOffset, panel.YOffset)
	if o := e.plan.Outline; o != nil {
		r := e.plan.MillDiameter / 2
		p.Comment("toolpath extents:")
		p.Comment("    X: %.3f - %.3f", o.EntryX-r, o.X2+r)
		p.Comment("    Y: %.3f - %.3f", o.EntryY-r, o.Y2+r)
	}
	p.Comment("")
	p.Line("M5 G17 G21 G40 G49 G50 G69 G80 G90 G98")
	p.Line("G53 G0 Z0")
	p.Line("G54")
	p.NewBlock()
}

func (e *emitter) shutdown() {
	e.prog.Line("G53 G0 X0 Y0 Z0")
	e.prog.Line("G54")
	e.prog.Comment("FINISH")
}

// drillBlock emits one peck-drilling pass. Every coordinate line carries
// the full computed depth; the cycle's peck increment is a quarter of the
// hole diameter.
func (e *emitter) drillBlock(b toolpath.Block) {
	if len(b.Hits) == 0 {
		return
	}
	p := e.prog
	tool := b.Tool
	first := b.Hits[0]

	p.Comment("START %s", b.Desc)
	p.Line("M1")
	p.Line("T%d M6   ; Tool %d: %.1fmm drill", tool.Num, tool.Num, tool.Diameter)
	p.Line("G43 H%d", tool.Num)
	p.Line("G0 X%.3f Y%.3f Z%.3f  ; %s", first.X, first.Y, hover, first.Ref)
	p.Line("G1 F%.3f", tool.Feed)
	p.Line("S%.3f M3", tool.Speed)
	p.Line("G98 G73 R%.3f Q%.3f", hover, first.Diameter/4)
	e.coolantOn()
	for _, hit := range b.Hits {
		p.Line("X%.3f Y%.3f Z%.3f  ; %s", hit.X, hit.Y, -DrillDepth(hit, tool), hit.Ref)
	}
	e.coolantOff()
	p.Line("G0 Z%.0f", retract)
	p.Line("G80 M5")
	p.Comment("DONE %s", b.Desc)
	p.NewBlock()
}

// rectBlock mills every rectangular cutout under one tool change.
func (e *emitter) rectBlock(b toolpath.Block) {
	p := e.prog
	tool := b.Tool

	p.Comment("START %s", b.Desc)
	p.Line("M1")
	p.Line("T%d M6   ; Tool %d: %.1fmm endmill", tool.Num, tool.Num, tool.Diameter)
	p.Line("G43 H%d", tool.Num)
	p.Line("S%.3f M3", tool.Speed)
	for _, rc := range b.Cutouts {
		depth := MillDepth(rc.Depth)
		p.Comment("BEGIN cutout %s (%s)", rc.Ref, rc.Source)
		p.Comment("EXTENTS X%.3f-X%.3f W%.3f Y%.3f-Y%.3f H%.3f",
			rc.X1, rc.X2, rc.X2-rc.X1, rc.Y1, rc.Y2, rc.Y1-rc.Y2)
		p.Line("G0 X%.3f Y%.3f Z%.3f  ; entry", rc.StartX, rc.StartY, hover)
		e.coolantOn()
		p.Line("G1 F%.3f Z%.3f", tool.Downfeed, -depth)
		// Top edge one diameter off the left corner, enabling RHS
		// cutter compensation.
		p.Line("G42 D%d F%.3f X%.3f Y%.3f", tool.Num, tool.Feed, rc.X1+tool.Diameter, rc.Y1)
		// Top right
		p.Line("X%.3f", rc.X2)
		// Bottom right
		p.Line("Y%.3f", rc.Y2)
		// Bottom left
		p.Line("X%.3f", rc.X1)
		// Top left
		p.Line("Y%.3f", rc.Y1)
		// A little past the start point to close the cut.
		p.Line("X%.3f", math.Min(rc.StartX+tool.Diameter, rc.X2))
		p.Line("G40")
		e.coolantOff()
		p.Line("G0 Z%.3f", hover)
		p.Comment("END %s", rc.Ref)
	}
	p.Line("G0 Z%.0f", retract)
	p.Line("M5")
	p.Comment("DONE %s", b.Desc)
	p.NewBlock()
}

// roundBlock mills every round cutout under one tool change: a
// compensated move to the leftmost point of the circle, then a full
// clockwise circular interpolation.
func (e *emitter) roundBlock(b toolpath.Block) {
	p := e.prog
	tool := b.Tool

	p.Comment("START %s", b.Desc)
	p.Line("M1")
	p.Line("T%d M6   ; Tool %d: %.1fmm endmill", tool.Num, tool.Num, tool.Diameter)
	p.Line("G43 H%d", tool.Num)
	p.Line("S%.3f M3", tool.Speed)
	for _, rc := range b.Cutouts {
		depth := MillDepth(rc.Depth)
		p.Comment("BEGIN cutout %s (%s)", rc.Ref, rc.Source)
		p.Comment("EXTENTS X%.3f Y%.3f D%.3f", rc.X, rc.Y, rc.Diameter)
		p.Line("G0 X%.3f Y%.3f Z%.3f  ; entry", rc.StartX, rc.StartY, hover)
		e.coolantOn()
		p.Line("G1 F%.3f Z%.3f", tool.Downfeed, -depth)
		// Enable RHS cutter comp and move to the circle's left edge.
		// Y is modal: the entry left us at the centre height already.
		p.Line("G42 D%d F%.3f X%.3f", tool.Num, tool.Feed, rc.X-rc.Diameter/2)
		p.Line("G17 G02 F%.3f I%.3f", tool.Feed, rc.Diameter/2)
		p.Line("G40")
		e.coolantOff()
		p.Line("G0 Z%.3f", hover)
		p.Comment("END %s", rc.Ref)
	}
	p.Line("G0 Z%.0f", retract)
	p.Line("M5")
	p.Comment("DONE %s", b.Desc)
	p.NewBlock()
}

// panelBlock cuts the panel free of the blank along the outline path.
func (e *emitter) panelBlock(b toolpath.Block) {
	p := e.prog
	tool := b.Tool
	o := b.Outline
	depth := MillDepth(o.Depth)

	p.Comment("START %s", b.Desc)
	p.Line("M1")
	p.Line("T%d M6   ; Tool %d: %.1fmm endmill", tool.Num, tool.Num, tool.Diameter)
	p.Line("G43 H%d", tool.Num)
	p.Line("S%.3f M3", tool.Speed)
	p.Line("G0 X%.3f Y%.3f Z%.3f  ; entry", o.EntryX, o.EntryY, hover)
	e.coolantOn()
	p.Line("G1 F%.3f Z%.3f", tool.Downfeed, -depth)
	// Onto the outline above the entry point, enabling RHS cutter comp.
	p.Line("G42 D%d F%.3f X%.3f Y%.3f", tool.Num, tool.Feed, o.X1, o.Y1)
	// Bottom right
	p.Line("X%.3f", o.X2)
	// Top right
	p.Line("Y%.3f", o.Y2)
	// Top left
	p.Line("X%.3f", o.X1)
	// Bottom left
	p.Line("Y%.3f", o.Y1)
	// A little past the start point to close the cut.
	p.Line("X%.3f", math.Min(o.EntryX+tool.Diameter, o.X2))
	p.Line("G40")
	e.coolantOff()
	p.Line("G0 Z%.0f", retract)
	p.Line("M5")
	p.Comment("DONE %s", b.Desc)
	p.NewBlock()
}
