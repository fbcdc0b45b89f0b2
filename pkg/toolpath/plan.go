package toolpath

import (
	"github.com/panelcam/panelcam/pkg/tools"
)

// BlockKind identifies what a block of operations does.
type BlockKind string

// Block kinds, in the order they appear in a plan.
const (
	BlockSpotDrill   BlockKind = "spot-drill"
	BlockDrill       BlockKind = "drill"
	BlockRectCutout  BlockKind = "rect-cutout"
	BlockRoundCutout BlockKind = "round-cutout"
	BlockPanelCutout BlockKind = "panel-cutout"
)

// Outline is the panel cutout path. The traversal runs inset from the
// panel's X edges so stacked panels don't trim their neighbours; entry is
// outside the bottom-left corner.
type Outline struct {
	X1     float64 // left path edge
	X2     float64 // right path edge
	Y1     float64 // bottom path edge
	Y2     float64 // top path edge
	EntryX float64
	EntryY float64
	Depth  float64
}

// Block is a homogeneous group of operations sharing one tool.
// Exactly one of Hits, Cutouts, Outline is populated, per Kind.
type Block struct {
	Kind    BlockKind
	Tool    tools.Tool
	Desc    string
	Hits    []DrillHit
	Cutouts []Cutout
	Outline *Outline
}

// Plan is the ordered, machine-ready operation schedule for one board.
type Plan struct {
	Board   string
	Panel   Panel
	Coolant tools.Coolant
	Tools   []tools.Tool // full catalog, for the program header
	Blocks  []Block

	// Outline is set when the panel cutout is enabled; it is the same
	// value carried by the final block, surfaced for header reporting.
	Outline *Outline
	// MillDiameter is set alongside Outline for extents reporting.
	MillDiameter float64
}
