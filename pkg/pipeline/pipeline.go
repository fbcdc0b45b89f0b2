// Package pipeline runs the complete load → outline → plan → emit
// sequence that turns a board description and a tool table into a
// machining program.
//
// The stages are:
//
//  1. Load: read the tool table and the board, applying feature filters
//  2. Outline: recover the board edge from edge primitives, falling
//     back to the feature bounding box
//  3. Plan: size the panel and schedule every machining operation
//  4. Emit: serialize the plan as a numbered program
//
// Each stage can be run independently or as part of the complete
// pipeline, so the CLI's export commands can stop after Load or
// Outline.
package pipeline

import (
	"time"

	"github.com/panelcam/panelcam/pkg/board"
	"github.com/panelcam/panelcam/pkg/geom"
	"github.com/panelcam/panelcam/pkg/toolpath"
	"github.com/panelcam/panelcam/pkg/tools"
)

// Options contains all configuration for one pipeline run.
type Options struct {
	// BoardPath is the board description file.
	BoardPath string
	// ToolConfig is the tool table TOML file.
	ToolConfig string

	// CutoutPanel adds the panel outline cutout and mounting holes.
	CutoutPanel bool
	// MountDrill is the mounting hole diameter in mm; the 3.4mm default
	// applies when zero.
	MountDrill float64
	// Thickness is the material thickness in mm; the 2.0mm default
	// applies when zero.
	Thickness float64

	// Skip lists feature references to drop.
	Skip []string
	// Include, when non-empty, lists the only references to keep.
	Include []string
	// Adjust maps a reference to a position offset.
	Adjust map[string]geom.Point
	// Sort is a comma-separated feature sort key list for exports.
	Sort string
}

// Stats records per-stage timing and scale for one run.
type Stats struct {
	LoadTime time.Duration
	PlanTime time.Duration
	Features int
	Blocks   int
}

// Result carries the outputs of the pipeline stages.
type Result struct {
	Board *board.Board
	Table *tools.Table

	// Edge is the board extent the plan was built against.
	Edge geom.Rect
	// EdgeDetected is true when Edge came from edge primitives rather
	// than the feature-bounds fallback.
	EdgeDetected bool

	Plan  *toolpath.Plan
	Stats Stats
}
