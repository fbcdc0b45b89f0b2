// Package toolpath plans machine-ready operations for a panel.
//
// The planner lays a board's feature set onto an auto-sized panel, derives
// entry-drill requirements for milled cutouts, and groups and orders all
// operations into homogeneous blocks (one tool per block). The result is a
// Plan the gcode package can emit verbatim. Planning is a pure in-memory
// pass: identical inputs always produce an identical Plan.
package toolpath

import (
	"github.com/panelcam/panelcam/pkg/errors"
)

// DrillHit is a single drilling operation in panel coordinates.
// Depth is the material thickness; the emitter adds drill-point length and
// clearance.
type DrillHit struct {
	Ref      string
	Source   string
	Diameter float64
	Depth    float64
	X        float64
	Y        float64
}

// CutoutKind distinguishes the two milled cutout payloads.
type CutoutKind string

// Supported cutout kinds.
const (
	CutRect  CutoutKind = "rect"
	CutRound CutoutKind = "round"
)

// Cutout is a milled feature in panel coordinates. It is a tagged
// variant: Kind selects which payload fields are meaningful. StartX and
// StartY are the entry-drill position, set by the planner once an entry
// drill has been selected; the geometry fields are never reinterpreted
// after construction.
type Cutout struct {
	Kind   CutoutKind
	Ref    string
	Source string
	Depth  float64

	// CutRect payload: top-left (X1, Y1) and bottom-right (X2, Y2) in
	// panel coordinates, where Y increases upward.
	X1 float64
	Y1 float64
	X2 float64
	Y2 float64

	// CutRound payload: centre and required diameter.
	X        float64
	Y        float64
	Diameter float64

	// Entry-drill position, set by the planner.
	StartX float64
	StartY float64
}

// NewRectCutout validates extent ordering and builds a rectangular
// cutout. The panel coordinate system has Y increasing upward, so the top
// edge y1 must be numerically >= the bottom edge y2, and the left edge x1
// <= the right edge x2. Violations are fatal construction errors.
func NewRectCutout(ref, source string, depth, x1, y1, x2, y2 float64) (Cutout, error) {
	if x1 > x2 {
		return Cutout{}, errors.New(errors.ErrCodeBadExtents,
			"%s bad extent ordering: left edge %v is greater than right edge %v", ref, x1, x2)
	}
	if y1 < y2 {
		return Cutout{}, errors.New(errors.ErrCodeBadExtents,
			"%s bad extent ordering: top edge %v is less than bottom edge %v", ref, y1, y2)
	}
	return Cutout{
		Kind: CutRect, Ref: ref, Source: source, Depth: depth,
		X1: x1, Y1: y1, X2: x2, Y2: y2,
	}, nil
}

// NewRoundCutout builds a round cutout for a hole that has no matching
// drill bit and must be milled.
func NewRoundCutout(ref, source string, depth, x, y, diameter float64) Cutout {
	return Cutout{
		Kind: CutRound, Ref: ref, Source: source, Depth: depth,
		X: x, Y: y, Diameter: diameter,
	}
}

// NeedX returns the clearance available along the X axis.
func (c Cutout) NeedX() float64 {
	if c.Kind == CutRound {
		return c.Diameter
	}
	return c.X2 - c.X1
}

// NeedY returns the clearance available along the Y axis.
func (c Cutout) NeedY() float64 {
	if c.Kind == CutRound {
		return c.Diameter
	}
	return c.Y1 - c.Y2
}

// ComputeStartPoint returns the entry-drill position for a cutout given
// the selected entry drill diameter: inset one drill diameter from the
// top-left corner for a rectangle, the hole's own centre for a round
// cutout.
func ComputeStartPoint(c Cutout, drillDia float64) (x, y float64) {
	if c.Kind == CutRound {
		return c.X, c.Y
	}
	return c.X1 + drillDia, c.Y1 - drillDia
}
