// Package board models the machining features and raw edge geometry of a
// fabricated panel, as produced by the board-geometry collaborator.
//
// A Board is a flat list of features (round holes and rectangular cutouts,
// each tagged with a reference label and source identifier) plus a flat
// list of board-edge primitives (straight segments and closed point
// chains). Coordinates are millimetres in the source CAD system, where Y
// increases downward; the toolpath planner flips them into machine space.
package board

import (
	"github.com/panelcam/panelcam/pkg/errors"
	"github.com/panelcam/panelcam/pkg/geom"
)

// FeatureKind distinguishes the two feature payloads.
type FeatureKind string

// Supported feature kinds.
const (
	KindHole FeatureKind = "hole"
	KindRect FeatureKind = "rect"
)

// Feature is a single machining feature. It is a tagged variant: Kind
// selects which payload fields are meaningful.
type Feature struct {
	Ref    string      // reference label, e.g. "J3"
	Source string      // source identifier, e.g. footprint name
	Kind   FeatureKind

	// KindHole payload: centre and required diameter.
	X        float64
	Y        float64
	Diameter float64

	// KindRect payload: two-corner extents.
	X1 float64
	Y1 float64
	X2 float64
	Y2 float64
}

// Bounds returns the feature's axis-aligned extents.
func (f Feature) Bounds() geom.Rect {
	switch f.Kind {
	case KindHole:
		r := f.Diameter / 2
		return geom.RectFromCorners(
			geom.Point{X: f.X - r, Y: f.Y - r},
			geom.Point{X: f.X + r, Y: f.Y + r},
		)
	default:
		return geom.RectFromCorners(
			geom.Point{X: f.X1, Y: f.Y1},
			geom.Point{X: f.X2, Y: f.Y2},
		)
	}
}

// EdgeKind distinguishes the two edge primitives.
type EdgeKind string

// Supported edge kinds.
const (
	EdgeSegment EdgeKind = "segment"
	EdgeChain   EdgeKind = "chain"
)

// Edge is a raw board-edge primitive: either a straight segment or a
// closed polygonal chain of points.
type Edge struct {
	Kind   EdgeKind
	Start  geom.Point   // EdgeSegment payload
	End    geom.Point   // EdgeSegment payload
	Points []geom.Point // EdgeChain payload
}

// Board is the full geometry handed to the pipeline.
type Board struct {
	Name     string
	Features []Feature
	Edges    []Edge
}

// FeatureBounds returns the bounding rectangle of all features.
// It returns a NO_FEATURES error when the board has none, since every
// downstream consumer needs a non-empty extent to work from.
func (b *Board) FeatureBounds() (geom.Rect, error) {
	if len(b.Features) == 0 {
		return geom.Rect{}, errors.New(errors.ErrCodeNoFeatures, "%s: no machining features", b.Name)
	}
	bounds := b.Features[0].Bounds()
	for _, f := range b.Features[1:] {
		bounds = bounds.Union(f.Bounds())
	}
	return bounds, nil
}

// FilterOptions controls feature selection and adjustment during load.
type FilterOptions struct {
	// Skip lists references to drop.
	Skip []string
	// Include, when non-empty, lists the only references to keep.
	Include []string
	// Adjust maps a reference to an (x, y) position offset.
	Adjust map[string]geom.Point
	// Logger receives a message for every dropped feature. May be nil.
	Logger func(msg string, args ...any)
}

// ApplyFilter returns a copy of the board with FilterOptions applied.
// The receiver is not modified.
func (b *Board) ApplyFilter(opts FilterOptions) *Board {
	logf := opts.Logger
	if logf == nil {
		logf = func(string, ...any) {}
	}
	skip := make(map[string]bool, len(opts.Skip))
	for _, ref := range opts.Skip {
		skip[ref] = true
	}
	include := make(map[string]bool, len(opts.Include))
	for _, ref := range opts.Include {
		include[ref] = true
	}

	out := &Board{Name: b.Name, Edges: b.Edges}
	for _, f := range b.Features {
		if skip[f.Ref] {
			logf("skipped %s (%s)", f.Ref, f.Source)
			continue
		}
		if len(include) > 0 && !include[f.Ref] {
			logf("excluded %s (%s)", f.Ref, f.Source)
			continue
		}
		if adj, ok := opts.Adjust[f.Ref]; ok {
			f.X += adj.X
			f.Y += adj.Y
			f.X1 += adj.X
			f.Y1 += adj.Y
			f.X2 += adj.X
			f.Y2 += adj.Y
		}
		out.Features = append(out.Features, f)
	}
	return out
}
