// Package contour recovers a panel's usable outline from raw board-edge
// geometry.
//
// The board-geometry collaborator hands over an unordered pile of edge
// primitives: straight segments and closed point chains. Detect groups
// them into maximal connected contours by shared endpoints and reduces
// each contour to its axis-aligned bounding rectangle. The caller then
// picks the rectangle overlapping the feature set as the panel edge.
//
// Coordinates are bucketed after rounding to a fixed quantum (1 nm) so
// that float drift introduced by CAD export cannot split a contour. This
// is a documented deviation from exact-equality comparison; any drift
// below the quantum joins, anything above it does not.
package contour

import (
	"math"

	"github.com/panelcam/panelcam/pkg/board"
	"github.com/panelcam/panelcam/pkg/geom"
)

// quantum is the coordinate rounding tolerance in millimetres.
const quantum = 1e-6

// key identifies a coordinate bucket.
type key struct {
	x int64
	y int64
}

func keyOf(p geom.Point) key {
	return key{
		x: int64(math.Round(p.X / quantum)),
		y: int64(math.Round(p.Y / quantum)),
	}
}

// Detect groups the edge set into connected contours and returns one
// bounding rectangle per contour. Zero edges yield an empty result; the
// caller must handle "no outline detected" by falling back to manual or
// feature-bounds sizing.
//
// Each non-degenerate segment is recorded once at each of its endpoint
// buckets; degenerate (zero-length) segments are recorded once, so they
// are never double-counted. Result order follows first discovery of each
// connected region in edge input order, keeping repeat runs identical.
func Detect(edges []board.Edge) []geom.Rect {
	segs := explode(edges)
	if len(segs) == 0 {
		return nil
	}

	byCoord := make(map[key][]geom.Segment)
	var order []key
	record := func(k key, s geom.Segment) {
		if _, ok := byCoord[k]; !ok {
			order = append(order, k)
		}
		byCoord[k] = append(byCoord[k], s)
	}
	for _, s := range segs {
		record(keyOf(s.Start), s)
		if !s.Degenerate() {
			record(keyOf(s.End), s)
		}
	}

	var rects []geom.Rect
	for _, start := range order {
		if _, ok := byCoord[start]; !ok {
			continue // already consumed by an earlier region
		}
		rects = append(rects, sweep(byCoord, start))
	}
	return rects
}

// sweep consumes one connected region from byCoord, starting at the given
// bucket, and returns its bounding rectangle. The region's buckets are
// removed from the map as they are processed.
func sweep(byCoord map[key][]geom.Segment, start key) geom.Rect {
	var bounds geom.Bounds
	seen := make(map[geom.Segment]bool)

	worklist := []key{start}
	for len(worklist) > 0 {
		k := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		lines, ok := byCoord[k]
		if !ok {
			continue
		}
		delete(byCoord, k)

		for _, s := range lines {
			if seen[s] {
				continue
			}
			seen[s] = true
			bounds.Add(s.Start)
			bounds.Add(s.End)
			// Keep working from the points at the other ends of
			// lines radiating from this one.
			worklist = append(worklist, keyOf(s.Start), keyOf(s.End))
		}
	}
	return bounds.Rect()
}

// explode flattens edge primitives into plain segments. Chains become
// consecutive point pairs.
func explode(edges []board.Edge) []geom.Segment {
	var segs []geom.Segment
	for _, e := range edges {
		switch e.Kind {
		case board.EdgeSegment:
			segs = append(segs, geom.Segment{Start: e.Start, End: e.End})
		case board.EdgeChain:
			for i := 1; i < len(e.Points); i++ {
				segs = append(segs, geom.Segment{Start: e.Points[i-1], End: e.Points[i]})
			}
		}
	}
	return segs
}

// SelectOutline picks the first detected contour rectangle that overlaps
// the feature bounding box. The first match wins if several overlap; that
// is a known simplification, not a uniqueness guarantee. The second
// return is false when no contour qualifies.
func SelectOutline(rects []geom.Rect, features geom.Rect) (geom.Rect, bool) {
	for _, r := range rects {
		if r.Intersects(features) {
			return r, true
		}
	}
	return geom.Rect{}, false
}
