// Package render exports a board's feature set in human- and
// tool-oriented formats: a numbered tabular listing, CSV with a
// selectable column set, an SVG preview with sized holes and centre
// graticules, and an OpenSCAD difference script for a populated panel.
//
// All renderers write to an io.Writer and emit features in slice order;
// callers wanting a particular order sort first (see SortFeatures).
package render
