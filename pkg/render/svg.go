package render

import (
	"bytes"
	"fmt"

	"github.com/panelcam/panelcam/pkg/board"
	"github.com/panelcam/panelcam/pkg/geom"
	"github.com/panelcam/panelcam/pkg/toolpath"
)

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	width, height float64
	hasSize       bool
	xoff, yoff    float64
	hasOffset     bool
	holeScale     float64
	gratScale     float64
	textYOff      float64
}

// WithSVGSize fixes the drawing size in millimetres. Without it, the
// drawing is sized to the feature bounds.
func WithSVGSize(width, height float64) SVGOption {
	return func(r *svgRenderer) { r.width, r.height, r.hasSize = width, height, true }
}

// WithSVGOffset shifts every feature by (x, y) millimetres.
func WithSVGOffset(x, y float64) SVGOption {
	return func(r *svgRenderer) { r.xoff, r.yoff, r.hasOffset = x, y, true }
}

// WithSVGPanel draws the board centred on its auto-sized panel: the
// drawing takes the panel's dimensions and features shift by the panel
// offsets relative to the board edge origin.
func WithSVGPanel(p toolpath.Panel, edge geom.Rect) SVGOption {
	return func(r *svgRenderer) {
		r.width, r.height, r.hasSize = p.Width, p.Height, true
		r.xoff, r.yoff, r.hasOffset = p.XOffset-edge.OriginX, p.YOffset-edge.OriginY, true
	}
}

// WithSVGHoleScale scales drawn hole radii (default 0.8, slightly
// undersize so the graticule stays visible inside pads).
func WithSVGHoleScale(s float64) SVGOption {
	return func(r *svgRenderer) { r.holeScale = s }
}

// RenderSVG draws the board's features: sized circles with centre
// graticules and reference labels for holes, outlines for rectangles.
// One user unit is one millimetre.
func RenderSVG(b *board.Board, opts ...SVGOption) ([]byte, error) {
	r := svgRenderer{holeScale: 0.8, gratScale: 0.5, textYOff: 2.5}
	for _, opt := range opts {
		opt(&r)
	}
	if !r.hasSize || !r.hasOffset {
		bounds, err := b.FeatureBounds()
		if err != nil {
			return nil, err
		}
		if !r.hasSize {
			r.width, r.height = bounds.Width, bounds.Height
		}
		if !r.hasOffset {
			r.xoff, r.yoff = -bounds.OriginX, -bounds.OriginY
		}
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.3f %.3f" width="%.3fmm" height="%.3fmm">`+"\n",
		r.width, r.height, r.width, r.height)
	for _, f := range b.Features {
		switch f.Kind {
		case board.KindHole:
			r.renderHole(&buf, f)
		case board.KindRect:
			r.renderRect(&buf, f)
		}
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

func (r *svgRenderer) renderHole(buf *bytes.Buffer, f board.Feature) {
	rad := f.Diameter / 2
	x, y := f.X+r.xoff, f.Y+r.yoff
	drawn := rad * r.holeScale
	grat := drawn * r.gratScale

	fmt.Fprintf(buf, `<g id="drill-%s">`+"\n", f.Ref)
	fmt.Fprintf(buf, `<circle cx="%.3f" cy="%.3f" r="%.3f" stroke="black" stroke-width="0.2" fill="none"/>`+"\n",
		x, y, drawn)
	fmt.Fprintf(buf, `<line x1="%.3f" y1="%.3f" x2="%.3f" y2="%.3f" stroke="black" stroke-width="0.2"/>`+"\n",
		x-grat, y, x+grat, y)
	fmt.Fprintf(buf, `<line x1="%.3f" y1="%.3f" x2="%.3f" y2="%.3f" stroke="black" stroke-width="0.2"/>`+"\n",
		x, y-grat, x, y+grat)
	fmt.Fprintf(buf, `<text x="%.3f" y="%.3f" fill="black" text-anchor="middle" font-family="sans-serif" font-size="2.5">%s</text>`+"\n",
		x, y+rad+r.textYOff, f.Ref)
	buf.WriteString("</g>\n")
}

func (r *svgRenderer) renderRect(buf *bytes.Buffer, f board.Feature) {
	fmt.Fprintf(buf, `<g id="rect-%s">`+"\n", f.Ref)
	fmt.Fprintf(buf, `<rect x="%.3f" y="%.3f" width="%.3f" height="%.3f" fill="none" stroke="black" stroke-width="0.2"/>`+"\n",
		f.X1+r.xoff, f.Y1+r.yoff, f.X2-f.X1, f.Y2-f.Y1)
	buf.WriteString("</g>\n")
}
