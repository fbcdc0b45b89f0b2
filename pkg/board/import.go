package board

import (
	"encoding/json"
	"io"
	"os"

	"github.com/panelcam/panelcam/pkg/errors"
	"github.com/panelcam/panelcam/pkg/geom"
)

// ReadJSON decodes a board geometry document from r.
//
// The input must be a JSON object with "features" and "edges" arrays:
//
//	{
//	  "name": "vco.board",
//	  "features": [
//	    {"ref": "J1", "source": "jack_3.5mm", "kind": "hole",
//	     "x": 10.0, "y": 20.0, "dia": 6.0},
//	    {"ref": "OLED1", "source": "oled_0.96", "kind": "rect",
//	     "x1": 5.0, "y1": 8.0, "x2": 30.0, "y2": 22.0}
//	  ],
//	  "edges": [
//	    {"kind": "segment", "start": {"x": 0, "y": 0}, "end": {"x": 40, "y": 0}},
//	    {"kind": "chain", "points": [{"x": 0, "y": 0}, {"x": 40, "y": 0}, ...]}
//	  ]
//	}
//
// ReadJSON returns an error if the JSON is malformed, a feature carries an
// unknown kind, a hole has a non-positive diameter, or an edge chain has
// fewer than two points. Errors name the offending feature/edge so the
// caller can report them with file context. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Board, error) {
	var doc boardDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode board geometry")
	}

	b := &Board{Name: doc.Name}
	for i, f := range doc.Features {
		feat := Feature{
			Ref:      f.Ref,
			Source:   f.Source,
			Kind:     FeatureKind(f.Kind),
			X:        f.X,
			Y:        f.Y,
			Diameter: f.Dia,
			X1:       f.X1,
			Y1:       f.Y1,
			X2:       f.X2,
			Y2:       f.Y2,
		}
		switch feat.Kind {
		case KindHole:
			if feat.Diameter <= 0 {
				return nil, errors.New(errors.ErrCodeInvalidInput,
					"feature %d (%s): hole diameter must be positive, got %v", i, f.Ref, f.Dia)
			}
		case KindRect:
		default:
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"feature %d (%s): unknown kind %q", i, f.Ref, f.Kind)
		}
		b.Features = append(b.Features, feat)
	}

	for i, e := range doc.Edges {
		switch EdgeKind(e.Kind) {
		case EdgeSegment:
			b.Edges = append(b.Edges, Edge{
				Kind:  EdgeSegment,
				Start: geom.Point{X: e.Start.X, Y: e.Start.Y},
				End:   geom.Point{X: e.End.X, Y: e.End.Y},
			})
		case EdgeChain:
			if len(e.Points) < 2 {
				return nil, errors.New(errors.ErrCodeInvalidInput,
					"edge %d: chain needs at least 2 points, got %d", i, len(e.Points))
			}
			pts := make([]geom.Point, len(e.Points))
			for j, p := range e.Points {
				pts[j] = geom.Point{X: p.X, Y: p.Y}
			}
			b.Edges = append(b.Edges, Edge{Kind: EdgeChain, Points: pts})
		default:
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"edge %d: unknown kind %q", i, e.Kind)
		}
	}

	return b, nil
}

// LoadFile reads a board geometry document from path.
func LoadFile(path string) (*Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open board file %s", path)
	}
	defer f.Close()

	b, err := ReadJSON(f)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "%s", path)
	}
	if b.Name == "" {
		b.Name = path
	}
	return b, nil
}

type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type jsonFeature struct {
	Ref    string  `json:"ref"`
	Source string  `json:"source"`
	Kind   string  `json:"kind"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Dia    float64 `json:"dia,omitempty"`
	X1     float64 `json:"x1,omitempty"`
	Y1     float64 `json:"y1,omitempty"`
	X2     float64 `json:"x2,omitempty"`
	Y2     float64 `json:"y2,omitempty"`
}

type jsonEdge struct {
	Kind   string      `json:"kind"`
	Start  jsonPoint   `json:"start,omitempty"`
	End    jsonPoint   `json:"end,omitempty"`
	Points []jsonPoint `json:"points,omitempty"`
}

type boardDoc struct {
	Name     string        `json:"name"`
	Features []jsonFeature `json:"features"`
	Edges    []jsonEdge    `json:"edges"`
}
