package render

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/panelcam/panelcam/pkg/board"
	"github.com/panelcam/panelcam/pkg/errors"
)

// DefaultCSVFields is the full column set in its canonical order.
const DefaultCSVFields = "ref,source,kind,x,y,dia,x1,y1,x2,y2"

// csvCell formats one field of a feature. Numeric columns that do not
// apply to the feature's kind come out empty, not zero.
func csvCell(f board.Feature, key string) string {
	num := func(v float64, applies bool) string {
		if !applies {
			return ""
		}
		return strconv.FormatFloat(v, 'f', 3, 64)
	}
	hole := f.Kind == board.KindHole
	rect := f.Kind == board.KindRect
	switch key {
	case "ref":
		return f.Ref
	case "source":
		return f.Source
	case "kind":
		return string(f.Kind)
	case "x":
		return num(f.X, hole)
	case "y":
		return num(f.Y, hole)
	case "dia":
		return num(f.Diameter, hole)
	case "x1":
		return num(f.X1, rect)
	case "y1":
		return num(f.Y1, rect)
	case "x2":
		return num(f.X2, rect)
	case "y2":
		return num(f.Y2, rect)
	}
	return ""
}

// CSV writes the feature table with a comma-separated field selection;
// fields defaults to DefaultCSVFields when empty.
func CSV(w io.Writer, b *board.Board, fields string) error {
	if fields == "" {
		fields = DefaultCSVFields
	}
	kk := strings.Split(fields, ",")
	for _, key := range kk {
		if _, ok := featureKeys[key]; !ok {
			return errors.New(errors.ErrCodeInvalidInput, "unknown field: %s", key)
		}
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(kk); err != nil {
		return err
	}
	row := make([]string, len(kk))
	for _, f := range b.Features {
		for i, key := range kk {
			row[i] = csvCell(f, key)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
