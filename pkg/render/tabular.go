package render

import (
	"fmt"
	"io"

	"github.com/panelcam/panelcam/pkg/board"
)

// Tabular writes a numbered human-readable feature listing.
func Tabular(w io.Writer, b *board.Board) error {
	for n, f := range b.Features {
		var err error
		switch f.Kind {
		case board.KindHole:
			_, err = fmt.Fprintf(w, "%3d: %-6s drill %9.3f %9.3f dia %4.2f\n",
				n+1, f.Ref, f.X, f.Y, f.Diameter)
		case board.KindRect:
			_, err = fmt.Fprintf(w, "%3d: %-6s rect  %9.3f %9.3f %9.3f %9.3f\n",
				n+1, f.Ref, f.X1, f.Y1, f.X2, f.Y2)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
