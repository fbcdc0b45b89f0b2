package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/panelcam/panelcam/pkg/board"
	"github.com/panelcam/panelcam/pkg/contour"
)

// newOutlineCmd creates the outline command: a debugging aid showing the
// contiguous regions recovered from edge primitives and which one (if
// any) is usable as the board outline.
func newOutlineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "outline [board file]",
		Short: "Show the board outline recovered from edge primitives",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := board.LoadFile(args[0])
			if err != nil {
				return err
			}
			bounds, err := b.FeatureBounds()
			if err != nil {
				return err
			}

			rects := contour.Detect(b.Edges)
			fmt.Fprintf(os.Stdout, "%s\n", styleTitle.Render(
				fmt.Sprintf("%d contiguous region(s) from %d edge(s)", len(rects), len(b.Edges))))
			for i, r := range rects {
				fmt.Fprintf(os.Stdout, "  %d: origin (%.3f, %.3f) size %.3f x %.3f\n",
					i+1, r.OriginX, r.OriginY, r.Width, r.Height)
			}
			fmt.Fprintf(os.Stdout, "  feature bounds: origin (%.3f, %.3f) size %.3f x %.3f\n",
				bounds.OriginX, bounds.OriginY, bounds.Width, bounds.Height)

			if edge, ok := contour.SelectOutline(rects, bounds); ok {
				fmt.Fprintf(os.Stdout, "%s origin (%.3f, %.3f) size %.3f x %.3f\n",
					styleValue.Render("outline:"), edge.OriginX, edge.OriginY, edge.Width, edge.Height)
			} else {
				fmt.Fprintln(os.Stdout, styleDim.Render("no usable outline; plans will use feature bounds"))
			}
			return nil
		},
	}
}
