package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/panelcam/panelcam/pkg/errors"
	"github.com/panelcam/panelcam/pkg/geom"
)

// filterFlags holds the feature selection flags shared by the gcode and
// export commands.
type filterFlags struct {
	skip    []string
	include []string
	adjust  []string
	sort    string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&f.skip, "skip", nil, "feature reference(s) to skip")
	cmd.Flags().StringSliceVar(&f.include, "include", nil, "only process these feature reference(s)")
	cmd.Flags().StringArrayVar(&f.adjust, "adjust", nil, "adjust a feature position, e.g. J1=0.5,-0.25 (repeatable)")
	cmd.Flags().StringVar(&f.sort, "sort", "", "comma-separated feature sort keys, e.g. dia,x,y")
}

// adjustments parses the --adjust entries into per-reference offsets.
func (f *filterFlags) adjustments() (map[string]geom.Point, error) {
	if len(f.adjust) == 0 {
		return nil, nil
	}
	out := make(map[string]geom.Point, len(f.adjust))
	for _, entry := range f.adjust {
		ref, offsets, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"bad adjustment %q, want REF=dx,dy", entry)
		}
		xs, ys, ok := strings.Cut(offsets, ",")
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"bad adjustment %q, want REF=dx,dy", entry)
		}
		x, errX := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(ys), 64)
		if errX != nil || errY != nil {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"bad adjustment offsets in %q", entry)
		}
		out[strings.TrimSpace(ref)] = geom.Point{X: x, Y: y}
	}
	return out, nil
}
