package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/panelcam/panelcam/pkg/board"
	"github.com/panelcam/panelcam/pkg/errors"
	"github.com/panelcam/panelcam/pkg/pipeline"
	"github.com/panelcam/panelcam/pkg/render"
)

const (
	formatTabular = "tabular"
	formatCSV     = "csv"
	formatSVG     = "svg"
	formatSCAD    = "scad"
)

// exportOpts holds the command-line flags for the export command.
type exportOpts struct {
	output    string  // output file path; stdout when empty
	fields    string  // CSV column selection
	panel     bool    // SVG: draw on the auto-sized panel
	thickness float64 // SCAD: panel depth in mm
	filter    filterFlags
}

// newExportCmd creates the export command for writing the feature set in
// non-machining formats.
func newExportCmd() *cobra.Command {
	var opts exportOpts

	cmd := &cobra.Command{
		Use:   "export [tabular|csv|svg|scad] [board file]",
		Short: "Write the feature set as tabular text, CSV, SVG, or OpenSCAD",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.Context(), args[0], args[1], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&opts.fields, "fields", "", "CSV columns (default "+render.DefaultCSVFields+")")
	cmd.Flags().BoolVar(&opts.panel, "panel", false, "draw the SVG on the auto-sized panel")
	cmd.Flags().Float64Var(&opts.thickness, "thickness", 2.0, "panel depth for OpenSCAD output")
	opts.filter.register(cmd)

	return cmd
}

func runExport(ctx context.Context, format, boardPath string, opts *exportOpts) error {
	logger := loggerFromContext(ctx)
	adjust, err := opts.filter.adjustments()
	if err != nil {
		return err
	}

	b, err := board.LoadFile(boardPath)
	if err != nil {
		return err
	}
	b = b.ApplyFilter(board.FilterOptions{
		Skip:    opts.filter.skip,
		Include: opts.filter.include,
		Adjust:  adjust,
		Logger:  logger.Infof,
	})
	if err := render.SortFeatures(b.Features, opts.filter.sort); err != nil {
		return err
	}

	out := io.Writer(os.Stdout)
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	// Panel-relative formats need the board edge and the sized panel.
	runner := pipeline.NewRunner(logger)
	result := &pipeline.Result{Board: b}

	switch format {
	case formatTabular:
		return render.Tabular(out, b)
	case formatCSV:
		return render.CSV(out, b, opts.fields)
	case formatSVG:
		var svgOpts []render.SVGOption
		if opts.panel {
			if err := runner.ResolveEdge(result); err != nil {
				return err
			}
			p, err := runner.Panel(result)
			if err != nil {
				return err
			}
			svgOpts = append(svgOpts, render.WithSVGPanel(p, result.Edge))
		}
		data, err := render.RenderSVG(b, svgOpts...)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	case formatSCAD:
		if err := runner.ResolveEdge(result); err != nil {
			return err
		}
		p, err := runner.Panel(result)
		if err != nil {
			return err
		}
		_, err = out.Write(render.RenderOpenSCAD(b, p, result.Edge, opts.thickness))
		return err
	}
	return errors.New(errors.ErrCodeInvalidInput, "unknown export format: %s", format)
}
