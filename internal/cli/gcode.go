package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/panelcam/panelcam/pkg/pipeline"
)

// gcodeOpts holds the command-line flags for the gcode command.
type gcodeOpts struct {
	tools       string  // tool table TOML file
	output      string  // output file path; stdout when empty
	cutoutPanel bool    // cut the panel free and add mounting holes
	mountDrill  float64 // mounting hole diameter in mm
	thickness   float64 // material thickness in mm
	filter      filterFlags
}

// newGCodeCmd creates the gcode command: the full load → outline → plan →
// emit pipeline writing a machining program.
func newGCodeCmd() *cobra.Command {
	var opts gcodeOpts

	cmd := &cobra.Command{
		Use:   "gcode [board file]",
		Short: "Plan toolpaths and emit the machining program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGCode(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.tools, "tools", "t", "tools.toml", "tool table file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&opts.cutoutPanel, "cutout-panel", false, "cut the panel outline and add mounting holes")
	cmd.Flags().Float64Var(&opts.mountDrill, "mount-drill", 3.4, "mounting hole diameter in mm")
	cmd.Flags().Float64Var(&opts.thickness, "thickness", 2.0, "material thickness in mm")
	opts.filter.register(cmd)

	return cmd
}

func runGCode(ctx context.Context, boardPath string, opts *gcodeOpts) error {
	logger := loggerFromContext(ctx)
	adjust, err := opts.filter.adjustments()
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	runner := pipeline.NewRunner(logger)
	result, err := runner.Execute(ctx, pipeline.Options{
		BoardPath:   boardPath,
		ToolConfig:  opts.tools,
		CutoutPanel: opts.cutoutPanel,
		MountDrill:  opts.mountDrill,
		Thickness:   opts.thickness,
		Skip:        opts.filter.skip,
		Include:     opts.filter.include,
		Adjust:      adjust,
		Sort:        opts.filter.sort,
	})
	if err != nil {
		return err
	}

	out := os.Stdout
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}
	if err := runner.EmitGCode(out, result); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Emitted %d blocks for %d HP panel",
		result.Stats.Blocks, result.Plan.Panel.HP))
	return nil
}
