package pipeline

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/panelcam/panelcam/pkg/board"
	"github.com/panelcam/panelcam/pkg/contour"
	"github.com/panelcam/panelcam/pkg/gcode"
	"github.com/panelcam/panelcam/pkg/render"
	"github.com/panelcam/panelcam/pkg/toolpath"
	"github.com/panelcam/panelcam/pkg/tools"
)

// Runner executes pipeline stages. It is stateless except for the
// logger; multiple goroutines can share one Runner with different
// options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to log.Default.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete load → outline → plan pipeline. Emission is
// separate (EmitGCode) so callers can inspect the plan first.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	result := &Result{}

	loadStart := time.Now()
	if err := r.Load(opts, result); err != nil {
		return nil, err
	}
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.Features = len(result.Board.Features)
	r.Logger.Info("loaded board",
		"board", result.Board.Name,
		"features", result.Stats.Features,
		"duration", result.Stats.LoadTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := r.ResolveEdge(result); err != nil {
		return nil, err
	}

	planStart := time.Now()
	plan, err := toolpath.BuildPlan(result.Board, result.Table, result.Edge, toolpath.Options{
		CutoutPanel: opts.CutoutPanel,
		MountDrill:  opts.MountDrill,
		Thickness:   opts.Thickness,
		Logger:      r.Logger.Infof,
	})
	if err != nil {
		return nil, err
	}
	result.Plan = plan
	result.Stats.PlanTime = time.Since(planStart)
	result.Stats.Blocks = len(plan.Blocks)
	r.Logger.Info("planned toolpaths",
		"hp", plan.Panel.HP,
		"blocks", result.Stats.Blocks,
		"duration", result.Stats.PlanTime)

	return result, nil
}

// Load reads the tool table and the board, applying feature filters and
// the optional sort, and fills the corresponding Result fields.
func (r *Runner) Load(opts Options, result *Result) error {
	table, err := tools.Load(opts.ToolConfig)
	if err != nil {
		return err
	}
	result.Table = table

	b, err := board.LoadFile(opts.BoardPath)
	if err != nil {
		return err
	}
	b = b.ApplyFilter(board.FilterOptions{
		Skip:    opts.Skip,
		Include: opts.Include,
		Adjust:  opts.Adjust,
		Logger:  r.Logger.Infof,
	})
	if opts.Sort != "" {
		if err := render.SortFeatures(b.Features, opts.Sort); err != nil {
			return err
		}
	}
	result.Board = b
	return nil
}

// ResolveEdge determines the board extent: the outline recovered from
// edge primitives when one encloses the features, otherwise the feature
// bounding box.
func (r *Runner) ResolveEdge(result *Result) error {
	bounds, err := result.Board.FeatureBounds()
	if err != nil {
		return err
	}

	rects := contour.Detect(result.Board.Edges)
	if edge, ok := contour.SelectOutline(rects, bounds); ok {
		r.Logger.Info("detected usable board edge",
			"width", edge.Width, "height", edge.Height)
		result.Edge = edge
		result.EdgeDetected = true
		return nil
	}

	r.Logger.Warn("no usable board edge, using feature bounds",
		"width", bounds.Width, "height", bounds.Height)
	result.Edge = bounds
	result.EdgeDetected = false
	return nil
}

// Panel sizes the panel for the result's edge without building a plan.
func (r *Runner) Panel(result *Result) (toolpath.Panel, error) {
	return toolpath.NewPanel(result.Edge.Width, result.Edge.Height)
}

// EmitGCode serializes the planned program to w.
func (r *Runner) EmitGCode(w io.Writer, result *Result) error {
	return gcode.Emit(w, result.Plan)
}
