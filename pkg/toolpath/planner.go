package toolpath

import (
	"fmt"
	"math"
	"sort"

	"github.com/panelcam/panelcam/pkg/board"
	"github.com/panelcam/panelcam/pkg/errors"
	"github.com/panelcam/panelcam/pkg/geom"
	"github.com/panelcam/panelcam/pkg/tools"
)

// Options configures plan construction.
type Options struct {
	// CutoutPanel adds the panel outline cutout and mounting holes.
	CutoutPanel bool
	// MountDrill is the mounting hole diameter; DefaultMountDrill when zero.
	MountDrill float64
	// Thickness is the material thickness; DefaultThickness when zero.
	Thickness float64
	// Logger receives informational diagnostics (e.g. the fallback from
	// drilling a hole to milling it). May be nil.
	Logger func(msg string, args ...any)
}

// BuildPlan schedules every machining operation for the board.
//
// edge is the board's usable extent in source coordinates (the detected
// outline, or the feature bounds as a fallback); feature positions are
// taken relative to its origin, then centred on the auto-sized panel.
//
// Every violated precondition is a fatal error: there is no partial or
// degraded plan.
func BuildPlan(b *board.Board, table *tools.Table, edge geom.Rect, opts Options) (*Plan, error) {
	logf := opts.Logger
	if logf == nil {
		logf = func(string, ...any) {}
	}
	thickness := opts.Thickness
	if thickness == 0 {
		thickness = DefaultThickness
	}
	mountDrill := opts.MountDrill
	if mountDrill == 0 {
		mountDrill = DefaultMountDrill
	}

	panel, err := NewPanel(edge.Width, edge.Height)
	if err != nil {
		return nil, err
	}
	logf("board requires %d HP (%.2fmm)", panel.HP, panel.Width)

	p := &planner{
		table:  table,
		panel:  panel,
		edge:   edge,
		depth:  thickness,
		drills: make(map[float64][]DrillHit),
		logf:   logf,
	}

	if err := p.classify(b); err != nil {
		return nil, err
	}
	if err := p.addEntryDrills(); err != nil {
		return nil, err
	}

	byStart := func(cc []Cutout) {
		sort.SliceStable(cc, func(i, j int) bool {
			if cc[i].StartX != cc[j].StartX {
				return cc[i].StartX < cc[j].StartX
			}
			return cc[i].StartY < cc[j].StartY
		})
	}
	byStart(p.rects)
	byStart(p.rounds)

	var outline *Outline
	var millDia float64
	if opts.CutoutPanel {
		outline, err = p.addPanelCutout(mountDrill)
		if err != nil {
			return nil, err
		}
		mill, _ := table.MillTool()
		millDia = mill.Diameter
	}

	blocks, err := p.assembleBlocks(outline)
	if err != nil {
		return nil, err
	}

	return &Plan{
		Board:        b.Name,
		Panel:        panel,
		Coolant:      table.Coolant(),
		Tools:        table.AllTools(),
		Blocks:       blocks,
		Outline:      outline,
		MillDiameter: millDia,
	}, nil
}

// planner carries intermediate scheduling state for one BuildPlan call.
type planner struct {
	table  *tools.Table
	panel  Panel
	edge   geom.Rect
	depth  float64
	drills map[float64][]DrillHit
	rects  []Cutout
	rounds []Cutout
	logf   func(msg string, args ...any)
}

func (p *planner) addDrill(hit DrillHit) {
	p.drills[hit.Diameter] = append(p.drills[hit.Diameter], hit)
}

// transform maps a source coordinate into panel space.
func (p *planner) transform(x, y float64) (float64, float64) {
	return p.panel.Transform(x-p.edge.OriginX, y-p.edge.OriginY)
}

// classify splits the feature set into drill hits and cutouts. A round
// hole with no matching drill bit falls back to milling, reported as an
// informational diagnostic, never an error.
func (p *planner) classify(b *board.Board) error {
	for _, f := range b.Features {
		switch f.Kind {
		case board.KindHole:
			x, y := p.transform(f.X, f.Y)
			if _, ok := p.table.DrillByDiameter(f.Diameter); !ok {
				p.logf("%s: no drill specified for %.2fmm diameter, will slot using mill tool",
					f.Ref, f.Diameter)
				p.rounds = append(p.rounds, NewRoundCutout(f.Ref, f.Source, p.depth, x, y, f.Diameter))
				continue
			}
			p.addDrill(DrillHit{
				Ref: f.Ref, Source: f.Source,
				Diameter: f.Diameter, Depth: p.depth, X: x, Y: y,
			})
		case board.KindRect:
			x1, y1 := p.transform(f.X1, f.Y1)
			x2, y2 := p.transform(f.X2, f.Y2)
			rc, err := NewRectCutout(f.Ref, f.Source, p.depth, x1, y1, x2, y2)
			if err != nil {
				return err
			}
			p.rects = append(p.rects, rc)
		}
	}

	if _, ok := p.table.MillTool(); !ok {
		if n := len(p.rounds); n > 0 {
			return errors.New(errors.ErrCodeNoMill, "no mill specified for %d round cutouts", n)
		}
		if n := len(p.rects); n > 0 {
			return errors.New(errors.ErrCodeNoMill, "no mill specified for %d rectangular cutouts", n)
		}
	}
	return nil
}

// addEntryDrills selects an entry drill for every cutout, records its
// start point, and merges a synthetic drill hit into the drill schedule.
func (p *planner) addEntryDrills() error {
	for _, group := range [][]Cutout{p.rects, p.rounds} {
		for i := range group {
			c := &group[i]
			dia, err := p.startDrill(*c)
			if err != nil {
				return err
			}
			c.StartX, c.StartY = ComputeStartPoint(*c, dia)
			p.addDrill(DrillHit{
				Ref:      fmt.Sprintf("%s cutout entry hole", c.Ref),
				Source:   c.Source,
				Diameter: dia,
				Depth:    c.Depth,
				X:        c.StartX,
				Y:        c.StartY,
			})
		}
	}
	return nil
}

// startDrill determines a suitable entry drill diameter for a cutout: the
// smallest drill larger than the end mill that still leaves one drill
// radius of clearance inside the cutout.
func (p *planner) startDrill(c Cutout) (float64, error) {
	mill, ok := p.table.MillTool()
	if !ok {
		return 0, errors.New(errors.ErrCodeNoMill, "no mill specified for cutout %s", c.Ref)
	}
	need := math.Min(c.NeedX(), c.NeedY())
	if mill.Diameter*2 > need {
		return 0, errors.New(errors.ErrCodeMillTooBig,
			"mill tool #%d dia %.3f too big for required clearance %.3f", mill.Num, mill.Diameter, need)
	}
	for _, d := range p.table.DrillDiameters() {
		if d > mill.Diameter && d*2 < need {
			return d, nil
		}
	}
	return 0, errors.New(errors.ErrCodeNoStartDrill,
		"no suitable start drill for %s (need %.3f) mill tool #%d dia %.3f",
		c.Ref, need, mill.Num, mill.Diameter)
}

// addPanelCutout prepares the outline traversal, its entry hole, and the
// mounting hole drills.
func (p *planner) addPanelCutout(mountDrill float64) (*Outline, error) {
	mill, ok := p.table.MillTool()
	if !ok {
		return nil, errors.New(errors.ErrCodeNoMill, "no mill specified for panel cutout")
	}
	need := math.Min(p.panel.Width, p.panel.Height)
	if mill.Diameter*2 > need {
		return nil, errors.New(errors.ErrCodeMillTooBig,
			"mill tool #%d dia %.3f too big for required clearance %.3f", mill.Num, mill.Diameter, need)
	}

	// Entry drill: the second-smallest drill at least as big as the
	// mill, falling back to the smallest when only one qualifies.
	var candidates []float64
	for _, d := range p.table.DrillDiameters() {
		if d >= mill.Diameter {
			candidates = append(candidates, d)
		}
	}
	if len(candidates) == 0 {
		return nil, errors.New(errors.ErrCodeNoStartDrill,
			"no suitable entry drill for panel cutout (mill dia %.3f)", mill.Diameter)
	}
	idx := 1
	if len(candidates) < 2 {
		idx = 0
	}
	dia := candidates[idx]

	entry := -dia * 0.8
	outline := &Outline{
		// Leave a little horizontal space for module stacking.
		X1:     0.1,
		X2:     p.panel.Width - 0.1,
		Y1:     0,
		Y2:     p.panel.Height,
		EntryX: entry,
		EntryY: entry,
		Depth:  p.depth,
	}
	p.addDrill(DrillHit{
		Ref: "panel cutout start", Diameter: dia, Depth: p.depth,
		X: entry, Y: entry,
	})

	if p.panel.HP <= 1 {
		// No room for mounting holes.
		return outline, nil
	}
	if _, ok := p.table.DrillByDiameter(mountDrill); !ok {
		return nil, errors.New(errors.ErrCodeInvalidConfig,
			"no drill tool for %.1fmm mounting holes", mountDrill)
	}
	mount := func(ref string, x, y float64) {
		p.addDrill(DrillHit{Ref: ref, Diameter: mountDrill, Depth: p.depth, X: x, Y: y})
	}
	if p.panel.HP <= 8 {
		// One column of mounting holes.
		mount("panel mount B", 7.5, 3.0)
		mount("panel mount T", 7.5, p.panel.Height-3.0)
	} else {
		// Two columns of mounting holes.
		mount("panel mount B/L", 7.5, 3.0)
		mount("panel mount T/L", 7.5, p.panel.Height-3.0)
		mount("panel mount B/R", p.panel.Width-7.5, 3.0)
		mount("panel mount T/R", p.panel.Width-7.5, p.panel.Height-3.0)
	}
	return outline, nil
}

// assembleBlocks orders the schedule: spot drilling, drill groups in
// ascending diameter, rectangular cutouts, round cutouts, panel outline.
func (p *planner) assembleBlocks(outline *Outline) ([]Block, error) {
	var blocks []Block

	byPos := func(hits []DrillHit) {
		sort.SliceStable(hits, func(i, j int) bool {
			if hits[i].X != hits[j].X {
				return hits[i].X < hits[j].X
			}
			return hits[i].Y < hits[j].Y
		})
	}

	dias := make([]float64, 0, len(p.drills))
	for dia := range p.drills {
		dias = append(dias, dia)
	}
	sort.Float64s(dias)

	predrill, havePredrill := p.table.PredrillTool()
	if havePredrill && len(p.drills) > 0 {
		var hits []DrillHit
		for _, dia := range dias {
			if dia < predrill.Diameter {
				continue
			}
			hits = append(hits, p.drills[dia]...)
		}
		byPos(hits)
		if len(hits) > 0 {
			blocks = append(blocks, Block{
				Kind: BlockSpotDrill,
				Tool: predrill,
				Desc: fmt.Sprintf("Spot drill holes over %.1fmm", predrill.Diameter),
				Hits: hits,
			})
		}
	}

	for _, dia := range dias {
		if havePredrill && predrill.Diameter == dia {
			// Just spot-drilled to full depth.
			continue
		}
		tool, ok := p.table.DrillByDiameter(dia)
		if !ok {
			return nil, errors.New(errors.ErrCodeInternal, "scheduled diameter %.3f has no drill", dia)
		}
		hits := append([]DrillHit(nil), p.drills[dia]...)
		byPos(hits)
		blocks = append(blocks, Block{
			Kind: BlockDrill,
			Tool: tool,
			Desc: fmt.Sprintf("Drill %.1fmm holes", dia),
			Hits: hits,
		})
	}

	if len(p.rects) > 0 || len(p.rounds) > 0 || outline != nil {
		mill, ok := p.table.MillTool()
		if !ok {
			return nil, errors.New(errors.ErrCodeNoMill, "no mill specified")
		}
		if len(p.rects) > 0 {
			blocks = append(blocks, Block{
				Kind: BlockRectCutout, Tool: mill, Desc: "rectangular cutouts", Cutouts: p.rects,
			})
		}
		if len(p.rounds) > 0 {
			blocks = append(blocks, Block{
				Kind: BlockRoundCutout, Tool: mill, Desc: "round cutouts", Cutouts: p.rounds,
			})
		}
		if outline != nil {
			blocks = append(blocks, Block{
				Kind: BlockPanelCutout, Tool: mill, Desc: "panel cutout", Outline: outline,
			})
		}
	}

	return blocks, nil
}
