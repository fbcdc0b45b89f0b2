// Package tools models the machine's tool catalog and machining
// preferences.
//
// A Table is a validated, read-only catalog of drills and end mills plus
// the preferences that drive scheduling: the predrill (spot drill) tool,
// the mill tool used for cutouts, and the coolant mode. Construction
// validates everything up front; a Table in hand is always consistent.
package tools

import (
	"sort"

	"github.com/panelcam/panelcam/pkg/errors"
)

// Kind is the tool type.
type Kind string

// Supported tool kinds.
const (
	KindDrill   Kind = "drill"
	KindEndMill Kind = "endmill"
)

// Coolant is the machine coolant mode.
type Coolant string

// Supported coolant modes.
const (
	CoolantNone  Coolant = "none"
	CoolantMist  Coolant = "mist"
	CoolantFlood Coolant = "flood"
)

// Tool describes a single tool in the machine's carousel.
// Immutable once constructed.
type Tool struct {
	Num      int     // carousel position / T number
	Diameter float64 // mm
	Feed     float64 // lateral feed, mm/min
	Speed    float64 // spindle speed, rpm
	Downfeed float64 // plunge feed, mm/min
	Kind     Kind
}

// NewTool validates and builds a Tool. Downfeed defaults to feed when
// zero. Diameter, feed and speed must be positive.
func NewTool(num int, diameter, feed, speed, downfeed float64, kind Kind) (Tool, error) {
	if kind != KindDrill && kind != KindEndMill {
		return Tool{}, errors.New(errors.ErrCodeInvalidTool, "tool %d: unrecognised tool type %q", num, kind)
	}
	if diameter <= 0 {
		return Tool{}, errors.New(errors.ErrCodeInvalidTool, "tool %d: diameter must be positive, got %v", num, diameter)
	}
	if feed <= 0 {
		return Tool{}, errors.New(errors.ErrCodeInvalidTool, "tool %d: feed must be positive, got %v", num, feed)
	}
	if speed <= 0 {
		return Tool{}, errors.New(errors.ErrCodeInvalidTool, "tool %d: speed must be positive, got %v", num, speed)
	}
	if downfeed < 0 {
		return Tool{}, errors.New(errors.ErrCodeInvalidTool, "tool %d: downfeed must not be negative, got %v", num, downfeed)
	}
	if downfeed == 0 {
		downfeed = feed
	}
	return Tool{Num: num, Diameter: diameter, Feed: feed, Speed: speed, Downfeed: downfeed, Kind: kind}, nil
}

// Prefs holds machining preferences referencing tools by number.
// Nil pointers mean "not configured".
type Prefs struct {
	Predrill *int
	Mill     *int
	Coolant  Coolant
}

// Table is the validated tool catalog.
type Table struct {
	tools    map[int]Tool
	predrill *int
	mill     *int
	coolant  Coolant
}

// NewTable validates the tool list and preferences into a Table.
// Validation failures are fatal configuration errors: duplicate tool
// numbers, predrill/mill references to missing or wrong-kind tools, and
// unrecognised coolant modes.
func NewTable(list []Tool, prefs Prefs) (*Table, error) {
	byNum := make(map[int]Tool, len(list))
	for _, tool := range list {
		if _, ok := byNum[tool.Num]; ok {
			return nil, errors.New(errors.ErrCodeDuplicateTool, "duplicate tool %d", tool.Num)
		}
		byNum[tool.Num] = tool
	}

	if prefs.Predrill != nil {
		tool, ok := byNum[*prefs.Predrill]
		if !ok {
			return nil, errors.New(errors.ErrCodeBadToolRef, "predrill refers to missing tool %d", *prefs.Predrill)
		}
		if tool.Kind != KindDrill {
			return nil, errors.New(errors.ErrCodeBadToolRef, "predrill tool %d is not a drill", *prefs.Predrill)
		}
	}
	if prefs.Mill != nil {
		tool, ok := byNum[*prefs.Mill]
		if !ok {
			return nil, errors.New(errors.ErrCodeBadToolRef, "mill refers to missing tool %d", *prefs.Mill)
		}
		if tool.Kind != KindEndMill {
			return nil, errors.New(errors.ErrCodeBadToolRef, "mill tool %d is not an endmill", *prefs.Mill)
		}
	}

	coolant := prefs.Coolant
	if coolant == "" {
		coolant = CoolantNone
	}
	switch coolant {
	case CoolantNone, CoolantMist, CoolantFlood:
	default:
		return nil, errors.New(errors.ErrCodeInvalidCoolant, "invalid coolant mode %q", coolant)
	}

	return &Table{
		tools:    byNum,
		predrill: prefs.Predrill,
		mill:     prefs.Mill,
		coolant:  coolant,
	}, nil
}

// Coolant returns the configured coolant mode.
func (t *Table) Coolant() Coolant { return t.coolant }

// AllTools returns every tool sorted by tool number ascending.
func (t *Table) AllTools() []Tool {
	out := make([]Tool, 0, len(t.tools))
	for _, tool := range t.tools {
		out = append(out, tool)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Num < out[j].Num })
	return out
}

// ToolByNumber looks up a tool by its number.
func (t *Table) ToolByNumber(n int) (Tool, bool) {
	tool, ok := t.tools[n]
	return tool, ok
}

// DrillDiameters returns the set of available drill diameters, sorted
// ascending.
func (t *Table) DrillDiameters() []float64 {
	seen := make(map[float64]bool)
	var out []float64
	for _, tool := range t.tools {
		if tool.Kind != KindDrill || seen[tool.Diameter] {
			continue
		}
		seen[tool.Diameter] = true
		out = append(out, tool.Diameter)
	}
	sort.Float64s(out)
	return out
}

// DrillByDiameter returns the drill with exactly the given diameter.
// There is no tolerance and no nearest match. When several drills share a
// diameter the lowest-numbered one wins.
func (t *Table) DrillByDiameter(d float64) (Tool, bool) {
	var found Tool
	ok := false
	for _, tool := range t.AllTools() {
		if tool.Kind == KindDrill && tool.Diameter == d {
			found = tool
			ok = true
			break
		}
	}
	return found, ok
}

// PredrillTool returns the configured predrill tool, if any.
func (t *Table) PredrillTool() (Tool, bool) {
	if t.predrill == nil {
		return Tool{}, false
	}
	return t.tools[*t.predrill], true
}

// MillTool returns the configured mill tool, if any.
func (t *Table) MillTool() (Tool, bool) {
	if t.mill == nil {
		return Tool{}, false
	}
	return t.tools[*t.mill], true
}
