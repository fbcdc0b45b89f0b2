package toolpath

import (
	"math"

	"github.com/panelcam/panelcam/pkg/errors"
	"github.com/panelcam/panelcam/pkg/geom"
)

// Panel geometry constants, in millimetres.
const (
	// HPPitch is one horizontal pitch unit.
	HPPitch = 5.08
	// PanelHeight is the fixed rack panel height.
	PanelHeight = 128.5
	// MaxBoardHeight is the tallest board that fits a panel.
	MaxBoardHeight = 110.0
	// DefaultThickness is the default panel material thickness.
	DefaultThickness = 2.0
	// DefaultMountDrill is the default mounting hole drill diameter.
	DefaultMountDrill = 3.4
)

// Panel describes the auto-sized blank that hosts the board, and the
// transform from board coordinates into panel (machine) coordinates.
type Panel struct {
	BoardWidth  float64 // feature extent width, mm
	BoardHeight float64 // feature extent height, mm
	HP          int     // panel width in horizontal pitch units
	Width       float64 // HP * HPPitch
	Height      float64 // always PanelHeight
	XOffset     float64 // centring offset along X
	YOffset     float64 // centring offset along Y
}

// NewPanel sizes a panel for the given board extents. The panel width is
// the smallest whole number of HP that fits the board; the board is
// centred in both axes. Boards with non-positive width or taller than
// MaxBoardHeight are rejected.
func NewPanel(boardWidth, boardHeight float64) (Panel, error) {
	if boardWidth <= 0 {
		return Panel{}, errors.New(errors.ErrCodeBoardTooThin, "board too thin: width %v", boardWidth)
	}
	if boardHeight > MaxBoardHeight {
		return Panel{}, errors.New(errors.ErrCodeBoardTooTall,
			"board too tall for rack panel: height %v exceeds %v", boardHeight, MaxBoardHeight)
	}
	hp := int(math.Ceil(boardWidth / HPPitch))
	width := float64(hp) * HPPitch
	return Panel{
		BoardWidth:  boardWidth,
		BoardHeight: boardHeight,
		HP:          hp,
		Width:       width,
		Height:      PanelHeight,
		XOffset:     (width - boardWidth) / 2,
		YOffset:     (PanelHeight - boardHeight) / 2,
	}, nil
}

// Transform maps a board-relative coordinate into panel space. The board
// coordinate system's Y axis points down; panel/machine Y points up.
func (p Panel) Transform(x, y float64) (float64, float64) {
	return x + p.XOffset, -y - p.YOffset
}

// TransformPoint is Transform over a geom.Point.
func (p Panel) TransformPoint(pt geom.Point) geom.Point {
	x, y := p.Transform(pt.X, pt.Y)
	return geom.Point{X: x, Y: y}
}
