package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/panelcam/panelcam/pkg/tools"
)

var (
	colorCyan  = lipgloss.Color("36")  // Teal - headings and numbers
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	// styleTitle for main headings.
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// styleNumber for numeric values.
	styleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// styleValue for data values.
	styleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// styleDim for secondary/muted text.
	styleDim = lipgloss.NewStyle().Foreground(colorDim)
)

// printToolTable writes a styled listing of a validated tool table.
func printToolTable(w io.Writer, path string, table *tools.Table) {
	fmt.Fprintln(w, styleTitle.Render("Tool table "+path))
	for _, tool := range table.AllTools() {
		fmt.Fprintf(w, "  %s %s %s  feed %s  speed %s\n",
			styleNumber.Render(fmt.Sprintf("T%d", tool.Num)),
			styleValue.Render(fmt.Sprintf("%.1fmm", tool.Diameter)),
			styleValue.Render(string(tool.Kind)),
			styleDim.Render(fmt.Sprintf("%.0f", tool.Feed)),
			styleDim.Render(fmt.Sprintf("%.0f", tool.Speed)))
	}
	fmt.Fprintf(w, "  coolant: %s\n", styleValue.Render(string(table.Coolant())))
	if predrill, ok := table.PredrillTool(); ok {
		fmt.Fprintf(w, "  predrill: %s\n", styleNumber.Render(fmt.Sprintf("T%d", predrill.Num)))
	}
	if mill, ok := table.MillTool(); ok {
		fmt.Fprintf(w, "  mill: %s\n", styleNumber.Render(fmt.Sprintf("T%d", mill.Num)))
	}
}
