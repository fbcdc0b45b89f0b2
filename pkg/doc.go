// Package pkg provides the core libraries for panelcam front-panel CAM.
//
// # Overview
//
// panelcam turns a circuit board's through-panel features (jacks, pots,
// switches, displays) into a machining program for the matching front
// panel. The pkg directory is organized around the pipeline stages:
//
//  1. [board] - Board geometry model, JSON import, feature filtering
//  2. [contour] - Board outline recovery from edge primitives
//  3. [tools] - Tool table model and TOML configuration
//  4. [toolpath] - Panel sizing and machining operation scheduling
//  5. [gcode] - Numbered-program emission
//  6. [render] - Tabular, CSV, SVG, and OpenSCAD exports
//  7. [pipeline] - Orchestration (load → outline → plan → emit)
//
// # Architecture
//
// The typical data flow through panelcam:
//
//	Board description (JSON) + tool table (TOML)
//	         ↓
//	    [board] package (features, filters)
//	         ↓
//	    [contour] package (outline recovery)
//	         ↓
//	    [toolpath] package (panel sizing + scheduling)
//	         ↓
//	    [gcode] / [render] output
//
// Supporting packages: [geom] for primitive geometry, [errors] for
// coded errors, [buildinfo] for build-time version stamps.
//
// # Quick Start
//
// Run the complete pipeline and emit a program:
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    BoardPath:  "vco.board.json",
//	    ToolConfig: "tools.toml",
//	})
//	if err != nil {
//	    return err
//	}
//	err = runner.EmitGCode(os.Stdout, result)
//
// [board]: https://pkg.go.dev/github.com/panelcam/panelcam/pkg/board
// [contour]: https://pkg.go.dev/github.com/panelcam/panelcam/pkg/contour
// [tools]: https://pkg.go.dev/github.com/panelcam/panelcam/pkg/tools
// [toolpath]: https://pkg.go.dev/github.com/panelcam/panelcam/pkg/toolpath
// [gcode]: https://pkg.go.dev/github.com/panelcam/panelcam/pkg/gcode
// [render]: https://pkg.go.dev/github.com/panelcam/panelcam/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/panelcam/panelcam/pkg/pipeline
// [geom]: https://pkg.go.dev/github.com/panelcam/panelcam/pkg/geom
// [errors]: https://pkg.go.dev/github.com/panelcam/panelcam/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/panelcam/panelcam/pkg/buildinfo
package pkg
