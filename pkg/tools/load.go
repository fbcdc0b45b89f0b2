package tools

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/panelcam/panelcam/pkg/errors"
)

// fileDoc is the on-disk tool configuration schema:
//
//	[[tool]]
//	num = 1
//	dia = 3.0
//	feed = 400.0
//	speed = 10000.0
//	type = "drill"
//	downfeed = 200.0   # optional, defaults to feed
//
//	[prefs]
//	predrill = 1       # optional, tool number of the spot drill
//	mill = 5           # optional, tool number of the cutout end mill
//	coolant = "mist"   # optional: none (default), mist, flood
type fileDoc struct {
	Tools []toolRec `toml:"tool"`
	Prefs prefsRec  `toml:"prefs"`
}

type toolRec struct {
	Num      int     `toml:"num"`
	Dia      float64 `toml:"dia"`
	Feed     float64 `toml:"feed"`
	Speed    float64 `toml:"speed"`
	Type     string  `toml:"type"`
	Downfeed float64 `toml:"downfeed"`
}

type prefsRec struct {
	Predrill *int   `toml:"predrill"`
	Mill     *int   `toml:"mill"`
	Coolant  string `toml:"coolant"`
}

// Load reads and validates a tool configuration file.
//
// Malformed TOML is reported with the parser's position context; model
// violations (unknown tool type, duplicate number, dangling predrill/mill
// reference, bad coolant mode) are reported with the file path. Both are
// fatal configuration errors.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open tool configuration %s", path)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "%s", path)
	}
	return t, nil
}

// Parse decodes and validates tool configuration from raw TOML.
func Parse(data []byte) (*Table, error) {
	var doc fileDoc
	if err := toml.Unmarshal(data, &doc); err != nil {
		// toml.ParseError carries line/column context in its message.
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse tool configuration")
	}

	list := make([]Tool, 0, len(doc.Tools))
	for _, rec := range doc.Tools {
		tool, err := NewTool(rec.Num, rec.Dia, rec.Feed, rec.Speed, rec.Downfeed, Kind(rec.Type))
		if err != nil {
			return nil, err
		}
		list = append(list, tool)
	}

	return NewTable(list, Prefs{
		Predrill: doc.Prefs.Predrill,
		Mill:     doc.Prefs.Mill,
		Coolant:  Coolant(doc.Prefs.Coolant),
	})
}
