package tools

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/panelcam/panelcam/pkg/errors"
)

const sampleConfig = `
[[tool]]
num = 1
dia = 1.0
feed = 400.0
speed = 10000.0
type = "drill"

[[tool]]
num = 2
dia = 3.0
feed = 350.0
speed = 8000.0
type = "drill"
downfeed = 120.0

[[tool]]
num = 5
dia = 3.2
feed = 300.0
speed = 12000.0
type = "endmill"

[prefs]
predrill = 1
mill = 5
coolant = "flood"
`

func TestParse(t *testing.T) {
	table, err := Parse([]byte(sampleConfig))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if n := len(table.AllTools()); n != 3 {
		t.Errorf("len(AllTools()) = %d, want 3", n)
	}

	tool, ok := table.ToolByNumber(2)
	if !ok {
		t.Fatal("ToolByNumber(2) not found")
	}
	if tool.Downfeed != 120 {
		t.Errorf("tool 2 Downfeed = %v, want 120", tool.Downfeed)
	}

	if table.Coolant() != CoolantFlood {
		t.Errorf("Coolant() = %v, want flood", table.Coolant())
	}
	if mill, ok := table.MillTool(); !ok || mill.Num != 5 {
		t.Errorf("MillTool() = %+v, %v; want tool 5", mill, ok)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		code errors.Code
	}{
		{
			name: "malformed toml",
			doc:  "[[tool]\nnum=1",
			code: errors.ErrCodeInvalidConfig,
		},
		{
			name: "unknown type",
			doc:  "[[tool]]\nnum=1\ndia=3.0\nfeed=400.0\nspeed=1000.0\ntype=\"laser\"",
			code: errors.ErrCodeInvalidTool,
		},
		{
			name: "duplicate tool",
			doc: `[[tool]]
num = 1
dia = 3.0
feed = 400.0
speed = 1000.0
type = "drill"

[[tool]]
num = 1
dia = 2.0
feed = 400.0
speed = 1000.0
type = "drill"`,
			code: errors.ErrCodeDuplicateTool,
		},
		{
			name: "dangling mill ref",
			doc:  "[prefs]\nmill = 7",
			code: errors.ErrCodeBadToolRef,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.doc)); !errors.Is(err, tt.code) {
				t.Errorf("Parse() error = %v, want %v", err, tt.code)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tools.toml")
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		t.Fatal(err)
	}

	table, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if n := len(table.AllTools()); n != 3 {
		t.Errorf("len(AllTools()) = %d, want 3", n)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) error = %v, want FILE_NOT_FOUND", err)
	}
}
