package cli

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/panelcam/panelcam/pkg/errors"
	"github.com/panelcam/panelcam/pkg/geom"
)

func TestAdjustments(t *testing.T) {
	f := filterFlags{adjust: []string{"J1=0.5,-0.25", "POT2 = 1 , 2 "}}
	got, err := f.adjustments()
	if err != nil {
		t.Fatalf("adjustments() error = %v", err)
	}
	want := map[string]geom.Point{
		"J1":   {X: 0.5, Y: -0.25},
		"POT2": {X: 1, Y: 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("adjustments mismatch (-want +got):\n%s", diff)
	}
}

func TestAdjustmentsEmpty(t *testing.T) {
	var f filterFlags
	got, err := f.adjustments()
	if err != nil || got != nil {
		t.Errorf("adjustments() = %v, %v; want nil, nil", got, err)
	}
}

func TestAdjustmentsMalformed(t *testing.T) {
	for _, entry := range []string{"J1", "J1=1", "J1=a,b"} {
		f := filterFlags{adjust: []string{entry}}
		if _, err := f.adjustments(); !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("adjustments(%q) error = %v, want INVALID_INPUT", entry, err)
		}
	}
}
