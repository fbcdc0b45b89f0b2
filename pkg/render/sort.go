package render

import (
	"sort"
	"strings"

	"github.com/panelcam/panelcam/pkg/board"
	"github.com/panelcam/panelcam/pkg/errors"
)

// featureKeys maps a sort key name to an accessor. Numeric fields that
// do not apply to a feature's kind read as zero, so mixed lists still
// order deterministically.
var featureKeys = map[string]func(board.Feature) any{
	"ref":    func(f board.Feature) any { return f.Ref },
	"source": func(f board.Feature) any { return f.Source },
	"kind":   func(f board.Feature) any { return string(f.Kind) },
	"x":      func(f board.Feature) any { return f.X },
	"y":      func(f board.Feature) any { return f.Y },
	"dia":    func(f board.Feature) any { return f.Diameter },
	"x1":     func(f board.Feature) any { return f.X1 },
	"y1":     func(f board.Feature) any { return f.Y1 },
	"x2":     func(f board.Feature) any { return f.X2 },
	"y2":     func(f board.Feature) any { return f.Y2 },
}

// SortFeatures stably sorts features in place by a comma-separated key
// list, e.g. "dia,x,y". An unknown key is an error.
func SortFeatures(features []board.Feature, keys string) error {
	if keys == "" {
		return nil
	}
	kk := strings.Split(keys, ",")
	accessors := make([]func(board.Feature) any, 0, len(kk))
	for _, key := range kk {
		acc, ok := featureKeys[key]
		if !ok {
			return errors.New(errors.ErrCodeInvalidInput, "unknown sort key: %s", key)
		}
		accessors = append(accessors, acc)
	}
	sort.SliceStable(features, func(i, j int) bool {
		for _, acc := range accessors {
			a, b := acc(features[i]), acc(features[j])
			switch av := a.(type) {
			case string:
				bv := b.(string)
				if av != bv {
					return av < bv
				}
			case float64:
				bv := b.(float64)
				if av != bv {
					return av < bv
				}
			}
		}
		return false
	})
	return nil
}
