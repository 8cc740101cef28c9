package domain

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Classify is a total, deterministic function: any string input yields one
// of the seven categories, and repeated calls agree.
func TestClassifyProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	known := make(map[Category]bool, len(Categories))
	for _, category := range Categories {
		known[category] = true
	}

	properties := gopter.NewProperties(parameters)

	properties.Property("total and deterministic", prop.ForAll(
		func(path string) bool {
			first := Classify(path)
			second := Classify(path)
			return known[first] && first == second
		},
		gen.AnyString(),
	))

	properties.Property("record category matches Classify", prop.ForAll(
		func(path string, size int64) bool {
			record := NewFileRecord(path, size)
			return record.Category == Classify(path)
		},
		gen.AnyString(),
		gen.Int64(),
	))

	properties.TestingRun(t)
}
