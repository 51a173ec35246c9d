package pages

import (
	"github.com/gosimple/slug"
	"github.com/mark3labs/stepform/internal/multistep"
)

// Sequence returns the demo steps keyed by index.
func Sequence() multistep.Sequence {
	return multistep.Sequence{
		Form1[int](),
		Form2[int](),
		NewSummary[int](),
	}
}

// DefaultSeed pre-fills Form2 in an index-keyed wizard.
func DefaultSeed() map[int]multistep.Values {
	return map[int]multistep.Values{
		1: {"form-2-input": "value"},
	}
}

// Named returns the demo steps keyed by the slug of their titles, and the
// keys in the order the steps are walked.
func Named() (multistep.Named, []string) {
	steps := []interface {
		multistep.Step
		multistep.Titled
	}{
		Form1[string](),
		Form2[string](),
		NewSummary[string](),
	}

	named := make(multistep.Named, len(steps))
	order := make([]string, 0, len(steps))
	for _, step := range steps {
		k := slug.Make(step.Title())
		named[k] = step
		order = append(order, k)
	}
	return named, order
}

// DefaultNamedSeed pre-fills Form2 in a name-keyed wizard.
func DefaultNamedSeed() map[string]multistep.Values {
	return map[string]multistep.Values{
		slug.Make("Form2"): {"form-2-input": "value"},
	}
}

// Walk returns next and previous functions that step through order.
// Moving past either end yields "", which no step is registered under.
func Walk(order []string) (next func(string, multistep.Values) string, previous func(string) string) {
	at := func(current string, delta int) string {
		for i, k := range order {
			if k == current {
				if j := i + delta; j >= 0 && j < len(order) {
					return order[j]
				}
				return ""
			}
		}
		return ""
	}

	next = func(current string, _ multistep.Values) string { return at(current, 1) }
	previous = func(current string) string { return at(current, -1) }
	return next, previous
}
