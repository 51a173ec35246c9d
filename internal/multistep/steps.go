package multistep

import (
	"context"
	"maps"
	"slices"

	tea "charm.land/bubbletea/v2"
)

// Key is the type of a step identifier: an index or a name.
type Key interface {
	int | string
}

// Values holds the fields one step submitted.
// Values are strings, numbers or booleans.
type Values map[string]any

// Clone returns a shallow copy. A nil receiver yields an empty map.
func (v Values) Clone() Values {
	if v == nil {
		return Values{}
	}
	return maps.Clone(v)
}

// Step is a view rendered by a Form. The context passed to every method
// carries the Form; read it with Use.
type Step interface {
	Init(ctx context.Context) tea.Cmd
	Update(ctx context.Context, msg tea.Msg) tea.Cmd
	View(ctx context.Context) string
}

// Titled is implemented by steps that have a display title.
type Titled interface {
	Title() string
}

// Steps is the collection a Form renders from.
type Steps[K Key] interface {
	// Keys returns every declared key in a stable order.
	Keys() []K
	// Lookup returns the step bound to key.
	Lookup(key K) (Step, bool)
}

// Sequence is an ordered collection keyed by zero-based index.
type Sequence []Step

func (s Sequence) Keys() []int {
	keys := make([]int, len(s))
	for i := range s {
		keys[i] = i
	}
	return keys
}

func (s Sequence) Lookup(key int) (Step, bool) {
	if key < 0 || key >= len(s) || s[key] == nil {
		return nil, false
	}
	return s[key], true
}

// Named is a collection keyed by name. Keys are reported in sorted order.
type Named map[string]Step

func (n Named) Keys() []string {
	return slices.Sorted(maps.Keys(n))
}

func (n Named) Lookup(key string) (Step, bool) {
	step, ok := n[key]
	if !ok || step == nil {
		return nil, false
	}
	return step, true
}

// Static returns a display-only step.
func Static(text string) Step {
	return staticStep(text)
}

type staticStep string

func (s staticStep) Init(context.Context) tea.Cmd            { return nil }
func (s staticStep) Update(context.Context, tea.Msg) tea.Cmd { return nil }
func (s staticStep) View(context.Context) string             { return string(s) }
