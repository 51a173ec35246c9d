package multistep

import "github.com/mark3labs/stepform/internal/navigation"

// Position tracks which step is current.
// After Set(k), Current returns k.
type Position[K Key] interface {
	Current() K
	Set(step K)
}

// PositionFunc creates a Position seeded with the form's initial key.
type PositionFunc[K Key] func(initial K) Position[K]

// MemoryPosition keeps the current step in a field. Nothing outside the form
// can observe it.
func MemoryPosition[K Key](initial K) Position[K] {
	return &memoryPosition[K]{step: initial}
}

type memoryPosition[K Key] struct {
	step K
}

func (p *memoryPosition[K]) Current() K { return p.step }
func (p *memoryPosition[K]) Set(step K) { p.step = step }

// StepState is the state a history-backed position attaches to navigation
// entries.
type StepState struct {
	Step any
}

// HistoryOption configures HistoryPosition.
type HistoryOption func(*historyConfig)

type historyConfig struct {
	replace bool
}

// HistoryReplace makes step changes replace the current navigation entry
// instead of pushing a new one.
func HistoryReplace() HistoryOption {
	return func(c *historyConfig) { c.replace = true }
}

// HistoryPosition stores the current step in the state of nav's current
// entry. The path is never changed. Entries without a StepState of the
// right key type resolve to the initial key.
func HistoryPosition[K Key](nav navigation.Navigator, opts ...HistoryOption) PositionFunc[K] {
	var cfg historyConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return func(initial K) Position[K] {
		return &historyPosition[K]{
			nav:     nav,
			initial: initial,
			replace: cfg.replace,
		}
	}
}

type historyPosition[K Key] struct {
	nav     navigation.Navigator
	initial K
	replace bool
}

func (p *historyPosition[K]) Current() K {
	if state, ok := p.nav.Location().State.(StepState); ok {
		if step, ok := state.Step.(K); ok {
			return step
		}
	}
	return p.initial
}

func (p *historyPosition[K]) Set(step K) {
	p.nav.Navigate(p.nav.Location().Path, navigation.NavigateOptions{
		Replace: p.replace,
		State:   StepState{Step: step},
	})
}
