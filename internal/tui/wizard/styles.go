package wizard

import (
	"github.com/mark3labs/stepform/internal/tui/fields"
)

// renderHints combines the current step's hints with the frame's own keys.
func (m *Model[K]) renderHints() string {
	var pairs []string
	if step, ok := m.form.Current(); ok {
		if h, ok := step.(Hinted); ok {
			pairs = append(pairs, h.Hints()...)
		}
	}
	if m.history != nil {
		pairs = append(pairs, "alt+←/→", "history")
	}
	quit := keys.Quit.Help()
	pairs = append(pairs, quit.Key, quit.Desc)

	return fields.HintBar(pairs...)
}
