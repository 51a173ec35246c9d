package fields

import (
	"strings"

	"github.com/mark3labs/stepform/internal/tui/theme"
)

// HintBar renders key-description pairs.
// Example: HintBar("enter", "next", "esc", "back") renders
// "enter next • esc back". An odd number of arguments renders nothing.
func HintBar(pairs ...string) string {
	if len(pairs) == 0 || len(pairs)%2 != 0 {
		return ""
	}

	s := theme.Current().S()
	var b strings.Builder
	for i := 0; i < len(pairs); i += 2 {
		if i > 0 {
			b.WriteString(" " + s.HintSeparator.Render("•") + " ")
		}
		b.WriteString(s.HintKey.Render(pairs[i]) + " " + s.HintDesc.Render(pairs[i+1]))
	}
	return b.String()
}
