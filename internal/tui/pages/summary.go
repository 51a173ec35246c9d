package pages

import (
	"context"
	"encoding/json"
	"maps"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/glamour/v2"
	"github.com/mark3labs/stepform/internal/logger"
	"github.com/mark3labs/stepform/internal/multistep"
	"github.com/mark3labs/stepform/internal/tui/fields"
	"github.com/mark3labs/stepform/internal/tui/theme"
	"github.com/mark3labs/stepform/internal/tui/wizard"
)

// Summary shows every step's values merged into one JSON object.
type Summary[K multistep.Key] struct {
	doc      string
	rendered string
	width    int
}

// NewSummary creates the summary step.
func NewSummary[K multistep.Key]() *Summary[K] {
	return &Summary[K]{width: 60}
}

func (p *Summary[K]) Title() string { return "Summary" }

func (p *Summary[K]) Hints() []string {
	return hints(keys.Finish, keys.Previous)
}

// JSON returns the merged values as rendered on the last mount.
func (p *Summary[K]) JSON() string {
	return p.doc
}

func (p *Summary[K]) Init(ctx context.Context) tea.Cmd {
	h := multistep.Use[K](ctx)

	data, err := json.MarshalIndent(Merge(h.Keys, h.AllValues), "", "  ")
	if err != nil {
		logger.Warn("summary: failed to encode values: %v", err)
		data = []byte("{}")
	}
	p.doc = string(data)
	p.rendered = renderJSON(p.doc, p.width)
	return nil
}

func (p *Summary[K]) Update(ctx context.Context, msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyPressMsg); ok {
		switch {
		case key.Matches(msg, keys.Finish):
			return wizard.Finish
		case key.Matches(msg, keys.Previous):
			multistep.Use[K](ctx).Previous()
		}
	}
	return nil
}

func (p *Summary[K]) View(context.Context) string {
	buttons := fields.NewButtonBar(fields.BackNext(true, "Finish")...)
	return strings.Join([]string{
		theme.Current().S().Label.Render("All values:"),
		p.rendered,
		"",
		buttons.Render(),
	}, "\n")
}

// Merge folds the values of the steps in order into one map, so steps
// later in order win on conflicting names. Steps not in order are skipped.
func Merge[K multistep.Key](order []K, all map[K]multistep.Values) multistep.Values {
	merged := multistep.Values{}
	for _, k := range order {
		maps.Copy(merged, all[k])
	}
	return merged
}

// renderJSON renders a JSON document as a highlighted code block.
// Falls back to the raw document if rendering fails.
func renderJSON(doc string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return doc
	}

	rendered, err := r.Render("```json\n" + doc + "\n```")
	if err != nil {
		return doc
	}

	return strings.Trim(rendered, "\n")
}
