package fields

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/stepform/internal/tui/theme"
)

// Text is a labelled single-line input with an optional error line.
type Text struct {
	Name  string // Field name the value is stored under
	Label string

	input textinput.Model
	err   string
}

// NewText creates a text field for name, labelled label.
func NewText(name, label string) *Text {
	t := theme.Current()

	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = "Enter " + strings.ToLower(label) + "..."
	input.SetStyles(textinput.Styles{
		Focused: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgBase)),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgSubtle)),
			Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.Secondary)),
		},
		Blurred: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgSubtle)),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgSubtle)),
			Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
		},
		Cursor: textinput.CursorStyle{
			Color: lipgloss.Color(t.Primary),
			Shape: tea.CursorBar,
			Blink: true,
		},
	})
	input.SetWidth(50)

	return &Text{
		Name:  name,
		Label: label,
		input: input,
	}
}

// Value returns the current input text.
func (f *Text) Value() string {
	return f.input.Value()
}

// SetValue replaces the input text and clears any error.
func (f *Text) SetValue(v string) {
	f.input.SetValue(v)
	f.err = ""
}

// SetError shows err below the input. A nil err clears it.
func (f *Text) SetError(err error) {
	if err == nil {
		f.err = ""
		return
	}
	f.err = err.Error()
}

// Error returns the error text currently shown.
func (f *Text) Error() string {
	return f.err
}

// SetWidth sets the input width.
func (f *Text) SetWidth(width int) {
	f.input.SetWidth(width)
}

// Focus focuses the input.
func (f *Text) Focus() tea.Cmd {
	return f.input.Focus()
}

// Blur removes focus from the input.
func (f *Text) Blur() {
	f.input.Blur()
}

// Focused reports whether the input has focus.
func (f *Text) Focused() bool {
	return f.input.Focused()
}

// Update forwards msg to the input. Editing clears a shown error.
func (f *Text) Update(msg tea.Msg) tea.Cmd {
	before := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if f.input.Value() != before {
		f.err = ""
	}
	return cmd
}

// View renders the label, the input and the error line if any.
func (f *Text) View() string {
	s := theme.Current().S()

	var b strings.Builder
	b.WriteString(s.Label.Render(f.Label + ":"))
	b.WriteString("\n")
	b.WriteString(s.Input.Render(f.input.View()))
	if f.err != "" {
		b.WriteString("\n")
		b.WriteString(s.Error.Render("✗ " + f.err))
	}
	return b.String()
}
