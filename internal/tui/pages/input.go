package pages

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/mark3labs/stepform/internal/multistep"
	"github.com/mark3labs/stepform/internal/tui/fields"
)

// Input is a step with a single required text field.
type Input[K multistep.Key] struct {
	title    string
	field    *fields.Text
	defaults multistep.Values
	previous bool // Whether esc goes to the previous step
}

// NewInput creates an input step titled title whose field is stored under
// name. The field starts empty unless the step already has a value.
func NewInput[K multistep.Key](title, name, label string, previous bool) *Input[K] {
	return &Input[K]{
		title:    title,
		field:    fields.NewText(name, label),
		defaults: multistep.Values{name: ""},
		previous: previous,
	}
}

// Form1 is the first demo step.
func Form1[K multistep.Key]() *Input[K] {
	return NewInput[K]("Form1", "form-1-input", "Field 1", false)
}

// Form2 is the second demo step. It can go back to Form1.
func Form2[K multistep.Key]() *Input[K] {
	return NewInput[K]("Form2", "form-2-input", "Field 2", true)
}

func (p *Input[K]) Title() string { return p.title }

func (p *Input[K]) Hints() []string {
	if p.previous {
		return hints(keys.Submit, keys.Previous)
	}
	return hints(keys.Submit)
}

// Init loads the recorded value, falling back to the default, and focuses
// the field.
func (p *Input[K]) Init(ctx context.Context) tea.Cmd {
	h := multistep.Use[K](ctx)

	values := p.initialValues(h.Values)
	p.field.SetValue(stringValue(values[p.field.Name]))
	return p.field.Focus()
}

func (p *Input[K]) Update(ctx context.Context, msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyPressMsg); ok {
		switch {
		case key.Matches(msg, keys.Submit):
			p.submit(ctx)
			return nil
		case key.Matches(msg, keys.Previous):
			if p.previous {
				multistep.Use[K](ctx).Previous()
			}
			return nil
		}
	}
	return p.field.Update(msg)
}

func (p *Input[K]) View(context.Context) string {
	buttons := fields.NewButtonBar(fields.BackNext(p.previous, "Next →")...)
	return strings.Join([]string{
		p.field.View(),
		"",
		buttons.Render(),
	}, "\n")
}

// submit validates the field and advances. Values the step recorded
// earlier under other names are submitted along with it.
func (p *Input[K]) submit(ctx context.Context) {
	h := multistep.Use[K](ctx)

	values := p.initialValues(h.Values)
	values[p.field.Name] = p.field.Value()

	if err := p.validate(values); err != nil {
		p.field.SetError(err)
		return
	}
	p.field.SetError(nil)
	h.Next(values)
}

func (p *Input[K]) validate(values multistep.Values) error {
	err := validation.Map(
		validation.Key(p.field.Name, validation.Required),
	).AllowExtraKeys().Validate(map[string]any(values))

	var errs validation.Errors
	if errors.As(err, &errs) {
		if fieldErr, ok := errs[p.field.Name]; ok {
			return fieldErr
		}
	}
	return err
}

// initialValues lays recorded over the defaults.
func (p *Input[K]) initialValues(recorded multistep.Values) multistep.Values {
	values := p.defaults.Clone()
	maps.Copy(values, recorded)
	return values
}

func stringValue(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
