package multistep

import (
	"context"
	"fmt"
)

// Handle is what a step sees of its Form.
type Handle[K Key] struct {
	Step      K            // Current step key
	Keys      []K          // Declared keys in walk order
	Values    Values       // Values of the current step
	AllValues map[K]Values // Values of every step

	form *Form[K]
}

// Next records values for the current step and advances.
func (h Handle[K]) Next(values Values) {
	h.form.Next(values)
}

// Previous moves back without touching values.
func (h Handle[K]) Previous() {
	h.form.Previous()
}

// Use returns the Handle of the Form that produced ctx. It panics with
// *MisuseError if ctx does not come from a Form keyed by K.
func Use[K Key](ctx context.Context) Handle[K] {
	v := ctx.Value(formContextKey{})
	if v == nil {
		panic(&MisuseError{})
	}
	f, ok := v.(*Form[K])
	if !ok {
		var zero K
		panic(&MisuseError{Reason: fmt.Sprintf("form is not keyed by %T", zero)})
	}

	step := f.Step()
	return Handle[K]{
		Step:      step,
		Keys:      f.Keys(),
		Values:    f.Values(step),
		AllValues: f.AllValues(),
		form:      f,
	}
}
