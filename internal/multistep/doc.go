// Package multistep implements a multi-step form controller for Bubble Tea.
//
// A Form renders one Step at a time, remembers the values each step submits,
// and moves between steps through an advancement policy. Which step is
// current is tracked by a pluggable Position: either plain memory or an
// entry in a navigation history, so back/forward navigation restores it.
//
// # Keys
//
// A Form is keyed either by index (Form[int] over a Sequence) or by name
// (Form[string] over a Named collection). Index keys get +1/-1 advancement
// by default; named keys require both WithOnNext and WithOnPrevious.
//
//	f, err := multistep.New(multistep.Sequence{form1, form2, summary}, 0,
//	    multistep.WithInitialValues(map[int]multistep.Values{
//	        1: {"email": "me@example.com"},
//	    }),
//	)
//
// # Steps
//
// Steps receive a context carrying their Form. Use returns the current step,
// its values, all values, and the Next/Previous transitions:
//
//	func (s *Form1) Update(ctx context.Context, msg tea.Msg) tea.Cmd {
//	    form := multistep.Use[int](ctx)
//	    if key, ok := msg.(tea.KeyPressMsg); ok && key.String() == "enter" {
//	        form.Next(multistep.Values{"name": s.input.Value()})
//	    }
//	    return nil
//	}
//
// Calling Use with any other context panics. So does rendering a Form whose
// current key has no step; both are programming errors.
package multistep
