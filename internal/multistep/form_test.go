package multistep

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/stepform/internal/navigation"
	"github.com/stretchr/testify/require"
)

// testStep is a minimal step that renders text and reacts to key presses.
type testStep struct {
	text  func(ctx context.Context) string
	onKey func(ctx context.Context, key string)
	inits int
}

func (s *testStep) Init(context.Context) tea.Cmd {
	s.inits++
	return nil
}

func (s *testStep) Update(ctx context.Context, msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyPressMsg); ok && s.onKey != nil {
		s.onKey(ctx, key.String())
	}
	return nil
}

func (s *testStep) View(ctx context.Context) string {
	return s.text(ctx)
}

func textStep(text string) *testStep {
	return &testStep{text: func(context.Context) string { return text }}
}

// nextButton calls Next(values) on enter.
func nextButton[K Key](label string, values Values) *testStep {
	s := textStep(label)
	s.onKey = func(ctx context.Context, key string) {
		if key == "enter" {
			Use[K](ctx).Next(values)
		}
	}
	return s
}

// previousButton calls Previous on esc.
func previousButton[K Key](label string) *testStep {
	s := textStep(label)
	s.onKey = func(ctx context.Context, key string) {
		if key == "esc" {
			Use[K](ctx).Previous()
		}
	}
	return s
}

var (
	enterKey = tea.KeyPressMsg{Code: tea.KeyEnter}
	escKey   = tea.KeyPressMsg{Code: tea.KeyEscape}
)

func positions[K Key]() map[string]PositionFunc[K] {
	return map[string]PositionFunc[K]{
		"memory":  MemoryPosition[K],
		"history": HistoryPosition[K](navigation.NewHistory("/")),
	}
}

func render[K Key](t *testing.T, f *Form[K]) string {
	t.Helper()
	out, err := f.Render()
	require.NoError(t, err)
	return out
}

func press[K Key](f *Form[K], msg tea.Msg) {
	_, _ = f.Update(msg)
}

func namedPolicy(next, previous string) []Option[string] {
	return []Option[string]{
		WithOnNext(func(string, Values) string { return next }),
		WithOnPrevious(func(string) string { return previous }),
	}
}

func TestForm_DisplaysInitialStep(t *testing.T) {
	t.Parallel()

	t.Run("index", func(t *testing.T) {
		t.Parallel()
		f, err := New(Sequence{Static("text")}, 0)
		require.NoError(t, err)
		require.Equal(t, "text", render(t, f))
	})

	t.Run("named", func(t *testing.T) {
		t.Parallel()
		f, err := New(Named{"first": Static("text")}, "first", namedPolicy("first", "first")...)
		require.NoError(t, err)
		require.Equal(t, "text", render(t, f))
	})

	t.Run("index not zero", func(t *testing.T) {
		t.Parallel()
		f := MustNew(Sequence{Static("a"), Static("b"), Static("c")}, 2)
		require.Equal(t, "c", render(t, f))
		require.Equal(t, 2, f.Index())
	})
}

func TestForm_ProvidesInitialValues(t *testing.T) {
	t.Parallel()

	valueView := func(ctx context.Context) string {
		v, _ := Use[int](ctx).Values["aKey"].(string)
		return v
	}

	t.Run("index", func(t *testing.T) {
		t.Parallel()
		f := MustNew(Sequence{&testStep{text: valueView}, Static("")}, 0,
			WithInitialValues(map[int]Values{0: {"aKey": "abc"}, 1: {"aKey": "xyz"}}),
		)
		require.Equal(t, "abc", render(t, f))
		require.Equal(t, Values{"aKey": "xyz"}, f.Values(1))
	})

	t.Run("named with absent entries", func(t *testing.T) {
		t.Parallel()
		namedView := func(ctx context.Context) string {
			v, _ := Use[string](ctx).Values["aKey"].(string)
			return v
		}
		f := MustNew(Named{"actual": &testStep{text: namedView}, "other": Static("")}, "actual",
			append(namedPolicy("other", "actual"),
				WithInitialValues(map[string]Values{"actual": {"aKey": "abc"}}))...,
		)
		require.Equal(t, "abc", render(t, f))

		all := f.AllValues()
		require.Len(t, all, 2)
		require.NotNil(t, all["other"], "Unseeded steps must have an empty entry")
		require.Empty(t, all["other"])
	})

	t.Run("undeclared seed keys are ignored", func(t *testing.T) {
		t.Parallel()
		f := MustNew(Sequence{Static("")}, 0,
			WithInitialValues(map[int]Values{5: {"x": 1}}),
		)
		require.Equal(t, map[int]Values{0: {}}, f.AllValues())
	})
}

func TestForm_Next(t *testing.T) {
	t.Parallel()

	for name, pos := range positions[int]() {
		t.Run("index/"+name, func(t *testing.T) {
			t.Parallel()
			f := MustNew(Sequence{nextButton[int]("first", Values{"k": "v"}), Static("second")}, 0,
				WithPosition(pos),
			)
			require.Equal(t, "first", render(t, f))

			press(f, enterKey)

			require.Equal(t, "second", render(t, f))
			require.Equal(t, 1, f.Step())
			require.Equal(t, Values{"k": "v"}, f.Values(0))
		})
	}

	for name, pos := range positions[string]() {
		t.Run("named/"+name, func(t *testing.T) {
			t.Parallel()
			f := MustNew(Named{"first": nextButton[string]("first", Values{"k": "v"}), "second": Static("second")}, "first",
				append(namedPolicy("second", "first"), WithPosition(pos))...,
			)

			press(f, enterKey)

			require.Equal(t, "second", render(t, f))
			require.Equal(t, Values{"k": "v"}, f.Values("first"))
		})
	}
}

func TestForm_Previous(t *testing.T) {
	t.Parallel()

	for name, pos := range positions[int]() {
		t.Run("index/"+name, func(t *testing.T) {
			t.Parallel()
			f := MustNew(Sequence{Static("first"), previousButton[int]("second")}, 1,
				WithPosition(pos),
			)

			press(f, escKey)

			require.Equal(t, "first", render(t, f))
		})
	}

	for name, pos := range positions[string]() {
		t.Run("named/"+name, func(t *testing.T) {
			t.Parallel()
			f := MustNew(Named{"first": Static("first"), "second": previousButton[string]("second")}, "second",
				append(namedPolicy("second", "first"), WithPosition(pos))...,
			)

			press(f, escKey)

			require.Equal(t, "first", render(t, f))
		})
	}
}

func TestForm_SavesValuesAcrossNavigation(t *testing.T) {
	t.Parallel()

	for name, pos := range positions[int]() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			form := nextButton[int]("", Values{"key": "value"})
			form.text = func(ctx context.Context) string {
				v, _ := Use[int](ctx).Values["key"].(string)
				return "form:" + v
			}
			summary := previousButton[int]("")
			summary.text = func(ctx context.Context) string {
				v, _ := Use[int](ctx).AllValues[0]["key"].(string)
				return "summary:" + v
			}

			f := MustNew(Sequence{form, summary}, 0,
				WithOnNext(func(step int, _ Values) int { return step + 1 }),
				WithOnPrevious(func(step int) int { return step - 1 }),
				WithPosition(pos),
			)

			require.Equal(t, "form:", render(t, f))
			press(f, enterKey)
			require.Equal(t, "summary:value", render(t, f))
			press(f, escKey)
			require.Equal(t, "form:value", render(t, f))
			require.Equal(t, Values{"key": "value"}, f.Values(0))
		})
	}
}

func TestForm_NextReplacesValuesWholesale(t *testing.T) {
	t.Parallel()

	f := MustNew(Sequence{Static("a"), Static("b")}, 0,
		WithInitialValues(map[int]Values{0: {"old": true, "keep": 1}}),
		WithPosition(MemoryPosition[int]),
	)

	submitted := Values{"new": 2.5}
	f.Next(submitted)
	submitted["new"] = "mutated"

	require.Equal(t, Values{"new": 2.5}, f.Values(0), "Expected values replaced, not merged, and copied")
}

func TestForm_NextPassesPreUpdateKeyAndValues(t *testing.T) {
	t.Parallel()

	var gotStep int
	var gotValues Values
	f := MustNew(Sequence{Static("a"), Static("b"), Static("c")}, 1,
		WithOnNext(func(step int, values Values) int {
			gotStep, gotValues = step, values
			return 2
		}),
	)

	f.Next(Values{"x": "y"})

	require.Equal(t, 1, gotStep)
	require.Equal(t, Values{"x": "y"}, gotValues)
	require.Equal(t, 2, f.Step())
}

func TestForm_PreviousLeavesValues(t *testing.T) {
	t.Parallel()

	seed := map[int]Values{0: {"a": 1}, 1: {"b": 2}}
	f := MustNew(Sequence{Static("a"), Static("b")}, 1, WithInitialValues(seed))

	f.Previous()

	require.Equal(t, 0, f.Step())
	require.Equal(t, seed, f.AllValues())
}

func TestNew_NamedKeysRequirePolicy(t *testing.T) {
	t.Parallel()

	steps := Named{"first": Static("text")}

	tests := []struct {
		name string
		opts []Option[string]
	}{
		{name: "no policy"},
		{name: "next only", opts: []Option[string]{WithOnNext(func(string, Values) string { return "first" })}},
		{name: "previous only", opts: []Option[string]{WithOnPrevious(func(string) string { return "first" })}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f, err := New(steps, "first", tt.opts...)
			require.ErrorIs(t, err, ErrPolicyRequired)
			require.Nil(t, f)
		})
	}

	t.Run("MustNew panics", func(t *testing.T) {
		t.Parallel()
		require.PanicsWithError(t, ErrPolicyRequired.Error(), func() {
			MustNew(steps, "first")
		})
	})
}

func TestForm_UnknownStepIsFatal(t *testing.T) {
	t.Parallel()

	f := MustNew(Sequence{nextButton[int]("first", Values{"k": "v"})}, 0,
		WithOnNext(func(int, Values) int { return 99 }),
	)

	press(f, enterKey)

	_, err := f.Render()
	var unknown *UnknownStepError
	require.True(t, errors.As(err, &unknown), "Expected UnknownStepError, got %v", err)
	require.Equal(t, 99, unknown.Key)
	require.EqualError(t, err, "step 99 is not defined")

	require.PanicsWithError(t, "step 99 is not defined", func() { f.View() })
	require.Equal(t, Values{"k": "v"}, f.Values(0), "Values must be committed even when navigation fails")
}

func TestForm_UnknownInitialStep(t *testing.T) {
	t.Parallel()

	f := MustNew(Named{"a": Static("a")}, "missing", namedPolicy("a", "a")...)

	require.Nil(t, f.Init())
	require.PanicsWithError(t, "step missing is not defined", func() { f.View() })
}

func TestForm_MountsStepOncePerArrival(t *testing.T) {
	t.Parallel()

	first := nextButton[int]("first", nil)
	second := previousButton[int]("second")
	f := MustNew(Sequence{first, second}, 0)

	_ = f.Init()
	require.Equal(t, 1, first.inits)

	press(f, tea.KeyPressMsg{Code: 'x', Text: "x"})
	require.Equal(t, 1, first.inits, "Unrelated messages must not remount")

	press(f, enterKey)
	require.Equal(t, 1, second.inits)

	press(f, escKey)
	require.Equal(t, 2, first.inits, "Returning to a step mounts it again")
}

func TestForm_KeysAndTitle(t *testing.T) {
	t.Parallel()

	f := MustNew(Named{"b": Static("b"), "a": titled{"Alpha"}}, "a", namedPolicy("b", "a")...)

	require.Equal(t, []string{"a", "b"}, f.Keys())
	require.Equal(t, 0, f.Index())
	require.Equal(t, "Alpha", f.Title())

	f.Next(nil)
	require.Equal(t, "", f.Title())
	step, ok := f.Current()
	require.True(t, ok)
	require.Equal(t, "b", step.View(f.Context()))
	require.Equal(t, Values{}, f.Values("a"))
	require.Nil(t, f.Values("zzz"))
}

type titled struct{ title string }

func (s titled) Init(context.Context) tea.Cmd            { return nil }
func (s titled) Update(context.Context, tea.Msg) tea.Cmd { return nil }
func (s titled) View(context.Context) string             { return s.title }
func (s titled) Title() string                           { return s.title }

func TestForm_WithOrder(t *testing.T) {
	t.Parallel()

	steps := Named{"start": Static("start"), "details": Static("details"), "extra": Static("extra")}
	f := MustNew(steps, "start",
		append(namedPolicy("details", "start"),
			WithOrder([]string{"start", "details", "start", "unknown"}),
			WithPosition(MemoryPosition[string]),
		)...,
	)

	require.Equal(t, []string{"start", "details", "extra"}, f.Keys())
	require.Equal(t, 0, f.Index())

	f.Next(nil)
	require.Equal(t, 1, f.Index())
	require.Equal(t, []string{"start", "details", "extra"}, Use[string](f.Context()).Keys)
}
