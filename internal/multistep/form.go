package multistep

import (
	"context"
	"slices"

	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/stepform/internal/logger"
	"github.com/mark3labs/stepform/internal/navigation"
)

// Option configures a Form.
type Option[K Key] func(*options[K])

type options[K Key] struct {
	initialValues map[K]Values
	policy        Policy[K]
	position      PositionFunc[K]
	order         []K
	ctx           context.Context
}

// WithInitialValues seeds the values of some or all steps.
// Entries for undeclared keys are ignored.
func WithInitialValues[K Key](values map[K]Values) Option[K] {
	return func(o *options[K]) { o.initialValues = values }
}

// WithOnNext overrides how the next step is computed.
func WithOnNext[K Key](fn func(current K, values Values) K) Option[K] {
	return func(o *options[K]) { o.policy.Next = fn }
}

// WithOnPrevious overrides how the previous step is computed.
func WithOnPrevious[K Key](fn func(current K) K) Option[K] {
	return func(o *options[K]) { o.policy.Previous = fn }
}

// WithPosition selects the position strategy. The default is a
// HistoryPosition over a fresh navigation.History.
func WithPosition[K Key](fn PositionFunc[K]) Option[K] {
	return func(o *options[K]) { o.position = fn }
}

// WithOrder sets the order Keys and Index report, normally the order the
// policy walks the steps. Keys missing from order follow it in collection
// order; unknown or repeated keys in order are dropped.
func WithOrder[K Key](order []K) Option[K] {
	return func(o *options[K]) { o.order = order }
}

// WithContext sets the parent of the context handed to steps.
func WithContext[K Key](ctx context.Context) Option[K] {
	return func(o *options[K]) { o.ctx = ctx }
}

type formContextKey struct{}

// Form is the multi-step form controller. It implements tea.Model and is not
// safe for concurrent use; Bubble Tea calls it from a single goroutine.
type Form[K Key] struct {
	steps    Steps[K]
	keys     []K
	policy   Policy[K]
	position Position[K]
	values   map[K]Values
	ctx      context.Context

	mounted   K    // Key of the step whose Init last ran
	isMounted bool // False until a step has been mounted
}

// New creates a Form over steps starting at initial.
// It returns ErrPolicyRequired for named keys without both WithOnNext and
// WithOnPrevious.
func New[K Key](steps Steps[K], initial K, opts ...Option[K]) (*Form[K], error) {
	o := options[K]{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}

	policy, err := o.policy.withDefaults()
	if err != nil {
		return nil, err
	}

	if o.position == nil {
		o.position = HistoryPosition[K](navigation.NewHistory("/"))
	}

	f := &Form[K]{
		steps:    steps,
		keys:     orderKeys(steps.Keys(), o.order),
		policy:   policy,
		position: o.position(initial),
	}
	f.values = makeInitialValues(f.keys, o.initialValues)
	f.ctx = context.WithValue(o.ctx, formContextKey{}, f)

	return f, nil
}

// MustNew is like New but panics on error.
func MustNew[K Key](steps Steps[K], initial K, opts ...Option[K]) *Form[K] {
	f, err := New(steps, initial, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// orderKeys arranges declared in the given order.
func orderKeys[K Key](declared, order []K) []K {
	if len(order) == 0 {
		return declared
	}
	keys := make([]K, 0, len(declared))
	for _, k := range order {
		if slices.Contains(declared, k) && !slices.Contains(keys, k) {
			keys = append(keys, k)
		}
	}
	for _, k := range declared {
		if !slices.Contains(keys, k) {
			keys = append(keys, k)
		}
	}
	return keys
}

// makeInitialValues builds one entry per declared key from the seed.
func makeInitialValues[K Key](keys []K, seed map[K]Values) map[K]Values {
	values := make(map[K]Values, len(keys))
	for _, key := range keys {
		values[key] = seed[key].Clone()
	}
	return values
}

// Step returns the current step key.
func (f *Form[K]) Step() K {
	return f.position.Current()
}

// Keys returns the declared step keys, in WithOrder order if one was given.
func (f *Form[K]) Keys() []K {
	return slices.Clone(f.keys)
}

// Index returns the position of the current key among Keys, or -1.
func (f *Form[K]) Index() int {
	return slices.Index(f.keys, f.Step())
}

// Values returns a copy of the values recorded for key.
// Undeclared keys yield nil.
func (f *Form[K]) Values(key K) Values {
	v, ok := f.values[key]
	if !ok {
		return nil
	}
	return v.Clone()
}

// AllValues returns a copy of every step's values.
func (f *Form[K]) AllValues() map[K]Values {
	all := make(map[K]Values, len(f.values))
	for key, v := range f.values {
		all[key] = v.Clone()
	}
	return all
}

// Next records values for the current step and moves to the step chosen by
// the policy. The values are committed even if the new key turns out to be
// unknown.
func (f *Form[K]) Next(values Values) {
	current := f.Step()
	f.values[current] = values.Clone()
	next := f.policy.Next(current, values)
	logger.Debug("multistep: next %v -> %v", current, next)
	f.position.Set(next)
}

// Previous moves to the step chosen by the policy. Values are untouched.
func (f *Form[K]) Previous() {
	current := f.Step()
	prev := f.policy.Previous(current)
	logger.Debug("multistep: previous %v -> %v", current, prev)
	f.position.Set(prev)
}

// Current returns the step bound to the current key.
func (f *Form[K]) Current() (Step, bool) {
	return f.steps.Lookup(f.Step())
}

// Title returns the current step's title, or "" if it has none.
func (f *Form[K]) Title() string {
	step, ok := f.Current()
	if !ok {
		return ""
	}
	if t, ok := step.(Titled); ok {
		return t.Title()
	}
	return ""
}

// Context returns the context handed to steps.
func (f *Form[K]) Context() context.Context {
	return f.ctx
}

// Init mounts the initial step.
func (f *Form[K]) Init() tea.Cmd {
	return f.mount()
}

// Update forwards msg to the current step. If the step changed while
// handling it, the new step is mounted.
func (f *Form[K]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if step, ok := f.steps.Lookup(f.Step()); ok {
		cmd = step.Update(f.ctx, msg)
	}
	return f, tea.Batch(cmd, f.mount())
}

// Sync mounts the current step if it changed outside Update, for example
// after the navigation history moved back or forward.
func (f *Form[K]) Sync() tea.Cmd {
	return f.mount()
}

// mount runs Init on the current step once per arrival.
func (f *Form[K]) mount() tea.Cmd {
	current := f.Step()
	if f.isMounted && f.mounted == current {
		return nil
	}
	step, ok := f.steps.Lookup(current)
	if !ok {
		return nil
	}
	f.mounted = current
	f.isMounted = true
	return step.Init(f.ctx)
}

// Render renders the current step. It fails with *UnknownStepError when the
// current key has no step.
func (f *Form[K]) Render() (string, error) {
	current := f.Step()
	step, ok := f.steps.Lookup(current)
	if !ok {
		return "", &UnknownStepError{Key: current}
	}
	return step.View(f.ctx), nil
}

// View renders the current step. An unknown step key is a programming error
// and panics; Bubble Tea reports it as a program panic.
func (f *Form[K]) View() tea.View {
	content, err := f.Render()
	if err != nil {
		panic(err)
	}
	return tea.NewView(content)
}
