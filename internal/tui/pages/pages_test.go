package pages

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/stepform/internal/multistep"
	"github.com/mark3labs/stepform/internal/tui/testfixtures"
	"github.com/mark3labs/stepform/internal/tui/wizard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDemoForm(t *testing.T, seed map[int]multistep.Values) (*multistep.Form[int], multistep.Sequence) {
	t.Helper()
	steps := Sequence()
	f, err := multistep.New(steps, 0,
		multistep.WithInitialValues(seed),
		multistep.WithPosition(multistep.MemoryPosition[int]),
	)
	require.NoError(t, err)
	f.Init()
	return f, steps
}

func press(f tea.Model, msgs ...tea.KeyPressMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = f.Update(msg)
	}
	return cmd
}

func view(t *testing.T, f *multistep.Form[int]) string {
	t.Helper()
	content, err := f.Render()
	require.NoError(t, err)
	return testfixtures.Plain(content)
}

func TestInput_RequiredFieldBlocksNext(t *testing.T) {
	f, _ := newDemoForm(t, nil)

	press(f, testfixtures.Key("enter"))

	require.Equal(t, 0, f.Step())
	assert.Contains(t, view(t, f), "✗ cannot be blank")
	assert.Equal(t, multistep.Values{}, f.Values(0), "Nothing is recorded when validation fails")
}

func TestInput_SubmitRecordsAndAdvances(t *testing.T) {
	f, _ := newDemoForm(t, DefaultSeed())

	press(f, testfixtures.Type("abc")...)
	press(f, testfixtures.Key("enter"))

	require.Equal(t, 1, f.Step())
	require.Equal(t, multistep.Values{"form-1-input": "abc"}, f.Values(0))

	out := view(t, f)
	assert.Contains(t, out, "Field 2:")
	assert.Contains(t, out, "value", "Form2 starts from the seeded value")
}

func TestInput_PreviousRestoresRecordedValue(t *testing.T) {
	f, _ := newDemoForm(t, nil)

	press(f, testfixtures.Type("abc")...)
	press(f, testfixtures.Key("enter"))
	require.Equal(t, 1, f.Step())

	press(f, testfixtures.Key("esc"))

	require.Equal(t, 0, f.Step())
	assert.Contains(t, view(t, f), "abc")
	assert.Equal(t, multistep.Values{}, f.Values(1), "Going back does not record the step")
}

func TestInput_FirstStepHasNoPrevious(t *testing.T) {
	f, _ := newDemoForm(t, nil)

	press(f, testfixtures.Key("esc"))

	require.Equal(t, 0, f.Step())
}

func TestInput_KeepsOtherRecordedFields(t *testing.T) {
	f, _ := newDemoForm(t, map[int]multistep.Values{
		0: {"form-1-input": "seeded", "extra": true},
	})

	press(f, testfixtures.Key("enter"))

	require.Equal(t, 1, f.Step())
	require.Equal(t, multistep.Values{"form-1-input": "seeded", "extra": true}, f.Values(0))
}

func TestInput_Hints(t *testing.T) {
	assert.Equal(t, []string{"enter", "next"}, Form1[int]().Hints())
	assert.Equal(t, []string{"enter", "next", "esc", "previous"}, Form2[int]().Hints())
	assert.Equal(t, "Form1", Form1[int]().Title())
}

func TestSummary_ShowsMergedValues(t *testing.T) {
	f, steps := newDemoForm(t, DefaultSeed())

	press(f, testfixtures.Type("abc")...)
	press(f, testfixtures.Key("enter"))
	press(f, testfixtures.Key("enter"))

	require.Equal(t, 2, f.Step())
	summary := steps[2].(*Summary[int])
	assert.Equal(t, "{\n  \"form-1-input\": \"abc\",\n  \"form-2-input\": \"value\"\n}", summary.JSON())
	assert.Contains(t, view(t, f), "All values:")
}

func TestSummary_Golden(t *testing.T) {
	f, _ := newDemoForm(t, DefaultSeed())

	press(f, testfixtures.Type("abc")...)
	press(f, testfixtures.Key("enter"))
	press(f, testfixtures.Key("enter"))
	require.Equal(t, 2, f.Step())

	content, err := f.Render()
	require.NoError(t, err)
	testfixtures.CompareGolden(t, testfixtures.GoldenPath("summary.golden"), testfixtures.Outline(content))
}

func TestSummary_PreviousAndFinish(t *testing.T) {
	f, _ := newDemoForm(t, DefaultSeed())

	press(f, testfixtures.Type("abc")...)
	press(f, testfixtures.Key("enter"))
	press(f, testfixtures.Key("enter"))
	require.Equal(t, 2, f.Step())

	cmd := press(f, testfixtures.Key("ctrl+s"))
	require.NotNil(t, cmd)
	assert.IsType(t, wizard.FinishMsg{}, cmd())
	require.Equal(t, 2, f.Step())

	press(f, testfixtures.Key("esc"))
	require.Equal(t, 1, f.Step())
}

func TestMerge(t *testing.T) {
	all := map[int]multistep.Values{
		2: {"a": "late"},
		0: {"a": "early", "b": 1},
		1: {},
	}

	assert.Equal(t, multistep.Values{"a": "late", "b": 1}, Merge([]int{0, 1, 2}, all))
	assert.Equal(t, multistep.Values{"a": "early", "b": 1}, Merge([]int{2, 1, 0}, all))
	assert.Equal(t, multistep.Values{"a": "late"}, Merge([]int{2}, all))
	assert.Equal(t, multistep.Values{}, Merge[string](nil, nil))
}

func TestMerge_FollowsWalkOrderInNamedMode(t *testing.T) {
	all := map[string]multistep.Values{
		"start":   {"name": "first"},
		"details": {"name": "second"},
	}

	assert.Equal(t, multistep.Values{"name": "second"}, Merge([]string{"start", "details"}, all))
}

func TestNamed(t *testing.T) {
	steps, order := Named()

	assert.Equal(t, []string{"form1", "form2", "summary"}, order)
	assert.Equal(t, []string{"form1", "form2", "summary"}, steps.Keys())
	assert.Contains(t, DefaultNamedSeed(), "form2")
}

func TestWalk(t *testing.T) {
	next, previous := Walk([]string{"a", "b", "c"})

	assert.Equal(t, "b", next("a", nil))
	assert.Equal(t, "", next("c", nil))
	assert.Equal(t, "b", previous("c"))
	assert.Equal(t, "", previous("a"))
	assert.Equal(t, "", next("zzz", nil))
}

func TestNamed_FullFlow(t *testing.T) {
	steps, order := Named()
	next, previous := Walk(order)

	f, err := multistep.New(steps, order[0],
		multistep.WithInitialValues(DefaultNamedSeed()),
		multistep.WithOnNext(next),
		multistep.WithOnPrevious(previous),
		multistep.WithOrder(order),
	)
	require.NoError(t, err)
	f.Init()

	press(f, testfixtures.Type("x")...)
	press(f, testfixtures.Key("enter"))
	require.Equal(t, "form2", f.Step())

	press(f, testfixtures.Key("enter"))
	require.Equal(t, "summary", f.Step())

	summary := steps["summary"].(*Summary[string])
	assert.Contains(t, summary.JSON(), `"form-1-input": "x"`)
	assert.Contains(t, summary.JSON(), `"form-2-input": "value"`)
}
