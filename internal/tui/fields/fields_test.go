package fields

import (
	"errors"
	"testing"

	"github.com/mark3labs/stepform/internal/tui/testfixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText_TypingUpdatesValue(t *testing.T) {
	f := NewText("name", "Name")
	f.Focus()

	for _, msg := range testfixtures.Type("abc") {
		f.Update(msg)
	}

	require.Equal(t, "abc", f.Value())
	require.True(t, f.Focused())
}

func TestText_IgnoresInputWhenBlurred(t *testing.T) {
	f := NewText("name", "Name")
	f.Blur()

	f.Update(testfixtures.Key("x"))

	require.Empty(t, f.Value())
}

func TestText_ErrorShownAndClearedOnEdit(t *testing.T) {
	f := NewText("name", "Name")
	f.Focus()

	f.SetError(errors.New("cannot be blank"))
	require.Equal(t, "cannot be blank", f.Error())
	assert.Contains(t, testfixtures.Plain(f.View()), "✗ cannot be blank")

	f.Update(testfixtures.Key("a"))
	require.Empty(t, f.Error())
	assert.NotContains(t, testfixtures.Plain(f.View()), "✗")
}

func TestText_SetValueClearsError(t *testing.T) {
	f := NewText("name", "Name")
	f.SetError(errors.New("bad"))

	f.SetValue("hello")

	require.Equal(t, "hello", f.Value())
	require.Empty(t, f.Error())

	f.SetError(errors.New("bad"))
	f.SetError(nil)
	require.Empty(t, f.Error())
}

func TestText_ViewShowsLabel(t *testing.T) {
	f := NewText("form-1-input", "Form 1 input")
	f.SetValue("value")

	view := testfixtures.Plain(f.View())
	assert.Contains(t, view, "Form 1 input:")
	assert.Contains(t, view, "value")
}

func TestHintBar(t *testing.T) {
	got := testfixtures.Plain(HintBar("enter", "next", "esc", "back"))
	assert.Equal(t, "enter next • esc back", got)

	assert.Empty(t, HintBar())
	assert.Empty(t, HintBar("enter"))
}

func TestButtonBar(t *testing.T) {
	bar := NewButtonBar(BackNext(false, "Next →")...)
	bar.SetWidth(40)

	view := testfixtures.Plain(bar.Render())
	assert.Contains(t, view, "← Back")
	assert.Contains(t, view, "Next →")

	assert.Empty(t, NewButtonBar().Render())
}

func TestBackNext(t *testing.T) {
	buttons := BackNext(true, "Finish")
	require.Len(t, buttons, 2)
	assert.Equal(t, ButtonNormal, buttons[0].State)
	assert.Equal(t, "Finish", buttons[1].Label)
	assert.Equal(t, ButtonFocused, buttons[1].State)

	buttons = BackNext(false, "Next")
	assert.Equal(t, ButtonDisabled, buttons[0].State)
}
