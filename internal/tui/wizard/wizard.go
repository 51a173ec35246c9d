package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/stepform/internal/logger"
	"github.com/mark3labs/stepform/internal/multistep"
	"github.com/mark3labs/stepform/internal/tui/theme"
)

// AppName is appended to every window title.
const AppName = "stepform"

// ErrCancelled is returned by Run when the user quits before finishing.
var ErrCancelled = errors.New("wizard cancelled by user")

// FinishMsg ends the wizard and hands the collected values back to Run.
type FinishMsg struct{}

// Finish is a tea.Cmd steps return to end the wizard.
func Finish() tea.Msg {
	return FinishMsg{}
}

// Hinted is implemented by steps that list their keys in the hint bar,
// as key-description pairs.
type Hinted interface {
	Hints() []string
}

// History is the navigation the frame walks with alt+left and alt+right.
// *navigation.History satisfies it.
type History interface {
	Back() bool
	Forward() bool
}

type keyMap struct {
	Quit    key.Binding
	Back    key.Binding
	Forward key.Binding
}

var keys = keyMap{
	Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	Back:    key.NewBinding(key.WithKeys("alt+left"), key.WithHelp("alt+←", "history back")),
	Forward: key.NewBinding(key.WithKeys("alt+right"), key.WithHelp("alt+→", "history forward")),
}

// Model is the Bubble Tea model framing a multistep.Form in a centered
// modal with a step heading and a hint bar.
type Model[K multistep.Key] struct {
	form    *multistep.Form[K]
	history History // nil when the form keeps its position in memory

	width     int
	height    int
	cancelled bool
	finished  bool
}

// New frames form. history may be nil, which disables history keys.
func New[K multistep.Key](form *multistep.Form[K], history History) *Model[K] {
	return &Model[K]{
		form:    form,
		history: history,
		width:   80,
		height:  24,
	}
}

// Run runs the wizard as a standalone program and returns every step's
// values once a step sends FinishMsg. Quitting early returns ErrCancelled.
// An unknown step key aborts the program and surfaces as
// tea.ErrProgramPanic.
func Run[K multistep.Key](ctx context.Context, form *multistep.Form[K], history History, opts ...tea.ProgramOption) (map[K]multistep.Values, error) {
	m := New(form, history)

	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(m, opts...)

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}

	wizModel, ok := finalModel.(*Model[K])
	if !ok {
		return nil, fmt.Errorf("unexpected model type %T", finalModel)
	}
	if wizModel.cancelled || !wizModel.finished {
		return nil, ErrCancelled
	}

	return form.AllValues(), nil
}

// Cancelled reports whether the user quit the wizard.
func (m *Model[K]) Cancelled() bool {
	return m.cancelled
}

// Finished reports whether a step finished the wizard.
func (m *Model[K]) Finished() bool {
	return m.finished
}

// Init mounts the initial step.
func (m *Model[K]) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles frame keys and forwards everything else to the form.
func (m *Model[K]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(msg, keys.Back):
			if m.history != nil && m.history.Back() {
				logger.Debug("wizard: history back to step %v", m.form.Step())
				return m, m.form.Sync()
			}
			return m, nil
		case key.Matches(msg, keys.Forward):
			if m.history != nil && m.history.Forward() {
				logger.Debug("wizard: history forward to step %v", m.form.Step())
				return m, m.form.Sync()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case FinishMsg:
		m.finished = true
		return m, tea.Quit
	}

	_, cmd := m.form.Update(msg)
	return m, cmd
}

// View renders the current step inside the modal. An unknown step key
// panics, which Bubble Tea reports as a program panic.
func (m *Model[K]) View() tea.View {
	stepContent, err := m.form.Render()
	if err != nil {
		panic(err)
	}

	var view tea.View
	view.AltScreen = true
	view.WindowTitle = m.windowTitle()

	content := m.renderModal(stepContent)

	canvas := uv.NewScreenBuffer(m.width, m.height)
	uv.NewStyledString(content).Draw(canvas, uv.Rectangle{
		Min: uv.Position{X: 0, Y: 0},
		Max: uv.Position{X: m.width, Y: m.height},
	})

	view.Content = lipgloss.NewLayer(canvas.Render())
	return view
}

// windowTitle is "<step title> | stepform", or just the app name for
// untitled steps.
func (m *Model[K]) windowTitle() string {
	if title := m.form.Title(); title != "" {
		return title + " | " + AppName
	}
	return AppName
}

// heading is the modal title: "Step 2 of 3: Form2".
func (m *Model[K]) heading() string {
	heading := fmt.Sprintf("Step %d of %d", m.form.Index()+1, len(m.form.Keys()))
	if title := m.form.Title(); title != "" {
		heading += ": " + title
	}
	return heading
}

// renderModal wraps the step content in a modal container with title.
func (m *Model[K]) renderModal(stepContent string) string {
	s := theme.Current().S()

	sections := []string{
		s.ModalTitle.Render(m.heading()),
		"",
		stepContent,
		"",
		m.renderHints(),
	}
	content := strings.Join(sections, "\n")

	modalWidth := m.width - 10
	if modalWidth < 60 {
		modalWidth = 60
	}
	if modalWidth > 100 {
		modalWidth = 100
	}

	modalContent := s.ModalContainer.Width(modalWidth).Render(content)

	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		modalContent,
	)
}
