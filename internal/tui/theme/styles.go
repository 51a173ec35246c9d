package theme

import "charm.land/lipgloss/v2"

// Styles contains the pre-built lipgloss styles shared by the TUI packages.
type Styles struct {
	HeaderTitle lipgloss.Style

	// Wizard modal
	ModalContainer lipgloss.Style
	ModalTitle     lipgloss.Style
	ModalProgress  lipgloss.Style

	// Form fields
	Label lipgloss.Style
	Input lipgloss.Style
	Error lipgloss.Style

	// Hint bar
	HintKey       lipgloss.Style
	HintDesc      lipgloss.Style
	HintSeparator lipgloss.Style

	// Buttons
	ButtonNormal   lipgloss.Style
	ButtonDisabled lipgloss.Style
	ButtonFocused  lipgloss.Style
}
