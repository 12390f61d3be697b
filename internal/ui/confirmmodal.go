package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmModal is a reusable confirmation dialog with keybind actions
type ConfirmModal struct {
	ModalBase // Embedded modal base for common functionality

	// Dialog content
	title   string
	message string
	warning string // Optional warning text shown in red

	// Keybind labels
	confirmLabel string
	cancelLabel  string
	confirmKey   string // Key to press for confirm (default "y")
	cancelKey    string // Key to press for cancel (default "n")

	// Context data (passed through on confirm)
	contextID    int
	contextTitle string
}

// NewConfirmModal creates a new confirmation modal
func NewConfirmModal() *ConfirmModal {
	return &ConfirmModal{
		cancelLabel:  "Cancel",
		confirmLabel: "Confirm",
		confirmKey:   "y",
		cancelKey:    "n",
	}
}

// Show shows the confirmation modal with the given content
func (m *ConfirmModal) Show(title, message, warning string) {
	m.title = title
	m.message = message
	m.warning = warning
	m.ModalBase.Show()
}

// ShowWithContext shows the modal and stores the entry it concerns
func (m *ConfirmModal) ShowWithContext(title, message, warning string, entryID int, entryTitle string) {
	m.Show(title, message, warning)
	m.contextID = entryID
	m.contextTitle = entryTitle
}

// SetLabels customizes the action labels
func (m *ConfirmModal) SetLabels(cancel, confirm string) {
	m.cancelLabel = cancel
	m.confirmLabel = confirm
}

// SetKeys customizes the keybinds (default: y to confirm, n to cancel)
func (m *ConfirmModal) SetKeys(cancel, confirm string) {
	m.cancelKey = cancel
	m.confirmKey = confirm
}

// Hide hides the confirmation modal and clears context
func (m *ConfirmModal) Hide() {
	m.ModalBase.Hide()
	m.contextID = 0
	m.contextTitle = ""
}

// GetContextID returns the stored entry ID
func (m *ConfirmModal) GetContextID() int {
	return m.contextID
}

// GetContextTitle returns the stored entry title
func (m *ConfirmModal) GetContextTitle() string {
	return m.contextTitle
}

// Update handles key events and returns confirmation status and any tea command.
func (m *ConfirmModal) Update(msg tea.KeyMsg) (confirmed, cancelled bool, cmd tea.Cmd) {
	if !m.Visible() {
		return false, false, nil
	}

	switch {
	case msg.String() == m.confirmKey:
		m.ModalBase.Hide()
		return true, false, nil // Confirmed

	case msg.String() == m.cancelKey, key.Matches(msg, Keys.Escape):
		m.ModalBase.Hide()
		return false, true, nil // Cancelled
	}

	return false, false, nil
}

// View renders the confirmation modal
func (m *ConfirmModal) View() string {
	title := DialogTitleStyle.Render(m.title)

	// Build content
	content := ValueStyle.Render(m.message)

	// Add warning if present
	if m.warning != "" {
		content += "\n\n" + ErrorStyle.Render(m.warning)
	}

	// Footer hints showing keybinds
	footer := DimStyle.Render("\n" + m.confirmKey + " " + m.confirmLabel + "  " + m.cancelKey + "/" + "esc " + m.cancelLabel)

	return m.RenderDialog(title, content, footer)
}
