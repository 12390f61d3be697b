package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// formField identifies which input currently has focus
type formField int

const (
	fieldTitle formField = iota
	fieldContent
)

// EntryForm is a modal dialog for creating or editing an entry
type EntryForm struct {
	ModalBase // Embedded modal base for common functionality

	// Entry being edited (0 for a new entry)
	entryID int

	title   textinput.Model
	content textarea.Model
	focused formField

	// State
	err error
}

// NewEntryForm creates a new entry form
func NewEntryForm() *EntryForm {
	ti := textinput.New()
	ti.Placeholder = "Title..."
	ti.CharLimit = 256
	ti.Width = DefaultInputWidth

	ta := textarea.New()
	ta.Placeholder = "Write something..."
	ta.SetWidth(DefaultInputWidth + 2)
	ta.SetHeight(8)
	ta.ShowLineNumbers = false

	return &EntryForm{
		title:   ti,
		content: ta,
	}
}

// SetSize sets the dialog dimensions for centering and sizes the content area
func (m *EntryForm) SetSize(width, height int) {
	m.ModalBase.SetSize(width, height)

	contentHeight := height - DialogChromeAllowance - 6 // title input, labels, footer
	if contentHeight > 12 {
		contentHeight = 12
	}
	if contentHeight < 3 {
		contentHeight = 3
	}
	m.content.SetHeight(contentHeight)
}

// ShowCreate shows the form empty for a new entry
func (m *EntryForm) ShowCreate() {
	m.entryID = 0
	m.title.SetValue("")
	m.content.SetValue("")
	m.open()
}

// ShowEdit shows the form seeded with an existing entry
func (m *EntryForm) ShowEdit(entryID int, title, content string) {
	m.entryID = entryID
	m.title.SetValue(title)
	m.content.SetValue(content)
	m.open()
}

func (m *EntryForm) open() {
	m.ModalBase.Show()
	m.err = nil
	m.focused = fieldTitle
	m.title.Focus()
	m.content.Blur()
}

// Hide hides the form
func (m *EntryForm) Hide() {
	m.ModalBase.Hide()
	m.title.Blur()
	m.content.Blur()
}

// SetError sets an error to display (e.g. validation failure)
func (m *EntryForm) SetError(err error) {
	m.err = err
}

// EntryID returns the ID of the entry being edited, or 0 for a new entry
func (m *EntryForm) EntryID() int {
	return m.entryID
}

// IsEdit returns true when the form edits an existing entry
func (m *EntryForm) IsEdit() bool {
	return m.entryID != 0
}

// TitleValue returns the entered title, trimmed
func (m *EntryForm) TitleValue() string {
	return strings.TrimSpace(m.title.Value())
}

// ContentValue returns the entered content, trimmed
func (m *EntryForm) ContentValue() string {
	return strings.TrimSpace(m.content.Value())
}

// cycleFocus moves focus between the title and content fields
func (m *EntryForm) cycleFocus() tea.Cmd {
	if m.focused == fieldTitle {
		m.focused = fieldContent
		m.title.Blur()
		return m.content.Focus()
	}
	m.focused = fieldTitle
	m.content.Blur()
	return m.title.Focus()
}

// Update handles key events and returns true if the form was submitted
func (m *EntryForm) Update(msg tea.KeyMsg) (submitted bool, cmd tea.Cmd) {
	if !m.Visible() {
		return false, nil
	}

	switch msg.String() {
	case "tab", "shift+tab":
		return false, m.cycleFocus()
	case "ctrl+s":
		return true, nil
	case "enter":
		// Enter in the title field jumps to the content field.
		// In the content area it inserts a newline as usual.
		if m.focused == fieldTitle {
			return false, m.cycleFocus()
		}
	}

	if key.Matches(msg, Keys.Escape) {
		m.Hide()
		return false, nil
	}

	if m.focused == fieldTitle {
		m.title, cmd = m.title.Update(msg)
	} else {
		m.content, cmd = m.content.Update(msg)
	}
	return false, cmd
}

// View renders the entry form
func (m *EntryForm) View() string {
	titleText := "New Entry"
	if m.IsEdit() {
		titleText = "Edit Entry"
	}
	title := DialogTitleStyle.Render(titleText)

	var content strings.Builder

	titleLabel := FieldBlurredStyle
	contentLabel := FieldBlurredStyle
	if m.focused == fieldTitle {
		titleLabel = FieldFocusedStyle
	} else {
		contentLabel = FieldFocusedStyle
	}

	content.WriteString(titleLabel.Render("Title"))
	content.WriteString("\n")
	content.WriteString(m.title.View())
	content.WriteString("\n\n")

	content.WriteString(contentLabel.Render("Content"))
	content.WriteString("\n")
	content.WriteString(m.content.View())

	// Error if any
	if m.err != nil {
		content.WriteString("\n\n")
		content.WriteString(ErrorStyle.Render(m.err.Error()))
	}

	// Footer hints
	footer := DimStyle.Render("\ntab switch field  ctrl+s save  esc cancel")

	dialog := DialogStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, content.String(), footer))
	return m.CenterDialog(dialog)
}
