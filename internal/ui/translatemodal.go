package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rfhold/scribe/internal/api"
)

// TranslatePhase is which face of the translate dialog is showing
type TranslatePhase int

const (
	TranslateFormPhase   TranslatePhase = iota // Language pickers
	TranslateResultPhase                       // Translation result
)

// TranslateAction is what the caller should do after a key event
type TranslateAction int

const (
	TranslateNone   TranslateAction = iota
	TranslateSubmit                 // Request a translation with Source/Target
	TranslateCancel                 // Dialog was closed
	TranslatePlay                   // Play the result audio
	TranslateAgain                  // Back to the form for another translation
)

// String returns a human-readable name for the action
func (a TranslateAction) String() string {
	switch a {
	case TranslateNone:
		return "None"
	case TranslateSubmit:
		return "Submit"
	case TranslateCancel:
		return "Cancel"
	case TranslatePlay:
		return "Play"
	case TranslateAgain:
		return "Again"
	default:
		return "Unknown"
	}
}

// translateColumn identifies which language picker has focus
type translateColumn int

const (
	columnSource translateColumn = iota
	columnTarget
)

// TranslateModal is the two-phase translation dialog: pick languages, then
// review the result
type TranslateModal struct {
	ModalBase // Embedded modal base for common functionality

	// Entry being translated
	entryID    int
	entryTitle string

	phase TranslatePhase

	// Language pickers
	sourceOptions []string // Language codes; first is auto-detect
	targetOptions []string
	sourceCursor  int
	targetCursor  int
	column        translateColumn

	// Request in flight
	requesting bool

	// Result phase
	result *api.Translation
}

// NewTranslateModal creates a new translate modal
func NewTranslateModal() *TranslateModal {
	sources := make([]string, 0, len(api.Languages)+1)
	sources = append(sources, api.SourceAuto)
	targets := make([]string, 0, len(api.Languages))
	for _, lang := range api.Languages {
		sources = append(sources, lang.Code)
		targets = append(targets, lang.Code)
	}

	return &TranslateModal{
		sourceOptions: sources,
		targetOptions: targets,
	}
}

// ShowForEntry opens the dialog in form phase for the given entry.
// The target cursor starts on defaultTarget, the source on auto-detect.
func (m *TranslateModal) ShowForEntry(entryID int, entryTitle, defaultTarget string) {
	m.entryID = entryID
	m.entryTitle = entryTitle
	m.phase = TranslateFormPhase
	m.column = columnTarget
	m.sourceCursor = 0
	m.targetCursor = 0
	for i, code := range m.targetOptions {
		if code == defaultTarget {
			m.targetCursor = i
			break
		}
	}
	m.requesting = false
	m.result = nil
	m.ModalBase.Show()
}

// Hide hides the dialog and clears result state
func (m *TranslateModal) Hide() {
	m.ModalBase.Hide()
	m.requesting = false
	m.result = nil
}

// EntryID returns the ID of the entry being translated
func (m *TranslateModal) EntryID() int {
	return m.entryID
}

// Phase returns the current dialog phase
func (m *TranslateModal) Phase() TranslatePhase {
	return m.phase
}

// Source returns the selected source language code (api.SourceAuto for auto-detect)
func (m *TranslateModal) Source() string {
	if m.sourceCursor < 0 || m.sourceCursor >= len(m.sourceOptions) {
		return api.SourceAuto
	}
	return m.sourceOptions[m.sourceCursor]
}

// Target returns the selected target language code
func (m *TranslateModal) Target() string {
	if m.targetCursor < 0 || m.targetCursor >= len(m.targetOptions) {
		return ""
	}
	return m.targetOptions[m.targetCursor]
}

// SetRequesting marks whether a translation request is in flight
func (m *TranslateModal) SetRequesting(requesting bool) {
	m.requesting = requesting
}

// IsRequesting returns true while a translation request is in flight
func (m *TranslateModal) IsRequesting() bool {
	return m.requesting
}

// ShowResult switches to the result phase with the given translation
func (m *TranslateModal) ShowResult(result *api.Translation) {
	m.result = result
	m.requesting = false
	m.phase = TranslateResultPhase
	m.ResetScroll()
}

// BackToForm returns to the form phase, keeping the language selections
func (m *TranslateModal) BackToForm() {
	m.phase = TranslateFormPhase
	m.result = nil
	m.requesting = false
}

// Result returns the current translation result, or nil before one arrives
func (m *TranslateModal) Result() *api.Translation {
	return m.result
}

// HasAudio returns true if the result carries an audio path
func (m *TranslateModal) HasAudio() bool {
	return m.result != nil && m.result.AudioPath != ""
}

// Update handles key events and returns the action the caller should take
func (m *TranslateModal) Update(msg tea.KeyMsg) (TranslateAction, tea.Cmd) {
	if !m.Visible() {
		return TranslateNone, nil
	}

	if m.phase == TranslateResultPhase {
		return m.updateResult(msg)
	}
	return m.updateForm(msg)
}

func (m *TranslateModal) updateForm(msg tea.KeyMsg) (TranslateAction, tea.Cmd) {
	// Ignore everything but cancel while a request is in flight
	if m.requesting {
		if key.Matches(msg, Keys.Escape) {
			m.Hide()
			return TranslateCancel, nil
		}
		return TranslateNone, nil
	}

	switch msg.String() {
	case "tab", "shift+tab", "left", "right", "h", "l":
		if m.column == columnSource {
			m.column = columnTarget
		} else {
			m.column = columnSource
		}
		return TranslateNone, nil
	case "enter":
		return TranslateSubmit, nil
	}

	switch {
	case key.Matches(msg, Keys.Up):
		m.moveColumnCursor(-1)
	case key.Matches(msg, Keys.Down):
		m.moveColumnCursor(1)
	case key.Matches(msg, Keys.Home):
		m.setColumnCursor(0)
	case key.Matches(msg, Keys.End):
		m.setColumnCursor(m.columnItemCount() - 1)
	case key.Matches(msg, Keys.Escape):
		m.Hide()
		return TranslateCancel, nil
	}

	return TranslateNone, nil
}

func (m *TranslateModal) updateResult(msg tea.KeyMsg) (TranslateAction, tea.Cmd) {
	switch msg.String() {
	case "p":
		if m.HasAudio() {
			return TranslatePlay, nil
		}
		return TranslateNone, nil
	case "n":
		m.BackToForm()
		return TranslateAgain, nil
	case "j", "down":
		m.ScrollDown(1)
		return TranslateNone, nil
	case "k", "up":
		m.ScrollUp(1)
		return TranslateNone, nil
	case "g":
		m.ResetScroll()
		return TranslateNone, nil
	case "enter", "q":
		m.Hide()
		return TranslateCancel, nil
	}

	if key.Matches(msg, Keys.Escape) {
		m.Hide()
		return TranslateCancel, nil
	}
	if key.Matches(msg, Keys.PageDown) {
		m.ScrollDown(DefaultModalMaxHeight / 2)
	}
	if key.Matches(msg, Keys.PageUp) {
		m.ScrollUp(DefaultModalMaxHeight / 2)
	}

	return TranslateNone, nil
}

func (m *TranslateModal) columnItemCount() int {
	if m.column == columnSource {
		return len(m.sourceOptions)
	}
	return len(m.targetOptions)
}

func (m *TranslateModal) moveColumnCursor(delta int) {
	if m.column == columnSource {
		m.sourceCursor = MoveCursor(m.sourceCursor, delta, len(m.sourceOptions))
	} else {
		m.targetCursor = MoveCursor(m.targetCursor, delta, len(m.targetOptions))
	}
}

func (m *TranslateModal) setColumnCursor(pos int) {
	if m.column == columnSource {
		m.sourceCursor = MoveCursor(pos, 0, len(m.sourceOptions))
	} else {
		m.targetCursor = MoveCursor(pos, 0, len(m.targetOptions))
	}
}

// View renders the translate modal
func (m *TranslateModal) View() string {
	if m.phase == TranslateResultPhase {
		return m.viewResult()
	}
	return m.viewForm()
}

func (m *TranslateModal) viewForm() string {
	title := DialogTitleStyle.Render("Translate: " + m.entryTitle)

	sourceLabel := FieldBlurredStyle
	targetLabel := FieldBlurredStyle
	if m.column == columnSource {
		sourceLabel = FieldFocusedStyle
	} else {
		targetLabel = FieldFocusedStyle
	}

	sourceCol := m.renderColumn(sourceLabel.Render("From"), m.sourceOptions, m.sourceCursor, m.column == columnSource)
	targetCol := m.renderColumn(targetLabel.Render("To"), m.targetOptions, m.targetCursor, m.column == columnTarget)

	columns := lipgloss.JoinHorizontal(lipgloss.Top, sourceCol, "    ", targetCol)

	var footer string
	if m.requesting {
		footer = TranslateStyle.Render("\nTranslating...") + DimStyle.Render("  esc cancel")
	} else {
		footer = DimStyle.Render("\ntab switch  ↑/↓ choose  enter translate  esc cancel")
	}

	return m.RenderDialog(title, columns, footer)
}

// renderColumn renders one language picker column
func (m *TranslateModal) renderColumn(header string, codes []string, cursor int, focused bool) string {
	var lines []string
	lines = append(lines, header)
	lines = append(lines, "")

	for i, code := range codes {
		prefix := "  "
		label := api.LanguageName(code)
		switch {
		case i == cursor && focused:
			lines = append(lines, CursorStyle.Render("> ")+CursorStyle.Render(label))
			continue
		case i == cursor:
			prefix = DimStyle.Render("> ")
			lines = append(lines, prefix+ValueStyle.Render(label))
			continue
		}
		lines = append(lines, prefix+DimStyle.Render(label))
	}

	return strings.Join(lines, "\n")
}

func (m *TranslateModal) viewResult() string {
	if m.result == nil {
		return m.RenderDialog(DialogTitleStyle.Render("Translation"), DimStyle.Render("No result"), "")
	}

	heading := fmt.Sprintf("Translation  %s → %s",
		api.LanguageName(m.result.Info.From),
		api.LanguageName(m.result.Info.To))
	title := DialogTitleStyle.Render(heading)

	contentWidth := min(m.Width()-DialogPaddingAllowance-4, DefaultDialogMaxWidth-DialogPaddingAllowance)
	if contentWidth < MinContentWidth {
		contentWidth = MinContentWidth
	}
	wrap := lipgloss.NewStyle().Width(contentWidth)

	var content strings.Builder
	content.WriteString(LabelStyle.Render("Original"))
	content.WriteString("\n")
	content.WriteString(wrap.Render(ValueStyle.Render(m.result.OriginalContent)))
	content.WriteString("\n\n")
	content.WriteString(LabelStyle.Render("Translated"))
	content.WriteString("\n")
	content.WriteString(wrap.Render(TranslateStyle.Render(m.result.TranslatedContent)))

	var hints []string
	if m.HasAudio() {
		hints = append(hints, "p play audio")
	}
	hints = append(hints, "n new translation", "esc close")
	footer := DimStyle.Render("\n" + strings.Join(hints, "  "))

	maxHeight := m.Height() - DialogChromeAllowance
	if maxHeight > DefaultModalMaxHeight {
		maxHeight = DefaultModalMaxHeight
	}

	result := m.RenderScrollableDialog(ScrollableDialogContent{
		Title:        title,
		Content:      content.String(),
		Footer:       footer,
		MaxHeight:    maxHeight,
		ScrollOffset: m.ScrollOffset(),
	})
	if result.NewScrollOffset != m.ScrollOffset() {
		m.SetScrollOffset(result.NewScrollOffset)
	}
	return result.Rendered
}
