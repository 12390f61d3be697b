package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rfhold/scribe/internal/api"
	"github.com/rfhold/scribe/internal/ui"
)

// Focus management helpers

// showErrorModal shows the error modal and pushes focus to it
func (m *Model) showErrorModal(title, summary, details string) {
	m.ui.ErrorModal.Show(title, summary, details)
	m.ui.Focus.Push(ui.FocusErrorModal)
}

// hideErrorModal hides the error modal and pops focus
func (m *Model) hideErrorModal() {
	m.ui.ErrorModal.Hide()
	m.ui.Focus.Remove(ui.FocusErrorModal)
}

// showConfirmModal pushes focus to the confirm modal (already shown)
func (m *Model) showConfirmModal() {
	m.ui.Focus.Push(ui.FocusConfirmModal)
}

// hideConfirmModal hides the confirm modal and pops focus
func (m *Model) hideConfirmModal() {
	m.ui.ConfirmModal.Hide()
	m.ui.Focus.Remove(ui.FocusConfirmModal)
}

// showEntryFormCreate opens the entry form seeded empty
func (m *Model) showEntryFormCreate() {
	if !m.state.OpenModal(ModalCreate, nil) {
		return
	}
	m.logModalTransition(ModalClosed, ModalCreate)
	m.ui.EntryForm.ShowCreate()
	m.ui.Focus.Push(ui.FocusEntryForm)
}

// showEntryFormEdit opens the entry form seeded from an existing entry
func (m *Model) showEntryFormEdit(entry *api.Entry) {
	if !m.state.OpenModal(ModalEdit, entry) {
		return
	}
	m.logModalTransition(ModalClosed, ModalEdit)
	m.ui.EntryForm.ShowEdit(entry.ID, entry.Title, entry.Content)
	m.ui.Focus.Push(ui.FocusEntryForm)
}

// hideEntryForm hides the entry form and pops focus
func (m *Model) hideEntryForm() {
	from := m.state.ModalState
	m.state.CloseModal()
	m.logModalTransition(from, ModalClosed)
	m.ui.EntryForm.Hide()
	m.ui.Focus.Remove(ui.FocusEntryForm)
}

// showTranslateModal opens the translate dialog for an entry
func (m *Model) showTranslateModal(entry *api.Entry) {
	if !m.state.OpenModal(ModalTranslate, entry) {
		return
	}
	m.logModalTransition(ModalClosed, ModalTranslate)
	m.ui.TranslateModal.ShowForEntry(entry.ID, entry.Title, m.ctx.DefaultTarget)
	m.ui.Focus.Push(ui.FocusTranslateModal)
}

// hideTranslateModal hides the translate dialog and pops focus
func (m *Model) hideTranslateModal() {
	from := m.state.ModalState
	m.state.CloseModal()
	m.logModalTransition(from, ModalClosed)
	m.ui.TranslateModal.Hide()
	m.ui.Focus.Remove(ui.FocusTranslateModal)
}

func (m *Model) logModalTransition(from, to ModalState) {
	m.deps.Logger.Debug("modal state transition",
		"from", from.String(),
		"to", to.String(),
	)
}

// transitionTranslateTo moves the translation workflow and logs the change
func (m *Model) transitionTranslateTo(newState TranslateState) {
	m.deps.Logger.Debug("translate state transition",
		"from", m.state.TranslateState.String(),
		"to", newState.String(),
	)
	m.state.TranslateState = newState
}

// showHelp shows the help dialog and pushes focus to it
func (m *Model) showHelp() {
	m.ui.Focus.Push(ui.FocusHelp)
}

// hideHelp hides the help dialog and pops focus
func (m *Model) hideHelp() {
	m.ui.Focus.Remove(ui.FocusHelp)
}

// showDetailsPanel shows the details panel for the selected entry
func (m *Model) showDetailsPanel() {
	m.ui.Details.Show()
	m.ui.Details.SetEntry(m.ui.EntryList.SelectedEntry())
	m.ui.Focus.Push(ui.FocusDetailsPanel)
}

// hideDetailsPanel hides the details panel and pops focus
func (m *Model) hideDetailsPanel() {
	m.ui.Details.Hide()
	m.ui.Focus.Remove(ui.FocusDetailsPanel)
}

// toggleDetailsPanel toggles the details panel visibility
func (m *Model) toggleDetailsPanel() {
	if m.ui.Focus.Current() == ui.FocusDetailsPanel {
		m.hideDetailsPanel()
	} else {
		m.showDetailsPanel()
	}
}

// joinWithSeparator joins strings with a separator
func joinWithSeparator(parts []string, sep string) string {
	if len(parts) == 0 {
		return ""
	}
	result := parts[0]
	for i := 1; i < len(parts); i++ {
		result += sep + parts[i]
	}
	return result
}

// placeOverlay places an overlay string at the specified x,y position on the background
func placeOverlay(x, y int, overlay, background string) string {
	bgLines := strings.Split(background, "\n")
	overlayLines := strings.Split(overlay, "\n")

	for i, overlayLine := range overlayLines {
		bgIdx := y + i
		if bgIdx < 0 || bgIdx >= len(bgLines) {
			continue
		}

		bgLine := bgLines[bgIdx]

		// Truncate background line to x visual width and append overlay
		truncatedBg := truncateToWidth(bgLine, x)
		// Pad if needed
		currentWidth := lipgloss.Width(truncatedBg)
		if currentWidth < x {
			truncatedBg += strings.Repeat(" ", x-currentWidth)
		}

		bgLines[bgIdx] = truncatedBg + overlayLine
	}

	return strings.Join(bgLines, "\n")
}

// truncateToWidth truncates a string (which may contain ANSI codes) to the given visual width
func truncateToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}

	// Use lipgloss to handle ANSI-aware truncation
	style := lipgloss.NewStyle().MaxWidth(width)
	return style.Render(s)
}
