package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rfhold/scribe/internal/ui"
)

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Build header
	header := m.ui.Header.View()

	// Build footer with keybind hints
	footer := m.renderFooter()

	// Calculate available height for main content
	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	mainHeight := m.ui.Height - headerHeight - footerHeight - 1

	if mainHeight < 1 {
		mainHeight = 1
	}

	mainArea := lipgloss.NewStyle().
		Height(mainHeight).
		Width(m.ui.Width).
		Render(m.ui.EntryList.View())

	fullView := lipgloss.JoinVertical(lipgloss.Left, header, mainArea, footer)

	// Overlay details panel on right half if visible
	if m.ui.Details.Visible() {
		detailsWidth := m.ui.Width / 2
		m.ui.Details.SetSize(detailsWidth, mainHeight)
		detailsView := m.ui.Details.View()

		// Place the details panel on the right side
		fullView = placeOverlay(m.ui.Width/2, headerHeight, detailsView, fullView)
	}

	// Overlay help dialog if showing
	if m.ui.Focus.Current() == ui.FocusHelp {
		fullView = m.ui.Help.View()
	}

	// Overlay entry form if showing
	if m.ui.EntryForm.Visible() {
		fullView = m.ui.EntryForm.View()
	}

	// Overlay translate modal if showing
	if m.ui.TranslateModal.Visible() {
		fullView = m.ui.TranslateModal.View()
	}

	// Overlay confirm modal if showing
	if m.ui.ConfirmModal.Visible() {
		fullView = m.ui.ConfirmModal.View()
	}

	// Overlay error modal if showing
	if m.ui.ErrorModal.Visible() {
		fullView = m.ui.ErrorModal.View()
	}

	// Overlay toast notification if showing
	if m.ui.Toast.Visible() {
		toastView := m.ui.Toast.View(m.ui.Width)
		// Place toast near the bottom, above the footer
		toastY := m.ui.Height - footerHeight - 2
		if toastY < 0 {
			toastY = 0
		}
		fullView = placeOverlay(0, toastY, toastView, fullView)
	}

	return fullView
}

// renderFooter renders the bottom footer with keybind hints
func (m Model) renderFooter() string {
	var leftParts []string
	var rightParts []string

	// Filter indicator on the left
	if m.ui.EntryList.Filter().ActiveOrApplied() {
		leftParts = append(leftParts, ui.LabelStyle.Render("FILTER"))
		leftParts = append(leftParts, ui.DimStyle.Render("esc clear"))
	}

	rightParts = append(rightParts, ui.DimStyle.Render("n new"))
	rightParts = append(rightParts, ui.DimStyle.Render("e edit"))
	rightParts = append(rightParts, ui.DimStyle.Render("x delete"))
	rightParts = append(rightParts, ui.DimStyle.Render("t translate"))
	rightParts = append(rightParts, ui.DimStyle.Render("r refresh"))
	rightParts = append(rightParts, ui.DimStyle.Render("D details"))
	rightParts = append(rightParts, ui.DimStyle.Render("/ filter"))
	rightParts = append(rightParts, ui.DimStyle.Render("? help"))
	rightParts = append(rightParts, ui.DimStyle.Render("q quit"))

	left := joinWithSeparator(leftParts, "  ")
	right := joinWithSeparator(rightParts, "  ")

	// Calculate padding between left and right
	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(right)
	padding := m.ui.Width - leftWidth - rightWidth - 2 // -2 for margins
	if padding < 1 {
		padding = 1
	}

	return " " + left + strings.Repeat(" ", padding) + right + " "
}
