package main

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rfhold/scribe/internal/ui"
)

// UI handlers - handles window size, spinner, toast, and clipboard

// handleWindowSize handles terminal resize events
func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.ui.Width = msg.Width
	m.ui.Height = msg.Height
	m.ui.Header.SetWidth(msg.Width)
	m.ui.Help.SetSize(msg.Width, msg.Height)
	m.ui.EntryForm.SetSize(msg.Width, msg.Height)
	m.ui.TranslateModal.SetSize(msg.Width, msg.Height)
	m.ui.ConfirmModal.SetSize(msg.Width, msg.Height)
	m.ui.ErrorModal.SetSize(msg.Width, msg.Height)
	// Calculate entry list area height
	headerHeight := lipgloss.Height(m.ui.Header.View())
	footerHeight := 1 // single line footer
	listHeight := msg.Height - headerHeight - footerHeight - 1
	listHeight = max(listHeight, 1)
	m.ui.EntryList.SetSize(msg.Width, listHeight)
	// Details panel will be sized when rendered as overlay
	detailsWidth := msg.Width / 2
	m.ui.Details.SetSize(detailsWidth, listHeight)
	return m, nil
}

// handleSpinnerTick handles spinner animation ticks
func (m Model) handleSpinnerTick(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if m.ui.Header.IsLoading() {
		s, cmd := m.ui.Header.Spinner().Update(msg)
		m.ui.Header.SetSpinner(s)
		cmds = append(cmds, cmd)
	}
	if m.ui.EntryList.IsLoading() {
		s, cmd := m.ui.EntryList.Spinner().Update(msg)
		m.ui.EntryList.SetSpinner(s)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// handleCopiedToClipboard handles clipboard copy confirmation
func (m Model) handleCopiedToClipboard(msg ui.CopiedToClipboardMsg) (tea.Model, tea.Cmd) {
	return m, m.ui.Toast.Show(FormatClipboardToast(msg.Success))
}

// handleToastHide handles toast hide event
func (m Model) handleToastHide() (tea.Model, tea.Cmd) { //nolint:unparam // Bubble Tea handler signature
	m.ui.Toast.Hide()
	return m, nil
}
