package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rfhold/scribe/internal/ui"
)

// handleKeyPress handles all keyboard events
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle error modal first if visible
	if m.ui.ErrorModal.Visible() {
		dismissed, cmd := m.ui.ErrorModal.Update(msg)
		if dismissed {
			m.hideErrorModal()
		}
		return m, cmd
	}

	// Handle confirm modal if visible
	if m.ui.ConfirmModal.Visible() {
		confirmed, cancelled, cmd := m.ui.ConfirmModal.Update(msg)
		if confirmed {
			id := m.ui.ConfirmModal.GetContextID()
			title := m.ui.ConfirmModal.GetContextTitle()
			m.hideConfirmModal()
			m.state.SetBusy("delete")
			return m, m.deleteEntry(id, title)
		}
		if cancelled {
			m.hideConfirmModal()
		}
		return m, cmd
	}

	// Handle entry form if visible
	if m.ui.EntryForm.Visible() {
		submitted, cmd := m.ui.EntryForm.Update(msg)
		if submitted {
			return m.handleFormSubmit()
		}
		if !m.ui.EntryForm.Visible() {
			// Form closed itself on escape
			m.hideEntryForm()
		}
		return m, cmd
	}

	// Handle translate modal if visible
	if m.ui.TranslateModal.Visible() {
		return m.handleTranslateModalKey(msg)
	}

	// If help is showing, handle scrolling or close
	if m.ui.Focus.Current() == ui.FocusHelp {
		if key.Matches(msg, ui.Keys.Up) || key.Matches(msg, ui.Keys.Down) ||
			key.Matches(msg, ui.Keys.PageUp) || key.Matches(msg, ui.Keys.PageDown) {
			m.ui.Help.Update(msg)
			return m, nil
		}
		if key.Matches(msg, ui.Keys.Escape) || key.Matches(msg, ui.Keys.Quit) ||
			key.Matches(msg, ui.Keys.Help) {
			m.hideHelp()
			return m, nil
		}
		// Any other key is ignored while help is open
		return m, nil
	}

	// Help toggle
	if key.Matches(msg, ui.Keys.Help) {
		m.showHelp()
		return m, nil
	}

	// While the filter input is active, the list owns the keyboard
	if m.ui.EntryList.Filter().Active() {
		return m, m.ui.EntryList.Update(msg)
	}

	// Escape handling
	if key.Matches(msg, ui.Keys.Escape) {
		return m.handleEscape()
	}

	// Quit
	if key.Matches(msg, ui.Keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	// Details panel toggle
	if key.Matches(msg, ui.Keys.ToggleDetails) {
		m.toggleDetailsPanel()
		return m, nil
	}

	// New entry
	if key.Matches(msg, ui.Keys.NewEntry) {
		m.showEntryFormCreate()
		return m, nil
	}

	// Edit selected entry
	if key.Matches(msg, ui.Keys.EditEntry) {
		if entry := m.ui.EntryList.SelectedEntry(); entry != nil {
			m.showEntryFormEdit(entry)
		}
		return m, nil
	}

	// Delete selected entry (with confirmation)
	if key.Matches(msg, ui.Keys.DeleteEntry) {
		if entry := m.ui.EntryList.SelectedEntry(); entry != nil {
			m.ui.ConfirmModal.SetLabels("Cancel", "Delete")
			m.ui.ConfirmModal.ShowWithContext(
				"Delete Entry",
				fmt.Sprintf("Delete '%s'?", entry.Title),
				"This cannot be undone.",
				entry.ID,
				entry.Title,
			)
			m.showConfirmModal()
		}
		return m, nil
	}

	// Refresh entry list
	if key.Matches(msg, ui.Keys.Refresh) {
		if m.state.IsBusy() {
			m.state.QueueOperation(PendingOperation{Type: "refresh"})
			return m, nil
		}
		return m, m.loadEntries()
	}

	// Translate selected entry
	if key.Matches(msg, ui.Keys.Translate) {
		if entry := m.ui.EntryList.SelectedEntry(); entry != nil {
			m.showTranslateModal(entry)
		}
		return m, nil
	}

	// Copy selected entry content
	if key.Matches(msg, ui.Keys.CopyContent) {
		if entry := m.ui.EntryList.SelectedEntry(); entry != nil {
			return m, ui.CopyToClipboardCmd(entry.Content)
		}
		return m, nil
	}

	// Forward keys to the list for cursor and filter handling
	return m.handleListNavigation(msg)
}

// handleFormSubmit validates the entry form and issues the save command
func (m Model) handleFormSubmit() (tea.Model, tea.Cmd) {
	title := m.ui.EntryForm.TitleValue()
	content := m.ui.EntryForm.ContentValue()

	if err := ValidateEntryForm(title, content); err != nil {
		m.ui.EntryForm.SetError(err)
		return m, nil
	}

	id := m.ui.EntryForm.EntryID()
	m.hideEntryForm()

	if id == 0 {
		m.state.SetBusy("create")
	} else {
		m.state.SetBusy("update")
	}
	m.ui.Header.SetStatus(ui.HeaderRunning, "Saving...")
	return m, m.saveEntry(id, title, content)
}

// handleTranslateModalKey routes keys to the translate modal and acts on
// the resulting action
func (m Model) handleTranslateModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, cmd := m.ui.TranslateModal.Update(msg)
	switch action {
	case ui.TranslateSubmit:
		seq := m.state.NextTranslateSeq()
		m.transitionTranslateTo(TranslateRequesting)
		m.ui.TranslateModal.SetRequesting(true)
		return m, tea.Batch(cmd, m.requestTranslation(
			seq,
			m.ui.TranslateModal.EntryID(),
			m.ui.TranslateModal.Source(),
			m.ui.TranslateModal.Target(),
		))
	case ui.TranslateCancel:
		m.hideTranslateModal()
		return m, cmd
	case ui.TranslatePlay:
		result := m.ui.TranslateModal.Result()
		if result != nil && result.AudioPath != "" {
			return m, tea.Batch(cmd, m.openAudio(result.AudioPath))
		}
		return m, cmd
	case ui.TranslateAgain:
		m.transitionTranslateTo(TranslateIdle)
		return m, cmd
	}
	return m, cmd
}

// handleEscape handles escape key presses based on current state
func (m Model) handleEscape() (tea.Model, tea.Cmd) {
	// Close details panel if visible
	if m.ui.Details.Visible() {
		m.hideDetailsPanel()
		return m, nil
	}
	// Clear an applied filter
	if m.ui.EntryList.Filter().Applied() {
		m.ui.EntryList.ClearFilter()
		return m, nil
	}
	return m, nil
}

// handleListNavigation forwards keys to the entry list
func (m Model) handleListNavigation(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Scroll the details panel instead when it has focus
	if m.ui.Details.Visible() {
		if m.handleDetailsPanelScroll(msg, m.ui.Details) {
			return m, nil
		}
	}

	cmd := m.ui.EntryList.Update(msg)
	// Keep the details panel in sync with the selection
	if m.ui.Details.Visible() {
		m.ui.Details.SetEntry(m.ui.EntryList.SelectedEntry())
	}
	return m, cmd
}

// scrollablePanel is an interface for panels that support scrolling
type scrollablePanel interface {
	ScrollUp(lines int)
	ScrollDown(lines int)
	SetScrollOffset(offset int)
	ScrollOffset() int
}

// handleDetailsPanelScroll handles scroll keys for detail panels
// Returns true if the key was handled (consumed for scrolling)
func (m Model) handleDetailsPanelScroll(msg tea.KeyMsg, panel scrollablePanel) bool {
	switch {
	case key.Matches(msg, ui.Keys.Up):
		panel.ScrollUp(1)
		return true
	case key.Matches(msg, ui.Keys.Down):
		panel.ScrollDown(1)
		return true
	case key.Matches(msg, ui.Keys.PageUp):
		panel.ScrollUp(10)
		return true
	case key.Matches(msg, ui.Keys.PageDown):
		panel.ScrollDown(10)
		return true
	case key.Matches(msg, ui.Keys.Home):
		panel.SetScrollOffset(0)
		return true
	case key.Matches(msg, ui.Keys.End):
		// Set to a large value - the render will clamp it
		panel.SetScrollOffset(9999)
		return true
	}
	return false
}
