package main

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rfhold/scribe/internal/ui"
)

// handleMessage routes all non-key, non-window messages to appropriate handlers.
func (m Model) handleMessage(msg tea.Msg) (tea.Model, tea.Cmd) {
	if model, cmd, handled := m.handleDataMessages(msg); handled {
		return model, cmd
	}
	if model, cmd, handled := m.handleTranslateMessages(msg); handled {
		return model, cmd
	}
	if model, cmd, handled := m.handleUIMessages(msg); handled {
		return model, cmd
	}
	return m, nil
}

func (m Model) handleDataMessages(msg tea.Msg) (tea.Model, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case entriesMsg:
		model, cmd := m.handleEntries(msg)
		return model, cmd, true
	case entrySavedMsg:
		model, cmd := m.handleEntrySaved(msg)
		return model, cmd, true
	case entryDeletedMsg:
		model, cmd := m.handleEntryDeleted(msg)
		return model, cmd, true
	case errMsg: //nolint:staticcheck // SA4020: type aliases to error are dispatched by explicit cast at call site
		model, cmd := m.handleError(msg)
		return model, cmd, true
	}
	return m, nil, false
}

func (m Model) handleTranslateMessages(msg tea.Msg) (tea.Model, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case translateDoneMsg:
		model, cmd := m.handleTranslateDone(msg)
		return model, cmd, true
	case translateErrMsg:
		model, cmd := m.handleTranslateError(msg)
		return model, cmd, true
	case audioOpenedMsg:
		model, cmd := m.handleAudioOpened(msg)
		return model, cmd, true
	}
	return m, nil, false
}

func (m Model) handleUIMessages(msg tea.Msg) (tea.Model, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		model, cmd := m.handleSpinnerTick(msg)
		return model, cmd, true
	case ui.CopiedToClipboardMsg:
		model, cmd := m.handleCopiedToClipboard(msg)
		return model, cmd, true
	case ui.ToastHideMsg:
		model, cmd := m.handleToastHide()
		return model, cmd, true
	}
	return m, nil, false
}
