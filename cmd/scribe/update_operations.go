package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rfhold/scribe/internal/ui"
)

// transitionInitTo moves the init state machine and logs the transition
func (m *Model) transitionInitTo(newState InitState) {
	m.deps.Logger.Debug("init state transition",
		"from", m.state.InitState.String(),
		"to", newState.String(),
	)
	m.state.InitState = newState
}

// handleEntries applies a fetched entry list
func (m Model) handleEntries(msg entriesMsg) (tea.Model, tea.Cmd) {
	m.ui.EntryList.SetLoading(false, "")
	m.ui.EntryList.ClearError()
	m.ui.EntryList.SetEntries(msg)
	m.ui.Header.ClearError()
	m.ui.Header.SetEntryCount(len(msg))
	m.ui.Header.SetStatus(ui.HeaderDone, "Ready")

	if m.state.InitState == InitLoadingEntries {
		m.transitionInitTo(InitComplete)
	}
	m.state.Err = nil

	// Keep the details panel in sync with the selection
	if m.ui.Details.Visible() {
		m.ui.Details.SetEntry(m.ui.EntryList.SelectedEntry())
	}
	return m, nil
}

// handleEntrySaved reacts to a completed create or update
func (m Model) handleEntrySaved(msg entrySavedMsg) (tea.Model, tea.Cmd) {
	m.deps.Logger.Info("entry saved",
		"id", msg.entry.ID,
		"created", msg.created,
	)

	// Queued refreshes are subsumed by the reload below
	m.state.ClearBusy()

	return m, tea.Batch(
		m.ui.Toast.Show(FormatEntrySavedToast(msg.entry.Title, msg.created)),
		m.loadEntries(),
	)
}

// handleEntryDeleted reacts to a completed delete
func (m Model) handleEntryDeleted(msg entryDeletedMsg) (tea.Model, tea.Cmd) {
	m.deps.Logger.Info("entry deleted", "id", msg.id)

	// Queued refreshes are subsumed by the reload below
	m.state.ClearBusy()

	// The deleted entry may still be showing in the details panel
	if m.ui.Details.Visible() {
		m.hideDetailsPanel()
	}

	return m, tea.Batch(
		m.ui.Toast.Show(FormatEntryDeletedToast(msg.title)),
		m.loadEntries(),
	)
}

// handleError routes a command failure to the right surface
func (m Model) handleError(msg errMsg) (tea.Model, tea.Cmd) {
	err := error(msg)
	m.deps.Logger.Error("request failed", "error", err)
	m.state.Err = err

	var pendingCmd tea.Cmd
	if m.state.IsBusy() {
		if ops := m.state.ClearBusy(); len(ops) > 0 {
			pendingCmd = m.executePendingOps(ops)
		}
	}

	// First fetch failed: the list is the error surface
	if m.state.InitState == InitLoadingEntries {
		m.transitionInitTo(InitError)
		m.ui.EntryList.SetLoading(false, "")
		m.ui.EntryList.SetError(err)
		m.ui.Header.SetError(err)
		return m, pendingCmd
	}

	// Refresh failed: keep the stale items, show the error inline
	if m.ui.EntryList.IsLoading() {
		m.ui.EntryList.SetLoading(false, "")
		m.ui.EntryList.SetError(err)
		m.ui.Header.SetError(err)
		return m, pendingCmd
	}

	// Mutation failed: modal with the full error text
	m.ui.Header.SetStatus(ui.HeaderDone, "Ready")
	m.showErrorModal("Request Failed", "The server request failed.", err.Error())
	return m, pendingCmd
}

// handleTranslateDone applies a translation result unless it is stale
func (m Model) handleTranslateDone(msg translateDoneMsg) (tea.Model, tea.Cmd) {
	if !AcceptTranslateReply(msg.seq, m.state.TranslateSeq, m.ui.TranslateModal.Visible()) {
		m.deps.Logger.Debug("dropping stale translation reply",
			"seq", msg.seq,
			"current", m.state.TranslateSeq,
		)
		return m, nil
	}
	m.transitionTranslateTo(TranslateResultShown)
	m.ui.TranslateModal.SetRequesting(false)
	m.ui.TranslateModal.ShowResult(msg.result)
	return m, nil
}

// handleTranslateError surfaces a failed translation request
func (m Model) handleTranslateError(msg translateErrMsg) (tea.Model, tea.Cmd) {
	if !AcceptTranslateReply(msg.seq, m.state.TranslateSeq, m.ui.TranslateModal.Visible()) {
		return m, nil
	}
	m.deps.Logger.Error("translation failed", "error", msg.err)
	m.transitionTranslateTo(TranslateIdle)
	m.ui.TranslateModal.SetRequesting(false)
	m.showErrorModal("Translation Failed", "The translation request failed.", msg.err.Error())
	return m, nil
}

// handleAudioOpened reports playback handoff failures
func (m Model) handleAudioOpened(msg audioOpenedMsg) (tea.Model, tea.Cmd) {
	if msg.err == nil {
		return m, nil
	}
	m.deps.Logger.Error("audio playback failed", "url", msg.url, "error", msg.err)
	return m, m.ui.Toast.Show("Could not open audio player")
}
