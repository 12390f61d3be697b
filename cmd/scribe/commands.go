package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rfhold/scribe/internal/api"
	"github.com/rfhold/scribe/internal/ui"
)

// Commands capture their dependencies into locals before returning the
// closure so the returned tea.Cmd never touches the model.

// initLoadEntries returns a command to fetch the entry list (for use in Init)
func (m Model) initLoadEntries() tea.Cmd {
	reader := m.deps.Reader
	appCtx := m.appCtx
	return func() tea.Msg {
		entries, err := reader.ListAll(appCtx)
		if err != nil {
			return errMsg(err)
		}
		return entriesMsg(entries)
	}
}

// loadEntries fetches the entry list and puts the list into loading state
func (m *Model) loadEntries() tea.Cmd {
	m.ui.EntryList.SetLoading(true, "Loading entries...")
	m.ui.Header.SetStatus(ui.HeaderRunning, "Refreshing...")
	reader := m.deps.Reader
	appCtx := m.appCtx
	return func() tea.Msg {
		entries, err := reader.ListAll(appCtx)
		if err != nil {
			return errMsg(err)
		}
		return entriesMsg(entries)
	}
}

// saveEntry creates or updates an entry. A zero id means create.
func (m *Model) saveEntry(id int, title, content string) tea.Cmd {
	writer := m.deps.Writer
	appCtx := m.appCtx
	return func() tea.Msg {
		if id == 0 {
			entry, err := writer.Create(appCtx, title, content)
			if err != nil {
				return errMsg(err)
			}
			return entrySavedMsg{entry: entry, created: true}
		}
		entry, err := writer.Update(appCtx, id, title, content)
		if err != nil {
			return errMsg(err)
		}
		return entrySavedMsg{entry: entry}
	}
}

// deleteEntry removes an entry from the server
func (m *Model) deleteEntry(id int, title string) tea.Cmd {
	writer := m.deps.Writer
	appCtx := m.appCtx
	return func() tea.Msg {
		if err := writer.Delete(appCtx, id); err != nil {
			return errMsg(err)
		}
		return entryDeletedMsg{id: id, title: title}
	}
}

// requestTranslation asks the server to translate an entry
func (m *Model) requestTranslation(seq, id int, source, target string) tea.Cmd {
	translator := m.deps.Translator
	appCtx := m.appCtx
	return func() tea.Msg {
		result, err := translator.Translate(appCtx, id, source, target)
		if err != nil {
			return translateErrMsg{seq: seq, err: err}
		}
		return translateDoneMsg{seq: seq, result: result}
	}
}

// openAudio resolves the audio path and hands the URL to the system opener
func (m *Model) openAudio(path string) tea.Cmd {
	url := m.deps.Translator.AudioURL(path)
	open := m.deps.OpenURL
	return func() tea.Msg {
		if err := open(url); err != nil {
			return audioOpenedMsg{url: url, err: &api.PlaybackError{URL: url, Err: err}}
		}
		return audioOpenedMsg{url: url}
	}
}
