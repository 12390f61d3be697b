package main

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/rfhold/scribe/internal/api"
	"github.com/rfhold/scribe/internal/ui"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	m.Run()
}

// newTestDependencies creates a Dependencies struct with all fakes for testing.
// This is the primary way to create testable model instances.
func newTestDependencies() *Dependencies {
	return &Dependencies{
		Reader:     &api.FakeEntryReader{},
		Writer:     &api.FakeEntryWriter{},
		Translator: &api.FakeTranslator{},
		OpenURL:    func(string) error { return nil },
		Logger:     slog.New(slog.NewTextHandler(discardWriter{}, nil)),
	}
}

// discardWriter is an io.Writer that discards all output
type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func newTestModel(deps *Dependencies) Model {
	ctx := AppContext{
		ServerURL:     "http://test:5000",
		DefaultTarget: "fr",
	}
	m := initialModel(context.Background(), ctx, deps)
	sized, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return sized.(Model)
}

func testEntries() []api.Entry {
	return []api.Entry{
		{ID: 3, Title: "Third post", Content: "Latest content"},
		{ID: 2, Title: "Second post", Content: "Middle content"},
		{ID: 1, Title: "First post", Content: "Oldest content"},
	}
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// loadTestEntries pushes an entry list into the model as if the fetch completed.
func loadTestEntries(t *testing.T, m Model, entries []api.Entry) Model {
	t.Helper()
	updated, _ := m.Update(entriesMsg(entries))
	return updated.(Model)
}

func TestInitialModelStartsLoadingEntries(t *testing.T) {
	m := newTestModel(newTestDependencies())

	if m.state.InitState != InitLoadingEntries {
		t.Errorf("expected InitState=%v, got %v", InitLoadingEntries, m.state.InitState)
	}
	if m.state.IsBusy() {
		t.Error("expected model to start without a busy lock")
	}
}

func TestInitFetchReturnsEntries(t *testing.T) {
	deps := newTestDependencies()
	deps.Reader.(*api.FakeEntryReader).Entries = testEntries()
	m := newTestModel(deps)

	msg := m.initLoadEntries()()

	entries, ok := msg.(entriesMsg)
	if !ok {
		t.Fatalf("expected entriesMsg, got %T", msg)
	}
	if len(entries) != 3 {
		t.Errorf("expected 3 entries, got %d", len(entries))
	}
	if deps.Reader.(*api.FakeEntryReader).Calls.ListAll != 1 {
		t.Errorf("expected 1 ListAll call, got %d", deps.Reader.(*api.FakeEntryReader).Calls.ListAll)
	}
}

func TestEntriesMessageCompletesInit(t *testing.T) {
	m := newTestModel(newTestDependencies())

	m = loadTestEntries(t, m, testEntries())

	if m.state.InitState != InitComplete {
		t.Errorf("expected InitState=%v, got %v", InitComplete, m.state.InitState)
	}
	if got := len(m.ui.EntryList.Entries()); got != 3 {
		t.Errorf("expected 3 entries in list, got %d", got)
	}
	if m.ui.EntryList.IsLoading() {
		t.Error("expected list to stop loading")
	}
}

func TestFetchErrorSetsInitError(t *testing.T) {
	m := newTestModel(newTestDependencies())

	updated, _ := m.Update(errMsg(errors.New("connection refused")))
	m = updated.(Model)

	if m.state.InitState != InitError {
		t.Errorf("expected InitState=%v, got %v", InitError, m.state.InitState)
	}
	if m.ui.EntryList.Error() == nil {
		t.Error("expected list error to be set")
	}
}

func TestRefreshErrorKeepsStaleEntries(t *testing.T) {
	m := newTestModel(newTestDependencies())
	m = loadTestEntries(t, m, testEntries())

	// Start a refresh, then fail it
	updated, _ := m.Update(keyRune('r'))
	m = updated.(Model)
	updated, _ = m.Update(errMsg(errors.New("timeout")))
	m = updated.(Model)

	if got := len(m.ui.EntryList.Entries()); got != 3 {
		t.Errorf("expected stale entries to survive, got %d", got)
	}
	if m.ui.EntryList.Error() == nil {
		t.Error("expected list error to be set")
	}
	if m.ui.ErrorModal.Visible() {
		t.Error("refresh failures should not open the error modal")
	}
}

func TestNewEntryKeyOpensForm(t *testing.T) {
	m := newTestModel(newTestDependencies())
	m = loadTestEntries(t, m, testEntries())

	updated, _ := m.Update(keyRune('n'))
	m = updated.(Model)

	if !m.ui.EntryForm.Visible() {
		t.Fatal("expected entry form to be visible")
	}
	if m.ui.EntryForm.IsEdit() {
		t.Error("expected a create form, not edit")
	}
	if m.ui.Focus.Current() != ui.FocusEntryForm {
		t.Errorf("expected focus on entry form, got %v", m.ui.Focus.Current())
	}
}

func TestEditKeySeedsFormFromSelection(t *testing.T) {
	m := newTestModel(newTestDependencies())
	m = loadTestEntries(t, m, testEntries())

	updated, _ := m.Update(keyRune('e'))
	m = updated.(Model)

	if !m.ui.EntryForm.Visible() {
		t.Fatal("expected entry form to be visible")
	}
	if !m.ui.EntryForm.IsEdit() {
		t.Error("expected an edit form")
	}
	if got := m.ui.EntryForm.TitleValue(); got != "Third post" {
		t.Errorf("expected title seeded from selection, got %q", got)
	}
	if m.ui.EntryForm.EntryID() != 3 {
		t.Errorf("expected entry id 3, got %d", m.ui.EntryForm.EntryID())
	}
}

func TestEditKeyWithoutEntriesDoesNothing(t *testing.T) {
	m := newTestModel(newTestDependencies())
	m = loadTestEntries(t, m, nil)

	updated, _ := m.Update(keyRune('e'))
	m = updated.(Model)

	if m.ui.EntryForm.Visible() {
		t.Error("expected no form without a selection")
	}
}

func TestSubmitEmptyFormIsRejected(t *testing.T) {
	deps := newTestDependencies()
	m := newTestModel(deps)
	m = loadTestEntries(t, m, testEntries())

	updated, _ := m.Update(keyRune('n'))
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = updated.(Model)

	if !m.ui.EntryForm.Visible() {
		t.Error("expected form to stay open on validation failure")
	}
	if m.state.IsBusy() {
		t.Error("expected no busy lock for rejected input")
	}
	if got := len(deps.Writer.(*api.FakeEntryWriter).Calls.Create); got != 0 {
		t.Errorf("expected no create calls, got %d", got)
	}
}

func TestCreateFlowSavesEntry(t *testing.T) {
	deps := newTestDependencies()
	m := newTestModel(deps)
	m = loadTestEntries(t, m, testEntries())

	updated, _ := m.Update(keyRune('n'))
	m = updated.(Model)
	for _, r := range "Hello" {
		updated, _ = m.Update(keyRune(r))
		m = updated.(Model)
	}
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	for _, r := range "World" {
		updated, _ = m.Update(keyRune(r))
		m = updated.(Model)
	}
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = updated.(Model)

	if m.ui.EntryForm.Visible() {
		t.Error("expected form to close on submit")
	}
	if !m.state.IsBusy() {
		t.Error("expected busy lock during save")
	}
	if cmd == nil {
		t.Fatal("expected a save command")
	}

	msg := cmd()
	saved, ok := msg.(entrySavedMsg)
	if !ok {
		t.Fatalf("expected entrySavedMsg, got %T", msg)
	}
	if !saved.created {
		t.Error("expected a create result")
	}

	calls := deps.Writer.(*api.FakeEntryWriter).Calls.Create
	if len(calls) != 1 {
		t.Fatalf("expected 1 create call, got %d", len(calls))
	}
	if calls[0].Title != "Hello" || calls[0].Content != "World" {
		t.Errorf("unexpected create payload: %+v", calls[0])
	}

	// Applying the result clears the lock and starts a reload
	updated, reload := m.Update(saved)
	m = updated.(Model)
	if m.state.IsBusy() {
		t.Error("expected busy lock cleared after save")
	}
	if reload == nil {
		t.Error("expected a reload command after save")
	}
}

func TestDeleteFlowConfirmsFirst(t *testing.T) {
	deps := newTestDependencies()
	m := newTestModel(deps)
	m = loadTestEntries(t, m, testEntries())

	updated, _ := m.Update(keyRune('x'))
	m = updated.(Model)

	if !m.ui.ConfirmModal.Visible() {
		t.Fatal("expected confirm modal")
	}
	if m.ui.ConfirmModal.GetContextID() != 3 {
		t.Errorf("expected context id 3, got %d", m.ui.ConfirmModal.GetContextID())
	}
	if got := len(deps.Writer.(*api.FakeEntryWriter).Calls.Delete); got != 0 {
		t.Errorf("expected no delete before confirmation, got %d", got)
	}

	updated, cmd := m.Update(keyRune('y'))
	m = updated.(Model)

	if m.ui.ConfirmModal.Visible() {
		t.Error("expected confirm modal to close")
	}
	if cmd == nil {
		t.Fatal("expected a delete command")
	}

	msg := cmd()
	deleted, ok := msg.(entryDeletedMsg)
	if !ok {
		t.Fatalf("expected entryDeletedMsg, got %T", msg)
	}
	if deleted.id != 3 {
		t.Errorf("expected deleted id 3, got %d", deleted.id)
	}
	if got := deps.Writer.(*api.FakeEntryWriter).Calls.Delete; len(got) != 1 || got[0] != 3 {
		t.Errorf("unexpected delete calls: %v", got)
	}
}

func TestDeleteCancelledByN(t *testing.T) {
	deps := newTestDependencies()
	m := newTestModel(deps)
	m = loadTestEntries(t, m, testEntries())

	updated, _ := m.Update(keyRune('x'))
	m = updated.(Model)
	updated, _ = m.Update(keyRune('n'))
	m = updated.(Model)

	if m.ui.ConfirmModal.Visible() {
		t.Error("expected confirm modal to close on cancel")
	}
	if got := len(deps.Writer.(*api.FakeEntryWriter).Calls.Delete); got != 0 {
		t.Errorf("expected no delete calls, got %d", got)
	}
}

func TestRefreshWhileBusyIsQueued(t *testing.T) {
	deps := newTestDependencies()
	m := newTestModel(deps)
	m = loadTestEntries(t, m, testEntries())
	listCalls := deps.Reader.(*api.FakeEntryReader).Calls.ListAll

	m.state.SetBusy("update")
	updated, cmd := m.Update(keyRune('r'))
	m = updated.(Model)

	if cmd != nil {
		t.Error("expected no immediate command while busy")
	}
	if len(m.state.PendingOps) != 1 || m.state.PendingOps[0].Type != "refresh" {
		t.Errorf("expected one queued refresh, got %+v", m.state.PendingOps)
	}
	if deps.Reader.(*api.FakeEntryReader).Calls.ListAll != listCalls {
		t.Error("expected no fetch while busy")
	}
}

func TestMutationErrorOpensErrorModal(t *testing.T) {
	m := newTestModel(newTestDependencies())
	m = loadTestEntries(t, m, testEntries())

	m.state.SetBusy("delete")
	updated, _ := m.Update(errMsg(errors.New("server returned 500")))
	m = updated.(Model)

	if !m.ui.ErrorModal.Visible() {
		t.Fatal("expected error modal")
	}
	if m.state.IsBusy() {
		t.Error("expected busy lock cleared on failure")
	}
	if m.ui.Focus.Current() != ui.FocusErrorModal {
		t.Errorf("expected focus on error modal, got %v", m.ui.Focus.Current())
	}

	// Dismissing restores list focus
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	m = updated.(Model)
	if m.ui.ErrorModal.Visible() {
		t.Error("expected error modal dismissed")
	}
	if m.ui.Focus.Current() != ui.FocusMain {
		t.Errorf("expected focus back on main, got %v", m.ui.Focus.Current())
	}
}

func TestOpenModalRejectedWhileAnotherOpen(t *testing.T) {
	s := NewAppState()

	if !s.OpenModal(ModalCreate, nil) {
		t.Fatal("expected first open to succeed")
	}
	entry := &api.Entry{ID: 1}
	if s.OpenModal(ModalTranslate, entry) {
		t.Error("expected second open to be rejected")
	}
	if s.ModalState != ModalCreate {
		t.Errorf("expected state unchanged, got %v", s.ModalState)
	}
	if s.Selected != nil {
		t.Error("expected rejected open to leave selection alone")
	}
}

func TestCloseModalClearsSelectionAndTranslateState(t *testing.T) {
	s := NewAppState()
	s.OpenModal(ModalTranslate, &api.Entry{ID: 2})
	s.TranslateState = TranslateResultShown

	s.CloseModal()

	if s.ModalState != ModalClosed {
		t.Errorf("expected closed, got %v", s.ModalState)
	}
	if s.Selected != nil {
		t.Error("expected selection cleared")
	}
	if s.TranslateState != TranslateIdle {
		t.Errorf("expected translate state reset, got %v", s.TranslateState)
	}
	if s.TranslateSeq == 0 {
		t.Error("expected closing a translate dialog to advance the sequence")
	}
}

func TestEditKeyTracksModalState(t *testing.T) {
	m := newTestModel(newTestDependencies())
	m = loadTestEntries(t, m, testEntries())

	updated, _ := m.Update(keyRune('e'))
	m = updated.(Model)

	if m.state.ModalState != ModalEdit {
		t.Errorf("expected ModalEdit, got %v", m.state.ModalState)
	}
	if m.state.Selected == nil || m.state.Selected.ID != 3 {
		t.Errorf("expected selected entry 3, got %+v", m.state.Selected)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	m = updated.(Model)
	if m.state.ModalState != ModalClosed {
		t.Errorf("expected closed after escape, got %v", m.state.ModalState)
	}
	if m.state.Selected != nil {
		t.Error("expected selection cleared after escape")
	}
}

func TestTranslateKeyOpensModalWithDefaults(t *testing.T) {
	m := newTestModel(newTestDependencies())
	m = loadTestEntries(t, m, testEntries())

	updated, _ := m.Update(keyRune('t'))
	m = updated.(Model)

	if !m.ui.TranslateModal.Visible() {
		t.Fatal("expected translate modal")
	}
	if m.ui.TranslateModal.EntryID() != 3 {
		t.Errorf("expected entry id 3, got %d", m.ui.TranslateModal.EntryID())
	}
	if got := m.ui.TranslateModal.Source(); got != api.SourceAuto {
		t.Errorf("expected auto source, got %q", got)
	}
	if got := m.ui.TranslateModal.Target(); got != "fr" {
		t.Errorf("expected configured default target, got %q", got)
	}
}

func TestTranslateSubmitRequestsAndShowsResult(t *testing.T) {
	deps := newTestDependencies()
	deps.Translator.(*api.FakeTranslator).Result = &api.Translation{
		ID:                3,
		OriginalContent:   "Latest content",
		TranslatedContent: "Dernier contenu",
		Info:              api.TranslationInfo{From: "en", To: "fr"},
		AudioPath:         "/audio/3.mp3",
	}
	m := newTestModel(deps)
	m = loadTestEntries(t, m, testEntries())

	updated, _ := m.Update(keyRune('t'))
	m = updated.(Model)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if !m.ui.TranslateModal.IsRequesting() {
		t.Error("expected modal in requesting state")
	}
	if m.state.TranslateState != TranslateRequesting {
		t.Errorf("expected TranslateRequesting, got %v", m.state.TranslateState)
	}
	if cmd == nil {
		t.Fatal("expected a translation command")
	}

	msg := cmd()
	done, ok := msg.(translateDoneMsg)
	if !ok {
		t.Fatalf("expected translateDoneMsg, got %T", msg)
	}
	if done.seq != m.state.TranslateSeq {
		t.Errorf("expected seq %d, got %d", m.state.TranslateSeq, done.seq)
	}

	calls := deps.Translator.(*api.FakeTranslator).Calls.Translate
	if len(calls) != 1 {
		t.Fatalf("expected 1 translate call, got %d", len(calls))
	}
	if calls[0].ID != 3 || calls[0].Source != api.SourceAuto || calls[0].Target != "fr" {
		t.Errorf("unexpected translate call: %+v", calls[0])
	}

	updated, _ = m.Update(done)
	m = updated.(Model)
	if m.ui.TranslateModal.Phase() != ui.TranslateResultPhase {
		t.Errorf("expected result phase, got %v", m.ui.TranslateModal.Phase())
	}
	if m.state.TranslateState != TranslateResultShown {
		t.Errorf("expected TranslateResultShown, got %v", m.state.TranslateState)
	}
	if m.ui.TranslateModal.IsRequesting() {
		t.Error("expected requesting cleared")
	}
}

func TestStaleTranslateReplyIsDropped(t *testing.T) {
	m := newTestModel(newTestDependencies())
	m = loadTestEntries(t, m, testEntries())

	updated, _ := m.Update(keyRune('t'))
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	stale := translateDoneMsg{seq: m.state.TranslateSeq - 1, result: &api.Translation{ID: 3}}
	updated, _ = m.Update(stale)
	m = updated.(Model)

	if m.ui.TranslateModal.Phase() != ui.TranslateFormPhase {
		t.Error("stale reply must not reach the result phase")
	}
	if !m.ui.TranslateModal.IsRequesting() {
		t.Error("stale reply must not clear the requesting state")
	}
}

func TestTranslateReplyAfterCloseIsDropped(t *testing.T) {
	m := newTestModel(newTestDependencies())
	m = loadTestEntries(t, m, testEntries())

	updated, _ := m.Update(keyRune('t'))
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	seq := m.state.TranslateSeq

	// User closes the modal before the reply lands
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	m = updated.(Model)
	updated, _ = m.Update(translateDoneMsg{seq: seq, result: &api.Translation{ID: 3}})
	m = updated.(Model)

	if m.ui.TranslateModal.Visible() {
		t.Error("expected modal to stay closed")
	}
}

func TestTranslateReplyAfterReopenTargetsNewEntry(t *testing.T) {
	m := newTestModel(newTestDependencies())
	m = loadTestEntries(t, m, testEntries())

	updated, _ := m.Update(keyRune('t'))
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	seq := m.state.TranslateSeq

	// Close mid-flight, then reopen for a different entry
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	updated, _ = m.Update(keyRune('t'))
	m = updated.(Model)

	updated, _ = m.Update(translateDoneMsg{seq: seq, result: &api.Translation{ID: 3, TranslatedContent: "vieux"}})
	m = updated.(Model)

	if m.state.Selected == nil || m.state.Selected.ID != 2 {
		t.Fatalf("expected reopened dialog to target entry 2, got %+v", m.state.Selected)
	}
	if m.ui.TranslateModal.Result() != nil {
		t.Error("expected the old entry's reply to be dropped after reopen")
	}
	if m.state.TranslateState != TranslateIdle {
		t.Errorf("expected TranslateState=%v, got %v", TranslateIdle, m.state.TranslateState)
	}
}

func TestTranslateErrorSurfacesModal(t *testing.T) {
	m := newTestModel(newTestDependencies())
	m = loadTestEntries(t, m, testEntries())

	updated, _ := m.Update(keyRune('t'))
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	updated, _ = m.Update(translateErrMsg{seq: m.state.TranslateSeq, err: errors.New("no such language")})
	m = updated.(Model)

	if !m.ui.ErrorModal.Visible() {
		t.Error("expected error modal for failed translation")
	}
	if m.ui.TranslateModal.IsRequesting() {
		t.Error("expected requesting cleared after failure")
	}
}

func TestPlayAudioOpensURL(t *testing.T) {
	var opened string
	deps := newTestDependencies()
	deps.Translator.(*api.FakeTranslator).Result = &api.Translation{
		ID:        3,
		AudioPath: "/audio/3.mp3",
		Info:      api.TranslationInfo{From: "en", To: "fr"},
	}
	deps.OpenURL = func(url string) error {
		opened = url
		return nil
	}
	m := newTestModel(deps)
	m = loadTestEntries(t, m, testEntries())

	updated, _ := m.Update(keyRune('t'))
	m = updated.(Model)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	updated, _ = m.Update(cmd())
	m = updated.(Model)

	updated, playCmd := m.Update(keyRune('p'))
	m = updated.(Model)
	if playCmd == nil {
		t.Fatal("expected a playback command")
	}

	msg := playCmd()
	result, ok := msg.(audioOpenedMsg)
	if !ok {
		t.Fatalf("expected audioOpenedMsg, got %T", msg)
	}
	if result.err != nil {
		t.Errorf("unexpected playback error: %v", result.err)
	}
	if opened != "http://localhost:5000/audio/3.mp3" {
		t.Errorf("unexpected audio url: %q", opened)
	}
}

func TestPlayAudioFailureWrapsPlaybackError(t *testing.T) {
	deps := newTestDependencies()
	deps.OpenURL = func(url string) error {
		return errors.New("no opener")
	}
	m := newTestModel(deps)

	msg := m.openAudio("/audio/3.mp3")()
	result, ok := msg.(audioOpenedMsg)
	if !ok {
		t.Fatalf("expected audioOpenedMsg, got %T", msg)
	}
	var perr *api.PlaybackError
	if !errors.As(result.err, &perr) {
		t.Fatalf("expected PlaybackError, got %v", result.err)
	}
	if perr.URL != "http://localhost:5000/audio/3.mp3" {
		t.Errorf("unexpected url in playback error: %q", perr.URL)
	}
}

func TestAudioFailureShowsToast(t *testing.T) {
	m := newTestModel(newTestDependencies())

	updated, _ := m.Update(audioOpenedMsg{url: "http://test/audio.mp3", err: errors.New("no opener")})
	m = updated.(Model)

	if !m.ui.Toast.Visible() {
		t.Error("expected toast on playback failure")
	}
}

func TestCopyKeyWithoutSelectionIsNoop(t *testing.T) {
	m := newTestModel(newTestDependencies())
	m = loadTestEntries(t, m, nil)

	updated, cmd := m.Update(keyRune('y'))
	_ = updated.(Model)

	if cmd != nil {
		t.Error("expected no clipboard command without a selection")
	}
}

func TestDetailsToggleAndEscape(t *testing.T) {
	m := newTestModel(newTestDependencies())
	m = loadTestEntries(t, m, testEntries())

	updated, _ := m.Update(keyRune('D'))
	m = updated.(Model)
	if !m.ui.Details.Visible() {
		t.Fatal("expected details panel")
	}
	if got := m.ui.Details.Entry(); got == nil || got.ID != 3 {
		t.Errorf("expected details for entry 3, got %+v", got)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	m = updated.(Model)
	if m.ui.Details.Visible() {
		t.Error("expected escape to close details")
	}
}

func TestHelpBlocksOtherKeys(t *testing.T) {
	m := newTestModel(newTestDependencies())
	m = loadTestEntries(t, m, testEntries())

	updated, _ := m.Update(keyRune('?'))
	m = updated.(Model)
	if m.ui.Focus.Current() != ui.FocusHelp {
		t.Fatalf("expected help focus, got %v", m.ui.Focus.Current())
	}

	updated, _ = m.Update(keyRune('n'))
	m = updated.(Model)
	if m.ui.EntryForm.Visible() {
		t.Error("expected feature keys ignored while help is open")
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	m = updated.(Model)
	if m.ui.Focus.Current() == ui.FocusHelp {
		t.Error("expected escape to close help")
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(newTestDependencies())

	updated, cmd := m.Update(keyRune('q'))
	m = updated.(Model)

	if !m.quitting {
		t.Error("expected quitting flag")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestViewRendersEntries(t *testing.T) {
	m := newTestModel(newTestDependencies())
	m = loadTestEntries(t, m, testEntries())

	view := m.View()
	for _, want := range []string{"Third post", "3 entries", "? help"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}
