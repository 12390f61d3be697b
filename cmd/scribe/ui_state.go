package main

import "github.com/rfhold/scribe/internal/ui"

// UIState holds all UI component state.
// This groups UI-specific concerns (layout, focus, components) separately
// from pure application state, enabling cleaner separation of concerns.
type UIState struct {
	// Layout dimensions
	Width  int
	Height int

	// Focus management
	Focus ui.FocusStack

	// UI Components
	Header         ui.Header
	EntryList      *ui.EntryList
	Help           *ui.HelpDialog
	Details        *ui.DetailPanel
	EntryForm      *ui.EntryForm
	TranslateModal *ui.TranslateModal
	ConfirmModal   *ui.ConfirmModal
	ErrorModal     *ui.ErrorModal
	Toast          *ui.Toast
}

// NewUIState creates a new UIState with initialized components.
func NewUIState() *UIState {
	return &UIState{
		Focus:          ui.NewFocusStack(),
		Header:         ui.NewHeader(),
		EntryList:      ui.NewEntryList(),
		Help:           ui.NewHelpDialog(),
		Details:        ui.NewDetailPanel(),
		EntryForm:      ui.NewEntryForm(),
		TranslateModal: ui.NewTranslateModal(),
		ConfirmModal:   ui.NewConfirmModal(),
		ErrorModal:     ui.NewErrorModal(),
		Toast:          ui.NewToast(),
	}
}
