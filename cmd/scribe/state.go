package main

import "github.com/rfhold/scribe/internal/api"

// InitState tracks the startup sequence.
type InitState int

const (
	// InitLoadingEntries is the initial fetch of the entry list
	InitLoadingEntries InitState = iota
	// InitComplete means the first fetch finished (with or without entries)
	InitComplete
	// InitError means the first fetch failed; the list shows the error
	InitError
)

func (s InitState) String() string {
	switch s {
	case InitLoadingEntries:
		return "loading_entries"
	case InitComplete:
		return "complete"
	case InitError:
		return "error"
	default:
		return "unknown"
	}
}

// ModalState identifies which entity dialog is open. At most one entity
// dialog exists at a time; the confirm, error, and help overlays are not
// part of this enum.
type ModalState int

const (
	ModalClosed ModalState = iota
	ModalCreate
	ModalEdit
	ModalTranslate
)

func (s ModalState) String() string {
	switch s {
	case ModalClosed:
		return "closed"
	case ModalCreate:
		return "create"
	case ModalEdit:
		return "edit"
	case ModalTranslate:
		return "translate"
	default:
		return "unknown"
	}
}

// TranslateState tracks the translation workflow inside the translate
// dialog.
type TranslateState int

const (
	TranslateIdle TranslateState = iota
	TranslateRequesting
	TranslateResultShown
)

func (s TranslateState) String() string {
	switch s {
	case TranslateIdle:
		return "idle"
	case TranslateRequesting:
		return "requesting"
	case TranslateResultShown:
		return "result_shown"
	default:
		return "unknown"
	}
}

// PendingOperation represents an operation queued while the app is busy
type PendingOperation struct {
	Type string // Operation type: "refresh" etc.
	Data any    // Optional data needed for the operation
}

// AppState holds pure application state (no UI components).
// This can be serialized, compared, and tested independently of UI concerns.
// The separation enables easier unit testing of business logic.
type AppState struct {
	// Initialization state machine
	InitState InitState

	// Entity dialog state machine
	ModalState ModalState
	// Selected is the entry the open dialog operates on, nil for create
	Selected *api.Entry

	// Translation workflow state machine
	TranslateState TranslateState

	// TranslateSeq numbers translation requests. Replies carrying an older
	// sequence are dropped; the user already moved on.
	TranslateSeq int

	// Error state
	Err error

	// BusyLock is the reason we're busy (empty string means not busy)
	BusyLock string
	// PendingOps are operations queued to run when the busy lock is released
	PendingOps []PendingOperation
}

// NewAppState creates initial application state with default values
func NewAppState() *AppState {
	return &AppState{
		InitState: InitLoadingEntries,
	}
}

// OpenModal transitions to an entity dialog state. It returns false when
// another entity dialog is already open; callers must not render a second
// dialog in that case.
func (s *AppState) OpenModal(modal ModalState, entry *api.Entry) bool {
	if s.ModalState != ModalClosed {
		return false
	}
	s.ModalState = modal
	s.Selected = entry
	return true
}

// CloseModal returns to the closed dialog state, clearing the selection
// and any translation progress. Closing a translate dialog advances the
// sequence so an in-flight reply cannot land in a reopened dialog.
func (s *AppState) CloseModal() {
	if s.ModalState == ModalTranslate {
		s.TranslateSeq++
	}
	s.ModalState = ModalClosed
	s.Selected = nil
	s.TranslateState = TranslateIdle
}

// SetBusy sets the busy lock with a reason
func (s *AppState) SetBusy(reason string) {
	s.BusyLock = reason
}

// ClearBusy clears the busy lock and returns any pending operations
func (s *AppState) ClearBusy() []PendingOperation {
	ops := s.PendingOps
	s.BusyLock = ""
	s.PendingOps = nil
	return ops
}

// IsBusy returns true if the app is busy
func (s *AppState) IsBusy() bool {
	return s.BusyLock != ""
}

// QueueOperation adds an operation to the pending queue
func (s *AppState) QueueOperation(op PendingOperation) {
	s.PendingOps = append(s.PendingOps, op)
}

// NextTranslateSeq increments and returns the translation sequence number.
func (s *AppState) NextTranslateSeq() int {
	s.TranslateSeq++
	return s.TranslateSeq
}
