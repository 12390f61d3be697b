package main

import "github.com/rfhold/scribe/internal/api"

// Message types for async command results.
// Simple results are type aliases; compound results are small structs.

// errMsg wraps an error from a failed command
type errMsg error

// entriesMsg carries the full entry list from the server
type entriesMsg []api.Entry

// entrySavedMsg reports a completed create or update
type entrySavedMsg struct {
	entry   *api.Entry
	created bool
}

// entryDeletedMsg reports a completed delete
type entryDeletedMsg struct {
	id    int
	title string
}

// translateDoneMsg carries a translation result. seq pairs the reply with
// the request that produced it.
type translateDoneMsg struct {
	seq    int
	result *api.Translation
}

// translateErrMsg reports a failed translation request
type translateErrMsg struct {
	seq int
	err error
}

// audioOpenedMsg reports the outcome of handing the audio URL to the
// system opener
type audioOpenedMsg struct {
	url string
	err error
}
