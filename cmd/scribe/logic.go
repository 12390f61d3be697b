package main

import (
	"strings"

	"github.com/rfhold/scribe/internal/api"
)

// Pure decision logic, kept free of UI and I/O so it can be tested directly.

// ValidateEntryForm checks form input before any network call.
// Returns nil when the input is acceptable.
func ValidateEntryForm(title, content string) *api.ValidationError {
	if strings.TrimSpace(title) == "" {
		return &api.ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if strings.TrimSpace(content) == "" {
		return &api.ValidationError{Field: "content", Reason: "must not be empty"}
	}
	return nil
}

// AcceptTranslateReply reports whether a translation reply should be
// applied. Replies are dropped when the sequence is stale or the modal
// already closed.
func AcceptTranslateReply(replySeq, currentSeq int, modalVisible bool) bool {
	return modalVisible && replySeq == currentSeq
}

// FormatEntrySavedToast builds the toast text for a completed save.
func FormatEntrySavedToast(title string, created bool) string {
	title = truncateTitle(title, 40)
	if created {
		return "Created \"" + title + "\""
	}
	return "Updated \"" + title + "\""
}

// FormatEntryDeletedToast builds the toast text for a completed delete.
func FormatEntryDeletedToast(title string) string {
	return "Deleted \"" + truncateTitle(title, 40) + "\""
}

// FormatClipboardToast builds the toast text after a copy attempt.
func FormatClipboardToast(success bool) string {
	if success {
		return "Copied content to clipboard"
	}
	return "Copy failed: no clipboard tool found"
}

// truncateTitle shortens a title to maxLen characters. Slicing by rune
// keeps multi-byte titles valid.
func truncateTitle(title string, maxLen int) string {
	runes := []rune(title)
	if len(runes) <= maxLen {
		return title
	}
	return string(runes[:maxLen-3]) + "..."
}
