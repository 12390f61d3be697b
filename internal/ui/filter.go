package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rfhold/scribe/internal/api"
)

// FilterState narrows the entry list to entries whose title or content
// contain the typed text. Active means the user is typing in the input;
// a non-empty value stays applied after the input is left.
type FilterState struct {
	active bool
	input  textinput.Model
}

// NewFilterState creates a new filter state
func NewFilterState() FilterState {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.CharLimit = 100
	ti.Width = 30
	ti.PromptStyle = CursorStyle
	ti.TextStyle = ValueStyle
	return FilterState{input: ti}
}

// Active returns whether the user is currently typing in the filter input
func (f *FilterState) Active() bool {
	return f.active
}

// Applied returns whether filter text is in effect
func (f *FilterState) Applied() bool {
	return f.input.Value() != ""
}

// ActiveOrApplied reports whether the filter affects the list at all
func (f *FilterState) ActiveOrApplied() bool {
	return f.active || f.Applied()
}

// Text returns the current filter text
func (f *FilterState) Text() string {
	return f.input.Value()
}

// Activate enters filter mode, resetting any previous filter text
func (f *FilterState) Activate() {
	f.active = true
	f.input.SetValue("")
	f.input.Focus()
}

// Deactivate leaves the input; any typed text stays applied
func (f *FilterState) Deactivate() {
	f.active = false
	f.input.Blur()
}

// Clear clears the filter text but stays in filter mode
func (f *FilterState) Clear() {
	f.input.SetValue("")
}

// Update handles key events while the input is active.
// Returns (cmd, handled); handled is false when the filter is not active.
func (f *FilterState) Update(msg tea.KeyMsg) (tea.Cmd, bool) {
	if !f.active {
		return nil, false
	}

	switch msg.Type {
	// Both leave the input with the typed text applied
	case tea.KeyEscape, tea.KeyEnter:
		f.Deactivate()
		return nil, true
	default:
		var cmd tea.Cmd
		f.input, cmd = f.input.Update(msg)
		return cmd, true
	}
}

// MatchesEntry reports whether the entry's title or content contain the
// filter text, case-insensitively. An empty filter matches everything.
func (f *FilterState) MatchesEntry(entry api.Entry) bool {
	needle := strings.ToLower(f.input.Value())
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(entry.Title), needle) ||
		strings.Contains(strings.ToLower(entry.Content), needle)
}

// View returns the filter input view
func (f *FilterState) View() string {
	if f.active {
		return f.input.View()
	}
	// Applied but not being edited: static display
	if f.Applied() {
		return DimStyle.Render("/") + ValueStyle.Render(f.input.Value())
	}
	return ""
}

// RenderFilterBar renders the filter input with a match count, e.g. /lisbon (3/10)
func RenderFilterBar(filter *FilterState, matchCount, totalCount, width int) string {
	if !filter.ActiveOrApplied() {
		return ""
	}
	return filter.View() + DimStyle.Render(fmt.Sprintf(" (%d/%d)", matchCount, totalCount))
}
