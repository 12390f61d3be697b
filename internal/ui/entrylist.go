package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rfhold/scribe/internal/api"
)

// EntryList is the scrollable list of blog entries
type EntryList struct {
	ListBase // Embed common list functionality for loading/error state

	items []api.Entry

	// Cursor & scrolling
	cursor       int
	scrollOffset int

	// Filter state
	filter      FilterState
	filteredIdx []int // Indices into items that match filter (nil = no filter active)
}

// NewEntryList creates a new EntryList component
func NewEntryList() *EntryList {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ColorPrimary)
	l := &EntryList{
		items:  make([]api.Entry, 0),
		filter: NewFilterState(),
	}
	l.SetSpinner(s)
	return l
}

// SetSize sets the dimensions for the list and ensures cursor is visible
func (l *EntryList) SetSize(width, height int) {
	l.ListBase.SetSize(width, height)
	l.ensureCursorVisible()
}

// SetEntries replaces all entries, keeping the cursor on the same entry when possible
func (l *EntryList) SetEntries(entries []api.Entry) {
	var selectedID int
	if sel := l.SelectedEntry(); sel != nil {
		selectedID = sel.ID
	}

	l.items = entries
	l.rebuildFilteredIndex()
	l.cursor = 0
	l.scrollOffset = 0
	l.SetLoading(false, "")
	l.ClearError()

	// Restore cursor position by entry ID
	if selectedID != 0 {
		for i := 0; i < l.effectiveItemCount(); i++ {
			if l.items[l.effectiveIndex(i)].ID == selectedID {
				l.cursor = i
				break
			}
		}
	}
	l.ensureCursorVisible()
}

// Entries returns the current entries
func (l *EntryList) Entries() []api.Entry {
	return l.items
}

// Clear resets the list
func (l *EntryList) Clear() {
	l.items = make([]api.Entry, 0)
	l.filteredIdx = nil
	l.cursor = 0
	l.scrollOffset = 0
	l.filter.Deactivate()
	l.ClearError()
}

// Filter returns the list's filter state
func (l *EntryList) Filter() *FilterState {
	return &l.filter
}

// effectiveItemCount returns the number of entries after filtering
func (l *EntryList) effectiveItemCount() int {
	if l.filteredIdx != nil {
		return len(l.filteredIdx)
	}
	return len(l.items)
}

// effectiveIndex maps a position in the filtered view to an index into items
func (l *EntryList) effectiveIndex(i int) int {
	if l.filteredIdx != nil {
		if i < 0 || i >= len(l.filteredIdx) {
			return -1
		}
		return l.filteredIdx[i]
	}
	return i
}

// rebuildFilteredIndex recomputes which entries match the filter
func (l *EntryList) rebuildFilteredIndex() {
	if !l.filter.ActiveOrApplied() {
		l.filteredIdx = nil
		return
	}
	l.filteredIdx = make([]int, 0, len(l.items))
	for i := range l.items {
		if l.filter.MatchesEntry(l.items[i]) {
			l.filteredIdx = append(l.filteredIdx, i)
		}
	}
	// Keep cursor in range after the match set changes
	l.cursor = MoveCursor(l.cursor, 0, l.effectiveItemCount())
	l.ensureCursorVisible()
}

// visibleHeight returns the number of lines available for entries
func (l *EntryList) visibleHeight() int {
	itemCount := l.effectiveItemCount()
	// Reserve extra line for filter bar when active or applied
	padding := 2 // 1 top, 1 bottom
	if l.filter.ActiveOrApplied() {
		padding++ // extra line for filter bar
	}
	return CalculateVisibleHeight(l.Height(), itemCount, padding)
}

// isScrollable returns true if there are more entries than can fit
func (l *EntryList) isScrollable() bool {
	itemCount := l.effectiveItemCount()
	padding := 2
	if l.filter.ActiveOrApplied() {
		padding++
	}
	return IsScrollable(l.Height(), itemCount, padding)
}

// ensureCursorVisible adjusts scroll offset to keep cursor visible
func (l *EntryList) ensureCursorVisible() {
	itemCount := l.effectiveItemCount()
	l.scrollOffset = EnsureCursorVisible(l.cursor, l.scrollOffset, itemCount, l.visibleHeight())
}

// Update handles key events and returns any commands
func (l *EntryList) Update(msg tea.Msg) tea.Cmd {
	if !l.IsReady() {
		return nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	// Handle filter activation with "/"
	if key.Matches(keyMsg, Keys.Filter) && !l.filter.Active() {
		l.filter.Activate()
		l.rebuildFilteredIndex()
		return nil
	}

	// Forward to filter if active
	if l.filter.Active() {
		cmd, handled := l.filter.Update(keyMsg)
		if handled {
			l.rebuildFilteredIndex()
			return cmd
		}
	}

	l.handleNavigationKeys(keyMsg)
	return nil
}

// ClearFilter deactivates and clears any applied filter
func (l *EntryList) ClearFilter() {
	l.filter.Deactivate()
	l.filter.Clear()
	l.rebuildFilteredIndex()
}

func (l *EntryList) handleNavigationKeys(keyMsg tea.KeyMsg) bool {
	itemCount := l.effectiveItemCount()
	if itemCount == 0 {
		return false
	}
	switch {
	case key.Matches(keyMsg, Keys.Up):
		l.moveCursor(-1)
	case key.Matches(keyMsg, Keys.Down):
		l.moveCursor(1)
	case key.Matches(keyMsg, Keys.PageUp):
		l.moveCursor(-l.visibleHeight())
	case key.Matches(keyMsg, Keys.PageDown):
		l.moveCursor(l.visibleHeight())
	case key.Matches(keyMsg, Keys.Home):
		l.cursor = 0
		l.ensureCursorVisible()
	case key.Matches(keyMsg, Keys.End):
		l.cursor = itemCount - 1
		l.ensureCursorVisible()
	default:
		return false
	}
	return true
}

// moveCursor moves the cursor by delta, clamping to valid range
func (l *EntryList) moveCursor(delta int) {
	itemCount := l.effectiveItemCount()
	l.cursor = MoveCursor(l.cursor, delta, itemCount)
	l.ensureCursorVisible()
}

// AtTop returns true if scrolled to top
func (l *EntryList) AtTop() bool {
	return l.scrollOffset == 0
}

// AtBottom returns true if scrolled to bottom
func (l *EntryList) AtBottom() bool {
	itemCount := l.effectiveItemCount()
	return l.scrollOffset >= itemCount-l.visibleHeight()
}

// SelectedEntry returns a pointer to the currently selected entry, or nil if none
func (l *EntryList) SelectedEntry() *api.Entry {
	itemCount := l.effectiveItemCount()
	if itemCount == 0 || l.cursor < 0 || l.cursor >= itemCount {
		return nil
	}
	itemIdx := l.effectiveIndex(l.cursor)
	if itemIdx < 0 || itemIdx >= len(l.items) {
		return nil
	}
	return &l.items[itemIdx]
}

// View renders the entry list component. A refresh failure with items
// already on screen renders as a banner above them, not instead of them.
func (l *EntryList) View() string {
	if l.IsLoading() {
		if rendered, handled := l.RenderLoadingState(); handled {
			return rendered
		}
	}
	if err := l.Error(); err != nil {
		if len(l.items) == 0 {
			return RenderPaddedError(err)
		}
		banner := lipgloss.NewStyle().Padding(0, 2).Render(ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		return banner + "\n" + l.renderItems()
	}
	return l.renderItems()
}

func (l *EntryList) renderItems() string {
	itemCount := l.effectiveItemCount()

	// Handle filter with no matches
	if l.filter.Applied() && itemCount == 0 {
		var b strings.Builder
		b.WriteString(DimStyle.Render("No matches"))
		b.WriteString("\n\n")
		b.WriteString(RenderFilterBar(&l.filter, 0, len(l.items), l.Width()))
		paddedStyle := lipgloss.NewStyle().Padding(1, 2)
		return paddedStyle.Render(b.String())
	}

	if len(l.items) == 0 {
		return RenderCenteredMessage("No entries. Press n to write one.", l.Width(), l.Height())
	}

	var b strings.Builder
	visible := l.visibleHeight()
	endIdx := min(l.scrollOffset+visible, itemCount)

	scrollable := l.isScrollable()
	canScrollUp := !l.AtTop()
	canScrollDown := !l.AtBottom()

	for i := l.scrollOffset; i < endIdx; i++ {
		itemIdx := l.effectiveIndex(i)
		if itemIdx < 0 || itemIdx >= len(l.items) {
			continue
		}
		line := l.renderItem(l.items[itemIdx], i == l.cursor)
		b.WriteString(line)
		b.WriteString("\n")
	}

	// Add line count hint and scroll arrows at bottom
	if scrollable {
		hint := DimStyle.Render(fmt.Sprintf("  [%d-%d/%d]", l.scrollOffset+1, endIdx, itemCount))
		scrollHint := RenderScrollHint(canScrollUp, canScrollDown, " ")
		b.WriteString(hint)
		if scrollHint != "" {
			b.WriteString(" ")
			b.WriteString(scrollHint)
		}
		b.WriteString("\n")
	}

	// Add filter bar at bottom when active or applied
	if l.filter.ActiveOrApplied() {
		filterBar := RenderFilterBar(&l.filter, itemCount, len(l.items), l.Width())
		b.WriteString(filterBar)
		b.WriteString("\n")
	}

	paddedStyle := lipgloss.NewStyle().Padding(1, 2)
	return paddedStyle.Render(b.String())
}

// renderItem renders a single entry line: cursor, title, date, content preview
func (l *EntryList) renderItem(entry api.Entry, isCursor bool) string {
	cursor := "  "
	titleStyle := ValueStyle
	if isCursor {
		cursor = CursorStyle.Render("> ")
		titleStyle = CursorStyle
	}

	title := truncateRunes(entry.Title, l.maxTitleLen())

	var parts []string
	parts = append(parts, cursor+titleStyle.Render(title))

	if date := entryTime(entry.CreatedAt); date != "" {
		parts = append(parts, DimStyle.Render(date))
	}

	if preview := contentPreview(entry.Content, l.previewLen(lipgloss.Width(title))); preview != "" {
		parts = append(parts, DimStyle.Render(preview))
	}

	line := strings.Join(parts, "  ")
	return lipgloss.NewStyle().MaxWidth(l.Width() - 4).Render(line)
}

// maxTitleLen returns how many title characters fit at the current width
func (l *EntryList) maxTitleLen() int {
	maxTitle := l.Width() / 3
	if maxTitle > DefaultMaxTitleLength {
		maxTitle = DefaultMaxTitleLength
	}
	if maxTitle < MinTitleLength {
		maxTitle = MinTitleLength
	}
	return maxTitle
}

// previewLen returns the room left for the content preview after the title
func (l *EntryList) previewLen(titleLen int) int {
	room := l.Width() - titleLen - 30 // cursor, date, separators
	if room > PreviewMaxLength {
		room = PreviewMaxLength
	}
	if room < 0 {
		room = 0
	}
	return room
}

// contentPreview collapses content to a single truncated line
func contentPreview(content string, maxLen int) string {
	if maxLen <= 3 {
		return ""
	}
	return truncateRunes(strings.Join(strings.Fields(content), " "), maxLen)
}

// truncateRunes shortens s to at most max characters, appending "..." when
// anything was cut. Slicing by rune keeps multi-byte text valid.
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
