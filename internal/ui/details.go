package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rfhold/scribe/internal/api"
)

// DetailPanel is a floating panel showing the full content of an entry
type DetailPanel struct {
	PanelBase // Embed common panel functionality

	// Current entry being displayed
	entry *api.Entry
}

// NewDetailPanel creates a new detail panel component
func NewDetailPanel() *DetailPanel {
	return &DetailPanel{}
}

// SetEntry sets the entry to display details for
func (d *DetailPanel) SetEntry(entry *api.Entry) {
	d.entry = entry
	d.ResetScroll()
}

// Entry returns the entry currently displayed
func (d *DetailPanel) Entry() *api.Entry {
	return d.entry
}

// View renders the detail panel
func (d *DetailPanel) View() string {
	if !d.Visible() || d.Width() == 0 || d.Height() == 0 {
		return ""
	}

	// Build header with entry title
	header := "Details"
	if d.entry != nil {
		header = d.entry.Title
	}

	var content string
	if d.entry == nil {
		content = DimStyle.Render("No entry selected")
	} else {
		content = d.renderEntry()
	}

	// Use shared helper for common panel rendering
	result := RenderDetailPanel(DetailPanelContent{
		Header:       header,
		Content:      content,
		Width:        d.Width(),
		Height:       d.Height(),
		ScrollOffset: d.ScrollOffset(),
	})

	// Update scroll offset if it was clamped
	if result.NewScrollOffset != d.ScrollOffset() {
		d.SetScrollOffset(result.NewScrollOffset)
	}

	return result.Rendered
}

// renderEntry renders the entry metadata and word-wrapped content
func (d *DetailPanel) renderEntry() string {
	var b strings.Builder
	maxWidth := d.Width() - 8
	if maxWidth < MinContentWidth {
		maxWidth = MinContentWidth
	}

	// Compact metadata header
	b.WriteString(DimStyle.Render("ID: "))
	b.WriteString(ValueStyle.Render(fmt.Sprintf("%d", d.entry.ID)))
	b.WriteString("\n")

	if created := entryTime(d.entry.CreatedAt); created != "" {
		b.WriteString(DimStyle.Render("Created: "))
		b.WriteString(ValueStyle.Render(created))
	}
	if updated := entryTime(d.entry.UpdatedAt); updated != "" {
		b.WriteString("  ")
		b.WriteString(DimStyle.Render("Updated: "))
		b.WriteString(ValueStyle.Render(updated))
	}
	b.WriteString("\n")

	b.WriteString("\n")
	b.WriteString(DimStyle.Render("─── Content ───"))
	b.WriteString("\n\n")

	wrapped := lipgloss.NewStyle().Width(maxWidth).Render(d.entry.Content)
	b.WriteString(ValueStyle.Render(wrapped))

	return b.String()
}

// entryTime formats an entry timestamp for display
func entryTime(ts *api.Timestamp) string {
	if ts == nil {
		return ""
	}
	return FormatTime(&ts.Time, "2006-01-02 15:04")
}
