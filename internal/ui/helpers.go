package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

// RenderCenteredLoading renders a loading state with spinner centered in the given dimensions
func RenderCenteredLoading(spin spinner.Model, msg string, width, height int) string {
	if msg == "" {
		msg = "Loading..."
	}
	content := fmt.Sprintf("%s %s", spin.View(), msg)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// RenderCenteredMessage renders a dim message centered in the given dimensions
func RenderCenteredMessage(msg string, width, height int) string {
	content := DimStyle.Render(msg)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// RenderPaddedError renders an error with padding
func RenderPaddedError(err error) string {
	paddedStyle := lipgloss.NewStyle().Padding(1, 2)
	errMsg := ErrorStyle.Render(fmt.Sprintf("Error: %v", err))
	return paddedStyle.Render(errMsg)
}

// FormatTime formats a timestamp for display.
// Returns an empty string for nil or zero timestamps.
func FormatTime(t *time.Time, format string) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(format)
}

// FormatTimeStyled formats a timestamp with the given style.
// Returns an empty string for nil or zero timestamps.
func FormatTimeStyled(t *time.Time, format string, style lipgloss.Style) string {
	formatted := FormatTime(t, format)
	if formatted == "" {
		return ""
	}
	return style.Render(formatted)
}

// ScrollIndicatorConfig configures the scroll indicator rendering
type ScrollIndicatorConfig struct {
	Padding       string // Padding before the arrow (default: "  ")
	IncludeMore   bool   // Whether to include "more" text after the arrow
	TrailingSpace bool   // Whether to reserve space when indicator is not shown (prevents layout jumps)
}

// DefaultScrollConfig returns the default scroll indicator configuration
func DefaultScrollConfig() ScrollIndicatorConfig {
	return ScrollIndicatorConfig{
		Padding:       "  ",
		IncludeMore:   false,
		TrailingSpace: true,
	}
}

// RenderScrollUpIndicator renders an up scroll indicator with proper spacing.
// Returns styled arrow if canScroll is true, otherwise returns empty spacing.
func RenderScrollUpIndicator(canScroll bool) string {
	return RenderScrollUpIndicatorWithConfig(canScroll, DefaultScrollConfig())
}

// RenderScrollDownIndicator renders a down scroll indicator with proper spacing.
// Returns styled arrow if canScroll is true, otherwise returns empty spacing.
func RenderScrollDownIndicator(canScroll bool) string {
	return RenderScrollDownIndicatorWithConfig(canScroll, DefaultScrollConfig())
}

// RenderScrollUpIndicatorWithConfig renders an up scroll indicator with custom configuration.
func RenderScrollUpIndicatorWithConfig(canScroll bool, config ScrollIndicatorConfig) string {
	if canScroll {
		arrow := config.Padding + "▲"
		if config.IncludeMore {
			arrow += " more"
		}
		return ScrollIndicatorStyle.Render(arrow) + "\n"
	}
	if config.TrailingSpace {
		// Calculate equivalent spacing
		spaceLen := len(config.Padding) + 1 // padding + arrow
		if config.IncludeMore {
			spaceLen += 5 // " more"
		}
		return strings.Repeat(" ", spaceLen) + "\n"
	}
	return ""
}

// RenderScrollDownIndicatorWithConfig renders a down scroll indicator with custom configuration.
func RenderScrollDownIndicatorWithConfig(canScroll bool, config ScrollIndicatorConfig) string {
	if canScroll {
		arrow := config.Padding + "▼"
		if config.IncludeMore {
			arrow += " more"
		}
		return ScrollIndicatorStyle.Render(arrow) + "\n"
	}
	if config.TrailingSpace {
		// Calculate equivalent spacing
		spaceLen := len(config.Padding) + 1 // padding + arrow
		if config.IncludeMore {
			spaceLen += 5 // " more"
		}
		return strings.Repeat(" ", spaceLen) + "\n"
	}
	return ""
}

// RenderScrollIndicators renders both up and down scroll indicators based on current scroll state.
// Returns upIndicator, downIndicator strings (both include newlines when non-empty).
func RenderScrollIndicators(isScrollable, canScrollUp, canScrollDown bool, config ScrollIndicatorConfig) (upIndicator, downIndicator string) {
	if !isScrollable {
		return "", ""
	}
	upIndicator = RenderScrollUpIndicatorWithConfig(canScrollUp, config)
	downIndicator = RenderScrollDownIndicatorWithConfig(canScrollDown, config)
	return upIndicator, downIndicator
}

// RenderScrollHint renders a text-based scroll hint for dialogs/modals.
// This uses text like "▲▼ more" rather than arrow symbols for inline hints.
func RenderScrollHint(canScrollUp, canScrollDown bool, padding string) string {
	if canScrollUp && canScrollDown {
		return ScrollIndicatorStyle.Render(padding + "▲▼ more")
	} else if canScrollUp {
		return ScrollIndicatorStyle.Render(padding + "▲ more above")
	} else if canScrollDown {
		return ScrollIndicatorStyle.Render(padding + "▼ more below")
	}
	return ""
}

// DetailPanelContent holds the parameters for rendering a detail panel
type DetailPanelContent struct {
	Header       string // Header text (e.g., entry title)
	Content      string // Main content to display
	Width        int    // Panel width
	Height       int    // Panel height
	ScrollOffset int    // Current scroll position
}

// DetailPanelResult holds the result of rendering a detail panel
type DetailPanelResult struct {
	Rendered        string   // The fully rendered panel
	VisibleLines    []string // The visible content lines
	NewScrollOffset int      // Adjusted scroll offset (clamped to valid range)
}

// RenderDetailPanel renders a scrollable detail panel with header and content.
func RenderDetailPanel(params DetailPanelContent) DetailPanelResult {
	panelWidth := params.Width
	panelHeight := params.Height

	// Build header
	header := LabelStyle.Render(params.Header)

	// Calculate content height (subtract header, blank line, border, padding)
	headerHeight := lipgloss.Height(header)
	contentHeight := panelHeight - headerHeight - 5 // header + blank line + border(2) + padding(2)
	if contentHeight < 1 {
		contentHeight = 1
	}

	// Apply scrolling to content
	contentLines := strings.Split(params.Content, "\n")
	scrollOffset := params.ScrollOffset
	if scrollOffset >= len(contentLines) {
		scrollOffset = len(contentLines) - 1
		if scrollOffset < 0 {
			scrollOffset = 0
		}
	}

	// Get visible portion
	endIdx := scrollOffset + contentHeight
	if endIdx > len(contentLines) {
		endIdx = len(contentLines)
	}
	visibleLines := contentLines[scrollOffset:endIdx]
	visibleContent := strings.Join(visibleLines, "\n")

	// Add scroll indicator if needed
	if len(contentLines) > contentHeight {
		scrollInfo := DimStyle.Render(fmt.Sprintf(" [%d/%d]", scrollOffset+1, len(contentLines)))
		header = header + scrollInfo
	}

	// Combine header and content
	body := lipgloss.JoinVertical(lipgloss.Left, header, "", visibleContent)

	// Style the panel with border
	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2).
		Width(panelWidth - 2).
		Height(panelHeight - 2)

	return DetailPanelResult{
		Rendered:        panelStyle.Render(body),
		VisibleLines:    visibleLines,
		NewScrollOffset: scrollOffset,
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
