package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

// HeaderData contains the data displayed in the header
type HeaderData struct {
	ServerURL     string
	DefaultTarget string // Default translation target language name
}

// HeaderState represents the current state of the header
type HeaderState int

const (
	HeaderLoading HeaderState = iota
	HeaderRunning
	HeaderDone
	HeaderError
)

// Header renders the top header bar
type Header struct {
	spinner    spinner.Model
	data       *HeaderData
	entryCount int
	statusText string // Text shown next to the spinner while running
	state      HeaderState
	err        error
	loading    bool
	width      int
}

// NewHeader creates a new header component
func NewHeader() Header {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ColorPrimary)

	return Header{
		spinner: s,
		loading: true,
	}
}

// SetData sets the header data
func (h *Header) SetData(data *HeaderData) {
	h.data = data
	h.loading = false
}

// SetError sets an error state
func (h *Header) SetError(err error) {
	h.err = err
	h.loading = false
	h.state = HeaderError
}

// ClearError clears the error state
func (h *Header) ClearError() {
	h.err = nil
	if h.state == HeaderError {
		h.state = HeaderDone
	}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetStatus updates the header state and the text shown while an operation runs
func (h *Header) SetStatus(state HeaderState, text string) {
	h.state = state
	h.statusText = text
}

// SetEntryCount updates the entry count shown in the summary row
func (h *Header) SetEntryCount(count int) {
	h.entryCount = count
}

// IsLoading returns whether the header is in loading state
func (h *Header) IsLoading() bool {
	return h.loading || h.state == HeaderLoading || h.state == HeaderRunning
}

// Spinner returns the spinner model for updates
func (h *Header) Spinner() spinner.Model {
	return h.spinner
}

// SetSpinner updates the spinner model
func (h *Header) SetSpinner(s spinner.Model) {
	h.spinner = s
}

// View renders the header
func (h *Header) View() string {
	var topRow string

	if h.loading {
		topRow = fmt.Sprintf("%s Loading...", h.spinner.View())
	} else if h.err != nil {
		topRow = ErrorStyle.Render(fmt.Sprintf("Error: %v", h.err))
	} else if h.data != nil {
		server := fmt.Sprintf("%s %s",
			LabelStyle.Render("Server:"),
			ValueStyle.Render(h.data.ServerURL))

		target := fmt.Sprintf("%s %s",
			LabelStyle.Render("Translate to:"),
			ValueStyle.Render(orDefault(h.data.DefaultTarget, "(none)")))

		topRow = lipgloss.JoinHorizontal(lipgloss.Center,
			server,
			DimStyle.Render("  │  "),
			target,
		)
	}

	bottomRow := h.renderSummaryRow()

	content := topRow
	if bottomRow != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, topRow, bottomRow)
	}

	return BoxStyle.Width(h.width - 2).Render(content)
}

// renderSummaryRow renders the status and entry count line
func (h *Header) renderSummaryRow() string {
	var parts []string

	switch h.state {
	case HeaderLoading:
		parts = append(parts, fmt.Sprintf("%s %s", h.spinner.View(), DimStyle.Render("Loading...")))
		return strings.Join(parts, "  ")
	case HeaderRunning:
		parts = append(parts, fmt.Sprintf("%s %s", h.spinner.View(), LabelStyle.Render(orDefault(h.statusText, "Working..."))))
	case HeaderError:
		parts = append(parts, ErrorStyle.Render(orDefault(h.statusText, "failed")))
	}

	label := "entries"
	if h.entryCount == 1 {
		label = "entry"
	}
	parts = append(parts, DimStyle.Render(fmt.Sprintf("%d %s", h.entryCount, label)))

	return strings.Join(parts, "  ")
}
