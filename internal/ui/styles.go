package ui

import "github.com/charmbracelet/lipgloss"

// Color palette (Tokyo Night)
var (
	ColorPrimary   = lipgloss.Color("#7aa2f7")
	ColorSecondary = lipgloss.Color("#bb9af7")
	ColorText      = lipgloss.Color("#c0caf5")
	ColorDim       = lipgloss.Color("#565f89")
	ColorError     = lipgloss.Color("#f7768e")
	ColorBg        = lipgloss.Color("#1a1b26")
	ColorSelection = lipgloss.Color("#283457") // subtle selection highlight

	// Accent colors for operations and status
	ColorCreate    = lipgloss.Color("#9ece6a") // green
	ColorUpdate    = lipgloss.Color("#e0af68") // yellow/orange
	ColorDelete    = lipgloss.Color("#f7768e") // red
	ColorTranslate = lipgloss.Color("#bb9af7") // purple
	ColorRefresh   = lipgloss.Color("#7dcfff") // cyan
	ColorSuccess   = lipgloss.Color("#9ece6a") // green (same as create)
)

// Styles
var (
	// Text styles
	LabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorDim)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	TranslateStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorTranslate)

	// Box styles
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDim).
			Padding(0, 1)

	// Dialog styles
	DialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2)

	DialogTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary).
				MarginBottom(1)

	// Scroll indicator styles - bright cyan for high visibility
	ScrollIndicatorStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorRefresh)

	// Cursor and selection styles
	CursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SelectionStyle = lipgloss.NewStyle().
			Background(ColorSelection)

	// Focused/blurred form field labels
	FieldFocusedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary)

	FieldBlurredStyle = lipgloss.NewStyle().
				Foreground(ColorDim)
)

// Layout constants for UI components
const (
	// Text input widths
	DefaultInputWidth = 50

	// Modal and dialog dimensions
	DefaultModalMaxHeight  = 20
	DefaultDialogMaxWidth  = 80
	DefaultDialogMaxHeight = 30
	MinContentWidth        = 20
	MinContentHeight       = 5
	DialogPaddingAllowance = 6  // Padding around dialog content
	DialogChromeAllowance  = 10 // Title, summary, footer space

	// Entry list rendering
	DefaultMaxTitleLength = 60
	MinTitleLength        = 20
	PreviewMaxLength      = 80
)
