package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rfhold/scribe/internal/ui"
)

// AppContext holds per-launch settings resolved from flags, config file
// and environment before the program starts.
type AppContext struct {
	// ServerURL is the base URL of the blog server
	ServerURL string
	// DefaultTarget is the preselected translation target language
	DefaultTarget string
	// ConfigPath is the config file that was loaded, empty if none
	ConfigPath string
}

// Model is the main application model
type Model struct {
	// Pure application state
	state *AppState

	// UI component state
	ui *UIState

	// External dependencies (injected for testability)
	deps *Dependencies

	// Per-launch settings
	ctx AppContext

	// Application context for async commands
	appCtx context.Context

	quitting bool
}

func initialModel(appCtx context.Context, ctx AppContext, deps *Dependencies) Model {
	m := Model{
		state:  NewAppState(),
		ui:     NewUIState(),
		deps:   deps,
		ctx:    ctx,
		appCtx: appCtx,
	}

	m.ui.Header.SetData(&ui.HeaderData{
		ServerURL:     ctx.ServerURL,
		DefaultTarget: ctx.DefaultTarget,
	})
	m.ui.Header.SetStatus(ui.HeaderLoading, "Connecting...")

	return m
}

// Init starts the spinners and the initial entry fetch
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.ui.Header.Spinner().Tick,
		m.ui.EntryList.Spinner().Tick,
		m.initLoadEntries(),
	)
}
