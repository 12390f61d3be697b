package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rfhold/scribe/internal/config"
	"github.com/rfhold/scribe/internal/telemetry"
)

// Package-level variables for CLI arguments
var serverURL string
var targetLang string
var debug bool

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	default:
		return m.handleMessage(msg)
	}
}

func main() {
	flag.StringVar(&serverURL, "s", "", "Blog server base `url`")
	flag.StringVar(&serverURL, "server", "", "Blog server base `url`")
	flag.StringVar(&targetLang, "t", "", "Default translation target `language`")
	flag.StringVar(&targetLang, "target", "", "Default translation target `language`")
	flag.BoolVar(&debug, "d", false, "Enable debug logging to stderr")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging to stderr")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: scribe [flags]\n\n")
		fmt.Fprintf(os.Stderr, "A terminal client for writing and translating blog entries.\n")
		fmt.Fprintf(os.Stderr, "\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	launchDir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, cfgPath, err := config.Load(launchDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Flags override the config file and environment
	if serverURL != "" {
		cfg.ServerURL = serverURL
	}
	if targetLang != "" {
		cfg.DefaultTarget = targetLang
	}
	if debug {
		cfg.Debug = true
	}

	ctx := context.Background()
	tel, err := telemetry.Setup(ctx, telemetry.Options{Debug: cfg.Debug})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = tel.Shutdown(ctx)
	}()

	deps := NewProductionDependencies(cfg, tel.Logger)
	deps.Logger.Info("starting",
		"server", cfg.ServerURL,
		"target", cfg.DefaultTarget,
		"config", cfgPath,
	)

	appCtx := AppContext{
		ServerURL:     cfg.ServerURL,
		DefaultTarget: cfg.DefaultTarget,
		ConfigPath:    cfgPath,
	}

	p := tea.NewProgram(initialModel(ctx, appCtx, deps), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
