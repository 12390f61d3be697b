package main

import (
	"log/slog"

	"github.com/pkg/browser"

	"github.com/rfhold/scribe/internal/api"
	"github.com/rfhold/scribe/internal/config"
)

// Dependencies holds all external dependencies for the application.
// Interfaces enable swapping fakes in for testing.
type Dependencies struct {
	// Reader fetches entries from the server
	Reader api.EntryReader
	// Writer mutates entries on the server
	Writer api.EntryWriter
	// Translator requests translations
	Translator api.Translator
	// OpenURL hands a URL to the system opener (audio playback)
	OpenURL func(url string) error
	// Logger for structured logging
	Logger *slog.Logger
}

// NewProductionDependencies creates dependencies backed by the real blog
// server and system browser.
func NewProductionDependencies(cfg config.Config, logger *slog.Logger) *Dependencies {
	client := api.NewClient(cfg.ServerURL)
	return &Dependencies{
		Reader:     client,
		Writer:     client,
		Translator: client,
		OpenURL:    browser.OpenURL,
		Logger:     logger,
	}
}
