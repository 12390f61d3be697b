//go:build integration

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/muesli/termenv"

	"github.com/rfhold/scribe/internal/api"
)

func init() {
	// Force consistent color profile for reproducible tests across environments
	lipgloss.SetColorProfile(termenv.Ascii)
}

const (
	termWidth  = 120
	termHeight = 40
)

// blogServer is a minimal in-memory stand-in for the blog backend.
type blogServer struct {
	mu      sync.Mutex
	entries []map[string]any
	nextID  int
}

func newBlogServer() *blogServer {
	return &blogServer{
		entries: []map[string]any{
			{"id": 2, "title": "Second post", "content": "More words", "created_at": "2024-02-01T10:00:00", "updated_at": nil},
			{"id": 1, "title": "First post", "content": "Some words", "created_at": "2024-01-01T10:00:00", "updated_at": nil},
		},
		nextID: 3,
	}
}

func (s *blogServer) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/blogs", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, s.entries)
		case http.MethodPost:
			var req map[string]any
			_ = json.NewDecoder(r.Body).Decode(&req)
			entry := map[string]any{
				"id":         s.nextID,
				"title":      req["title"],
				"content":    req["content"],
				"created_at": "2024-03-01T10:00:00",
				"updated_at": nil,
			}
			s.nextID++
			s.entries = append([]map[string]any{entry}, s.entries...)
			w.WriteHeader(http.StatusCreated)
			writeJSON(w, entry)
		}
	})
	mux.HandleFunc("/blogs/", func(w http.ResponseWriter, r *http.Request) {
		rest := strings.TrimPrefix(r.URL.Path, "/blogs/")
		if id, ok := strings.CutSuffix(rest, "/translate"); ok {
			entryID, _ := strconv.Atoi(id)
			writeJSON(w, map[string]any{
				"id":                 entryID,
				"original_content":   "More words",
				"translated_content": "Plus de mots",
				"translation_info":   map[string]string{"from": "en", "to": "fr"},
				"audio_path":         "/audio/out.mp3",
			})
			return
		}
		http.NotFound(w, r)
	})
	return mux
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func startIntegrationModel(t *testing.T, srv *httptest.Server) *teatest.TestModel {
	t.Helper()

	client := api.NewClient(srv.URL)
	deps := &Dependencies{
		Reader:     client,
		Writer:     client,
		Translator: client,
		OpenURL:    func(string) error { return nil },
		Logger:     slog.New(slog.NewTextHandler(discardWriter{}, nil)),
	}
	appCtx := AppContext{
		ServerURL:     srv.URL,
		DefaultTarget: "fr",
	}

	m := initialModel(context.Background(), appCtx, deps)
	return teatest.NewTestModel(t, m, teatest.WithInitialTermSize(termWidth, termHeight))
}

func waitForOutput(t *testing.T, tm *teatest.TestModel, want string) {
	t.Helper()
	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return bytes.Contains(bts, []byte(want))
	}, teatest.WithCheckInterval(50*time.Millisecond), teatest.WithDuration(5*time.Second))
}

func sendRunes(tm *teatest.TestModel, s string) {
	for _, r := range s {
		tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func quit(t *testing.T, tm *teatest.TestModel) {
	t.Helper()
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))
}

func TestIntegration_LoadsEntriesFromServer(t *testing.T) {
	srv := httptest.NewServer(newBlogServer().handler())
	defer srv.Close()

	tm := startIntegrationModel(t, srv)
	waitForOutput(t, tm, "Second post")
	quit(t, tm)
}

func TestIntegration_CreateEntryRoundTrip(t *testing.T) {
	srv := httptest.NewServer(newBlogServer().handler())
	defer srv.Close()

	tm := startIntegrationModel(t, srv)
	waitForOutput(t, tm, "Second post")

	sendRunes(tm, "n")
	waitForOutput(t, tm, "New Entry")
	sendRunes(tm, "Fresh ideas")
	tm.Send(tea.KeyMsg{Type: tea.KeyTab})
	sendRunes(tm, "Written from a test")
	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlS})

	// Save toast, then the refreshed list with the new entry
	waitForOutput(t, tm, `Created "Fresh ideas"`)
	waitForOutput(t, tm, "Fresh ideas")
	quit(t, tm)
}

func TestIntegration_TranslateFlow(t *testing.T) {
	srv := httptest.NewServer(newBlogServer().handler())
	defer srv.Close()

	tm := startIntegrationModel(t, srv)
	waitForOutput(t, tm, "Second post")

	sendRunes(tm, "t")
	waitForOutput(t, tm, "Auto-detect")
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
	waitForOutput(t, tm, "Plus de mots")

	tm.Send(tea.KeyMsg{Type: tea.KeyEscape})
	quit(t, tm)
}

func TestIntegration_DeleteRequiresConfirmation(t *testing.T) {
	srv := httptest.NewServer(newBlogServer().handler())
	defer srv.Close()

	tm := startIntegrationModel(t, srv)
	waitForOutput(t, tm, "Second post")

	sendRunes(tm, "x")
	waitForOutput(t, tm, "Delete Entry")
	sendRunes(tm, "n")
	quit(t, tm)
}

func TestIntegration_HelpOverlay(t *testing.T) {
	srv := httptest.NewServer(newBlogServer().handler())
	defer srv.Close()

	tm := startIntegrationModel(t, srv)
	waitForOutput(t, tm, "Second post")

	sendRunes(tm, "?")
	waitForOutput(t, tm, "Keyboard Shortcuts")
	tm.Send(tea.KeyMsg{Type: tea.KeyEscape})
	quit(t, tm)
}
