package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestListAllDecodesEntries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/blogs" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": 2, "title": "Second", "content": "b", "created_at": "2026-08-30T12:00:00", "updated_at": null},
			{"id": 1, "title": "First", "content": "a", "created_at": "2026-08-29T12:00:00", "updated_at": null}
		]`))
	}))
	defer srv.Close()

	entries, err := NewClient(srv.URL).ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].ID != 2 || entries[0].Title != "Second" {
		t.Errorf("first entry = %+v, want ID 2 / Second", entries[0])
	}
	if entries[0].CreatedAt == nil || entries[0].CreatedAt.Day() != 30 {
		t.Errorf("created_at = %v, want parsed Aug 30 timestamp", entries[0].CreatedAt)
	}
	if entries[0].UpdatedAt != nil {
		t.Errorf("updated_at = %v, want nil", entries[0].UpdatedAt)
	}
}

func TestTranslateOmitsAutoSource(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		json.NewEncoder(w).Encode(Translation{ID: 1})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if _, err := c.Translate(context.Background(), 1, SourceAuto, "fr"); err != nil {
		t.Fatalf("Translate returned error: %v", err)
	}

	if _, present := gotQuery["source"]; present {
		t.Errorf("source param sent for auto-detect, query = %v", gotQuery)
	}
	if got := gotQuery["target"]; len(got) != 1 || got[0] != "fr" {
		t.Errorf("target = %v, want [fr]", got)
	}
}

func TestTranslateSendsExplicitSource(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		json.NewEncoder(w).Encode(Translation{
			ID:                7,
			TranslatedContent: "bonjour",
			Info:              TranslationInfo{From: "en", To: "fr"},
			AudioPath:         "/audio/blog_7_audio.mp3",
		})
	}))
	defer srv.Close()

	tr, err := NewClient(srv.URL).Translate(context.Background(), 7, "en", "fr")
	if err != nil {
		t.Fatalf("Translate returned error: %v", err)
	}

	if gotPath != "/blogs/7/translate" {
		t.Errorf("path = %q, want /blogs/7/translate", gotPath)
	}
	if got := gotQuery["source"]; len(got) != 1 || got[0] != "en" {
		t.Errorf("source = %v, want [en]", got)
	}
	if tr.TranslatedContent != "bonjour" {
		t.Errorf("translated content = %q, want bonjour", tr.TranslatedContent)
	}
	if tr.AudioPath != "/audio/blog_7_audio.mp3" {
		t.Errorf("audio path = %q", tr.AudioPath)
	}
}

func TestAudioURLJoinsBaseAndPath(t *testing.T) {
	c := NewClient("http://localhost:5000")
	got := c.AudioURL("/audio/blog_3_audio.mp3")
	want := "http://localhost:5000/audio/blog_3_audio.mp3"
	if got != want {
		t.Errorf("AudioURL = %q, want %q", got, want)
	}
}

func TestAudioURLStripsTrailingSlashFromBase(t *testing.T) {
	c := NewClient("http://localhost:5000/")
	got := c.AudioURL("/audio/x.mp3")
	want := "http://localhost:5000/audio/x.mp3"
	if got != want {
		t.Errorf("AudioURL = %q, want %q", got, want)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "Blog not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).GetByID(context.Background(), 42)
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("got %T (%v), want *NotFoundError", err, err)
	}
	if nf.ID != 42 {
		t.Errorf("not-found ID = %d, want 42", nf.ID)
	}
}

func TestServerErrorCarriesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "translation failed"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Translate(context.Background(), 1, SourceAuto, "en")
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("got %T (%v), want *StatusError", err, err)
	}
	if se.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", se.StatusCode)
	}
	if se.Message != "translation failed" {
		t.Errorf("message = %q, want translation failed", se.Message)
	}
}

func TestTransportErrorOnUnreachableServer(t *testing.T) {
	// Reserve a port, then close it so the connection is refused.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close()

	_, err := NewClient(addr).ListAll(context.Background())
	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("got %T (%v), want *TransportError", err, err)
	}
}

func TestCreateSendsJSONBody(t *testing.T) {
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Entry{ID: 9, Title: gotBody["title"], Content: gotBody["content"]})
	}))
	defer srv.Close()

	entry, err := NewClient(srv.URL).Create(context.Background(), "Hello", "World")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if gotBody["title"] != "Hello" || gotBody["content"] != "World" {
		t.Errorf("request body = %v", gotBody)
	}
	if entry.ID != 9 {
		t.Errorf("entry ID = %d, want 9", entry.ID)
	}
}

func TestUpdateAndDeleteTargetEntryPath(t *testing.T) {
	var gotRequests []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequests = append(gotRequests, r.Method+" "+r.URL.Path)
		if r.Method == http.MethodDelete {
			json.NewEncoder(w).Encode(map[string]string{"message": "deleted"})
			return
		}
		json.NewEncoder(w).Encode(Entry{ID: 5})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if _, err := c.Update(context.Background(), 5, "t", "c"); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if err := c.Delete(context.Background(), 5); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	want := []string{"PUT /blogs/5", "DELETE /blogs/5"}
	if len(gotRequests) != 2 || gotRequests[0] != want[0] || gotRequests[1] != want[1] {
		t.Errorf("requests = %v, want %v", gotRequests, want)
	}
}
