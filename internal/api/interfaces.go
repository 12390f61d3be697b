package api

import "context"

// EntryReader handles read-only entry queries.
type EntryReader interface {
	// ListAll returns every entry, in the server's order (newest first).
	ListAll(ctx context.Context) ([]Entry, error)

	// GetByID returns a single entry.
	GetByID(ctx context.Context, id int) (*Entry, error)
}

// EntryWriter handles entry mutations.
type EntryWriter interface {
	// Create stores a new entry and returns it with server-assigned fields.
	Create(ctx context.Context, title, content string) (*Entry, error)

	// Update replaces an entry's title and content.
	Update(ctx context.Context, id int, title, content string) (*Entry, error)

	// Delete removes an entry.
	Delete(ctx context.Context, id int) error
}

// Translator handles the translation service.
type Translator interface {
	// Translate translates an entry's content from source to target.
	// Pass SourceAuto as source to let the server detect the language.
	Translate(ctx context.Context, id int, source, target string) (*Translation, error)

	// AudioURL resolves a server-relative audio path to an absolute URL.
	// It performs no I/O.
	AudioURL(path string) string
}
