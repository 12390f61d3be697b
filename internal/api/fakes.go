package api

import "context"

// FakeEntryReader implements EntryReader for testing.
// Configure behavior via function fields, and track calls via the Calls struct.
type FakeEntryReader struct {
	// ListAllFunc optionally configures ListAll behavior.
	// If nil, returns Entries.
	ListAllFunc func(ctx context.Context) ([]Entry, error)

	// GetByIDFunc optionally configures GetByID behavior.
	GetByIDFunc func(ctx context.Context, id int) (*Entry, error)

	// Default return values (used when funcs are nil)
	Entries []Entry

	// Calls tracks all method invocations.
	Calls struct {
		ListAll int
		GetByID []int
	}
}

func (f *FakeEntryReader) ListAll(ctx context.Context) ([]Entry, error) {
	f.Calls.ListAll++
	if f.ListAllFunc != nil {
		return f.ListAllFunc(ctx)
	}
	return f.Entries, nil
}

func (f *FakeEntryReader) GetByID(ctx context.Context, id int) (*Entry, error) {
	f.Calls.GetByID = append(f.Calls.GetByID, id)
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, id)
	}
	for i := range f.Entries {
		if f.Entries[i].ID == id {
			return &f.Entries[i], nil
		}
	}
	return nil, &NotFoundError{ID: id}
}

// FakeEntryWriter implements EntryWriter for testing.
type FakeEntryWriter struct {
	// CreateFunc optionally configures Create behavior.
	CreateFunc func(ctx context.Context, title, content string) (*Entry, error)

	// UpdateFunc optionally configures Update behavior.
	UpdateFunc func(ctx context.Context, id int, title, content string) (*Entry, error)

	// DeleteFunc optionally configures Delete behavior.
	DeleteFunc func(ctx context.Context, id int) error

	// Error is the default error to return (nil for success).
	Error error

	// Calls tracks all method invocations.
	Calls struct {
		Create []WriteCall
		Update []WriteCall
		Delete []int
	}
}

// WriteCall records a call to Create or Update. ID is zero for Create.
type WriteCall struct {
	ID      int
	Title   string
	Content string
}

func (f *FakeEntryWriter) Create(ctx context.Context, title, content string) (*Entry, error) {
	f.Calls.Create = append(f.Calls.Create, WriteCall{0, title, content})
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, title, content)
	}
	if f.Error != nil {
		return nil, f.Error
	}
	return &Entry{ID: len(f.Calls.Create), Title: title, Content: content}, nil
}

func (f *FakeEntryWriter) Update(ctx context.Context, id int, title, content string) (*Entry, error) {
	f.Calls.Update = append(f.Calls.Update, WriteCall{id, title, content})
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, id, title, content)
	}
	if f.Error != nil {
		return nil, f.Error
	}
	return &Entry{ID: id, Title: title, Content: content}, nil
}

func (f *FakeEntryWriter) Delete(ctx context.Context, id int) error {
	f.Calls.Delete = append(f.Calls.Delete, id)
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, id)
	}
	return f.Error
}

// FakeTranslator implements Translator for testing.
type FakeTranslator struct {
	// TranslateFunc optionally configures Translate behavior.
	TranslateFunc func(ctx context.Context, id int, source, target string) (*Translation, error)

	// AudioURLFunc optionally configures AudioURL behavior.
	AudioURLFunc func(path string) string

	// Default return value (used when TranslateFunc is nil)
	Result *Translation

	// Calls tracks all method invocations.
	Calls struct {
		Translate []TranslateCall
		AudioURL  []string
	}
}

// TranslateCall records a call to Translate.
type TranslateCall struct {
	ID     int
	Source string
	Target string
}

func (f *FakeTranslator) Translate(ctx context.Context, id int, source, target string) (*Translation, error) {
	f.Calls.Translate = append(f.Calls.Translate, TranslateCall{id, source, target})
	if f.TranslateFunc != nil {
		return f.TranslateFunc(ctx, id, source, target)
	}
	if f.Result != nil {
		return f.Result, nil
	}
	return &Translation{ID: id, Info: TranslationInfo{From: source, To: target}}, nil
}

func (f *FakeTranslator) AudioURL(path string) string {
	f.Calls.AudioURL = append(f.Calls.AudioURL, path)
	if f.AudioURLFunc != nil {
		return f.AudioURLFunc(path)
	}
	return "http://localhost:5000" + path
}

// Compile-time interface compliance checks
var (
	_ EntryReader = (*FakeEntryReader)(nil)
	_ EntryWriter = (*FakeEntryWriter)(nil)
	_ Translator  = (*FakeTranslator)(nil)
)
