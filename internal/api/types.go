package api

import (
	"bytes"
	"fmt"
	"time"
)

// Entry is a single blog entry as the server represents it.
type Entry struct {
	ID        int        `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	CreatedAt *Timestamp `json:"created_at"`
	UpdatedAt *Timestamp `json:"updated_at"`
}

// Timestamp is a time.Time that also decodes the server's timezone-less
// ISO 8601 format ("2026-08-30T12:00:00").
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	s := string(bytes.Trim(data, `"`))
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", s)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(time.RFC3339) + `"`), nil
}

// TranslationInfo identifies the resolved language pair of a translation.
// From is the language the server detected or was told to translate from.
type TranslationInfo struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Translation is the result of translating an entry's content.
// AudioPath is a server-relative path to spoken audio of the translated
// text, or empty when the server produced none.
type Translation struct {
	ID                int             `json:"id"`
	OriginalContent   string          `json:"original_content"`
	TranslatedContent string          `json:"translated_content"`
	Info              TranslationInfo `json:"translation_info"`
	AudioPath         string          `json:"audio_path"`
}

// Language is a selectable translation language.
type Language struct {
	Code string
	Name string
}

// SourceAuto asks the server to detect the source language. It is encoded
// on the wire by omitting the source parameter entirely, never as a value.
const SourceAuto = "auto"

// Languages is the fixed set of languages the translation service supports.
var Languages = []Language{
	{Code: "en", Name: "English"},
	{Code: "fr", Name: "French"},
	{Code: "es", Name: "Spanish"},
	{Code: "de", Name: "German"},
	{Code: "ar", Name: "Arabic"},
	{Code: "it", Name: "Italian"},
	{Code: "pt", Name: "Portuguese"},
	{Code: "ru", Name: "Russian"},
	{Code: "zh", Name: "Chinese"},
	{Code: "ja", Name: "Japanese"},
}

// LanguageName returns the display name for a language code.
// SourceAuto and unknown codes are returned as-is.
func LanguageName(code string) string {
	if code == SourceAuto {
		return "Auto-detect"
	}
	for _, l := range Languages {
		if l.Code == code {
			return l.Name
		}
	}
	return code
}
