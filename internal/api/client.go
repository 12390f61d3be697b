package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// Client talks to the blog server over HTTP. It implements EntryReader,
// EntryWriter, and Translator. One round trip per call, no retries.
type Client struct {
	baseURL string
	http    *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.http = hc
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// NewClient creates a client for the server at baseURL,
// e.g. "http://localhost:5000". A trailing slash is stripped.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured server base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) ListAll(ctx context.Context) ([]Entry, error) {
	var entries []Entry
	if err := c.do(ctx, http.MethodGet, "/blogs", nil, &entries, 0); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Client) GetByID(ctx context.Context, id int) (*Entry, error) {
	var entry Entry
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/blogs/%d", id), nil, &entry, id); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (c *Client) Create(ctx context.Context, title, content string) (*Entry, error) {
	body := map[string]string{"title": title, "content": content}
	var entry Entry
	if err := c.do(ctx, http.MethodPost, "/blogs", body, &entry, 0); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (c *Client) Update(ctx context.Context, id int, title, content string) (*Entry, error) {
	body := map[string]string{"title": title, "content": content}
	var entry Entry
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/blogs/%d", id), body, &entry, id); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (c *Client) Delete(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/blogs/%d", id), nil, nil, id)
}

func (c *Client) Translate(ctx context.Context, id int, source, target string) (*Translation, error) {
	q := url.Values{}
	// The server distinguishes an absent source (auto-detect) from any
	// explicit value, so SourceAuto must not appear in the query.
	if source != SourceAuto && source != "" {
		q.Set("source", source)
	}
	q.Set("target", target)

	path := fmt.Sprintf("/blogs/%d/translate?%s", id, q.Encode())
	var tr Translation
	if err := c.do(ctx, http.MethodGet, path, nil, &tr, id); err != nil {
		return nil, err
	}
	return &tr, nil
}

func (c *Client) AudioURL(path string) string {
	return c.baseURL + path
}

// do performs a single request. entryID is used only to build a
// NotFoundError on 404; pass 0 for collection-level requests.
func (c *Client) do(ctx context.Context, method, path string, body, out any, entryID int) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return &NotFoundError{ID: entryID}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode, Message: errorMessage(resp.Body)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{Op: method + " " + path, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}

// errorMessage extracts the server's error text from a failed response
// body. Returns "" when the body has no recognizable message.
func errorMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil {
		return ""
	}
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Error != "" {
			return body.Error
		}
		if body.Message != "" {
			return body.Message
		}
	}
	return strings.TrimSpace(string(raw))
}

// Compile-time interface compliance checks
var (
	_ EntryReader = (*Client)(nil)
	_ EntryWriter = (*Client)(nil)
	_ Translator  = (*Client)(nil)
)
