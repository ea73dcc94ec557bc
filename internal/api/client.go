// Package api implements the garden Store against the garden REST API.
//
// The API persists whole garden documents with last-write-wins semantics:
// PUT replaces the stored document verbatim. Write responses carry a JSON
// envelope of the form {"error": null} or {"error": "message"}.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/jeshuam/square-metre-garden-manager/internal/garden"
)

const defaultTimeout = 10 * time.Second

// ValidationError is a payload rejection from the server; the message is the
// server's own, passed through verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Client talks to the garden API. It implements garden.Store.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the API at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// errorEnvelope is the body of every write response, and of error responses.
type errorEnvelope struct {
	Error *string `json:"error"`
}

// Create makes a new empty garden on the server.
func (c *Client) Create(ctx context.Context, name string, width, height int) (*garden.Garden, error) {
	g, err := garden.New(name, width, height)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(map[string]any{"name": name, "width": width, "height": height})
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/garden", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if err := c.doWrite(req, name); err != nil {
		return nil, err
	}
	return g, nil
}

// Get retrieves a garden by name.
func (c *Client) Get(ctx context.Context, name string) (*garden.Garden, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.gardenURL(name), nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching garden: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := c.checkStatus(resp, name); err != nil {
		return nil, err
	}

	var g garden.Garden
	if err := json.NewDecoder(resp.Body).Decode(&g); err != nil {
		return nil, fmt.Errorf("decoding garden: %w", err)
	}
	return &g, nil
}

// List returns the names of all gardens, sorted.
func (c *Client) List(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/garden", nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("listing gardens: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := c.checkStatus(resp, ""); err != nil {
		return nil, err
	}

	// The API returns a map keyed by garden name.
	var gardens map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&gardens); err != nil {
		return nil, fmt.Errorf("decoding garden list: %w", err)
	}

	names := make([]string, 0, len(gardens))
	for name := range gardens {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Put replaces the stored garden document with g.
func (c *Client) Put(ctx context.Context, g *garden.Garden) error {
	body, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("encoding garden: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.gardenURL(g.Name), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.doWrite(req, g.Name)
}

// Delete removes a garden by name.
func (c *Client) Delete(ctx context.Context, name string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.gardenURL(name), nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	return c.doWrite(req, name)
}

// Close implements garden.Store; the HTTP client holds nothing to release.
func (c *Client) Close() error {
	return nil
}

func (c *Client) gardenURL(name string) string {
	return c.baseURL + "/api/garden/" + url.PathEscape(name)
}

// doWrite performs a write request and interprets the error envelope.
func (c *Client) doWrite(req *http.Request, name string) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("saving garden: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	return c.checkStatus(resp, name)
}

// checkStatus maps response codes to error kinds: 404 means the garden is
// unknown, any other non-2xx surfaces the server's message verbatim.
func (c *Client) checkStatus(resp *http.Response, name string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w %q", garden.ErrUnknownGarden, name)
	}

	body, _ := io.ReadAll(resp.Body)
	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != nil {
		return &ValidationError{Message: *envelope.Error}
	}
	return fmt.Errorf("garden API returned %s", resp.Status)
}
