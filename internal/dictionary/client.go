// Package dictionary looks up ad-hoc word definitions from an external
// dictionary service for the jargon buster.
package dictionary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNotFound is returned when the service has no definition for a term.
var ErrNotFound = errors.New("no definition found")

// Client queries a dictionaryapi.dev-compatible endpoint.
type Client struct {
	baseURL string
	client  *http.Client
}

// New creates a dictionary client for the given base URL, e.g.
// "https://api.dictionaryapi.dev/api/v2/entries/en".
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// entry mirrors the subset of the dictionaryapi.dev response we read.
type entry struct {
	Word     string `json:"word"`
	Meanings []struct {
		PartOfSpeech string `json:"partOfSpeech"`
		Definitions  []struct {
			Definition string `json:"definition"`
		} `json:"definitions"`
	} `json:"meanings"`
}

// Lookup returns the first definition for term. ErrNotFound for unknown
// words; other errors indicate the service was unreachable. Failures are
// non-fatal to callers, which surface "definition unavailable".
func (c *Client) Lookup(ctx context.Context, term string) (string, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return "", ErrNotFound
	}

	reqURL := c.baseURL + "/" + url.PathEscape(strings.ToLower(term))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("invalid dictionary request: %w", err)
	}
	req.Header.Set("User-Agent", "ClauseLens/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("dictionary request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("dictionary returned HTTP %d", resp.StatusCode)
	}

	var entries []entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return "", fmt.Errorf("failed to decode dictionary response: %w", err)
	}

	for _, e := range entries {
		for _, m := range e.Meanings {
			for _, d := range m.Definitions {
				if def := strings.TrimSpace(d.Definition); def != "" {
					return def, nil
				}
			}
		}
	}
	return "", ErrNotFound
}
