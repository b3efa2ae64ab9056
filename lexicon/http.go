package lexicon

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const DefaultTimeout = 5 * time.Second

// Client queries a dictionary service over HTTP. Entries of a word are
// served as a JSON array at <base>/lemmas/<word>; an unknown word answers
// 404.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) FetchEntries(ctx context.Context, word string) ([]Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/lemmas/"+url.PathEscape(word), nil)
	if err != nil {
		return nil, fmt.Errorf("lexicon: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lexicon: query %q: %w", word, err)
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, nil
	default:
		return nil, fmt.Errorf("lexicon: query %q: unexpected status %d", word, resp.StatusCode)
	}
	var entries []Entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("lexicon: decode %q: %w", word, err)
	}
	return entries, nil
}

func (c *Client) Exists(ctx context.Context, word string) (bool, error) {
	entries, err := c.FetchEntries(ctx, word)
	if err != nil {
		return false, err
	}
	return len(entries) > 0, nil
}
