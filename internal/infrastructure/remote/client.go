// Package remote holds HTTP clients for the sibling services. Each client
// speaks the public JSON surface of one service and translates its 404s
// into the matching domain sentinel.
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultClientTimeout = 5 * time.Second

var errNotFound = errors.New("remote: not found")

type client struct {
	httpClient *http.Client
	baseURL    string
}

func newClient(baseURL string) client {
	return client{
		httpClient: &http.Client{Timeout: defaultClientTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// getJSON performs a GET against the service and decodes the response body
// into out. A 404 comes back as errNotFound so callers can map it to their
// own sentinel; any other non-2xx status is an error.
func (c client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("GET %s: unexpected status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
