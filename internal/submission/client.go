package submission

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultTimeout = 15 * time.Second

// Client submits attempts to an HTTP endpoint as JSON.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient creates a client for the given endpoint URL.
func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: defaultTimeout},
	}
}

// NewClientWithHTTP creates a client with a caller-supplied http.Client,
// for tests and custom transports.
func NewClientWithHTTP(endpoint string, hc *http.Client) *Client {
	return &Client{endpoint: endpoint, http: hc}
}

// Submit posts the payload and decodes whichever outcome shape the server
// produced. Transport and 5xx failures come back as ErrServerUnavailable;
// 4xx and explicit success=false bodies as ErrRejected.
func (c *Client) Submit(ctx context.Context, p Payload) (*Outcome, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &ErrServerUnavailable{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, &ErrServerUnavailable{StatusCode: resp.StatusCode, Err: err}
	}

	switch {
	case resp.StatusCode >= 500:
		return nil, &ErrServerUnavailable{StatusCode: resp.StatusCode, Err: fmt.Errorf("server error")}
	case resp.StatusCode >= 400:
		return nil, &ErrRejected{Reason: fmt.Sprintf("status %d: %s", resp.StatusCode, truncate(data, 200))}
	}

	var out Outcome
	if err := json.Unmarshal(data, &out); err != nil {
		// A 2xx with an undecodable body still counts as accepted; the
		// local result is authoritative for display either way.
		return &Outcome{Success: true}, nil
	}
	if !out.Success && out.Error != "" {
		return &out, &ErrRejected{Reason: out.Error}
	}
	return &out, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
