package datagen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const userAgent = "web-data-gen/1.0.0"

// Client delivers generation requests to a single candidate endpoint at a time.
type Client struct {
	origin     *url.URL
	httpClient *http.Client
	userAgent  string
}

// Response is a successful (2xx) answer with its body read in full.
type Response struct {
	Endpoint    string
	StatusCode  int
	ContentType *string
	Body        []byte
}

// NewClient creates a client. Relative endpoints are resolved against origin,
// which is also sent as the Origin header to the CORS relay.
func NewClient(origin string, opts ...Option) (*Client, error) {
	slog.Debug("Creating data generator client", "origin", origin)

	c := &Client{
		httpClient: &http.Client{},
		userAgent:  userAgent,
	}
	if origin != "" {
		u, err := url.Parse(strings.TrimSuffix(origin, "/"))
		if err != nil {
			return nil, fmt.Errorf("invalid origin %q: %w", origin, err)
		}
		if u.Scheme == "" || u.Host == "" {
			return nil, fmt.Errorf("origin %q must be an absolute URL", origin)
		}
		c.origin = u
	}

	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Origin returns the scheme and host relative endpoints resolve against.
func (c *Client) Origin() string {
	if c.origin == nil {
		return ""
	}
	return c.origin.Scheme + "://" + c.origin.Host
}

// Resolve turns endpoint into an absolute URL.
func (c *Client) Resolve(endpoint string) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", err
	}
	if u.IsAbs() {
		return u.String(), nil
	}
	if c.origin == nil {
		return "", fmt.Errorf("relative endpoint %q needs an origin", endpoint)
	}
	return c.origin.ResolveReference(u).String(), nil
}

// Post sends body as JSON to endpoint. Transport failures come back as
// *NetworkError and non-2xx statuses as *HTTPError.
func (c *Client) Post(ctx context.Context, endpoint string, body interface{}) (*Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	target, err := c.Resolve(endpoint)
	if err != nil {
		return nil, &NetworkError{Endpoint: endpoint, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(payload))
	if err != nil {
		return nil, &NetworkError{Endpoint: endpoint, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if IsRelay(endpoint) {
		if origin := c.Origin(); origin != "" {
			req.Header.Set("Origin", origin)
		}
		req.Header.Set("X-Requested-With", "XMLHttpRequest")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &HTTPError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			StatusText: statusText(resp),
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Endpoint: endpoint, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	out := &Response{
		Endpoint:   endpoint,
		StatusCode: resp.StatusCode,
		Body:       data,
	}
	if ct := resp.Header.Get("Content-Type"); ct != "" {
		out.ContentType = &ct
	}
	return out, nil
}

// statusText prefers the reason phrase the server sent.
func statusText(resp *http.Response) string {
	text := strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode))
	text = strings.TrimSpace(text)
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}
