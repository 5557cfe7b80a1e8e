// Package flaresolverr implements scinews.Fetcher against a
// FlareSolverr challenge-solving proxy. The solver drives a real
// browser to clear the site's anti-bot wall; this client only observes
// the final outcome via the solver's v1 JSON API.
package flaresolverr

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/fwojciec/scinews"
)

// DefaultEndpoint is where a local FlareSolverr deployment listens.
const DefaultEndpoint = "http://localhost:8191"

// solverGrace pads the HTTP deadline past the solver's own maxTimeout
// so the solver gets to report its timeout before the transport does.
const solverGrace = 5 * time.Second

// Ensure Client implements scinews.Fetcher at compile time.
var _ scinews.Fetcher = (*Client)(nil)

// Client talks to a FlareSolverr instance. Safe for concurrent use.
type Client struct {
	endpoint string
	client   *http.Client

	mu      sync.Mutex
	session string
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint sets the solver base URL.
// Defaults to DefaultEndpoint if not specified.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// WithHTTPClient sets the HTTP client used to reach the solver.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

// NewClient creates a new Client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		endpoint: DefaultEndpoint,
		client:   &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// command is the solver request wire format.
type command struct {
	Cmd        string         `json:"cmd"`
	URL        string         `json:"url,omitempty"`
	MaxTimeout int64          `json:"maxTimeout,omitempty"`
	Proxy      *scinews.Proxy `json:"proxy,omitempty"`
	Session    string         `json:"session,omitempty"`
}

// response is the solver response wire format.
type response struct {
	Status   string    `json:"status"`
	Message  string    `json:"message"`
	Solution *solution `json:"solution"`
	Session  string    `json:"session"`
	Sessions []string  `json:"sessions"`
}

// solution carries the resolved page.
type solution struct {
	URL       string `json:"url"`
	Status    int    `json:"status"`
	Response  string `json:"response"`
	UserAgent string `json:"userAgent"`
}

// Fetch submits a request.get command and returns the resolved page
// HTML. Any non-success outcome is an EUNAVAILABLE error; the client
// never retries.
func (c *Client) Fetch(ctx context.Context, req scinews.FetchRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	resp, err := c.send(ctx, command{
		Cmd:        "request.get",
		URL:        req.URL,
		MaxTimeout: req.Timeout.Milliseconds(),
		Proxy:      req.Proxy,
		Session:    c.currentSession(),
	}, req.Timeout+solverGrace)
	if err != nil {
		return "", err
	}

	if resp.Solution == nil {
		return "", scinews.Errorf(scinews.EUNAVAILABLE, "solver returned no solution: %s", resp.Message)
	}
	if resp.Solution.Status >= 400 {
		return "", scinews.Errorf(scinews.EUNAVAILABLE, "upstream returned HTTP %d for %s", resp.Solution.Status, req.URL)
	}

	return resp.Solution.Response, nil
}

// Close destroys the active session, if any.
func (c *Client) Close() error {
	c.mu.Lock()
	session := c.session
	c.mu.Unlock()
	if session == "" {
		return nil
	}
	return c.DestroySession(context.Background(), session)
}

// send posts one command to the solver and decodes the envelope.
// A zero timeout means the context alone bounds the call.
func (c *Client) send(ctx context.Context, cmd command, timeout time.Duration) (*response, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	body, err := json.Marshal(cmd)
	if err != nil {
		return nil, scinews.Errorf(scinews.EINTERNAL, "failed to encode solver command: %v", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/v1", bytes.NewReader(body))
	if err != nil {
		return nil, scinews.Errorf(scinews.EINVALID, "invalid solver endpoint %q: %v", c.endpoint, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, scinews.Errorf(scinews.EUNAVAILABLE, "solver unreachable: %v", err)
	}
	defer httpResp.Body.Close()

	var resp response
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, scinews.Errorf(scinews.EUNAVAILABLE, "undecodable solver response: %v", err)
	}
	if resp.Status != "ok" {
		return nil, scinews.Errorf(scinews.EUNAVAILABLE, "solver reported %q: %s", resp.Status, resp.Message)
	}

	return &resp, nil
}

func (c *Client) currentSession() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}
