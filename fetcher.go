package scinews

import (
	"context"
	"net/url"
	"time"
)

// DefaultFetchTimeout matches the challenge solver's default budget for
// resolving a page, including any anti-bot challenge it has to clear.
const DefaultFetchTimeout = 30 * time.Second

// Proxy identifies an outbound proxy the challenge solver routes the
// request through. The JSON shape matches the solver wire format.
type Proxy struct {
	URL string `json:"url"`
}

// FetchRequest describes a single page fetch through the challenge
// solver. Construct a fresh value per call; requests are never reused.
type FetchRequest struct {
	// Absolute http(s) URL of the page to fetch.
	URL string

	// Timeout bounds how long the solver may spend resolving the page.
	Timeout time.Duration

	// Proxy optionally routes the solver's outbound traffic.
	Proxy *Proxy
}

// Validate returns an error if the request contains invalid fields.
func (r FetchRequest) Validate() error {
	u, err := url.Parse(r.URL)
	if err != nil || !u.IsAbs() || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return Errorf(EINVALID, "fetch URL must be absolute http(s), got %q", r.URL)
	}
	if r.Timeout <= 0 {
		return Errorf(EINVALID, "fetch timeout must be positive, got %s", r.Timeout)
	}
	if r.Proxy != nil && r.Proxy.URL == "" {
		return Errorf(EINVALID, "proxy URL required when proxy is set")
	}
	return nil
}

// Fetcher retrieves page HTML from behind the site's anti-bot wall.
// Fetch blocks until the page resolves or the request timeout elapses.
// Every non-success outcome, including a malformed or partial solver
// response, is an error with code EUNAVAILABLE. Implementations must
// not retry; retry policy belongs to the caller.
type Fetcher interface {
	Fetch(ctx context.Context, req FetchRequest) (html string, err error)

	// Close releases implementation resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
