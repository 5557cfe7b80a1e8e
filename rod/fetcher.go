// Package rod provides a scinews.Fetcher that drives a local headless
// Chrome instance, for callers without a FlareSolverr deployment.
package rod

import (
	"context"
	"fmt"

	"github.com/fwojciec/scinews"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Fetcher implements scinews.Fetcher at compile time.
var _ scinews.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser *rod.Browser
	proxy   string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithProxy routes all browser traffic through the proxy URL. Chromium
// takes the proxy per process, so it is fixed at construction; a
// FetchRequest carrying a different proxy is rejected.
func WithProxy(url string) Option {
	return func(f *Fetcher) {
		f.proxy = url
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome
// browser. Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{}
	for _, opt := range opts {
		opt(f)
	}

	l := launcher.New().Headless(true)
	if f.proxy != "" {
		l = l.Proxy(f.proxy)
	}
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	f.browser = browser
	return f, nil
}

// Fetch navigates to the request URL and returns the rendered HTML.
// The request timeout bounds navigation, load, and serialization.
func (f *Fetcher) Fetch(ctx context.Context, req scinews.FetchRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	if req.Proxy != nil && req.Proxy.URL != f.proxy {
		return "", scinews.Errorf(scinews.EINVALID, "proxy is fixed at construction; create a Fetcher with WithProxy(%q)", req.Proxy.URL)
	}
	if err := ctx.Err(); err != nil {
		return "", scinews.Errorf(scinews.EUNAVAILABLE, "fetch canceled: %v", err)
	}

	ctx, cancel := context.WithTimeout(ctx, req.Timeout)
	defer cancel()

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", scinews.Errorf(scinews.EUNAVAILABLE, "creating page: %v", err)
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(req.URL); err != nil {
		return "", scinews.Errorf(scinews.EUNAVAILABLE, "navigating to %s: %v", req.URL, err)
	}

	if err := page.WaitLoad(); err != nil {
		return "", scinews.Errorf(scinews.EUNAVAILABLE, "waiting for %s to load: %v", req.URL, err)
	}

	html, err := page.HTML()
	if err != nil {
		return "", scinews.Errorf(scinews.EUNAVAILABLE, "reading rendered HTML: %v", err)
	}

	return html, nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.browser.Close()
}
