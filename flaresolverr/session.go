package flaresolverr

import (
	"context"

	"github.com/fwojciec/scinews"
	"github.com/google/uuid"
)

// StartSession creates a named solver session and pins it to this
// client: subsequent fetches ride on it, reusing the solved cookies and
// browser instance. An optional proxy is fixed for the session's
// lifetime. Close destroys the session.
func (c *Client) StartSession(ctx context.Context, proxy *scinews.Proxy) (string, error) {
	name := uuid.NewString()

	if _, err := c.send(ctx, command{
		Cmd:     "sessions.create",
		Session: name,
		Proxy:   proxy,
	}, 0); err != nil {
		return "", err
	}

	c.mu.Lock()
	c.session = name
	c.mu.Unlock()

	return name, nil
}

// ListSessions returns the names of the solver's live sessions.
func (c *Client) ListSessions(ctx context.Context) ([]string, error) {
	resp, err := c.send(ctx, command{Cmd: "sessions.list"}, 0)
	if err != nil {
		return nil, err
	}
	return resp.Sessions, nil
}

// DestroySession destroys a named session. If it is the client's active
// session, subsequent fetches run sessionless again.
func (c *Client) DestroySession(ctx context.Context, name string) error {
	if name == "" {
		return scinews.Errorf(scinews.EINVALID, "session name required")
	}

	if _, err := c.send(ctx, command{
		Cmd:     "sessions.destroy",
		Session: name,
	}, 0); err != nil {
		return err
	}

	c.mu.Lock()
	if c.session == name {
		c.session = ""
	}
	c.mu.Unlock()

	return nil
}
