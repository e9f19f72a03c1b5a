// Package hub talks to the OpenLab hosting service. Authentication is a
// personal access token created in the browser and pasted into the login
// dialog; the token is exchanged for a Session carrying the authenticated
// user identity. Sessions are explicit objects with a create/invalidate
// lifecycle, so tests can hold several independent ones.
package hub

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sethgrid/pester"
	"golang.org/x/oauth2"

	"github.com/openlab-tools/labsync/internal/errors"
	"github.com/openlab-tools/labsync/internal/logger"
)

// DefaultBaseURL is the production hub instance.
const DefaultBaseURL = "https://hub.openlab.science"

// TokenPagePath is where a user creates a personal access token.
const TokenPagePath = "/profile/tokens"

// User is the authenticated identity returned by the hub.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Avatar   string `json:"avatar_url,omitempty"`
}

// Client issues API calls against one hub instance.
type Client struct {
	baseURL string
}

// NewClient creates a client for the given hub instance. An empty baseURL
// selects the production hub.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/")}
}

// BaseURL returns the hub instance this client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// TokenPageURL returns the browser URL where tokens are created.
func (c *Client) TokenPageURL() string {
	return c.baseURL + TokenPagePath
}

// httpClient builds the retrying, token-authenticated HTTP client used for
// all API calls.
func (c *Client) httpClient(ctx context.Context, token string) *http.Client {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	client := pester.NewExtendedClient(oauth2.NewClient(ctx, src))
	client.MaxRetries = 3
	client.Backoff = pester.ExponentialBackoff
	client.RetryOnHTTP429 = true
	return &http.Client{Transport: roundTripper{client}}
}

// roundTripper adapts a pester client to http.RoundTripper so callers can
// keep using plain *http.Client.
type roundTripper struct {
	pester *pester.Client
}

func (rt roundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return rt.pester.Do(req)
}

// Login exchanges a personal access token for an authenticated Session.
// With rememberMe, the caller is expected to persist the token; the flag is
// recorded on the session so the UI knows whether to forget it on logout.
func (c *Client) Login(ctx context.Context, token string, rememberMe bool) (*Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, errors.TokenMissing()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/user", nil)
	if err != nil {
		return nil, errors.LoginFailed(err)
	}

	resp, err := c.httpClient(ctx, token).Do(req)
	if err != nil {
		return nil, errors.E(errors.Op("hub.Login"), errors.KindNetwork, "could not reach the hub", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, errors.LoginFailed(fmt.Errorf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, errors.LoginFailed(fmt.Errorf("malformed user response: %w", err))
	}

	logger.Info("Hub: logged in as %s", user.Username)
	return &Session{
		client:     c,
		token:      token,
		user:       user,
		remembered: rememberMe,
		active:     true,
	}, nil
}

// Session is an authenticated connection to the hub, keyed by a bearer token.
type Session struct {
	client     *Client
	token      string
	user       User
	remembered bool
	active     bool
}

// User returns the identity the session was created for.
func (s *Session) User() User {
	return s.user
}

// Token returns the credential backing the session.
func (s *Session) Token() string {
	return s.token
}

// Remembered reports whether the credential was stored persistently.
func (s *Session) Remembered() bool {
	return s.remembered
}

// Active reports whether the session has not been invalidated.
func (s *Session) Active() bool {
	return s != nil && s.active
}

// Logout invalidates the session. Idempotent and safe on a nil session:
// logging out when nobody is logged in is a no-op.
func (s *Session) Logout() {
	if s == nil || !s.active {
		return
	}
	s.active = false
	s.token = ""
	logger.Info("Hub: logged out %s", s.user.Username)
}
