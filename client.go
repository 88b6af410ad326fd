package dmart

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"
)

const defaultTimeout = 30 * time.Second

// Client is a dmart API client bound to one backend instance and one set
// of credentials. Each client tracks its own login state; the underlying
// connection pool is shared across all clients (see [SharedTransport]).
type Client struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
	userAgent  string

	mu        sync.Mutex
	authToken string
}

// NewClient creates a new dmart client. The client is not logged in until
// [Client.Connect] succeeds.
func NewClient(baseURL, username, password string, opts ...Option) *Client {
	c := &Client{
		baseURL:  baseURL,
		username: username,
		password: password,
		httpClient: &http.Client{
			Transport: SharedTransport(),
			Timeout:   defaultTimeout,
		},
		userAgent: "dmart-go/" + Version,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Connect logs in with the client's credentials and stores the returned
// bearer token for subsequent operations. A response with failed status or
// no records is a connection error; no token is stored in that case.
// Reconnecting overwrites any previously held token.
func (c *Client) Connect(ctx context.Context) error {
	body, err := json.Marshal(map[string]string{
		"shortname": c.username,
		"password":  c.password,
	})
	if err != nil {
		return newAPIError(0, ErrTypeTransport, 0, "failed to encode login request", err)
	}

	// Login is the one call that bypasses the dispatcher: there is no
	// token to attach yet.
	resp, err := c.do(ctx, http.MethodPost, "/user/login", "application/json", bytes.NewReader(body), "")
	if err != nil {
		return newAPIError(0, ErrTypeConnection, 0,
			"failed to connect to the dmart instance, invalid url or credentials", err)
	}
	defer resp.Body.Close()

	env, err := readEnvelope(resp)
	if err != nil {
		return newAPIError(resp.StatusCode, ErrTypeConnection, 0,
			"failed to connect to the dmart instance, invalid url or credentials", err)
	}
	if env.Status == StatusFailed || len(env.Records) == 0 {
		return newAPIError(resp.StatusCode, ErrTypeConnection, 0,
			"failed to connect to the dmart instance, invalid url or credentials", nil)
	}

	token, ok := env.Records[0].Attributes["access_token"].(string)
	if !ok || token == "" {
		return newAPIError(resp.StatusCode, ErrTypeConnection, 0,
			"login response did not include an access token", nil)
	}

	c.setToken(token)
	return nil
}

// Disconnect logs out and clears the stored token. Calling Disconnect
// without a prior successful Connect is a usage error, not a no-op.
//
// The token is cleared whenever the logout request reached the server,
// even if the server rejected it: the server-side session is finished
// either way. On a transport failure the token is kept so the caller can
// retry, and the error propagates.
func (c *Client) Disconnect(ctx context.Context) error {
	if !c.IsConnected() {
		return errNotAuthenticated()
	}

	_, err := c.api(ctx, http.MethodPost, "/user/logout", nil, nil)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == 0 {
			// The request never reached the server; the session may
			// still be live, so keep the token for a retry.
			return err
		}
	}
	c.setToken("")
	return err
}

// IsConnected reports whether the client currently holds a bearer token.
// It does not verify the token against the backend.
func (c *Client) IsConnected() bool {
	return c.getToken() != ""
}

func (c *Client) getToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.authToken
}

func (c *Client) setToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.authToken = token
}
