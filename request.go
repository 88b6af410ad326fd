package dmart

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// maxResponseSize limits response body reads. This protects against
// misconfigured or malicious servers returning unbounded bodies; dmart
// envelopes are far smaller in practice.
const maxResponseSize = 10 * 1024 * 1024 // 10MB

// multipartForm carries an already-encoded multipart body together with
// the content type produced by the multipart writer (which embeds the
// part boundary).
type multipartForm struct {
	contentType string
	body        io.Reader
}

// api is the single chokepoint for every authenticated operation. It
// attaches the bearer header (and a JSON content type when a JSON body is
// present), executes the call over the shared pool, and normalizes every
// failure into an [*APIError].
//
// jsonBody and form are mutually exclusive; both may be nil for bodyless
// requests. With a multipart form the content type is taken from the
// multipart encoder rather than set here.
func (c *Client) api(ctx context.Context, method, endpoint string, jsonBody any, form *multipartForm) (*Response, error) {
	token := c.getToken()
	if token == "" {
		return nil, errNotAuthenticated()
	}

	var body io.Reader
	contentType := ""
	switch {
	case jsonBody != nil:
		b, err := json.Marshal(jsonBody)
		if err != nil {
			return nil, newAPIError(0, ErrTypeTransport, 0, "failed to encode request body", err)
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	case form != nil:
		body = form.body
		contentType = form.contentType
	}

	resp, err := c.do(ctx, method, endpoint, contentType, body, token)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	env, err := readEnvelope(resp)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if env.Error != nil {
			apiErr.Err = *env.Error
		} else {
			apiErr.Err = Error{Type: "request", Message: fmt.Sprintf("request failed with status %d", resp.StatusCode)}
		}
		return nil, apiErr
	}

	return env, nil
}

// do builds and executes one HTTP request. A transport failure is wrapped
// as an [*APIError] with status code 0.
func (c *Client) do(ctx context.Context, method, endpoint, contentType string, body io.Reader, token string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return nil, newAPIError(0, ErrTypeTransport, 0, "failed to build request", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, newAPIError(0, ErrTypeTransport, 0, "request failed", err)
	}
	return resp, nil
}

// readEnvelope decodes a response body into the typed envelope. A body
// that cannot be read or is not valid JSON is a transport error carrying
// the HTTP status. On success the records sequence is normalized to be
// present even when the backend omits it.
func readEnvelope(resp *http.Response) (*Response, error) {
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, newAPIError(resp.StatusCode, ErrTypeTransport, 0, "failed to read response body", err)
	}

	var env Response
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, newAPIError(resp.StatusCode, ErrTypeTransport, 0, "response body is not valid JSON", err)
	}

	if env.Records == nil {
		env.Records = []Record{}
	}
	return &env, nil
}
