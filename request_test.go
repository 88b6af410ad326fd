package dmart_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dmart "github.com/edraj/dmart-go"
)

// TestDispatch_BackendRejected tests that a non-200 response with a
// decodable envelope surfaces the backend's own error payload together
// with the HTTP status code.
func TestDispatch_BackendRejected(t *testing.T) {
	// Arrange
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		mustEncode(w, map[string]interface{}{
			"status": "failed",
			"error": map[string]interface{}{
				"type":    "validation",
				"code":    12,
				"message": "bad shortname",
			},
		})
	})
	client := newConnectedClient(t, server)

	// Act
	resp, err := client.Query(context.Background(), &dmart.QueryRequest{
		SpaceName: "myspace",
		Subpath:   "notes",
	})

	// Assert
	require.Error(t, err)
	assert.Nil(t, resp)

	var apiErr *dmart.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "validation", apiErr.Err.Type)
	assert.Equal(t, 12, apiErr.Err.Code)
	assert.Equal(t, "bad shortname", apiErr.Err.Message)
}

// TestDispatch_BackendRejected_NoErrorField tests the generic error used
// when a non-200 envelope has no error payload.
func TestDispatch_BackendRejected_NoErrorField(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		mustEncode(w, map[string]interface{}{"status": "failed"})
	})
	client := newConnectedClient(t, server)

	_, err := client.GetProfile(context.Background())

	require.Error(t, err)
	var apiErr *dmart.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Contains(t, apiErr.Err.Message, "502")
}

// TestDispatch_MalformedBody tests that an undecodable body is a
// transport error carrying the HTTP status.
func TestDispatch_MalformedBody(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>gateway exploded</html>"))
	})
	client := newConnectedClient(t, server)

	_, err := client.GetProfile(context.Background())

	require.Error(t, err)
	var apiErr *dmart.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, dmart.ErrTypeTransport, apiErr.Err.Type)
}

// TestDispatch_EmptyRecords tests the envelope invariant: a successful
// response always has a records sequence, even when the backend sends an
// empty or absent one.
func TestDispatch_EmptyRecords(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty array", `{"status":"success","records":[]}`},
		{"absent field", `{"status":"success"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tt.body))
			})
			client := newConnectedClient(t, server)

			resp, err := client.Query(context.Background(), &dmart.QueryRequest{
				SpaceName: "myspace",
				Subpath:   "notes",
			})

			require.NoError(t, err)
			assert.NotNil(t, resp.Records)
			assert.Len(t, resp.Records, 0)
		})
	}
}

// TestDispatch_JSONHeaders tests header selection for JSON-bodied calls:
// both the bearer and the JSON content type must be attached.
func TestDispatch_JSONHeaders(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.True(t, strings.HasPrefix(r.Header.Get("User-Agent"), "dmart-go/"))

		w.Header().Set("Content-Type", "application/json")
		mustEncode(w, map[string]interface{}{"status": "success", "records": []interface{}{}})
	})
	client := newConnectedClient(t, server)

	_, err := client.Query(context.Background(), &dmart.QueryRequest{
		SpaceName: "myspace",
		Subpath:   "notes",
	})

	require.NoError(t, err)
}

// TestDispatch_BodylessHeaders tests that calls without a body send the
// bearer header and no content type.
func TestDispatch_BodylessHeaders(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))
		assert.Empty(t, r.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		mustEncode(w, map[string]interface{}{"status": "success", "records": []interface{}{}})
	})
	client := newConnectedClient(t, server)

	_, err := client.GetProfile(context.Background())

	require.NoError(t, err)
}
