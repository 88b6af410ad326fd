package dmart

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"

	"github.com/go-openapi/runtime"
	"github.com/go-openapi/swag"
)

// GetProfile returns the profile of the logged-in user.
func (c *Client) GetProfile(ctx context.Context) (*Response, error) {
	return c.api(ctx, http.MethodGet, "/user/profile", nil, nil)
}

// Create creates one entry under space/subpath. Pass "auto" as the
// shortname to let the backend generate one.
func (c *Client) Create(ctx context.Context, spaceName, subpath, shortname string, attributes map[string]any, resourceType ResourceType) (*Response, error) {
	return c.request(ctx, spaceName, subpath, shortname, RequestCreate, attributes, resourceType)
}

// Update applies an attribute update to an existing entry.
func (c *Client) Update(ctx context.Context, spaceName, subpath, shortname string, attributes map[string]any, resourceType ResourceType) (*Response, error) {
	return c.request(ctx, spaceName, subpath, shortname, RequestUpdate, attributes, resourceType)
}

// Delete removes an entry.
func (c *Client) Delete(ctx context.Context, spaceName, subpath, shortname string, resourceType ResourceType) (*Response, error) {
	return c.request(ctx, spaceName, subpath, shortname, RequestDelete, map[string]any{}, resourceType)
}

// request is the shared translation for managed mutations: one request
// type applied to a single record.
func (c *Client) request(ctx context.Context, spaceName, subpath, shortname string, requestType RequestType, attributes map[string]any, resourceType ResourceType) (*Response, error) {
	rec, err := NewRecord(resourceType, shortname, subpath, attributes)
	if err != nil {
		return nil, err
	}
	body := ActionRequest{
		SpaceName:   spaceName,
		RequestType: requestType,
		Records:     []Record{*rec},
	}
	return c.api(ctx, http.MethodPost, "/managed/request", body, nil)
}

// Read retrieves one entry with its JSON payload, optionally including
// its attachments.
func (c *Client) Read(ctx context.Context, spaceName, subpath, shortname string, resourceType ResourceType, retrieveAttachments bool) (*Response, error) {
	endpoint := fmt.Sprintf("/managed/entry/%s/%s/%s/%s?retrieve_json_payload=true&retrieve_attachments=%s",
		resourceType, spaceName, subpath, shortname, strconv.FormatBool(retrieveAttachments))
	return c.api(ctx, http.MethodGet, endpoint, nil, nil)
}

// ReadJSONPayload retrieves only the JSON payload body of an entry.
func (c *Client) ReadJSONPayload(ctx context.Context, spaceName, subpath, shortname string) (*Response, error) {
	endpoint := fmt.Sprintf("/managed/payload/content/%s/%s/%s.json", spaceName, subpath, shortname)
	return c.api(ctx, http.MethodGet, endpoint, nil, nil)
}

// Query runs a managed query. When unset, the query type defaults to
// [QuerySearch] and JSON payload retrieval is enabled, matching the
// backend's common search usage.
func (c *Client) Query(ctx context.Context, req *QueryRequest) (*Response, error) {
	if req == nil {
		return nil, newAPIError(400, "request", 0, "query request is required", nil)
	}

	q := *req
	if q.Type == "" {
		q.Type = QuerySearch
	}
	if q.RetrieveJSONPayload == nil {
		q.RetrieveJSONPayload = swag.Bool(true)
	}
	if q.FilterSchemaNames == nil {
		q.FilterSchemaNames = []string{}
	}

	return c.api(ctx, http.MethodPost, "/managed/query", q, nil)
}

// QueryDataAsset executes a query string against the tabular payload of a
// data-asset entry (CSV, JSONL, SQLite, DuckDB, or Parquet).
func (c *Client) QueryDataAsset(ctx context.Context, req *DataAssetQuery) (*Response, error) {
	if req == nil {
		return nil, newAPIError(400, "request", 0, "data asset query is required", nil)
	}

	q := *req
	if q.ResourceType == "" {
		q.ResourceType = ResourceContent
	}

	return c.api(ctx, http.MethodPost, "/managed/data-asset", q, nil)
}

// ProgressTicket moves a ticket entry through its workflow by applying
// action. A resolution is only meaningful for closing actions and is
// omitted from the request when empty.
func (c *Client) ProgressTicket(ctx context.Context, spaceName, subpath, shortname, action, resolution string) (*Response, error) {
	endpoint := fmt.Sprintf("/managed/progress-ticket/%s/%s/%s/%s", spaceName, subpath, shortname, action)

	var body any
	if resolution != "" {
		body = map[string]string{"resolution": resolution}
	}
	return c.api(ctx, http.MethodPut, endpoint, body, nil)
}

// UploadResourceWithPayload creates an entry and its payload file in one
// multipart request. The record describes the entry; payload supplies the
// file name and content, and payloadMimeType its media type.
func (c *Client) UploadResourceWithPayload(ctx context.Context, spaceName string, record *Record, payload runtime.NamedReadCloser, payloadMimeType string) (*Response, error) {
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return nil, newAPIError(0, ErrTypeTransport, 0, "failed to encode request record", err)
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := createFormFile(w, "request_record", "record.json", "application/json")
	if err != nil {
		return nil, newAPIError(0, ErrTypeTransport, 0, "failed to encode multipart body", err)
	}
	if _, err := part.Write(recordJSON); err != nil {
		return nil, newAPIError(0, ErrTypeTransport, 0, "failed to encode multipart body", err)
	}

	part, err = createFormFile(w, "payload_file", payload.Name(), payloadMimeType)
	if err != nil {
		return nil, newAPIError(0, ErrTypeTransport, 0, "failed to encode multipart body", err)
	}
	if _, err := io.Copy(part, payload); err != nil {
		return nil, newAPIError(0, ErrTypeTransport, 0, "failed to read payload file", err)
	}

	if err := w.WriteField("space_name", spaceName); err != nil {
		return nil, newAPIError(0, ErrTypeTransport, 0, "failed to encode multipart body", err)
	}
	if err := w.Close(); err != nil {
		return nil, newAPIError(0, ErrTypeTransport, 0, "failed to encode multipart body", err)
	}

	form := &multipartForm{
		contentType: w.FormDataContentType(),
		body:        &buf,
	}
	return c.api(ctx, http.MethodPost, "/managed/resource_with_payload", nil, form)
}

// createFormFile is multipart.Writer.CreateFormFile with an explicit part
// content type instead of the fixed application/octet-stream.
func createFormFile(w *multipart.Writer, fieldName, fileName, contentType string) (io.Writer, error) {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, fieldName, fileName))
	h.Set("Content-Type", contentType)
	return w.CreatePart(h)
}
