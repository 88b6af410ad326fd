package dmart

import (
	"strings"

	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

// Status is the outcome reported in a response envelope.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// RequestType selects the mutation applied by a managed request.
type RequestType string

const (
	RequestCreate    RequestType = "create"
	RequestUpdate    RequestType = "update"
	RequestPatch     RequestType = "patch"
	RequestUpdateACL RequestType = "update_acl"
	RequestAssign    RequestType = "assign"
	RequestReplace   RequestType = "replace"
	RequestDelete    RequestType = "delete"
	RequestMove      RequestType = "move"
)

// ResourceType identifies the kind of entity a record represents.
type ResourceType string

const (
	ResourceUser          ResourceType = "user"
	ResourceGroup         ResourceType = "group"
	ResourceFolder        ResourceType = "folder"
	ResourceSchema        ResourceType = "schema"
	ResourceContent       ResourceType = "content"
	ResourceACL           ResourceType = "acl"
	ResourceComment       ResourceType = "comment"
	ResourceMedia         ResourceType = "media"
	ResourceDataAsset     ResourceType = "data_asset"
	ResourceLocator       ResourceType = "locator"
	ResourceRelationship  ResourceType = "relationship"
	ResourceAlteration    ResourceType = "alteration"
	ResourceHistory       ResourceType = "history"
	ResourceSpace         ResourceType = "space"
	ResourceBranch        ResourceType = "branch"
	ResourcePermission    ResourceType = "permission"
	ResourceRole          ResourceType = "role"
	ResourceTicket        ResourceType = "ticket"
	ResourceJSON          ResourceType = "json"
	ResourceLock          ResourceType = "lock"
	ResourcePost          ResourceType = "post"
	ResourceReaction      ResourceType = "reaction"
	ResourceReply         ResourceType = "reply"
	ResourceShare         ResourceType = "share"
	ResourcePluginWrapper ResourceType = "plugin_wrapper"
	ResourceNotification  ResourceType = "notification"
	ResourceCSV           ResourceType = "csv"
	ResourceJSONL         ResourceType = "jsonl"
	ResourceSQLite        ResourceType = "sqlite"
	ResourceDuckDB        ResourceType = "duckdb"
	ResourceParquet       ResourceType = "parquet"
)

// Naming patterns enforced by the backend. Shortnames and subpaths accept
// Latin and Arabic letters, ASCII and Arabic-Indic digits, and underscore;
// subpaths additionally accept the path separator.
const (
	ShortnamePattern = `^[a-zA-Z\x{0621}-\x{064A}0-9\x{0660}-\x{0669}_]{1,64}$`
	SubpathPattern   = `^[a-zA-Z\x{0621}-\x{064A}0-9\x{0660}-\x{0669}_/]{1,128}$`
)

// Record is one typed entity submitted to or returned by the backend.
//
// Construct outbound records with [NewRecord], which normalizes the subpath
// and validates the naming patterns. Records decoded from responses are
// taken as-is; the backend already guarantees their shape.
type Record struct {
	ResourceType ResourceType           `json:"resource_type"`
	UUID         strfmt.UUID4           `json:"uuid,omitempty"`
	Shortname    string                 `json:"shortname"`
	Subpath      string                 `json:"subpath"`
	Attributes   map[string]any         `json:"attributes"`
	Attachments  map[ResourceType][]any `json:"attachments,omitempty"`

	// RetrieveLockStatus asks the backend to include the entry's lock
	// state in the response attributes.
	RetrieveLockStatus bool `json:"retrieve_lock_status,omitempty"`
}

// NewRecord builds a validated record. Leading and trailing separators are
// stripped from the subpath, except for the root subpath "/" which is kept
// verbatim. This normalization happens exactly once, here.
func NewRecord(resourceType ResourceType, shortname, subpath string, attributes map[string]any) (*Record, error) {
	if subpath != "/" {
		subpath = strings.Trim(subpath, "/")
	}
	if attributes == nil {
		attributes = map[string]any{}
	}
	r := &Record{
		ResourceType: resourceType,
		Shortname:    shortname,
		Subpath:      subpath,
		Attributes:   attributes,
	}
	if err := r.Validate(strfmt.Default); err != nil {
		return nil, err
	}
	return r, nil
}

// Validate checks the record's naming constraints against the backend's
// patterns and, when a UUID is set, its uuid4 format.
func (r *Record) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Pattern("shortname", "body", r.Shortname, ShortnamePattern); err != nil {
		res = append(res, err)
	}
	if err := validate.Pattern("subpath", "body", r.Subpath, SubpathPattern); err != nil {
		res = append(res, err)
	}
	if r.UUID != "" {
		if err := validate.FormatOf("uuid", "body", "uuid4", string(r.UUID), formats); err != nil {
			res = append(res, err)
		}
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// Response is the envelope returned by every dmart endpoint.
//
// When Status is [StatusFailed], Error is set. When Status is
// [StatusSuccess], Records is never nil (it may be empty).
type Response struct {
	Status     Status         `json:"status"`
	Error      *Error         `json:"error,omitempty"`
	Records    []Record       `json:"records"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

// IsSuccess returns true if the backend reported success.
func (r *Response) IsSuccess() bool {
	return r.Status == StatusSuccess
}

// ActionRequest is the body of a managed mutation (create, update, delete,
// and friends): one request type applied to a batch of records in a space.
type ActionRequest struct {
	SpaceName   string      `json:"space_name"`
	RequestType RequestType `json:"request_type"`
	Records     []Record    `json:"records"`
}
