package dmart

import (
	"github.com/go-openapi/strfmt"
)

// QueryType selects the retrieval strategy of a managed query.
type QueryType string

const (
	QuerySearch      QueryType = "search"
	QuerySubpath     QueryType = "subpath"
	QueryEvents      QueryType = "events"
	QueryHistory     QueryType = "history"
	QueryTags        QueryType = "tags"
	QuerySpaces      QueryType = "spaces"
	QueryCounters    QueryType = "counters"
	QueryAggregation QueryType = "aggregation"
)

// SortType orders query results.
type SortType string

const (
	SortAscending  SortType = "ascending"
	SortDescending SortType = "descending"
)

// ContentType describes the payload body format of an entry.
type ContentType string

const (
	ContentText     ContentType = "text"
	ContentMarkdown ContentType = "markdown"
	ContentHTML     ContentType = "html"
	ContentJSON     ContentType = "json"
	ContentImage    ContentType = "image"
	ContentAudio    ContentType = "audio"
	ContentVideo    ContentType = "video"
	ContentPDF      ContentType = "pdf"
	ContentCSV      ContentType = "csv"
)

// DataAssetType names the tabular format a data-asset query runs against.
type DataAssetType string

const (
	DataAssetCSV     DataAssetType = "csv"
	DataAssetJSONL   DataAssetType = "jsonl"
	DataAssetSQLite  DataAssetType = "sqlite"
	DataAssetDuckDB  DataAssetType = "duckdb"
	DataAssetParquet DataAssetType = "parquet"
)

// AggregationReducer is one reduction step of an aggregation query.
type AggregationReducer struct {
	Name  string   `json:"name"`
	Alias string   `json:"alias"`
	Args  []string `json:"args"`
}

// AggregationType describes an aggregation pipeline: which fields to load,
// how to group them, and the reducers applied per group.
type AggregationType struct {
	Load     []string             `json:"load"`
	GroupBy  []string             `json:"group_by"`
	Reducers []AggregationReducer `json:"reducers"`
}

// QueryRequest is the body of a managed query. Optional fields are
// pointers; leave them nil to accept the backend defaults. [Client.Query]
// fills Type and RetrieveJSONPayload when unset.
type QueryRequest struct {
	Type                QueryType        `json:"type"`
	SpaceName           string           `json:"space_name"`
	Subpath             string           `json:"subpath"`
	FilterTypes         []ResourceType   `json:"filter_types,omitempty"`
	FilterSchemaNames   []string         `json:"filter_schema_names"`
	FilterShortnames    []string         `json:"filter_shortnames,omitempty"`
	Search              string           `json:"search"`
	FromDate            *strfmt.DateTime `json:"from_date,omitempty"`
	ToDate              *strfmt.DateTime `json:"to_date,omitempty"`
	SortBy              *string          `json:"sort_by,omitempty"`
	SortType            *SortType        `json:"sort_type,omitempty"`
	RetrieveJSONPayload *bool            `json:"retrieve_json_payload,omitempty"`
	RetrieveAttachments *bool            `json:"retrieve_attachments,omitempty"`
	ValidateSchema      *bool            `json:"validate_schema,omitempty"`
	JQFilter            *string          `json:"jq_filter,omitempty"`
	ExactSubpath        *bool            `json:"exact_subpath,omitempty"`
	Limit               *int64           `json:"limit,omitempty"`
	Offset              *int64           `json:"offset,omitempty"`
	AggregationData     *AggregationType `json:"aggregation_data,omitempty"`
}

// DataAssetQuery is the body of a data-asset query: a SQL-ish query string
// executed against one entry's tabular payload.
type DataAssetQuery struct {
	SpaceName       string        `json:"space_name"`
	Subpath         string        `json:"subpath"`
	ResourceType    ResourceType  `json:"resource_type"`
	Shortname       string        `json:"shortname"`
	SchemaShortname *string       `json:"schema_shortname"`
	DataAssetType   DataAssetType `json:"data_asset_type"`
	QueryString     string        `json:"query_string"`
}

// Translation holds a localized string in the locales the backend serves.
type Translation struct {
	AR string `json:"ar"`
	EN string `json:"en"`
	KD string `json:"kd"`
}

// Permission describes what a role may do to a set of entries.
type Permission struct {
	AllowedActions      []string       `json:"allowed_actions"`
	Conditions          []string       `json:"conditions"`
	RestrictedFields    []any          `json:"restricted_fields"`
	AllowedFieldsValues map[string]any `json:"allowed_fields_values"`
}

// Payload is the content attached to an entry.
type Payload struct {
	ContentType      ContentType `json:"content_type"`
	SchemaShortname  *string     `json:"schema_shortname,omitempty"`
	Checksum         string      `json:"checksum"`
	Body             any         `json:"body"`
	LastValidated    string      `json:"last_validated"`
	ValidationStatus string      `json:"validation_status"`
}

// Entry is the expanded view of a single entity: its metadata, user-meta
// extensions, payload, and attachments. Returned by entry reads.
type Entry struct {
	UUID           strfmt.UUID4     `json:"uuid"`
	Shortname      string           `json:"shortname"`
	Subpath        string           `json:"subpath"`
	IsActive       bool             `json:"is_active"`
	Displayname    Translation      `json:"displayname"`
	Description    Translation      `json:"description"`
	Tags           []string         `json:"tags"`
	CreatedAt      strfmt.DateTime  `json:"created_at"`
	UpdatedAt      *strfmt.DateTime `json:"updated_at,omitempty"`
	OwnerShortname string           `json:"owner_shortname"`

	// User-meta extensions; populated for user entries.
	Email               string `json:"email,omitempty"`
	MSISDN              string `json:"msisdn,omitempty"`
	IsEmailVerified     bool   `json:"is_email_verified,omitempty"`
	IsMSISDNVerified    bool   `json:"is_msisdn_verified,omitempty"`
	ForcePasswordChange bool   `json:"force_password_change,omitempty"`

	// Ticket workflow state; populated for ticket entries.
	WorkflowShortname string `json:"workflow_shortname,omitempty"`
	State             string `json:"state,omitempty"`
	IsOpen            bool   `json:"is_open,omitempty"`

	Payload       *Payload       `json:"payload,omitempty"`
	Relationships any            `json:"relationships,omitempty"`
	Attachments   map[string]any `json:"attachments,omitempty"`
}
