package slipo

import "github.com/go-openapi/swag"

// DefaultPageSize is the page size applied when [QueryOptions.PageSize]
// is not set.
const DefaultPageSize = 10

// QueryOptions controls catalog and workflow queries.
type QueryOptions struct {
	// Term filters results by name. When set, only entries whose name
	// contains the term are returned.
	Term string

	// PageIndex is the zero-based page index.
	PageIndex int

	// PageSize is the page size. Zero means [DefaultPageSize].
	PageSize int
}

// pagingOptions is the wire form of the pagination settings.
type pagingOptions struct {
	PageIndex int `json:"pageIndex"`
	PageSize  int `json:"pageSize"`
}

// nameQuery is the wire form of the name filter. A missing term is sent
// as an explicit null, matching what the server expects.
type nameQuery struct {
	Name *string `json:"name"`
}

// queryRequest is the shared body of the catalog and workflow query
// endpoints.
type queryRequest struct {
	PagingOptions pagingOptions `json:"pagingOptions"`
	Query         nameQuery     `json:"query"`
}

func newQueryRequest(opts QueryOptions) queryRequest {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	q := queryRequest{
		PagingOptions: pagingOptions{
			PageIndex: opts.PageIndex,
			PageSize:  pageSize,
		},
	}
	if opts.Term != "" {
		q.Query.Name = swag.String(opts.Term)
	}
	return q
}

// optString returns a pointer for optional request fields, mapping the
// empty string to an explicit null on the wire.
func optString(s string) *string {
	if s == "" {
		return nil
	}
	return swag.String(s)
}
