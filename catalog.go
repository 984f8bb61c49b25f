package slipo

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-openapi/strfmt"
)

const (
	apiCatalogQuery    = "api/v1/resource/"
	apiCatalogDownload = "api/v1/resource/%d/%d/"
)

// Resource is an RDF dataset registered in the resource catalog,
// identified by id and revision. Catalog datasets are encoded in
// N-Triples format.
type Resource struct {
	ID          int64  `json:"id"`
	Version     int64  `json:"version"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	FileName string `json:"fileName,omitempty"`
	FileSize int64  `json:"fileSize,omitempty"`
	Format   string `json:"format,omitempty"`

	// NumberOfEntities is the number of POI entities in the dataset.
	NumberOfEntities int64 `json:"numberOfEntities,omitempty"`

	CreatedOn strfmt.DateTime `json:"createdOn,omitempty"`
	UpdatedOn strfmt.DateTime `json:"updatedOn,omitempty"`
}

// CatalogQueryResult is one page of catalog query results.
type CatalogQueryResult struct {
	Items     []Resource `json:"items"`
	PageIndex int        `json:"pageIndex"`
	PageSize  int        `json:"pageSize"`
	Count     int64      `json:"count"`
}

// CatalogQuery queries the resource catalog for RDF datasets.
//
// Returns an [Error] if a network or server error has occurred.
func (c *Client) CatalogQuery(ctx context.Context, opts QueryOptions) (*CatalogQueryResult, error) {
	var result CatalogQueryResult
	if err := c.doJSON(ctx, http.MethodPost, apiCatalogQuery, nil, newQueryRequest(opts), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CatalogDownload downloads a catalog resource to the local file system.
// The target is created or overwritten.
//
// Returns an [Error] if a network, server, or I/O error has occurred.
func (c *Client) CatalogDownload(ctx context.Context, resourceID, resourceVersion int64, target string) error {
	path := fmt.Sprintf(apiCatalogDownload, resourceID, resourceVersion)
	return c.doFile(ctx, path, nil, target)
}
