package slipo

import (
	"context"
	"net/http"
)

const (
	apiToolkitProfiles  = "api/v1/toolkit/profiles"
	apiToolkitTransform = "api/v1/toolkit/transform"
	apiToolkitInterlink = "api/v1/toolkit/interlink"
	apiToolkitFuse      = "api/v1/toolkit/fuse"
	apiToolkitEnrich    = "api/v1/toolkit/enrich"
	apiToolkitExport    = "api/v1/toolkit/export"
)

// DataFormat is a data format supported by the transform and export
// operations.
type DataFormat string

const (
	FormatCSV          DataFormat = "CSV"
	FormatGPX          DataFormat = "GPX"
	FormatGeoJSON      DataFormat = "GEOJSON"
	FormatJSON         DataFormat = "JSON"
	FormatOSMPBF       DataFormat = "OSM_PBF"
	FormatOSMXML       DataFormat = "OSM_XML"
	FormatShapefile    DataFormat = "SHAPEFILE"
	FormatRDFXML       DataFormat = "RDF_XML"
	FormatRDFXMLAbbrev DataFormat = "RDF_XML_ABBREV"
	FormatTurtle       DataFormat = "TURTLE"
	FormatXML          DataFormat = "XML"
	FormatNTriples     DataFormat = "N_TRIPLES"
	FormatN3           DataFormat = "N3"
)

// Defaults applied to transform and export configurations.
const (
	DefaultEncoding = "UTF-8"
	DefaultCRS      = "EPSG:4326"
	DefaultLang     = "en"

	defaultDelimiter = ";"
	defaultQuote     = `"`
)

// TransformOptions controls a transform operation. Unset fields are sent
// as explicit nulls; the zero value is a valid configuration when a
// profile is given.
type TransformOptions struct {
	// Profile is the name of the transformation profile to use. Profile
	// names can be retrieved with [Client.Profiles]. When Profile is not
	// set, MappingSpec must be.
	Profile string

	// FeatureSource identifies the data source provider of the input
	// features.
	FeatureSource string

	// Encoding is the character set of the input data. Defaults to
	// UTF-8.
	Encoding string

	// AttrKey is the field holding a unique identifier for each entity.
	AttrKey string

	// AttrName is the field holding name literals.
	AttrName string

	// AttrCategory is the field holding classification literals, such as
	// point types or road classes.
	AttrCategory string

	// AttrGeometry is the name of the geometry column in the input
	// dataset.
	AttrGeometry string

	// Delimiter is the character delimiting attribute values. CSV input
	// only.
	Delimiter string

	// Quote is the quote character for string values. CSV input only.
	Quote string

	// AttrX and AttrY are the fields holding point coordinates. CSV
	// input only.
	AttrX string
	AttrY string

	// MappingSpec is the relative path to a YML file mapping the input
	// schema to RDF according to a custom ontology. Required when
	// Profile is not set.
	MappingSpec string

	// ClassificationSpec is the relative path to a YML or CSV file
	// describing a classification scheme.
	ClassificationSpec string

	// SourceCRS and TargetCRS are EPSG codes for the source and target
	// coordinate reference systems. Both default to EPSG:4326.
	SourceCRS string
	TargetCRS string

	// DefaultLang is the language tag for labels created in the output
	// RDF. Defaults to en.
	DefaultLang string
}

// transformConfig is the wire form of TransformOptions.
type transformConfig struct {
	Profile            *string `json:"profile"`
	InputFormat        *string `json:"inputFormat"`
	FeatureSource      *string `json:"featureSource"`
	Encoding           string  `json:"encoding"`
	AttrKey            *string `json:"attrKey"`
	AttrName           *string `json:"attrName"`
	AttrCategory       *string `json:"attrCategory"`
	AttrGeometry       *string `json:"attrGeometry"`
	Delimiter          *string `json:"delimiter"`
	Quote              *string `json:"quote"`
	AttrX              *string `json:"attrX"`
	AttrY              *string `json:"attrY"`
	MappingSpec        *string `json:"mappingSpec"`
	ClassificationSpec *string `json:"classificationSpec"`
	SourceCRS          string  `json:"sourceCRS"`
	TargetCRS          string  `json:"targetCRS"`
	DefaultLang        string  `json:"defaultLang"`
}

type transformRequest struct {
	Path          string          `json:"path"`
	Configuration transformConfig `json:"configuration"`
}

// ExportOptions controls an export operation.
type ExportOptions struct {
	// Delimiter is the field delimiter for records. Defaults to ";".
	Delimiter string

	// Quote is the quote character for string values. Defaults to `"`.
	Quote string

	// Encoding is the character set of the output data. Defaults to
	// UTF-8.
	Encoding string

	// SparqlFile is the relative path to a file holding a SPARQL SELECT
	// query retrieving the triples to export. The query must conform to
	// the ontology of the input RDF dataset.
	SparqlFile string

	// SourceCRS and TargetCRS are EPSG codes for the source and target
	// coordinate reference systems. Both default to EPSG:4326.
	SourceCRS string
	TargetCRS string

	// DefaultLang is the language tag of the labels to export. Defaults
	// to en.
	DefaultLang string
}

// exportConfig is the wire form of ExportOptions.
type exportConfig struct {
	Profile      string  `json:"profile"`
	OutputFormat string  `json:"outputFormat"`
	Delimiter    string  `json:"delimiter"`
	Quote        string  `json:"quote"`
	Encoding     string  `json:"encoding"`
	SparqlFile   *string `json:"sparqlFile"`
	SourceCRS    string  `json:"sourceCRS"`
	TargetCRS    string  `json:"targetCRS"`
	DefaultLang  string  `json:"defaultLang"`
}

type exportRequest struct {
	Input         Input        `json:"input"`
	Configuration exportConfig `json:"configuration"`
}

type interlinkRequest struct {
	Profile string `json:"profile"`
	Left    Input  `json:"left"`
	Right   Input  `json:"right"`
}

type fuseRequest struct {
	Profile string `json:"profile"`
	Left    Input  `json:"left"`
	Right   Input  `json:"right"`
	Links   Input  `json:"links"`
}

type enrichRequest struct {
	Profile string `json:"profile"`
	Input   Input  `json:"input"`
}

// Profiles lists the configuration profiles of all toolkit components,
// keyed by component name. Profile names are passed to the transform,
// interlink, fuse, enrich, and export operations.
//
// Returns an [Error] if a network or server error has occurred.
func (c *Client) Profiles(ctx context.Context) (map[string][]string, error) {
	var result map[string][]string
	if err := c.doJSON(ctx, http.MethodGet, apiToolkitProfiles, nil, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// TransformCSV transforms a CSV file on the remote user file system to
// an RDF dataset.
//
// Returns the execution registered for the operation, or an [Error] if a
// network or server error has occurred.
func (c *Client) TransformCSV(ctx context.Context, path string, opts TransformOptions) (*ProcessExecution, error) {
	return c.transform(ctx, path, FormatCSV, opts)
}

// TransformShapefile transforms a shapefile on the remote user file
// system to an RDF dataset.
//
// Returns the execution registered for the operation, or an [Error] if a
// network or server error has occurred.
func (c *Client) TransformShapefile(ctx context.Context, path string, opts TransformOptions) (*ProcessExecution, error) {
	return c.transform(ctx, path, FormatShapefile, opts)
}

func (c *Client) transform(ctx context.Context, path string, format DataFormat, opts TransformOptions) (*ProcessExecution, error) {
	if path == "" {
		return nil, newError(CodeInvalidInput, "a remote file path is required", 0, nil)
	}
	if opts.Profile == "" && opts.MappingSpec == "" {
		return nil, newError(CodeInvalidInput, "either a profile or a mapping specification is required", 0, nil)
	}

	body := transformRequest{
		Path: path,
		Configuration: transformConfig{
			Profile:            optString(opts.Profile),
			InputFormat:        optString(string(format)),
			FeatureSource:      optString(opts.FeatureSource),
			Encoding:           orDefault(opts.Encoding, DefaultEncoding),
			AttrKey:            optString(opts.AttrKey),
			AttrName:           optString(opts.AttrName),
			AttrCategory:       optString(opts.AttrCategory),
			AttrGeometry:       optString(opts.AttrGeometry),
			Delimiter:          optString(opts.Delimiter),
			Quote:              optString(opts.Quote),
			AttrX:              optString(opts.AttrX),
			AttrY:              optString(opts.AttrY),
			MappingSpec:        optString(opts.MappingSpec),
			ClassificationSpec: optString(opts.ClassificationSpec),
			SourceCRS:          orDefault(opts.SourceCRS, DefaultCRS),
			TargetCRS:          orDefault(opts.TargetCRS, DefaultCRS),
			DefaultLang:        orDefault(opts.DefaultLang, DefaultLang),
		},
	}

	var result ProcessExecution
	if err := c.doJSON(ctx, http.MethodPost, apiToolkitTransform, nil, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Interlink generates links between two RDF datasets.
//
// Returns the execution registered for the operation, or an [Error] if a
// network or server error has occurred.
func (c *Client) Interlink(ctx context.Context, profile string, left, right Input) (*ProcessExecution, error) {
	if err := checkOperation(profile, left, right); err != nil {
		return nil, err
	}

	body := interlinkRequest{Profile: profile, Left: left, Right: right}

	var result ProcessExecution
	if err := c.doJSON(ctx, http.MethodPost, apiToolkitInterlink, nil, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Fuse fuses two RDF datasets using their links and produces a new RDF
// dataset.
//
// Returns the execution registered for the operation, or an [Error] if a
// network or server error has occurred.
func (c *Client) Fuse(ctx context.Context, profile string, left, right, links Input) (*ProcessExecution, error) {
	if err := checkOperation(profile, left, right, links); err != nil {
		return nil, err
	}

	body := fuseRequest{Profile: profile, Left: left, Right: right, Links: links}

	var result ProcessExecution
	if err := c.doJSON(ctx, http.MethodPost, apiToolkitFuse, nil, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Enrich enriches an RDF dataset.
//
// Returns the execution registered for the operation, or an [Error] if a
// network or server error has occurred.
func (c *Client) Enrich(ctx context.Context, profile string, source Input) (*ProcessExecution, error) {
	if err := checkOperation(profile, source); err != nil {
		return nil, err
	}

	body := enrichRequest{Profile: profile, Input: source}

	var result ProcessExecution
	if err := c.doJSON(ctx, http.MethodPost, apiToolkitEnrich, nil, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ExportCSV exports an RDF dataset to a CSV file.
//
// Returns the execution registered for the operation, or an [Error] if a
// network or server error has occurred.
func (c *Client) ExportCSV(ctx context.Context, profile string, source Input, opts ExportOptions) (*ProcessExecution, error) {
	return c.export(ctx, profile, source, FormatCSV, opts)
}

// ExportShapefile exports an RDF dataset to a shapefile.
//
// Returns the execution registered for the operation, or an [Error] if a
// network or server error has occurred.
func (c *Client) ExportShapefile(ctx context.Context, profile string, source Input, opts ExportOptions) (*ProcessExecution, error) {
	return c.export(ctx, profile, source, FormatShapefile, opts)
}

func (c *Client) export(ctx context.Context, profile string, source Input, format DataFormat, opts ExportOptions) (*ProcessExecution, error) {
	if err := checkOperation(profile, source); err != nil {
		return nil, err
	}

	body := exportRequest{
		Input: source,
		Configuration: exportConfig{
			Profile:      profile,
			OutputFormat: string(format),
			Delimiter:    orDefault(opts.Delimiter, defaultDelimiter),
			Quote:        orDefault(opts.Quote, defaultQuote),
			Encoding:     orDefault(opts.Encoding, DefaultEncoding),
			SparqlFile:   optString(opts.SparqlFile),
			SourceCRS:    orDefault(opts.SourceCRS, DefaultCRS),
			TargetCRS:    orDefault(opts.TargetCRS, DefaultCRS),
			DefaultLang:  orDefault(opts.DefaultLang, DefaultLang),
		},
	}

	var result ProcessExecution
	if err := c.doJSON(ctx, http.MethodPost, apiToolkitExport, nil, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// checkOperation validates the common arguments of the toolkit
// operations before a request is built.
func checkOperation(profile string, inputs ...Input) error {
	if profile == "" {
		return newError(CodeInvalidInput, "a profile is required", 0, nil)
	}
	for _, in := range inputs {
		if err := in.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
