package slipo

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
)

// DefaultBaseURL is the SLIPO API endpoint used when no base URL is
// configured.
const DefaultBaseURL = "https://app.dev.slipo.eu/"

const (
	defaultTimeout = 30 * time.Second

	headerAPIKey       = "X-API-Key"
	headerSessionToken = "X-API-Session-Token"
)

const apiKeyValidate = "api/v1/key/validate/"

// Client is the SLIPO API client.
//
// A Client issues synchronous, blocking requests: each method sends one
// request and returns after the full response has been received (or, for
// downloads, after the full body has been written to disk). The Client
// holds no mutable state beyond its read-only configuration and is safe
// for concurrent use by multiple goroutines.
type Client struct {
	baseURL       string
	apiKey        string
	httpClient    *http.Client
	timeout       time.Duration
	logger        hclog.Logger
	fs            afero.Fs
	userAgent     string
	allowInsecure bool
}

// NewClient creates a new SLIPO client for the given API key.
//
// An application key can be generated using the SLIPO Workbench. The
// default endpoint is [DefaultBaseURL]; use [WithBaseURL] to target a
// different installation.
//
// The configuration is validated once, before any network call: the API
// key must be non-empty and the base URL must be an absolute https URL.
// A non-https base URL is rejected with an [Error] of code
// [CodeInvalidConfig] unless [WithInsecureBaseURL] is supplied, in which
// case a warning is logged instead.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	c := &Client{
		baseURL:   DefaultBaseURL,
		apiKey:    apiKey,
		timeout:   defaultTimeout,
		logger:    hclog.Default().Named("slipo"),
		fs:        afero.NewOsFs(),
		userAgent: "slipo-go/" + Version,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}

	if err := c.checkConfig(); err != nil {
		return nil, err
	}

	if !strings.HasSuffix(c.baseURL, "/") {
		c.baseURL += "/"
	}

	return c, nil
}

// clientConfig mirrors the validated fields of Client. Validation runs
// against exported fields so the rules stay declarative.
type clientConfig struct {
	APIKey  string
	BaseURL string
}

func (c *Client) checkConfig() error {
	cfg := clientConfig{APIKey: c.apiKey, BaseURL: c.baseURL}

	err := validation.ValidateStruct(&cfg,
		validation.Field(&cfg.APIKey, validation.Required.Error("an API key is required")),
		validation.Field(&cfg.BaseURL, validation.Required, validation.By(c.checkBaseURL)),
	)
	if err != nil {
		return newError(CodeInvalidConfig, err.Error(), 0, err)
	}
	return nil
}

// checkBaseURL enforces the https-only policy. HTTP is allowed only when
// the insecure override is set, and even then the API key travels in
// clear text, so a warning is logged.
func (c *Client) checkBaseURL(value interface{}) error {
	raw, _ := value.(string)

	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if !u.IsAbs() || u.Host == "" {
		return validation.NewError("validation_base_url", "must be an absolute URL")
	}

	switch u.Scheme {
	case "https":
		return nil
	case "http":
		if !c.allowInsecure {
			return validation.NewError("validation_base_url", "https is required for API requests")
		}
		c.logger.Warn("using an API key over an unsecured connection", "base_url", raw)
		return nil
	default:
		return validation.NewError("validation_base_url", "must use the http or https scheme")
	}
}

// BaseURL returns the configured base URL, normalized with a trailing
// slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Validate checks the configured application key against the server and
// returns the session token issued for it.
//
// Returns an [Error] if the key is rejected or a network or server error
// has occurred.
func (c *Client) Validate(ctx context.Context) (string, error) {
	req, err := c.newRequest(ctx, http.MethodGet, apiKeyValidate, nil, nil, "")
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", newError(CodeTransport, "key validation request failed", 0, err)
	}
	defer resp.Body.Close()

	if err := c.decodeEnvelope(resp, nil); err != nil {
		return "", err
	}

	return resp.Header.Get(headerSessionToken), nil
}
