package slipo

import (
	"net/http"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
)

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the base URL for API endpoints. The default is
// [DefaultBaseURL]. The URL must be absolute; a trailing slash is
// appended when missing.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the default request timeout. It has no effect when a
// custom HTTP client is supplied with [WithHTTPClient].
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets the logger used for request tracing and warnings. The
// default logs to standard error; pass hclog.NewNullLogger() to silence
// the client.
func WithLogger(logger hclog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithFs sets the filesystem used for reading upload sources and writing
// download targets. The default is the operating system filesystem.
func WithFs(fs afero.Fs) Option {
	return func(c *Client) {
		c.fs = fs
	}
}

// WithInsecureBaseURL allows a plain http base URL. The API key is sent
// with every request, so an unsecured connection exposes it; a warning
// is logged at construction time.
func WithInsecureBaseURL() Option {
	return func(c *Client) {
		c.allowInsecure = true
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}
