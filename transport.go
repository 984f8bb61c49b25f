package slipo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"path/filepath"
	"strings"
)

// maxErrorBodySize limits how much of a failed download response is read
// when parsing the error envelope. 4KB is sufficient for any error
// message the server produces.
const maxErrorBodySize = 4096

// envelope is the fixed response wrapper used by every JSON endpoint.
// Exactly one of Result, Error, or Errors is meaningful when present;
// Success=false implies an error field is present.
type envelope struct {
	Success bool            `json:"success"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   string          `json:"error,omitempty"`
	Errors  []envelopeError `json:"errors,omitempty"`
}

type envelopeError struct {
	Code        string `json:"code,omitempty"`
	Description string `json:"description"`
}

// message returns the server error message: errors[0].description when
// the errors array is present, the error field otherwise.
func (e *envelope) message() string {
	if len(e.Errors) > 0 {
		return e.Errors[0].Description
	}
	return e.Error
}

// newRequest builds a request against the configured base URL. The path
// is relative to the base URL; query may be nil.
func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (*http.Request, error) {
	endpoint := c.baseURL + strings.TrimPrefix(path, "/")
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, newError(CodeTransport, "failed to create request", 0, err)
	}

	req.Header.Set(headerAPIKey, c.apiKey)
	req.Header.Set("User-Agent", c.userAgent)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	return req, nil
}

// doJSON issues a request expecting a JSON envelope response and
// unwraps the result field into out. body and out may be nil.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var reader io.Reader
	contentType := ""
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return newError(CodeDecode, "failed to encode request body", 0, err)
		}
		reader = bytes.NewReader(buf)
		contentType = "application/json"
	}

	req, err := c.newRequest(ctx, method, path, query, reader, contentType)
	if err != nil {
		return err
	}

	c.logger.Debug("sending request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return newError(CodeTransport, fmt.Sprintf("%s %s failed", method, path), 0, err)
	}
	defer resp.Body.Close()

	return c.decodeEnvelope(resp, out)
}

// decodeEnvelope normalizes a JSON envelope response. A non-OK status or
// success=false becomes an *Error carrying the envelope message. On
// success the result field is unwrapped into out; when the result is
// absent, or does not match the shape out expects, out is left untouched
// and no error is reported.
func (c *Client) decodeEnvelope(resp *http.Response, out interface{}) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return newError(CodeTransport, "failed to read response", resp.StatusCode, err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return newError(CodeDecode, "failed to decode response envelope", resp.StatusCode, err)
	}

	if resp.StatusCode != http.StatusOK || !env.Success {
		return newError(CodeAPI, env.message(), resp.StatusCode, nil)
	}

	if out == nil || len(env.Result) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Result, out); err != nil {
		c.logger.Debug("discarding result payload of unexpected shape", "error", err)
	}
	return nil
}

// doFile issues a GET request whose response body is raw bytes and
// writes it to target on the configured filesystem. On a non-OK status
// the JSON error envelope is parsed with the same rule as doJSON. A
// partially written target is removed when the copy fails.
func (c *Client) doFile(ctx context.Context, path string, query url.Values, target string) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, query, nil, "")
	if err != nil {
		return err
	}

	c.logger.Debug("downloading", "path", path, "target", target)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return newError(CodeTransport, fmt.Sprintf("GET %s failed", path), 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		if err != nil {
			return newError(CodeTransport, "failed to read response", resp.StatusCode, err)
		}
		var env envelope
		if err := json.Unmarshal(body, &env); err != nil {
			return newError(CodeDecode, "failed to decode response envelope", resp.StatusCode, err)
		}
		return newError(CodeAPI, env.message(), resp.StatusCode, nil)
	}

	f, err := c.fs.Create(target)
	if err != nil {
		return newError(CodeIO, fmt.Sprintf("failed to create %s", target), 0, err)
	}

	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		// A partial download is never useful; remove it so a retry is
		// not blocked by the overwrite check.
		_ = c.fs.Remove(target)
		return newError(CodeIO, fmt.Sprintf("failed to write %s", target), 0, err)
	}

	if err := f.Close(); err != nil {
		return newError(CodeIO, fmt.Sprintf("failed to write %s", target), 0, err)
	}
	return nil
}

// doUpload issues a multipart POST carrying a JSON metadata part named
// "data" and a binary part named "file" with the contents of source,
// then normalizes the envelope response into out.
func (c *Client) doUpload(ctx context.Context, path string, meta interface{}, source string, out interface{}) error {
	src, err := c.fs.Open(source)
	if err != nil {
		return newError(CodeIO, fmt.Sprintf("failed to open %s", source), 0, err)
	}
	defer src.Close()

	metaBytes, err := json.Marshal(meta)
	if err != nil {
		return newError(CodeDecode, "failed to encode upload metadata", 0, err)
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	dataHeader := textproto.MIMEHeader{}
	dataHeader.Set("Content-Disposition", `form-data; name="data"`)
	dataHeader.Set("Content-Type", "application/json")
	dataPart, err := w.CreatePart(dataHeader)
	if err != nil {
		return newError(CodeIO, "failed to build upload request", 0, err)
	}
	if _, err := dataPart.Write(metaBytes); err != nil {
		return newError(CodeIO, "failed to build upload request", 0, err)
	}

	fileHeader := textproto.MIMEHeader{}
	fileHeader.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="file"; filename=%q`, filepath.Base(source)))
	fileHeader.Set("Content-Type", "application/octet-stream")
	filePart, err := w.CreatePart(fileHeader)
	if err != nil {
		return newError(CodeIO, "failed to build upload request", 0, err)
	}
	if _, err := io.Copy(filePart, src); err != nil {
		return newError(CodeIO, fmt.Sprintf("failed to read %s", source), 0, err)
	}

	if err := w.Close(); err != nil {
		return newError(CodeIO, "failed to build upload request", 0, err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, nil, &buf, w.FormDataContentType())
	if err != nil {
		return err
	}

	c.logger.Debug("uploading", "path", path, "source", source)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return newError(CodeTransport, fmt.Sprintf("POST %s failed", path), 0, err)
	}
	defer resp.Body.Close()

	return c.decodeEnvelope(resp, out)
}
