package slipo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	gopath "path"
	"strings"

	"github.com/go-openapi/strfmt"
)

const (
	apiFileBrowse   = "api/v1/file-system/"
	apiFileDownload = "api/v1/file-system/"
	apiFileUpload   = "api/v1/file-system/upload/"
)

// FileInfo describes a file on the remote user file system.
type FileInfo struct {
	Name     string          `json:"name"`
	Path     string          `json:"path"`
	Size     int64           `json:"size"`
	Modified strfmt.DateTime `json:"modified,omitempty"`
}

// DirectoryInfo describes a folder on the remote user file system,
// including its files and nested folders.
type DirectoryInfo struct {
	Name    string          `json:"name"`
	Path    string          `json:"path"`
	Files   []FileInfo      `json:"files,omitempty"`
	Folders []DirectoryInfo `json:"folders,omitempty"`
}

// uploadRequest is the JSON metadata part of a file upload.
type uploadRequest struct {
	Path      string `json:"path"`
	Filename  string `json:"filename"`
	Overwrite bool   `json:"overwrite"`
}

// FileBrowse lists all files and folders on the remote file system.
//
// Returns an [Error] if a network or server error has occurred.
func (c *Client) FileBrowse(ctx context.Context) (*DirectoryInfo, error) {
	var result DirectoryInfo
	if err := c.doJSON(ctx, http.MethodGet, apiFileBrowse, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// FileDownload downloads a file from the remote file system.
//
// source is the relative path on the remote file system; target is the
// local path where the file is saved. An existing target is rejected
// unless overwrite is set, and a target naming an existing directory is
// always rejected; both checks run before any request is sent.
//
// Returns an [Error] if a network, server, or I/O error has occurred.
func (c *Client) FileDownload(ctx context.Context, source, target string, overwrite bool) error {
	if info, err := c.fs.Stat(target); err == nil {
		if info.IsDir() {
			return newError(CodeIO, fmt.Sprintf("path %s is a directory", target), 0, nil)
		}
		if !overwrite {
			return newError(CodeIO, fmt.Sprintf("file %s already exists", target), 0, nil)
		}
	}

	query := url.Values{}
	query.Set("path", source)

	return c.doFile(ctx, apiFileDownload, query, target)
}

// FileUpload uploads a local file to the remote file system.
//
// source is the local path of the file to upload; target is the relative
// path on the remote file system where the file is saved, with any
// leading slash ignored. Missing remote directories are created. An
// existing remote file is rejected by the server unless overwrite is
// set.
//
// File size and space quotas are enforced on the server. The default
// installation allows files up to 20 MB, a user space of 5 GB, and
// directory nesting up to 5 levels.
//
// Returns an [Error] if a network, server, or I/O error has occurred.
func (c *Client) FileUpload(ctx context.Context, source, target string, overwrite bool) (*FileInfo, error) {
	target = strings.TrimPrefix(target, "/")
	dir, filename := gopath.Split(target)

	meta := uploadRequest{
		Path:      strings.TrimSuffix(dir, "/"),
		Filename:  filename,
		Overwrite: overwrite,
	}

	var result FileInfo
	if err := c.doUpload(ctx, apiFileUpload, meta, source, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
