package slipo

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-openapi/strfmt"
)

const (
	apiProcessQuery  = "api/v1/process/"
	apiProcessSave   = "api/v1/process/%d/save"
	apiProcessStatus = "api/v1/process/%d/%d/"
	apiProcessStart  = "api/v1/process/%d/%d/start"
	apiProcessStop   = "api/v1/process/%d/%d/stop"
	apiProcessFile   = "api/v1/process/%d/%d/file/%d"
)

// Execution status values reported by [ProcessExecution.Status].
const (
	ExecutionRunning   = "RUNNING"
	ExecutionCompleted = "COMPLETED"
	ExecutionFailed    = "FAILED"
	ExecutionStopped   = "STOPPED"
	ExecutionUnknown   = "UNKNOWN"
)

// File types produced during a workflow execution, reported by
// [ExecutionFile.Type].
const (
	// FileTypeConfiguration is a tool configuration file.
	FileTypeConfiguration = "CONFIGURATION"

	// FileTypeInput is an input file.
	FileTypeInput = "INPUT"

	// FileTypeOutput is an output file.
	FileTypeOutput = "OUTPUT"

	// FileTypeSample holds sample data collected during step execution.
	FileTypeSample = "SAMPLE"

	// FileTypeKPI holds tool specific or aggregated KPI data.
	FileTypeKPI = "KPI"

	// FileTypeQA holds tool specific QA data.
	FileTypeQA = "QA"

	// FileTypeLog holds logs recorded during step execution.
	FileTypeLog = "LOG"
)

// Process is a POI data integration workflow, identified by id and
// revision.
type Process struct {
	ID          int64  `json:"id"`
	Version     int64  `json:"version"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	CreatedOn  strfmt.DateTime `json:"createdOn,omitempty"`
	UpdatedOn  strfmt.DateTime `json:"updatedOn,omitempty"`
	ExecutedOn strfmt.DateTime `json:"executedOn,omitempty"`
}

// ProcessQueryResult is one page of workflow query results.
type ProcessQueryResult struct {
	Items     []Process `json:"items"`
	PageIndex int       `json:"pageIndex"`
	PageSize  int       `json:"pageSize"`
	Count     int64     `json:"count"`
}

// ProcessExecution is the state of a workflow execution instance,
// including its steps and the files they produced.
type ProcessExecution struct {
	ID             int64  `json:"id"`
	ProcessID      int64  `json:"processId"`
	ProcessVersion int64  `json:"processVersion"`
	Name           string `json:"name,omitempty"`
	Status         string `json:"status"`

	SubmittedOn strfmt.DateTime `json:"submittedOn,omitempty"`
	StartedOn   strfmt.DateTime `json:"startedOn,omitempty"`
	CompletedOn strfmt.DateTime `json:"completedOn,omitempty"`

	ErrorMessage string `json:"errorMessage,omitempty"`

	Steps []ExecutionStep `json:"steps,omitempty"`
}

// IsRunning returns true while the execution has not reached a terminal
// status.
func (e *ProcessExecution) IsRunning() bool {
	return e.Status == ExecutionRunning
}

// IsCompleted returns true if the execution finished successfully.
func (e *ProcessExecution) IsCompleted() bool {
	return e.Status == ExecutionCompleted
}

// IsFailed returns true if the execution failed.
func (e *ProcessExecution) IsFailed() bool {
	return e.Status == ExecutionFailed
}

// ExecutionStep is a single step of a workflow execution.
type ExecutionStep struct {
	Key       int64  `json:"key"`
	Name      string `json:"name"`
	Component string `json:"component,omitempty"`
	Operation string `json:"operation,omitempty"`
	Status    string `json:"status"`

	StartedOn   strfmt.DateTime `json:"startedOn,omitempty"`
	CompletedOn strfmt.DateTime `json:"completedOn,omitempty"`

	Files []ExecutionFile `json:"files,omitempty"`
}

// ExecutionFile is a file created during a workflow execution. Its id
// can be passed to [Client.ProcessFileDownload] or used to build an
// [OutputInput].
type ExecutionFile struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Size int64  `json:"size"`
	Type string `json:"type"`
}

// ProcessQuery queries workflow instances.
//
// Returns an [Error] if a network or server error has occurred.
func (c *Client) ProcessQuery(ctx context.Context, opts QueryOptions) (*ProcessQueryResult, error) {
	var result ProcessQueryResult
	if err := c.doJSON(ctx, http.MethodPost, apiProcessQuery, nil, newQueryRequest(opts), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ProcessSave creates a new version of the specified workflow by copying
// its most recent version.
//
// Returns an [Error] if a network or server error has occurred.
func (c *Client) ProcessSave(ctx context.Context, processID int64) (*Process, error) {
	path := fmt.Sprintf(apiProcessSave, processID)

	var result Process
	if err := c.doJSON(ctx, http.MethodPost, path, nil, struct{}{}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ProcessStart starts or resumes the execution of a workflow instance.
//
// Returns an [Error] if a network or server error has occurred.
func (c *Client) ProcessStart(ctx context.Context, processID, processVersion int64) (*ProcessExecution, error) {
	path := fmt.Sprintf(apiProcessStart, processID, processVersion)

	var result ProcessExecution
	if err := c.doJSON(ctx, http.MethodPost, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ProcessStop stops a running workflow execution instance.
//
// Returns an [Error] if a network or server error has occurred.
func (c *Client) ProcessStop(ctx context.Context, processID, processVersion int64) error {
	path := fmt.Sprintf(apiProcessStop, processID, processVersion)
	return c.doJSON(ctx, http.MethodPost, path, nil, nil, nil)
}

// ProcessStatus checks the status of a workflow execution instance.
//
// Returns an [Error] if a network or server error has occurred.
func (c *Client) ProcessStatus(ctx context.Context, processID, processVersion int64) (*ProcessExecution, error) {
	path := fmt.Sprintf(apiProcessStatus, processID, processVersion)

	var result ProcessExecution
	if err := c.doJSON(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ProcessFileDownload downloads an input or output file of a workflow
// execution instance to the local file system. The target is created or
// overwritten. See the FileType* constants for the file types an
// execution may produce.
//
// Returns an [Error] if a network, server, or I/O error has occurred.
func (c *Client) ProcessFileDownload(ctx context.Context, processID, processVersion, fileID int64, target string) error {
	path := fmt.Sprintf(apiProcessFile, processID, processVersion, fileID)
	return c.doFile(ctx, path, nil, target)
}
