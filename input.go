package slipo

import (
	"encoding/json"
	"fmt"
)

// InputKind discriminates the source of a toolkit operation input.
type InputKind string

const (
	// InputFileSystem identifies a file on the remote user file system.
	InputFileSystem InputKind = "FILESYSTEM"

	// InputCatalog identifies a catalog resource by id and revision.
	InputCatalog InputKind = "CATALOG"

	// InputOutput identifies an output file of a workflow execution by
	// process id, process revision, and file id.
	InputOutput InputKind = "OUTPUT"
)

// Input identifies a dataset consumed by a toolkit operation (interlink,
// fuse, enrich, export). It is a tagged union with three variants,
// constructed with [FileInput], [CatalogInput], or [OutputInput]:
//
//	client.Interlink(ctx, "profile",
//	    slipo.FileInput("datasets/osm.nt"),
//	    slipo.CatalogInput(42, 1),
//	)
//
// The zero Input is invalid and is rejected before a request is built.
// Inputs are immutable and never persisted; they exist only to be
// serialized into a request body.
type Input struct {
	kind InputKind

	path string

	id      int64
	version int64

	processID      int64
	processVersion int64
	fileID         int64
}

// FileInput returns an Input naming a file on the remote user file
// system by its relative path.
func FileInput(path string) Input {
	return Input{kind: InputFileSystem, path: path}
}

// CatalogInput returns an Input naming a catalog resource by id and
// revision.
func CatalogInput(id, version int64) Input {
	return Input{kind: InputCatalog, id: id, version: version}
}

// OutputInput returns an Input naming an output file of a workflow
// execution.
func OutputInput(processID, processVersion, fileID int64) Input {
	return Input{kind: InputOutput, processID: processID, processVersion: processVersion, fileID: fileID}
}

// Kind returns the input's discriminant, or the empty string for the
// zero Input.
func (in Input) Kind() InputKind {
	return in.kind
}

// Validate reports whether the input is usable in a request. It returns
// an [Error] with code [CodeInvalidInput] otherwise.
func (in Input) Validate() error {
	switch in.kind {
	case InputFileSystem:
		if in.path == "" {
			return newError(CodeInvalidInput, "a file system input requires a path", 0, nil)
		}
		return nil
	case InputCatalog, InputOutput:
		return nil
	default:
		return newError(CodeInvalidInput, "an input must be constructed with FileInput, CatalogInput, or OutputInput", 0, nil)
	}
}

// MarshalJSON serializes the input as the tagged descriptor the API
// expects.
func (in Input) MarshalJSON() ([]byte, error) {
	switch in.kind {
	case InputFileSystem:
		return json.Marshal(struct {
			Type InputKind `json:"type"`
			Path string    `json:"path"`
		}{in.kind, in.path})
	case InputCatalog:
		return json.Marshal(struct {
			Type    InputKind `json:"type"`
			ID      int64     `json:"id"`
			Version int64     `json:"version"`
		}{in.kind, in.id, in.version})
	case InputOutput:
		return json.Marshal(struct {
			Type           InputKind `json:"type"`
			ProcessID      int64     `json:"processId"`
			ProcessVersion int64     `json:"processVersion"`
			FileID         int64     `json:"fileId"`
		}{in.kind, in.processID, in.processVersion, in.fileID})
	default:
		return nil, in.Validate()
	}
}

// ResolveInput maps a polymorphic value to an [Input]. It accepts:
//
//   - an [Input], returned as-is after validation
//   - a string, interpreted as a remote file system path
//   - a slice of 2 integers, interpreted as a catalog resource id and
//     revision
//   - a slice of 3 integers, interpreted as a workflow process id,
//     revision, and output file id
//
// Any other value fails with an [Error] of code [CodeInvalidInput]. New
// code should prefer the explicit constructors; ResolveInput exists for
// callers porting from the dynamically typed client where these shapes
// were passed directly to the operations.
func ResolveInput(v interface{}) (Input, error) {
	switch value := v.(type) {
	case Input:
		return value, value.Validate()
	case string:
		return FileInput(value), nil
	case []int:
		ids := make([]int64, len(value))
		for i, id := range value {
			ids[i] = int64(id)
		}
		return inputFromIDs(ids)
	case []int64:
		return inputFromIDs(value)
	default:
		return Input{}, newError(CodeInvalidInput, fmt.Sprintf("unsupported input type %T", v), 0, nil)
	}
}

func inputFromIDs(ids []int64) (Input, error) {
	switch len(ids) {
	case 2:
		return CatalogInput(ids[0], ids[1]), nil
	case 3:
		return OutputInput(ids[0], ids[1], ids[2]), nil
	default:
		return Input{}, newError(CodeInvalidInput,
			fmt.Sprintf("expected 2 or 3 identifiers, got %d", len(ids)), 0, nil)
	}
}
