package benchcharts

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates an input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrTemplateNotFound indicates the template for a chart kind is missing from the store.
var ErrTemplateNotFound = errors.New("template not found")

// ErrUnknownKind indicates an unsupported chart kind.
var ErrUnknownKind = errors.New("unknown chart kind")

// ErrInvalidJSON indicates the input file is not valid JSON.
var ErrInvalidJSON = errors.New("invalid JSON")

// ErrSchemaMismatch indicates the dataset does not match the series schema.
var ErrSchemaMismatch = errors.New("dataset does not match series schema")

// SchemaError reports where a dataset deviates from the series schema.
type SchemaError struct {
	Path   string // e.g. "series[2].data[0]"
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%v: %s", ErrSchemaMismatch, e.Reason)
	}
	return fmt.Sprintf("%v: %s: %s", ErrSchemaMismatch, e.Path, e.Reason)
}

func (e *SchemaError) Unwrap() error {
	return ErrSchemaMismatch
}

// WriteError represents a failure while persisting a rendered chart.
type WriteError struct {
	Path string
	Op   string // "mkdir", "write"
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// FileError ties a failure to the batch input file it aborted.
type FileError struct {
	Input string
	Err   error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Input, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}
