// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
)

// Error kinds. Match with errors.Is.
var (
	// ErrSchema indicates a bad table or column reference or an unreadable catalog.
	ErrSchema = errors.New("schema error")

	// ErrQuery indicates the fetch failed after the schema was confirmed.
	ErrQuery = errors.New("query error")

	// ErrFilesystem indicates a directory or file could not be created or written.
	ErrFilesystem = errors.New("filesystem error")

	// ErrClassification is reserved. The classifier is total and never returns it.
	ErrClassification = errors.New("classification error")

	// ErrDuplicateID indicates the identifier column repeats a value.
	ErrDuplicateID = errors.New("duplicate identifier")
)

// PipelineError ties a failed operation to its error kind.
type PipelineError struct {
	Kind error
	Op   string
	Err  error
}

func (e *PipelineError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%v: %s", e.Kind, e.Op)
	}
	return fmt.Sprintf("%v: %s: %v", e.Kind, e.Op, e.Err)
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *PipelineError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// SchemaError wraps err as an ErrSchema failure of op.
func SchemaError(op string, err error) error {
	return &PipelineError{Kind: ErrSchema, Op: op, Err: err}
}

// QueryError wraps err as an ErrQuery failure of op.
func QueryError(op string, err error) error {
	return &PipelineError{Kind: ErrQuery, Op: op, Err: err}
}

// FilesystemError wraps err as an ErrFilesystem failure of op.
func FilesystemError(op string, err error) error {
	return &PipelineError{Kind: ErrFilesystem, Op: op, Err: err}
}
