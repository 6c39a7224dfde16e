package ticket

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingField = errors.New("missing required field")
	ErrInvalidDate  = errors.New("invalid solved date")
	ErrInvalidCount = errors.New("invalid tickets solved count")
)

// SchemaError reports required columns absent from an export. It is fatal for a run.
type SchemaError struct {
	File    string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s missing column(s) %s", e.File, strings.Join(e.Missing, ", "))
}

// RecordError is a per-row problem that excludes the row from part of the pipeline.
type RecordError struct {
	Line  int
	Field string
	Value string
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("line %d: %v (%s=%q)", e.Line, e.Err, e.Field, e.Value)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}
