// Package parsererror defines the error types produced by the import engine.
package parsererror

import "fmt"

// RowError represents a row-level parsing failure. Rows that fail with a
// RowError are counted and reported but never abort the batch.
type RowError struct {
	Row   int
	Field string
	Value string
	Err   error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: cannot parse %s: %s", e.Row, e.Field, e.Value)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// ValidationError represents a whole-file failure: the one fatal case where
// no row processing happens at all.
type ValidationError struct {
	Source string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s import: %s", e.Source, e.Reason)
}

// InvalidFormatError represents an input that does not conform to the
// expected shape for a specific source.
type InvalidFormatError struct {
	Source         string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format for source '%s': %s. Expected: %s",
		e.Source, e.Msg, e.ExpectedFormat)
}
