package report

import (
	"fmt"
	"strings"
)

// ConfigurationError signals an invalid engine configuration: an empty
// source list, or grouping and measuring the same field.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string { return e.Message }

// NotFoundError names every requested source that does not exist, not
// just the first one.
type NotFoundError struct {
	Missing []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("the following file(s) do not exist: %s", strings.Join(e.Missing, ", "))
}

// InvalidDateError signals a date filter that does not parse as YYYY-MM-DD.
type InvalidDateError struct {
	Input string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("%q is not a valid date, expected YYYY-MM-DD", e.Input)
}

// MalformedRecordError identifies the first line that failed to parse as a
// structured record. Loading stops at the first occurrence.
type MalformedRecordError struct {
	Source string
	Line   int
	Err    error
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("line %d in %s is not valid JSON: %v", e.Line, e.Source, e.Err)
}

func (e *MalformedRecordError) Unwrap() error { return e.Err }

// UnknownFieldError signals a grouping or target field that is not a valid
// leaf field. Valid holds the sorted candidates for the error message.
type UnknownFieldError struct {
	Name  string
	Role  string // "field" or "target"
	Valid []string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("%q is not valid %s, valid choices: %s",
		e.Name, e.Role, strings.Join(e.Valid, ", "))
}
