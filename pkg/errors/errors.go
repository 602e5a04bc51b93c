// Package errors provides custom error types for the libris catalog.
// These errors enable programmatic error checking with errors.Is and
// errors.As across the store, the codec and the command layer.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is, As and Join are re-exported so callers importing this package under
// the name "errors" keep the standard helpers.
var (
	Is   = errors.Is
	As   = errors.As
	Join = errors.Join
)

// Common sentinel errors for the catalog.
var (
	// ErrNotFound indicates that a requested item was not found.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates that an item with the same key already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates that provided input was invalid.
	ErrInvalidInput = errors.New("invalid input")

	// ErrParse indicates that persisted data could not be decoded.
	ErrParse = errors.New("parse error")

	// ErrIO indicates a file read or write failure.
	ErrIO = errors.New("io failure")
)

// NotFoundError represents an error when a resource is not found.
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with isbn %s not found", e.Resource, e.ID)
}

// Is implements errors.Is support.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// AlreadyExistsError is returned when adding a key that is already present.
type AlreadyExistsError struct {
	Resource string
	ID       string
}

// Error implements the error interface.
func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s with isbn %s already exists", e.Resource, e.ID)
}

// Is implements errors.Is support.
func (e *AlreadyExistsError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// NewAlreadyExistsError creates a new AlreadyExistsError.
func NewAlreadyExistsError(resource, id string) *AlreadyExistsError {
	return &AlreadyExistsError{Resource: resource, ID: id}
}

// ValidationError represents a validation failure.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError.
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// ParseError represents an error when parsing data formats.
type ParseError struct {
	Format  string // "json", "yaml"
	File    string
	Index   int // record position in the document, -1 when not applicable
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.File != "" && e.Index >= 0 {
		return fmt.Sprintf("parse error in %s file %s at record %d: %s", e.Format, e.File, e.Index, e.Message)
	}
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	if e.Index >= 0 {
		return fmt.Sprintf("%s parse error at record %d: %s", e.Format, e.Index, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// NewParseError creates a new ParseError.
func NewParseError(format, file string, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Index:   -1,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during I/O operations.
type IOError struct {
	Operation string // "read", "write", "create"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap.
func (e *IOError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// NewIOError creates a new IOError.
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// ResourceError represents an error during resource operations.
type ResourceError struct {
	Operation string // "create", "load", "get"
	Resource  string // "catalog", "config"
	ID        string
	Message   string
	Err       error
}

// Error implements the error interface.
func (e *ResourceError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("failed to %s %s %s: %s", e.Operation, e.Resource, e.ID, e.Message)
	}
	return fmt.Sprintf("failed to %s %s: %s", e.Operation, e.Resource, e.Message)
}

// Unwrap implements errors.Unwrap.
func (e *ResourceError) Unwrap() error {
	return e.Err
}

// NewResourceError creates a new ResourceError.
func NewResourceError(operation, resource, id string, err error) *ResourceError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ResourceError{
		Operation: operation,
		Resource:  resource,
		ID:        id,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsParse checks if an error is a parse error.
func IsParse(err error) bool {
	return errors.Is(err, ErrParse)
}

// IsIO checks if an error is an I/O failure.
func IsIO(err error) bool {
	return errors.Is(err, ErrIO)
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError.
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapResource wraps an error as a ResourceError.
func WrapResource(operation, resource, id string, err error) error {
	if err == nil {
		return nil
	}
	return NewResourceError(operation, resource, id, err)
}

// WrapParse attaches file to a decoding failure. A ParseError keeps its
// record index and message; any other error becomes a ParseError.
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}

	var pe *ParseError
	if errors.As(err, &pe) {
		located := *pe
		located.File = file
		if located.Format == "" {
			located.Format = format
		}
		return &located
	}
	return NewParseError(format, file, err.Error(), err)
}
