package romname

import (
	"errors"
	"fmt"
)

// Common sentinel errors for the library.
var (
	// ErrInvalidConfig indicates that the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrEntryNotFound indicates that no library entry matched.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrCacheOperation indicates that a cache operation failed.
	ErrCacheOperation = errors.New("cache operation failed")
)

// ConfigError represents a configuration error.
type ConfigError struct {
	// Field is the configuration field with the error
	Field string
	// Details provides additional context
	Details string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid configuration for '%s': %s", e.Field, e.Details)
	}
	return fmt.Sprintf("invalid configuration: %s", e.Details)
}

// Unwrap returns the underlying sentinel error.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// EntryNotFoundError is returned by Get for an unknown filename and by Find
// when no display name is similar enough to the query.
type EntryNotFoundError struct {
	// Filename is the filename passed to Get
	Filename string
	// Query is the search term passed to Find
	Query string
}

// Error implements the error interface.
func (e *EntryNotFoundError) Error() string {
	if e.Query != "" {
		return fmt.Sprintf("no entry matches '%s'", e.Query)
	}
	return fmt.Sprintf("entry not found: '%s'", e.Filename)
}

// Unwrap returns the underlying sentinel error.
func (e *EntryNotFoundError) Unwrap() error {
	return ErrEntryNotFound
}

// CacheError represents a cache operation error.
type CacheError struct {
	// Op is the operation that failed
	Op string
	// Details provides additional context
	Details string
}

// Error implements the error interface.
func (e *CacheError) Error() string {
	msg := fmt.Sprintf("cache %s failed", e.Op)
	if e.Details != "" {
		msg += fmt.Sprintf(": %s", e.Details)
	}
	return msg
}

// Unwrap returns the underlying sentinel error.
func (e *CacheError) Unwrap() error {
	return ErrCacheOperation
}
