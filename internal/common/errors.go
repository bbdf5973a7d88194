package common

import (
	"errors"
	"fmt"
)

// Error conditions surfaced by a single fetch invocation
var (
	// ErrInputParse indicates stdin was not valid JSON
	ErrInputParse = errors.New("invalid input")
	// ErrMissingURL indicates the url field or element is absent, empty, or not a string
	ErrMissingURL = errors.New("missing required url")
	// ErrInvalidConfiguration indicates configuration issues
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// WrapError wraps an error with additional context information
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// WrapErrorf wraps an error with formatted context information
func WrapErrorf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// NewError creates a new error with a formatted message
func NewError(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// InputParseError carries the decoder's reason for rejecting stdin.
type InputParseError struct {
	Reason string
}

func (e *InputParseError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInputParse.Error(), e.Reason)
}

func (e *InputParseError) Unwrap() error {
	return ErrInputParse
}

// NewInputParseError creates a new input parse error
func NewInputParseError(reason string) *InputParseError {
	return &InputParseError{Reason: reason}
}

// RequestFailedError represents a transport-level failure (DNS, connect, TLS, timeout).
// Error() is the underlying error text, unchanged.
type RequestFailedError struct {
	URL     string
	Wrapped error
}

func (e *RequestFailedError) Error() string {
	if e.Wrapped == nil {
		return "request failed"
	}
	return e.Wrapped.Error()
}

func (e *RequestFailedError) Unwrap() error {
	return e.Wrapped
}

// NewRequestFailedError creates a new request failure for url
func NewRequestFailedError(url string, wrapped error) *RequestFailedError {
	return &RequestFailedError{
		URL:     url,
		Wrapped: wrapped,
	}
}

// ValidationError represents validation errors with field-specific information
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field '%s': %s (value: %v)", e.Field, e.Message, e.Value)
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Section string
	Field   string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	if e.Section != "" && e.Field != "" {
		return fmt.Sprintf("configuration error in section '%s', field '%s': %s", e.Section, e.Field, e.Reason)
	} else if e.Section != "" {
		return fmt.Sprintf("configuration error in section '%s': %s", e.Section, e.Reason)
	}
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrInvalidConfiguration
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(section, field, reason string) *ConfigurationError {
	return &ConfigurationError{
		Section: section,
		Field:   field,
		Reason:  reason,
	}
}

// IsTerminal reports whether err is one of the conditions that end an
// invocation with an error output.
func IsTerminal(err error) bool {
	var reqErr *RequestFailedError
	return errors.Is(err, ErrMissingURL) || errors.Is(err, ErrInputParse) || errors.As(err, &reqErr)
}
