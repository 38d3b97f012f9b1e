package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cinedeck/cli/pkg/api"
)

// ErrorType categorizes different error types
type ErrorType string

const (
	// Network errors
	ErrorTypeNetwork ErrorType = "network"
	ErrorTypeTimeout ErrorType = "timeout"

	// Request errors
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeNotFound   ErrorType = "not_found"

	// Server errors
	ErrorTypeServer ErrorType = "server"

	// Unknown errors
	ErrorTypeUnknown ErrorType = "unknown"
)

// CLIError represents a structured error with context
type CLIError struct {
	Type       ErrorType
	Message    string
	Cause      error
	Suggestion string
	StatusCode int
}

// Error implements the error interface
func (e *CLIError) Error() string {
	return e.Message
}

// WithSuggestion adds a helpful suggestion to the error
func (e *CLIError) WithSuggestion(suggestion string) *CLIError {
	e.Suggestion = suggestion
	return e
}

// HasSuggestion returns true if the error has a suggestion
func (e *CLIError) HasSuggestion() bool {
	return e.Suggestion != ""
}

// Unwrap returns the underlying error
func (e *CLIError) Unwrap() error {
	return e.Cause
}

// NewCLIError creates a new CLI error
func NewCLIError(errorType ErrorType, message string, cause error) *CLIError {
	return &CLIError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// ValidationError creates a validation error
func ValidationError(field, reason string) *CLIError {
	message := fmt.Sprintf("Validation error: %s - %s", field, reason)
	return NewCLIError(ErrorTypeValidation, message, nil)
}

// IsValidation reports whether the error is a validation error.
func IsValidation(err error) bool {
	var cliErr *CLIError
	return errors.As(err, &cliErr) && cliErr.Type == ErrorTypeValidation
}

// NetworkError creates a network error
func NetworkError(message string) *CLIError {
	err := NewCLIError(ErrorTypeNetwork, message, nil)
	err.Suggestion = "Check that the backend is running and reachable, then try again."
	return err
}

// TimeoutError creates a timeout error
func TimeoutError() *CLIError {
	err := NewCLIError(ErrorTypeTimeout, "Request timed out", nil)
	err.Suggestion = "The server is taking too long to respond. Try again in a moment."
	return err
}

// NotFoundError creates a not found error
func NotFoundError(message string) *CLIError {
	return NewCLIError(ErrorTypeNotFound, message, nil)
}

// ServerError creates a server error
func ServerError(message string) *CLIError {
	err := NewCLIError(ErrorTypeServer, message, nil)
	err.Suggestion = "The server encountered an error. Try again in a few moments."
	return err
}

// CategorizeError converts a standard error into a CLIError
func CategorizeError(err error) *CLIError {
	if err == nil {
		return nil
	}

	// Check if it's already a CLIError
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr
	}

	// Backend responses carry a status code and optional message
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		msg := apiErr.Message
		switch {
		case apiErr.StatusCode == 404:
			if msg == "" {
				msg = "Resource not found"
			}
			return NotFoundError(msg)
		case apiErr.StatusCode >= 500:
			if msg == "" {
				msg = "Server error"
			}
			out := ServerError(msg)
			out.StatusCode = apiErr.StatusCode
			return out
		default:
			if msg == "" {
				msg = apiErr.Error()
			}
			out := NewCLIError(ErrorTypeUnknown, msg, err)
			out.StatusCode = apiErr.StatusCode
			return out
		}
	}

	// Categorize transport failures based on error message
	errMsg := err.Error()
	switch {
	case strings.Contains(errMsg, "connection refused"):
		return NetworkError("Could not connect to the backend. Make sure it's running.")
	case strings.Contains(errMsg, "no such host"):
		return NetworkError("Could not resolve the backend host.")
	case strings.Contains(errMsg, "timeout"), strings.Contains(errMsg, "context deadline exceeded"):
		return TimeoutError()
	default:
		return NewCLIError(ErrorTypeUnknown, errMsg, err)
	}
}

// FormatError returns a user-friendly error message
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	cliErr := CategorizeError(err)
	var sb strings.Builder

	sb.WriteString("Error")
	if cliErr.Type != ErrorTypeUnknown {
		sb.WriteString(" (")
		sb.WriteString(string(cliErr.Type))
		sb.WriteString(")")
	}
	sb.WriteString(": ")
	sb.WriteString(cliErr.Message)
	sb.WriteString("\n")

	if cliErr.HasSuggestion() {
		sb.WriteString("\nSuggestion: ")
		sb.WriteString(cliErr.Suggestion)
		sb.WriteString("\n")
	}

	return sb.String()
}
