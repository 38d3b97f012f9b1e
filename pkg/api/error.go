package api

import (
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
	json "github.com/json-iterator/go"
)

// APIError represents a non-2xx response from the backend. Message holds
// the backend-supplied text when the body carried one ({"error": ...}
// takes priority over {"detail": ...}); it is empty otherwise.
type APIError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("[%d] %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("[%d] request failed", e.StatusCode)
}

// ParseError parses an error response from the API
func ParseError(resp *resty.Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode(),
		Body:       resp.Body(),
	}

	var body ErrorBody
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		switch {
		case body.Error != "":
			apiErr.Message = body.Error
		case body.Detail != "":
			apiErr.Message = body.Detail
		}
	}

	return apiErr
}

// UserMessage derives a user-facing message from an error: the backend's
// structured error text when present, the fallback otherwise (network
// failures and timeouts carry no body).
func UserMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// IsNotFound checks if error is due to resource not found
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 404
}

// IsServerError checks if error is due to server error (5xx)
func IsServerError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode >= 500
}
