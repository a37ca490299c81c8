package api

import (
	"fmt"
	"net/http"

	"github.com/annolab/labelctl/internal/errors"
)

// APIError represents a non-2xx response from the labeling service. Detail
// holds the server's human-readable message when one was provided.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("server returned %d", e.StatusCode)
}

// IsBusy reports whether err is the server's busy-conflict rejection
// (HTTP 423), which callers surface as a warning rather than a failure.
func IsBusy(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.StatusCode == http.StatusLocked
}

// Detail extracts the server-provided detail message from err, or returns
// fallback when none is present.
func Detail(err error, fallback string) string {
	var ae *APIError
	if errors.As(err, &ae) && ae.Detail != "" {
		return ae.Detail
	}
	return fallback
}

// categoryFor maps an HTTP status to an error category.
func categoryFor(statusCode int) errors.ErrorCategory {
	switch {
	case statusCode == http.StatusLocked:
		return errors.CategoryConflict
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return errors.CategoryAuth
	case statusCode >= 400 && statusCode < 500:
		return errors.CategoryValidation
	default:
		return errors.CategoryNetwork
	}
}
