// Package apperrors defines the error taxonomy shared by the store, service
// and handler layers. Handlers translate these values into HTTP status codes,
// so lower layers never need to know about the transport.
package apperrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound marks lookups that matched no row.
	ErrNotFound = errors.New("not found")
	// ErrInvalidName marks a name that normalizes to an empty slug.
	ErrInvalidName = errors.New("name contains no sluggable characters")
	// ErrEncoding marks a QR payload generation failure. The enclosing save
	// must be aborted so a stale payload is never persisted.
	ErrEncoding = errors.New("qr payload encoding failed")
	// ErrInvalidCredentials marks a failed login or an unusable token.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError carries field-level messages for a 400 response body.
type ValidationError struct {
	Fields map[string]string
}

// NewValidation builds a ValidationError for a single field.
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	sort.Strings(parts)
	return "validation failed: " + strings.Join(parts, "; ")
}
