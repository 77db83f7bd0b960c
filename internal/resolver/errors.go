package resolver

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors, usable with errors.Is.
var (
	// ErrNotFound indicates no cluster matched, or no clusters exist at all.
	ErrNotFound = errors.New("cluster not found")

	// ErrAmbiguous indicates several clusters exist and none was selected.
	ErrAmbiguous = errors.New("ambiguous cluster selection")
)

// NotFoundError carries the identifier that failed to match. An empty
// Identifier means the platform has no clusters.
type NotFoundError struct {
	Identifier string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.Identifier == "" {
		return "no clusters found"
	}
	return fmt.Sprintf("cluster %q not found", e.Identifier)
}

// Unwrap returns ErrNotFound.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// AmbiguousError lists the clusters the caller can choose from.
type AmbiguousError struct {
	Names []string
}

// Error implements the error interface.
func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("multiple clusters found, specify one with --cluster (available: %s)", strings.Join(e.Names, ", "))
}

// Unwrap returns ErrAmbiguous.
func (e *AmbiguousError) Unwrap() error {
	return ErrAmbiguous
}
