package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by repositories when no record matches.
var ErrNotFound = errors.New("record not found")

// ErrMissingVerificationToken is returned when bot verification is
// enforced but the client supplied no token.
var ErrMissingVerificationToken = errors.New("missing verification token")

// ErrVerificationFailed is returned when the bot-mitigation provider
// rejected the supplied token.
var ErrVerificationFailed = errors.New("verification failed")

// ValidationError reports required booking fields that were missing or
// empty. It maps to a 400 response.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// PersistenceFault wraps a storage-layer failure. It maps to a 500
// response with a generic message; the cause stays in the logs.
type PersistenceFault struct {
	Op  string
	Err error
}

func (e *PersistenceFault) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceFault) Unwrap() error {
	return e.Err
}
