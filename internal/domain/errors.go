// internal/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// Authorization errors. ErrUnauthorized matches every denial; the
	// remaining four identify why the request was denied.
	ErrUnauthorized           = errors.New("unauthorized")
	ErrUnauthenticated        = errors.New("not authenticated")
	ErrWrongRole              = errors.New("wrong role")
	ErrNotOwner               = errors.New("not owner")
	ErrInvalidStateTransition = errors.New("invalid state transition")

	// Backend errors
	ErrConflict = errors.New("conflict")
	ErrBackend  = errors.New("backend unavailable")

	// Entity-related errors
	ErrNGONotFound         = fmt.Errorf("ngo %w", ErrNotFound)
	ErrCauseNotFound       = fmt.Errorf("cause %w", ErrNotFound)
	ErrOpportunityNotFound = fmt.Errorf("opportunity %w", ErrNotFound)
	ErrApplicationNotFound = fmt.Errorf("volunteer application %w", ErrNotFound)
	ErrProfileNotFound     = fmt.Errorf("profile %w", ErrNotFound)
	ErrAuditLogNotFound    = fmt.Errorf("audit log %w", ErrNotFound)

	// Conflict causes
	ErrDuplicateApplication = errors.New("already applied to this opportunity")
	ErrStaleStatus          = errors.New("status changed concurrently")
)

// DenyReason tells callers why an authorization decision was negative.
type DenyReason string

const (
	DenyUnauthenticated        DenyReason = "unauthenticated"
	DenyWrongRole              DenyReason = "wrong_role"
	DenyNotOwner               DenyReason = "not_owner"
	DenyInvalidStateTransition DenyReason = "invalid_state_transition"
)

// Sentinel returns the sentinel error matching the reason.
func (r DenyReason) Sentinel() error {
	switch r {
	case DenyUnauthenticated:
		return ErrUnauthenticated
	case DenyWrongRole:
		return ErrWrongRole
	case DenyNotOwner:
		return ErrNotOwner
	case DenyInvalidStateTransition:
		return ErrInvalidStateTransition
	default:
		return ErrUnauthorized
	}
}

// ValidationError is returned before any backend call when input is malformed.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid input: %s", e.Message)
	}
	return fmt.Sprintf("invalid input: %s %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// AuthorizationError carries a denial back to the caller.
type AuthorizationError struct {
	Reason   DenyReason
	Action   string
	Resource string
	Detail   string
}

func (e *AuthorizationError) Error() string {
	msg := fmt.Sprintf("%s denied: %s", e.Action, e.Reason.Sentinel())
	if e.Resource != "" {
		msg += " (" + e.Resource + ")"
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Is lets errors.Is match both ErrUnauthorized and the reason's sentinel.
func (e *AuthorizationError) Is(target error) bool {
	return target == ErrUnauthorized || target == e.Reason.Sentinel()
}

// ConflictError reports a uniqueness or state violation detected by the backend.
type ConflictError struct {
	Resource string
	Err      error
}

func (e *ConflictError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Resource, ErrConflict)
	}
	return fmt.Sprintf("%s: %s: %v", e.Resource, ErrConflict, e.Err)
}

func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

func (e *ConflictError) Unwrap() error { return e.Err }

// BackendError wraps a failure to reach or use the data store.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, ErrBackend, e.Err)
}

func (e *BackendError) Is(target error) bool { return target == ErrBackend }

func (e *BackendError) Unwrap() error { return e.Err }
