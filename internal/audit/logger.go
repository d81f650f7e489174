package audit

import (
	"context"
)

// Entry describes one authorization decision or one completed mutation.
type Entry struct {
	Action       string
	ResourceType string
	ResourceID   string
	SubjectID    string
	Roles        string
	Allowed      bool
	DenyReason   string
	Attributes   map[string]interface{}
}

// Logger defines the interface for auditing operations
type Logger interface {
	// LogDecision records the outcome of an authorization check
	LogDecision(ctx context.Context, e Entry) error

	// LogMutation records a mutation acknowledged by the backend
	LogMutation(ctx context.Context, e Entry) error
}

// NoOpLogger is a logger that does nothing
type NoOpLogger struct{}

// LogDecision implements Logger.LogDecision
func (l *NoOpLogger) LogDecision(ctx context.Context, e Entry) error {
	return nil
}

// LogMutation implements Logger.LogMutation
func (l *NoOpLogger) LogMutation(ctx context.Context, e Entry) error {
	return nil
}
