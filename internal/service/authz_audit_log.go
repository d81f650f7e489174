package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/dangerclosesec/goodworks/internal/audit"
	"github.com/dangerclosesec/goodworks/internal/model"
	"github.com/dangerclosesec/goodworks/internal/repository"
)

// Ensure AuthzAuditLogService implements the audit.Logger interface
var _ audit.Logger = (*AuthzAuditLogService)(nil)

// AuditLogReader serves the admin audit trail views.
type AuditLogReader interface {
	GetAuditLogs(ctx context.Context, params repository.QueryParams) ([]model.AuthzAuditLog, int64, error)
	GetAuditLogByID(ctx context.Context, id uuid.UUID) (*model.AuthzAuditLog, error)
}

// AuthzAuditLogService handles operations related to authorization audit logs
type AuthzAuditLogService struct {
	repo repository.AuthzAuditLogRepositoryIface
}

// NewAuthzAuditLogService creates a new AuthzAuditLogService
func NewAuthzAuditLogService(repo repository.AuthzAuditLogRepositoryIface) *AuthzAuditLogService {
	return &AuthzAuditLogService{
		repo: repo,
	}
}

func (s *AuthzAuditLogService) entry(ctx context.Context, actionType string, e audit.Entry) *model.AuthzAuditLog {
	allowed := e.Allowed
	log := &model.AuthzAuditLog{
		ActionType:   actionType,
		Action:       e.Action,
		Result:       &allowed,
		DenyReason:   e.DenyReason,
		ResourceType: e.ResourceType,
		ResourceID:   e.ResourceID,
		SubjectID:    e.SubjectID,
		Roles:        e.Roles,
		RequestID:    middleware.GetReqID(ctx),
		Timestamp:    time.Now().UTC(),
	}
	if len(e.Attributes) > 0 {
		log.Context = model.JSONMap{}
		for k, v := range e.Attributes {
			log.Context[k] = v
		}
	}
	if info, ok := audit.RequestInfoFromContext(ctx); ok {
		if log.Context == nil {
			log.Context = model.JSONMap{}
		}
		log.Context["client_ip"] = info.ClientIP
		log.Context["user_agent"] = info.UserAgent
	}
	return log
}

// LogDecision logs the outcome of an authorization check
func (s *AuthzAuditLogService) LogDecision(ctx context.Context, e audit.Entry) error {
	return s.repo.Create(ctx, s.entry(ctx, model.ActionDecision, e))
}

// LogMutation logs a write acknowledged by the backend
func (s *AuthzAuditLogService) LogMutation(ctx context.Context, e audit.Entry) error {
	return s.repo.Create(ctx, s.entry(ctx, model.ActionMutation, e))
}

// GetAuditLogs retrieves audit logs based on query parameters
func (s *AuthzAuditLogService) GetAuditLogs(
	ctx context.Context,
	params repository.QueryParams,
) ([]model.AuthzAuditLog, int64, error) {
	return s.repo.Query(ctx, params)
}

// GetAuditLogByID retrieves an audit log by ID
func (s *AuthzAuditLogService) GetAuditLogByID(
	ctx context.Context,
	id uuid.UUID,
) (*model.AuthzAuditLog, error) {
	log, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get audit log by ID: %w", err)
	}

	return log, nil
}
