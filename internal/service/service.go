// internal/service/service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/dangerclosesec/goodworks/internal/audit"
	"github.com/dangerclosesec/goodworks/internal/auth"
	"github.com/dangerclosesec/goodworks/internal/authz"
	"github.com/dangerclosesec/goodworks/internal/cache"
	"github.com/dangerclosesec/goodworks/internal/domain"
	"github.com/dangerclosesec/goodworks/internal/metrics"
	"github.com/dangerclosesec/goodworks/internal/repository"
)

const (
	defaultRoleTTL = 30 * time.Second
	defaultViewTTL = 5 * time.Minute
)

// Deps lists the collaborators of the facade. Audit, Relations and Metrics
// are optional.
type Deps struct {
	NGOs          repository.NGORepositoryIface
	Causes        repository.CauseRepositoryIface
	Opportunities repository.OpportunityRepositoryIface
	Donations     repository.DonationRepositoryIface
	Applications  repository.ApplicationRepositoryIface
	Profiles      repository.ProfileRepositoryIface
	Roles         repository.UserRoleRepositoryIface
	AuditLogs     AuditLogReader

	Loader    *cache.Loader
	Audit     audit.Logger
	Relations RelationSync
	Metrics   *metrics.Metrics

	RoleTTL time.Duration
	ViewTTL time.Duration
}

// Facade groups one service per entity. Every operation validates its
// input, authorizes the caller found in the context, talks to the backend
// and invalidates the cached views its mutation made stale.
type Facade struct {
	NGOs          *NGOService
	Causes        *CauseService
	Opportunities *OpportunityService
	Donations     *DonationService
	Applications  *ApplicationService
	Profiles      *ProfileService
	Roles         *RoleService
	Admin         *AdminService
}

func NewFacade(d Deps) *Facade {
	if d.RoleTTL <= 0 {
		d.RoleTTL = defaultRoleTTL
	}
	if d.ViewTTL <= 0 {
		d.ViewTTL = defaultViewTTL
	}
	if d.Audit == nil {
		d.Audit = &audit.NoOpLogger{}
	}
	if d.Relations == nil {
		d.Relations = NoopRelationSync{}
	}

	b := &base{
		resolver: authz.NewRoleResolver(d.Roles, d.Loader, d.RoleTTL),
		loader:   d.Loader,
		audit:    d.Audit,
		metrics:  d.Metrics,
		validate: newValidator(),
		viewTTL:  d.ViewTTL,
	}

	return &Facade{
		NGOs:          &NGOService{base: b, ngos: d.NGOs, relations: d.Relations},
		Causes:        &CauseService{base: b, causes: d.Causes, ngos: d.NGOs},
		Opportunities: &OpportunityService{base: b, opps: d.Opportunities, ngos: d.NGOs},
		Donations:     &DonationService{base: b, donations: d.Donations, causes: d.Causes, ngos: d.NGOs},
		Applications:  &ApplicationService{base: b, apps: d.Applications, opps: d.Opportunities, ngos: d.NGOs},
		Profiles:      &ProfileService{base: b, profiles: d.Profiles},
		Roles:         &RoleService{base: b, roles: d.Roles, relations: d.Relations},
		Admin: &AdminService{
			base:      b,
			ngos:      d.NGOs,
			causes:    d.Causes,
			donations: d.Donations,
			apps:      d.Applications,
			profiles:  d.Profiles,
			auditLogs: d.AuditLogs,
		},
	}
}

type base struct {
	resolver *authz.RoleResolver
	loader   *cache.Loader
	audit    audit.Logger
	metrics  *metrics.Metrics
	validate *validator.Validate
	viewTTL  time.Duration
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// validateInput turns validator failures into a *domain.ValidationError
// naming the first offending field.
func (b *base) validateInput(input any) error {
	err := b.validate.Struct(input)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		f := verrs[0]
		msg := "failed " + f.Tag()
		switch f.Tag() {
		case "required":
			msg = "is required"
		case "gt", "gte", "min":
			msg = "must be at least " + f.Param()
			if f.Tag() == "gt" {
				msg = "must be greater than " + f.Param()
			}
		case "max", "lte":
			msg = "must be at most " + f.Param()
		case "oneof":
			msg = "must be one of " + f.Param()
		case "email", "url":
			msg = "must be a valid " + f.Tag()
		}
		return domain.NewValidationError(f.Field(), msg)
	}
	return domain.NewValidationError("", err.Error())
}

func requireID(field string, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError(field, "is required")
	}
	return nil
}

// check resolves the caller and evaluates the identity and role part of the
// policy for action. Denials are recorded and returned before any entity is
// read. fresh bypasses the cached role set.
func (b *base) check(ctx context.Context, action authz.Action, fresh bool) (authz.Principal, error) {
	id := auth.IdentityFromContext(ctx)
	p := authz.Principal{Identity: id, Roles: authz.RoleSet{}}

	if id.Authenticated() && authz.RequiresRole(action) {
		roles, err := b.resolver.Resolve(ctx, id, fresh)
		if err != nil {
			return p, fmt.Errorf("%s: resolving roles: %w", action, err)
		}
		p.Roles = roles
	}

	if d := authz.Precheck(p, action); !d.Allowed {
		res := authz.Resource{}
		b.record(ctx, p, action, res, d)
		return p, d.Err(action, res)
	}
	return p, nil
}

// principal resolves the caller with roles regardless of the action.
func (b *base) principal(ctx context.Context) (authz.Principal, error) {
	return b.resolver.Principal(ctx, auth.IdentityFromContext(ctx), false)
}

// authorize evaluates the full policy against facts read from the backend
// and records the decision.
func (b *base) authorize(ctx context.Context, p authz.Principal, action authz.Action, res authz.Resource) error {
	d := authz.Authorize(p, action, res)
	b.record(ctx, p, action, res, d)
	return d.Err(action, res)
}

func (b *base) record(ctx context.Context, p authz.Principal, action authz.Action, res authz.Resource, d authz.Decision) {
	b.metrics.RecordDecision(string(action), d.Allowed, string(d.Reason))

	entry := audit.Entry{
		Action:       string(action),
		ResourceType: res.Type,
		ResourceID:   res.ID,
		SubjectID:    p.Identity.SubjectID(),
		Roles:        p.Roles.String(),
		Allowed:      d.Allowed,
		DenyReason:   string(d.Reason),
	}
	if d.Detail != "" {
		entry.Attributes = map[string]interface{}{"detail": d.Detail}
	}
	if err := b.audit.LogDecision(ctx, entry); err != nil {
		slog.WarnContext(ctx, "failed to audit decision", "action", action, "error", err)
	}

	if !d.Allowed {
		slog.InfoContext(ctx, "authorization denied",
			"action", action,
			"subject", entry.SubjectID,
			"reason", d.Reason,
			"resource", res.Type,
			"resource_id", res.ID,
		)
	}
}

// mutated finishes a successful mutation: the stale views are dropped
// before the caller sees the result, then the mutation is audited.
func (b *base) mutated(ctx context.Context, op string, p authz.Principal, resType, resID string, views ...string) {
	if err := b.loader.Invalidate(ctx, views...); err != nil {
		slog.ErrorContext(ctx, "failed to invalidate cached views", "operation", op, "views", views, "error", err)
	}
	b.metrics.RecordMutation(op, nil)

	err := b.audit.LogMutation(ctx, audit.Entry{
		Action:       op,
		ResourceType: resType,
		ResourceID:   resID,
		SubjectID:    p.Identity.SubjectID(),
		Roles:        p.Roles.String(),
		Allowed:      true,
	})
	if err != nil {
		slog.WarnContext(ctx, "failed to audit mutation", "operation", op, "error", err)
	}
}

func (b *base) failed(op string, err error) error {
	b.metrics.RecordMutation(op, err)
	return fmt.Errorf("%s: %w", op, err)
}

// fetch serves a view from the cache, loading it with fn on a miss.
func fetch[T any](ctx context.Context, b *base, key string, fn func(ctx context.Context) (T, error)) (T, error) {
	return cache.Fetch(ctx, b.loader, key, false, b.viewTTL, fn)
}
