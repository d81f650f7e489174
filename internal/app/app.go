// Package app assembles the facade and its collaborators from configuration.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dangerclosesec/goodworks/internal/audit"
	"github.com/dangerclosesec/goodworks/internal/auth"
	"github.com/dangerclosesec/goodworks/internal/authz"
	"github.com/dangerclosesec/goodworks/internal/cache"
	"github.com/dangerclosesec/goodworks/internal/config"
	"github.com/dangerclosesec/goodworks/internal/metrics"
	"github.com/dangerclosesec/goodworks/internal/model"
	"github.com/dangerclosesec/goodworks/internal/repository"
	"github.com/dangerclosesec/goodworks/internal/service"
)

const redisNamespace = "goodworks"

type App struct {
	Facade  *service.Facade
	Store   *repository.Store
	Metrics *metrics.Metrics

	loader *cache.Loader
	audit  *audit.AsyncLogger
}

// New wires repositories over db into a facade. The query cache backend
// and the Permify mirror follow cfg.
func New(ctx context.Context, cfg *config.Config, db *gorm.DB, m *metrics.Metrics) (*App, error) {
	store := repository.NewStore(db)

	cacheStore, err := newCacheStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	loader := cache.NewLoader(cacheStore, cfg.Cache.TTL, m)

	auditLogs := service.NewAuthzAuditLogService(store.AuditLogs)
	asyncAudit := audit.NewAsyncLogger(auditLogs, cfg.Audit.QueueSize)

	var relations service.RelationSync = service.NoopRelationSync{}
	if cfg.Permify.Host != "" {
		permify, err := auth.NewPermifyService(cfg.Permify.Host, auth.WithTenant(cfg.Permify.Tenant))
		if err != nil {
			asyncAudit.Close()
			loader.Close()
			return nil, fmt.Errorf("connecting to permify: %w", err)
		}
		relations = service.NewPermifyRelationSync(permify)
		slog.InfoContext(ctx, "mirroring relationships to permify", "host", cfg.Permify.Host)
	}

	facade := service.NewFacade(service.Deps{
		NGOs:          store.NGOs,
		Causes:        store.Causes,
		Opportunities: store.Opportunities,
		Donations:     store.Donations,
		Applications:  store.Applications,
		Profiles:      store.Profiles,
		Roles:         store.Roles,
		AuditLogs:     auditLogs,
		Loader:        loader,
		Audit:         asyncAudit,
		Relations:     relations,
		Metrics:       m,
		RoleTTL:       cfg.Cache.RoleTTL,
		ViewTTL:       cfg.Cache.TTL,
	})

	return &App{
		Facade:  facade,
		Store:   store,
		Metrics: m,
		loader:  loader,
		audit:   asyncAudit,
	}, nil
}

func newCacheStore(ctx context.Context, cfg *config.Config) (cache.Store, error) {
	switch cfg.Cache.Backend {
	case config.CacheRedis:
		store, err := cache.NewRedisStore(ctx, cfg.Cache.RedisAddr, cfg.Cache.RedisPassword, redisNamespace)
		if err != nil {
			return nil, fmt.Errorf("setting up redis cache: %w", err)
		}
		slog.InfoContext(ctx, "query cache ready", "backend", "redis", "addr", cfg.Cache.RedisAddr)
		return store, nil
	default:
		slog.InfoContext(ctx, "query cache ready", "backend", "memory", "size", cfg.Cache.Size)
		return cache.NewMemoryStore(cfg.Cache.Size, cfg.Cache.TTL), nil
	}
}

// Bootstrap grants role to userID without a policy check. It exists for
// seeding the first platform admin from the command line.
func (a *App) Bootstrap(ctx context.Context, userID uuid.UUID, role model.Role) error {
	if err := a.Store.Roles.Grant(ctx, userID, role); err != nil {
		return fmt.Errorf("granting %s: %w", role, err)
	}
	if err := a.loader.Invalidate(ctx, authz.RolesKey(userID)); err != nil {
		slog.WarnContext(ctx, "role cache invalidation failed", "user_id", userID, "error", err)
	}
	slog.InfoContext(ctx, "role bootstrapped", "user_id", userID, "role", role)
	return nil
}

// Close flushes pending audit entries and releases the cache.
func (a *App) Close() error {
	a.audit.Close()
	return a.loader.Close()
}
