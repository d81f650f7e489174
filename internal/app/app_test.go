package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dangerclosesec/goodworks/internal/cache"
	"github.com/dangerclosesec/goodworks/internal/config"
	"github.com/dangerclosesec/goodworks/internal/domain"
	"github.com/dangerclosesec/goodworks/internal/metrics"
	"github.com/dangerclosesec/goodworks/internal/model"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Cache.Backend = config.CacheMemory
	cfg.Cache.TTL = time.Minute
	cfg.Cache.RoleTTL = 30 * time.Second
	cfg.Cache.Size = 64
	cfg.Audit.QueueSize = 8
	return cfg
}

func TestNewCacheStore(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		store, err := newCacheStore(ctx, testConfig())
		require.NoError(t, err)
		assert.IsType(t, &cache.MemoryStore{}, store)
		require.NoError(t, store.Close())
	})

	t.Run("redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		cfg := testConfig()
		cfg.Cache.Backend = config.CacheRedis
		cfg.Cache.RedisAddr = mr.Addr()

		store, err := newCacheStore(ctx, cfg)
		require.NoError(t, err)
		assert.IsType(t, &cache.RedisStore{}, store)

		require.NoError(t, store.Set(ctx, "causes", []byte("[]"), time.Minute))
		assert.True(t, mr.Exists("goodworks:causes"))
		require.NoError(t, store.Close())
	})

	t.Run("redis unreachable", func(t *testing.T) {
		mr := miniredis.RunT(t)
		addr := mr.Addr()
		mr.Close()

		cfg := testConfig()
		cfg.Cache.Backend = config.CacheRedis
		cfg.Cache.RedisAddr = addr

		_, err := newCacheStore(ctx, cfg)
		assert.Error(t, err)
	})
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestNewWiresFacade(t *testing.T) {
	db, _ := newMockDB(t)

	a, err := New(context.Background(), testConfig(), db, metrics.New(nil))
	require.NoError(t, err)

	assert.NotNil(t, a.Facade.NGOs)
	assert.NotNil(t, a.Facade.Admin)
	assert.NotNil(t, a.Store.AuditLogs)
	assert.NoError(t, a.Close())
}

func TestBootstrapSurfacesBackendFailure(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`INSERT INTO "user_roles"`).WillReturnError(errors.New("connection refused"))

	a, err := New(context.Background(), testConfig(), db, metrics.New(nil))
	require.NoError(t, err)
	defer a.Close()

	err = a.Bootstrap(context.Background(), uuid.New(), model.RolePlatformAdmin)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBackend)
	assert.Contains(t, err.Error(), "granting platform_admin")
}
