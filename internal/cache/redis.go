package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	scanBatch = 200
	genPrefix = "__gen" + sep
)

// setIfGeneration writes KEYS[2] only while the counter at KEYS[1] still
// equals ARGV[1]. A missing counter reads as 0.
var setIfGeneration = redis.NewScript(`
local current = redis.call('GET', KEYS[1])
if not current then
	current = '0'
end
if current ~= ARGV[1] then
	return 0
end
if tonumber(ARGV[3]) > 0 then
	redis.call('SET', KEYS[2], ARGV[2], 'PX', ARGV[3])
else
	redis.call('SET', KEYS[2], ARGV[2])
end
return 1
`)

// RedisStore shares cached views between API instances. All keys are
// namespaced so one Redis database can serve several deployments.
type RedisStore struct {
	client    *redis.Client
	namespace string
}

// NewRedisStore connects to addr and verifies the connection.
func NewRedisStore(ctx context.Context, addr, password, namespace string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return NewRedisStoreFromClient(client, namespace), nil
}

// NewRedisStoreFromClient wraps an existing client. The store takes ownership
// of client and closes it on Close.
func NewRedisStoreFromClient(client *redis.Client, namespace string) *RedisStore {
	if namespace != "" {
		namespace += sep
	}
	return &RedisStore{client: client, namespace: namespace}
}

func (s *RedisStore) key(k string) string {
	return s.namespace + k
}

// genKey names the generation counter of view. Counters live outside the
// view key space so Invalidate never scans them.
func (s *RedisStore) genKey(view string) string {
	return s.namespace + genPrefix + view
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}
	return data, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(key), value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (s *RedisStore) Generation(ctx context.Context, key string) (uint64, error) {
	gen, err := s.client.Get(ctx, s.genKey(View(key))).Uint64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis generation read failed: %w", err)
	}
	return gen, nil
}

func (s *RedisStore) SetIfGeneration(ctx context.Context, key string, value []byte, ttl time.Duration, gen uint64) (bool, error) {
	keys := []string{s.genKey(View(key)), s.key(key)}
	n, err := setIfGeneration.Run(ctx, s.client, keys, gen, value, ttl.Milliseconds()).Int()
	if err != nil {
		return false, fmt.Errorf("redis conditional set failed: %w", err)
	}
	return n == 1, nil
}

// Invalidate bumps the generation of every affected view before deleting,
// so a load that read the old generation on any instance cannot write its
// result back afterwards.
func (s *RedisStore) Invalidate(ctx context.Context, prefixes ...string) error {
	for _, v := range views(prefixes) {
		if err := s.client.Incr(ctx, s.genKey(v)).Err(); err != nil {
			return fmt.Errorf("redis generation bump %q failed: %w", v, err)
		}
	}

	for _, p := range prefixes {
		keys := []string{s.key(p)}

		iter := s.client.Scan(ctx, 0, s.key(p)+sep+"*", scanBatch).Iterator()
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			return fmt.Errorf("redis scan %q failed: %w", p, err)
		}

		for len(keys) > 0 {
			n := len(keys)
			if n > scanBatch {
				n = scanBatch
			}
			if err := s.client.Del(ctx, keys[:n]...).Err(); err != nil {
				return fmt.Errorf("redis del %q failed: %w", p, err)
			}
			keys = keys[n:]
		}
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
