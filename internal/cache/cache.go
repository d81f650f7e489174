// Package cache holds the keyed query-result cache used by the data-access
// facade. Keys have the shape view[:param...]; invalidating a prefix removes
// the exact key and every key nested below it.
package cache

import (
	"context"
	"errors"
	"strings"
	"time"
)

const sep = ":"

var ErrClosed = errors.New("cache closed")

// Store is a byte-oriented backend for cached views.
//
// Every view has a generation counter kept in the store itself, so all
// loaders sharing a store observe the same counter.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Generation returns the current generation of the view of key.
	Generation(ctx context.Context, key string) (uint64, error)
	// SetIfGeneration stores value only while the generation of the view of
	// key still equals gen. It reports whether the value was stored.
	SetIfGeneration(ctx context.Context, key string, value []byte, ttl time.Duration, gen uint64) (bool, error)
	// Invalidate advances the generation of the view of each prefix, then
	// removes every key equal to or nested below one of prefixes.
	Invalidate(ctx context.Context, prefixes ...string) error
	Close() error
}

// Key builds a cache key from a view name and its parameters.
func Key(view string, params ...string) string {
	if len(params) == 0 {
		return view
	}
	return view + sep + strings.Join(params, sep)
}

// View returns the view name of key.
func View(key string) string {
	if i := strings.Index(key, sep); i >= 0 {
		return key[:i]
	}
	return key
}

// Matches reports whether key is covered by prefix.
func Matches(key, prefix string) bool {
	return key == prefix || strings.HasPrefix(key, prefix+sep)
}

// views returns the distinct view names of prefixes.
func views(prefixes []string) []string {
	out := make([]string, 0, len(prefixes))
	seen := make(map[string]struct{}, len(prefixes))
	for _, p := range prefixes {
		v := View(p)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func matchesAny(key string, prefixes []string) bool {
	for _, p := range prefixes {
		if Matches(key, p) {
			return true
		}
	}
	return false
}
