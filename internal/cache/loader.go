package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/dangerclosesec/goodworks/internal/metrics"
)

// LoadFunc reads a view from the backend.
type LoadFunc func(ctx context.Context) ([]byte, error)

type keyState struct {
	gen      uint64
	inflight int
}

// Loader serves views from a Store and loads misses from the backend.
//
// Concurrent misses on one key share a single backend call. Each load takes
// a ticket when it starts and may only populate the store while its ticket
// is the newest one for the key, so of two overlapping loads only the later
// one writes. Writes are also checked against the store's view generation,
// which Invalidate advances in every process sharing the store.
type Loader struct {
	store   Store
	ttl     time.Duration
	metrics *metrics.Metrics

	group singleflight.Group

	mu     sync.Mutex
	states map[string]*keyState
}

// NewLoader creates a Loader. ttl bounds the age of any cached view.
func NewLoader(store Store, ttl time.Duration, m *metrics.Metrics) *Loader {
	return &Loader{
		store:   store,
		ttl:     ttl,
		metrics: m,
		states:  make(map[string]*keyState),
	}
}

// Load returns the cached value of key or loads it with fn. fresh skips the
// cached value and the shared flight but still caches the result.
//
// A shared flight is not tied to the cancellation of whichever caller
// started it; each caller stops waiting when its own ctx is done.
func (l *Loader) Load(ctx context.Context, key string, fresh bool, ttl time.Duration, fn LoadFunc) ([]byte, error) {
	view := View(key)

	if !fresh {
		data, ok, err := l.store.Get(ctx, key)
		if err != nil {
			slog.WarnContext(ctx, "cache read failed", "key", key, "error", err)
		} else if ok {
			l.metrics.RecordCacheHit(view)
			return data, nil
		}
	}
	l.metrics.RecordCacheMiss(view)

	if fresh {
		return l.load(ctx, key, ttl, fn)
	}

	flightCtx := context.WithoutCancel(ctx)
	ch := l.group.DoChan(key, func() (interface{}, error) {
		return l.load(flightCtx, key, ttl, fn)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]byte), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (l *Loader) load(ctx context.Context, key string, ttl time.Duration, fn LoadFunc) ([]byte, error) {
	st, ticket := l.begin(key)
	gen, genErr := l.store.Generation(ctx, key)

	data, err := fn(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.finish(key, st)

	if err != nil {
		return nil, err
	}
	if st.gen != ticket {
		l.metrics.RecordDiscard(View(key))
		return data, nil
	}
	if genErr != nil {
		slog.WarnContext(ctx, "cache generation read failed", "key", key, "error", genErr)
		return data, nil
	}
	if ttl <= 0 {
		ttl = l.ttl
	}

	stored, err := l.store.SetIfGeneration(ctx, key, data, ttl, gen)
	switch {
	case err != nil:
		slog.WarnContext(ctx, "cache write failed", "key", key, "error", err)
	case !stored:
		l.metrics.RecordDiscard(View(key))
	}
	return data, nil
}

// begin registers a load of key and hands it a ticket. Any earlier load of
// the same key still in flight is superseded.
func (l *Loader) begin(key string) (*keyState, uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	st, ok := l.states[key]
	if !ok {
		st = &keyState{}
		l.states[key] = st
	}
	st.inflight++
	st.gen++
	return st, st.gen
}

// finish must be called with l.mu held.
func (l *Loader) finish(key string, st *keyState) {
	st.inflight--
	if st.inflight == 0 && l.states[key] == st {
		delete(l.states, key)
	}
}

// Invalidate drops every view covered by prefixes. It returns after the
// store no longer serves them; in-flight loads of covered keys are orphaned
// so later readers start a fresh backend read.
func (l *Loader) Invalidate(ctx context.Context, prefixes ...string) error {
	if l == nil || len(prefixes) == 0 {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for key, st := range l.states {
		if matchesAny(key, prefixes) {
			st.gen++
			l.group.Forget(key)
		}
	}
	for _, p := range prefixes {
		l.metrics.RecordInvalidation(View(p))
	}

	if err := l.store.Invalidate(ctx, prefixes...); err != nil {
		return fmt.Errorf("invalidate %v: %w", prefixes, err)
	}
	return nil
}

func (l *Loader) Close() error {
	return l.store.Close()
}

// Fetch loads a JSON encoded view into a T.
func Fetch[T any](ctx context.Context, l *Loader, key string, fresh bool, ttl time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	var out T

	if l == nil {
		return fn(ctx)
	}

	data, err := l.Load(ctx, key, fresh, ttl, func(ctx context.Context) ([]byte, error) {
		v, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		return json.Marshal(v)
	})
	if err != nil {
		return out, err
	}

	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("decode cached %s: %w", View(key), err)
	}
	return out, nil
}
