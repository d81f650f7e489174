package audit

import (
	"context"
	"log/slog"
	"sync"
)

type job struct {
	ctx      context.Context
	entry    Entry
	mutation bool
}

// AsyncLogger hands entries to a background worker so that recording a
// decision never delays or fails the operation being audited. Entries are
// dropped, with a warning, when the queue is full.
type AsyncLogger struct {
	next  Logger
	queue chan job

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

func NewAsyncLogger(next Logger, size int) *AsyncLogger {
	if size <= 0 {
		size = 1024
	}
	l := &AsyncLogger{
		next:  next,
		queue: make(chan job, size),
	}
	l.wg.Add(1)
	go l.run()
	return l
}

func (l *AsyncLogger) run() {
	defer l.wg.Done()
	for j := range l.queue {
		var err error
		if j.mutation {
			err = l.next.LogMutation(j.ctx, j.entry)
		} else {
			err = l.next.LogDecision(j.ctx, j.entry)
		}
		if err != nil {
			slog.WarnContext(j.ctx, "failed to write audit entry", "action", j.entry.Action, "error", err)
		}
	}
}

func (l *AsyncLogger) enqueue(ctx context.Context, e Entry, mutation bool) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed {
		return nil
	}

	select {
	case l.queue <- job{ctx: context.WithoutCancel(ctx), entry: e, mutation: mutation}:
	default:
		slog.WarnContext(ctx, "audit queue full, dropping entry", "action", e.Action)
	}
	return nil
}

func (l *AsyncLogger) LogDecision(ctx context.Context, e Entry) error {
	return l.enqueue(ctx, e, false)
}

func (l *AsyncLogger) LogMutation(ctx context.Context, e Entry) error {
	return l.enqueue(ctx, e, true)
}

// Close stops accepting entries and waits for queued ones to be written.
func (l *AsyncLogger) Close() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.closed = true
	close(l.queue)
	l.mu.Unlock()

	l.wg.Wait()
}
