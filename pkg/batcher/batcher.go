// Package batcher buffers items and hands them to a flush callback in rate limited batches.
package batcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// ErrStopped is returned by Add once Stop was called.
var ErrStopped = errors.New("batcher stopped")

// Options configures a Batcher. Zero values fall back to a size of 1, a one second
// interval and no rate limit.
type Options struct {
	FlushSize     int
	FlushInterval time.Duration
	// RPS caps the number of flushes per second.
	RPS int
}

// Batcher flushes queued items when FlushSize is reached or FlushInterval elapses.
// The first failed flush is sticky: later items are dropped and Add reports the error.
type Batcher[T any] struct {
	flush   func(context.Context, []T) error
	items   chan T
	opts    Options
	limiter ratelimit.Limiter
	logger  *zap.Logger

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once

	mu  sync.Mutex
	err error
}

// New constructs a Batcher. Call Start before Add.
func New[T any](logger *zap.Logger, flush func(context.Context, []T) error, opts Options) *Batcher[T] {
	if opts.FlushSize <= 0 {
		opts.FlushSize = 1
	}
	if opts.FlushInterval <= 0 {
		opts.FlushInterval = time.Second
	}
	limiter := ratelimit.NewUnlimited()
	if opts.RPS > 0 {
		limiter = ratelimit.New(opts.RPS)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Batcher[T]{
		flush:   flush,
		items:   make(chan T, opts.FlushSize*2),
		opts:    opts,
		limiter: limiter,
		logger:  logger,
		stop:    make(chan struct{}),
	}
}

// Start begins the background flushing loop. It ends when ctx is done or Stop is called.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop flushes every queued item, waits for the loop to end and returns the first flush error.
func (b *Batcher[T]) Stop() error {
	b.stopOnce.Do(func() {
		close(b.stop)
	})
	b.wg.Wait()
	return b.Err()
}

// Err returns the first flush error, if any.
func (b *Batcher[T]) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.err
}

// Add queues an item, blocking while the queue is full.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	if err := b.Err(); err != nil {
		return err
	}
	select {
	case <-b.stop:
		return ErrStopped
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.stop:
		return ErrStopped
	case b.items <- item:
		return nil
	}
}

func (b *Batcher[T]) setErr(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err == nil {
		b.err = err
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.opts.FlushInterval)
	defer ticker.Stop()

	buf := make([]T, 0, b.opts.FlushSize)
	flush := func() {
		if len(buf) == 0 {
			return
		}
		if b.Err() == nil {
			b.limiter.Take()
			if err := b.flush(ctx, buf); err != nil {
				b.setErr(err)
				b.logger.Error("batch not flushed", zap.Int("size", len(buf)), zap.Error(err))
			} else {
				b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
			}
		}
		buf = buf[:0]
	}
	push := func(item T) {
		buf = append(buf, item)
		if len(buf) >= b.opts.FlushSize {
			flush()
		}
	}

	for {
		select {
		case <-ctx.Done():
			flush()
			// queued items can no longer be flushed
			b.setErr(ctx.Err())
			return

		case <-b.stop:
			for drained := false; !drained; {
				select {
				case item := <-b.items:
					push(item)
				default:
					drained = true
				}
			}
			flush()
			return

		case item := <-b.items:
			push(item)

		case <-ticker.C:
			flush()
		}
	}
}
