// Package batcher buffers items in memory and hands them to a flush
// callback in groups, either when the group is full or on an interval.
package batcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// ErrStopped is returned when items are offered to a stopped batcher.
var ErrStopped = errors.New("batcher stopped")

const defaultDrainTimeout = 5 * time.Second

// Config controls flush behavior.
type Config struct {
	// FlushSize is the number of items that triggers an immediate flush.
	FlushSize int
	// FlushInterval bounds how long an item waits in the buffer.
	FlushInterval time.Duration
	// RPS caps flush callbacks per second.
	RPS int
	// QueueSize is the capacity of the intake channel. Zero means 2*FlushSize.
	QueueSize int
	// DrainTimeout bounds the final flush after Stop or context cancellation.
	DrainTimeout time.Duration
}

func (c Config) withDefaults() Config {
	if c.FlushSize <= 0 {
		c.FlushSize = 100
	}
	if c.FlushInterval <= 0 {
		c.FlushInterval = time.Second
	}
	if c.RPS <= 0 {
		c.RPS = 10
	}
	if c.QueueSize <= 0 {
		c.QueueSize = c.FlushSize * 2
	}
	if c.DrainTimeout <= 0 {
		c.DrainTimeout = defaultDrainTimeout
	}
	return c
}

// FlushFunc receives a slice that is reused after it returns. It must not
// keep a reference to it.
type FlushFunc[T any] func(ctx context.Context, items []T) error

// Batcher buffers items and flushes them either by size or interval.
type Batcher[T any] struct {
	flush  FlushFunc[T]
	cfg    Config
	itemsC chan T
	rl     ratelimit.Limiter
	logger *zap.Logger

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
}

// New constructs a Batcher. Start must be called before items are flushed.
func New[T any](logger *zap.Logger, flush FlushFunc[T], cfg Config) *Batcher[T] {
	cfg = cfg.withDefaults()
	return &Batcher[T]{
		logger: logger,
		flush:  flush,
		cfg:    cfg,
		itemsC: make(chan T, cfg.QueueSize),
		rl:     ratelimit.New(cfg.RPS),
		stop:   make(chan struct{}),
	}
}

// Start begins the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop flushes what is buffered and waits for the loop to exit. It is safe
// to call more than once.
func (b *Batcher[T]) Stop() {
	b.stopOnce.Do(func() { close(b.stop) })
	b.wg.Wait()
}

// Add queues an item, blocking while the queue is full.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
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
	case b.itemsC <- item:
		return nil
	}
}

// TryAdd queues an item without blocking. It reports false when the queue
// is full or the batcher is stopped.
func (b *Batcher[T]) TryAdd(item T) bool {
	select {
	case <-b.stop:
		return false
	default:
	}

	select {
	case b.itemsC <- item:
		return true
	default:
		return false
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.cfg.FlushInterval)
	defer ticker.Stop()

	buf := make([]T, 0, b.cfg.FlushSize)

	flush := func(ctx context.Context) {
		if len(buf) == 0 {
			return
		}

		b.rl.Take()
		if err := b.flush(ctx, buf); err != nil {
			b.logger.Error("batch not flushed", zap.Int("size", len(buf)), zap.Error(err))
		} else {
			b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
		}
		buf = buf[:0]
	}

	drain := func() {
		dctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), b.cfg.DrainTimeout)
		defer cancel()
		for {
			select {
			case item := <-b.itemsC:
				buf = append(buf, item)
				if len(buf) >= b.cfg.FlushSize {
					flush(dctx)
				}
			default:
				flush(dctx)
				return
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			drain()
			return

		case <-b.stop:
			drain()
			return

		case item := <-b.itemsC:
			buf = append(buf, item)
			if len(buf) >= b.cfg.FlushSize {
				flush(ctx)
			}

		case <-ticker.C:
			flush(ctx)
		}
	}
}
