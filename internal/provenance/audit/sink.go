// Package audit queues verdict records and writes them to the analytics
// store in batches, off the verification request path.
package audit

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Derojuu/MediCheck-sub000/internal/provenance/model"
	"github.com/Derojuu/MediCheck-sub000/pkg/batcher"
)

const (
	DefaultFlushSize     = 500
	DefaultFlushInterval = 2 * time.Second
	DefaultFlushRPS      = 20
)

type Config struct {
	FlushSize     int
	FlushInterval time.Duration
	FlushRPS      int
	QueueSize     int
}

// Sink records verdicts asynchronously. Record never blocks: when the
// queue is full the record is dropped and logged.
type Sink struct {
	writer  Writer
	metrics Metrics
	batch   *batcher.Batcher[model.VerdictRecord]
	logger  *zap.Logger
}

func NewSink(writer Writer, metrics Metrics, cfg Config, logger *zap.Logger) *Sink {
	if cfg.FlushSize <= 0 {
		cfg.FlushSize = DefaultFlushSize
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = DefaultFlushInterval
	}
	if cfg.FlushRPS <= 0 {
		cfg.FlushRPS = DefaultFlushRPS
	}

	s := &Sink{
		writer:  writer,
		metrics: metrics,
		logger:  logger.Named("audit"),
	}
	s.batch = batcher.New(s.logger, s.flush, batcher.Config{
		FlushSize:     cfg.FlushSize,
		FlushInterval: cfg.FlushInterval,
		RPS:           cfg.FlushRPS,
		QueueSize:     cfg.QueueSize,
	})
	return s
}

func (s *Sink) Start(ctx context.Context) {
	s.batch.Start(ctx)
}

// Stop flushes queued records and waits for the writer loop to exit.
func (s *Sink) Stop() {
	s.batch.Stop()
}

func (s *Sink) Record(rec model.VerdictRecord) {
	if s.batch.TryAdd(rec) {
		return
	}
	s.logger.Warn("verdict audit record dropped",
		zap.String("batch_id", rec.BatchID),
		zap.String("unit_id", rec.UnitID),
		zap.String("status", string(rec.Status)),
	)
	if s.metrics != nil {
		s.metrics.ObserveDropped()
	}
}

func (s *Sink) flush(ctx context.Context, records []model.VerdictRecord) error {
	start := time.Now()
	err := s.writer.InsertVerdicts(ctx, records)
	if s.metrics != nil {
		s.metrics.ObserveFlush(err, len(records), start)
	}
	return err
}

// Nop discards verdict records. It is used when no analytics store is
// configured.
type Nop struct{}

func (Nop) Record(model.VerdictRecord) {}
