// Package reconcile compares the derived FLAGGED status of batches with the
// BATCH_FLAG entries on their ledger topics and optionally repairs drift.
// The ledger is authoritative; the derived store is brought in line with it,
// except for a FLAGGED row with no ledger record, which gets the missing
// flag appended.
package reconcile

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Derojuu/MediCheck-sub000/internal/clock"
	"github.com/Derojuu/MediCheck-sub000/internal/provenance/model"
	"github.com/Derojuu/MediCheck-sub000/internal/provenance/verification"
	"github.com/Derojuu/MediCheck-sub000/pkg/workerpool"
)

type Classification string

const (
	Consistent        Classification = "consistent"
	MissingLedgerFlag Classification = "missing_ledger_flag"
	MissingStatus     Classification = "missing_status"
	NoTopic           Classification = "no_topic"
)

// Statuses inspected on every pass. RECALLED and EXPIRED rows are final and
// left alone.
var inspectedStatuses = []model.BatchStatus{
	model.BatchFlagged,
	model.BatchCreated,
	model.BatchInTransit,
	model.BatchDelivered,
}

type Config struct {
	Repair      bool
	Interval    time.Duration
	PageSize    int
	WorkerCount int
}

// Report counts what one pass saw and did.
type Report struct {
	Inspected         int
	Consistent        int
	MissingLedgerFlag int
	MissingStatus     int
	NoTopic           int
	Repaired          int
	Failed            int
}

type Reconciler struct {
	store    Store
	history  History
	writer   EventWriter
	metrics  Metrics
	logger   *zap.Logger
	repair   bool
	interval time.Duration
	pageSize int
	workers  int
	backoff  clock.Backoff
	sleep    func(context.Context, time.Duration) error
}

func New(store Store, history History, writer EventWriter, metrics Metrics, cfg Config, logger *zap.Logger) (*Reconciler, error) {
	if store == nil || history == nil {
		return nil, errors.New("batch store and ledger history are required")
	}
	if cfg.Repair && writer == nil {
		return nil, errors.New("repair mode needs an event writer")
	}
	if metrics == nil {
		return nil, errors.New("reconciler metrics is required")
	}
	if cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = defaultWorkerCount
	}

	return &Reconciler{
		store:    store,
		history:  history,
		writer:   writer,
		metrics:  metrics,
		logger:   logger.Named("reconciler").With(zap.Bool("repair", cfg.Repair)),
		repair:   cfg.Repair,
		interval: cfg.Interval,
		pageSize: cfg.PageSize,
		workers:  cfg.WorkerCount,
		backoff:  clock.Backoff{Initial: errorBackoffStart, Max: errorBackoffMax},
		sleep:    clock.SleepWithContext,
	}, nil
}

// Run repeats passes until the context is canceled. Failed passes back off
// exponentially.
func (r *Reconciler) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		wait := r.interval
		if _, err := r.Pass(ctx); err != nil {
			wait = r.backoff.Next()
			r.logger.Warn("reconciliation pass failed, backing off", zap.Error(err), zap.Duration("sleep", wait))
		} else {
			r.backoff.Reset()
		}

		if err := r.sleep(ctx, wait); err != nil {
			return err
		}
	}
}

// Pass walks every inspected batch once. Per-batch failures do not stop the
// pass; they are joined into the returned error.
func (r *Reconciler) Pass(ctx context.Context) (Report, error) {
	started := time.Now()
	tally := &tally{}

	var (
		after    string
		batchErr error
	)
	for {
		page, err := r.store.ListBatchesByStatus(ctx, inspectedStatuses, after, r.pageSize)
		if err != nil {
			err = fmt.Errorf("list batches after %q: %w", after, err)
			report := tally.snapshot()
			r.metrics.ObservePass(err, report.Inspected, started)
			return report, err
		}
		if len(page) == 0 {
			break
		}

		if err := workerpool.ProcessAll(ctx, r.workers, page, func(ctx context.Context, b model.Batch) error {
			return r.reconcileBatch(ctx, b, tally)
		}); err != nil {
			batchErr = errors.Join(batchErr, err)
			if ctx.Err() != nil {
				break
			}
		}

		after = page[len(page)-1].BatchID
		if len(page) < r.pageSize {
			break
		}
	}

	report := tally.snapshot()
	r.metrics.ObservePass(batchErr, report.Inspected, started)
	r.logger.Info("reconciliation pass finished",
		zap.Int("inspected", report.Inspected),
		zap.Int("consistent", report.Consistent),
		zap.Int("missing_ledger_flag", report.MissingLedgerFlag),
		zap.Int("missing_status", report.MissingStatus),
		zap.Int("no_topic", report.NoTopic),
		zap.Int("repaired", report.Repaired),
		zap.Int("failed", report.Failed),
		zap.Duration("took", time.Since(started)),
	)
	return report, batchErr
}

func (r *Reconciler) reconcileBatch(ctx context.Context, b model.Batch, t *tally) error {
	logger := r.logger.With(zap.String("batch_id", b.BatchID), zap.String("status", string(b.Status)))

	if b.TopicID == "" {
		t.add(NoTopic, false, false)
		r.metrics.ObserveClassification(string(NoTopic))
		logger.Warn("batch has no ledger topic")
		return nil
	}

	events, err := r.history.GetFullBatchEventLogs(ctx, b.TopicID)
	if err != nil {
		t.fail()
		return fmt.Errorf("read history of %s: %w", b.BatchID, err)
	}

	c := Classify(b.Status, verification.HasFlag(events))
	r.metrics.ObserveClassification(string(c))
	if c == Consistent {
		t.add(c, false, false)
		return nil
	}

	logger.Warn("flag drift detected", zap.String("classification", string(c)), zap.String("topic_id", b.TopicID))
	if !r.repair {
		t.add(c, false, false)
		return nil
	}

	err = r.repairBatch(ctx, b, c)
	r.metrics.ObserveRepair(string(c), err)
	if err != nil {
		t.add(c, false, true)
		return fmt.Errorf("repair %s (%s): %w", b.BatchID, c, err)
	}
	t.add(c, true, false)
	logger.Info("flag drift repaired", zap.String("classification", string(c)))
	return nil
}

func (r *Reconciler) repairBatch(ctx context.Context, b model.Batch, c Classification) error {
	switch c {
	case MissingLedgerFlag:
		org := b.OrganizationID
		if org == "" {
			org = reconcilerOrganization
		}
		_, err := r.writer.LogBatchEvent(ctx, b.TopicID, model.EventBatchFlag, model.EventPayload{
			BatchID:        b.BatchID,
			OrganizationID: org,
			FlagReason:     repairFlagReason,
		})
		return err
	case MissingStatus:
		return r.store.UpdateBatchStatus(ctx, b.BatchID, model.BatchFlagged)
	default:
		return nil
	}
}

// Classify compares a derived status with whether the ledger holds a flag.
func Classify(status model.BatchStatus, ledgerFlagged bool) Classification {
	derivedFlagged := status == model.BatchFlagged
	switch {
	case derivedFlagged && !ledgerFlagged:
		return MissingLedgerFlag
	case !derivedFlagged && ledgerFlagged:
		return MissingStatus
	default:
		return Consistent
	}
}

type tally struct {
	mu     sync.Mutex
	report Report
}

func (t *tally) add(c Classification, repaired, failed bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.report.Inspected++
	switch c {
	case Consistent:
		t.report.Consistent++
	case MissingLedgerFlag:
		t.report.MissingLedgerFlag++
	case MissingStatus:
		t.report.MissingStatus++
	case NoTopic:
		t.report.NoTopic++
	}
	if repaired {
		t.report.Repaired++
	}
	if failed {
		t.report.Failed++
	}
}

func (t *tally) fail() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.report.Inspected++
	t.report.Failed++
}

func (t *tally) snapshot() Report {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.report
}
