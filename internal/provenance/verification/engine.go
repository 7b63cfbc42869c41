// Package verification evaluates a batch event history and produces an
// authenticity verdict.
package verification

import (
	"context"
	"fmt"
	"time"

	"github.com/Derojuu/MediCheck-sub000/internal/provenance/autoflag"
	"github.com/Derojuu/MediCheck-sub000/internal/provenance/model"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "github.com/Derojuu/MediCheck-sub000/internal/provenance/verification"

// Options toggles the optional checks.
type Options struct {
	StrictCustodyChain      bool
	EnforceUnitRegistration bool
}

// ScanContext identifies a unit scan. The duplicate-scan check runs only when
// all four IDs are present.
type ScanContext struct {
	UnitID         string
	BatchID        string
	OrganizationID string
	TopicID        string
	Latitude       float64
	Longitude      float64
}

func (s ScanContext) complete() bool {
	return s.UnitID != "" && s.BatchID != "" && s.OrganizationID != "" && s.TopicID != ""
}

// Engine runs the check battery over an ordered history.
type Engine struct {
	guard   ScanGuard
	flagger AutoFlagger
	opts    Options
	logger  *zap.Logger
	tracer  trace.Tracer
	now     func() time.Time
}

func NewEngine(guard ScanGuard, flagger AutoFlagger, opts Options, logger *zap.Logger) *Engine {
	return &Engine{
		guard:   guard,
		flagger: flagger,
		opts:    opts,
		logger:  logger.Named("engine"),
		tracer:  otel.Tracer(tracerName),
		now:     time.Now,
	}
}

// Checks runs the side-effect-free checks.
func (e *Engine) Checks(events []model.Event, scan ScanContext, now time.Time) []model.CheckResult {
	results := []model.CheckResult{
		CheckFlagged(events),
		CheckProvenance(events),
		CheckCustody(events),
		CheckExpiry(events, now),
		CheckOwnership(events, e.opts.StrictCustodyChain),
	}
	if e.opts.EnforceUnitRegistration && scan.UnitID != "" {
		results = append(results, CheckUnitRegistered(events, scan.UnitID, scan.BatchID))
	}
	return results
}

// Evaluate produces a verdict for events. For a complete scan context the
// scan is recorded and a duplicate triggers the auto-flag pipeline before
// returning, unless the history is already flagged.
//
// A scan guard failure returns no verdict. An auto-flag failure returns the
// NOT_SAFE verdict together with an error wrapping ErrAutoFlagFailed.
func (e *Engine) Evaluate(ctx context.Context, events []model.Event, scan ScanContext) (model.Verdict, error) {
	ctx, span := e.tracer.Start(ctx, "verification.Evaluate", trace.WithAttributes(
		attribute.String("batch_id", scan.BatchID),
		attribute.Int("events", len(events)),
	))
	defer span.End()

	now := e.now()
	results := e.Checks(events, scan, now)

	var (
		outcome *model.AutoFlagOutcome
		flagErr error
	)
	if scan.complete() {
		prior, err := e.recordScan(ctx, scan, now)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "scan guard")
			return model.Verdict{}, err
		}

		dup := duplicateScanResult(scan.UnitID, prior)
		results = append(results, dup)

		if prior != nil && !HasFlag(events) {
			outcome, flagErr = e.autoFlag(ctx, scan, dup.Reason)
		}
	}

	v := BuildVerdict(results, now)
	v.BatchID = scan.BatchID
	v.UnitID = scan.UnitID
	v.TopicID = scan.TopicID
	v.EventCount = len(events)
	v.AutoFlag = outcome

	span.SetAttributes(attribute.String("status", string(v.Status)))
	if flagErr != nil {
		span.RecordError(flagErr)
	}
	return v, flagErr
}

func (e *Engine) recordScan(ctx context.Context, scan ScanContext, now time.Time) (*model.ScanRecord, error) {
	if e.guard == nil {
		return nil, fmt.Errorf("%w: not configured", ErrScanGuardUnavailable)
	}
	prior, err := e.guard.RecordScan(ctx, model.ScanRecord{
		UnitID:    scan.UnitID,
		BatchID:   scan.BatchID,
		Latitude:  scan.Latitude,
		Longitude: scan.Longitude,
		ScannedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: unit %s: %w", ErrScanGuardUnavailable, scan.UnitID, err)
	}
	return prior, nil
}

func (e *Engine) autoFlag(ctx context.Context, scan ScanContext, reason string) (*model.AutoFlagOutcome, error) {
	if e.flagger == nil {
		err := fmt.Errorf("%w: batch %s: no pipeline configured", ErrAutoFlagFailed, scan.BatchID)
		return &model.AutoFlagOutcome{Error: err.Error()}, err
	}

	seq, err := e.flagger.AutoFlagBatch(ctx, autoflag.FlagRequest{
		BatchID:        scan.BatchID,
		TopicID:        scan.TopicID,
		OrganizationID: scan.OrganizationID,
		FlagReason:     reason,
	})
	if err != nil {
		e.logger.Error("auto-flag failed",
			zap.String("batch_id", scan.BatchID),
			zap.String("unit_id", scan.UnitID),
			zap.Error(err),
		)
		return &model.AutoFlagOutcome{Error: err.Error()}, fmt.Errorf("%w: batch %s: %w", ErrAutoFlagFailed, scan.BatchID, err)
	}
	return &model.AutoFlagOutcome{Recorded: true, SequenceNumber: seq}, nil
}
