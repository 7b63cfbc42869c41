package verification

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Derojuu/MediCheck-sub000/internal/provenance/eventlog"
	"github.com/Derojuu/MediCheck-sub000/internal/provenance/model"
	"github.com/Derojuu/MediCheck-sub000/pkg/safe"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	kindScan  = "scan"
	kindBatch = "batch"
)

// ScanRequest is a consumer or pharmacy scan of one unit.
type ScanRequest struct {
	UnitID         string  `json:"unitId"`
	BatchID        string  `json:"batchId"`
	OrganizationID string  `json:"organizationId"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
}

// Service resolves a batch topic, reads its full history and evaluates it.
type Service struct {
	topics  TopicResolver
	events  EventReader
	engine  *Engine
	audit   AuditSink
	metrics Metrics
	logger  *zap.Logger
	tracer  trace.Tracer
}

func NewService(topics TopicResolver, events EventReader, engine *Engine, audit AuditSink, metrics Metrics, logger *zap.Logger) (*Service, error) {
	if topics == nil {
		return nil, fmt.Errorf("topic resolver is required")
	}
	if events == nil {
		return nil, fmt.Errorf("event reader is required")
	}
	if engine == nil {
		return nil, fmt.Errorf("engine is required")
	}
	if metrics == nil {
		return nil, fmt.Errorf("verification metrics is required")
	}
	if audit == nil {
		audit = nopAudit{}
	}
	return &Service{
		topics:  topics,
		events:  events,
		engine:  engine,
		audit:   audit,
		metrics: metrics,
		logger:  logger.Named("verification"),
		tracer:  otel.Tracer(tracerName),
	}, nil
}

// VerifyScan verifies one unit scan. The returned error wraps ErrAutoFlagFailed
// when a verdict was produced but its flag was not fully recorded; every other
// error comes with a zero verdict.
func (s *Service) VerifyScan(ctx context.Context, req ScanRequest) (model.Verdict, error) {
	req.UnitID = strings.TrimSpace(req.UnitID)
	req.BatchID = strings.TrimSpace(req.BatchID)
	req.OrganizationID = strings.TrimSpace(req.OrganizationID)
	if req.UnitID == "" || req.BatchID == "" {
		return model.Verdict{}, fmt.Errorf("%w: unitId and batchId are required", ErrInvalidScan)
	}

	ctx, span := s.tracer.Start(ctx, "verification.VerifyScan", trace.WithAttributes(
		attribute.String("batch_id", req.BatchID),
		attribute.String("unit_id", req.UnitID),
	))
	defer span.End()

	return s.verify(ctx, span, kindScan, req)
}

// VerifyBatch verifies a batch without recording a scan.
func (s *Service) VerifyBatch(ctx context.Context, batchID string) (model.Verdict, error) {
	batchID = strings.TrimSpace(batchID)
	if batchID == "" {
		return model.Verdict{}, fmt.Errorf("%w: batchId is required", ErrInvalidScan)
	}

	ctx, span := s.tracer.Start(ctx, "verification.VerifyBatch", trace.WithAttributes(
		attribute.String("batch_id", batchID),
	))
	defer span.End()

	return s.verify(ctx, span, kindBatch, ScanRequest{BatchID: batchID})
}

func (s *Service) verify(ctx context.Context, span trace.Span, kind string, req ScanRequest) (model.Verdict, error) {
	started := time.Now()
	logger := s.logger.With(zap.String("kind", kind), zap.String("batch_id", req.BatchID))

	fail := func(err error) (model.Verdict, error) {
		s.metrics.ObserveError(kind, started)
		span.RecordError(err)
		span.SetStatus(codes.Error, "verification failed")
		logger.Warn("verification failed", zap.Error(err))
		return model.Verdict{}, err
	}

	topicID, err := s.resolveTopic(ctx, req.BatchID)
	if err != nil {
		return fail(err)
	}

	events, err := s.events.GetFullBatchEventLogs(ctx, topicID)
	if err != nil {
		if errors.Is(err, eventlog.ErrHistoryTruncated) {
			return fail(err)
		}
		return fail(fmt.Errorf("%w: read history of batch %s: %w", ErrLedgerUnavailable, req.BatchID, err))
	}

	verdict, err := s.engine.Evaluate(ctx, events, ScanContext{
		UnitID:         req.UnitID,
		BatchID:        req.BatchID,
		OrganizationID: req.OrganizationID,
		TopicID:        topicID,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
	})
	if err != nil && verdict.Status == "" {
		return fail(err)
	}

	s.metrics.ObserveVerdict(kind, verdict, started)
	s.audit.Record(toRecord(verdict, req))
	logger.Info("verdict",
		zap.String("status", string(verdict.Status)),
		zap.String("unit_id", req.UnitID),
		zap.Int("events", verdict.EventCount),
		zap.Error(err),
	)
	return verdict, err
}

func (s *Service) resolveTopic(ctx context.Context, batchID string) (string, error) {
	topicID, err := s.topics.TopicForBatch(ctx, batchID)
	switch {
	case errors.Is(err, model.ErrNotFound):
		return "", fmt.Errorf("%w: %s", ErrBatchNotFound, batchID)
	case err != nil:
		return "", fmt.Errorf("resolve topic of batch %s: %w", batchID, err)
	case topicID == "":
		return "", fmt.Errorf("%w: %s has no registry topic", ErrBatchNotFound, batchID)
	}
	return topicID, nil
}

func toRecord(v model.Verdict, req ScanRequest) model.VerdictRecord {
	failed := make([]string, 0, len(v.Checks))
	for _, name := range v.FailedChecks() {
		failed = append(failed, string(name))
	}
	count, err := safe.Uint32(v.EventCount)
	if err != nil {
		count = math.MaxUint32
	}
	return model.VerdictRecord{
		EvaluatedAt:    v.EvaluatedAt,
		BatchID:        v.BatchID,
		UnitID:         v.UnitID,
		OrganizationID: req.OrganizationID,
		TopicID:        v.TopicID,
		Status:         v.Status,
		Reasons:        v.Reasons,
		FailedChecks:   failed,
		EventCount:     count,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
	}
}

type nopAudit struct{}

func (nopAudit) Record(model.VerdictRecord) {}
