// Package custody performs the operational writes of a batch's life:
// provisioning, transfers, delivery, recalls, flags and unit registration.
// Each write goes to the ledger and to the derived store.
package custody

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Derojuu/MediCheck-sub000/internal/provenance/autoflag"
	"github.com/Derojuu/MediCheck-sub000/internal/provenance/model"
	"github.com/Derojuu/MediCheck-sub000/internal/provenance/registry"
)

const (
	DefaultUnitConcurrency = 8
	MaxUnitsPerRequest     = model.MaxUnitsPerBatch

	dateLayout = "2006-01-02"
)

var (
	ErrInvalidRequest = errors.New("invalid custody request")
	// ErrBatchBlocked rejects custody changes on flagged or recalled stock.
	ErrBatchBlocked = errors.New("batch is flagged or recalled")
	// ErrNotProvisioned means the batch row exists but has no ledger topic,
	// usually because registry creation failed after the row was reserved.
	ErrNotProvisioned = errors.New("batch has no ledger topic")
	// ErrStatusNotUpdated means the ledger write succeeded but the derived
	// status did not follow. The returned sequence number is still valid.
	ErrStatusNotUpdated = errors.New("ledger updated but derived status was not")
)

type Options struct {
	UnitConcurrency int
}

type ProvisionRequest struct {
	BatchID           string `json:"batchId"`
	OrganizationID    string `json:"organizationId"`
	DrugName          string `json:"drugName"`
	BatchSize         int64  `json:"batchSize"`
	ManufacturingDate string `json:"manufacturingDate"`
	ExpiryDate        string `json:"expiryDate"`
	Location          string `json:"location"`
	// OrgTopicID, when set, indexes the new batch topic in that
	// organization registry.
	OrgTopicID string `json:"orgTopicId"`
}

func (r ProvisionRequest) Validate() error {
	if strings.TrimSpace(r.BatchID) == "" {
		return fmt.Errorf("%w: batchId is required", ErrInvalidRequest)
	}
	if strings.TrimSpace(r.OrganizationID) == "" {
		return fmt.Errorf("%w: organizationId is required", ErrInvalidRequest)
	}
	if strings.TrimSpace(r.DrugName) == "" {
		return fmt.Errorf("%w: drugName is required", ErrInvalidRequest)
	}
	if r.BatchSize < 0 {
		return fmt.Errorf("%w: batchSize must not be negative", ErrInvalidRequest)
	}
	if r.ManufacturingDate != "" && !validDate(r.ManufacturingDate) {
		return fmt.Errorf("%w: manufacturingDate %q is not YYYY-MM-DD or RFC 3339", ErrInvalidRequest, r.ManufacturingDate)
	}
	if r.ExpiryDate != "" && !validDate(r.ExpiryDate) {
		return fmt.Errorf("%w: expiryDate %q is not YYYY-MM-DD or RFC 3339", ErrInvalidRequest, r.ExpiryDate)
	}
	return nil
}

type ProvisionResult struct {
	Batch           model.Batch    `json:"batch"`
	Registry        model.Registry `json:"registry"`
	CreatedSequence uint64         `json:"createdSequence"`
	IndexSequence   uint64         `json:"indexSequence,omitempty"`
}

type TransferRequest struct {
	BatchID        string `json:"batchId"`
	OrganizationID string `json:"organizationId"`
	TransferFrom   string `json:"transferFrom"`
	TransferTo     string `json:"transferTo"`
	Location       string `json:"location"`
}

func (r TransferRequest) Validate() error {
	switch {
	case strings.TrimSpace(r.BatchID) == "":
		return fmt.Errorf("%w: batchId is required", ErrInvalidRequest)
	case strings.TrimSpace(r.OrganizationID) == "":
		return fmt.Errorf("%w: organizationId is required", ErrInvalidRequest)
	case strings.TrimSpace(r.TransferFrom) == "" || strings.TrimSpace(r.TransferTo) == "":
		return fmt.Errorf("%w: transferFrom and transferTo are required", ErrInvalidRequest)
	case r.TransferFrom == r.TransferTo:
		return fmt.Errorf("%w: transferFrom and transferTo must differ", ErrInvalidRequest)
	}
	return nil
}

type ReportRequest struct {
	BatchID        string `json:"batchId"`
	OrganizationID string `json:"organizationId"`
	Reason         string `json:"reason"`
}

type RegisterUnitsResult struct {
	Registered      int    `json:"registered"`
	SummarySequence uint64 `json:"summarySequence"`
}

type Service struct {
	store    Store
	registry Registry
	events   EventWriter
	flagger  Flagger
	cache    TopicCache
	opts     Options
	logger   *zap.Logger
}

// NewService wires the custody operations. cache may be nil.
func NewService(store Store, reg Registry, events EventWriter, flagger Flagger, cache TopicCache, opts Options, logger *zap.Logger) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("batch store is required")
	}
	if reg == nil {
		return nil, fmt.Errorf("registry manager is required")
	}
	if events == nil {
		return nil, fmt.Errorf("event writer is required")
	}
	if flagger == nil {
		return nil, fmt.Errorf("flagger is required")
	}
	if opts.UnitConcurrency <= 0 {
		opts.UnitConcurrency = DefaultUnitConcurrency
	}
	return &Service{
		store:    store,
		registry: reg,
		events:   events,
		flagger:  flagger,
		cache:    cache,
		opts:     opts,
		logger:   logger.Named("custody"),
	}, nil
}

// ProvisionBatch reserves the batch row, creates its registry topic and
// writes BATCH_CREATED. The row reservation is what keeps registry creation
// at-most-once per batch. Provisioning a batch whose topic is stored but
// whose BATCH_CREATED never landed resumes at the append.
func (s *Service) ProvisionBatch(ctx context.Context, req ProvisionRequest) (ProvisionResult, error) {
	if err := req.Validate(); err != nil {
		return ProvisionResult{}, err
	}
	logger := s.logger.With(zap.String("batch_id", req.BatchID), zap.String("organization_id", req.OrganizationID))

	batch := model.Batch{
		BatchID:         req.BatchID,
		OrganizationID:  req.OrganizationID,
		DrugName:        req.DrugName,
		Status:          model.BatchCreated,
		CurrentLocation: req.Location,
	}
	if err := s.store.InsertBatch(ctx, batch); err != nil {
		err = fmt.Errorf("reserve batch %s: %w", req.BatchID, err)
		if errors.Is(err, model.ErrConflict) {
			return s.resumeProvision(ctx, req, err, logger)
		}
		return ProvisionResult{}, err
	}

	reg, err := s.registry.CreateBatchRegistry(ctx, registry.BatchRegistryRequest{
		BatchID:        req.BatchID,
		OrganizationID: req.OrganizationID,
		DrugName:       req.DrugName,
	})
	if err != nil {
		logger.Error("batch reserved without a registry", zap.Error(err))
		return ProvisionResult{}, fmt.Errorf("create registry for %s: %w", req.BatchID, err)
	}
	batch.TopicID = reg.TopicID

	if err := s.store.SetBatchTopic(ctx, req.BatchID, reg.TopicID); err != nil {
		logger.Error("registry created but not stored", zap.String("topic_id", reg.TopicID), zap.Error(err))
		return ProvisionResult{}, fmt.Errorf("store topic of %s: %w", req.BatchID, err)
	}
	return s.recordCreation(ctx, req, batch, reg, logger)
}

// resumeProvision handles a reservation conflict. Only a row of the same
// organization and drug whose topic lacks BATCH_CREATED is resumed; anything
// else returns conflict unchanged.
func (s *Service) resumeProvision(ctx context.Context, req ProvisionRequest, conflict error, logger *zap.Logger) (ProvisionResult, error) {
	existing, err := s.store.GetBatch(ctx, req.BatchID)
	if err != nil {
		logger.Warn("conflicting batch could not be loaded", zap.Error(err))
		return ProvisionResult{}, conflict
	}
	if existing.TopicID == "" || existing.OrganizationID != req.OrganizationID || existing.DrugName != req.DrugName {
		return ProvisionResult{}, conflict
	}

	history, err := s.events.GetFullBatchEventLogs(ctx, existing.TopicID)
	if err != nil {
		return ProvisionResult{}, fmt.Errorf("read history of %s: %w", req.BatchID, err)
	}
	for _, ev := range history {
		if ev.EventType == model.EventBatchCreated {
			return ProvisionResult{}, conflict
		}
	}

	logger.Warn("resuming provisioning of a batch without BATCH_CREATED", zap.String("topic_id", existing.TopicID))
	reg := model.Registry{TopicID: existing.TopicID, Kind: model.RegistryBatch}
	return s.recordCreation(ctx, req, existing, reg, logger)
}

func (s *Service) recordCreation(ctx context.Context, req ProvisionRequest, batch model.Batch, reg model.Registry, logger *zap.Logger) (ProvisionResult, error) {
	s.warmCache(ctx, req.BatchID, reg.TopicID)

	seq, err := s.events.LogBatchEvent(ctx, reg.TopicID, model.EventBatchCreated, model.EventPayload{
		BatchID:           req.BatchID,
		OrganizationID:    req.OrganizationID,
		DrugName:          req.DrugName,
		BatchSize:         req.BatchSize,
		ManufacturingDate: req.ManufacturingDate,
		ExpiryDate:        req.ExpiryDate,
	})
	if err != nil {
		logger.Error("topic stored without BATCH_CREATED", zap.String("topic_id", reg.TopicID), zap.Error(err))
		return ProvisionResult{}, fmt.Errorf("record creation of %s: %w", req.BatchID, err)
	}

	res := ProvisionResult{Batch: batch, Registry: reg, CreatedSequence: seq}
	if req.OrgTopicID != "" {
		idx, err := s.registry.IndexBatch(ctx, req.OrgTopicID, req.BatchID, reg.TopicID)
		if err != nil {
			return res, fmt.Errorf("index %s in %s: %w", req.BatchID, req.OrgTopicID, err)
		}
		res.IndexSequence = idx
	}

	logger.Info("batch provisioned", zap.String("topic_id", reg.TopicID), zap.Uint64("seq", seq))
	return res, nil
}

// TransferBatch records a change of custody on the ledger and then moves
// the derived state to IN_TRANSIT.
func (s *Service) TransferBatch(ctx context.Context, req TransferRequest) (uint64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}
	batch, err := s.provisioned(ctx, req.BatchID)
	if err != nil {
		return 0, err
	}
	if blocked(batch.Status) {
		return 0, fmt.Errorf("%w: %s is %s", ErrBatchBlocked, req.BatchID, batch.Status)
	}

	seq, err := s.events.LogBatchEvent(ctx, batch.TopicID, model.EventBatchOwnership, model.EventPayload{
		BatchID:        req.BatchID,
		OrganizationID: req.OrganizationID,
		TransferFrom:   req.TransferFrom,
		TransferTo:     req.TransferTo,
	})
	if err != nil {
		return 0, fmt.Errorf("record transfer of %s: %w", req.BatchID, err)
	}

	if err := s.store.UpdateBatchCustody(ctx, req.BatchID, model.BatchInTransit, req.Location); err != nil {
		s.logger.Error("transfer recorded but status not updated",
			zap.String("batch_id", req.BatchID), zap.Uint64("seq", seq), zap.Error(err))
		return seq, fmt.Errorf("%w: batch %s: %w", ErrStatusNotUpdated, req.BatchID, err)
	}
	return seq, nil
}

// ConfirmDelivery only touches the derived store.
func (s *Service) ConfirmDelivery(ctx context.Context, batchID, location string) error {
	if strings.TrimSpace(batchID) == "" {
		return fmt.Errorf("%w: batchId is required", ErrInvalidRequest)
	}
	batch, err := s.store.GetBatch(ctx, batchID)
	if err != nil {
		return fmt.Errorf("load batch %s: %w", batchID, err)
	}
	if blocked(batch.Status) {
		return fmt.Errorf("%w: %s is %s", ErrBatchBlocked, batchID, batch.Status)
	}
	if err := s.store.UpdateBatchCustody(ctx, batchID, model.BatchDelivered, location); err != nil {
		return fmt.Errorf("confirm delivery of %s: %w", batchID, err)
	}
	return nil
}

// ReportFlag records a third-party report against a batch.
func (s *Service) ReportFlag(ctx context.Context, req ReportRequest) (uint64, error) {
	if strings.TrimSpace(req.BatchID) == "" || strings.TrimSpace(req.OrganizationID) == "" {
		return 0, fmt.Errorf("%w: batchId and organizationId are required", ErrInvalidRequest)
	}
	if strings.TrimSpace(req.Reason) == "" {
		return 0, fmt.Errorf("%w: reason is required", ErrInvalidRequest)
	}
	batch, err := s.provisioned(ctx, req.BatchID)
	if err != nil {
		return 0, err
	}
	return s.flagger.AutoFlagBatch(ctx, autoflag.FlagRequest{
		BatchID:        req.BatchID,
		TopicID:        batch.TopicID,
		OrganizationID: req.OrganizationID,
		FlagReason:     req.Reason,
	})
}

// RecallBatch marks the batch RECALLED and appends a BATCH_FLAG so that
// every later verification of its units fails.
func (s *Service) RecallBatch(ctx context.Context, batchID, orgID, reason string) (uint64, error) {
	if strings.TrimSpace(batchID) == "" || strings.TrimSpace(orgID) == "" {
		return 0, fmt.Errorf("%w: batchId and organizationId are required", ErrInvalidRequest)
	}
	if strings.TrimSpace(reason) == "" {
		return 0, fmt.Errorf("%w: reason is required", ErrInvalidRequest)
	}
	batch, err := s.provisioned(ctx, batchID)
	if err != nil {
		return 0, err
	}

	if err := s.store.UpdateBatchStatus(ctx, batchID, model.BatchRecalled); err != nil {
		return 0, fmt.Errorf("recall %s: %w", batchID, err)
	}
	seq, err := s.events.LogBatchEvent(ctx, batch.TopicID, model.EventBatchFlag, model.EventPayload{
		BatchID:        batchID,
		OrganizationID: orgID,
		FlagReason:     "Recalled: " + reason,
	})
	if err != nil {
		s.logger.Error("batch RECALLED in store but not on ledger", zap.String("batch_id", batchID), zap.Error(err))
		return 0, fmt.Errorf("record recall of %s: %w", batchID, err)
	}

	s.logger.Info("batch recalled", zap.String("batch_id", batchID), zap.Uint64("seq", seq))
	return seq, nil
}

// RegisterUnits appends one UNIT entry per serial number and then a
// BATCH_UNITS_REGISTERED summary. The summary is only written when every
// unit was appended.
//
// The serials are counted against the batch quota of model.MaxUnitsPerBatch
// before anything is appended. On failure only the units that were never
// attempted are given back, so the tally never undercounts the ledger.
func (s *Service) RegisterUnits(ctx context.Context, batchID, orgID string, serials []string) (RegisterUnitsResult, error) {
	if strings.TrimSpace(batchID) == "" || strings.TrimSpace(orgID) == "" {
		return RegisterUnitsResult{}, fmt.Errorf("%w: batchId and organizationId are required", ErrInvalidRequest)
	}
	if err := validateSerials(serials); err != nil {
		return RegisterUnitsResult{}, err
	}
	batch, err := s.provisioned(ctx, batchID)
	if err != nil {
		return RegisterUnitsResult{}, err
	}
	if err := s.store.ReserveUnits(ctx, batchID, len(serials), model.MaxUnitsPerBatch); err != nil {
		return RegisterUnitsResult{}, fmt.Errorf("reserve %d units of %s: %w", len(serials), batchID, err)
	}

	var skipped atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.UnitConcurrency)
	for _, serial := range serials {
		serial := serial
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				skipped.Add(1)
				return err
			}
			_, err := s.events.RegisterUnitOnBatch(gctx, batch.TopicID, model.Unit{
				SerialNumber: serial,
				DrugName:     batch.DrugName,
				BatchID:      batchID,
			})
			return err
		})
	}
	if err := g.Wait(); err != nil {
		s.releaseUnits(ctx, batchID, int(skipped.Load()))
		return RegisterUnitsResult{}, fmt.Errorf("register units of %s: %w", batchID, err)
	}

	seq, err := s.events.LogBatchEvent(ctx, batch.TopicID, model.EventBatchUnitsRegistered, model.EventPayload{
		BatchID:        batchID,
		OrganizationID: orgID,
		UnitCount:      len(serials),
	})
	if err != nil {
		return RegisterUnitsResult{}, fmt.Errorf("record unit registration of %s: %w", batchID, err)
	}

	s.logger.Info("units registered", zap.String("batch_id", batchID), zap.Int("count", len(serials)))
	return RegisterUnitsResult{Registered: len(serials), SummarySequence: seq}, nil
}

func (s *Service) CreateOrganizationRegistry(ctx context.Context, orgID, orgName string) (string, error) {
	return s.registry.CreateOrgManagedRegistry(ctx, orgID, orgName)
}

func (s *Service) provisioned(ctx context.Context, batchID string) (model.Batch, error) {
	batch, err := s.store.GetBatch(ctx, batchID)
	if err != nil {
		return model.Batch{}, fmt.Errorf("load batch %s: %w", batchID, err)
	}
	if batch.TopicID == "" {
		return model.Batch{}, fmt.Errorf("%w: %s", ErrNotProvisioned, batchID)
	}
	return batch, nil
}

func (s *Service) releaseUnits(ctx context.Context, batchID string, count int) {
	if count == 0 {
		return
	}
	if err := s.store.ReleaseUnits(context.WithoutCancel(ctx), batchID, count); err != nil {
		s.logger.Warn("unit reservation not released",
			zap.String("batch_id", batchID), zap.Int("count", count), zap.Error(err))
	}
}

func (s *Service) warmCache(ctx context.Context, batchID, topicID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetTopic(ctx, batchID, topicID); err != nil {
		s.logger.Warn("topic cache not warmed", zap.String("batch_id", batchID), zap.Error(err))
	}
}

func blocked(status model.BatchStatus) bool {
	return status == model.BatchFlagged || status == model.BatchRecalled
}

func validateSerials(serials []string) error {
	if len(serials) == 0 {
		return fmt.Errorf("%w: at least one serial number is required", ErrInvalidRequest)
	}
	if len(serials) > MaxUnitsPerRequest {
		return fmt.Errorf("%w: at most %d serial numbers per request", ErrInvalidRequest, MaxUnitsPerRequest)
	}
	seen := make(map[string]struct{}, len(serials))
	for _, s := range serials {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%w: empty serial number", ErrInvalidRequest)
		}
		if _, dup := seen[s]; dup {
			return fmt.Errorf("%w: serial number %s listed twice", ErrInvalidRequest, s)
		}
		seen[s] = struct{}{}
	}
	return nil
}

func validDate(v string) bool {
	if _, err := time.Parse(dateLayout, v); err == nil {
		return true
	}
	_, err := time.Parse(time.RFC3339, v)
	return err == nil
}
