// Package registry creates batch and organization topics and writes the
// metadata entry that opens each of them.
package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Derojuu/MediCheck-sub000/internal/provenance/eventlog"
	"github.com/Derojuu/MediCheck-sub000/internal/provenance/ledger"
	"github.com/Derojuu/MediCheck-sub000/internal/provenance/model"
	"go.uber.org/zap"
)

const (
	BatchRegistryTTL = 365 * 24 * time.Hour
	OrgRegistryTTL   = 730 * 24 * time.Hour
)

var ErrInvalidRequest = errors.New("invalid registry request")

// BatchRegistryRequest names the batch a new topic is created for.
// OrganizationID and DrugName are optional.
type BatchRegistryRequest struct {
	BatchID        string
	OrganizationID string
	DrugName       string
}

type batchMeta struct {
	Type           model.EntryKind `json:"type"`
	BatchID        string          `json:"batchId"`
	OrganizationID string          `json:"organizationId"`
	DrugName       string          `json:"drugName"`
	CreatedAt      string          `json:"createdAt"`
}

type orgMeta struct {
	Type             model.EntryKind `json:"type"`
	OrganizationID   string          `json:"organizationId"`
	OrganizationName string          `json:"organizationName"`
	CreatedAt        string          `json:"createdAt"`
}

type batchIndex struct {
	Type      model.EntryKind `json:"type"`
	BatchID   string          `json:"batchId"`
	TopicID   string          `json:"topicId"`
	CreatedAt string          `json:"createdAt"`
}

// Manager creates registries. Creation is not idempotent: every call makes a
// new topic, so callers guarantee at-most-once per batch.
type Manager struct {
	client Ledger
	logger *zap.Logger
	now    func() time.Time
}

func NewManager(client Ledger, logger *zap.Logger) *Manager {
	return &Manager{
		client: client,
		logger: logger.Named("registry"),
		now:    time.Now,
	}
}

// CreateBatchRegistry creates a BATCH topic and appends its BATCH_REGISTRY_META entry.
func (m *Manager) CreateBatchRegistry(ctx context.Context, req BatchRegistryRequest) (model.Registry, error) {
	if strings.TrimSpace(req.BatchID) == "" {
		return model.Registry{}, fmt.Errorf("%w: batch id is required", ErrInvalidRequest)
	}

	reg, err := m.createTopic(ctx, model.RegistryBatch, BatchRegistryTTL)
	if err != nil {
		return model.Registry{}, fmt.Errorf("create batch registry for %s: %w", req.BatchID, err)
	}

	meta := batchMeta{
		Type:           model.EntryBatchRegistryMeta,
		BatchID:        req.BatchID,
		OrganizationID: req.OrganizationID,
		DrugName:       req.DrugName,
		CreatedAt:      reg.CreatedAt.UTC().Format(eventlog.TimestampLayout),
	}
	if err := m.appendMeta(ctx, reg.TopicID, meta); err != nil {
		m.logger.Error("batch registry left without meta entry",
			zap.String("batch_id", req.BatchID),
			zap.String("topic_id", reg.TopicID),
			zap.Error(err),
		)
		return model.Registry{}, fmt.Errorf("write meta for batch %s on %s: %w", req.BatchID, reg.TopicID, err)
	}

	m.logger.Info("batch registry created",
		zap.String("batch_id", req.BatchID),
		zap.String("topic_id", reg.TopicID),
	)
	return reg, nil
}

// CreateOrgManagedRegistry creates an ORG topic indexing one organization's batches.
func (m *Manager) CreateOrgManagedRegistry(ctx context.Context, orgID, orgName string) (string, error) {
	if strings.TrimSpace(orgID) == "" {
		return "", fmt.Errorf("%w: organization id is required", ErrInvalidRequest)
	}

	reg, err := m.createTopic(ctx, model.RegistryOrg, OrgRegistryTTL)
	if err != nil {
		return "", fmt.Errorf("create org registry for %s: %w", orgID, err)
	}

	meta := orgMeta{
		Type:             model.EntryOrgRegistryMeta,
		OrganizationID:   orgID,
		OrganizationName: orgName,
		CreatedAt:        reg.CreatedAt.UTC().Format(eventlog.TimestampLayout),
	}
	if err := m.appendMeta(ctx, reg.TopicID, meta); err != nil {
		m.logger.Error("org registry left without meta entry",
			zap.String("organization_id", orgID),
			zap.String("topic_id", reg.TopicID),
			zap.Error(err),
		)
		return "", fmt.Errorf("write meta for org %s on %s: %w", orgID, reg.TopicID, err)
	}

	m.logger.Info("org registry created",
		zap.String("organization_id", orgID),
		zap.String("topic_id", reg.TopicID),
	)
	return reg.TopicID, nil
}

// IndexBatch links a batch topic from an organization registry.
func (m *Manager) IndexBatch(ctx context.Context, orgTopicID, batchID, batchTopicID string) (uint64, error) {
	if strings.TrimSpace(orgTopicID) == "" || strings.TrimSpace(batchTopicID) == "" {
		return 0, fmt.Errorf("%w: org and batch topic ids are required", ErrInvalidRequest)
	}

	msg, err := json.Marshal(batchIndex{
		Type:      model.EntryBatchIndex,
		BatchID:   batchID,
		TopicID:   batchTopicID,
		CreatedAt: m.now().UTC().Format(eventlog.TimestampLayout),
	})
	if err != nil {
		return 0, fmt.Errorf("marshal batch index: %w", err)
	}

	seq, err := m.client.RegisterEntry(ctx, orgTopicID, ledger.Entry{TargetTopicID: batchTopicID, Metadata: string(msg)})
	if err != nil {
		return 0, fmt.Errorf("index batch %s on %s: %w", batchID, orgTopicID, err)
	}
	return seq, nil
}

func (m *Manager) createTopic(ctx context.Context, kind model.RegistryKind, ttl time.Duration) (model.Registry, error) {
	res, err := m.client.CreateTopic(ctx, ledger.CreateTopicRequest{Kind: kind, TTL: ttl, AdminKey: true})
	if err != nil {
		return model.Registry{}, err
	}
	if res.TopicID == "" {
		return model.Registry{}, fmt.Errorf("%w: ledger returned an empty topic id", ledger.ErrAppendRejected)
	}

	createdAt := res.CreatedAt
	if createdAt.IsZero() {
		createdAt = m.now()
	}
	return model.Registry{
		TopicID:   res.TopicID,
		Kind:      kind,
		TTL:       ttl,
		AdminKey:  true,
		CreatedAt: createdAt,
	}, nil
}

func (m *Manager) appendMeta(ctx context.Context, topicID string, meta any) error {
	msg, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("marshal meta: %w", err)
	}
	_, err = m.client.RegisterEntry(ctx, topicID, ledger.Entry{Metadata: string(msg)})
	return err
}
