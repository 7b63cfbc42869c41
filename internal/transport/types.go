package transport

import (
	"context"

	"github.com/Derojuu/MediCheck-sub000/internal/provenance/custody"
	"github.com/Derojuu/MediCheck-sub000/internal/provenance/model"
	"github.com/Derojuu/MediCheck-sub000/internal/provenance/verification"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Verifier interface {
		VerifyScan(ctx context.Context, req verification.ScanRequest) (model.Verdict, error)
		VerifyBatch(ctx context.Context, batchID string) (model.Verdict, error)
	}
	Custody interface {
		ProvisionBatch(ctx context.Context, req custody.ProvisionRequest) (custody.ProvisionResult, error)
		TransferBatch(ctx context.Context, req custody.TransferRequest) (uint64, error)
		ConfirmDelivery(ctx context.Context, batchID, location string) error
		ReportFlag(ctx context.Context, req custody.ReportRequest) (uint64, error)
		RecallBatch(ctx context.Context, batchID, orgID, reason string) (uint64, error)
		RegisterUnits(ctx context.Context, batchID, orgID string, serials []string) (custody.RegisterUnitsResult, error)
		CreateOrganizationRegistry(ctx context.Context, orgID, orgName string) (string, error)
	}
	EventReader interface {
		GetBatchEventLogs(ctx context.Context, topicID string, limit int) ([]model.Event, error)
	}
	TopicResolver interface {
		TopicForBatch(ctx context.Context, batchID string) (string, error)
	}
	SummaryReader interface {
		VerdictSummary(ctx context.Context, batchID string) (model.VerdictSummary, error)
	}
)
