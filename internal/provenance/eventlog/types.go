package eventlog

import (
	"context"

	"github.com/Derojuu/MediCheck-sub000/internal/provenance/ledger"
	"github.com/Derojuu/MediCheck-sub000/internal/provenance/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Ledger interface {
		RegisterEntry(ctx context.Context, topicID string, entry ledger.Entry) (uint64, error)
		GetRegistry(ctx context.Context, topicID string, opts ledger.ReadOptions) ([]model.LedgerEntry, error)
	}
)
