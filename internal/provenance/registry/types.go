package registry

import (
	"context"

	"github.com/Derojuu/MediCheck-sub000/internal/provenance/ledger"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Ledger interface {
		CreateTopic(ctx context.Context, req ledger.CreateTopicRequest) (ledger.CreateTopicResult, error)
		RegisterEntry(ctx context.Context, topicID string, entry ledger.Entry) (uint64, error)
	}
)
