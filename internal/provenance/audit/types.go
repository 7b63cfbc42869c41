package audit

import (
	"context"
	"time"

	"github.com/Derojuu/MediCheck-sub000/internal/provenance/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Writer interface {
		InsertVerdicts(ctx context.Context, records []model.VerdictRecord) error
	}
	Metrics interface {
		ObserveFlush(err error, records int, started time.Time)
		ObserveDropped()
	}
)
