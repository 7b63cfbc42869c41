package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/Derojuu/MediCheck-sub000/internal/provenance/model"
)

// InsertVerdicts appends verdict audit rows in one batch.
func (r *Repository) InsertVerdicts(ctx context.Context, records []model.VerdictRecord) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_verdicts", err, start)
	}()

	if len(records) == 0 {
		return nil
	}

	const query = `
INSERT INTO verification_verdicts (
	evaluated_at,
	batch_id,
	unit_id,
	organization_id,
	topic_id,
	status,
	reasons,
	failed_checks,
	event_count,
	latitude,
	longitude
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare verdicts batch: %w", err)
	}

	for _, rec := range records {
		if err = batch.Append(
			rec.EvaluatedAt.UTC(),
			rec.BatchID,
			rec.UnitID,
			rec.OrganizationID,
			rec.TopicID,
			string(rec.Status),
			nonNil(rec.Reasons),
			nonNil(rec.FailedChecks),
			rec.EventCount,
			rec.Latitude,
			rec.Longitude,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append verdict: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert verdicts: %w", err)
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
