package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/Derojuu/MediCheck-sub000/internal/provenance/model"
)

// VerdictSummary counts audit rows per status for one batch. A batch that was
// never verified yields zero counts and a zero LastEvaluated.
func (r *Repository) VerdictSummary(ctx context.Context, batchID string) (model.VerdictSummary, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("verdict_summary", err, start)
	}()

	const query = `
SELECT
	countIf(status = 'AUTHENTIC') AS authentic,
	countIf(status = 'NOT_SAFE') AS not_safe,
	max(evaluated_at) AS last_evaluated
FROM verification_verdicts
WHERE batch_id = ?`

	rows, err := r.conn.Query(ctx, query, batchID)
	if err != nil {
		return model.VerdictSummary{}, fmt.Errorf("query verdict summary: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	summary := model.VerdictSummary{BatchID: batchID}
	if !rows.Next() {
		return summary, nil
	}

	var last time.Time
	if err = rows.Scan(&summary.Authentic, &summary.NotSafe, &last); err != nil {
		return model.VerdictSummary{}, fmt.Errorf("scan verdict summary: %w", err)
	}
	if err = rows.Err(); err != nil {
		return model.VerdictSummary{}, fmt.Errorf("iterate verdict summary: %w", err)
	}

	if summary.Authentic+summary.NotSafe > 0 {
		summary.LastEvaluated = last.UTC()
	}
	return summary, nil
}
