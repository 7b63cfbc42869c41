package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Derojuu/MediCheck-sub000/internal/provenance/model"
	"github.com/jackc/pgx/v5"
)

const batchColumns = `batch_id, organization_id, drug_name, topic_id, status, current_location, created_at, updated_at`

// InsertBatch reserves a batch row. A second insert for the same batch
// fails with model.ErrConflict, which is what keeps registry creation
// at-most-once.
func (r *Repository) InsertBatch(ctx context.Context, batch model.Batch) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_batch", err, start)
	}()

	status := batch.Status
	if status == "" {
		status = model.BatchCreated
	}

	const query = `
INSERT INTO batches (batch_id, organization_id, drug_name, topic_id, status, current_location)
VALUES ($1, $2, $3, $4, $5, $6)`

	_, err = r.pool.Exec(ctx, query,
		batch.BatchID,
		batch.OrganizationID,
		batch.DrugName,
		batch.TopicID,
		string(status),
		batch.CurrentLocation,
	)
	if err != nil {
		if isUniqueViolation(err) {
			err = fmt.Errorf("%w: batch %s already exists", model.ErrConflict, batch.BatchID)
			return err
		}
		return fmt.Errorf("insert batch: %w", err)
	}
	return nil
}

// SetBatchTopic records the registry topic created for a batch.
func (r *Repository) SetBatchTopic(ctx context.Context, batchID, topicID string) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("set_batch_topic", err, start)
	}()

	const query = `UPDATE batches SET topic_id = $2, updated_at = now() WHERE batch_id = $1`

	err = r.exec(ctx, query, batchID, topicID)
	if err != nil {
		return fmt.Errorf("set topic of batch %s: %w", batchID, err)
	}
	return nil
}

// UpdateBatchStatus sets the derived status. Setting the current status again
// is a no-op that still succeeds.
func (r *Repository) UpdateBatchStatus(ctx context.Context, batchID string, status model.BatchStatus) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("update_batch_status", err, start)
	}()

	if !status.Valid() {
		err = fmt.Errorf("unknown batch status %q", status)
		return err
	}

	const query = `UPDATE batches SET status = $2, updated_at = now() WHERE batch_id = $1`

	err = r.exec(ctx, query, batchID, string(status))
	if err != nil {
		return fmt.Errorf("update status of batch %s: %w", batchID, err)
	}
	return nil
}

// UpdateBatchCustody sets status and current location together.
func (r *Repository) UpdateBatchCustody(ctx context.Context, batchID string, status model.BatchStatus, location string) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("update_batch_custody", err, start)
	}()

	if !status.Valid() {
		err = fmt.Errorf("unknown batch status %q", status)
		return err
	}

	const query = `
UPDATE batches SET status = $2, current_location = $3, updated_at = now()
WHERE batch_id = $1`

	err = r.exec(ctx, query, batchID, string(status), location)
	if err != nil {
		return fmt.Errorf("update custody of batch %s: %w", batchID, err)
	}
	return nil
}

// ReserveUnits adds count to the unit tally of a batch in one statement, so
// concurrent registrations cannot jointly pass limit. A reservation that
// would exceed limit changes nothing and fails with model.ErrUnitLimitReached.
func (r *Repository) ReserveUnits(ctx context.Context, batchID string, count, limit int) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("reserve_units", err, start)
	}()

	if count <= 0 {
		err = fmt.Errorf("reserve %d units: count must be positive", count)
		return err
	}

	const query = `
UPDATE batches SET unit_count = unit_count + $2, updated_at = now()
WHERE batch_id = $1 AND unit_count + $2 <= $3`

	err = r.exec(ctx, query, batchID, count, limit)
	if err == nil {
		return nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("reserve units of batch %s: %w", batchID, err)
	}

	var current int
	if qerr := r.pool.QueryRow(ctx, `SELECT unit_count FROM batches WHERE batch_id = $1`, batchID).Scan(&current); qerr != nil {
		if errors.Is(qerr, pgx.ErrNoRows) {
			err = fmt.Errorf("%w: batch %s", model.ErrNotFound, batchID)
			return err
		}
		err = fmt.Errorf("get unit count of batch %s: %w", batchID, qerr)
		return err
	}
	err = fmt.Errorf("%w: batch %s has %d of %d units, %d more requested", model.ErrUnitLimitReached, batchID, current, limit, count)
	return err
}

// ReleaseUnits gives back units reserved but never appended. The tally does
// not go below zero.
func (r *Repository) ReleaseUnits(ctx context.Context, batchID string, count int) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("release_units", err, start)
	}()

	const query = `
UPDATE batches SET unit_count = GREATEST(unit_count - $2, 0), updated_at = now()
WHERE batch_id = $1`

	err = r.exec(ctx, query, batchID, count)
	if err != nil {
		return fmt.Errorf("release units of batch %s: %w", batchID, err)
	}
	return nil
}

// GetBatch returns one batch or model.ErrNotFound.
func (r *Repository) GetBatch(ctx context.Context, batchID string) (model.Batch, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("get_batch", err, start)
	}()

	query := `SELECT ` + batchColumns + ` FROM batches WHERE batch_id = $1`

	var batch model.Batch
	batch, err = scanBatch(r.pool.QueryRow(ctx, query, batchID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = fmt.Errorf("%w: batch %s", model.ErrNotFound, batchID)
			return model.Batch{}, err
		}
		return model.Batch{}, fmt.Errorf("get batch %s: %w", batchID, err)
	}
	return batch, nil
}

// TopicForBatch returns the registry topic of a batch. A batch whose topic is
// not yet stored resolves to model.ErrNotFound.
func (r *Repository) TopicForBatch(ctx context.Context, batchID string) (string, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("topic_for_batch", err, start)
	}()

	const query = `SELECT topic_id FROM batches WHERE batch_id = $1 AND topic_id <> ''`

	var topicID string
	err = r.pool.QueryRow(ctx, query, batchID).Scan(&topicID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = fmt.Errorf("%w: topic of batch %s", model.ErrNotFound, batchID)
			return "", err
		}
		return "", fmt.Errorf("get topic of batch %s: %w", batchID, err)
	}
	return topicID, nil
}

// ListBatchesByStatus pages through batches in any of statuses, ordered by
// batch id and starting after afterBatchID.
func (r *Repository) ListBatchesByStatus(ctx context.Context, statuses []model.BatchStatus, afterBatchID string, limit int) ([]model.Batch, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("list_batches_by_status", err, start)
	}()

	if len(statuses) == 0 {
		return nil, nil
	}
	if limit <= 0 {
		limit = 100
	}

	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, string(s))
	}

	query := `SELECT ` + batchColumns + `
FROM batches
WHERE status = ANY($1) AND batch_id > $2
ORDER BY batch_id
LIMIT $3`

	rows, err := r.pool.Query(ctx, query, names, afterBatchID, limit)
	if err != nil {
		return nil, fmt.Errorf("query batches by status: %w", err)
	}
	defer rows.Close()

	var batches []model.Batch
	for rows.Next() {
		var b model.Batch
		b, err = scanBatch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		batches = append(batches, b)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate batches: %w", err)
	}
	return batches, nil
}

func (r *Repository) exec(ctx context.Context, query string, args ...any) error {
	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func scanBatch(row pgx.Row) (model.Batch, error) {
	var (
		b      model.Batch
		status string
	)
	if err := row.Scan(
		&b.BatchID,
		&b.OrganizationID,
		&b.DrugName,
		&b.TopicID,
		&status,
		&b.CurrentLocation,
		&b.CreatedAt,
		&b.UpdatedAt,
	); err != nil {
		return model.Batch{}, err
	}
	b.Status = model.BatchStatus(status)
	return b, nil
}
