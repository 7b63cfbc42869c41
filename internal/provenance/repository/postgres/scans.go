package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Derojuu/MediCheck-sub000/internal/provenance/model"
	"github.com/jackc/pgx/v5"
)

const (
	scanColumns = `id, unit_id, batch_id, latitude, longitude, scanned_at`

	earliestScanQuery = `SELECT ` + scanColumns + `
FROM scan_records
WHERE unit_id = $1
ORDER BY scanned_at, id
LIMIT 1`

	insertScanQuery = `
INSERT INTO scan_records (unit_id, batch_id, latitude, longitude, scanned_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`
)

// FindScanByUnitID returns the earliest scan of a unit or model.ErrNotFound.
func (r *Repository) FindScanByUnitID(ctx context.Context, unitID string) (model.ScanRecord, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("find_scan_by_unit_id", err, start)
	}()

	var rec model.ScanRecord
	rec, err = scanRecord(r.pool.QueryRow(ctx, earliestScanQuery, unitID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = fmt.Errorf("%w: no scan of unit %s", model.ErrNotFound, unitID)
			return model.ScanRecord{}, err
		}
		return model.ScanRecord{}, fmt.Errorf("find scan of unit %s: %w", unitID, err)
	}
	return rec, nil
}

// InsertScanRecord stores a scan and returns its id.
func (r *Repository) InsertScanRecord(ctx context.Context, scan model.ScanRecord) (int64, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_scan_record", err, start)
	}()

	var id int64
	err = r.pool.QueryRow(ctx, insertScanQuery, scanArgs(scan)...).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert scan of unit %s: %w", scan.UnitID, err)
	}
	return id, nil
}

// RecordScan stores scan and returns the earliest earlier scan of the same
// unit, or nil. A transaction-scoped advisory lock keyed by the unit id
// serialises concurrent scans of one unit, so exactly one of two racing
// first scans sees no prior record.
func (r *Repository) RecordScan(ctx context.Context, scan model.ScanRecord) (*model.ScanRecord, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("record_scan", err, start)
	}()

	var prior *model.ScanRecord
	err = pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, scan.UnitID); err != nil {
			return fmt.Errorf("lock unit: %w", err)
		}

		rec, err := scanRecord(tx.QueryRow(ctx, earliestScanQuery, scan.UnitID))
		switch {
		case errors.Is(err, pgx.ErrNoRows):
		case err != nil:
			return fmt.Errorf("find prior scan: %w", err)
		default:
			prior = &rec
		}

		var id int64
		if err := tx.QueryRow(ctx, insertScanQuery, scanArgs(scan)...).Scan(&id); err != nil {
			return fmt.Errorf("insert scan: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("record scan of unit %s: %w", scan.UnitID, err)
	}
	return prior, nil
}

func scanArgs(scan model.ScanRecord) []any {
	scannedAt := scan.ScannedAt
	if scannedAt.IsZero() {
		scannedAt = time.Now()
	}
	return []any{scan.UnitID, scan.BatchID, scan.Latitude, scan.Longitude, scannedAt.UTC()}
}

func scanRecord(row pgx.Row) (model.ScanRecord, error) {
	var rec model.ScanRecord
	if err := row.Scan(&rec.ID, &rec.UnitID, &rec.BatchID, &rec.Latitude, &rec.Longitude, &rec.ScannedAt); err != nil {
		return model.ScanRecord{}, err
	}
	return rec, nil
}
