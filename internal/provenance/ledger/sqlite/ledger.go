// Package sqlite is an embedded ledger backend. Each topic keeps its own
// sequence counter, advanced in the same transaction as the append.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/Derojuu/MediCheck-sub000/internal/provenance/ledger"
	"github.com/Derojuu/MediCheck-sub000/internal/provenance/model"
	"github.com/Derojuu/MediCheck-sub000/pkg/safe"
	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Ledger stores topics and entries in a SQLite file.
type Ledger struct {
	db    *sql.DB
	now   func() time.Time
	newID func() string
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens the database at path and applies the embedded migrations.
func Open(path string) (*Ledger, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite ledger path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// One writer at a time keeps the per-topic counter free of SQLITE_BUSY upgrades.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Ledger{
		db:    db,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}, nil
}

func applyMigrations(db *sql.DB) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}
	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("init migrate driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}
	// m.Close would close db as well, so only the source is released.
	defer func() {
		_ = src.Close()
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// Close closes the database handle.
func (l *Ledger) Close() error {
	if l == nil || l.db == nil {
		return nil
	}
	return l.db.Close()
}

func (l *Ledger) CreateTopic(ctx context.Context, req ledger.CreateTopicRequest) (ledger.CreateTopicResult, error) {
	if err := ctx.Err(); err != nil {
		return ledger.CreateTopicResult{}, err
	}
	if err := req.Validate(); err != nil {
		return ledger.CreateTopicResult{}, err
	}

	now := l.now().Truncate(time.Millisecond)
	id := l.newID()

	const query = `
INSERT INTO ledger_topics (topic_id, kind, ttl_seconds, admin_key, created_at, expires_at)
VALUES (?, ?, ?, ?, ?, ?)`

	if _, err := l.db.ExecContext(ctx, query,
		id,
		string(req.Kind),
		int64(req.TTL/time.Second),
		req.AdminKey,
		toMillis(now),
		toMillis(now.Add(req.TTL)),
	); err != nil {
		return ledger.CreateTopicResult{}, fmt.Errorf("%w: insert topic: %v", ledger.ErrUnavailable, err)
	}
	return ledger.CreateTopicResult{TopicID: id, CreatedAt: now}, nil
}

func (l *Ledger) RegisterEntry(ctx context.Context, topicID string, entry ledger.Entry) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if entry.Metadata == "" {
		return 0, fmt.Errorf("%w: empty metadata", ledger.ErrInvalidRequest)
	}

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: begin tx: %v", ledger.ErrUnavailable, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	now := l.now().Truncate(time.Millisecond)

	// Claiming the sequence first takes the write lock before anything is read.
	var (
		seq       int64
		expiresAt int64
	)
	err = tx.QueryRowContext(ctx, `
UPDATE ledger_topics SET next_seq = next_seq + 1
WHERE topic_id = ?
RETURNING next_seq - 1, expires_at`, topicID).Scan(&seq, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: %s", ledger.ErrTopicNotFound, topicID)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: claim sequence: %v", ledger.ErrUnavailable, err)
	}
	if toMillis(now) >= expiresAt {
		return 0, fmt.Errorf("%w: %s", ledger.ErrTopicExpired, topicID)
	}

	if _, err = tx.ExecContext(ctx, `
INSERT INTO ledger_entries (topic_id, seq, target_topic_id, message, consensus_at)
VALUES (?, ?, ?, ?, ?)`,
		topicID, seq, entry.TargetTopicID, []byte(entry.Metadata), toMillis(now),
	); err != nil {
		return 0, fmt.Errorf("%w: insert entry: %v", ledger.ErrAppendRejected, err)
	}
	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("%w: commit: %v", ledger.ErrUnavailable, err)
	}

	return safe.Uint64(seq)
}

func (l *Ledger) GetRegistry(ctx context.Context, topicID string, opts ledger.ReadOptions) ([]model.LedgerEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opts = opts.Normalize()

	after, err := safe.Int64(opts.AfterSequence)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ledger.ErrInvalidRequest, err)
	}

	query := `
SELECT seq, target_topic_id, message, consensus_at
FROM ledger_entries
WHERE topic_id = ? AND seq > ?
ORDER BY seq ASC
LIMIT ?`
	if opts.Order == ledger.OrderDesc {
		query = strings.Replace(query, "ASC", "DESC", 1)
	}

	rows, err := l.db.QueryContext(ctx, query, topicID, after, opts.Limit)
	if err != nil {
		return nil, fmt.Errorf("%w: query entries: %v", ledger.ErrUnavailable, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	entries := make([]model.LedgerEntry, 0, opts.Limit)
	for rows.Next() {
		var (
			seq         int64
			consensusAt int64
			e           = model.LedgerEntry{TopicID: topicID}
		)
		if err := rows.Scan(&seq, &e.TargetTopicID, &e.Message, &consensusAt); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		if e.SequenceNumber, err = safe.Uint64(seq); err != nil {
			return nil, err
		}
		e.ConsensusTimestamp = fromMillis(consensusAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate entries: %v", ledger.ErrUnavailable, err)
	}

	if len(entries) == 0 {
		if err := l.ensureTopic(ctx, topicID); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

func (l *Ledger) ensureTopic(ctx context.Context, topicID string) error {
	var one int
	err := l.db.QueryRowContext(ctx, `SELECT 1 FROM ledger_topics WHERE topic_id = ?`, topicID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", ledger.ErrTopicNotFound, topicID)
	}
	if err != nil {
		return fmt.Errorf("%w: lookup topic: %v", ledger.ErrUnavailable, err)
	}
	return nil
}
