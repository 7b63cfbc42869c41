// Package migrations applies the SQL schemas of the derived store and the
// verdict audit log from a directory of golang-migrate files.
package migrations

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
)

// Direction selects whether a run applies or rolls back migrations.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// Run applies every pending migration in dir to databaseURL, or rolls all
// of them back for Down. An already current schema is not an error.
func Run(ctx context.Context, dir, databaseURL string, direction Direction, logger *zap.Logger) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	sourceURL, err := SourceURL(dir)
	if err != nil {
		return err
	}

	m, err := migrate.New(sourceURL, databaseURL)
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			logger.Warn("migration source close error", zap.Error(srcErr))
		}
		if dbErr != nil {
			logger.Warn("migration database close error", zap.Error(dbErr))
		}
	}()

	apply := m.Up
	if direction == Down {
		apply = m.Down
	}
	if err := apply(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("schema already current", zap.String("dir", dir))
			return nil
		}
		return fmt.Errorf("migrate %s: %w", direction, err)
	}

	version, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		logger.Info("all migrations rolled back", zap.String("dir", dir))
	case err != nil:
		return fmt.Errorf("read schema version: %w", err)
	default:
		logger.Info("migrations applied",
			zap.String("dir", dir),
			zap.String("direction", string(direction)),
			zap.Uint("version", version),
			zap.Bool("dirty", dirty),
		)
	}
	return nil
}

// SourceURL resolves dir to the file:// URL golang-migrate reads from.
func SourceURL(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve migrations dir: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("stat migrations dir %s: %w", abs, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", abs)
	}
	return "file://" + filepath.ToSlash(abs), nil
}

// PostgresURL rewrites postgres:// URLs to the pgx5:// scheme the pgx/v5
// migrate driver registers under.
func PostgresURL(dsn string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if strings.HasPrefix(dsn, prefix) {
			return "pgx5://" + strings.TrimPrefix(dsn, prefix)
		}
	}
	return dsn
}

// ClickhouseURL turns on multi-statement mode so a migration file may hold
// more than one statement.
func ClickhouseURL(dsn string) string {
	if strings.Contains(dsn, "x-multi-statement=") {
		return dsn
	}
	separator := "?"
	if strings.Contains(dsn, "?") {
		separator = "&"
	}
	return dsn + separator + "x-multi-statement=true"
}
