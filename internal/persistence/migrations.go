package persistence

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const migrationsGlob = "migrations/*.sql"

// RunMigrations applies the SQL files under /migrations in lexical order.
// Files are written to be re-runnable (CREATE TABLE IF NOT EXISTS), so no
// version bookkeeping is kept.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	if pool == nil {
		logger.Warn("no postgres pool available; skipping migrations")
		return nil
	}

	paths, err := filepath.Glob(migrationsGlob)
	if err != nil {
		return fmt.Errorf("find migrations: %w", err)
	}
	sort.Strings(paths)

	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", path, err)
		}

		start := time.Now()
		if _, err := pool.Exec(ctx, string(content)); err != nil {
			return fmt.Errorf("apply migration %s: %w", path, err)
		}
		logger.Info("applied migration",
			zap.String("file", filepath.Base(path)),
			zap.Duration("took", time.Since(start)))
	}

	logger.Info("migrations complete", zap.Int("count", len(paths)))
	return nil
}
