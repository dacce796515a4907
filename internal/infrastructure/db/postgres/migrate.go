package postgres

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"

	"github.com/clientdesk/crm-api/internal/api/metrics"
)

// createLedgerTable bootstraps the migration ledger. This statement itself
// is exempt from ledger tracking and must stay idempotent.
const createLedgerTable = `CREATE TABLE IF NOT EXISTS migrations (
	filename TEXT PRIMARY KEY,
	executed_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Migrator applies ordered SQL migration scripts exactly once, tracked in
// the migrations ledger table. Scripts run in lexicographic filename order,
// which is why the files are numbered (001-..., 002-...).
type Migrator struct {
	db     *sqlx.DB
	dir    string
	logger zerolog.Logger
}

func NewMigrator(db *sqlx.DB, dir string, logger zerolog.Logger) *Migrator {
	return &Migrator{db: db, dir: dir, logger: logger}
}

// Run applies every pending migration script. Any statement failure aborts
// the remaining statements of that script and is propagated; at startup the
// caller treats this as fatal. A missing migrations directory is not an
// error: the schema may be managed externally.
func (m *Migrator) Run(ctx context.Context) error {
	if _, err := m.db.ExecContext(ctx, createLedgerTable); err != nil {
		return fmt.Errorf("create migrations table: %w", err)
	}

	entries, err := os.ReadDir(m.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			m.logger.Warn().Str("dir", m.dir).Msg("migrations directory not found, skipping")
			return nil
		}
		return fmt.Errorf("read migrations dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		applied, err := m.isApplied(ctx, name)
		if err != nil {
			return err
		}
		if applied {
			m.logger.Debug().Str("migration", name).Msg("already applied, skipping")
			continue
		}
		if err := m.apply(ctx, name); err != nil {
			return err
		}
		m.logger.Info().Str("migration", name).Msg("migration applied")
		metrics.MigrationsAppliedTotal.Inc()
	}

	return nil
}

func (m *Migrator) isApplied(ctx context.Context, name string) (bool, error) {
	var applied bool
	query := "SELECT EXISTS(SELECT 1 FROM migrations WHERE filename = $1)"
	if err := m.db.GetContext(ctx, &applied, query, name); err != nil {
		return false, fmt.Errorf("check migration %s: %w", name, err)
	}
	return applied, nil
}

func (m *Migrator) apply(ctx context.Context, name string) error {
	script, err := os.ReadFile(filepath.Join(m.dir, name))
	if err != nil {
		return fmt.Errorf("read migration %s: %w", name, err)
	}

	for _, stmt := range splitStatements(string(script)) {
		if _, err := m.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("execute migration %s: %w", name, err)
		}
	}

	if _, err := m.db.ExecContext(ctx, "INSERT INTO migrations (filename) VALUES ($1)", name); err != nil {
		return fmt.Errorf("record migration %s: %w", name, err)
	}
	return nil
}

// splitStatements breaks a script into individual statements on terminator
// boundaries, dropping whitespace-only fragments.
func splitStatements(script string) []string {
	parts := strings.Split(script, ";")
	stmts := make([]string, 0, len(parts))
	for _, part := range parts {
		if stmt := strings.TrimSpace(part); stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}
