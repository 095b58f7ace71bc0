// Package migrate applies ordered .sql files once each, recording them in
// schema_migrations. Every file runs in its own transaction.
package migrate

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"go-recruitment-tracker/pkg/logger"
)

const createVersionsTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
    version    TEXT PRIMARY KEY,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

type Status struct {
	Version string
	Applied bool
}

type Runner struct {
	db    *sql.DB
	files fs.FS
}

func NewRunner(db *sql.DB, files fs.FS) *Runner {
	return &Runner{db: db, files: files}
}

// versions lists the .sql files in lexical order.
func (r *Runner) versions() ([]string, error) {
	names, err := fs.Glob(r.files, "*.sql")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

func (r *Runner) applied(ctx context.Context) (map[string]bool, error) {
	if _, err := r.db.ExecContext(ctx, createVersionsTable); err != nil {
		return nil, fmt.Errorf("create schema_migrations: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("read schema_migrations: %w", err)
	}
	defer rows.Close()

	done := map[string]bool{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		done[v] = true
	}
	return done, rows.Err()
}

// Status reports every migration file and whether it has been applied.
func (r *Runner) Status(ctx context.Context) ([]Status, error) {
	done, err := r.applied(ctx)
	if err != nil {
		return nil, err
	}
	names, err := r.versions()
	if err != nil {
		return nil, err
	}
	out := make([]Status, 0, len(names))
	for _, n := range names {
		out = append(out, Status{Version: n, Applied: done[n]})
	}
	return out, nil
}

// Up applies pending migrations and returns the versions it applied. It
// stops at the first failing file.
func (r *Runner) Up(ctx context.Context) ([]string, error) {
	done, err := r.applied(ctx)
	if err != nil {
		return nil, err
	}
	names, err := r.versions()
	if err != nil {
		return nil, err
	}

	var applied []string
	for _, name := range names {
		if done[name] {
			continue
		}
		content, err := fs.ReadFile(r.files, name)
		if err != nil {
			return applied, fmt.Errorf("read %s: %w", name, err)
		}
		if strings.TrimSpace(string(content)) == "" {
			continue
		}
		if err := r.apply(ctx, name, string(content)); err != nil {
			return applied, err
		}
		logger.Log.Info("Migration applied", "version", name)
		applied = append(applied, name)
	}
	return applied, nil
}

func (r *Runner) apply(ctx context.Context, name, content string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin %s: %w", name, err)
	}
	if _, err := tx.ExecContext(ctx, content); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("apply %s: %w", name, err)
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, name); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("record %s: %w", name, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit %s: %w", name, err)
	}
	return nil
}
