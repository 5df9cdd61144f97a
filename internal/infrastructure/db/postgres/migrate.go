package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"go.uber.org/zap"
)

const (
	migrationsDir = "migrations"
	upMarker      = "-- +migrate Up"
	downMarker    = "-- +migrate Down"

	createMigrationsTable = `
		CREATE TABLE IF NOT EXISTS schema_migrations (
		    name       TEXT PRIMARY KEY,
		    applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
	selectMigrationApplied = `SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE name = $1)`
	insertMigration        = `INSERT INTO schema_migrations (name) VALUES ($1)`
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate applies every embedded migration that is not yet recorded in
// schema_migrations, in file name order, one transaction per file.
func Migrate(ctx context.Context, logger *zap.Logger, db DB) error {
	return applyMigrations(ctx, logger, db, migrationsFS)
}

func applyMigrations(ctx context.Context, logger *zap.Logger, db DB, fsys fs.FS) error {
	entries, err := fs.ReadDir(fsys, migrationsDir)
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	if _, err = db.Exec(ctx, createMigrationsTable); err != nil {
		return fmt.Errorf("ensure migrations table: %w", err)
	}

	tm := NewTxManager(db)
	for _, name := range files {
		content, err := fs.ReadFile(fsys, migrationsDir+"/"+name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}

		var applied bool
		if err = db.QueryRow(ctx, selectMigrationApplied, name).Scan(&applied); err != nil {
			return fmt.Errorf("check migration %s: %w", name, err)
		}
		if applied {
			continue
		}

		up := upSection(string(content))
		if err = tm.RunInTx(ctx, func(ctx context.Context) error {
			q := Conn(ctx, db)
			if strings.TrimSpace(up) != "" {
				if _, err := q.Exec(ctx, up); err != nil {
					return err
				}
			}
			_, err := q.Exec(ctx, insertMigration, name)
			return err
		}); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}

		logger.Info("migration applied", zap.String("name", name))
	}

	return nil
}

func upSection(content string) string {
	if i := strings.Index(content, upMarker); i >= 0 {
		content = content[i+len(upMarker):]
	}
	if i := strings.Index(content, downMarker); i >= 0 {
		content = content[:i]
	}
	return content
}
