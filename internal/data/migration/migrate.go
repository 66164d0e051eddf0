// Package migration applies the embedded SQL schema files in lexical order.
package migration

import (
	"context"
	"embed"
	"fmt"
	"sort"
	"strings"

	"campus-parking/pkg/database"

	"go.uber.org/zap"
)

//go:embed *.sql
var files embed.FS

// Up applies every migration not yet recorded in schema_migrations and
// returns the names of the files it applied.
func Up(ctx context.Context, db database.PgxIface, log *zap.Logger) ([]string, error) {
	names, err := Files()
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version TEXT PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`); err != nil {
		return nil, fmt.Errorf("create schema_migrations: %w", err)
	}

	var applied []string
	for _, name := range names {
		var done bool
		if err := db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`, name).Scan(&done); err != nil {
			return applied, fmt.Errorf("check migration %s: %w", name, err)
		}
		if done {
			continue
		}

		body, err := files.ReadFile(name)
		if err != nil {
			return applied, fmt.Errorf("read migration %s: %w", name, err)
		}

		err = database.WithTx(ctx, db, func(ctx context.Context) error {
			conn := database.Conn(ctx, db)
			if _, err := conn.Exec(ctx, string(body)); err != nil {
				return err
			}
			_, err := conn.Exec(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, name)
			return err
		})
		if err != nil {
			return applied, fmt.Errorf("apply %s: %w", name, err)
		}

		log.Info("Migration applied", zap.String("version", name))
		applied = append(applied, name)
	}

	return applied, nil
}

// Files lists the embedded migration names in apply order.
func Files() ([]string, error) {
	entries, err := files.ReadDir(".")
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	return names, nil
}
