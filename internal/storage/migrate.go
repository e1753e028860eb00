package storage

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// MigrateUp brings the schema up to date. Scripts run in lexical
// order and are idempotent, so re-running on an existing database is
// safe.
func MigrateUp(db *sql.DB) error {
	names, err := migrationScripts(".up.sql", false)
	if err != nil {
		return err
	}
	return applyScripts(db, names)
}

// MigrateDown unwinds the schema, newest script first.
func MigrateDown(db *sql.DB) error {
	names, err := migrationScripts(".down.sql", true)
	if err != nil {
		return err
	}
	return applyScripts(db, names)
}

func migrationScripts(suffix string, newestFirst bool) ([]string, error) {
	names, err := fs.Glob(migrationFiles, "migrations/*"+suffix)
	if err != nil {
		return nil, fmt.Errorf("list %s scripts: %w", suffix, err)
	}
	sort.Strings(names)
	if newestFirst {
		for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
			names[i], names[j] = names[j], names[i]
		}
	}
	return names, nil
}

func applyScripts(db *sql.DB, names []string) error {
	for _, name := range names {
		script, err := migrationFiles.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		if _, err := db.Exec(string(script)); err != nil {
			return fmt.Errorf("apply %s: %w", name, err)
		}
	}
	return nil
}
