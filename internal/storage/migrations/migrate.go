package migrations

import (
	"database/sql"
	"embed"
	"fmt"
	"github.com/pressly/goose/v3"
)

const mysqlDialect = "mysql"

//go:embed sql/*.sql
var migrationsFS embed.FS

// Up накатывает все миграции из sql/.
func Up(db *sql.DB) error {
	const op = "storage.migrations.Up"

	goose.SetBaseFS(migrationsFS)

	if err := goose.SetDialect(mysqlDialect); err != nil {
		return fmt.Errorf("%s: set goose dialect: %w", op, err)
	}

	if err := goose.Up(db, "sql"); err != nil {
		return fmt.Errorf("%s: run goose up migrations: %w", op, err)
	}

	return nil
}

// Files - список файлов миграций в порядке применения.
func Files() ([]string, error) {
	entries, err := migrationsFS.ReadDir("sql")
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}

	return names, nil
}
