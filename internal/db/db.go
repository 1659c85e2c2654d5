package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenSQLite opens (and creates if needed) the embedded database file.
// Foreign keys are off by default in SQLite and the schema relies on them.
func OpenSQLite(path string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%v?_foreign_keys=on&_busy_timeout=5000", path)

	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("gorm.Open -> %w", err)
	}

	return conn, nil
}

// OpenPostgresWithURL connects using a full database URL, typically
// injected by the hosting platform as DATABASE_URL.
func OpenPostgresWithURL(url string) (*gorm.DB, error) {
	conn, err := gorm.Open(postgres.Open(url), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("gorm.Open -> %w", err)
	}

	return conn, nil
}
