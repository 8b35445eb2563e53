package database

import (
	"fmt"
	"os"
	"path/filepath"

	"inv-go/internal/config"
)

// NewDatabaseFromConfig opens the database selected by the config type. A
// sqlite database lives at <data_dir>/<site_id>.db and must be migrated
// separately; a memory database is migrated on open.
func NewDatabaseFromConfig(cfg config.DatabaseConfig, siteID string) (*SQLiteDatabase, error) {
	switch cfg.Type {
	case "sqlite":
		if cfg.DataDir == "" {
			return nil, fmt.Errorf("data_dir required for sqlite database")
		}
		if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
		return NewSQLiteDatabase(filepath.Join(cfg.DataDir, siteID+".db"))
	case "memory":
		db, err := NewSQLiteDatabase(":memory:")
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(); err != nil {
			db.Close()
			return nil, err
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unknown database type: %s", cfg.Type)
	}
}
