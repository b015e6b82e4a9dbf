package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"film-recommendations/pkg/utils"

	_ "github.com/mattn/go-sqlite3"
)

// InitSQLite opens the catalog file, creating its directory and tables when missing.
func InitSQLite(ctx context.Context, config utils.DatabaseConfig) (*sql.DB, error) {
	if dir := filepath.Dir(config.Path); dir != "" && config.Path != ":memory:" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", config.Path+"?_foreign_keys=on&mode=rwc")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	maxConns := int(config.MaxConns)
	if maxConns < 1 {
		maxConns = 1
	}
	db.SetMaxOpenConns(maxConns)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database failed: %w", err)
	}

	if err := MigrateSQLite(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
