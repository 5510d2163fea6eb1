package db

import (
	"database/sql"
	"fmt"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	Up      func(*sql.Tx) error
}

// migrations is the list of all migrations in order
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_mission_log",
		Up:      migrationV1,
	},
	{
		Version: 2,
		Name:    "add_notoriety_and_fallout_to_mission_log",
		Up:      migrationV2,
	},
	{
		Version: 3,
		Name:    "add_mission_log_indexes",
		Up:      migrationV3,
	},
}

func ensureVersionTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}
	return nil
}

// RunMigrations executes all pending migrations, each in its own transaction.
func RunMigrations(db *sql.DB) error {
	if err := ensureVersionTable(db); err != nil {
		return err
	}

	var currentVersion int
	err := db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %d: %w", migration.Version, err)
		}

		if err := migration.Up(tx); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d (%s) failed: %w", migration.Version, migration.Name, err)
		}

		if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", migration.Version); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}
	}

	return nil
}

// migrationV1 creates the original mission log table
func migrationV1(tx *sql.Tx) error {
	_, err := tx.Exec(`
		CREATE TABLE IF NOT EXISTS mission_log (
			id TEXT PRIMARY KEY,
			session_id TEXT,
			mission_id TEXT NOT NULL,
			template_id TEXT NOT NULL,
			mission_name TEXT NOT NULL,
			outcome TEXT NOT NULL CHECK(outcome IN ('success', 'failure')),
			roll REAL NOT NULL DEFAULT 0,
			chance REAL NOT NULL DEFAULT 0,
			payout REAL NOT NULL DEFAULT 0,
			heat REAL NOT NULL DEFAULT 0,
			tier TEXT NOT NULL CHECK(tier IN ('calm', 'alert', 'lockdown')) DEFAULT 'calm',
			details TEXT,
			created_at DATETIME NOT NULL
		)
	`)
	return err
}

// migrationV2 adds notoriety and fallout telemetry
func migrationV2(tx *sql.Tx) error {
	if _, err := tx.Exec(`ALTER TABLE mission_log ADD COLUMN notoriety_delta REAL NOT NULL DEFAULT 0`); err != nil {
		return err
	}
	_, err := tx.Exec(`ALTER TABLE mission_log ADD COLUMN fallout_count INTEGER NOT NULL DEFAULT 0`)
	return err
}

// migrationV3 indexes the columns the log command filters on
func migrationV3(tx *sql.Tx) error {
	for _, stmt := range []string{
		`CREATE INDEX IF NOT EXISTS idx_mission_log_mission ON mission_log(mission_id)`,
		`CREATE INDEX IF NOT EXISTS idx_mission_log_session ON mission_log(session_id)`,
		`CREATE INDEX IF NOT EXISTS idx_mission_log_created ON mission_log(created_at)`,
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
