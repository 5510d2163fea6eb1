package db

import (
	"database/sql"
	"fmt"
)

// SchemaSQL is the complete schema for fresh installs.
// This schema reflects the current state after all migrations.
//
// # Schema Drift Protection
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. All tests use
// this schema via GetSchemaSQL(). If repository code references a column that
// doesn't exist here, tests fail immediately with "no such column".
//
// When adding new columns or tables:
//  1. Add a migration in migrations.go
//  2. Update SchemaSQL here
//  3. Run the sqlite adapter tests to verify alignment
const SchemaSQL = `
-- Mission log (one row per resolved mission)
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
	notoriety_delta REAL NOT NULL DEFAULT 0,
	tier TEXT NOT NULL CHECK(tier IN ('calm', 'alert', 'lockdown')) DEFAULT 'calm',
	fallout_count INTEGER NOT NULL DEFAULT 0,
	details TEXT,
	created_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_mission_log_mission ON mission_log(mission_id);
CREATE INDEX IF NOT EXISTS idx_mission_log_session ON mission_log(session_id);
CREATE INDEX IF NOT EXISTS idx_mission_log_created ON mission_log(created_at);
`

// InitSchema creates the schema on a fresh database, or migrates an existing one.
func InitSchema(db *sql.DB) error {
	if err := ensureVersionTable(db); err != nil {
		return err
	}

	var tableCount int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='mission_log'").Scan(&tableCount)
	if err != nil {
		return fmt.Errorf("failed to inspect schema: %w", err)
	}

	if tableCount > 0 {
		return RunMigrations(db)
	}

	// Fresh install - create the current schema and mark every migration applied
	if _, err := db.Exec(SchemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	for _, m := range migrations {
		if _, err := db.Exec("INSERT OR IGNORE INTO schema_version (version) VALUES (?)", m.Version); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}
	}
	return nil
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
