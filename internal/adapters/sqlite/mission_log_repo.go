// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/syndicate/internal/ports/secondary"
)

const missionLogColumns = `id, session_id, mission_id, template_id, mission_name, outcome, roll, chance, payout, heat, notoriety_delta, tier, fallout_count, details, created_at`

// MissionLogRepository implements secondary.MissionLogRepository with SQLite.
type MissionLogRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewMissionLogRepository creates a new SQLite mission log repository.
func NewMissionLogRepository(db *sql.DB) *MissionLogRepository {
	return &MissionLogRepository{db: db, now: time.Now}
}

// Append persists a new mission log entry. An empty CreatedAt is stamped with the current time.
func (r *MissionLogRepository) Append(ctx context.Context, entry *secondary.MissionLogRecord) error {
	createdAt := r.now().UTC()
	if entry.CreatedAt != "" {
		t, err := time.Parse(time.RFC3339, entry.CreatedAt)
		if err != nil {
			return fmt.Errorf("invalid created_at %q: %w", entry.CreatedAt, err)
		}
		createdAt = t.UTC()
	}

	var sessionID, details sql.NullString
	if entry.SessionID != "" {
		sessionID = sql.NullString{String: entry.SessionID, Valid: true}
	}
	if entry.Details != "" {
		details = sql.NullString{String: entry.Details, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO mission_log (`+missionLogColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID,
		sessionID,
		entry.MissionID,
		entry.TemplateID,
		entry.MissionName,
		entry.Outcome,
		entry.Roll,
		entry.Chance,
		entry.Payout,
		entry.Heat,
		entry.NotorietyDelta,
		entry.Tier,
		entry.FalloutCount,
		details,
		createdAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append mission log: %w", err)
	}

	entry.CreatedAt = createdAt.Format(time.RFC3339)
	return nil
}

// GetByID retrieves a log entry by its ID.
func (r *MissionLogRepository) GetByID(ctx context.Context, id string) (*secondary.MissionLogRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+missionLogColumns+` FROM mission_log WHERE id = ?`,
		id,
	)
	record, err := scanMissionLog(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("mission log %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get mission log: %w", err)
	}
	return record, nil
}

// List retrieves log entries matching the given filters, newest first.
func (r *MissionLogRepository) List(ctx context.Context, filters secondary.MissionLogFilters) ([]*secondary.MissionLogRecord, error) {
	query := `SELECT ` + missionLogColumns + ` FROM mission_log WHERE 1=1`
	args := []any{}

	if filters.MissionID != "" {
		query += " AND mission_id = ?"
		args = append(args, filters.MissionID)
	}

	if filters.Outcome != "" {
		query += " AND outcome = ?"
		args = append(args, filters.Outcome)
	}

	if filters.SessionID != "" {
		query += " AND session_id = ?"
		args = append(args, filters.SessionID)
	}

	query += " ORDER BY created_at DESC, rowid DESC"

	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list mission log: %w", err)
	}
	defer rows.Close()

	var records []*secondary.MissionLogRecord
	for rows.Next() {
		record, err := scanMissionLog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan mission log: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate mission log: %w", err)
	}

	return records, nil
}

// PruneOlderThan deletes log entries older than the given number of days.
func (r *MissionLogRepository) PruneOlderThan(ctx context.Context, days int) (int, error) {
	cutoff := r.now().UTC().AddDate(0, 0, -days)
	result, err := r.db.ExecContext(ctx, "DELETE FROM mission_log WHERE created_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune mission log: %w", err)
	}

	count, _ := result.RowsAffected()
	return int(count), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMissionLog(s rowScanner) (*secondary.MissionLogRecord, error) {
	var (
		sessionID sql.NullString
		details   sql.NullString
		createdAt time.Time
	)

	record := &secondary.MissionLogRecord{}
	err := s.Scan(&record.ID,
		&sessionID,
		&record.MissionID,
		&record.TemplateID,
		&record.MissionName,
		&record.Outcome,
		&record.Roll,
		&record.Chance,
		&record.Payout,
		&record.Heat,
		&record.NotorietyDelta,
		&record.Tier,
		&record.FalloutCount,
		&details,
		&createdAt)
	if err != nil {
		return nil, err
	}
	record.SessionID = sessionID.String
	record.Details = details.String
	record.CreatedAt = createdAt.Format(time.RFC3339)
	return record, nil
}

// Ensure MissionLogRepository implements the interface
var _ secondary.MissionLogRepository = (*MissionLogRepository)(nil)
