package secondary

import "context"

// MissionLogRepository defines the secondary port for mission log persistence.
// Entries are immutable - no Update operations, but old entries can be pruned.
type MissionLogRepository interface {
	// Append persists a new mission log entry.
	Append(ctx context.Context, entry *MissionLogRecord) error

	// GetByID retrieves a log entry by its ID.
	GetByID(ctx context.Context, id string) (*MissionLogRecord, error)

	// List retrieves log entries matching the given filters, newest first.
	List(ctx context.Context, filters MissionLogFilters) ([]*MissionLogRecord, error)

	// PruneOlderThan deletes entries older than the given number of days.
	// Returns the number of deleted entries.
	PruneOlderThan(ctx context.Context, days int) (int, error)
}

// MissionLogRecord represents a mission log entry as stored in persistence.
type MissionLogRecord struct {
	ID             string
	SessionID      string // Empty string means null
	MissionID      string
	TemplateID     string
	MissionName    string
	Outcome        string
	Roll           float64
	Chance         float64
	Payout         float64
	Heat           float64
	NotorietyDelta float64
	Tier           string
	FalloutCount   int
	Details        string // JSON encoded resolution details
	CreatedAt      string
}

// MissionLogFilters contains filter options for querying the mission log.
type MissionLogFilters struct {
	MissionID string
	Outcome   string
	SessionID string
	Limit     int
}
