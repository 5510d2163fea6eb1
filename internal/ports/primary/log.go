package primary

import "context"

// MissionLogService defines the primary port for resolved mission telemetry.
type MissionLogService interface {
	// ListLogs retrieves log entries matching the given filters, newest first.
	ListLogs(ctx context.Context, filters MissionLogFilters) ([]*MissionLogEntry, error)

	// GetLog retrieves a single log entry by ID.
	GetLog(ctx context.Context, id string) (*MissionLogEntry, error)

	// PruneLogs deletes log entries older than the specified number of days.
	PruneLogs(ctx context.Context, olderThanDays int) (int, error)
}

// MissionLogEntry represents a resolved mission at the port boundary.
type MissionLogEntry struct {
	ID             string
	SessionID      string
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
