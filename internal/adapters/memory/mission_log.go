package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/example/syndicate/internal/ports/secondary"
)

// MissionLogRepository implements secondary.MissionLogRepository in memory.
// Used when no database path is configured.
type MissionLogRepository struct {
	mu      sync.Mutex
	records []*secondary.MissionLogRecord
	now     func() time.Time
}

// NewMissionLogRepository creates an empty in-memory mission log.
func NewMissionLogRepository() *MissionLogRepository {
	return &MissionLogRepository{now: time.Now}
}

// Append stores a copy of entry. An empty CreatedAt is stamped with the current time.
func (r *MissionLogRepository) Append(ctx context.Context, entry *secondary.MissionLogRecord) error {
	if entry.CreatedAt == "" {
		entry.CreatedAt = r.now().UTC().Format(time.RFC3339)
	} else if _, err := time.Parse(time.RFC3339, entry.CreatedAt); err != nil {
		return fmt.Errorf("invalid created_at %q: %w", entry.CreatedAt, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.records {
		if existing.ID == entry.ID {
			return fmt.Errorf("mission log %s already exists", entry.ID)
		}
	}
	c := *entry
	r.records = append(r.records, &c)
	return nil
}

// GetByID retrieves a log entry by its ID.
func (r *MissionLogRepository) GetByID(ctx context.Context, id string) (*secondary.MissionLogRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.records {
		if rec.ID == id {
			c := *rec
			return &c, nil
		}
	}
	return nil, fmt.Errorf("mission log %s not found", id)
}

// List retrieves log entries matching the given filters, newest first.
func (r *MissionLogRepository) List(ctx context.Context, filters secondary.MissionLogFilters) ([]*secondary.MissionLogRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*secondary.MissionLogRecord
	for i := len(r.records) - 1; i >= 0; i-- {
		rec := r.records[i]
		if filters.MissionID != "" && rec.MissionID != filters.MissionID {
			continue
		}
		if filters.Outcome != "" && rec.Outcome != filters.Outcome {
			continue
		}
		if filters.SessionID != "" && rec.SessionID != filters.SessionID {
			continue
		}
		c := *rec
		out = append(out, &c)
		if filters.Limit > 0 && len(out) == filters.Limit {
			break
		}
	}
	return out, nil
}

// PruneOlderThan deletes entries older than the given number of days.
func (r *MissionLogRepository) PruneOlderThan(ctx context.Context, days int) (int, error) {
	cutoff := r.now().UTC().AddDate(0, 0, -days)

	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.records[:0]
	count := 0
	for _, rec := range r.records {
		ts, err := time.Parse(time.RFC3339, rec.CreatedAt)
		if err == nil && ts.Before(cutoff) {
			count++
			continue
		}
		kept = append(kept, rec)
	}
	for i := len(kept); i < len(r.records); i++ {
		r.records[i] = nil
	}
	r.records = kept
	return count, nil
}

var _ secondary.MissionLogRepository = (*MissionLogRepository)(nil)
