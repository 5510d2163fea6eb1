package app

import (
	"context"
	"fmt"

	"github.com/example/syndicate/internal/ports/primary"
	"github.com/example/syndicate/internal/ports/secondary"
)

// MissionLogServiceImpl implements the MissionLogService interface.
type MissionLogServiceImpl struct {
	logRepo secondary.MissionLogRepository
}

// NewMissionLogService creates a new MissionLogService with injected dependencies.
func NewMissionLogService(logRepo secondary.MissionLogRepository) *MissionLogServiceImpl {
	return &MissionLogServiceImpl{
		logRepo: logRepo,
	}
}

// ListLogs retrieves log entries matching the given filters.
func (s *MissionLogServiceImpl) ListLogs(ctx context.Context, filters primary.MissionLogFilters) ([]*primary.MissionLogEntry, error) {
	records, err := s.logRepo.List(ctx, secondary.MissionLogFilters{
		MissionID: filters.MissionID,
		Outcome:   filters.Outcome,
		SessionID: filters.SessionID,
		Limit:     filters.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list mission log: %w", err)
	}

	entries := make([]*primary.MissionLogEntry, len(records))
	for i, r := range records {
		entries[i] = recordToLogEntry(r)
	}
	return entries, nil
}

// GetLog retrieves a single log entry by ID.
func (s *MissionLogServiceImpl) GetLog(ctx context.Context, id string) (*primary.MissionLogEntry, error) {
	record, err := s.logRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return recordToLogEntry(record), nil
}

// PruneLogs deletes log entries older than the specified number of days.
func (s *MissionLogServiceImpl) PruneLogs(ctx context.Context, olderThanDays int) (int, error) {
	if olderThanDays < 0 {
		return 0, fmt.Errorf("days must not be negative, got %d", olderThanDays)
	}
	return s.logRepo.PruneOlderThan(ctx, olderThanDays)
}

func recordToLogEntry(r *secondary.MissionLogRecord) *primary.MissionLogEntry {
	return &primary.MissionLogEntry{
		ID:             r.ID,
		SessionID:      r.SessionID,
		MissionID:      r.MissionID,
		TemplateID:     r.TemplateID,
		MissionName:    r.MissionName,
		Outcome:        r.Outcome,
		Roll:           r.Roll,
		Chance:         r.Chance,
		Payout:         r.Payout,
		Heat:           r.Heat,
		NotorietyDelta: r.NotorietyDelta,
		Tier:           r.Tier,
		FalloutCount:   r.FalloutCount,
		Details:        r.Details,
		CreatedAt:      r.CreatedAt,
	}
}

// Ensure MissionLogServiceImpl implements the interface
var _ primary.MissionLogService = (*MissionLogServiceImpl)(nil)
