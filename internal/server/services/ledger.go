package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mohammaddehghani/telegramrepbot/internal/common"
	"github.com/mohammaddehghani/telegramrepbot/internal/jalalix"
	"github.com/mohammaddehghani/telegramrepbot/internal/server/models"
	"github.com/mohammaddehghani/telegramrepbot/internal/server/repositories/repomanager"
)

// LedgerService appends attendance events with day-level deduplication.
type LedgerService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
}

// NewLedgerService constructs a LedgerService.
func NewLedgerService(db *sql.DB, m repomanager.RepositoryManager) *LedgerService {
	return &LedgerService{db: db, repos: m}
}

// Record appends an event for the local day containing at. A second
// event of the same kind on the same local day is refused by the
// store's uniqueness constraint and reported as ErrorAlreadyRecorded.
func (s *LedgerService) Record(ctx context.Context, accountID string, kind models.EventKind, at time.Time) (*models.AttendanceEvent, error) {
	event := &models.AttendanceEvent{
		ID:         uuid.NewString(),
		AccountID:  accountID,
		Kind:       kind,
		OccurredAt: at,
	}

	inserted, err := s.repos.Attendance(s.db).Insert(ctx, event, jalalix.LocalDay(at))
	if err != nil {
		return nil, fmt.Errorf("error recording attendance: %w", err)
	}
	if !inserted {
		return nil, common.ErrorAlreadyRecorded
	}
	return event, nil
}

// Query returns events within [start, end) ascending by occurred_at,
// optionally filtered by account. Nil bounds mean unbounded.
func (s *LedgerService) Query(ctx context.Context, accountID *string, start, end *time.Time) ([]*models.AttendanceEvent, error) {
	return s.repos.Attendance(s.db).Select(ctx, accountID, start, end)
}
