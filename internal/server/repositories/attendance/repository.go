package attendance

import (
	"context"
	"time"

	"github.com/mohammaddehghani/telegramrepbot/internal/server/models"
)

type Repository interface {
	// Insert appends the event unless one of the same kind already
	// exists for the account on localDay. Returns false without error
	// when the row was refused by the uniqueness constraint; the
	// check-then-insert race is resolved inside the store.
	Insert(ctx context.Context, event *models.AttendanceEvent, localDay string) (bool, error)

	// Select returns events within [start, end) ascending by
	// occurred_at, filtered by account when accountID is non-nil.
	// Nil bounds mean unbounded.
	Select(ctx context.Context, accountID *string, start, end *time.Time) ([]*models.AttendanceEvent, error)
}
