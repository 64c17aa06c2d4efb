// Package attendance provides the PostgreSQL-backed attendance ledger.
package attendance

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mohammaddehghani/telegramrepbot/internal/dbx"
	"github.com/mohammaddehghani/telegramrepbot/internal/server/models"
)

// PostgresRepository implements ledger storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Insert relies on the attendance_one_per_day constraint for day-level
// deduplication: DO NOTHING plus rows-affected avoids a racy preceding
// read.
func (r *PostgresRepository) Insert(ctx context.Context, event *models.AttendanceEvent, localDay string) (bool, error) {
	query := `
		INSERT INTO attendance_events (id, account_id, kind, occurred_at, local_day)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT ON CONSTRAINT attendance_one_per_day DO NOTHING`

	res, err := r.db.ExecContext(ctx, query,
		event.ID, event.AccountID, string(event.Kind), event.OccurredAt, localDay)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected error: %w", err)
	}

	return n == 1, nil
}

func (r *PostgresRepository) Select(ctx context.Context, accountID *string, start, end *time.Time) ([]*models.AttendanceEvent, error) {
	query := `SELECT id, account_id, kind, occurred_at FROM attendance_events`

	var conds []string
	var args []any
	next := func() string { return fmt.Sprintf("$%d", len(args)) }

	if accountID != nil {
		args = append(args, *accountID)
		conds = append(conds, "account_id = "+next())
	}
	if start != nil {
		args = append(args, *start)
		conds = append(conds, "occurred_at >= "+next())
	}
	if end != nil {
		args = append(args, *end)
		conds = append(conds, "occurred_at < "+next())
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY occurred_at"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.AttendanceEvent
	for rows.Next() {
		ev := &models.AttendanceEvent{}
		var kind string
		if err := rows.Scan(&ev.ID, &ev.AccountID, &kind, &ev.OccurredAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		ev.Kind = models.EventKind(kind)
		result = append(result, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
