// Package admins provides the PostgreSQL-backed admin grant store.
package admins

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mohammaddehghani/telegramrepbot/internal/dbx"
)

// PostgresRepository implements grant storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Exists(ctx context.Context, externalID int64) (bool, error) {
	query := `SELECT 1 FROM admin_grants WHERE external_id = $1`

	var one int
	err := r.db.QueryRowContext(ctx, query, externalID).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("db error: %w", err)
	}
	return true, nil
}

func (r *PostgresRepository) Grant(ctx context.Context, externalID int64) error {
	query := `
		INSERT INTO admin_grants (external_id) VALUES ($1)
		ON CONFLICT (external_id) DO NOTHING`

	if _, err := r.db.ExecContext(ctx, query, externalID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Revoke(ctx context.Context, externalID int64) error {
	query := `DELETE FROM admin_grants WHERE external_id = $1`

	if _, err := r.db.ExecContext(ctx, query, externalID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]int64, error) {
	query := `SELECT external_id FROM admin_grants ORDER BY granted_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
