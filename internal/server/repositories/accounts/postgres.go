// Package accounts provides the PostgreSQL-backed account registry.
package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mohammaddehghani/telegramrepbot/internal/common"
	"github.com/mohammaddehghani/telegramrepbot/internal/dbx"
	"github.com/mohammaddehghani/telegramrepbot/internal/server/models"
)

// PostgresRepository implements account storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const accountColumns = `id, external_id, full_name, handle, display_name, employee_code, created_at`

func scanAccount(row *sql.Row) (*models.Account, error) {
	a := &models.Account{}
	err := row.Scan(&a.ID, &a.ExternalID, &a.FullName, &a.Handle, &a.DisplayName, &a.EmployeeCode, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

// Upsert inserts the account on first contact; on conflict the no-op
// update makes RETURNING yield the existing row, so concurrent first
// contacts all observe the same account. The employee code comes from
// the column's sequence default inside the same statement.
func (r *PostgresRepository) Upsert(ctx context.Context, account *models.Account) (*models.Account, error) {
	query := `
		INSERT INTO accounts (id, external_id, full_name, handle, display_name)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (external_id)
		DO UPDATE SET external_id = EXCLUDED.external_id
		RETURNING ` + accountColumns

	row := r.db.QueryRowContext(ctx, query,
		account.ID, account.ExternalID, account.FullName, account.Handle, account.DisplayName)

	return scanAccount(row)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	return scanAccount(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) GetByExternalID(ctx context.Context, externalID int64) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE external_id = $1`
	return scanAccount(r.db.QueryRowContext(ctx, query, externalID))
}

func (r *PostgresRepository) GetByEmployeeCode(ctx context.Context, code int64) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE employee_code = $1`
	return scanAccount(r.db.QueryRowContext(ctx, query, code))
}

func (r *PostgresRepository) UpdateDisplayName(ctx context.Context, id string, name string) error {
	query := `UPDATE accounts SET display_name = $1 WHERE id = $2`

	res, err := r.db.ExecContext(ctx, query, name, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY employee_code`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Account
	for rows.Next() {
		a := &models.Account{}
		if err := rows.Scan(&a.ID, &a.ExternalID, &a.FullName, &a.Handle, &a.DisplayName, &a.EmployeeCode, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
