package repomanager

import (
	"context"
	"database/sql"

	"github.com/mohammaddehghani/telegramrepbot/internal/dbx"
	"github.com/mohammaddehghani/telegramrepbot/internal/server/repositories/accounts"
	"github.com/mohammaddehghani/telegramrepbot/internal/server/repositories/admins"
	"github.com/mohammaddehghani/telegramrepbot/internal/server/repositories/attendance"
)

// RepositoryManager vends repositories bound to a DBTX, so callers can
// scope them either to the shared *sql.DB or to a transaction.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Accounts(db dbx.DBTX) accounts.Repository
	Admins(db dbx.DBTX) admins.Repository
	Attendance(db dbx.DBTX) attendance.Repository
}
