package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/mohammaddehghani/telegramrepbot/internal/common"
	"github.com/mohammaddehghani/telegramrepbot/internal/dbx"
	"github.com/mohammaddehghani/telegramrepbot/internal/server/models"
	"github.com/mohammaddehghani/telegramrepbot/internal/server/repositories/accounts"
	"github.com/mohammaddehghani/telegramrepbot/internal/server/repositories/admins"
	"github.com/mohammaddehghani/telegramrepbot/internal/server/repositories/attendance"
)

// --- fake repositories, one struct per entity ---

type fakeAccountsRepo struct {
	upsertOut *models.Account
	upsertErr error
	upsertIn  *models.Account

	byID     map[string]*models.Account
	byExtID  map[int64]*models.Account
	byCode   map[int64]*models.Account
	getErr   error
	listOut  []*models.Account
	listErr  error
	renameID string
	renamed  string
	renameErr error
}

func (f *fakeAccountsRepo) Upsert(ctx context.Context, a *models.Account) (*models.Account, error) {
	f.upsertIn = a
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}
	if f.upsertOut != nil {
		return f.upsertOut, nil
	}
	return a, nil
}

func (f *fakeAccountsRepo) GetByID(ctx context.Context, id string) (*models.Account, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if a, ok := f.byID[id]; ok {
		return a, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeAccountsRepo) GetByExternalID(ctx context.Context, extID int64) (*models.Account, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if a, ok := f.byExtID[extID]; ok {
		return a, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeAccountsRepo) GetByEmployeeCode(ctx context.Context, code int64) (*models.Account, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if a, ok := f.byCode[code]; ok {
		return a, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeAccountsRepo) UpdateDisplayName(ctx context.Context, id string, name string) error {
	if f.renameErr != nil {
		return f.renameErr
	}
	f.renameID, f.renamed = id, name
	return nil
}

func (f *fakeAccountsRepo) List(ctx context.Context) ([]*models.Account, error) {
	return f.listOut, f.listErr
}

type fakeAdminsRepo struct {
	existsOut bool
	existsErr error
	granted   []int64
	revoked   []int64
	listOut   []int64
	listErr   error
}

func (f *fakeAdminsRepo) Exists(ctx context.Context, extID int64) (bool, error) {
	return f.existsOut, f.existsErr
}

func (f *fakeAdminsRepo) Grant(ctx context.Context, extID int64) error {
	f.granted = append(f.granted, extID)
	return nil
}

func (f *fakeAdminsRepo) Revoke(ctx context.Context, extID int64) error {
	f.revoked = append(f.revoked, extID)
	return nil
}

func (f *fakeAdminsRepo) List(ctx context.Context) ([]int64, error) {
	return f.listOut, f.listErr
}

type fakeAttendanceRepo struct {
	insertOK  bool
	insertErr error
	insertEv  *models.AttendanceEvent
	insertDay string

	selectOut []*models.AttendanceEvent
	selectErr error
}

func (f *fakeAttendanceRepo) Insert(ctx context.Context, ev *models.AttendanceEvent, localDay string) (bool, error) {
	f.insertEv, f.insertDay = ev, localDay
	if f.insertErr != nil {
		return false, f.insertErr
	}
	return f.insertOK, nil
}

func (f *fakeAttendanceRepo) Select(ctx context.Context, accountID *string, start, end *time.Time) ([]*models.AttendanceEvent, error) {
	if f.selectErr != nil {
		return nil, f.selectErr
	}
	if accountID == nil {
		return f.selectOut, nil
	}
	var out []*models.AttendanceEvent
	for _, ev := range f.selectOut {
		if ev.AccountID == *accountID {
			out = append(out, ev)
		}
	}
	return out, nil
}

// fakeRepoManager vends the fakes regardless of the DBTX passed in.
type fakeRepoManager struct {
	accounts   *fakeAccountsRepo
	admins     *fakeAdminsRepo
	attendance *fakeAttendanceRepo
}

func (f *fakeRepoManager) RunMigrations(ctx context.Context, db *sql.DB) error { return nil }

func (f *fakeRepoManager) Accounts(db dbx.DBTX) accounts.Repository { return f.accounts }

func (f *fakeRepoManager) Admins(db dbx.DBTX) admins.Repository { return f.admins }

func (f *fakeRepoManager) Attendance(db dbx.DBTX) attendance.Repository { return f.attendance }
