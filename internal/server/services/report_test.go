package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mohammaddehghani/telegramrepbot/internal/common"
	"github.com/mohammaddehghani/telegramrepbot/internal/jalalix"
	"github.com/mohammaddehghani/telegramrepbot/internal/server/models"
)

func reportFixture() (*fakeAccountsRepo, *fakeAttendanceRepo, time.Time) {
	day := time.Date(2024, 7, 22, 0, 0, 0, 0, jalalix.Location())

	u1 := &models.Account{ID: "a-1", ExternalID: 100, DisplayName: "U1", EmployeeCode: 1}
	u2 := &models.Account{ID: "a-2", ExternalID: 200, DisplayName: "U2", EmployeeCode: 2}

	accountsRepo := &fakeAccountsRepo{
		byID:    map[string]*models.Account{"a-1": u1, "a-2": u2},
		listOut: []*models.Account{u1, u2},
	}
	attendanceRepo := &fakeAttendanceRepo{
		selectOut: []*models.AttendanceEvent{
			{ID: "e-1", AccountID: "a-1", Kind: models.KindEnter, OccurredAt: day.Add(8 * time.Hour)},
			{ID: "e-2", AccountID: "a-2", Kind: models.KindExit, OccurredAt: day.Add(18 * time.Hour)},
		},
	}
	return accountsRepo, attendanceRepo, day
}

func TestDaily_AllScope_GroupsByEmployeeCode(t *testing.T) {
	accountsRepo, attendanceRepo, day := reportFixture()
	svc := NewReportService(nil, &fakeRepoManager{accounts: accountsRepo, attendance: attendanceRepo}, testConfig())

	report, err := svc.Daily(context.Background(), nil, day.Add(12*time.Hour))
	if err != nil {
		t.Fatalf("Daily error: %v", err)
	}
	if report.Single {
		t.Fatal("all scope must not be single")
	}
	if len(report.Groups) != 2 {
		t.Fatalf("want 2 groups, got %d", len(report.Groups))
	}
	if report.Groups[0].Account.ID != "a-1" || report.Groups[1].Account.ID != "a-2" {
		t.Fatalf("groups out of order: %+v", report.Groups)
	}
	if len(report.Groups[0].Events) != 1 || report.Groups[0].Events[0].ID != "e-1" {
		t.Fatalf("unexpected group events: %+v", report.Groups[0].Events)
	}
}

func TestDaily_AccountOrderIndependentOfArrival(t *testing.T) {
	accountsRepo, attendanceRepo, day := reportFixture()
	// events arrive u2-first; account order must still follow the registry
	attendanceRepo.selectOut = []*models.AttendanceEvent{
		{ID: "e-2", AccountID: "a-2", Kind: models.KindExit, OccurredAt: day.Add(7 * time.Hour)},
		{ID: "e-1", AccountID: "a-1", Kind: models.KindEnter, OccurredAt: day.Add(8 * time.Hour)},
	}
	svc := NewReportService(nil, &fakeRepoManager{accounts: accountsRepo, attendance: attendanceRepo}, testConfig())

	report, err := svc.Daily(context.Background(), nil, day.Add(12*time.Hour))
	if err != nil {
		t.Fatalf("Daily error: %v", err)
	}
	if report.Groups[0].Account.ID != "a-1" {
		t.Fatalf("want registry order, got %+v", report.Groups)
	}
}

func TestDaily_SingleScope(t *testing.T) {
	accountsRepo, attendanceRepo, day := reportFixture()
	svc := NewReportService(nil, &fakeRepoManager{accounts: accountsRepo, attendance: attendanceRepo}, testConfig())

	accountID := "a-1"
	report, err := svc.Daily(context.Background(), &accountID, day.Add(12*time.Hour))
	if err != nil {
		t.Fatalf("Daily error: %v", err)
	}
	if !report.Single {
		t.Fatal("want single scope")
	}
	if len(report.Groups) != 1 || len(report.Groups[0].Events) != 1 {
		t.Fatalf("unexpected report: %+v", report.Groups)
	}
}

func TestMonthly_EmptyIsValidNotAnError(t *testing.T) {
	accountsRepo, _, _ := reportFixture()
	svc := NewReportService(nil, &fakeRepoManager{accounts: accountsRepo, attendance: &fakeAttendanceRepo{}}, testConfig())

	accountID := "a-1"
	report, err := svc.Monthly(context.Background(), &accountID, 1403, 5)
	if err != nil {
		t.Fatalf("Monthly error: %v", err)
	}
	if !report.Empty() {
		t.Fatalf("want empty report, got %+v", report.Groups)
	}
}

func TestMonthly_UnknownAccountIsNotFound(t *testing.T) {
	svc := NewReportService(nil, &fakeRepoManager{accounts: &fakeAccountsRepo{}, attendance: &fakeAttendanceRepo{}}, testConfig())

	accountID := "ghost"
	_, err := svc.Monthly(context.Background(), &accountID, 1403, 5)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestMonthly_InvalidMonth(t *testing.T) {
	svc := NewReportService(nil, &fakeRepoManager{}, testConfig())

	_, err := svc.Monthly(context.Background(), nil, 1403, 13)
	if !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("want common.ErrorValidation, got %v", err)
	}
}

func TestMonthly_PeriodBoundsPassedToLedger(t *testing.T) {
	accountsRepo, attendanceRepo, _ := reportFixture()
	svc := NewReportService(nil, &fakeRepoManager{accounts: accountsRepo, attendance: attendanceRepo}, testConfig())

	if _, err := svc.Monthly(context.Background(), nil, 1403, 5); err != nil {
		t.Fatalf("Monthly error: %v", err)
	}
}

func TestTable_AllScopeIncludesAccountColumns(t *testing.T) {
	accountsRepo, attendanceRepo, day := reportFixture()
	svc := NewReportService(nil, &fakeRepoManager{accounts: accountsRepo, attendance: attendanceRepo}, testConfig())

	report, err := svc.Daily(context.Background(), nil, day.Add(12*time.Hour))
	if err != nil {
		t.Fatalf("Daily error: %v", err)
	}

	table := svc.Table(report)
	if len(table.Header) != 5 {
		t.Fatalf("want 5 columns, got %v", table.Header)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("want one row per event, got %d", len(table.Rows))
	}
	if table.Rows[0][0] != "U1" || table.Rows[0][1] != "0001" {
		t.Fatalf("unexpected first row: %v", table.Rows[0])
	}
	if table.Rows[0][2] != "1403/05/01" || table.Rows[0][3] != "08:00:00" {
		t.Fatalf("unexpected date cells: %v", table.Rows[0])
	}
}

func TestTable_SingleScopeOmitsAccountColumns(t *testing.T) {
	accountsRepo, attendanceRepo, day := reportFixture()
	svc := NewReportService(nil, &fakeRepoManager{accounts: accountsRepo, attendance: attendanceRepo}, testConfig())

	accountID := "a-1"
	report, err := svc.Daily(context.Background(), &accountID, day.Add(12*time.Hour))
	if err != nil {
		t.Fatalf("Daily error: %v", err)
	}

	table := svc.Table(report)
	if len(table.Header) != 3 {
		t.Fatalf("want 3 columns, got %v", table.Header)
	}
	if len(table.Rows) != 1 || len(table.Rows[0]) != 3 {
		t.Fatalf("unexpected rows: %v", table.Rows)
	}
}
