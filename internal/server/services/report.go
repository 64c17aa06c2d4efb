package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mohammaddehghani/telegramrepbot/internal/dbx"
	"github.com/mohammaddehghani/telegramrepbot/internal/jalalix"
	"github.com/mohammaddehghani/telegramrepbot/internal/server/config"
	"github.com/mohammaddehghani/telegramrepbot/internal/server/models"
	"github.com/mohammaddehghani/telegramrepbot/internal/server/repositories/repomanager"
)

// ReportService groups ledger events into daily and monthly views,
// single-account or organization-wide, and projects them into tables.
type ReportService struct {
	db        *sql.DB
	repos     repomanager.RepositoryManager
	codeWidth int
}

// NewReportService constructs a ReportService.
func NewReportService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *ReportService {
	return &ReportService{db: db, repos: m, codeWidth: cfg.EmployeeCodeWidth}
}

// Daily reports the local day containing ref. A nil accountID means
// organization-wide scope.
func (s *ReportService) Daily(ctx context.Context, accountID *string, ref time.Time) (*models.Report, error) {
	start, end := jalalix.DayBounds(ref)
	return s.build(ctx, s.db, accountID, &start, &end)
}

// Monthly reports the given Jalali month.
func (s *ReportService) Monthly(ctx context.Context, accountID *string, year, month int) (*models.Report, error) {
	start, end, err := jalalix.MonthBounds(year, month)
	if err != nil {
		return nil, err
	}
	return s.build(ctx, s.db, accountID, &start, &end)
}

// build assembles a report over [start, end): accounts ordered by
// employee code, events within an account ascending by occurred_at.
// An empty group list is a valid result; an unknown single-scope
// account is ErrorNotFound.
func (s *ReportService) build(ctx context.Context, db dbx.DBTX, accountID *string, start, end *time.Time) (*models.Report, error) {
	report := &models.Report{Single: accountID != nil}
	if start != nil {
		report.Start = *start
	}
	if end != nil {
		report.End = *end
	}

	if accountID != nil {
		acc, err := s.repos.Accounts(db).GetByID(ctx, *accountID)
		if err != nil {
			return nil, err
		}
		events, err := s.repos.Attendance(db).Select(ctx, accountID, start, end)
		if err != nil {
			return nil, fmt.Errorf("error querying ledger: %w", err)
		}
		if len(events) > 0 {
			report.Groups = append(report.Groups, models.ReportGroup{Account: acc, Events: events})
		}
		return report, nil
	}

	accounts, err := s.repos.Accounts(db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing accounts: %w", err)
	}
	events, err := s.repos.Attendance(db).Select(ctx, nil, start, end)
	if err != nil {
		return nil, fmt.Errorf("error querying ledger: %w", err)
	}

	byAccount := make(map[string][]*models.AttendanceEvent, len(accounts))
	for _, ev := range events {
		byAccount[ev.AccountID] = append(byAccount[ev.AccountID], ev)
	}

	// account order comes from the registry listing, not event arrival
	for _, acc := range accounts {
		if evs := byAccount[acc.ID]; len(evs) > 0 {
			report.Groups = append(report.Groups, models.ReportGroup{Account: acc, Events: evs})
		}
	}

	return report, nil
}

// Table projects the report into a header plus one row per event.
// Single-account scope omits the account columns.
func (s *ReportService) Table(report *models.Report) *models.Table {
	table := &models.Table{}
	if report.Single {
		table.Header = []string{"تاریخ", "ساعت", "نوع"}
	} else {
		table.Header = []string{"نام", "کد پرسنلی", "تاریخ", "ساعت", "نوع"}
	}

	for _, group := range report.Groups {
		for _, ev := range group.Events {
			date, clock := jalalix.Civil(ev.OccurredAt)
			row := []string{date, clock, ev.Kind.Label()}
			if !report.Single {
				row = append([]string{group.Account.Label(s.codeWidth), group.Account.Code(s.codeWidth)}, row...)
			}
			table.Rows = append(table.Rows, row)
		}
	}

	return table
}
