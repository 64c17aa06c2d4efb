package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mohammaddehghani/telegramrepbot/internal/dbx"
	"github.com/mohammaddehghani/telegramrepbot/internal/server/config"
	"github.com/mohammaddehghani/telegramrepbot/internal/server/export"
	"github.com/mohammaddehghani/telegramrepbot/internal/server/models"
	"github.com/mohammaddehghani/telegramrepbot/internal/server/repositories/repomanager"
)

// ExportService produces the full-export artifacts: a spreadsheet of
// the whole ledger and a text roster of accounts and grants.
type ExportService struct {
	db        *sql.DB
	repos     repomanager.RepositoryManager
	reports   *ReportService
	codeWidth int
}

// NewExportService constructs an ExportService.
func NewExportService(db *sql.DB, m repomanager.RepositoryManager, reports *ReportService, cfg *config.Config) *ExportService {
	return &ExportService{db: db, repos: m, reports: reports, codeWidth: cfg.EmployeeCodeWidth}
}

// FullExport reads accounts, grants and the unbounded ledger inside one
// read-only transaction so the two artifacts describe the same snapshot.
func (s *ExportService) FullExport(ctx context.Context) ([]models.Attachment, error) {
	var attachments []models.Attachment

	err := dbx.WithTx(ctx, s.db, &sql.TxOptions{ReadOnly: true}, func(ctx context.Context, tx dbx.DBTX) error {
		report, err := s.reports.build(ctx, tx, nil, nil, nil)
		if err != nil {
			return err
		}
		workbook, err := export.Workbook(s.reports.Table(report))
		if err != nil {
			return fmt.Errorf("error building workbook: %w", err)
		}

		accounts, err := s.repos.Accounts(tx).List(ctx)
		if err != nil {
			return err
		}
		grants, err := s.repos.Admins(tx).List(ctx)
		if err != nil {
			return err
		}

		attachments = []models.Attachment{
			{Name: "all_attendance.xlsx", Content: workbook},
			{Name: "users_admins.txt", Content: export.Roster(accounts, grants, s.codeWidth)},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return attachments, nil
}
