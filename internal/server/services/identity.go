// Package services contains the server-side business logic: the
// identity registry, the access control gate, the attendance ledger,
// report aggregation, and the full-export projection.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/mohammaddehghani/telegramrepbot/internal/common"
	"github.com/mohammaddehghani/telegramrepbot/internal/server/config"
	"github.com/mohammaddehghani/telegramrepbot/internal/server/models"
	"github.com/mohammaddehghani/telegramrepbot/internal/server/repositories/repomanager"
)

// IdentityService maps external callers to accounts: first-contact
// provisioning, display-name overrides, target resolution, listing.
type IdentityService struct {
	db        *sql.DB
	repos     repomanager.RepositoryManager
	codeWidth int
}

// NewIdentityService constructs an IdentityService.
func NewIdentityService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *IdentityService {
	return &IdentityService{db: db, repos: m, codeWidth: cfg.EmployeeCodeWidth}
}

// RegisterOrGet provisions the account on first contact and returns the
// stored row either way. Idempotent under concurrency: the upsert is a
// single statement keyed on external_id.
func (s *IdentityService) RegisterOrGet(ctx context.Context, externalID int64, fullName, handle string) (*models.Account, error) {
	account := &models.Account{
		ID:          uuid.NewString(),
		ExternalID:  externalID,
		FullName:    strings.TrimSpace(fullName),
		Handle:      handle,
		DisplayName: strings.TrimSpace(fullName),
	}

	acc, err := s.repos.Accounts(s.db).Upsert(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("error registering account: %w", err)
	}
	return acc, nil
}

// SetDisplayName overwrites the display name. Empty names are a
// validation error; privileged-access enforcement is the caller's job.
func (s *IdentityService) SetDisplayName(ctx context.Context, accountID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: empty display name", common.ErrorValidation)
	}
	return s.repos.Accounts(s.db).UpdateDisplayName(ctx, accountID, name)
}

// ResolveDisplay returns the name shown for the account:
// display_name > full_name > employee_code > external_id.
func (s *IdentityService) ResolveDisplay(ctx context.Context, accountID string) (string, error) {
	acc, err := s.repos.Accounts(s.db).GetByID(ctx, accountID)
	if err != nil {
		return "", err
	}
	return acc.Label(s.codeWidth), nil
}

// Label renders the account's display precedence without a lookup.
func (s *IdentityService) Label(acc *models.Account) string {
	return acc.Label(s.codeWidth)
}

// ListAccounts returns all accounts ordered by employee code.
func (s *IdentityService) ListAccounts(ctx context.Context) ([]*models.Account, error) {
	return s.repos.Accounts(s.db).List(ctx)
}

// ResolveTarget finds an account from admin-typed input: an employee
// code or an external id. Non-numeric input is a validation error,
// an unknown number is not found.
func (s *IdentityService) ResolveTarget(ctx context.Context, text string) (*models.Account, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: target %q is not numeric", common.ErrorValidation, text)
	}

	repo := s.repos.Accounts(s.db)
	acc, err := repo.GetByEmployeeCode(ctx, n)
	if err == nil {
		return acc, nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, err
	}
	return repo.GetByExternalID(ctx, n)
}
