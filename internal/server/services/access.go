package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mohammaddehghani/telegramrepbot/internal/server/config"
	"github.com/mohammaddehghani/telegramrepbot/internal/server/repositories/repomanager"
)

// AccessService classifies callers as ordinary or privileged. The
// bootstrap super-admin id from config is privileged unconditionally;
// stored grants are additive on top of it.
type AccessService struct {
	db           *sql.DB
	repos        repomanager.RepositoryManager
	superAdminID int64
}

// NewAccessService constructs an AccessService.
func NewAccessService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AccessService {
	return &AccessService{db: db, repos: m, superAdminID: cfg.SuperAdminID}
}

// IsPrivileged must be consulted before every privileged operation.
func (s *AccessService) IsPrivileged(ctx context.Context, externalID int64) (bool, error) {
	if externalID == s.superAdminID {
		return true, nil
	}
	ok, err := s.repos.Admins(s.db).Exists(ctx, externalID)
	if err != nil {
		return false, fmt.Errorf("error checking grant: %w", err)
	}
	return ok, nil
}

// Grant marks an external id as privileged. Idempotent.
func (s *AccessService) Grant(ctx context.Context, externalID int64) error {
	return s.repos.Admins(s.db).Grant(ctx, externalID)
}

// Revoke removes a stored grant. The bootstrap id stays privileged
// regardless.
func (s *AccessService) Revoke(ctx context.Context, externalID int64) error {
	return s.repos.Admins(s.db).Revoke(ctx, externalID)
}
