package accounts

import (
	"context"

	"github.com/mohammaddehghani/telegramrepbot/internal/server/models"
)

type Repository interface {
	// Upsert registers the account on first contact or returns the
	// existing row. Must be a single atomic statement: concurrent first
	// contacts for one external id yield exactly one account.
	Upsert(ctx context.Context, account *models.Account) (*models.Account, error)

	GetByID(ctx context.Context, id string) (*models.Account, error)
	GetByExternalID(ctx context.Context, externalID int64) (*models.Account, error)
	GetByEmployeeCode(ctx context.Context, code int64) (*models.Account, error)

	// UpdateDisplayName overwrites the display name unconditionally.
	UpdateDisplayName(ctx context.Context, id string, name string) error

	// List returns all accounts ordered by employee code.
	List(ctx context.Context) ([]*models.Account, error)
}
