package admins

import "context"

type Repository interface {
	// Exists reports whether a grant row is present for the external id.
	Exists(ctx context.Context, externalID int64) (bool, error)

	// Grant adds a grant; granting an existing admin is a no-op.
	Grant(ctx context.Context, externalID int64) error

	// Revoke removes a grant; revoking a non-admin is a no-op.
	Revoke(ctx context.Context, externalID int64) error

	// List returns all granted external ids in grant order.
	List(ctx context.Context) ([]int64, error)
}
