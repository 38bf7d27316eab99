package repositories

import (
	"context"
)

// UnitOfWork runs a group of writes atomically.
type UnitOfWork interface {
	// RunInTx calls fn with repositories bound to a single transaction.
	// The transaction commits when fn returns nil and rolls back otherwise.
	RunInTx(ctx context.Context, fn func(ctx context.Context, tx RepositoryProvider) error) error
}
