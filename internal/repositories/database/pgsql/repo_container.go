package pgsql

import (
	"context"
	"net/http"

	"github.com/SscSPs/workly_crm/internal/apperrors"
	portsrepo "github.com/SscSPs/workly_crm/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func newRepositoryProvider(db dbtx) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CompanyRepo:  newPgxCompanyRepository(db),
		EmployeeRepo: newPgxEmployeeRepository(db),
		TaskRepo:     newPgxTaskRepository(db),
		MeetingRepo:  newPgxMeetingRepository(db),
	}
}

// NewStore wires the Postgres repositories and a transaction-backed unit of work.
func NewStore(dbPool *pgxpool.Pool) portsrepo.Store {
	return portsrepo.Store{
		RepositoryProvider: newRepositoryProvider(dbPool),
		UnitOfWork:         &pgxUnitOfWork{pool: dbPool},
	}
}

type pgxUnitOfWork struct {
	pool *pgxpool.Pool
}

var _ portsrepo.UnitOfWork = (*pgxUnitOfWork)(nil)

func (u *pgxUnitOfWork) RunInTx(ctx context.Context, fn func(ctx context.Context, tx portsrepo.RepositoryProvider) error) error {
	tx, err := u.pool.Begin(ctx)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to begin transaction", err)
	}
	// Rollback after a successful Commit is a no-op returning pgx.ErrTxClosed.
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(ctx, newRepositoryProvider(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to commit transaction", err)
	}
	return nil
}

var _ dbtx = (pgx.Tx)(nil)
var _ dbtx = (*pgxpool.Pool)(nil)
