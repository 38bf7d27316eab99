package pgsql

import (
	"context"
	"errors"
	"net/http"

	"github.com/SscSPs/workly_crm/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// dbtx is the query surface shared by *pgxpool.Pool and pgx.Tx, so a
// repository can run either standalone or inside a unit of work.
type dbtx interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	DB dbtx
}

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// uniqueConstraintMessages maps unique index names to client-facing messages.
var uniqueConstraintMessages = map[string]string{
	"companies_tenant_code_key": "company code already exists",
	"companies_email_lower_idx": "company with this email already exists",
	"employees_tenant_email_idx": "employee with this email already exists in the company",
}

// mapWriteError turns driver errors from INSERT/UPDATE into application errors.
func mapWriteError(err error, what string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			if msg, ok := uniqueConstraintMessages[pgErr.ConstraintName]; ok {
				return apperrors.NewConflictError(msg)
			}
			return apperrors.NewConflictError(what + " already exists")
		case pgForeignKeyViolation:
			return apperrors.NewValidationFailedError(what + " references a missing record")
		}
	}
	return apperrors.NewAppError(http.StatusInternalServerError, "failed to save "+what, err)
}

// requireAffected reports NotFound when an UPDATE or DELETE matched no row.
func requireAffected(tag pgconn.CommandTag, what string) error {
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(what + " not found")
	}
	return nil
}

// notFoundOr maps pgx.ErrNoRows to NotFound and wraps everything else as internal.
func notFoundOr(err error, what string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFoundError(what + " not found")
	}
	return apperrors.NewAppError(http.StatusInternalServerError, "failed to query "+what, err)
}
