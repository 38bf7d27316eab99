package pgsql

import (
	"errors"
	"testing"

	"github.com/SscSPs/workly_crm/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapWriteErrorUniqueViolation(t *testing.T) {
	err := mapWriteError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "employees_tenant_email_idx"}, "employee")

	assert.True(t, errors.Is(err, apperrors.ErrConflict))
	assert.Equal(t, "employee with this email already exists in the company", apperrors.PublicMessage(err))
}

func TestMapWriteErrorUnknownConstraint(t *testing.T) {
	err := mapWriteError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "something_else"}, "task")

	assert.True(t, errors.Is(err, apperrors.ErrConflict))
	assert.Equal(t, "task already exists", apperrors.PublicMessage(err))
}

func TestMapWriteErrorOther(t *testing.T) {
	err := mapWriteError(errors.New("connection reset"), "meeting")

	assert.True(t, errors.Is(err, apperrors.ErrInternal))
	assert.Equal(t, "internal server error", apperrors.PublicMessage(err))
}

func TestNotFoundOr(t *testing.T) {
	assert.True(t, errors.Is(notFoundOr(pgx.ErrNoRows, "task"), apperrors.ErrNotFound))
	assert.True(t, errors.Is(notFoundOr(errors.New("boom"), "task"), apperrors.ErrInternal))
}

func TestRequireAffected(t *testing.T) {
	assert.True(t, errors.Is(requireAffected(pgconn.NewCommandTag("DELETE 0"), "task"), apperrors.ErrNotFound))
	assert.NoError(t, requireAffected(pgconn.NewCommandTag("DELETE 1"), "task"))
}

func TestEmbeddedMigrationsPresent(t *testing.T) {
	entries, err := migrationFiles.ReadDir("migrations")
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
}
