package pgsql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/videotube_backend/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTranslateError(t *testing.T) {
	assert.NoError(t, translateError("users.find", nil))

	err := translateError("users.find", fmt.Errorf("scan: %w", pgx.ErrNoRows))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = translateError("users.insert", &pgconn.PgError{Code: uniqueViolation, ConstraintName: "users_email_key"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	assert.Contains(t, err.Error(), "users_email_key")

	other := errors.New("connection reset")
	err = translateError("users.update", other)
	assert.ErrorIs(t, err, other)
	assert.Equal(t, apperrors.KindInternal, apperrors.KindOf(err))
}
