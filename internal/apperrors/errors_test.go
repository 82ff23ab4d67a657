package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/videotube_backend/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want apperrors.Kind
	}{
		{"app error keeps kind", apperrors.NewConflict("taken"), apperrors.KindConflict},
		{"wrapped app error", fmt.Errorf("outer: %w", apperrors.NewBadRequest("blank")), apperrors.KindBadRequest},
		{"not found sentinel", fmt.Errorf("repo: %w", apperrors.ErrNotFound), apperrors.KindNotFound},
		{"duplicate sentinel", apperrors.ErrDuplicate, apperrors.KindConflict},
		{"malformed token", apperrors.ErrTokenMalformed, apperrors.KindUnauthorized},
		{"invalid signature", apperrors.ErrTokenInvalidSignature, apperrors.KindUnauthorized},
		{"expired token", apperrors.ErrTokenExpired, apperrors.KindUnauthorized},
		{"reused refresh token", apperrors.ErrRefreshTokenReused, apperrors.KindUnauthorized},
		{"unknown error", errors.New("boom"), apperrors.KindInternal},
		{"nil", nil, apperrors.KindInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperrors.KindOf(tt.err))
		})
	}
}

func TestKindHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, apperrors.KindBadRequest.HTTPStatus())
	assert.Equal(t, http.StatusUnauthorized, apperrors.KindUnauthorized.HTTPStatus())
	assert.Equal(t, http.StatusNotFound, apperrors.KindNotFound.HTTPStatus())
	assert.Equal(t, http.StatusConflict, apperrors.KindConflict.HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, apperrors.KindInternal.HTTPStatus())
}

func TestAppErrorUnwrap(t *testing.T) {
	err := apperrors.NewUnauthorized("invalid refresh token", apperrors.ErrTokenExpired)

	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
	assert.Equal(t, "invalid refresh token: token has expired", err.Error())
	assert.Equal(t, "invalid refresh token", apperrors.MessageOf(err))
}

func TestMessageOfHidesInternalCause(t *testing.T) {
	err := fmt.Errorf("failed to query users: %w", errors.New("connection refused"))

	assert.Equal(t, "Something went wrong", apperrors.MessageOf(err))
}
