package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/videotube_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestUserMappingDoesNotShareRefreshToken(t *testing.T) {
	token := "refresh"
	now := time.Now().UTC()
	d := domain.User{
		UserID:       "u1",
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hash",
		RefreshToken: &token,
		AuditFields:  domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	m := ToModelUser(d)
	*m.RefreshToken = "changed"

	assert.Equal(t, "refresh", *d.RefreshToken)
	assert.Equal(t, now, m.CreatedAt)

	back := ToDomainUser(m)
	assert.Equal(t, "changed", *back.RefreshToken)
	assert.Equal(t, d.Username, back.Username)
	assert.Equal(t, d.PasswordHash, back.PasswordHash)
}

func TestUserMappingLoggedOut(t *testing.T) {
	back := ToDomainUser(ToModelUser(domain.User{UserID: "u1"}))
	assert.Nil(t, back.RefreshToken)
}
