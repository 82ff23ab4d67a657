package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/videotube_backend/internal/apperrors"
	"github.com/SscSPs/videotube_backend/internal/core/domain"
	"github.com/SscSPs/videotube_backend/internal/repositories/database/memory"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUser() domain.User {
	now := time.Now().UTC()
	return domain.User{
		UserID:       uuid.NewString(),
		Username:     gofakeit.Username() + uuid.NewString()[:8],
		Email:        uuid.NewString()[:8] + gofakeit.Email(),
		FullName:     gofakeit.Name(),
		PasswordHash: "hash",
		AuditFields:  domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
}

func TestSaveAndFind(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()
	user := newUser()
	require.NoError(t, repo.SaveUser(ctx, user))

	byID, err := repo.FindUserByID(ctx, user.UserID)
	require.NoError(t, err)
	assert.Equal(t, user.Username, byID.Username)

	byUsername, err := repo.FindUserByUsernameOrEmail(ctx, user.Username)
	require.NoError(t, err)
	assert.Equal(t, user.UserID, byUsername.UserID)

	byEmail, err := repo.FindUserByUsernameOrEmail(ctx, user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.UserID, byEmail.UserID)
}

func TestFindIsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()
	user := newUser()
	user.Username = "alice"
	require.NoError(t, repo.SaveUser(ctx, user))

	_, err := repo.FindUserByUsernameOrEmail(ctx, "Alice")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestFindMissing(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()

	_, err := repo.FindUserByID(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = repo.FindUserByUsernameOrEmail(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSaveRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()
	user := newUser()
	require.NoError(t, repo.SaveUser(ctx, user))

	sameUsername := newUser()
	sameUsername.Username = user.Username
	assert.ErrorIs(t, repo.SaveUser(ctx, sameUsername), apperrors.ErrDuplicate)

	sameEmail := newUser()
	sameEmail.Email = user.Email
	assert.ErrorIs(t, repo.SaveUser(ctx, sameEmail), apperrors.ErrDuplicate)
}

func TestRefreshTokenLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()
	user := newUser()
	require.NoError(t, repo.SaveUser(ctx, user))

	require.NoError(t, repo.SetRefreshToken(ctx, user.UserID, "first"))
	require.NoError(t, repo.SetRefreshToken(ctx, user.UserID, "second"))

	stored, err := repo.FindUserByID(ctx, user.UserID)
	require.NoError(t, err)
	assert.True(t, stored.HasRefreshToken("second"))
	assert.False(t, stored.HasRefreshToken("first"))

	require.NoError(t, repo.ClearRefreshToken(ctx, user.UserID))
	require.NoError(t, repo.ClearRefreshToken(ctx, user.UserID), "clearing twice succeeds")

	stored, err = repo.FindUserByID(ctx, user.UserID)
	require.NoError(t, err)
	assert.Nil(t, stored.RefreshToken)

	assert.ErrorIs(t, repo.SetRefreshToken(ctx, "missing", "x"), apperrors.ErrNotFound)
}

func TestReturnedUsersAreCopies(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()
	user := newUser()
	require.NoError(t, repo.SaveUser(ctx, user))
	require.NoError(t, repo.SetRefreshToken(ctx, user.UserID, "token"))

	found, err := repo.FindUserByID(ctx, user.UserID)
	require.NoError(t, err)
	found.FullName = "changed"
	*found.RefreshToken = "changed"

	again, err := repo.FindUserByID(ctx, user.UserID)
	require.NoError(t, err)
	assert.Equal(t, user.FullName, again.FullName)
	assert.True(t, again.HasRefreshToken("token"))
}

func TestUpdateUserDetails(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()
	alice, bob := newUser(), newUser()
	require.NoError(t, repo.SaveUser(ctx, alice))
	require.NoError(t, repo.SaveUser(ctx, bob))

	err := repo.UpdateUserDetails(ctx, alice.UserID, "Alice", bob.Email, time.Now())
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	newEmail := "new-" + alice.Email
	require.NoError(t, repo.UpdateUserDetails(ctx, alice.UserID, "Alice", newEmail, time.Now()))

	_, err = repo.FindUserByUsernameOrEmail(ctx, alice.Email)
	assert.ErrorIs(t, err, apperrors.ErrNotFound, "old email no longer resolves")
	found, err := repo.FindUserByUsernameOrEmail(ctx, newEmail)
	require.NoError(t, err)
	assert.Equal(t, "Alice", found.FullName)
}

func TestUpdateAvatar(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()
	user := newUser()
	require.NoError(t, repo.SaveUser(ctx, user))

	later := user.LastUpdatedAt.Add(time.Minute)
	require.NoError(t, repo.UpdateAvatar(ctx, user.UserID, "https://cdn.example.com/a.png", later))

	stored, err := repo.FindUserByID(ctx, user.UserID)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/a.png", stored.Avatar)
	assert.Equal(t, later, stored.LastUpdatedAt)

	err = repo.UpdateAvatar(ctx, "missing", "https://cdn.example.com/a.png", later)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdatePasswordHash(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()
	user := newUser()
	require.NoError(t, repo.SaveUser(ctx, user))

	require.NoError(t, repo.UpdatePasswordHash(ctx, user.UserID, "new-hash", time.Now()))
	found, err := repo.FindUserByID(ctx, user.UserID)
	require.NoError(t, err)
	assert.Equal(t, "new-hash", found.PasswordHash)

	assert.ErrorIs(t, repo.UpdatePasswordHash(ctx, "missing", "x", time.Now()), apperrors.ErrNotFound)
}

func TestConcurrentSetRefreshTokenLastWriterWins(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()
	user := newUser()
	require.NoError(t, repo.SaveUser(ctx, user))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(token string) {
			defer wg.Done()
			_ = repo.SetRefreshToken(ctx, user.UserID, token)
		}(uuid.NewString())
	}
	wg.Wait()

	stored, err := repo.FindUserByID(ctx, user.UserID)
	require.NoError(t, err)
	require.NotNil(t, stored.RefreshToken)
	assert.NotEmpty(t, *stored.RefreshToken)
}
