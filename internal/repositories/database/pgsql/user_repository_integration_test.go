//go:build integration

package pgsql_test

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/SscSPs/videotube_backend/internal/apperrors"
	"github.com/SscSPs/videotube_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/videotube_backend/internal/core/ports/repositories"
	"github.com/SscSPs/videotube_backend/internal/repositories/database/pgsql"
	"github.com/SscSPs/videotube_backend/pkg/database"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// Run with: PGSQL_TEST_URL=postgres://... go test -tags integration ./internal/repositories/database/pgsql/
type PgxUserRepositoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	cleanup func()
	repo    portsrepo.UserRepositoryFacade
}

func TestPgxUserRepositoryTestSuite(t *testing.T) {
	if os.Getenv("PGSQL_TEST_URL") == "" {
		t.Skip("PGSQL_TEST_URL not set")
	}
	suite.Run(t, new(PgxUserRepositoryTestSuite))
}

func (s *PgxUserRepositoryTestSuite) SetupSuite() {
	s.ctx = context.Background()
	url := os.Getenv("PGSQL_TEST_URL")

	s.Require().NoError(database.RunMigrations(url, "file://../../../../migrations", slog.Default()))
	pool, err := database.NewPgxPool(s.ctx, url)
	s.Require().NoError(err)
	s.cleanup = func() { database.ClosePgxPool(pool) }
	s.repo = pgsql.NewRepositoryProvider(pool).UserRepo
}

func (s *PgxUserRepositoryTestSuite) TearDownSuite() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func newStoredUser() domain.User {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return domain.User{
		UserID:       uuid.NewString(),
		Username:     gofakeit.Username() + uuid.NewString()[:8],
		Email:        uuid.NewString()[:8] + gofakeit.Email(),
		FullName:     gofakeit.Name(),
		Avatar:       gofakeit.URL(),
		PasswordHash: "hash",
		AuditFields:  domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
}

func (s *PgxUserRepositoryTestSuite) TestSaveFindAndDuplicates() {
	user := newStoredUser()
	s.Require().NoError(s.repo.SaveUser(s.ctx, user))

	for _, key := range []string{user.Username, user.Email} {
		found, err := s.repo.FindUserByUsernameOrEmail(s.ctx, key)
		s.Require().NoError(err)
		s.Equal(user.UserID, found.UserID)
		s.Nil(found.RefreshToken)
	}

	clash := newStoredUser()
	clash.Email = user.Email
	s.ErrorIs(s.repo.SaveUser(s.ctx, clash), apperrors.ErrDuplicate)

	_, err := s.repo.FindUserByID(s.ctx, uuid.NewString())
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *PgxUserRepositoryTestSuite) TestUpdates() {
	user := newStoredUser()
	other := newStoredUser()
	s.Require().NoError(s.repo.SaveUser(s.ctx, user))
	s.Require().NoError(s.repo.SaveUser(s.ctx, other))
	now := time.Now().UTC()

	s.Require().NoError(s.repo.UpdateAvatar(s.ctx, user.UserID, "https://cdn.example.com/a.png", now))
	s.Require().NoError(s.repo.UpdatePasswordHash(s.ctx, user.UserID, "new-hash", now))
	s.ErrorIs(s.repo.UpdateUserDetails(s.ctx, user.UserID, "x", other.Email, now), apperrors.ErrDuplicate)

	stored, err := s.repo.FindUserByID(s.ctx, user.UserID)
	s.Require().NoError(err)
	s.Equal("https://cdn.example.com/a.png", stored.Avatar)
	s.Equal("new-hash", stored.PasswordHash)
	s.Equal(user.Email, stored.Email)

	s.ErrorIs(s.repo.UpdateAvatar(s.ctx, uuid.NewString(), "https://cdn.example.com/a.png", now), apperrors.ErrNotFound)
}

func (s *PgxUserRepositoryTestSuite) TestRefreshTokenLifecycle() {
	user := newStoredUser()
	s.Require().NoError(s.repo.SaveUser(s.ctx, user))

	s.Require().NoError(s.repo.SetRefreshToken(s.ctx, user.UserID, "token-1"))
	stored, err := s.repo.FindUserByID(s.ctx, user.UserID)
	s.Require().NoError(err)
	s.True(stored.HasRefreshToken("token-1"))

	s.Require().NoError(s.repo.ClearRefreshToken(s.ctx, user.UserID))
	s.Require().NoError(s.repo.ClearRefreshToken(s.ctx, user.UserID))
	stored, err = s.repo.FindUserByID(s.ctx, user.UserID)
	s.Require().NoError(err)
	s.Nil(stored.RefreshToken)
}
