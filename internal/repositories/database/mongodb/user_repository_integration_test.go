//go:build integration

package mongodb_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/SscSPs/videotube_backend/internal/apperrors"
	"github.com/SscSPs/videotube_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/videotube_backend/internal/core/ports/repositories"
	"github.com/SscSPs/videotube_backend/internal/repositories/database/mongodb"
	"github.com/SscSPs/videotube_backend/pkg/database"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// Run with: MONGODB_TEST_URI=mongodb://... go test -tags integration ./internal/repositories/database/mongodb/
type MongoUserRepositoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	cleanup func()
	repo    portsrepo.UserRepositoryFacade
}

func TestMongoUserRepositoryTestSuite(t *testing.T) {
	if os.Getenv("MONGODB_TEST_URI") == "" {
		t.Skip("MONGODB_TEST_URI not set")
	}
	suite.Run(t, new(MongoUserRepositoryTestSuite))
}

func (s *MongoUserRepositoryTestSuite) SetupSuite() {
	s.ctx = context.Background()

	client, err := database.NewMongoClient(s.ctx, os.Getenv("MONGODB_TEST_URI"))
	s.Require().NoError(err)
	db := client.Database("videotube_test_" + uuid.NewString()[:8])
	s.cleanup = func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		database.CloseMongoClient(ctx, client)
	}

	providers, err := mongodb.NewRepositoryProvider(s.ctx, db)
	s.Require().NoError(err)
	s.repo = providers.UserRepo
}

func (s *MongoUserRepositoryTestSuite) TearDownSuite() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func newStoredUser() domain.User {
	now := time.Now().UTC().Truncate(time.Millisecond)
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

func (s *MongoUserRepositoryTestSuite) TestSaveFindAndDuplicates() {
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

func (s *MongoUserRepositoryTestSuite) TestUpdates() {
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

func (s *MongoUserRepositoryTestSuite) TestRefreshTokenLifecycle() {
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
