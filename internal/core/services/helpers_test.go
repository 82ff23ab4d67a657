package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/videotube_backend/internal/core/domain"
	"github.com/SscSPs/videotube_backend/internal/platform/config"
	"github.com/SscSPs/videotube_backend/internal/repositories/database/memory"
	"github.com/SscSPs/videotube_backend/internal/utils"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		StoreBackend:               config.StoreBackendMemory,
		AccessTokenSecret:          "test-access-secret",
		AccessTokenExpiryDuration:  15 * time.Minute,
		RefreshTokenSecret:         "test-refresh-secret",
		RefreshTokenExpiryDuration: 240 * time.Hour,
		JWTIssuer:                  "videotube-test",
		BcryptCost:                 bcrypt.MinCost,
	}
}

// seedUser stores a user with the given password and returns it.
func seedUser(t *testing.T, repo *memory.UserRepository, password string) domain.User {
	t.Helper()
	hash, err := utils.HashPasswordWithCost(password, bcrypt.MinCost)
	require.NoError(t, err)

	now := time.Now().UTC()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     gofakeit.Username() + uuid.NewString()[:6],
		Email:        uuid.NewString()[:6] + gofakeit.Email(),
		FullName:     gofakeit.Name(),
		Avatar:       gofakeit.URL(),
		PasswordHash: hash,
		AuditFields:  domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	require.NoError(t, repo.SaveUser(context.Background(), user))
	return user
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsernameOrEmail(ctx context.Context, loginKey string) (*domain.User, error) {
	args := m.Called(ctx, loginKey)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUserDetails(ctx context.Context, userID string, fullName string, email string, updatedAt time.Time) error {
	args := m.Called(ctx, userID, fullName, email, updatedAt)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePasswordHash(ctx context.Context, userID string, passwordHash string, updatedAt time.Time) error {
	args := m.Called(ctx, userID, passwordHash, updatedAt)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateAvatar(ctx context.Context, userID string, avatarURL string, updatedAt time.Time) error {
	args := m.Called(ctx, userID, avatarURL, updatedAt)
	return args.Error(0)
}

func (m *MockUserRepository) SetRefreshToken(ctx context.Context, userID string, refreshToken string) error {
	args := m.Called(ctx, userID, refreshToken)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// tamperSignature changes the first character of the token's signature segment.
func tamperSignature(token string) string {
	parts := strings.Split(token, ".")
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	parts[2] = string(sig)
	return strings.Join(parts, ".")
}
