package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/videotube_backend/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsernameOrEmail retrieves the user whose username or email equals loginKey
	// exactly (case-sensitive).
	FindUserByUsernameOrEmail(ctx context.Context, loginKey string) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user. Returns apperrors.ErrDuplicate when the username or
	// email is taken.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUserDetails replaces the profile fields of an existing user.
	UpdateUserDetails(ctx context.Context, userID string, fullName string, email string, updatedAt time.Time) error

	// UpdateAvatar replaces the avatar URL.
	UpdateAvatar(ctx context.Context, userID string, avatarURL string, updatedAt time.Time) error

	// UpdatePasswordHash replaces the stored password hash.
	UpdatePasswordHash(ctx context.Context, userID string, passwordHash string, updatedAt time.Time) error
}

// UserSessionStore defines operations on the single refresh token stored per user
type UserSessionStore interface {
	// SetRefreshToken overwrites the user's current refresh token.
	SetRefreshToken(ctx context.Context, userID string, refreshToken string) error

	// ClearRefreshToken removes the user's refresh token. Clearing an already empty
	// token succeeds.
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
// This is a facade for clients that need access to all operations
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	UserSessionStore
}
