package services

import (
	"context"
	"time"

	"github.com/SscSPs/videotube_backend/internal/core/domain"
)

// TokenSvcFacade defines the interface for token issuance and verification.
type TokenSvcFacade interface {
	// IssueAccessToken creates a short-lived signed access token for the user.
	IssueAccessToken(ctx context.Context, userID string) (string, time.Time, error)
	// IssueRefreshToken creates a long-lived signed refresh token for the user.
	IssueRefreshToken(ctx context.Context, userID string) (string, time.Time, error)
	// IssueTokenPair creates both tokens at once.
	IssueTokenPair(ctx context.Context, userID string) (*domain.TokenPair, error)
	// Verify checks signature, expiry and class and returns the user ID the token is bound to.
	Verify(ctx context.Context, token string, class domain.TokenClass) (string, error)
}

// Authenticator resolves an access token to the identity it belongs to.
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (*domain.PublicUser, error)
}

// SessionSvcFacade defines login, logout, refresh-token rotation and password changes.
type SessionSvcFacade interface {
	Authenticator

	// Login verifies credentials and starts a new session, replacing any previous one.
	Login(ctx context.Context, loginKey string, password string) (*domain.LoginResult, error)
	// Logout clears the user's refresh token. Idempotent.
	Logout(ctx context.Context, userID string) error
	// RefreshSession exchanges the current refresh token for a new pair.
	RefreshSession(ctx context.Context, refreshToken string) (*domain.TokenPair, error)
	// ChangePassword replaces the password after verifying the old one.
	ChangePassword(ctx context.Context, userID string, oldPassword string, newPassword string) error
}
