package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/videotube_backend/internal/apperrors"
	"github.com/SscSPs/videotube_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/videotube_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/videotube_backend/internal/core/ports/services"
	"github.com/SscSPs/videotube_backend/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// sessionService implements login, logout, refresh-token rotation and password changes.
// Each user holds at most one valid refresh token: every login or refresh overwrites it,
// so presenting a superseded token is treated as reuse.
type sessionService struct {
	BaseService
	userRepo   portsrepo.UserRepositoryFacade
	tokens     portssvc.TokenSvcFacade
	bcryptCost int
}

// SessionServiceOption is a function that configures a sessionService
type SessionServiceOption func(*sessionService)

// WithSessionBcryptCost sets the bcrypt cost used when a password is changed.
func WithSessionBcryptCost(cost int) SessionServiceOption {
	return func(s *sessionService) {
		s.bcryptCost = cost
	}
}

// NewSessionService creates a new session service with the given dependencies.
func NewSessionService(userRepo portsrepo.UserRepositoryFacade, tokens portssvc.TokenSvcFacade, opts ...SessionServiceOption) portssvc.SessionSvcFacade {
	s := &sessionService{
		userRepo: userRepo,
		tokens:   tokens,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *sessionService) Login(ctx context.Context, loginKey string, password string) (*domain.LoginResult, error) {
	if strings.TrimSpace(loginKey) == "" {
		return nil, apperrors.NewBadRequest("username or email is required")
	}
	if password == "" {
		return nil, apperrors.NewBadRequest("password is required")
	}

	user, err := s.userRepo.FindUserByUsernameOrEmail(ctx, loginKey)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFound("User does not exist")
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, apperrors.NewInternal("failed to look up user", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogWarn(ctx, "Login rejected: invalid credentials", slog.String("user_id", user.UserID))
		return nil, apperrors.NewUnauthorized("Invalid user credentials", nil)
	}

	pair, err := s.startSession(ctx, user.UserID)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "User logged in", slog.String("user_id", user.UserID))
	return &domain.LoginResult{User: user.Public(), Tokens: *pair}, nil
}

func (s *sessionService) Logout(ctx context.Context, userID string) error {
	if err := s.userRepo.ClearRefreshToken(ctx, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Nothing left to revoke.
			return nil
		}
		s.LogError(ctx, err, "Failed to clear refresh token", slog.String("user_id", userID))
		return apperrors.NewInternal("failed to log out", err)
	}
	s.LogInfo(ctx, "User logged out", slog.String("user_id", userID))
	return nil
}

func (s *sessionService) RefreshSession(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, apperrors.NewUnauthorized("unauthorized request", nil)
	}

	userID, err := s.tokens.Verify(ctx, refreshToken, domain.TokenClassRefresh)
	if err != nil {
		return nil, apperrors.NewUnauthorized("invalid refresh token", err)
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthorized("invalid refresh token", err)
		}
		s.LogError(ctx, err, "Failed to look up user for refresh", slog.String("user_id", userID))
		return nil, apperrors.NewInternal("failed to look up user", err)
	}

	if !user.HasRefreshToken(refreshToken) {
		s.LogWarn(ctx, "Refresh token reuse detected", slog.String("user_id", userID))
		return nil, apperrors.NewUnauthorized("refresh token is expired or used", apperrors.ErrRefreshTokenReused)
	}

	pair, err := s.startSession(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Session refreshed", slog.String("user_id", userID))
	return pair, nil
}

func (s *sessionService) ChangePassword(ctx context.Context, userID string, oldPassword string, newPassword string) error {
	if strings.TrimSpace(newPassword) == "" {
		return apperrors.NewBadRequest("new password is required")
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFound("User does not exist")
		}
		s.LogError(ctx, err, "Failed to look up user for password change", slog.String("user_id", userID))
		return apperrors.NewInternal("failed to look up user", err)
	}

	if !utils.CheckPasswordHash(oldPassword, user.PasswordHash) {
		s.LogWarn(ctx, "Password change rejected: invalid old password", slog.String("user_id", userID))
		return apperrors.NewBadRequest("Invalid old password")
	}

	hash, err := utils.HashPasswordWithCost(newPassword, s.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return apperrors.NewBadRequest("password must be at most 72 bytes")
		}
		s.LogError(ctx, err, "Failed to hash new password", slog.String("user_id", userID))
		return apperrors.NewInternal("failed to hash password", err)
	}

	if err := s.userRepo.UpdatePasswordHash(ctx, userID, hash, time.Now().UTC()); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFound("User does not exist")
		}
		s.LogError(ctx, err, "Failed to store new password hash", slog.String("user_id", userID))
		return apperrors.NewInternal("failed to change password", err)
	}

	s.LogInfo(ctx, "Password changed", slog.String("user_id", userID))
	return nil
}

func (s *sessionService) Authenticate(ctx context.Context, accessToken string) (*domain.PublicUser, error) {
	userID, err := s.tokens.Verify(ctx, accessToken, domain.TokenClassAccess)
	if err != nil {
		return nil, apperrors.NewUnauthorized("Invalid access token", err)
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthorized("Invalid access token", err)
		}
		s.LogError(ctx, err, "Failed to look up user for access token", slog.String("user_id", userID))
		return nil, apperrors.NewInternal("failed to look up user", err)
	}

	public := user.Public()
	return &public, nil
}

// startSession issues a new pair and makes its refresh token the only valid one for userID.
func (s *sessionService) startSession(ctx context.Context, userID string) (*domain.TokenPair, error) {
	pair, err := s.tokens.IssueTokenPair(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to issue token pair", slog.String("user_id", userID))
		return nil, err
	}
	if err := s.userRepo.SetRefreshToken(ctx, userID, pair.RefreshToken); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthorized("invalid refresh token", err)
		}
		s.LogError(ctx, err, "Failed to store refresh token", slog.String("user_id", userID))
		return nil, apperrors.NewInternal("failed to store refresh token", err)
	}
	return pair, nil
}
