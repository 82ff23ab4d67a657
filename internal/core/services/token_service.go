package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/videotube_backend/internal/apperrors"
	"github.com/SscSPs/videotube_backend/internal/core/domain"
	portssvc "github.com/SscSPs/videotube_backend/internal/core/ports/services"
	"github.com/SscSPs/videotube_backend/internal/platform/config"
	"github.com/SscSPs/videotube_backend/internal/utils"
)

// tokenService implements the TokenSvcFacade. Access and refresh tokens are signed with
// separate secrets and expire independently.
type tokenService struct {
	BaseService
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

func (s *tokenService) IssueAccessToken(ctx context.Context, userID string) (string, time.Time, error) {
	token, expiresAt, err := utils.GenerateJWT(userID, s.cfg.AccessTokenSecret, s.cfg.AccessTokenExpiryDuration,
		s.cfg.JWTIssuer, string(domain.TokenClassAccess))
	if err != nil {
		return "", time.Time{}, apperrors.NewInternal("failed to issue access token", err)
	}
	return token, expiresAt, nil
}

func (s *tokenService) IssueRefreshToken(ctx context.Context, userID string) (string, time.Time, error) {
	token, expiresAt, err := utils.GenerateJWT(userID, s.cfg.RefreshTokenSecret, s.cfg.RefreshTokenExpiryDuration,
		s.cfg.JWTIssuer, string(domain.TokenClassRefresh))
	if err != nil {
		return "", time.Time{}, apperrors.NewInternal("failed to issue refresh token", err)
	}
	return token, expiresAt, nil
}

func (s *tokenService) IssueTokenPair(ctx context.Context, userID string) (*domain.TokenPair, error) {
	accessToken, accessExpiresAt, err := s.IssueAccessToken(ctx, userID)
	if err != nil {
		return nil, err
	}
	refreshToken, refreshExpiresAt, err := s.IssueRefreshToken(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &domain.TokenPair{
		AccessToken:           accessToken,
		AccessTokenExpiresAt:  accessExpiresAt,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: refreshExpiresAt,
	}, nil
}

// Verify returns the user ID bound to token. Failures are one of apperrors.ErrTokenMalformed,
// ErrTokenInvalidSignature, ErrTokenExpired or ErrTokenWrongClass.
func (s *tokenService) Verify(ctx context.Context, token string, class domain.TokenClass) (string, error) {
	var secret string
	switch class {
	case domain.TokenClassAccess:
		secret = s.cfg.AccessTokenSecret
	case domain.TokenClassRefresh:
		secret = s.cfg.RefreshTokenSecret
	default:
		return "", apperrors.NewInternal(fmt.Sprintf("unknown token class %q", class), nil)
	}

	claims, err := utils.ParseAndValidateJWT(token, secret)
	if err != nil {
		s.LogDebug(ctx, "Token verification failed", "class", string(class), "reason", err.Error())
		return "", err
	}
	if claims.TokenClass != string(class) {
		return "", apperrors.ErrTokenWrongClass
	}
	if s.cfg.JWTIssuer != "" && claims.Issuer != s.cfg.JWTIssuer {
		return "", apperrors.ErrTokenInvalidSignature
	}
	return claims.Subject, nil
}
