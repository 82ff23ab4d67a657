package dto

import (
	"strings"

	"github.com/SscSPs/videotube_backend/internal/core/domain"
)

// LoginRequest accepts either a username or an email together with the password.
type LoginRequest struct {
	Username string `json:"username" example:"alice"`
	Email    string `json:"email" example:"alice@example.com"`
	Password string `json:"password" example:"correct-horse"`
}

// LoginKey returns the username when present, the email otherwise.
func (r LoginRequest) LoginKey() string {
	if strings.TrimSpace(r.Username) != "" {
		return r.Username
	}
	return r.Email
}

// RefreshTokenRequest carries the refresh token for clients that do not use cookies.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// ChangePasswordRequest defines the body of POST /change-password.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,notblank,max=72"`
}

// LoginResponse is the data returned by a successful login.
type LoginResponse struct {
	User         domain.PublicUser `json:"user"`
	AccessToken  string            `json:"accessToken"`
	RefreshToken string            `json:"refreshToken"`
}

// ToLoginResponse converts a domain.LoginResult to a LoginResponse DTO.
func ToLoginResponse(result *domain.LoginResult) LoginResponse {
	return LoginResponse{
		User:         result.User,
		AccessToken:  result.Tokens.AccessToken,
		RefreshToken: result.Tokens.RefreshToken,
	}
}

// RefreshTokenResponse is the data returned by a successful refresh.
type RefreshTokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// ToRefreshTokenResponse converts a domain.TokenPair to a RefreshTokenResponse DTO.
func ToRefreshTokenResponse(pair *domain.TokenPair) RefreshTokenResponse {
	return RefreshTokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}
}
