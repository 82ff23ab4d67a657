package domain

import "time"

// TokenClass distinguishes short-lived access tokens from long-lived refresh tokens.
type TokenClass string

const (
	TokenClassAccess  TokenClass = "access"
	TokenClassRefresh TokenClass = "refresh"
)

// TokenPair is a freshly issued access/refresh pair. It is derived on demand and never
// persisted as a whole; only the refresh token is stored on the user.
type TokenPair struct {
	AccessToken           string    `json:"accessToken"`
	AccessTokenExpiresAt  time.Time `json:"accessTokenExpiresAt"`
	RefreshToken          string    `json:"refreshToken"`
	RefreshTokenExpiresAt time.Time `json:"refreshTokenExpiresAt"`
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	User   PublicUser
	Tokens TokenPair
}
