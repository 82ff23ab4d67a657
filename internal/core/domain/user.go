package domain

import "crypto/subtle"

// User represents a registered account together with its credential state.
// PasswordHash and RefreshToken must never leave the service boundary; use Public.
type User struct {
	UserID       string
	Username     string
	Email        string
	FullName     string
	Avatar       string
	CoverImage   string
	PasswordHash string
	// RefreshToken is the single refresh token considered valid for this user.
	// Nil when logged out.
	RefreshToken *string
	AuditFields
}

// PublicUser is the client-facing view of a User.
type PublicUser struct {
	UserID     string `json:"userID"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	FullName   string `json:"fullName"`
	Avatar     string `json:"avatar"`
	CoverImage string `json:"coverImage,omitempty"`
	AuditFields
}

// Public strips credential fields from the user.
func (u *User) Public() PublicUser {
	return PublicUser{
		UserID:      u.UserID,
		Username:    u.Username,
		Email:       u.Email,
		FullName:    u.FullName,
		Avatar:      u.Avatar,
		CoverImage:  u.CoverImage,
		AuditFields: u.AuditFields,
	}
}

// HasRefreshToken reports whether token is the currently stored refresh token.
func (u *User) HasRefreshToken(token string) bool {
	return u.RefreshToken != nil && subtle.ConstantTimeCompare([]byte(*u.RefreshToken), []byte(token)) == 1
}
