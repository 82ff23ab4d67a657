package utils

import (
	"errors"
	"time"

	"github.com/SscSPs/videotube_backend/internal/apperrors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims are the JWT claims carried by both token classes.
type Claims struct {
	jwt.RegisteredClaims
	TokenClass string `json:"token_class"`
}

// GenerateJWT generates a new signed token for userID. Every token gets a random ID so two
// tokens issued for the same user within the same second still differ.
func GenerateJWT(userID string, secret string, expiryDuration time.Duration, issuer string, tokenClass string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(expiryDuration)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
		TokenClass: tokenClass,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParseAndValidateJWT parses a token string and validates its signature and standard claims.
// Failures are reported as apperrors.ErrTokenMalformed, ErrTokenInvalidSignature or
// ErrTokenExpired.
func ParseAndValidateJWT(tokenString string, secretKey string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secretKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, classifyJWTError(err)
	}

	if !token.Valid || claims.Subject == "" {
		return nil, apperrors.ErrTokenMalformed
	}

	return claims, nil
}

func classifyJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return apperrors.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid),
		errors.Is(err, jwt.ErrSignatureInvalid),
		errors.Is(err, jwt.ErrTokenUnverifiable):
		return apperrors.ErrTokenInvalidSignature
	default:
		return apperrors.ErrTokenMalformed
	}
}
