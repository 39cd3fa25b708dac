// Package auth holds the two credential primitives of the server: signed
// session tokens (JWT) and one-way password hashing (bcrypt).
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mjpark-dev/boardapp/internal/common"
)

// Claims includes the registered claims plus the user id the token was
// issued for.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

// JWTManager issues and validates HS256 session tokens. Validation is a
// pure function of the token, the secret and the clock; no server-side
// session state is consulted, so a token cannot be revoked before expiry.
type JWTManager struct {
	secretKey []byte
	validity  time.Duration
}

func NewJWTManager(secretKey []byte, validity time.Duration) *JWTManager {
	return &JWTManager{secretKey: secretKey, validity: validity}
}

// Issue returns a signed token with the user id as subject, stamped with
// issued-at = now and expiry = now + validity.
func (m *JWTManager) Issue(userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.validity)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Validate parses and verifies tokenString and returns the embedded user
// id. The id is verified but not yet resolved: callers must still look the
// account up, since a token can outlive the user it was issued for.
//
// Failures map onto the shared sentinels: common.ErrTokenExpired,
// common.ErrInvalidSignature, common.ErrMalformedToken.
func (m *JWTManager) Validate(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", common.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", common.ErrInvalidSignature
		default:
			return "", common.ErrMalformedToken
		}
	}

	if !token.Valid {
		return "", common.ErrMalformedToken
	}

	return claims.UserID, nil
}
