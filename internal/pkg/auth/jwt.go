// Package auth provides functionality for generating and parsing JSON Web Tokens (JWT)
// for user authentication. It defines custom claims carrying the caller's
// identity and role, token generation, and validation logic. The signing key
// and token lifetime are injected from the configuration at construction.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"rewear/internal/models"
)

// Claims represents the custom JWT claims that include the user ID, the
// user's role and standard claims. It embeds jwt.RegisteredClaims for
// standard fields like expiration time.
type Claims struct {
	UserID int32
	Role   string
	jwt.RegisteredClaims
}

// TokenManager signs and verifies the tokens issued to authenticated users.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager creates a TokenManager with the given signing secret and
// token lifetime.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// GenerateToken creates a new JWT token for the given user identity.
// It sets the expiration time based on the configured lifetime and includes
// the user ID and role in the claims.
func (tm *TokenManager) GenerateToken(userID int32, role string) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tm.ttl)),
		},
		UserID: userID,
		Role:   role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

// ParseToken validates the provided JWT token string and parses its claims.
// It returns the caller claim if the token is valid, or an error otherwise.
func (tm *TokenManager) ParseToken(tokenStr string) (models.Claim, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return tm.secret, nil
	})
	if err != nil {
		return models.Claim{}, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return models.Claim{UserID: claims.UserID, Role: claims.Role}, nil
	}
	return models.Claim{}, jwt.ErrSignatureInvalid
}
